// Package content loads example documents for the gallery.
package content

import (
	"context"
	"strings"
	"sync"

	"github.com/eringen/showcase/gallery"
)

// Memory is an in-memory gallery.Lister. Records are listed in the order
// they were added.
type Memory struct {
	mu      sync.RWMutex
	records []gallery.Record
}

// NewMemory returns a Memory holding recs.
func NewMemory(recs ...gallery.Record) *Memory {
	m := &Memory{}
	m.Add(recs...)
	return m
}

// Add appends records.
func (m *Memory) Add(recs ...gallery.Record) {
	m.mu.Lock()
	m.records = append(m.records, recs...)
	m.mu.Unlock()
}

// ListUnderRoute returns every record strictly below route.
func (m *Memory) ListUnderRoute(_ context.Context, route string) ([]gallery.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []gallery.Record
	for _, r := range m.records {
		if IsUnder(r.Route, route) {
			out = append(out, r)
		}
	}
	return out, nil
}

// IsUnder reports whether route is a descendant of prefix.
func IsUnder(route, prefix string) bool {
	prefix = strings.TrimRight(prefix, "/") + "/"
	return strings.HasPrefix(route, prefix) && len(route) > len(prefix)
}
