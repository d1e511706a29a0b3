package showcase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/eringen/showcase/content"
	"github.com/eringen/showcase/gallery"
)

type countingLister struct {
	calls int
	inner gallery.Lister
}

func (l *countingLister) ListUnderRoute(ctx context.Context, route string) ([]gallery.Record, error) {
	l.calls++
	return l.inner.ListUnderRoute(ctx, route)
}

func TestRecordCacheServesFromMemory(t *testing.T) {
	src := &countingLister{inner: content.NewMemory(gallery.Record{Route: "/examples/nodes/a"})}
	c := NewRecordCache(src, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		recs, err := c.ListUnderRoute(ctx, "/examples/nodes")
		if err != nil {
			t.Fatalf("ListUnderRoute failed: %v", err)
		}
		if len(recs) != 1 {
			t.Fatalf("len = %d, want 1", len(recs))
		}
	}
	if src.calls != 1 {
		t.Errorf("source calls = %d, want 1", src.calls)
	}

	c.Invalidate()
	if _, err := c.ListUnderRoute(ctx, "/examples/nodes"); err != nil {
		t.Fatalf("ListUnderRoute failed: %v", err)
	}
	if src.calls != 2 {
		t.Errorf("source calls after Invalidate = %d, want 2", src.calls)
	}
}

func TestRecordCacheExpires(t *testing.T) {
	src := &countingLister{inner: content.NewMemory()}
	c := NewRecordCache(src, 20*time.Millisecond)
	ctx := context.Background()

	c.ListUnderRoute(ctx, "/examples/edges")
	time.Sleep(40 * time.Millisecond)
	c.ListUnderRoute(ctx, "/examples/edges")
	if src.calls != 2 {
		t.Errorf("source calls = %d, want 2 after TTL", src.calls)
	}
}

func TestRecordCacheFind(t *testing.T) {
	mem := content.NewMemory(
		gallery.Record{Route: "/examples/nodes/a"},
		gallery.Record{Route: "/examples/nodes/b"},
	)
	c := NewRecordCache(mem, time.Minute)
	ctx := context.Background()

	got, err := c.Find(ctx, "/examples/nodes", "/examples/nodes/b")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if got.Route != "/examples/nodes/b" {
		t.Errorf("Route = %q, want %q", got.Route, "/examples/nodes/b")
	}
	if _, err := c.Find(ctx, "/examples/nodes", "/examples/nodes/c"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Find(missing) error = %v, want ErrNotFound", err)
	}
}
