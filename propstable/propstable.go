// Package propstable holds the reference tables documenting hook signatures.
package propstable

import (
	"sort"
	"strings"
)

// Row is one line of a props table. A row with only a Name is a section
// header such as "Params" or "Returns". Type is free-form documentation
// text, so dynamic types are written as they appear in the docs ("any").
type Row struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// IsHeader reports whether the row starts a new section.
func (r Row) IsHeader() bool {
	return r.Type == "" && r.Description == ""
}

// Table is an ordered list of rows.
type Table struct {
	Props []Row `json:"props"`
}

// Section is a header row with the rows below it.
type Section struct {
	Title string
	Rows  []Row
}

// Sections splits the table at header rows. Rows before the first header
// land in a section with an empty title.
func (t Table) Sections() []Section {
	var out []Section
	for _, r := range t.Props {
		if r.IsHeader() {
			out = append(out, Section{Title: r.Name})
			continue
		}
		if len(out) == 0 {
			out = append(out, Section{})
		}
		out[len(out)-1].Rows = append(out[len(out)-1].Rows, r)
	}
	return out
}

var registry = map[string]Table{
	"use-nodes-data": UseNodesData,
}

// Lookup returns the table registered for a hook slug such as
// "use-nodes-data". Lookups ignore case.
func Lookup(slug string) (Table, bool) {
	t, ok := registry[strings.ToLower(slug)]
	return t, ok
}

// Slugs returns the registered hook slugs in sorted order.
func Slugs() []string {
	out := make([]string, 0, len(registry))
	for s := range registry {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
