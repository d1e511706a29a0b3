// Package gallery groups example content records into categories and
// resolves the preview image shown on each example card.
package gallery

import "strings"

// RootPrefix is the route prefix under which every example lives. The path
// segment right after it names the example's category.
const RootPrefix = "/examples/"

// Uncategorized is the bucket for records whose route carries no category
// segment after RootPrefix.
const Uncategorized = "uncategorized"

// FrontMatter is the metadata block at the top of an example document.
type FrontMatter struct {
	Category     string `yaml:"category" json:"category,omitempty"`
	Title        string `yaml:"title" json:"title,omitempty"`
	Description  string `yaml:"description" json:"description,omitempty"`
	IsProExample bool   `yaml:"is_pro_example" json:"is_pro_example,omitempty"`
	PreviewPath  string `yaml:"preview_path" json:"preview_path,omitempty"`
}

// Record is one example document as produced by a content source.
// FrontMatter is nil when the document has none.
type Record struct {
	Route       string       `json:"route"`
	Name        string       `json:"name"`
	FrontMatter *FrontMatter `json:"front_matter,omitempty"`
	Body        string       `json:"-"`
}

// Meta returns the record's front matter, or an empty value when absent.
func (r Record) Meta() FrontMatter {
	if r.FrontMatter == nil {
		return FrontMatter{}
	}
	return *r.FrontMatter
}

// Identifier returns Name, falling back to the last segment of Route.
func (r Record) Identifier() string {
	if r.Name != "" {
		return r.Name
	}
	route := strings.TrimRight(r.Route, "/")
	if i := strings.LastIndex(route, "/"); i >= 0 {
		return route[i+1:]
	}
	return route
}

// Example is a Record enriched with its derived category and preview image.
type Example struct {
	Record
	Category string `json:"category"`
	ImageURL string `json:"image_url"`
}

// Title is shorthand for the front-matter title.
func (e Example) Title() string { return e.Meta().Title }

// Description is shorthand for the front-matter description.
func (e Example) Description() string { return e.Meta().Description }

// IsPro reports whether the example is hosted on the pro examples site.
func (e Example) IsPro() bool { return e.Meta().IsProExample }

// CategoryFromRoute extracts the segment between RootPrefix and the next
// slash. It returns "" when route has no such segment.
func CategoryFromRoute(route string) string {
	i := strings.Index(route, RootPrefix)
	if i < 0 {
		return ""
	}
	rest := route[i+len(RootPrefix):]
	j := strings.Index(rest, "/")
	if j <= 0 {
		return ""
	}
	return rest[:j]
}
