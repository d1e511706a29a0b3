package views

import (
	"github.com/eringen/showcase/gallery"
	"github.com/eringen/showcase/propstable"
)

// SiteConfig holds the site-wide values every page template needs.
type SiteConfig struct {
	Name        string
	URL         string
	Description string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

// Featured is the hero card shown above the overview grid.
type Featured struct {
	Route       string
	Title       string
	Description string
	ImageURL    string
}

// OverviewPage is the example grid. Category is the front-matter filter
// the page was built with ("" for the main overview).
type OverviewPage struct {
	Site     SiteConfig
	Meta     PageMeta
	Category string
	Featured *Featured
	Groups   []gallery.Group
}

// ExamplePage is a single example with its rendered document body.
type ExamplePage struct {
	Site    SiteConfig
	Meta    PageMeta
	Example gallery.Example
}

// HookPage documents one hook signature.
type HookPage struct {
	Site  SiteConfig
	Meta  PageMeta
	Hook  string
	Table propstable.Table
}

// AdminDashboardPage shows the state of the example index.
type AdminDashboardPage struct {
	Site        SiteConfig
	Examples    int
	LastIndexed string
	Message     string
	CSRFToken   string
}
