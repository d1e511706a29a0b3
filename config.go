package showcase

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/eringen/showcase/gallery"
)

// SiteConfig holds all configuration for a showcase site.
type SiteConfig struct {
	Name        string // Site name (default "Examples")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for meta tags

	Addr         string // Listen address (default ":3000")
	DatabasePath string // SQLite example index (default "data/examples.db")
	ContentDir   string // Example documents (default "pages")
	WatchContent bool   // Reindex when files under ContentDir change

	Deployment gallery.Deployment // Selects the examples host for previews
	ProHost    string             // Pro examples host (default gallery.DefaultProHost)
	Language   string             // Framework segment of preview paths (default "react")

	FeaturedRoute       string // Hero example on the overview (default "/examples/misc/overview")
	FeaturedTitle       string
	FeaturedDescription string

	AdminPassword string // Enables /admin/ when set
	SessionSecret string // Required when AdminPassword is set
	CookieSecure  bool   // Set true for HTTPS

	CacheTTL time.Duration // Record cache TTL (default 5min)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Examples"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/examples.db"
	}
	if c.ContentDir == "" {
		c.ContentDir = "pages"
	}
	if c.FeaturedRoute == "" {
		c.FeaturedRoute = "/examples/misc/overview"
	}
	if c.FeaturedTitle == "" {
		c.FeaturedTitle = "Feature Overview"
	}
	if c.FeaturedDescription == "" {
		c.FeaturedDescription = "This is an overview example of React Flow's basic features. " +
			"You can see built-in node and edge types, sub-flows, as well as NodeToolbar and NodeResizer components."
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = 5 * time.Minute
	}
}

// PreviewConfig returns the preview hosts the aggregator uses.
func (c SiteConfig) PreviewConfig() gallery.PreviewConfig {
	return gallery.PreviewConfig{
		BaseURL:  c.Deployment.BaseURL(),
		ProHost:  c.ProHost,
		Language: c.Language,
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithLogger sets the structured logger (default zap.NewNop()).
func WithLogger(log *zap.Logger) Option {
	return func(a *App) {
		a.Logger = log
	}
}

// WithSource serves records from l instead of the SQLite index built from
// ContentDir. Reindex then only clears the record cache.
func WithSource(l gallery.Lister) Option {
	return func(a *App) {
		a.source = l
	}
}

// WithRegistry sets the Prometheus registry metrics are registered on.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(a *App) {
		a.registry = reg
	}
}
