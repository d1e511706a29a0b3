// Package showcase serves a documentation site's example gallery built with
// Go, Echo, and templ. It indexes example documents into SQLite, groups them
// by category with resolved preview images, and renders the overview grid,
// example pages and hook reference tables.
//
// Users may replace any page through the ViewFuncs struct; showcase handles
// the handler logic, middleware, indexing and caching.
package showcase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/eringen/showcase/content"
	"github.com/eringen/showcase/gallery"
	"github.com/eringen/showcase/views"
)

// ViewFuncs holds the templ components the framework calls when rendering
// pages. Nil fields fall back to the views package.
type ViewFuncs struct {
	Overview       func(p views.OverviewPage) templ.Component
	Example        func(p views.ExamplePage) templ.Component
	Hook           func(p views.HookPage) templ.Component
	AdminLogin     func(site views.SiteConfig, showError bool, csrfToken string) templ.Component
	AdminDashboard func(p views.AdminDashboardPage) templ.Component
	NotFound       func(site views.SiteConfig) templ.Component
	ServerError    func(site views.SiteConfig) templ.Component
}

func (v *ViewFuncs) setDefaults() {
	if v.Overview == nil {
		v.Overview = views.Overview
	}
	if v.Example == nil {
		v.Example = views.Example
	}
	if v.Hook == nil {
		v.Hook = views.Hook
	}
	if v.AdminLogin == nil {
		v.AdminLogin = views.AdminLogin
	}
	if v.AdminDashboard == nil {
		v.AdminDashboard = views.AdminDashboard
	}
	if v.NotFound == nil {
		v.NotFound = views.NotFound
	}
	if v.ServerError == nil {
		v.ServerError = views.ServerError
	}
}

// App is the central showcase application. It wires together the index,
// cache, handlers, middleware, and templates.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Store   *Store
	Cache   *RecordCache
	Views   ViewFuncs
	Logger  *zap.Logger
	Metrics *Metrics

	source       gallery.Lister
	content      *content.Dir
	watcher      *ContentWatcher
	loginLimiter *LoginLimiter
	registry     *prometheus.Registry
	customRoutes []func(*App)
	staticDir    string

	indexMu     sync.Mutex
	lastIndexed time.Time
}

// New creates a new showcase App with the given configuration and views.
func New(cfg SiteConfig, v ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()
	v.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     v,
		Logger:    zap.NewNop(),
		staticDir: "public",
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}
	if a.registry == nil {
		a.registry = prometheus.NewRegistry()
	}
	a.Metrics = newMetrics(a.registry)
	return a
}

// Init opens the index, builds it from ContentDir and registers middleware
// and routes. Start calls it; tests call it to drive a.Echo directly.
func (a *App) Init(ctx context.Context) error {
	if a.Config.AdminPassword != "" && a.Config.SessionSecret == "" {
		return fmt.Errorf("showcase: SessionSecret is required when AdminPassword is set")
	}

	if a.source == nil {
		store, err := NewStore(a.Config.DatabasePath)
		if err != nil {
			return fmt.Errorf("showcase: init store: %w", err)
		}
		a.Store = store
		a.content = content.NewDir(a.Config.ContentDir, a.Logger)
		a.source = store
	}

	a.Cache = NewRecordCache(a.source, a.Config.CacheTTL)
	a.Cache.onLoad = func(route string) {
		a.Metrics.cacheLoads.WithLabelValues(route).Inc()
	}

	if a.Store != nil {
		if _, err := a.Reindex(ctx); err != nil {
			return fmt.Errorf("showcase: initial index: %w", err)
		}
	}

	if a.Config.AdminPassword != "" {
		a.loginLimiter = NewLoginLimiter(5, time.Minute)
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start initializes the app, optionally watches the content directory and
// serves until ctx is cancelled.
func (a *App) Start(ctx context.Context) error {
	if err := a.Init(ctx); err != nil {
		return err
	}

	if a.Config.WatchContent && a.content != nil {
		w, err := NewContentWatcher(a.content.Root(), 300*time.Millisecond, a.Logger, func(ctx context.Context) {
			if _, err := a.Reindex(ctx); err != nil {
				a.Logger.Error("reindex after content change", zap.Error(err))
			}
		})
		if err != nil {
			return fmt.Errorf("showcase: init watcher: %w", err)
		}
		if err := w.Start(ctx); err != nil {
			return fmt.Errorf("showcase: start watcher: %w", err)
		}
		a.watcher = w
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("listening", zap.String("addr", a.Config.Addr))
		if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return a.Echo.Shutdown(shutdownCtx)
}

// Reindex rebuilds the SQLite index from ContentDir and clears the record
// cache. Apps built WithSource only clear the cache.
func (a *App) Reindex(ctx context.Context) (int, error) {
	a.indexMu.Lock()
	defer a.indexMu.Unlock()

	defer func() {
		if a.Cache != nil {
			a.Cache.Invalidate()
		}
	}()
	if a.Store == nil || a.content == nil {
		return 0, nil
	}

	recs, err := a.content.All(ctx, gallery.SectionRoutes())
	if err == nil {
		err = a.Store.ReplaceExamples(ctx, recs)
	}
	if err != nil {
		a.Metrics.reindexes.WithLabelValues("error").Inc()
		return 0, err
	}
	a.Metrics.reindexes.WithLabelValues("ok").Inc()
	a.Metrics.indexed.Set(float64(len(recs)))
	a.lastIndexed = time.Now()
	a.Logger.Info("indexed examples",
		zap.Int("count", len(recs)), zap.String("dir", a.content.Root()))
	return len(recs), nil
}

// LastIndexed returns when the index was last rebuilt.
func (a *App) LastIndexed() time.Time {
	a.indexMu.Lock()
	defer a.indexMu.Unlock()
	return a.lastIndexed
}

// Examples loads every example section and groups it. An empty category
// lists examples without a front-matter category; otherwise only examples
// with that front-matter category are listed.
func (a *App) Examples(ctx context.Context, category string) (*gallery.Grouped, error) {
	sources, err := gallery.Collect(ctx, a.Cache, gallery.SectionRoutes())
	if err != nil {
		return nil, err
	}
	grouped := gallery.Aggregate(sources, category, a.Config.PreviewConfig())

	a.Metrics.aggregations.WithLabelValues(fmt.Sprint(category != "")).Inc()
	if category == "" {
		counts := make([]categoryCount, 0, len(grouped.Groups()))
		for _, g := range grouped.Groups() {
			counts = append(counts, categoryCount{category: g.Category, count: len(g.Examples)})
		}
		a.Metrics.examples.set(counts)
	}
	return grouped, nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/healthz", handleHealth)
	e.GET("/metrics", a.Metrics.handler())
	e.GET("/sitemap.xml", a.handleSitemap)

	e.GET("/", handleRootRedirect)
	e.GET("/examples/", a.handleOverview)
	e.GET("/examples/collection/:category/", a.handleCollection)
	e.GET("/examples/:section/*", a.handleExample)
	e.GET("/reference/hooks/:hook/", a.handleHook)

	e.GET("/api/examples", a.handleExamplesAPI)
	e.GET("/api/reference/hooks/:hook", a.handleHookAPI)

	if a.adminEnabled() {
		e.GET("/admin/", a.handleAdmin)
		e.POST("/admin/login/", a.handleAdminLogin)
		e.POST("/admin/logout/", handleAdminLogout)
		e.POST("/admin/reindex/", a.handleAdminReindex)
	}
}

func (a *App) adminEnabled() bool {
	return a.Config.AdminPassword != ""
}

func (a *App) site() views.SiteConfig {
	return views.SiteConfig{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
	}
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.watcher != nil {
		a.watcher.Stop()
	}
	if a.loginLimiter != nil {
		a.loginLimiter.Stop()
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
