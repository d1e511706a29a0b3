package showcase

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/showcase/gallery"
	"github.com/eringen/showcase/propstable"
	"github.com/eringen/showcase/views"
)

func (a *App) handleOverview(c echo.Context) error {
	return a.renderOverview(c, "")
}

func (a *App) handleCollection(c echo.Context) error {
	return a.renderOverview(c, c.Param("category"))
}

func (a *App) renderOverview(c echo.Context, category string) error {
	grouped, err := a.Examples(c.Request().Context(), category)
	if err != nil {
		return err
	}
	if category != "" && grouped.Len() == 0 {
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.site()))
	}

	title := "Examples"
	pageURL := BuildURL(a.Config.URL, "examples")
	if category != "" {
		title = views.CategoryHeading(category) + " Examples"
		pageURL = BuildURL(a.Config.URL, "examples", "collection", category)
	}
	preview := a.Config.PreviewConfig()
	return Render(c, a.Views.Overview(views.OverviewPage{
		Site: a.site(),
		Meta: views.PageMeta{
			Title:       title,
			Description: a.Config.Description,
			URL:         pageURL,
			OGType:      "website",
		},
		Category: category,
		Featured: &views.Featured{
			Route:       a.Config.FeaturedRoute,
			Title:       a.Config.FeaturedTitle,
			Description: a.Config.FeaturedDescription,
			ImageURL:    preview.FeaturedImageURL(),
		},
		Groups: grouped.Groups(),
	}))
}

func (a *App) handleExample(c echo.Context) error {
	rest := strings.Trim(c.Param("*"), "/")
	if rest == "" {
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.site()))
	}
	section := gallery.RootPrefix + c.Param("section")
	route := section + "/" + rest
	rec, err := a.Cache.Find(c.Request().Context(), section, route)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.site()))
		}
		return err
	}
	ex := gallery.Enrich(rec, a.Config.PreviewConfig())
	return Render(c, a.Views.Example(views.ExamplePage{
		Site: a.site(),
		Meta: views.PageMeta{
			Title:       ex.Title(),
			Description: ex.Description(),
			URL:         BuildURL(a.Config.URL, route),
			OGType:      "article",
		},
		Example: ex,
	}))
}

func (a *App) handleHook(c echo.Context) error {
	slug := c.Param("hook")
	table, ok := propstable.Lookup(slug)
	if !ok {
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.site()))
	}
	name := HookName(slug)
	return Render(c, a.Views.Hook(views.HookPage{
		Site: a.site(),
		Meta: views.PageMeta{
			Title: name,
			URL:   BuildURL(a.Config.URL, "reference", "hooks", slug),
		},
		Hook:  name,
		Table: table,
	}))
}

type groupResponse struct {
	Category string            `json:"category"`
	Examples []exampleResponse `json:"examples"`
}

type exampleResponse struct {
	Route       string `json:"route"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsPro       bool   `json:"is_pro_example"`
	ImageURL    string `json:"image_url"`
}

func (a *App) handleExamplesAPI(c echo.Context) error {
	grouped, err := a.Examples(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, groupsResponse(grouped))
}

func groupsResponse(g *gallery.Grouped) []groupResponse {
	out := make([]groupResponse, 0, len(g.Groups()))
	for _, grp := range g.Groups() {
		gr := groupResponse{Category: grp.Category, Examples: make([]exampleResponse, 0, len(grp.Examples))}
		for _, e := range grp.Examples {
			gr.Examples = append(gr.Examples, exampleResponse{
				Route:       e.Route,
				Name:        e.Identifier(),
				Category:    e.Category,
				Title:       e.Title(),
				Description: e.Description(),
				IsPro:       e.IsPro(),
				ImageURL:    e.ImageURL,
			})
		}
		out = append(out, gr)
	}
	return out
}

func (a *App) handleHookAPI(c echo.Context) error {
	table, ok := propstable.Lookup(c.Param("hook"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown hook")
	}
	return c.JSON(http.StatusOK, table)
}

func (a *App) handleSitemap(c echo.Context) error {
	grouped, err := a.Examples(c.Request().Context(), "")
	if err != nil {
		return err
	}
	return a.renderSitemap(c, grouped.Groups())
}

func handleRootRedirect(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/examples/")
}

func handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound && !isAPIPath(c.Request().URL.Path) {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.site()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error("server error",
			zap.String("uri", c.Request().RequestURI), zap.Error(err))
		if !isAPIPath(c.Request().URL.Path) {
			_ = RenderStatus(c, code, a.Views.ServerError(a.site()))
			return
		}
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
