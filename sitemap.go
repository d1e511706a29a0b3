package showcase

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/showcase/gallery"
	"github.com/eringen/showcase/propstable"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

func (a *App) renderSitemap(c echo.Context, groups []gallery.Group) error {
	base := a.Config.URL
	urls := []sitemapURL{{Loc: BuildURL(base, "examples")}}
	for _, g := range groups {
		for _, e := range g.Examples {
			urls = append(urls, sitemapURL{Loc: BuildURL(base, e.Route)})
		}
	}
	for _, slug := range propstable.Slugs() {
		urls = append(urls, sitemapURL{Loc: BuildURL(base, "reference", "hooks", slug)})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
