package views

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/eringen/showcase/gallery"
)

var titleCaser = cases.Title(language.English)

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// CategoryHeading turns a category key into a section heading ("nodes" -> "Nodes").
func CategoryHeading(category string) string {
	return titleCaser.String(strings.ReplaceAll(category, "-", " "))
}

// Kicker is the small uppercase label above an example title.
func Kicker(category string) string {
	return strings.ToUpper(category)
}

// ExampleLink returns the site path of an example page.
func ExampleLink(route string) string {
	return strings.TrimRight(route, "/") + "/"
}

// ItemListJsonLD produces a Schema.org ItemList JSON-LD block for the grid.
func ItemListJsonLD(cfg SiteConfig, groups []gallery.Group) string {
	var items []map[string]interface{}
	for _, g := range groups {
		for _, e := range g.Examples {
			items = append(items, map[string]interface{}{
				"@type":    "ListItem",
				"position": len(items) + 1,
				"name":     e.Title(),
				"url":      buildURL(cfg.URL, e.Route),
				"image":    e.ImageURL,
			})
		}
	}
	data := map[string]interface{}{
		"@context":        "https://schema.org",
		"@type":           "ItemList",
		"name":            cfg.Name,
		"itemListElement": items,
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
