package gallery

import (
	"context"
	"fmt"
)

// Sections are the example sections loaded for the gallery, in display order.
var Sections = []string{"nodes", "edges", "layout", "interaction", "styling", "misc"}

// SectionRoutes returns the route prefix of every entry in Sections.
func SectionRoutes() []string {
	routes := make([]string, len(Sections))
	for i, s := range Sections {
		routes[i] = RootPrefix + s
	}
	return routes
}

// Lister lists every content record below a route prefix.
type Lister interface {
	ListUnderRoute(ctx context.Context, route string) ([]Record, error)
}

// Collect loads each route through l, keeping one source list per route.
func Collect(ctx context.Context, l Lister, routes []string) ([][]Record, error) {
	sources := make([][]Record, 0, len(routes))
	for _, route := range routes {
		recs, err := l.ListUnderRoute(ctx, route)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", route, err)
		}
		sources = append(sources, recs)
	}
	return sources, nil
}
