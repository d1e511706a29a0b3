package gallery

// Group is one category bucket of a Grouped result.
type Group struct {
	Category string    `json:"category"`
	Examples []Example `json:"examples"`
}

// Grouped maps categories to examples, remembering the order in which
// categories were first seen.
type Grouped struct {
	groups []Group
	index  map[string]int
}

func newGrouped() *Grouped {
	return &Grouped{index: make(map[string]int)}
}

func (g *Grouped) add(e Example) {
	i, ok := g.index[e.Category]
	if !ok {
		i = len(g.groups)
		g.index[e.Category] = i
		g.groups = append(g.groups, Group{Category: e.Category})
	}
	g.groups[i].Examples = append(g.groups[i].Examples, e)
}

// Groups returns the buckets in first-seen order.
func (g *Grouped) Groups() []Group {
	return g.groups
}

// Categories returns the category keys in first-seen order.
func (g *Grouped) Categories() []string {
	out := make([]string, len(g.groups))
	for i, grp := range g.groups {
		out[i] = grp.Category
	}
	return out
}

// Get returns the examples filed under category, or nil.
func (g *Grouped) Get(category string) []Example {
	i, ok := g.index[category]
	if !ok {
		return nil
	}
	return g.groups[i].Examples
}

// Len returns the total number of examples across all buckets.
func (g *Grouped) Len() int {
	n := 0
	for _, grp := range g.groups {
		n += len(grp.Examples)
	}
	return n
}

// Aggregate concatenates sources, keeps the records matching filterCategory
// and groups them by the category derived from their route.
//
// An empty filterCategory keeps only records without a front-matter
// category; otherwise only records whose front-matter category equals
// filterCategory are kept. Records are never reordered within a bucket.
func Aggregate(sources [][]Record, filterCategory string, cfg PreviewConfig) *Grouped {
	out := newGrouped()
	for _, src := range sources {
		for _, rec := range src {
			if !matchesFilter(rec, filterCategory) {
				continue
			}
			out.add(Enrich(rec, cfg))
		}
	}
	return out
}

func matchesFilter(rec Record, filterCategory string) bool {
	category := rec.Meta().Category
	if filterCategory != "" {
		return category == filterCategory
	}
	return category == ""
}

// Enrich derives the category and preview image for a single record.
func Enrich(rec Record, cfg PreviewConfig) Example {
	category := CategoryFromRoute(rec.Route)
	if category == "" {
		category = Uncategorized
	}
	return Example{
		Record:   rec,
		Category: category,
		ImageURL: cfg.ImageURL(rec),
	}
}
