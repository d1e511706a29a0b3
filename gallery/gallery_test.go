package gallery

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func rec(route string, fm *FrontMatter) Record {
	return Record{Route: route, FrontMatter: fm}
}

func TestCategoryFromRoute(t *testing.T) {
	tests := []struct {
		route string
		want  string
	}{
		{"/examples/nodes/custom-node", "nodes"},
		{"/examples/edges/animated/deep", "edges"},
		{"/examples/overview", ""},
		{"/examples/", ""},
		{"/docs/nodes/custom-node", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CategoryFromRoute(tt.route); got != tt.want {
			t.Errorf("CategoryFromRoute(%q) = %q, want %q", tt.route, got, tt.want)
		}
	}
}

func TestAggregateExampleScenario(t *testing.T) {
	cfg := PreviewConfig{BaseURL: "https://ex.test"}
	r := Record{
		Route:       "/examples/nodes/custom-node",
		Name:        "custom-node",
		FrontMatter: &FrontMatter{Title: "Custom Node"},
	}

	got := Aggregate([][]Record{{r}}, "", cfg)
	nodes := got.Get("nodes")
	if len(nodes) != 1 {
		t.Fatalf("len(nodes) = %d, want 1", len(nodes))
	}
	if nodes[0].Category != "nodes" {
		t.Errorf("Category = %q, want %q", nodes[0].Category, "nodes")
	}
	want := "https://ex.test/react/examples/nodes/custom-node/preview.jpg"
	if nodes[0].ImageURL != want {
		t.Errorf("ImageURL = %q, want %q", nodes[0].ImageURL, want)
	}

	r.FrontMatter.IsProExample = true
	got = Aggregate([][]Record{{r}}, "", cfg)
	want = "https://pro-examples.reactflow.dev/custom-node/thumbnail.jpg"
	if url := got.Get("nodes")[0].ImageURL; url != want {
		t.Errorf("pro ImageURL = %q, want %q", url, want)
	}
}

func TestImageURLPriority(t *testing.T) {
	cfg := PreviewConfig{BaseURL: "https://ex.test/", ProHost: "https://pro.test"}
	tests := []struct {
		name string
		rec  Record
		want string
	}{
		{
			name: "pro wins over preview path",
			rec:  rec("/examples/edges/flow", &FrontMatter{IsProExample: true, PreviewPath: "custom/p.jpg"}),
			want: "https://pro.test/flow/thumbnail.jpg",
		},
		{
			name: "preview path",
			rec:  rec("/examples/edges/flow", &FrontMatter{PreviewPath: "custom/p.jpg"}),
			want: "https://ex.test/custom/p.jpg",
		},
		{
			name: "conventional path without front matter",
			rec:  rec("/examples/edges/flow", nil),
			want: "https://ex.test/react/examples/edges/flow/preview.jpg",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.ImageURL(tt.rec); got != tt.want {
				t.Errorf("ImageURL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAggregateFilter(t *testing.T) {
	sources := [][]Record{
		{
			rec("/examples/nodes/a", nil),
			rec("/examples/nodes/b", &FrontMatter{Category: "pro"}),
		},
		{
			rec("/examples/edges/c", &FrontMatter{Title: "C"}),
			rec("/examples/edges/d", &FrontMatter{Category: "pro"}),
			rec("/examples/edges/e", &FrontMatter{Category: "tutorial"}),
		},
	}

	routes := func(g *Grouped) []string {
		var out []string
		for _, grp := range g.Groups() {
			for _, e := range grp.Examples {
				out = append(out, e.Route)
			}
		}
		return out
	}

	if diff := cmp.Diff([]string{"/examples/nodes/a", "/examples/edges/c"}, routes(Aggregate(sources, "", PreviewConfig{}))); diff != "" {
		t.Errorf("unfiltered routes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"/examples/nodes/b", "/examples/edges/d"}, routes(Aggregate(sources, "pro", PreviewConfig{}))); diff != "" {
		t.Errorf("pro routes mismatch (-want +got):\n%s", diff)
	}
	if got := Aggregate(sources, "missing", PreviewConfig{}); got.Len() != 0 {
		t.Errorf("Len() = %d, want 0", got.Len())
	}
}

func TestAggregateGroupingAndOrder(t *testing.T) {
	sources := [][]Record{
		{rec("/examples/nodes/one", nil), rec("/examples/edges/two", nil)},
		{rec("/examples/nodes/three", nil), rec("/examples/overview", nil)},
	}
	got := Aggregate(sources, "", PreviewConfig{})

	if diff := cmp.Diff([]string{"nodes", "edges", Uncategorized}, got.Categories()); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
	for _, grp := range got.Groups() {
		for _, e := range grp.Examples {
			if e.Category != grp.Category {
				t.Errorf("example %s filed under %q has category %q", e.Route, grp.Category, e.Category)
			}
		}
	}
	nodes := got.Get("nodes")
	if len(nodes) != 2 || nodes[0].Route != "/examples/nodes/one" || nodes[1].Route != "/examples/nodes/three" {
		t.Errorf("nodes = %v, want one then three", nodes)
	}
	if got.Len() != 4 {
		t.Errorf("Len() = %d, want 4", got.Len())
	}
	if got.Get("absent") != nil {
		t.Error("Get(absent) should be nil")
	}
}

func TestRecordIdentifier(t *testing.T) {
	tests := []struct {
		rec  Record
		want string
	}{
		{Record{Route: "/examples/nodes/custom-node"}, "custom-node"},
		{Record{Route: "/examples/nodes/custom-node/"}, "custom-node"},
		{Record{Route: "/examples/nodes/x", Name: "named"}, "named"},
		{Record{Route: "plain"}, "plain"},
	}
	for _, tt := range tests {
		if got := tt.rec.Identifier(); got != tt.want {
			t.Errorf("Identifier(%+v) = %q, want %q", tt.rec, got, tt.want)
		}
	}
}

func TestDeploymentBaseURL(t *testing.T) {
	tests := []struct {
		name string
		d    Deployment
		want string
	}{
		{"production", Deployment{Env: "production", CommitRef: "main", ExamplesURL: "https://examples.test"}, "https://examples.test"},
		{"preview branch", Deployment{Env: "preview", CommitRef: "feat-x", ExamplesURL: "https://examples.test"}, "https://example-apps-git-feat-x-xyflow.vercel.app"},
		{"preview without ref", Deployment{Env: "preview", ExamplesURL: "https://examples.test"}, "https://examples.test"},
		{"custom pattern", Deployment{Env: "preview", CommitRef: "b", PreviewHostPattern: "https://%s.preview.test"}, "https://b.preview.test"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.BaseURL(); got != tt.want {
				t.Errorf("BaseURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeploymentFromEnv(t *testing.T) {
	env := map[string]string{
		"VERCEL_ENV":               "preview",
		"VERCEL_GIT_COMMIT_REF":    "docs",
		"NEXT_PUBLIC_EXAMPLES_URL": "https://examples.test",
	}
	d := DeploymentFromEnv(func(k string) string { return env[k] })
	want := Deployment{Env: "preview", CommitRef: "docs", ExamplesURL: "https://examples.test"}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Errorf("DeploymentFromEnv mismatch (-want +got):\n%s", diff)
	}
}

type listerFunc func(ctx context.Context, route string) ([]Record, error)

func (f listerFunc) ListUnderRoute(ctx context.Context, route string) ([]Record, error) {
	return f(ctx, route)
}

func TestCollect(t *testing.T) {
	var seen []string
	l := listerFunc(func(_ context.Context, route string) ([]Record, error) {
		seen = append(seen, route)
		return []Record{{Route: route + "/x"}}, nil
	})
	sources, err := Collect(context.Background(), l, SectionRoutes())
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(sources) != len(Sections) {
		t.Fatalf("len(sources) = %d, want %d", len(sources), len(Sections))
	}
	want := []string{"/examples/nodes", "/examples/edges", "/examples/layout", "/examples/interaction", "/examples/styling", "/examples/misc"}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Errorf("routes mismatch (-want +got):\n%s", diff)
	}

	boom := errors.New("boom")
	_, err = Collect(context.Background(), listerFunc(func(context.Context, string) ([]Record, error) {
		return nil, boom
	}), []string{"/examples/nodes"})
	if !errors.Is(err, boom) {
		t.Errorf("Collect error = %v, want wrapped boom", err)
	}
}
