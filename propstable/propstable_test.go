package propstable

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUseNodesDataSections(t *testing.T) {
	got := UseNodesData.Sections()
	want := []Section{
		{
			Title: "Params",
			Rows: []Row{{
				Name:        "nodeIds",
				Type:        "string | string[]",
				Description: "A single node ID or an array of node IDs whose `data` objects you want to observe",
			}},
		},
		{
			Title: "Returns",
			Rows:  []Row{{Type: "any | any[]"}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sections mismatch (-want +got):\n%s", diff)
	}
}

func TestSectionsWithoutLeadingHeader(t *testing.T) {
	tbl := Table{Props: []Row{{Name: "x", Type: "number"}, {Name: "Returns"}}}
	got := tbl.Sections()
	if len(got) != 2 || got[0].Title != "" || len(got[0].Rows) != 1 || got[1].Title != "Returns" {
		t.Errorf("Sections = %+v", got)
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("Use-Nodes-Data"); !ok {
		t.Error("expected use-nodes-data to be registered")
	}
	if _, ok := Lookup("use-missing"); ok {
		t.Error("expected use-missing to be unknown")
	}
	if diff := cmp.Diff([]string{"use-nodes-data"}, Slugs()); diff != "" {
		t.Errorf("Slugs mismatch (-want +got):\n%s", diff)
	}
}
