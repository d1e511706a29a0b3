package main

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/eringen/showcase/gallery"
)

func sampleGrouped() *gallery.Grouped {
	return gallery.Aggregate([][]gallery.Record{{
		{Route: "/examples/nodes/custom-node", FrontMatter: &gallery.FrontMatter{Title: "Custom Node"}},
		{Route: "/examples/edges/edge-types", FrontMatter: &gallery.FrontMatter{Title: "Edge Types", IsProExample: true}},
	}}, "", gallery.PreviewConfig{BaseURL: "https://ex.test"})
}

func TestWriteGroupsText(t *testing.T) {
	var buf bytes.Buffer
	if err := writeGroups(&buf, "text", sampleGrouped()); err != nil {
		t.Fatalf("writeGroups failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"nodes (1)", "edges (1)", "Edge Types [pro]", "https://ex.test/react/examples/nodes/custom-node/preview.jpg"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteGroupsYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := writeGroups(&buf, "yaml", sampleGrouped()); err != nil {
		t.Fatalf("writeGroups failed: %v", err)
	}
	var got []listedGroup
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal yaml: %v", err)
	}
	if len(got) != 2 || got[0].Category != "nodes" || got[1].Category != "edges" {
		t.Errorf("groups = %+v", got)
	}
}

func TestWriteGroupsUnknownFormat(t *testing.T) {
	if err := writeGroups(&bytes.Buffer{}, "xml", sampleGrouped()); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
