package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/eringen/showcase/content"
	"github.com/eringen/showcase/gallery"
)

var (
	listCategory string
	listFormat   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print examples grouped by category",
	Long: `list reads the content directory and prints the grouped examples.
Without --category only examples lacking a front-matter category are shown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := content.NewDir(v.GetString("content"), newLogger())
		sources, err := gallery.Collect(cmd.Context(), dir, gallery.SectionRoutes())
		if err != nil {
			return err
		}
		grouped := gallery.Aggregate(sources, listCategory, previewConfig())
		return writeGroups(cmd.OutOrStdout(), listFormat, grouped)
	},
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "front-matter category to list")
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "text", "output format: text, json or yaml")
}

type listedExample struct {
	Route    string `json:"route" yaml:"route"`
	Title    string `json:"title" yaml:"title"`
	Pro      bool   `json:"pro,omitempty" yaml:"pro,omitempty"`
	ImageURL string `json:"image_url" yaml:"image_url"`
}

type listedGroup struct {
	Category string          `json:"category" yaml:"category"`
	Examples []listedExample `json:"examples" yaml:"examples"`
}

func writeGroups(w io.Writer, format string, g *gallery.Grouped) error {
	var out []listedGroup
	for _, grp := range g.Groups() {
		lg := listedGroup{Category: grp.Category}
		for _, e := range grp.Examples {
			lg.Examples = append(lg.Examples, listedExample{
				Route:    e.Route,
				Title:    e.Title(),
				Pro:      e.IsPro(),
				ImageURL: e.ImageURL,
			})
		}
		out = append(out, lg)
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(out)
	case "text":
		for _, lg := range out {
			fmt.Fprintf(w, "%s (%d)\n", lg.Category, len(lg.Examples))
			for _, e := range lg.Examples {
				pro := ""
				if e.Pro {
					pro = " [pro]"
				}
				fmt.Fprintf(w, "  %s  %s%s\n    %s\n", e.Route, e.Title, pro, e.ImageURL)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
