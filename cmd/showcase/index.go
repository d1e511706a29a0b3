package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eringen/showcase"
	"github.com/eringen/showcase/content"
	"github.com/eringen/showcase/gallery"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the SQLite example index from the content directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		defer log.Sync()

		store, err := showcase.NewStore(v.GetString("database"))
		if err != nil {
			return fmt.Errorf("open index: %w", err)
		}
		defer store.Close()

		dir := content.NewDir(v.GetString("content"), log)
		recs, err := dir.All(cmd.Context(), gallery.SectionRoutes())
		if err != nil {
			return err
		}
		if err := store.ReplaceExamples(cmd.Context(), recs); err != nil {
			return fmt.Errorf("write index: %w", err)
		}
		log.Info("indexed examples", zap.Int("count", len(recs)), zap.String("database", v.GetString("database")))
		fmt.Fprintf(cmd.OutOrStdout(), "indexed %d examples\n", len(recs))
		return nil
	},
}
