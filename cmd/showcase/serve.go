package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eringen/showcase"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Index the content directory and serve the gallery",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		defer log.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		app := showcase.New(siteConfig(), showcase.ViewFuncs{},
			showcase.WithLogger(log),
			showcase.WithStaticDir(v.GetString("static")),
		)
		defer app.Close()

		if err := app.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("server stopped", zap.Error(err))
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", ":3000", "listen address")
	serveCmd.Flags().Bool("watch", false, "reindex when content changes")
	serveCmd.Flags().String("static", "public", "static assets directory")
	v.BindPFlag("addr", serveCmd.Flags().Lookup("addr"))
	v.BindPFlag("watch", serveCmd.Flags().Lookup("watch"))
	v.BindPFlag("static", serveCmd.Flags().Lookup("static"))
}
