package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/showcase"
)

var thumbsCmd = &cobra.Command{
	Use:   "thumbs <dir>",
	Short: "Resize every preview image under dir to a web-sized preview.jpg",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := showcase.ProcessPreviews(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d previews\n", n)
		return nil
	},
}
