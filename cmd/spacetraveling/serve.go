package main

import (
	"fmt"

	"github.com/philly/spacetraveling/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the blog and its JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Initialize the app with all dependencies wired
		app, cleanup, err := server.InitializeApp(ctx)
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}
		defer cleanup()

		return app.Run(ctx)
	},
}
