package main

import (
	"fmt"
	"time"

	"github.com/philly/spacetraveling/internal/server"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Pre-renders the home page and the most recent posts",
	Long: `The build command renders index.html and post/{uid}/index.html for the
STATIC_PATHS_LIMIT most recent posts into OUTPUT_DIR. Other posts are
rendered on demand by the server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		tooling, err := server.InitializeTooling(ctx)
		if err != nil {
			return fmt.Errorf("failed to initialize: %w", err)
		}

		start := time.Now()
		result, err := tooling.Builder.Build(ctx)
		if err != nil {
			return fmt.Errorf("build failed: %w", err)
		}

		tooling.Logger.Info(ctx, "build finished",
			"output_dir", tooling.Config.OutputDir,
			"files", len(result.Files),
			"skipped", len(result.Skipped),
			"duration", time.Since(start).String(),
		)
		for _, f := range result.Files {
			fmt.Fprintln(cmd.OutOrStdout(), f)
		}
		return nil
	},
}
