package main

import (
	"github.com/spf13/cobra"
)

// Settings come from the environment (and .env); see server.LoadConfig.
var rootCmd = &cobra.Command{
	Use:   "spacetraveling",
	Short: "spacetraveling - a blog rendered from Prismic",
	Long: `spacetraveling serves a blog whose posts live in a Prismic repository.
It can run the HTTP server, pre-render the most recent pages to disk, or
list every published post from the command line.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(listCmd)
}
