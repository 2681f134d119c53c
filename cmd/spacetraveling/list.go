package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/philly/spacetraveling/internal/adapters/web"
	"github.com/philly/spacetraveling/internal/posts/application"
	"github.com/philly/spacetraveling/internal/server"
	"github.com/spf13/cobra"
)

var (
	listPageSize int
	listMaxPages int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists published posts, following every page cursor",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		tooling, err := server.InitializeTooling(ctx)
		if err != nil {
			return fmt.Errorf("failed to initialize: %w", err)
		}

		pageSize := listPageSize
		if pageSize <= 0 {
			pageSize = tooling.Config.HomePageSize
		}

		initial, err := tooling.Posts.LoadInitial(ctx, pageSize, "")
		if err != nil {
			return err
		}

		feed := application.NewFeed(tooling.Posts, tooling.Logger, initial)
		result, added := feed.LoadAll(ctx, listMaxPages)
		if !result.OK() {
			return fmt.Errorf("stopped after %d more posts: %w", added, result.Err)
		}

		loc, err := time.LoadLocation(tooling.Config.Timezone)
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "DATE\tUID\tTITLE\tAUTHOR")
		for _, p := range feed.Posts() {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", web.FormatDate(p.PublicationDate, loc), p.UID, p.Title, p.Author)
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		if feed.HasMore() {
			fmt.Fprintf(cmd.ErrOrStderr(), "stopped at --max-pages=%d, more posts remain\n", listMaxPages)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().IntVar(&listPageSize, "page-size", 0, "posts per request (default HOME_PAGE_SIZE)")
	listCmd.Flags().IntVar(&listMaxPages, "max-pages", 0, "stop after this many extra pages (0 means no limit)")
}
