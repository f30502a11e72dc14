package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"searchportal/internal/search"
	"searchportal/internal/validation"
)

var (
	searchPage     int
	searchPageSize int
)

var searchCmd = &cobra.Command{
	Use:   "search <terms...>",
	Short: "Search the seeded index without starting the server",
	Long: `Search ranks the seeded webpages exactly as GET /api/search does and
prints one page of results.

Examples:
  searchportal search जयपुर
  searchportal search --page 2 --page-size 3 राजस्थान किला`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVar(&searchPage, "page", validation.DefaultPage, "page of results to show")
	searchCmd.Flags().IntVar(&searchPageSize, "page-size", validation.DefaultPageSize, "results per page")
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	params, err := validation.ParseSearchParams(
		strings.Join(args, " "),
		strconv.Itoa(searchPage),
		strconv.Itoa(searchPageSize),
	)
	if err != nil {
		return err
	}

	st, err := newStore(ctx, cfg)
	if err != nil {
		return err
	}

	resp, err := search.NewService(st).Search(ctx, params)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	meta := resp.Metadata
	fmt.Fprintf(out, "%d results for %q (page %d of %d)\n\n", meta.TotalResults, meta.Query, meta.CurrentPage, meta.TotalPages)
	for _, r := range resp.Results {
		fmt.Fprintf(out, "[%d] %s\n    %s\n    %s\n\n", r.RelevanceScore, r.Title, r.URL, r.Snippet)
	}
	return nil
}
