package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"briefing-proxy/internal/infra/extractor"
	"briefing-proxy/internal/usecase/briefing"
)

func newExtractCmd() *cobra.Command {
	var (
		item, title, summary string
		showPrompt           bool
	)

	cmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Extract news cards from a saved dashboard page",
		Long: "Runs the news card extraction against an HTML file and prints the " +
			"formatted article blocks followed by the article count. Selector flags " +
			"override EXTRACTOR_* environment settings.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			selectors := extractor.Selectors{
				Item:    os.Getenv("EXTRACTOR_ITEM_SELECTOR"),
				Title:   os.Getenv("EXTRACTOR_TITLE_SELECTOR"),
				Summary: os.Getenv("EXTRACTOR_SUMMARY_SELECTOR"),
			}
			if item != "" {
				selectors.Item = item
			}
			if title != "" {
				selectors.Title = title
			}
			if summary != "" {
				selectors.Summary = summary
			}

			ext := extractor.New(selectors)
			articles := ext.Articles(string(data))
			block := ext.Format(articles)

			out := cmd.OutOrStdout()
			if showPrompt && len(articles) > 0 {
				fmt.Fprintln(out, briefing.BuildPrompt(block, len(articles)))
			} else if block != "" {
				fmt.Fprintln(out, block)
			}
			fmt.Fprintf(out, "articles: %d\n", len(articles))
			return nil
		},
	}

	cmd.Flags().StringVar(&item, "item", "", "CSS selector for a news card")
	cmd.Flags().StringVar(&title, "title", "", "CSS selector for the heading link inside a card")
	cmd.Flags().StringVar(&summary, "summary", "", "CSS selector for the summary inside a card")
	cmd.Flags().BoolVar(&showPrompt, "prompt", false, "print the full prompt sent to the model")
	return cmd
}
