package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/raphi011/gw/internal/history"
	"github.com/raphi011/gw/internal/output"
)

func newHistoryCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent gw operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printHistory(cmd.Context(), filter)
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Fuzzy-filter entries")
	return cmd
}

func runHistory(ctx context.Context) error {
	return printHistory(ctx, "")
}

// printHistory lists entries newest first, optionally fuzzy-filtered
// on command and description.
func printHistory(ctx context.Context, filter string) error {
	p := output.FromContext(ctx)

	entries, err := history.Load(histPath)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		printInfo(p, "No history yet")
		return nil
	}

	if filter != "" {
		haystack := make([]string, len(entries))
		for i, e := range entries {
			haystack[i] = e.Command + " " + e.Description
		}
		matches := fuzzy.Find(filter, haystack)
		filtered := make([]history.Entry, len(matches))
		for i, m := range matches {
			filtered[i] = entries[m.Index]
		}
		entries = filtered
		if len(entries) == 0 {
			printInfo(p, "No matching entries")
			return nil
		}
	}

	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		ts := time.Unix(e.Timestamp, 0).Format("2006-01-02 15:04")
		p.Println(fmt.Sprintf("%s  %-8s %s", ts, e.Command, e.Description))
	}
	return nil
}
