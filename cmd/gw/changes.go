package main

import (
	"context"
	"strconv"

	"github.com/raphi011/gw/internal/git"
	"github.com/raphi011/gw/internal/output"
	"github.com/raphi011/gw/internal/ui/prompt"
)

// runDiff shows unstaged, staged or last-commit changes. Reachable
// from the main menu only.
func runDiff(ctx context.Context) error {
	p := output.FromContext(ctx)

	options := []string{"Unstaged changes", "Staged changes", "Last commit", "Back"}
	res, err := prompt.Select("Diff", options, 0)
	if err != nil || res.Cancelled {
		return err
	}

	switch res.Index {
	case 0:
		return git.Stream(ctx, "", p.Writer(), "diff")
	case 1:
		return git.Stream(ctx, "", p.Writer(), "diff", "--cached")
	case 2:
		return git.Stream(ctx, "", p.Writer(), "show", "HEAD")
	}
	return nil
}

// runLog shows recent commits in the chosen format.
func runLog(ctx context.Context) error {
	p := output.FromContext(ctx)

	count, err := prompt.TextInput("How many commits?", "10")
	if err != nil || count.Cancelled {
		return err
	}
	n, err := strconv.Atoi(count.Value)
	if err != nil || n <= 0 {
		printError(p, "Count must be a positive number")
		return nil
	}

	formats := []string{"Oneline", "Detailed", "Graph", "Back"}
	res, err := prompt.Select("Log format", formats, 0)
	if err != nil || res.Cancelled {
		return err
	}

	limit := "-" + strconv.Itoa(n)
	switch res.Index {
	case 0:
		return git.Stream(ctx, "", p.Writer(), "log", "--oneline", limit)
	case 1:
		return git.Stream(ctx, "", p.Writer(), "log", limit)
	case 2:
		return git.Stream(ctx, "", p.Writer(), "log", "--oneline", "--graph", "--all", limit)
	}
	return nil
}
