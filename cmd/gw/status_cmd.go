package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/gw/internal/git"
	"github.com/raphi011/gw/internal/output"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the working tree status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd.Context())
		},
	}
}

func runStatus(ctx context.Context) error {
	p := output.FromContext(ctx)

	if !requireRepo(ctx) {
		return nil
	}

	printHeader(ctx)

	changed, err := git.ChangedFiles(ctx, "")
	if err != nil {
		return err
	}
	if len(changed) == 0 {
		printSuccess(p, "Working tree clean")
		return nil
	}

	printInfo(p, fmt.Sprintf("%d changed file(s):", len(changed)))
	return git.Stream(ctx, "", p.Writer(), "status", "--short")
}
