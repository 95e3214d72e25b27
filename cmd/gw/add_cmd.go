package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/gw/internal/git"
	"github.com/raphi011/gw/internal/output"
	"github.com/raphi011/gw/internal/ui/prompt"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Stage changed files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd.Context())
		},
	}
}

func runAdd(ctx context.Context) error {
	p := output.FromContext(ctx)

	if !requireRepo(ctx) {
		return nil
	}

	changed, err := git.ChangedFiles(ctx, "")
	if err != nil {
		return err
	}
	if len(changed) == 0 {
		printInfo(p, "Nothing to stage")
		return nil
	}

	sel, err := prompt.MultiSelect("Select files to stage", changed, true)
	if err != nil || sel.Cancelled {
		return err
	}
	if len(sel.Values) == 0 {
		printWarning(p, "No files selected")
		return nil
	}

	args := append([]string{"add", "--"}, sel.Values...)
	if err := git.Run(ctx, "", args...); err != nil {
		return err
	}

	printSuccess(p, fmt.Sprintf("Staged %d file(s)", len(sel.Values)))
	recordHistory(ctx, "add", fmt.Sprintf("Staged %d file(s)", len(sel.Values)))
	return nil
}
