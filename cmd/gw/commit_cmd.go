package main

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/gw/internal/git"
	"github.com/raphi011/gw/internal/output"
	"github.com/raphi011/gw/internal/ui/prompt"
)

func newCommitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commit",
		Short: "Commit changes, optionally pushing afterwards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommit(cmd.Context())
		},
	}
}

func runCommit(ctx context.Context) error {
	p := output.FromContext(ctx)

	if !requireRepo(ctx) {
		return nil
	}

	changed, err := git.ChangedFiles(ctx, "")
	if err != nil {
		return err
	}
	if len(changed) == 0 {
		printInfo(p, "Nothing to commit")
		return nil
	}

	printInfo(p, fmt.Sprintf("%d changed file(s)", len(changed)))

	stage, err := prompt.Confirm("Stage all changes?", true)
	if err != nil || stage.Cancelled {
		return err
	}
	if stage.Confirmed {
		if err := git.Run(ctx, "", "add", "-A"); err != nil {
			return err
		}
	} else {
		sel, err := prompt.MultiSelect("Select files to stage", changed, false)
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
	}

	msg, err := prompt.TextInput("Commit message", "")
	if err != nil || msg.Cancelled {
		return err
	}
	if strings.TrimSpace(msg.Value) == "" {
		printError(p, "Commit message cannot be empty")
		return nil
	}

	if err := git.Run(ctx, "", "commit", "-m", msg.Value); err != nil {
		return err
	}
	printSuccess(p, "Committed: "+msg.Value)
	recordHistory(ctx, "commit", msg.Value)

	if !cfg.AutoPush {
		return nil
	}
	remotes, err := git.Remotes(ctx, "")
	if err != nil || len(remotes) == 0 {
		return nil
	}

	branch, _ := git.CurrentBranch(ctx, "")
	if branch == "" {
		return nil
	}
	remote := cfg.DefaultRemote
	if !slices.Contains(remotes, remote) {
		remote = remotes[0]
	}

	push, err := prompt.Confirm(fmt.Sprintf("Push %s to %s?", branch, remote), true)
	if err != nil || push.Cancelled || !push.Confirmed {
		return err
	}
	return dispatchPush(ctx, branch, []string{remote})
}
