package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/gw/internal/git"
	"github.com/raphi011/gw/internal/output"
	"github.com/raphi011/gw/internal/ui/prompt"
)

func newUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Undo commits: soft or hard reset, or reset to a commit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUndo(cmd.Context())
		},
	}
}

func runUndo(ctx context.Context) error {
	p := output.FromContext(ctx)

	if !requireRepo(ctx) {
		return nil
	}

	commits, err := git.RecentCommits(ctx, "", 1)
	if err != nil {
		return err
	}
	if len(commits) == 0 {
		printInfo(p, "No commits to undo")
		return nil
	}
	printInfo(p, "Last commit: "+commits[0])

	options := []string{
		"Undo last commit, keep changes staged (soft)",
		"Discard last commit and its changes (hard)",
		"Reset to a chosen commit",
		"Show reflog",
		"Back",
	}
	res, err := prompt.Select("Undo", options, 0)
	if err != nil || res.Cancelled {
		return err
	}

	switch res.Index {
	case 0:
		confirm, err := prompt.Confirm("Undo this commit? Its changes stay staged.", false)
		if err != nil || confirm.Cancelled || !confirm.Confirmed {
			return err
		}
		if err := git.Run(ctx, "", "reset", "--soft", "HEAD~1"); err != nil {
			return err
		}
		printSuccess(p, "Undid last commit, changes kept staged")
		recordHistory(ctx, "undo", "Soft reset of "+commits[0])
		return nil

	case 1:
		if !confirmDestructive(ctx, "Hard reset discards the commit AND its changes.") {
			return nil
		}
		if err := git.Run(ctx, "", "reset", "--hard", "HEAD~1"); err != nil {
			return err
		}
		printSuccess(p, "Discarded last commit")
		recordHistory(ctx, "undo", "Hard reset of "+commits[0])
		return nil

	case 2:
		return resetToCommit(ctx)

	case 3:
		return git.Stream(ctx, "", p.Writer(), "reflog", "-15")
	}
	return nil
}

func resetToCommit(ctx context.Context) error {
	p := output.FromContext(ctx)

	commits, err := git.RecentCommits(ctx, "", 15)
	if err != nil {
		return err
	}
	sel, err := prompt.Select("Reset to which commit?", commits, 0)
	if err != nil || sel.Cancelled {
		return err
	}
	// The oneline format starts with the abbreviated hash.
	var hash string
	if _, err := fmt.Sscanf(sel.Value, "%s", &hash); err != nil {
		return fmt.Errorf("could not parse commit %q", sel.Value)
	}

	modes := []string{
		"Soft (keep changes staged)",
		"Mixed (keep changes unstaged)",
		"Hard (discard changes)",
		"Back",
	}
	mode, err := prompt.Select("Reset mode", modes, 0)
	if err != nil || mode.Cancelled {
		return err
	}

	var flag string
	switch mode.Index {
	case 0:
		flag = "--soft"
	case 1:
		flag = "--mixed"
	case 2:
		flag = "--hard"
		if !confirmDestructive(ctx, "Hard reset discards all changes after "+hash+".") {
			return nil
		}
	default:
		return nil
	}

	if flag != "--hard" {
		confirm, err := prompt.Confirm(fmt.Sprintf("Reset %s to %s?", flag, hash), false)
		if err != nil || confirm.Cancelled || !confirm.Confirmed {
			return err
		}
	}

	if err := git.Run(ctx, "", "reset", flag, hash); err != nil {
		return err
	}
	printSuccess(p, fmt.Sprintf("Reset %s to %s", flag, hash))
	recordHistory(ctx, "undo", fmt.Sprintf("Reset %s to %s", flag, hash))
	return nil
}

// confirmDestructive asks twice before an irreversible operation.
func confirmDestructive(ctx context.Context, warning string) bool {
	printWarning(output.FromContext(ctx), warning)

	first, err := prompt.Confirm("Continue?", false)
	if err != nil || first.Cancelled || !first.Confirmed {
		return false
	}
	second, err := prompt.Confirm("Are you sure? This cannot be undone.", false)
	if err != nil || second.Cancelled || !second.Confirmed {
		return false
	}
	return true
}
