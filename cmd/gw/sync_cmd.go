package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/gw/internal/git"
	"github.com/raphi011/gw/internal/output"
	"github.com/raphi011/gw/internal/ui/prompt"
)

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Fetch, pull or push",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSyncMenu(cmd.Context())
		},
	}
}

func runSyncMenu(ctx context.Context) error {
	p := output.FromContext(ctx)

	if !requireRepo(ctx) {
		return nil
	}

	options := []string{
		"Full sync (fetch, pull, push)",
		"Fetch all remotes",
		"Pull",
		"Push current branch",
		"Back",
	}
	res, err := prompt.Select("Sync", options, 0)
	if err != nil || res.Cancelled {
		return err
	}

	switch res.Index {
	case 0:
		remote, ok := pickRemote(ctx, "Sync against which remote?")
		if !ok {
			return nil
		}
		branch, err := git.CurrentBranch(ctx, "")
		if err != nil {
			return err
		}
		if branch == "" {
			printError(p, "Detached HEAD, cannot sync")
			return nil
		}
		printWorking(p, fmt.Sprintf("Syncing %s with %s...", branch, remote))
		if err := git.Stream(ctx, "", p.Writer(), "fetch", remote); err != nil {
			return err
		}
		if err := git.Stream(ctx, "", p.Writer(), "pull", remote, branch); err != nil {
			return err
		}
		if err := dispatchPush(ctx, branch, []string{remote}); err != nil {
			return err
		}
		recordHistory(ctx, "sync", fmt.Sprintf("Synced %s with %s", branch, remote))
		return nil

	case 1:
		printWorking(p, "Fetching all remotes...")
		if err := git.Stream(ctx, "", p.Writer(), "fetch", "--all", "--prune"); err != nil {
			return err
		}
		printSuccess(p, "Fetched all remotes")
		recordHistory(ctx, "sync", "Fetched all remotes")
		return nil

	case 2:
		remote, ok := pickRemote(ctx, "Pull from which remote?")
		if !ok {
			return nil
		}
		branch, ok := branchPrompt(ctx, "Branch to pull")
		if !ok {
			return nil
		}
		printWorking(p, fmt.Sprintf("Pulling %s from %s...", branch, remote))
		if err := git.Stream(ctx, "", p.Writer(), "pull", remote, branch); err != nil {
			return err
		}
		printSuccess(p, "Pull complete")
		recordHistory(ctx, "sync", fmt.Sprintf("Pulled %s from %s", branch, remote))
		return nil

	case 3:
		branch, err := git.CurrentBranch(ctx, "")
		if err != nil {
			return err
		}
		if branch == "" {
			printError(p, "Detached HEAD, nothing to push")
			return nil
		}
		remote, ok := pickRemote(ctx, "Push to which remote?")
		if !ok {
			return nil
		}
		return dispatchPush(ctx, branch, []string{remote})
	}
	return nil
}
