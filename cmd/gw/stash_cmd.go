package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/gw/internal/git"
	"github.com/raphi011/gw/internal/output"
	"github.com/raphi011/gw/internal/ui/prompt"
)

func newStashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stash",
		Short: "Stash and restore working tree changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStashMenu(cmd.Context())
		},
	}
}

func runStashMenu(ctx context.Context) error {
	p := output.FromContext(ctx)

	if !requireRepo(ctx) {
		return nil
	}

	entries, err := git.StashEntries(ctx, "")
	if err != nil {
		return err
	}

	options := []string{
		"Stash changes",
		fmt.Sprintf("List stashes (%d)", len(entries)),
		"Apply stash",
		"Pop stash",
		"Drop stash",
		"Clear all stashes",
		"Back",
	}
	res, err := prompt.Select("Stash", options, 0)
	if err != nil || res.Cancelled {
		return err
	}

	switch res.Index {
	case 0:
		changed, err := git.ChangedFiles(ctx, "")
		if err != nil {
			return err
		}
		if len(changed) == 0 {
			printInfo(p, "Nothing to stash")
			return nil
		}
		msg, err := prompt.TextInput("Stash message (optional)", "")
		if err != nil || msg.Cancelled {
			return err
		}
		args := []string{"stash", "push"}
		if msg.Value != "" {
			args = append(args, "-m", msg.Value)
		}
		if err := git.Run(ctx, "", args...); err != nil {
			return err
		}
		printSuccess(p, fmt.Sprintf("Stashed %d file(s)", len(changed)))
		recordHistory(ctx, "stash", "Stashed changes")
		return nil

	case 1:
		if len(entries) == 0 {
			printInfo(p, "No stashes")
			return nil
		}
		for _, e := range entries {
			p.Println(e)
		}
		return nil

	case 2:
		return stashPick(ctx, entries, "Apply which stash?", "apply")

	case 3:
		return stashPick(ctx, entries, "Pop which stash?", "pop")

	case 4:
		if len(entries) == 0 {
			printInfo(p, "No stashes")
			return nil
		}
		sel, err := prompt.Select("Drop which stash?", entries, 0)
		if err != nil || sel.Cancelled {
			return err
		}
		confirm, err := prompt.Confirm("Drop this stash? This cannot be undone.", false)
		if err != nil || confirm.Cancelled || !confirm.Confirmed {
			return err
		}
		if err := git.Run(ctx, "", "stash", "drop", stashRef(sel.Index)); err != nil {
			return err
		}
		printSuccess(p, "Dropped stash")
		recordHistory(ctx, "stash", "Dropped stash")
		return nil

	case 5:
		if len(entries) == 0 {
			printInfo(p, "No stashes")
			return nil
		}
		if !confirmDestructive(ctx, fmt.Sprintf("This deletes all %d stash(es).", len(entries))) {
			return nil
		}
		if err := git.Run(ctx, "", "stash", "clear"); err != nil {
			return err
		}
		printSuccess(p, "Cleared all stashes")
		recordHistory(ctx, "stash", "Cleared all stashes")
		return nil
	}
	return nil
}

func stashRef(index int) string {
	return fmt.Sprintf("stash@{%d}", index)
}

func stashPick(ctx context.Context, entries []string, title, action string) error {
	p := output.FromContext(ctx)

	if len(entries) == 0 {
		printInfo(p, "No stashes")
		return nil
	}
	sel, err := prompt.Select(title, entries, 0)
	if err != nil || sel.Cancelled {
		return err
	}
	if err := git.Run(ctx, "", "stash", action, stashRef(sel.Index)); err != nil {
		return err
	}
	printSuccess(p, "Stash "+action+" complete")
	recordHistory(ctx, "stash", "Stash "+action)
	return nil
}
