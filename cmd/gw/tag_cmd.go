package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/gw/internal/git"
	"github.com/raphi011/gw/internal/output"
	"github.com/raphi011/gw/internal/ui/prompt"
)

func newTagCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tag",
		Short: "Create, delete and push tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTagMenu(cmd.Context())
		},
	}
}

func runTagMenu(ctx context.Context) error {
	p := output.FromContext(ctx)

	if !requireRepo(ctx) {
		return nil
	}

	tags, err := git.Tags(ctx, "")
	if err != nil {
		return err
	}

	options := []string{
		fmt.Sprintf("List tags (%d)", len(tags)),
		"Create tag",
		"Delete tag",
		"Push one tag",
		"Push all tags",
		"Back",
	}
	res, err := prompt.Select("Tags", options, 0)
	if err != nil || res.Cancelled {
		return err
	}

	switch res.Index {
	case 0:
		if len(tags) == 0 {
			printInfo(p, "No tags")
			return nil
		}
		for _, t := range tags {
			p.Println(t)
		}
		return nil

	case 1:
		name, err := prompt.TextInput("Tag name", "")
		if err != nil || name.Cancelled {
			return err
		}
		// Tags share git's refname rules with branches.
		if err := git.ValidateBranchName(name.Value); err != nil {
			printError(p, err.Error())
			return nil
		}
		msg, err := prompt.TextInput("Tag message (empty for lightweight tag)", "")
		if err != nil || msg.Cancelled {
			return err
		}
		args := []string{"tag", name.Value}
		if msg.Value != "" {
			args = []string{"tag", "-a", name.Value, "-m", msg.Value}
		}
		if err := git.Run(ctx, "", args...); err != nil {
			return err
		}
		printSuccess(p, "Created tag "+name.Value)
		recordHistory(ctx, "tag", "Created tag "+name.Value)
		return nil

	case 2:
		if len(tags) == 0 {
			printInfo(p, "No tags")
			return nil
		}
		sel, err := prompt.Select("Delete which tag?", tags, 0)
		if err != nil || sel.Cancelled {
			return err
		}
		confirm, err := prompt.Confirm(fmt.Sprintf("Delete tag %q?", sel.Value), false)
		if err != nil || confirm.Cancelled || !confirm.Confirmed {
			return err
		}
		if err := git.Run(ctx, "", "tag", "-d", sel.Value); err != nil {
			return err
		}
		printSuccess(p, "Deleted tag "+sel.Value)
		recordHistory(ctx, "tag", "Deleted tag "+sel.Value)

		alsoRemote, err := prompt.Confirm("Also delete it from a remote?", false)
		if err != nil || alsoRemote.Cancelled || !alsoRemote.Confirmed {
			return err
		}
		remote, ok := pickRemote(ctx, "Delete tag from which remote?")
		if !ok {
			return nil
		}
		if err := git.Run(ctx, "", "push", remote, "--delete", sel.Value); err != nil {
			return err
		}
		printSuccess(p, fmt.Sprintf("Deleted tag %s from %s", sel.Value, remote))
		return nil

	case 3:
		if len(tags) == 0 {
			printInfo(p, "No tags to push")
			return nil
		}
		sel, err := prompt.Select("Push which tag?", tags, 0)
		if err != nil || sel.Cancelled {
			return err
		}
		remote, ok := pickRemote(ctx, "Push tag to which remote?")
		if !ok {
			return nil
		}
		if err := git.Run(ctx, "", "push", remote, sel.Value); err != nil {
			return err
		}
		printSuccess(p, fmt.Sprintf("Pushed tag %s to %s", sel.Value, remote))
		recordHistory(ctx, "tag", fmt.Sprintf("Pushed tag %s to %s", sel.Value, remote))
		return nil

	case 4:
		if len(tags) == 0 {
			printInfo(p, "No tags to push")
			return nil
		}
		remote, ok := pickRemote(ctx, "Push tags to which remote?")
		if !ok {
			return nil
		}
		printWorking(p, "Pushing tags to "+remote+"...")
		if err := git.Run(ctx, "", "push", remote, "--tags"); err != nil {
			return err
		}
		printSuccess(p, "Pushed tags to "+remote)
		recordHistory(ctx, "tag", "Pushed tags to "+remote)
		return nil
	}
	return nil
}
