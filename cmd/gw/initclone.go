package main

import (
	"context"

	"github.com/raphi011/gw/internal/git"
	"github.com/raphi011/gw/internal/output"
	"github.com/raphi011/gw/internal/ui/prompt"
)

// runInit initializes a repository in the current directory. Offered
// by the main menu when not inside a repository.
func runInit(ctx context.Context) error {
	p := output.FromContext(ctx)

	confirm, err := prompt.Confirm("Initialize a git repository here?", true)
	if err != nil || confirm.Cancelled || !confirm.Confirmed {
		return err
	}

	if err := git.Run(ctx, "", "init", "-b", cfg.DefaultBranch); err != nil {
		return err
	}
	printSuccess(p, "Initialized repository on "+cfg.DefaultBranch)
	recordHistory(ctx, "init", "Initialized repository")

	if cfg.Name != "" {
		if err := git.Run(ctx, "", "config", "user.name", cfg.Name); err != nil {
			return err
		}
	}
	if cfg.Email != "" {
		if err := git.Run(ctx, "", "config", "user.email", cfg.Email); err != nil {
			return err
		}
	}

	addOrigin, err := prompt.Confirm("Add an origin remote?", false)
	if err != nil || addOrigin.Cancelled || !addOrigin.Confirmed {
		return err
	}
	url, ok := remoteURLPrompt(ctx, "Origin URL")
	if !ok {
		return nil
	}
	if err := git.Run(ctx, "", "remote", "add", "origin", url); err != nil {
		return err
	}
	printSuccess(p, "Added remote origin")
	return nil
}

// runClone clones a repository into the current directory.
func runClone(ctx context.Context) error {
	p := output.FromContext(ctx)

	url, ok := remoteURLPrompt(ctx, "Repository URL")
	if !ok {
		return nil
	}

	dir, err := prompt.TextInput("Target directory (empty for default)", "")
	if err != nil || dir.Cancelled {
		return err
	}

	args := []string{"clone", url}
	if dir.Value != "" {
		args = append(args, dir.Value)
	}

	printWorking(p, "Cloning "+url+"...")
	if err := git.Stream(ctx, "", p.Writer(), args...); err != nil {
		return err
	}
	printSuccess(p, "Clone complete")
	recordHistory(ctx, "clone", "Cloned "+url)
	return nil
}
