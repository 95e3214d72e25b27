package main

import (
	"context"
	"fmt"

	"github.com/raphi011/gw/internal/git"
	"github.com/raphi011/gw/internal/output"
	"github.com/raphi011/gw/internal/ui/prompt"
)

// runRemoteMenu handles remote listing, adding, removing, URL changes,
// fetching and picking the default. Reachable from the main menu only.
func runRemoteMenu(ctx context.Context) error {
	p := output.FromContext(ctx)

	remotes, err := git.Remotes(ctx, "")
	if err != nil {
		return err
	}

	options := []string{
		"List remotes",
		"Add remote",
		"Remove remote",
		"Change remote URL",
		"Fetch remote",
		"Set default remote",
		"Back",
	}
	res, err := prompt.Select("Remotes", options, 0)
	if err != nil || res.Cancelled {
		return err
	}

	switch res.Index {
	case 0:
		if len(remotes) == 0 {
			printInfo(p, "No remotes configured")
			return nil
		}
		for _, r := range remotes {
			url, err := git.RemoteURL(ctx, "", r)
			if err != nil {
				url = "?"
			}
			marker := "  "
			if r == cfg.DefaultRemote {
				marker = "* "
			}
			p.Printf("%s%s\t%s\n", marker, r, url)
		}
		return nil

	case 1:
		name, err := prompt.TextInput("Remote name", "")
		if err != nil || name.Cancelled {
			return err
		}
		if name.Value == "" {
			printError(p, "Remote name cannot be empty")
			return nil
		}
		url, ok := remoteURLPrompt(ctx, "Remote URL")
		if !ok {
			return nil
		}
		if err := git.Run(ctx, "", "remote", "add", name.Value, url); err != nil {
			return err
		}
		printSuccess(p, "Added remote "+name.Value)
		recordHistory(ctx, "remote", "Added remote "+name.Value)
		return nil

	case 2:
		if len(remotes) == 0 {
			printInfo(p, "No remotes configured")
			return nil
		}
		sel, err := prompt.Select("Remove which remote?", remotes, 0)
		if err != nil || sel.Cancelled {
			return err
		}
		confirm, err := prompt.Confirm(fmt.Sprintf("Remove remote %q?", sel.Value), false)
		if err != nil || confirm.Cancelled || !confirm.Confirmed {
			return err
		}
		if err := git.Run(ctx, "", "remote", "remove", sel.Value); err != nil {
			return err
		}
		printSuccess(p, "Removed remote "+sel.Value)
		recordHistory(ctx, "remote", "Removed remote "+sel.Value)

		// Reassign the default if it just went away.
		if sel.Value == cfg.DefaultRemote {
			rest, err := git.Remotes(ctx, "")
			if err == nil && len(rest) > 0 {
				cfg.DefaultRemote = rest[0]
				saveConfig(ctx)
				printInfo(p, "Default remote is now "+cfg.DefaultRemote)
			}
		}
		return nil

	case 3:
		remote, ok := pickRemote(ctx, "Change URL of which remote?")
		if !ok {
			return nil
		}
		url, ok := remoteURLPrompt(ctx, "New URL for "+remote)
		if !ok {
			return nil
		}
		if err := git.Run(ctx, "", "remote", "set-url", remote, url); err != nil {
			return err
		}
		printSuccess(p, "Updated URL of "+remote)
		recordHistory(ctx, "remote", "Changed URL of "+remote)
		return nil

	case 4:
		remote, ok := pickRemote(ctx, "Fetch which remote?")
		if !ok {
			return nil
		}
		printWorking(p, "Fetching "+remote+"...")
		if err := git.Stream(ctx, "", p.Writer(), "fetch", remote); err != nil {
			return err
		}
		printSuccess(p, "Fetched "+remote)
		recordHistory(ctx, "remote", "Fetched "+remote)
		return nil

	case 5:
		remote, ok := pickRemote(ctx, "Default remote")
		if !ok {
			return nil
		}
		cfg.DefaultRemote = remote
		saveConfig(ctx)
		printSuccess(p, "Default remote is now "+remote)
		return nil
	}
	return nil
}

// remoteURLPrompt asks for a remote URL and validates it before
// anything is executed.
func remoteURLPrompt(ctx context.Context, title string) (string, bool) {
	url, err := prompt.TextInput(title, "")
	if err != nil || url.Cancelled {
		return "", false
	}
	if err := git.ValidateRemoteURL(url.Value); err != nil {
		printError(output.FromContext(ctx), err.Error())
		return "", false
	}
	return url.Value, true
}
