package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/raphi011/gw/internal/git"
	"github.com/raphi011/gw/internal/output"
	"github.com/raphi011/gw/internal/ui/prompt"
)

// runBranchMenu handles branch listing, creation, switching, renaming
// and deletion. Reachable from the main menu only.
func runBranchMenu(ctx context.Context) error {
	p := output.FromContext(ctx)

	branches, err := git.LocalBranches(ctx, "")
	if err != nil {
		return err
	}
	current, _ := git.CurrentBranch(ctx, "")

	options := []string{
		"List branches",
		"Create branch",
		"Switch branch",
		"Rename branch",
		"Delete branch",
		"Back",
	}
	res, err := prompt.Select("Branches", options, 0)
	if err != nil || res.Cancelled {
		return err
	}

	switch res.Index {
	case 0:
		for _, b := range branches {
			marker := "  "
			if b == current {
				marker = "* "
			}
			p.Println(marker + b)
		}
		return nil

	case 1:
		name, err := prompt.TextInput("New branch name", "")
		if err != nil || name.Cancelled {
			return err
		}
		if err := git.ValidateBranchName(name.Value); err != nil {
			printError(p, err.Error())
			return nil
		}
		if err := git.Run(ctx, "", "checkout", "-b", name.Value); err != nil {
			return err
		}
		printSuccess(p, "Created and switched to "+name.Value)
		recordHistory(ctx, "branch", "Created branch "+name.Value)
		return nil

	case 2:
		others := otherBranches(branches, current)
		if len(others) == 0 {
			printInfo(p, "No other branches")
			return nil
		}
		sel, err := prompt.Select("Switch to", others, 0)
		if err != nil || sel.Cancelled {
			return err
		}
		if err := git.Run(ctx, "", "checkout", sel.Value); err != nil {
			return err
		}
		printSuccess(p, "Switched to "+sel.Value)
		recordHistory(ctx, "branch", "Switched to "+sel.Value)
		return nil

	case 3:
		sel, err := prompt.Select("Rename which branch?", branches, 0)
		if err != nil || sel.Cancelled {
			return err
		}
		name, err := prompt.TextInput("New name for "+sel.Value, "")
		if err != nil || name.Cancelled {
			return err
		}
		if err := git.ValidateBranchName(name.Value); err != nil {
			printError(p, err.Error())
			return nil
		}
		if err := git.Run(ctx, "", "branch", "-m", sel.Value, name.Value); err != nil {
			return err
		}
		printSuccess(p, fmt.Sprintf("Renamed %s to %s", sel.Value, name.Value))
		recordHistory(ctx, "branch", fmt.Sprintf("Renamed %s to %s", sel.Value, name.Value))
		return nil

	case 4:
		others := otherBranches(branches, current)
		if len(others) == 0 {
			printInfo(p, "No deletable branches")
			return nil
		}
		sel, err := prompt.Select("Delete which branch?", others, 0)
		if err != nil || sel.Cancelled {
			return err
		}
		confirm, err := prompt.Confirm(fmt.Sprintf("Delete branch %q?", sel.Value), false)
		if err != nil || confirm.Cancelled || !confirm.Confirmed {
			return err
		}
		if err := git.Run(ctx, "", "branch", "-d", sel.Value); err != nil {
			if !strings.Contains(err.Error(), "not fully merged") {
				return err
			}
			force, ferr := prompt.Confirm("Branch is not fully merged. Force delete?", false)
			if ferr != nil || force.Cancelled || !force.Confirmed {
				return ferr
			}
			if err := git.Run(ctx, "", "branch", "-D", sel.Value); err != nil {
				return err
			}
		}
		printSuccess(p, "Deleted branch "+sel.Value)
		recordHistory(ctx, "branch", "Deleted branch "+sel.Value)
		return nil
	}
	return nil
}

// otherBranches filters out the checked-out branch; it cannot be
// switched to or deleted.
func otherBranches(branches []string, current string) []string {
	out := make([]string, 0, len(branches))
	for _, b := range branches {
		if b != current {
			out = append(out, b)
		}
	}
	return out
}
