package main

import (
	"context"
	"fmt"

	"github.com/raphi011/gw/internal/git"
	"github.com/raphi011/gw/internal/output"
	"github.com/raphi011/gw/internal/ui/prompt"
	"github.com/raphi011/gw/internal/ui/styles"
)

type menuOp int

const (
	opStatus menuOp = iota
	opAdd
	opCommit
	opSync
	opPush
	opBranch
	opDiff
	opLog
	opRemote
	opStash
	opTag
	opUndo
	opHistory
	opInit
	opClone
	opConfig
	opQuit
)

type menuEntry struct {
	label string
	op    menuOp
}

func repoMenuEntries() []menuEntry {
	return []menuEntry{
		{"Status", opStatus},
		{"Stage files", opAdd},
		{"Commit", opCommit},
		{"Sync (fetch / pull / push)", opSync},
		{"Push", opPush},
		{"Branches", opBranch},
		{"Diff", opDiff},
		{"Log", opLog},
		{"Remotes", opRemote},
		{"Stash", opStash},
		{"Tags", opTag},
		{"Undo last commit", opUndo},
		{"Command history", opHistory},
		{"Settings", opConfig},
		{"Quit", opQuit},
	}
}

func bareMenuEntries() []menuEntry {
	return []menuEntry{
		{"Initialize repository here", opInit},
		{"Clone repository", opClone},
		{"Command history", opHistory},
		{"Settings", opConfig},
		{"Quit", opQuit},
	}
}

// printHeader shows the repository summary above the menu: branch,
// upstream delta, pending changes and stash count.
func printHeader(ctx context.Context) {
	p := output.FromContext(ctx)

	branch, err := git.CurrentBranch(ctx, "")
	if err != nil {
		return
	}
	if branch == "" {
		branch = "(detached HEAD)"
	}

	delta := git.UpstreamStatus(ctx, "")
	changed, _ := git.ChangedFiles(ctx, "")
	stashes, _ := git.StashEntries(ctx, "")

	p.Println(styles.Render(styles.Bold, "On branch "+branch))
	p.Printf("  %s · %d changed · %d stashed\n\n",
		describeDelta(delta), len(changed), len(stashes))
}

// runMainMenu is the interactive entrypoint. It loops until the user
// quits or cancels; a failing flow prints its error and returns to the
// menu instead of exiting.
func runMainMenu(ctx context.Context) error {
	p := output.FromContext(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		inRepo := git.IsInsideRepo(ctx, "")
		entries := repoMenuEntries()
		if !inRepo {
			entries = bareMenuEntries()
		}

		if inRepo {
			printHeader(ctx)
		} else {
			printWarning(p, "Not inside a git repository")
		}

		labels := make([]string, len(entries))
		for i, e := range entries {
			labels[i] = e.label
		}

		res, err := prompt.Select("What do you want to do?", labels, 0)
		if err != nil {
			return err
		}
		if res.Cancelled {
			return nil
		}

		op := entries[res.Index].op
		if op == opQuit {
			return nil
		}

		if err := runMenuOp(ctx, op); err != nil {
			printError(p, err.Error())
		}
		p.Println("")
	}
}

func runMenuOp(ctx context.Context, op menuOp) error {
	switch op {
	case opStatus:
		return runStatus(ctx)
	case opAdd:
		return runAdd(ctx)
	case opCommit:
		return runCommit(ctx)
	case opSync:
		return runSyncMenu(ctx)
	case opPush:
		return runPushMenu(ctx)
	case opBranch:
		return runBranchMenu(ctx)
	case opDiff:
		return runDiff(ctx)
	case opLog:
		return runLog(ctx)
	case opRemote:
		return runRemoteMenu(ctx)
	case opStash:
		return runStashMenu(ctx)
	case opTag:
		return runTagMenu(ctx)
	case opUndo:
		return runUndo(ctx)
	case opHistory:
		return runHistory(ctx)
	case opInit:
		return runInit(ctx)
	case opClone:
		return runClone(ctx)
	case opConfig:
		return runConfigMenu(ctx)
	}
	return fmt.Errorf("unknown menu operation %d", op)
}
