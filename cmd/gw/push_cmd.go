package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/gw/internal/dispatch"
	"github.com/raphi011/gw/internal/git"
	"github.com/raphi011/gw/internal/output"
	"github.com/raphi011/gw/internal/ui/prompt"
)

func newPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Push a branch to one or more remotes",
		Long: `Push dispatches a branch to any subset of the configured remotes.

Multiple targets run in parallel when parallel_push is enabled; results
are always reported in the order the remotes were chosen.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPushMenu(cmd.Context())
		},
	}
}

type pushOp int

const (
	pushOne pushOp = iota
	pushSelected
	pushAll
	pushDry
	pushBack
)

func runPushMenu(ctx context.Context) error {
	p := output.FromContext(ctx)

	if !requireRepo(ctx) {
		return nil
	}

	remotes, err := git.Remotes(ctx, "")
	if err != nil {
		return err
	}
	if len(remotes) == 0 {
		printError(p, "No remotes configured")
		return nil
	}

	branch, _ := git.CurrentBranch(ctx, "")
	if branch == "" {
		branch = cfg.DefaultBranch
	}
	printInfo(p, fmt.Sprintf("Branch %s · %d remote(s): %s",
		branch, len(remotes), strings.Join(remotes, ", ")))

	entries := []struct {
		label string
		op    pushOp
	}{
		{"Push to one remote", pushOne},
		{"Push to selected remotes", pushSelected},
		{fmt.Sprintf("Push to all %d remotes", len(remotes)), pushAll},
		{"Dry run", pushDry},
		{"Back", pushBack},
	}
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.label
	}

	res, err := prompt.Select("Push", labels, 0)
	if err != nil {
		return err
	}
	if res.Cancelled {
		return nil
	}

	switch entries[res.Index].op {
	case pushOne:
		remote, ok := pickRemote(ctx, "Push to which remote?")
		if !ok {
			return nil
		}
		branch, ok := branchPrompt(ctx, "Branch to push")
		if !ok {
			return nil
		}
		return dispatchPush(ctx, branch, []string{remote})

	case pushSelected:
		sel, err := prompt.MultiSelect("Select remotes", remotes, false)
		if err != nil || sel.Cancelled {
			return err
		}
		if len(sel.Values) == 0 {
			printWarning(p, "No remotes selected")
			return nil
		}
		branch, ok := branchPrompt(ctx, "Branch to push")
		if !ok {
			return nil
		}
		return dispatchPush(ctx, branch, sel.Values)

	case pushAll:
		confirm, err := prompt.Confirm(
			fmt.Sprintf("Push to all %d remotes?", len(remotes)), true)
		if err != nil || confirm.Cancelled || !confirm.Confirmed {
			return err
		}
		branch, ok := branchPrompt(ctx, "Branch to push")
		if !ok {
			return nil
		}
		return dispatchPush(ctx, branch, remotes)

	case pushDry:
		remote, ok := pickRemote(ctx, "Dry-run push to which remote?")
		if !ok {
			return nil
		}
		branch, ok := branchPrompt(ctx, "Branch to push")
		if !ok {
			return nil
		}
		printWorking(p, fmt.Sprintf("Dry run: %s -> %s", branch, remote))
		return git.PushDryRun(ctx, "", p.Writer(), remote, branch)
	}
	return nil
}

// dispatchPush pushes branch to every target and prints the per-remote
// results followed by the normalized summary. One remote failing never
// stops the others.
func dispatchPush(ctx context.Context, branch string, targets []string) error {
	p := output.FromContext(ctx)

	mode := dispatch.ModeSequential
	if cfg.ParallelPush && len(targets) > 1 {
		mode = dispatch.ModeConcurrent
		printWorking(p, fmt.Sprintf("Pushing %s to %d remotes in parallel...", branch, len(targets)))
	} else {
		printWorking(p, fmt.Sprintf("Pushing %s to %s...", branch, strings.Join(targets, ", ")))
	}

	engine := dispatch.New(func(ctx context.Context, target, branch string) error {
		err := git.Push(ctx, "", target, branch)
		if err != nil {
			printError(p, fmt.Sprintf("%s: %v", target, err))
		} else {
			printSuccess(p, "Pushed to "+target)
		}
		return err
	})

	outcomes, err := engine.Dispatch(ctx, dispatch.Request{
		Branch:  branch,
		Targets: targets,
		Mode:    mode,
	})
	if err != nil {
		return err
	}

	summary, err := dispatch.Summarize(targets, outcomes)
	if err != nil {
		return err
	}

	p.Printf("Summary: %d/%d remotes successful\n", summary.Succeeded, summary.Total)
	if len(summary.Failed) > 0 {
		p.Printf("Failed remotes: %s\n", strings.Join(summary.Failed, ", "))
	}

	recordHistory(ctx, "push",
		fmt.Sprintf("Pushed %s to %d/%d remote(s)", branch, summary.Succeeded, summary.Total))
	return nil
}
