package main

import (
	"context"
	"fmt"

	"github.com/raphi011/gw/internal/git"
	"github.com/raphi011/gw/internal/history"
	"github.com/raphi011/gw/internal/log"
	"github.com/raphi011/gw/internal/output"
	"github.com/raphi011/gw/internal/ui/prompt"
	"github.com/raphi011/gw/internal/ui/styles"
)

func printSuccess(p *output.Printer, msg string) {
	p.Println(styles.Render(styles.SuccessStyle, styles.CurrentSymbols().Success+msg))
}

func printError(p *output.Printer, msg string) {
	p.Println(styles.Render(styles.ErrorStyle, styles.CurrentSymbols().Error+msg))
}

func printInfo(p *output.Printer, msg string) {
	p.Println(styles.Render(styles.InfoStyle, styles.CurrentSymbols().Info+msg))
}

func printWorking(p *output.Printer, msg string) {
	p.Println(styles.Render(styles.WorkingStyle, styles.CurrentSymbols().Working+msg))
}

func printWarning(p *output.Printer, msg string) {
	p.Println(styles.Render(styles.WarningStyle, styles.CurrentSymbols().Warning+msg))
}

// recordHistory appends a history entry. A write failure is a warning,
// never a reason to fail the operation that completed.
func recordHistory(ctx context.Context, command, description string) {
	if err := history.Append(histPath, command, description, cfg.MaxHistory); err != nil {
		log.FromContext(ctx).Printf("Warning: could not save history: %v\n", err)
	}
}

// saveConfig persists the config. A write failure is a warning; the
// mutation that triggered the save stays in effect for this session.
func saveConfig(ctx context.Context) {
	if err := cfg.Save(cfgPath); err != nil {
		log.FromContext(ctx).Printf("Warning: could not save configuration: %v\n", err)
	}
}

// requireRepo reports whether the current directory is a git
// repository, printing an error if not.
func requireRepo(ctx context.Context) bool {
	if !git.IsInsideRepo(ctx, "") {
		printError(output.FromContext(ctx), "Not a git repository")
		return false
	}
	return true
}

// pickRemote lets the user choose one remote, preselecting the
// configured default. Returns false if there are no remotes or the
// user cancelled.
func pickRemote(ctx context.Context, title string) (string, bool) {
	p := output.FromContext(ctx)

	remotes, err := git.Remotes(ctx, "")
	if err != nil {
		printError(p, err.Error())
		return "", false
	}
	if len(remotes) == 0 {
		printError(p, "No remotes configured")
		return "", false
	}

	defaultIndex := 0
	for i, r := range remotes {
		if r == cfg.DefaultRemote {
			defaultIndex = i
			break
		}
	}

	res, err := prompt.Select(title, remotes, defaultIndex)
	if err != nil || res.Cancelled {
		return "", false
	}
	return res.Value, true
}

// branchPrompt asks for a branch name, defaulting to the current
// branch (or the configured default branch), and validates it before
// anything is executed.
func branchPrompt(ctx context.Context, title string) (string, bool) {
	def, _ := git.CurrentBranch(ctx, "")
	if def == "" {
		def = cfg.DefaultBranch
	}

	res, err := prompt.TextInput(title, def)
	if err != nil || res.Cancelled {
		return "", false
	}
	if err := git.ValidateBranchName(res.Value); err != nil {
		printError(output.FromContext(ctx), err.Error())
		return "", false
	}
	return res.Value, true
}

// describeDelta formats ahead/behind counts for status headers.
func describeDelta(d git.Delta) string {
	return fmt.Sprintf("↑ %d ahead, ↓ %d behind", d.Ahead, d.Behind)
}
