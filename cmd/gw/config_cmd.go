package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/raphi011/gw/internal/output"
	"github.com/raphi011/gw/internal/ui/prompt"
	"github.com/raphi011/gw/internal/ui/styles"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View and change gw settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigMenu(cmd.Context())
		},
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func runConfigMenu(ctx context.Context) error {
	p := output.FromContext(ctx)

	for {
		options := []string{
			fmt.Sprintf("Name: %s", cfg.Name),
			fmt.Sprintf("Email: %s", cfg.Email),
			fmt.Sprintf("Default branch: %s", cfg.DefaultBranch),
			fmt.Sprintf("Default remote: %s", cfg.DefaultRemote),
			fmt.Sprintf("Auto push after commit: %s", onOff(cfg.AutoPush)),
			fmt.Sprintf("Parallel push: %s", onOff(cfg.ParallelPush)),
			fmt.Sprintf("Emoji: %s", onOff(cfg.ShowEmoji)),
			fmt.Sprintf("Colors: %s", onOff(cfg.UseColors)),
			fmt.Sprintf("History size: %d", cfg.MaxHistory),
			"Back",
		}
		res, err := prompt.Select("Settings", options, 0)
		if err != nil || res.Cancelled {
			return err
		}

		switch res.Index {
		case 0:
			v, err := prompt.TextInput("Name", cfg.Name)
			if err != nil || v.Cancelled {
				return err
			}
			cfg.Name = v.Value

		case 1:
			v, err := prompt.TextInput("Email", cfg.Email)
			if err != nil || v.Cancelled {
				return err
			}
			cfg.Email = v.Value

		case 2:
			v, err := prompt.TextInput("Default branch", cfg.DefaultBranch)
			if err != nil || v.Cancelled {
				return err
			}
			cfg.DefaultBranch = v.Value

		case 3:
			v, err := prompt.TextInput("Default remote", cfg.DefaultRemote)
			if err != nil || v.Cancelled {
				return err
			}
			cfg.DefaultRemote = v.Value

		case 4:
			cfg.AutoPush = !cfg.AutoPush

		case 5:
			cfg.ParallelPush = !cfg.ParallelPush

		case 6:
			cfg.ShowEmoji = !cfg.ShowEmoji
			styles.SetEmoji(cfg.ShowEmoji)

		case 7:
			cfg.UseColors = !cfg.UseColors
			styles.DetectColors(cfg.UseColors)

		case 8:
			v, err := prompt.TextInput("History size", strconv.Itoa(cfg.MaxHistory))
			if err != nil || v.Cancelled {
				return err
			}
			n, err := strconv.Atoi(v.Value)
			if err != nil || n <= 0 {
				printError(p, "History size must be a positive number")
				continue
			}
			cfg.MaxHistory = n

		case 9:
			return nil
		}

		saveConfig(ctx)
		printSuccess(p, "Settings saved")
	}
}
