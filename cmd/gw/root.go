package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/gw/internal/config"
	"github.com/raphi011/gw/internal/git"
	"github.com/raphi011/gw/internal/history"
	"github.com/raphi011/gw/internal/log"
	"github.com/raphi011/gw/internal/output"
	"github.com/raphi011/gw/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Shared state loaded once at startup
	cfg      config.Config
	cfgPath  string
	histPath string
)

// rootCmd represents the base command. Without a subcommand it enters
// the interactive menu.
var rootCmd = &cobra.Command{
	Use:   "gw",
	Short: "Interactive git wrapper",
	Long: `gw is a menu-driven front-end for git.

Run it without arguments for the interactive menu, or jump straight
into a flow with one of the subcommands.`,
	Args:                       cobra.NoArgs,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}

		// Nothing works without git; fail fast.
		if err := git.CheckGit(); err != nil {
			return err
		}

		ctx := cmd.Context()
		ctx = log.WithLogger(ctx, log.New(os.Stderr, verbose, quiet))
		ctx = output.WithPrinter(ctx, os.Stdout)
		cmd.SetContext(ctx)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isatty.IsTerminal(os.Stdin.Fd()) {
			return fmt.Errorf("interactive mode requires a terminal; see 'gw -h' for subcommands")
		}
		return runMainMenu(cmd.Context())
	},
}

// Execute loads state, wires the context and runs the root command.
func Execute() {
	var err error

	cfgPath, err = config.Path()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg, err = config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	histPath, err = history.Path()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	styles.DetectColors(cfg.UseColors)
	styles.SetEmoji(cfg.ShowEmoji)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show git commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress diagnostic output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newCommitCmd())
	rootCmd.AddCommand(newSyncCmd())
	rootCmd.AddCommand(newPushCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStashCmd())
	rootCmd.AddCommand(newTagCmd())
	rootCmd.AddCommand(newUndoCmd())
	rootCmd.AddCommand(newHistoryCmd())
}
