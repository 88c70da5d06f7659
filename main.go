package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ghscout/internal/ui"
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts appOptions

	rootCmd := &cobra.Command{
		Use:   "ghscout [query]",
		Short: "Search GitHub accounts and browse their repositories",
		Long: `ghscout searches GitHub for accounts by name and lets you expand each
account to list its public repositories.

Run without a subcommand to start the interactive terminal UI. A query given
as an argument is searched right away.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			return runTUI(cmd.Context(), a, query, stdin, stdout)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file path (default: user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().IntVar(&opts.limit, "limit", 0, "maximum number of accounts per search (default from config)")

	rootCmd.AddCommand(newSearchCommand(&opts, stdout), newConfigCommand(&opts, stdout))
	rootCmd.SetArgs(args[1:])
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

// runTUI starts the Bubble Tea program and blocks until it exits
func runTUI(ctx context.Context, a *app, query string, stdin io.Reader, stdout io.Writer) error {
	// in-flight fetches are cancelled when the UI exits
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := ui.NewModel(ctx, a.cfg, a.search, a.expansion, a.log)
	model.SetInitialQuery(query)

	progOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(stdin),
		tea.WithOutput(stdout),
		tea.WithMouseCellMotion(),
	}
	if a.cfg.UISettings.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(model, progOpts...)
	model.SetProgram(p)

	a.log.Info("starting UI", zap.String("query", query))
	if _, err := p.Run(); err != nil {
		a.log.Error("error running program", zap.Error(err))
		return fmt.Errorf("error running program: %w", err)
	}
	a.log.Info("UI exited normally")
	return nil
}
