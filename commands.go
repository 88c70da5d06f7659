package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"ghscout/internal/config"
	"ghscout/internal/controller"
	"ghscout/internal/domain"
	"ghscout/internal/lifecycle"
)

// maxConcurrentListings bounds the repository fetches of search --repos
const maxConcurrentListings = 4

func newSearchCommand(opts *appOptions, stdout io.Writer) *cobra.Command {
	var withRepos bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search accounts and print them without starting the UI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*opts)
			if err != nil {
				return err
			}
			defer a.Close()

			query := args[0]
			if !a.search.Run(cmd.Context(), query) {
				return errors.New("query must not be blank")
			}

			store := a.search.Store()
			if store.Error() != "" {
				return errors.New(store.Error())
			}
			accounts := store.Results()
			if len(accounts) == 0 {
				fmt.Fprintf(stdout, "No users found for %q.\n", query)
				return nil
			}

			cards := controller.NewCards(accounts)
			if withRepos {
				g, ctx := errgroup.WithContext(cmd.Context())
				g.SetLimit(maxConcurrentListings)
				for _, card := range cards {
					g.Go(func() error {
						// failures are recorded per account, never returned
						a.expansion.Run(ctx, card)
						return nil
					})
				}
				_ = g.Wait()
			}

			repos := a.expansion.Store()
			for _, card := range cards {
				fmt.Fprintln(stdout, card.Account.Login)
				if withRepos {
					printRepositories(stdout, repos.Get(card.Account.ID), a.cfg.UISettings.ShowDescriptions)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withRepos, "repos", false, "also list each account's repositories")
	return cmd
}

func printRepositories(w io.Writer, l lifecycle.Lifecycle[[]domain.Repository], showDescriptions bool) {
	switch l.State() {
	case lifecycle.Failed:
		fmt.Fprintf(w, "  Error: %s\n", l.Err)
	case lifecycle.Loaded:
		if len(l.Value) == 0 {
			fmt.Fprintln(w, "  No repositories found.")
			return
		}
		for _, r := range l.Value {
			if showDescriptions {
				fmt.Fprintf(w, "  %s  ★ %d  %s\n", r.Name, r.StarCount, r.DescriptionOrDefault())
			} else {
				fmt.Fprintf(w, "  %s  ★ %d\n", r.Name, r.StarCount)
			}
		}
	}
}

func newConfigCommand(opts *appOptions, stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := config.NewConfigService(opts.configPath)
			path := svc.Path()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
			}
			if err := svc.SaveToPath(config.DefaultConfig(), path); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfigService(opts.configPath).Load()
			if err != nil {
				return err
			}
			if opts.limit != 0 {
				cfg.ResultLimit = opts.limit
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.Token != "" {
				cfg.Token = "<redacted>"
			}
			data, err := toml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			_, err = stdout.Write(data)
			return err
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(stdout, config.NewConfigService(opts.configPath).Path())
			return nil
		},
	}

	cmd.AddCommand(initCmd, showCmd, pathCmd)
	return cmd
}
