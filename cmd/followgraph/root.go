package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"followgraph/internal/config"
	"followgraph/internal/logging"
	"followgraph/internal/metrics"
	"followgraph/internal/theme"
)

var version = "0.1.0" // set at build time with -ldflags "-X main.version=..."

// app carries what every subcommand needs once the root pre-run has resolved it.
type app struct {
	fs      afero.Fs
	cfgPath string
	cfg     config.Config
}

func newRootCmd(fsys afero.Fs) *cobra.Command {
	a := &app{fs: fsys}

	root := &cobra.Command{
		Use:   "followgraph",
		Short: "Guess who follows whom from @-mentions and rank influencers",
		Long: theme.Banner(false) + `
followgraph reads a YAML file of tweets, treats every @-mention as evidence that the
author follows the mentioned user, and ranks users by inferred follower count.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "init" || cmd.Name() == "version" {
				return nil
			}
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "./followgraph.yaml", "config path")

	root.AddCommand(
		newInitCmd(a),
		newGraphCmd(a),
		newInfluencersCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads .env and the config file (defaults when absent), then wires logging and metrics.
func (a *app) setup(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load(a.fs, a.cfgPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		cfg = config.Default()
		cfg.ResolveEnv()
	case err != nil:
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	if _, err := logging.Setup(cmd.ErrOrStderr(), cfg.Logging.Format, cfg.Logging.Level); err != nil {
		return err
	}
	metrics.StartServer(cfg.Metrics.Addr)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of followgraph",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "followgraph v%s\n", version)
		},
	}
}
