package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"followgraph/internal/cmdlog"
	"followgraph/internal/config"
	"followgraph/internal/ingest"
	"followgraph/internal/jobs"
	"followgraph/internal/theme"
)

func newInitCmd(a *app) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdlog.Run("init", func() error {
				if err := config.Save(a.fs, path, config.Default()); err != nil {
					return err
				}
				theme.PrintBanner(cmd.OutOrStdout())
				fmt.Fprintln(cmd.OutOrStdout(), "Config written to:", path)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&path, "path", "./followgraph.yaml", "path to write config")
	return cmd
}

func newGraphCmd(a *app) *cobra.Command {
	var tweetsPath string
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the follows graph inferred from a tweet file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdlog.Run("graph", func() error {
				tweets, err := ingest.LoadTweets(a.fs, tweetsPath)
				if err != nil {
					return err
				}
				rep, err := jobs.RunAnalysis(cmd.Context(), a.cfg, tweets)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(rep.Graph) == 0 {
					fmt.Fprintln(out, "no follows inferred")
					return nil
				}
				for _, author := range rep.Graph.Authors() {
					fmt.Fprintf(out, "@%s -> %s\n", author, strings.Join(rep.Graph[author].Sorted(), ", "))
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&tweetsPath, "tweets", "", "YAML file of tweets")
	_ = cmd.MarkFlagRequired("tweets")
	return cmd
}

func newInfluencersCmd(a *app) *cobra.Command {
	var (
		tweetsPath string
		top        int
	)
	cmd := &cobra.Command{
		Use:   "influencers",
		Short: "Rank users by inferred follower count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdlog.Run("influencers", func() error {
				cfg := a.cfg
				if cmd.Flags().Changed("top") {
					if top < 0 {
						return fmt.Errorf("--top must be >= 0, got %d", top)
					}
					cfg.Ranking.Top = top
				}
				tweets, err := ingest.LoadTweets(a.fs, tweetsPath)
				if err != nil {
					return err
				}
				rep, err := jobs.RunAnalysis(cmd.Context(), cfg, tweets)
				if err != nil {
					return err
				}
				for i, inf := range rep.Ranking {
					fmt.Fprintf(cmd.OutOrStdout(), "%d. @%s followers=%d\n", i+1, inf.Handle, inf.Followers)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&tweetsPath, "tweets", "", "YAML file of tweets")
	cmd.Flags().IntVar(&top, "top", 0, "report only the top N users (0 = all)")
	_ = cmd.MarkFlagRequired("tweets")
	return cmd
}
