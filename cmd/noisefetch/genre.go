package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/bft-labs/noisefetch/pkg/noisefetch"
)

func newArtistsCmd(flags *flagSet) *cobra.Command {
	return &cobra.Command{
		Use:   "artists <genre>",
		Short: "List the artists on an everynoise genre map",
		Long: "List the artists on an everynoise genre map, one per line.\n" +
			"Timeout and User-Agent come from flags, NOISEFETCH_* variables or the config file.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := subcommandConfig(cmd, flags)
			if err != nil {
				return err
			}
			c, err := newClient(cfg, logger)
			if err != nil {
				return err
			}
			artists, err := c.Artists(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, a := range artists {
				fmt.Fprintln(out, a)
			}
			return nil
		},
	}
}

func newSimilarCmd(flags *flagSet) *cobra.Command {
	var random bool

	cmd := &cobra.Command{
		Use:   "similar <genre1> <genre2>",
		Short: "Find the genre closest to both genres on everynoise",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := subcommandConfig(cmd, flags)
			if err != nil {
				return err
			}
			opts := []noisefetch.Option{noisefetch.WithLogger(logger)}
			if random {
				opts = append(opts, noisefetch.WithTieBreaker(rand.Intn))
			}
			c, err := noisefetch.New(noisefetch.Config{
				Timeout:   cfg.Timeout,
				UserAgent: cfg.UserAgent,
			}, opts...)
			if err != nil {
				return err
			}

			m, err := c.MostSimilar(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t(score %.3f, rank %d in %q, rank %d in %q)\n",
				m.Genre, m.Score, m.Rank1, args[0], m.Rank2, args[1])
			return nil
		},
	}
	cmd.Flags().BoolVar(&random, "random-tie", false, "pick randomly among equally similar genres")
	return cmd
}
