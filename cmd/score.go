package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bent101/wordle-signal/fingerprint"
	"github.com/bent101/wordle-signal/score"
	"github.com/bent101/wordle-signal/wordlist"
)

func newScoreCmd(s *session) *cobra.Command {
	var (
		histogram string
		reference string
		top       int
	)

	cmd := &cobra.Command{
		Use:   "score [word=feedback ...]",
		Short: "Rank the candidates by how well they fit the posted patterns",
		Example: `  wordle-signal score --histogram today.json --reference NYT
  wordle-signal score raise=wgwyw --histogram today.json --top 20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			guesses, err := parseGuesses(args)
			if err != nil {
				return err
			}
			hist, err := s.histogram(histogram)
			if err != nil {
				return err
			}

			loader := fingerprint.NewLoader(s.cfg.FingerprintPaths(), s.logger)
			store, err := loader.Load(reference)
			if err != nil {
				return err
			}

			set, err := s.narrow(guesses, hist)
			if err != nil {
				return err
			}

			results, missing := score.ScoreAll(set.Words(), hist, store)
			if len(missing) > 0 {
				s.logger.Warn("candidates without a fingerprint", zap.Int("count", len(missing)), zap.Strings("words", missing))
			}

			opts, err := s.rankOptions()
			if err != nil {
				return err
			}
			ranked := score.Rank(results, opts)

			out := cmd.OutOrStdout()
			for i, r := range ranked {
				if top > 0 && i >= top {
					break
				}
				fmt.Fprintf(out, "%3d. %s %6.2f  keys %6.2f  4g %6.2f  other %6.2f\n",
					i+1, r.Word, r.Score, r.PctKeys, r.FourGreen, r.NonFourGreen)
			}
			if best, ok := score.Best(ranked); ok {
				fmt.Fprintf(cmd.ErrOrStderr(), "best: %s (%.2f), %d of %d possible\n", best.Word, best.Score, len(ranked), len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&histogram, "histogram", "", "JSON histogram of posted penultimate patterns")
	cmd.Flags().StringVar(&reference, "reference", string(fingerprint.NYT), "fingerprint reference list (NYT or Dracos)")
	cmd.Flags().IntVar(&top, "top", 25, "how many to print, 0 for all")
	_ = cmd.MarkFlagRequired("histogram")
	return cmd
}

func (s *session) rankOptions() (score.Options, error) {
	opts := s.cfg.RankOptions()
	var err error
	if opts.PluralDiscount {
		if opts.Plurals, err = wordlist.Set(s.cfg.Words.Plurals); err != nil {
			return opts, fmt.Errorf("loading plurals: %w", err)
		}
	}
	if opts.DropPriorSolutions {
		if opts.PriorSolutions, err = wordlist.Solutions(s.cfg.Words.Solutions); err != nil {
			return opts, fmt.Errorf("loading prior solutions: %w", err)
		}
	}
	return opts, nil
}
