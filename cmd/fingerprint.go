package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bent101/wordle-signal/fingerprint"
	"github.com/bent101/wordle-signal/wordlist"
)

func newFingerprintCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Work with precomputed fingerprint stores",
	}
	cmd.AddCommand(newFingerprintBuildCmd(s))
	return cmd
}

func newFingerprintBuildCmd(s *session) *cobra.Command {
	var (
		reference string
		out       string
		fresh     bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compute the fingerprint of every dictionary word",
		Long: `Scores every legal guess of the reference list against every dictionary
word and counts the interesting patterns. This takes minutes; the store is
saved after every batch and a rerun picks up where the last one stopped
unless --fresh is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := fingerprint.Reference(reference)
			listPath, ok := s.cfg.GuessList(ref)
			if !ok {
				s.logger.Warn("unknown fingerprint reference", zap.String("reference", reference))
				return fmt.Errorf("%w: %q", fingerprint.ErrUnknownReference, reference)
			}
			path := out
			if path == "" {
				path = s.cfg.FingerprintPaths()[ref]
			}

			guesses, err := wordlist.ReadFile(listPath)
			if err != nil {
				return fmt.Errorf("loading %s guesses: %w", ref, err)
			}
			answers, err := wordlist.Dictionary(s.cfg.Words.Dictionary, s.cfg.Words.Extra)
			if err != nil {
				return fmt.Errorf("loading dictionary: %w", err)
			}

			store := fingerprint.NewStore(ref)
			if !fresh {
				prev, err := fingerprint.ReadFile(path)
				switch {
				case err == nil:
					store = prev
					store.Reference = ref
				case errors.Is(err, fs.ErrNotExist):
				default:
					return fmt.Errorf("reading checkpoint %s: %w", path, err)
				}
			}

			compress := s.cfg.Build.Compress
			b := &fingerprint.Builder{
				BatchSize: s.cfg.Build.BatchSize,
				Pause:     s.cfg.Build.Pause,
				Progress:  true,
				Logger:    s.logger,
				Checkpoint: func(st *fingerprint.Store) error {
					return fingerprint.SaveFile(path, st, compress)
				},
			}
			if err := b.Build(cmd.Context(), store, answers, guesses); err != nil {
				return err
			}
			return fingerprint.SaveFile(path, store, compress)
		},
	}

	cmd.Flags().StringVar(&reference, "reference", string(fingerprint.NYT), "reference list to count guesses from (NYT or Dracos)")
	cmd.Flags().StringVar(&out, "out", "", "output file (defaults to the configured store path)")
	cmd.Flags().BoolVar(&fresh, "fresh", false, "ignore an existing checkpoint")
	return cmd
}
