package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bent101/wordle-signal/stats"
)

func newStatsCmd(s *session) *cobra.Command {
	var (
		allow          []string
		keepSingletons bool
	)

	cmd := &cobra.Command{
		Use:   "stats <records.json>",
		Short: "Build a histogram from posted games",
		Long: `Reads a JSON list of {"author": ..., "guesses": [feedback, ...]} records
and prints the histogram of their penultimate guess keys. Keys seen only once
are dropped unless their author is in --allow.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()

			records, err := stats.ReadRecords(file)
			if err != nil {
				return err
			}

			hist := stats.Aggregate(records, s.logger)
			if !keepSingletons {
				hist = stats.SuppressSingletons(hist, records, allow)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(hist); err != nil {
				return fmt.Errorf("writing histogram: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&allow, "allow", nil, "authors whose single observations are trusted")
	cmd.Flags().BoolVar(&keepSingletons, "keep-singletons", false, "keep keys seen only once")
	return cmd
}
