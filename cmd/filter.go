package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bent101/wordle-signal/stats"
)

func newFilterCmd(s *session) *cobra.Command {
	var histogram string

	cmd := &cobra.Command{
		Use:   "filter [word=feedback ...]",
		Short: "List the candidates consistent with your guesses",
		Long: `Applies each guess and its feedback (g/y/w, or !/?/.) to the dictionary
and prints the words that survive. With --histogram, also removes words no
other player could have reached the posted penultimate patterns against.`,
		Example: `  wordle-signal filter raise=ygwyy toned=wwwgw --histogram today.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			guesses, err := parseGuesses(args)
			if err != nil {
				return err
			}

			var hist stats.Histogram
			if histogram != "" {
				if hist, err = s.histogram(histogram); err != nil {
					return err
				}
			}

			set, err := s.narrow(guesses, hist)
			if err != nil {
				return err
			}
			for _, w := range set.Words() {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%d candidates\n", set.Len())
			return nil
		},
	}

	cmd.Flags().StringVar(&histogram, "histogram", "", "JSON histogram of posted penultimate patterns")
	return cmd
}
