package cmd

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/bent101/wordle-signal/filter"
	"github.com/bent101/wordle-signal/stats"
	"github.com/bent101/wordle-signal/wordlist"
)

type guess struct {
	word     string
	feedback string
}

// parseGuesses reads arguments of the form word=feedback.
func parseGuesses(args []string) ([]guess, error) {
	var ret []guess
	for _, a := range args {
		word, fb, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("guess %q: want word=feedback", a)
		}
		ret = append(ret, guess{word: strings.ToLower(word), feedback: strings.ToLower(fb)})
	}
	return ret, nil
}

func (s *session) legal() (*filter.Lexicon, error) {
	words, err := wordlist.ReadFile(s.cfg.Words.Legal)
	if err != nil {
		return nil, fmt.Errorf("loading legal guesses: %w", err)
	}
	return filter.NewLexicon(words), nil
}

func (s *session) candidates() (*filter.CandidateSet, error) {
	words, err := wordlist.Dictionary(s.cfg.Words.Dictionary, s.cfg.Words.Extra)
	if err != nil {
		return nil, fmt.Errorf("loading dictionary: %w", err)
	}
	return filter.CandidatesFrom(words), nil
}

func (s *session) histogram(path string) (stats.Histogram, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	hist, err := stats.ReadHistogram(file)
	if err != nil {
		return nil, err
	}
	return stats.Normalize(hist, s.logger), nil
}

// narrow loads the candidates and applies the guesses and then the class
// filters implied by hist, if it has any keys.
func (s *session) narrow(guesses []guess, hist stats.Histogram) (*filter.CandidateSet, error) {
	set, err := s.candidates()
	if err != nil {
		return nil, err
	}

	var legal *filter.Lexicon
	if len(hist) > 0 {
		if legal, err = s.legal(); err != nil {
			return nil, err
		}
	}
	engine := filter.NewEngine(legal, s.logger)

	for _, g := range guesses {
		if err := engine.ApplyFeedback(set, g.word, g.feedback); err != nil {
			return nil, err
		}
	}
	if len(hist) > 0 {
		plan := filter.PlanFromHistogram(hist, s.logger)
		removed := engine.ApplyClass(set, plan...)
		s.logger.Info("applied histogram filters", zap.Int("filters", len(plan)), zap.Int("removed", removed))
	}
	return set, nil
}
