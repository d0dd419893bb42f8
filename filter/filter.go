package filter

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/bent101/wordle-signal/hint"
)

var (
	ErrBadFeedback = errors.New("unrecognized feedback symbol")
	ErrBadWord     = errors.New("guess must be five letters")
)

// Engine narrows candidate sets. Legal is only needed by the class filters.
type Engine struct {
	Legal  *Lexicon
	Logger *zap.Logger
}

func NewEngine(legal *Lexicon, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{Legal: legal, Logger: logger}
}

// normalize maps the console aliases ! ? . onto g y w.
func normalize(fb string) (string, error) {
	if len(fb) != hint.WordLen {
		return "", fmt.Errorf("%w: %q is not five symbols", ErrBadFeedback, fb)
	}
	out := make([]byte, hint.WordLen)
	for i := 0; i < hint.WordLen; i++ {
		switch fb[i] {
		case hint.Green, '!':
			out[i] = hint.Green
		case hint.Yellow, '?':
			out[i] = hint.Yellow
		case hint.White, '.':
			out[i] = hint.White
		default:
			return "", fmt.Errorf("%w: %q at position %d of %q", ErrBadFeedback, fb[i], i+1, fb)
		}
	}
	return string(out), nil
}

// ApplyFeedback removes every candidate that could not have produced fb for
// guess. A letter that is green or yellow n times in the guess must appear at
// least n times in the candidate; if it is also white somewhere, exactly n
// times. Nothing is removed when fb is malformed.
func (e *Engine) ApplyFeedback(set *CandidateSet, guess, fb string) error {
	if len(guess) != hint.WordLen {
		return fmt.Errorf("%w: %q", ErrBadWord, guess)
	}
	fb, err := normalize(fb)
	if err != nil {
		return err
	}

	// number of green/yellow hits per letter in the guess
	hits := make(map[byte]int)
	for i := 0; i < hint.WordLen; i++ {
		if fb[i] != hint.White {
			hits[guess[i]]++
		}
	}

	before := set.Len()
	set.Retain(func(candidate string) bool {
		for i := 0; i < hint.WordLen; i++ {
			c := guess[i]
			switch fb[i] {
			case hint.Green:
				if candidate[i] != c {
					return false
				}
			case hint.Yellow:
				if candidate[i] == c || strings.Count(candidate, string(c)) < hits[c] {
					return false
				}
			case hint.White:
				if candidate[i] == c || strings.Count(candidate, string(c)) != hits[c] {
					return false
				}
			}
		}
		return true
	})

	e.Logger.Debug("applied feedback",
		zap.String("guess", guess),
		zap.String("feedback", fb),
		zap.Int("before", before),
		zap.Int("after", set.Len()))
	return nil
}

// ApplyClass runs each class filter over the set, removing the candidates it
// rejects. It returns the total number removed.
func (e *Engine) ApplyClass(set *CandidateSet, filters ...ClassFilter) int {
	total := 0
	for _, f := range filters {
		removed := set.Retain(func(candidate string) bool {
			return f.Keep(candidate, e.Legal)
		})
		total += removed
		e.Logger.Debug("applied class filter",
			zap.Stringer("filter", f),
			zap.Int("removed", removed),
			zap.Int("remaining", set.Len()))
	}
	return total
}
