package stats

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"go.uber.org/zap"

	"github.com/bent101/wordle-signal/hint"
)

var ErrMalformedRecord = errors.New("malformed guess record")

// MaxGuesses is the most rows a finished Wordle game can have.
const MaxGuesses = 6

// Record is one player's posted game: the feedback of every guess in order.
type Record struct {
	Author  string   `json:"author"`
	Guesses []string `json:"guesses"`
}

// Histogram counts observed long-form structural keys for one puzzle.
type Histogram map[string]int

func (r Record) validate() error {
	if len(r.Guesses) < 2 || len(r.Guesses) > MaxGuesses {
		return fmt.Errorf("%w: %d guesses from %q", ErrMalformedRecord, len(r.Guesses), r.Author)
	}
	for _, fb := range r.Guesses {
		if !hint.Valid(fb) {
			return fmt.Errorf("%w: feedback %q from %q", ErrMalformedRecord, fb, r.Author)
		}
	}
	return nil
}

// PenultimateKey classifies the second to last guess. ok is false when that
// guess is not interesting. For 4g the occurrence is one more than the number
// of earlier guesses with the same feedback.
func (r Record) PenultimateKey() (key hint.Key, ok bool, err error) {
	if err := r.validate(); err != nil {
		return hint.Key{}, false, err
	}

	last := len(r.Guesses) - 2
	fb := r.Guesses[last]
	class := hint.Classify(fb)
	if class == hint.NotInteresting {
		return hint.Key{}, false, nil
	}

	occurrence := 1
	for _, earlier := range r.Guesses[:last] {
		if earlier == fb {
			occurrence++
		}
	}
	return hint.KeyOf(fb, class, occurrence), true, nil
}

// Aggregate builds the histogram of penultimate guess keys. Malformed records
// are logged and skipped.
func Aggregate(records []Record, logger *zap.Logger) Histogram {
	if logger == nil {
		logger = zap.NewNop()
	}

	hist := make(Histogram)
	skipped := 0
	for i, r := range records {
		key, ok, err := r.PenultimateKey()
		if err != nil {
			logger.Warn("skipping record", zap.Int("index", i), zap.Error(err))
			skipped++
			continue
		}
		if ok {
			hist[key.String()]++
		}
	}

	logger.Debug("aggregated records",
		zap.Int("records", len(records)),
		zap.Int("skipped", skipped),
		zap.Int("keys", len(hist)))
	return hist
}

// SuppressSingletons returns a copy of hist without the keys seen exactly
// once, unless the one record behind such a key is by an allowed author.
func SuppressSingletons(hist Histogram, records []Record, allow []string) Histogram {
	allowed := make(map[string]bool, len(allow))
	for _, a := range allow {
		allowed[a] = true
	}

	authors := make(map[string][]string)
	for _, r := range records {
		key, ok, err := r.PenultimateKey()
		if err != nil || !ok {
			continue
		}
		authors[key.String()] = append(authors[key.String()], r.Author)
	}

	ret := make(Histogram, len(hist))
	for k, n := range hist {
		if n == 1 {
			by := authors[k]
			if len(by) != 1 || !allowed[by[0]] {
				continue
			}
		}
		ret[k] = n
	}
	return ret
}

// Normalize drops empty counts and keys that don't parse.
func Normalize(hist Histogram, logger *zap.Logger) Histogram {
	if logger == nil {
		logger = zap.NewNop()
	}
	ret := make(Histogram, len(hist))
	for k, n := range hist {
		if n <= 0 {
			continue
		}
		if _, err := hint.ParseKey(k); err != nil {
			logger.Warn("dropping histogram key", zap.String("key", k), zap.Error(err))
			continue
		}
		ret[k] = n
	}
	return ret
}

// FourGreenMax returns, per position, the highest 4g occurrence seen.
func (h Histogram) FourGreenMax() [hint.WordLen]int {
	var ret [hint.WordLen]int
	for s, n := range h {
		if n <= 0 {
			continue
		}
		k, err := hint.ParseKey(s)
		if err != nil || k.Class != hint.FourGreen {
			continue
		}
		pos := k.Positions[0] - 1
		ret[pos] = max(ret[pos], k.Occurrence, 1)
	}
	return ret
}

// Keys returns the keys with a positive count, sorted.
func (h Histogram) Keys() []string {
	var ret []string
	for k, n := range h {
		if n > 0 {
			ret = append(ret, k)
		}
	}
	sort.Strings(ret)
	return ret
}

func ReadRecords(r io.Reader) ([]Record, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding records: %w", err)
	}
	return records, nil
}

func ReadHistogram(r io.Reader) (Histogram, error) {
	var hist Histogram
	if err := json.NewDecoder(r).Decode(&hist); err != nil {
		return nil, fmt.Errorf("decoding histogram: %w", err)
	}
	return hist, nil
}
