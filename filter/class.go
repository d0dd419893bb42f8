package filter

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/bent101/wordle-signal/hint"
)

// ClassFilter answers, for a candidate taken as the solution, whether some
// other legal guess could have produced feedback of its class. Someone was
// seen getting that feedback, so a candidate that admits no such guess is
// eliminated.
type ClassFilter interface {
	Class() hint.Class
	Keep(candidate string, legal *Lexicon) bool
	String() string
}

// FilterFor returns the filter matching a histogram key.
func FilterFor(k hint.Key) ClassFilter {
	switch k.Class {
	case hint.FourGreen:
		return FourGreen{Gray: k.Positions[0], Min: max(k.Occurrence, 1)}
	case hint.ThreeGreenOneYellow:
		return ThreeGreenOneYellow{Yellow: k.Positions[0], White: k.Positions[1]}
	case hint.ThreeGreenTwoYellow:
		return ThreeGreenTwoYellow{First: k.Positions[0], Second: k.Positions[1]}
	case hint.TwoGreenThreeYellow, hint.OneGreenFourYellow, hint.ZeroGreenFiveYellow:
		return Shuffle{class: k.Class, Greens: append([]int(nil), k.Positions...)}
	}
	panic(fmt.Sprintf("filter: no class filter for %v", k.Class))
}

// FourGreen needs at least Min legal words that differ from the candidate
// only at Gray (1-based).
type FourGreen struct {
	Gray int
	Min  int
}

func (f FourGreen) Class() hint.Class { return hint.FourGreen }

func (f FourGreen) Keep(candidate string, legal *Lexicon) bool {
	pos := f.Gray - 1
	word := []byte(candidate)
	count := 0
	for c := byte('a'); c <= 'z'; c++ {
		if c == candidate[pos] {
			continue
		}
		word[pos] = c
		if legal.Has(string(word)) {
			count++
			if count >= f.Min {
				return true
			}
		}
	}
	return false
}

func (f FourGreen) String() string {
	return fmt.Sprintf("4g gray=%d min=%d", f.Gray, f.Min)
}

// ThreeGreenOneYellow: the guess must carry the candidate's White letter at
// Yellow, and at White any letter that is neither of the two in play.
type ThreeGreenOneYellow struct {
	Yellow int
	White  int
}

func (f ThreeGreenOneYellow) Class() hint.Class { return hint.ThreeGreenOneYellow }

func (f ThreeGreenOneYellow) Keep(candidate string, legal *Lexicon) bool {
	y, w := f.Yellow-1, f.White-1
	yc, wc := candidate[y], candidate[w]
	if yc == wc {
		// moving the letter over would make it green
		return false
	}

	word := []byte(candidate)
	word[y] = wc
	for c := byte('a'); c <= 'z'; c++ {
		if c == yc || c == wc {
			continue
		}
		word[w] = c
		if legal.Has(string(word)) {
			return true
		}
	}
	return false
}

func (f ThreeGreenOneYellow) String() string {
	return fmt.Sprintf("3g1y yellow=%d white=%d", f.Yellow, f.White)
}

// ThreeGreenTwoYellow needs the candidate with First and Second swapped to be
// a different legal word.
type ThreeGreenTwoYellow struct {
	First  int
	Second int
}

func (f ThreeGreenTwoYellow) Class() hint.Class { return hint.ThreeGreenTwoYellow }

func (f ThreeGreenTwoYellow) Keep(candidate string, legal *Lexicon) bool {
	a, b := f.First-1, f.Second-1
	if candidate[a] == candidate[b] {
		return false
	}
	word := []byte(candidate)
	word[a], word[b] = word[b], word[a]
	return legal.Has(string(word))
}

func (f ThreeGreenTwoYellow) String() string {
	return fmt.Sprintf("3g2y yellow=%d,%d", f.First, f.Second)
}

// Shuffle covers 2g3y, 1g4y and 0g5y: some legal word must agree with the
// candidate at Greens and be a rearrangement of its letters that moves every
// other one.
type Shuffle struct {
	class  hint.Class
	Greens []int
}

func (f Shuffle) Class() hint.Class { return f.class }

func (f Shuffle) Keep(candidate string, legal *Lexicon) bool {
	var green [hint.WordLen]bool
	for _, p := range f.Greens {
		green[p-1] = true
	}

	for _, word := range legal.Words() {
		if shuffled(word, candidate, green) {
			return true
		}
	}
	return false
}

// shuffled reports whether word matches candidate exactly at the green
// positions and, at every other one, differs while keeping the candidate's
// count of the letter found there.
func shuffled(word, candidate string, green [hint.WordLen]bool) bool {
	for i := 0; i < hint.WordLen; i++ {
		if green[i] {
			if word[i] != candidate[i] {
				return false
			}
			continue
		}
		c := candidate[i]
		if word[i] == c {
			return false
		}
		if strings.Count(word, string(c)) != strings.Count(candidate, string(c)) {
			return false
		}
	}
	return true
}

func (f Shuffle) String() string {
	return fmt.Sprintf("%v greens=%v", f.class, f.Greens)
}

// PlanFromHistogram turns observed histogram keys into class filters, in key
// order. For 4g only the highest occurrence seen at a position is kept: a
// 4g.3.2 already implies 4g.3.1. Keys that don't parse are logged and skipped.
func PlanFromHistogram(hist map[string]int, logger *zap.Logger) []ClassFilter {
	if logger == nil {
		logger = zap.NewNop()
	}

	keys := make([]string, 0, len(hist))
	for k, n := range hist {
		if n > 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var fourGreen [hint.WordLen]int
	var plan []ClassFilter
	for _, s := range keys {
		k, err := hint.ParseKey(s)
		if err != nil {
			logger.Warn("skipping histogram key", zap.String("key", s), zap.Error(err))
			continue
		}
		if k.Class == hint.FourGreen {
			pos := k.Positions[0] - 1
			fourGreen[pos] = max(fourGreen[pos], k.Occurrence, 1)
			continue
		}
		plan = append(plan, FilterFor(k))
	}

	var fourGreenPlan []ClassFilter
	for i, n := range fourGreen {
		if n > 0 {
			fourGreenPlan = append(fourGreenPlan, FourGreen{Gray: i + 1, Min: n})
		}
	}
	return append(fourGreenPlan, plan...)
}
