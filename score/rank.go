package score

import (
	"cmp"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// duplicateFactor is indexed by the number of distinct letters in a word.
var duplicateFactor = [6]float64{0, 0.2, 0.4, 0.6, 1, 1}

const pluralFactor = 0.5

var letterValues = [26]int{
	1, 3, 3, 2, 1, 4, 2, 4, 1, 8, 5, 1, 3, // a-m
	1, 1, 3, 10, 1, 1, 1, 1, 4, 4, 8, 4, 10, // n-z
}

// ScrabbleValue sums the tile values of word's letters.
func ScrabbleValue(word string) int {
	total := 0
	for i := 0; i < len(word); i++ {
		if c := word[i]; c >= 'a' && c <= 'z' {
			total += letterValues[c-'a']
		}
	}
	return total
}

// Options controls the ranking stage that follows scoring.
type Options struct {
	DuplicateDiscount  bool
	PluralDiscount     bool
	DropPriorSolutions bool
	ScrabbleTiebreak   bool

	Plurals        map[string]bool
	PriorSolutions map[string]int // word -> puzzle number

	// PuzzleNumber is today's puzzle. Solutions numbered below it are prior
	// ones; 0 treats every listed solution as prior.
	PuzzleNumber int
}

func (o Options) isPrior(word string) bool {
	n, ok := o.PriorSolutions[word]
	if !ok {
		return false
	}
	return o.PuzzleNumber == 0 || n < o.PuzzleNumber
}

// Rank drops impossible candidates (and prior solutions, if asked), applies
// the discounts, and sorts by descending score. Ties go to the lower
// scrabble value when ScrabbleTiebreak is set, then to the input order.
// results is not modified.
func Rank(results []Result, opts Options) []Result {
	var ranked []Result
	for _, r := range results {
		if r.Impossible {
			continue
		}
		if opts.DropPriorSolutions && opts.isPrior(r.Word) {
			continue
		}
		ranked = append(ranked, r)
	}

	for i := range ranked {
		r := &ranked[i]
		if opts.DuplicateDiscount {
			r.Score *= duplicateFactor[min(DistinctLetters(r.Word), len(duplicateFactor)-1)]
		}
		if opts.PluralDiscount && opts.Plurals[r.Word] {
			r.Score *= pluralFactor
		}
	}

	slices.SortStableFunc(ranked, func(a, b Result) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		if opts.ScrabbleTiebreak {
			return cmp.Compare(ScrabbleValue(a.Word), ScrabbleValue(b.Word))
		}
		return 0
	})
	return ranked
}

// MaxBy finds the element with the largest key. The first one wins ties.
func MaxBy[T any, K constraints.Ordered](slice []T, keyFunc func(T) K) (T, bool) {
	if len(slice) == 0 {
		var zero T
		return zero, false
	}

	maxElem := slice[0]
	maxVal := keyFunc(maxElem)
	for _, elem := range slice[1:] {
		if val := keyFunc(elem); val > maxVal {
			maxVal = val
			maxElem = elem
		}
	}
	return maxElem, true
}

// Best is the possible result with the highest score.
func Best(results []Result) (Result, bool) {
	var possible []Result
	for _, r := range results {
		if !r.Impossible {
			possible = append(possible, r)
		}
	}
	return MaxBy(possible, func(r Result) float64 { return r.Score })
}
