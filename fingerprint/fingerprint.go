package fingerprint

import (
	"strconv"

	"github.com/bent101/wordle-signal/hint"
)

// Fingerprint counts, for one word taken as the answer, how many guesses in
// a reference list give each interesting short key.
type Fingerprint map[string]int

// Of computes the fingerprint of answer against guesses.
func Of(answer string, guesses []string) Fingerprint {
	fp := make(Fingerprint)
	for _, guess := range guesses {
		fb := hint.Feedback(guess, answer)
		class := hint.Classify(fb)
		if class == hint.NotInteresting {
			continue
		}
		fp[hint.KeyOf(fb, class, 0).String()]++
	}
	return fp
}

// FourGreen returns the count for 4g at pos (1-based).
func (fp Fingerprint) FourGreen(pos int) int {
	return fp["4g."+strconv.Itoa(pos)]
}

// Has reports whether key (in short form) has a positive count.
func (fp Fingerprint) Has(key string) bool {
	return fp[key] > 0
}

// Reference names a list of words fingerprints were computed for.
type Reference string

const (
	NYT    Reference = "NYT"    // the full legal list
	Dracos Reference = "Dracos" // the smaller alternate list
)

func (r Reference) Valid() bool {
	return r == NYT || r == Dracos
}

// Store holds the fingerprints of every word in one reference list.
type Store struct {
	Reference    Reference
	Fingerprints map[string]Fingerprint
}

func NewStore(ref Reference) *Store {
	return &Store{Reference: ref, Fingerprints: make(map[string]Fingerprint)}
}

func (s *Store) Get(word string) (Fingerprint, bool) {
	fp, ok := s.Fingerprints[word]
	return fp, ok
}
