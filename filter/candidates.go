package filter

import (
	"sort"
)

// CandidateSet holds the words not yet eliminated, in the order they were
// added, each with the tag it was loaded with (its line number in the
// dictionary). Words are only ever removed.
type CandidateSet struct {
	order []string
	tags  map[string]int
}

func NewCandidateSet() *CandidateSet {
	return &CandidateSet{tags: make(map[string]int)}
}

// CandidatesFrom builds a set from words, tagging each with its index.
func CandidatesFrom(words []string) *CandidateSet {
	s := NewCandidateSet()
	for i, w := range words {
		s.Add(w, i)
	}
	return s
}

// Add is only meant for populating a fresh set. A word that is already
// present keeps its first tag.
func (s *CandidateSet) Add(word string, tag int) {
	if _, ok := s.tags[word]; ok {
		return
	}
	s.tags[word] = tag
	s.order = append(s.order, word)
}

func (s *CandidateSet) Len() int {
	return len(s.order)
}

func (s *CandidateSet) Contains(word string) bool {
	_, ok := s.tags[word]
	return ok
}

func (s *CandidateSet) Tag(word string) (int, bool) {
	tag, ok := s.tags[word]
	return tag, ok
}

// Words returns a copy of the remaining words in insertion order.
func (s *CandidateSet) Words() []string {
	return append([]string(nil), s.order...)
}

// Retain deletes every word keep rejects and returns how many went.
func (s *CandidateSet) Retain(keep func(word string) bool) int {
	kept := s.order[:0]
	removed := 0
	for _, w := range s.order {
		if keep(w) {
			kept = append(kept, w)
			continue
		}
		delete(s.tags, w)
		removed++
	}
	clear(s.order[len(kept):])
	s.order = kept
	return removed
}

// Lexicon is the static list of legal guesses.
type Lexicon struct {
	words []string
	set   map[string]struct{}
}

func NewLexicon(words []string) *Lexicon {
	l := &Lexicon{set: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if _, ok := l.set[w]; ok {
			continue
		}
		l.set[w] = struct{}{}
		l.words = append(l.words, w)
	}
	sort.Strings(l.words)
	return l
}

func (l *Lexicon) Has(word string) bool {
	_, ok := l.set[word]
	return ok
}

func (l *Lexicon) Len() int {
	return len(l.words)
}

// Words returns the legal words in sorted order. The slice is shared.
func (l *Lexicon) Words() []string {
	return l.words
}
