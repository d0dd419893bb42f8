package hint

import (
	"golang.org/x/exp/slices"
)

// WordLen is the length of every guess, answer and feedback string.
const WordLen = 5

// Feedback symbols, one per position of a guess.
const (
	Green  = 'g'
	Yellow = 'y'
	White  = 'w'
)

// Feedback scores guess against answer. Greens are marked first; the answer
// letters they don't use form a pool that yellows are then taken from, left
// to right, so a repeated guess letter is only yellow as many times as the
// answer still has it.
func Feedback(guess, answer string) string {
	var sequence [WordLen]byte

	// answer chars not already matched by a green
	unHintedAtChars := make([]byte, 0, WordLen)
	for i := 0; i < WordLen; i++ {
		if guess[i] == answer[i] {
			sequence[i] = Green
		} else {
			unHintedAtChars = append(unHintedAtChars, answer[i])
		}
	}

	for i := 0; i < WordLen; i++ {
		if sequence[i] == Green {
			continue
		}
		j := slices.Index(unHintedAtChars, guess[i])
		if j < 0 {
			sequence[i] = White
			continue
		}
		sequence[i] = Yellow
		unHintedAtChars = slices.Delete(unHintedAtChars, j, j+1)
	}

	return string(sequence[:])
}

// Counts returns how many greens and yellows fb has.
func Counts(fb string) (greens, yellows int) {
	for i := 0; i < len(fb); i++ {
		switch fb[i] {
		case Green:
			greens++
		case Yellow:
			yellows++
		}
	}
	return greens, yellows
}

// Valid reports whether fb is a five symbol string over g, y and w.
func Valid(fb string) bool {
	if len(fb) != WordLen {
		return false
	}
	for i := 0; i < WordLen; i++ {
		switch fb[i] {
		case Green, Yellow, White:
		default:
			return false
		}
	}
	return true
}

// positions returns the 1-based positions of fb holding symbol.
func positions(fb string, symbol byte) []int {
	var ret []int
	for i := 0; i < len(fb); i++ {
		if fb[i] == symbol {
			ret = append(ret, i+1)
		}
	}
	return ret
}
