package score

// Bitvec is a fixed size bit set that keeps its population count.
type Bitvec struct {
	Bytes []uint64
	Count int
}

func NewBitvec(size int) *Bitvec {
	return &Bitvec{Bytes: make([]uint64, (size+63)/64)}
}

func (bv *Bitvec) Set(index int) {
	word, bit := index/64, uint(index%64)
	if bv.Bytes[word]&(1<<bit) == 0 {
		bv.Bytes[word] |= 1 << bit
		bv.Count++
	}
}

// Letters returns the set of letters in word.
func Letters(word string) *Bitvec {
	bv := NewBitvec(26)
	for i := 0; i < len(word); i++ {
		if c := word[i]; c >= 'a' && c <= 'z' {
			bv.Set(int(c - 'a'))
		}
	}
	return bv
}

// DistinctLetters counts the different letters in word; it picks the
// duplicate-letter discount in Rank.
func DistinctLetters(word string) int {
	return Letters(word).Count
}
