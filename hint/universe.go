package hint

import (
	"sort"
)

var symbols = [3]byte{White, Yellow, Green}

// AllPatterns returns all 3^5 feedback strings.
func AllPatterns() []string {
	var ret []string
	total := 1
	for range WordLen {
		total *= len(symbols)
	}

	for rank := range total {
		var seq [WordLen]byte
		n := rank
		for i := WordLen - 1; i >= 0; i-- {
			seq[i] = symbols[n%3]
			n /= 3
		}
		ret = append(ret, string(seq[:]))
	}
	return ret
}

// AllKeys returns every short key a fingerprint can hold: 5 4g, 20 3g1y,
// 10 3g2y, 10 2g3y, 5 1g4y and one 0g5y. They are ordered by class and then
// by key text, which is the order the compressed codec numbers them in.
func AllKeys() []Key {
	seen := make(map[string]bool)
	var ret []Key

	for _, fb := range AllPatterns() {
		class := Classify(fb)
		if class == NotInteresting {
			continue
		}
		k := KeyOf(fb, class, 0)
		if seen[k.String()] {
			continue
		}
		seen[k.String()] = true
		ret = append(ret, k)
	}

	sort.Slice(ret, func(i, j int) bool {
		if ret[i].Class != ret[j].Class {
			return ret[i].Class < ret[j].Class
		}
		return ret[i].String() < ret[j].String()
	})
	return ret
}
