package hint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackKnownValues(t *testing.T) {
	tests := []struct {
		guess, answer, want string
	}{
		{"saner", "raise", "ygwyy"},
		{"sanee", "raise", "ygwwg"},
		{"raise", "raise", "ggggg"},
		{"eerie", "raise", "wwyyg"},
		{"speed", "abide", "wwywy"},
		{"llama", "hello", "yywww"},
	}
	for _, tt := range tests {
		t.Run(tt.guess+"/"+tt.answer, func(t *testing.T) {
			assert.Equal(t, tt.want, Feedback(tt.guess, tt.answer))
		})
	}
}

func TestFeedbackInvariants(t *testing.T) {
	words := []string{"raise", "saner", "eerie", "llama", "hello", "abbey", "geese", "mamma", "toned", "ennui"}
	for _, guess := range words {
		for _, answer := range words {
			fb := Feedback(guess, answer)
			require.True(t, Valid(fb), fb)

			matching := 0
			for i := 0; i < WordLen; i++ {
				if guess[i] == answer[i] {
					matching++
				}
			}
			greens, _ := Counts(fb)
			assert.Equal(t, matching, greens, "%s vs %s", guess, answer)

			hits := map[byte]int{}
			for i := 0; i < WordLen; i++ {
				if fb[i] != White {
					hits[guess[i]]++
				}
			}
			for letter, n := range hits {
				assert.LessOrEqual(t, n, strings.Count(answer, string(letter)), "%s vs %s letter %c", guess, answer, letter)
			}
		}
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, NotInteresting, Classify("ggggg"))
	assert.Equal(t, FourGreen, Classify("ggggw"))
	assert.Equal(t, ThreeGreenTwoYellow, Classify("gggyy"))
	assert.Equal(t, ZeroGreenFiveYellow, Classify("yyyyy"))
	assert.Equal(t, ThreeGreenOneYellow, Classify("gywgg"))
	assert.Equal(t, TwoGreenThreeYellow, Classify("ygygy"))
	assert.Equal(t, OneGreenFourYellow, Classify("yyyyg"))
	assert.Equal(t, NotInteresting, Classify("wwwww"))
	assert.Equal(t, NotInteresting, Classify("gggww"))
}

func TestStructuralKey(t *testing.T) {
	tests := []struct {
		fb         string
		occurrence int
		name       string
		subname    string
		key        string
	}{
		{"ggwgg", 2, "4g", "3.2", "4g.3.2"},
		{"ggggw", 0, "4g", "5", "4g.5"},
		{"gywgg", 0, "3g1y", "yellow2.white3", "3g1y.yellow2.white3"},
		{"wgygg", 0, "3g1y", "yellow3.white1", "3g1y.yellow3.white1"},
		{"gyggy", 0, "3g2y", "yellow25", "3g2y.yellow25"},
		{"ygygy", 0, "2g3y", "green24", "2g3y.green24"},
		{"yyyyg", 0, "1g4y", "green5", "1g4y.green5"},
		{"yyyyy", 0, "0g5y", "", "0g5y."},
	}
	for _, tt := range tests {
		t.Run(tt.fb, func(t *testing.T) {
			name, subname, key := StructuralKey(tt.fb, Classify(tt.fb), tt.occurrence)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.subname, subname)
			assert.Equal(t, tt.key, key)
		})
	}
}

func TestStructuralKeyPanicsOnUninteresting(t *testing.T) {
	assert.Panics(t, func() { StructuralKey("ggggg", NotInteresting, 0) })
	assert.Panics(t, func() { StructuralKey("ggggw", ThreeGreenTwoYellow, 0) })
}

func TestPatternClassifiesBack(t *testing.T) {
	for _, k := range AllKeys() {
		fb := k.Pattern()
		assert.Equal(t, k.Class, Classify(fb), k.String())
		assert.Equal(t, k, KeyOf(fb, k.Class, 0), k.String())
	}
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey("4g.3.2")
	require.NoError(t, err)
	assert.Equal(t, Key{Class: FourGreen, Positions: []int{3}, Occurrence: 2}, k)
	assert.Equal(t, "4g.3", k.Short().String())

	k, err = ParseKey("3g1y.yellow4.white1")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 1}, k.Positions)

	k, err = ParseKey("0g5y.")
	require.NoError(t, err)
	assert.Equal(t, ZeroGreenFiveYellow, k.Class)
	assert.Empty(t, k.Positions)

	for _, bad := range []string{"", "4g", "4g.6.1", "4g.3.0", "3g2y.yellow52", "3g2y.yellow33", "3g1y.yellow2.white2", "2g3y.green1", "5g.1", "1g4y.yellow1"} {
		_, err := ParseKey(bad)
		assert.ErrorIs(t, err, ErrBadKey, bad)
	}
}

func TestShortKey(t *testing.T) {
	assert.Equal(t, "4g.2", ShortKey("4g.2.3"))
	assert.Equal(t, "2g3y.green13", ShortKey("2g3y.green13"))
	assert.Equal(t, "junk", ShortKey("junk"))
}

func TestAllKeys(t *testing.T) {
	keys := AllKeys()
	require.Len(t, keys, 51)

	perClass := map[Class]int{}
	for _, k := range keys {
		perClass[k.Class]++
	}
	assert.Equal(t, map[Class]int{
		FourGreen:           5,
		ThreeGreenOneYellow: 20,
		ThreeGreenTwoYellow: 10,
		TwoGreenThreeYellow: 10,
		OneGreenFourYellow:  5,
		ZeroGreenFiveYellow: 1,
	}, perClass)

	assert.Equal(t, "4g.1", keys[0].String())
	assert.Equal(t, "0g5y.", keys[50].String())
	assert.Len(t, AllPatterns(), 243)
}
