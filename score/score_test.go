package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bent101/wordle-signal/fingerprint"
	"github.com/bent101/wordle-signal/stats"
)

var bakerPrint = fingerprint.Fingerprint{
	"4g.1":                3,
	"4g.5":                1,
	"3g1y.yellow2.white3": 2,
	"0g5y.":               1,
}

func TestScore(t *testing.T) {
	hist := stats.Histogram{
		"4g.1.1":              4,
		"4g.1.2":              1,
		"3g1y.yellow2.white3": 1,
	}

	r := Score("baker", hist, bakerPrint)
	require.False(t, r.Impossible)
	assert.InDelta(t, 50, r.PctKeys, 1e-9)
	assert.InDelta(t, 87, r.FourGreen, 1e-9)
	assert.InDelta(t, 80, r.NonFourGreen, 1e-9)
	assert.InDelta(t, 1.65, r.Distance, 1e-9)
	assert.InDelta(t, 70.8, r.Score, 1e-9)

	assert.Equal(t, r, Score("baker", hist, bakerPrint))

	d, ok := Distance(hist, bakerPrint)
	assert.True(t, ok)
	assert.InDelta(t, 1.65, d, 1e-9)
}

func TestScorePerfectMatch(t *testing.T) {
	hist := stats.Histogram{
		"4g.1.1":              1,
		"4g.1.2":              1,
		"4g.1.3":              1,
		"4g.5.1":              1,
		"3g1y.yellow2.white3": 2,
		"0g5y.":               1,
	}
	r := Score("baker", hist, bakerPrint)
	assert.InDelta(t, 100, r.Score, 1e-9)
}

func TestScoreImpossible(t *testing.T) {
	r := Score("baker", stats.Histogram{"2g3y.green12": 1}, bakerPrint)
	assert.True(t, r.Impossible)
	assert.Equal(t, "baker", r.Word)

	r = Score("baker", stats.Histogram{"4g.5.2": 1}, bakerPrint)
	assert.True(t, r.Impossible)

	// zero counts are not observations
	r = Score("baker", stats.Histogram{"2g3y.green12": 0}, bakerPrint)
	assert.False(t, r.Impossible)

	_, ok := Distance(stats.Histogram{"1g4y.green1": 3}, bakerPrint)
	assert.False(t, ok)
}

func TestScoreFloorsAtZero(t *testing.T) {
	fp := fingerprint.Fingerprint{
		"3g2y.yellow12": 4,
		"3g2y.yellow13": 4,
		"3g2y.yellow14": 4,
	}
	r := Score("x", stats.Histogram{}, fp)
	assert.Equal(t, 0.0, r.NonFourGreen)
	assert.Equal(t, 0.0, r.PctKeys)
	assert.Equal(t, 100.0, r.FourGreen)
}

func TestScoreAll(t *testing.T) {
	store := fingerprint.NewStore(fingerprint.NYT)
	store.Fingerprints["baker"] = bakerPrint

	results, missing := ScoreAll([]string{"maker", "baker"}, stats.Histogram{}, store)
	assert.Equal(t, []string{"maker"}, missing)
	require.Len(t, results, 1)
	assert.Equal(t, "baker", results[0].Word)
}

func TestRank(t *testing.T) {
	results := []Result{
		{Word: "quack", Score: 50},
		{Word: "geese", Score: 90},
		{Word: "toned", Impossible: true},
		{Word: "raise", Score: 50},
		{Word: "bakes", Score: 70},
		{Word: "cigar", Score: 60},
	}

	plain := Rank(results, Options{})
	assert.Equal(t, []string{"geese", "bakes", "cigar", "quack", "raise"}, words(plain))

	tuned := Rank(results, Options{
		DuplicateDiscount:  true,
		PluralDiscount:     true,
		DropPriorSolutions: true,
		ScrabbleTiebreak:   true,
		Plurals:            map[string]bool{"bakes": true},
		PriorSolutions:     map[string]int{"cigar": 0, "quack": 900},
		PuzzleNumber:       500,
	})
	assert.Equal(t, []string{"geese", "raise", "quack", "bakes"}, words(tuned))
	assert.InDelta(t, 54, tuned[0].Score, 1e-9)
	assert.InDelta(t, 35, tuned[3].Score, 1e-9)

	assert.Equal(t, 90.0, results[1].Score, "input is left alone")
}

func TestBest(t *testing.T) {
	best, ok := Best([]Result{{Word: "a", Score: 10}, {Word: "b", Impossible: true}, {Word: "c", Score: 30}, {Word: "d", Score: 30}})
	assert.True(t, ok)
	assert.Equal(t, "c", best.Word)

	_, ok = Best(nil)
	assert.False(t, ok)
}

func TestLetters(t *testing.T) {
	assert.Equal(t, 3, DistinctLetters("geese"))
	assert.Equal(t, 5, DistinctLetters("raise"))
	assert.Equal(t, 4, DistinctLetters("abbey"))
	assert.Equal(t, uint64(1<<('e'-'a')|1<<('g'-'a')|1<<('s'-'a')), Letters("geese").Bytes[0])
	assert.Equal(t, 5, ScrabbleValue("raise"))
	assert.Equal(t, 20, ScrabbleValue("quack"))
}

func words(results []Result) []string {
	var ret []string
	for _, r := range results {
		ret = append(ret, r.Word)
	}
	return ret
}
