package score

import (
	"sort"
	"strings"

	"github.com/bent101/wordle-signal/fingerprint"
	"github.com/bent101/wordle-signal/hint"
	"github.com/bent101/wordle-signal/stats"
)

// Weights of the three sub-scores.
const (
	KeysWeight         = 0.4
	FourGreenWeight    = 0.4
	NonFourGreenWeight = 0.2
)

// maxDistance is the distance at which a sub-score bottoms out at 0.
const maxDistance = 5.0

// fourGreenDistance[fp][seen] is the cost of the fingerprint allowing fp
// guesses with 4g at a position while the highest occurrence seen there is
// seen. Hand tuned: seeing none of several chances costs more than seeing
// most of them. fp is capped at 9.
var fourGreenDistance = [10][]float64{
	{0},
	{0.5, 0},
	{0.75, 0.25, 0},
	{0.9, 0.4, 0.15, 0},
	{1, 0.5, 0.25, 0.1, 0},
	{1, 0.6, 0.35, 0.2, 0.1, 0},
	{1, 0.65, 0.4, 0.25, 0.15, 0.05, 0},
	{1, 0.7, 0.45, 0.3, 0.2, 0.1, 0.05, 0},
	{1, 0.7, 0.5, 0.35, 0.25, 0.15, 0.1, 0.05, 0},
	{1, 0.75, 0.55, 0.4, 0.3, 0.2, 0.15, 0.1, 0.05, 0},
}

// nonFourGreenPenalty is indexed by the fingerprint count (capped at 4) of a
// non-4g key nobody was seen hitting.
var nonFourGreenPenalty = [5]float64{0, 1, 1.75, 2.25, 2.5}

// Result is the score of one candidate against one histogram.
type Result struct {
	Word       string
	Score      float64
	Impossible bool

	PctKeys      float64
	FourGreen    float64
	NonFourGreen float64
	Distance     float64
}

type evidence struct {
	observed map[string]bool
	max4g    [hint.WordLen]int
}

// check reduces the histogram to short keys and reports whether fp allows
// everything that was seen.
func check(hist stats.Histogram, fp fingerprint.Fingerprint) (evidence, bool) {
	ev := evidence{observed: make(map[string]bool), max4g: hist.FourGreenMax()}

	for _, k := range hist.Keys() {
		short := hint.ShortKey(k)
		if !fp.Has(short) {
			return ev, false
		}
		ev.observed[short] = true
	}

	for i, seen := range ev.max4g {
		if seen > fp.FourGreen(i+1) {
			return ev, false
		}
	}
	return ev, true
}

func fourGreenCost(fp fingerprint.Fingerprint, ev evidence) float64 {
	var d float64
	for i, seen := range ev.max4g {
		row := fourGreenDistance[min(fp.FourGreen(i+1), len(fourGreenDistance)-1)]
		d += row[min(seen, len(row)-1)]
	}
	return d
}

func nonFourGreenCost(fp fingerprint.Fingerprint, ev evidence) float64 {
	keys := make([]string, 0, len(fp))
	for k := range fp {
		keys = append(keys, k)
	}
	// fixed order keeps the float sum reproducible
	sort.Strings(keys)

	var d float64
	for _, k := range keys {
		n := fp[k]
		if n <= 0 || ev.observed[k] || strings.HasPrefix(k, hint.FourGreen.String()+".") {
			continue
		}
		d += nonFourGreenPenalty[min(n, len(nonFourGreenPenalty)-1)]
	}
	return d
}

func toScore(distance float64) float64 {
	return max(0, (maxDistance-distance)/maxDistance*100)
}

// Score rates how consistent candidate's fingerprint is with what was seen,
// from 0 to 100. Result.Impossible is set instead when the histogram holds a
// key the fingerprint doesn't, or more 4g at some position than the
// fingerprint allows.
func Score(candidate string, hist stats.Histogram, fp fingerprint.Fingerprint) Result {
	ev, ok := check(hist, fp)
	if !ok {
		return Result{Word: candidate, Impossible: true}
	}

	r := Result{Word: candidate}

	keys := 0
	for _, n := range fp {
		if n > 0 {
			keys++
		}
	}
	if keys > 0 {
		r.PctKeys = float64(len(ev.observed)) / float64(keys) * 100
	}

	d4g := fourGreenCost(fp, ev)
	dn4g := nonFourGreenCost(fp, ev)
	r.FourGreen = toScore(d4g)
	r.NonFourGreen = toScore(dn4g)
	r.Distance = d4g + dn4g
	r.Score = KeysWeight*r.PctKeys + FourGreenWeight*r.FourGreen + NonFourGreenWeight*r.NonFourGreen
	return r
}

// Distance is the absence of evidence model on its own: the unnormalized
// 4g and non-4g costs added up. ok is false when the candidate is impossible.
func Distance(hist stats.Histogram, fp fingerprint.Fingerprint) (d float64, ok bool) {
	ev, ok := check(hist, fp)
	if !ok {
		return 0, false
	}
	return fourGreenCost(fp, ev) + nonFourGreenCost(fp, ev), true
}

// ScoreAll scores every candidate that has a fingerprint in store, keeping
// the order of candidates. Words without one are returned in missing.
func ScoreAll(candidates []string, hist stats.Histogram, store *fingerprint.Store) (results []Result, missing []string) {
	for _, w := range candidates {
		fp, ok := store.Get(w)
		if !ok {
			missing = append(missing, w)
			continue
		}
		results = append(results, Score(w, hist, fp))
	}
	return results, missing
}
