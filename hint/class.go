package hint

// Class buckets a feedback string by its green and yellow counts. Only the
// six patterns that can be told apart from a social media summary of a
// penultimate guess are interesting.
type Class uint8

const (
	NotInteresting Class = iota
	FourGreen            // 4g: four greens, one white
	ThreeGreenOneYellow  // 3g1y: three greens, one yellow, one white
	ThreeGreenTwoYellow  // 3g2y
	TwoGreenThreeYellow  // 2g3y
	OneGreenFourYellow   // 1g4y
	ZeroGreenFiveYellow  // 0g5y
)

// Interesting lists the interesting classes in key order.
var Interesting = []Class{
	FourGreen,
	ThreeGreenOneYellow,
	ThreeGreenTwoYellow,
	TwoGreenThreeYellow,
	OneGreenFourYellow,
	ZeroGreenFiveYellow,
}

var classNames = map[Class]string{
	NotInteresting:      "none",
	FourGreen:           "4g",
	ThreeGreenOneYellow: "3g1y",
	ThreeGreenTwoYellow: "3g2y",
	TwoGreenThreeYellow: "2g3y",
	OneGreenFourYellow:  "1g4y",
	ZeroGreenFiveYellow: "0g5y",
}

// String returns the short code used as the first segment of a key.
func (c Class) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseClass is the inverse of Class.String for the interesting classes.
func ParseClass(name string) (Class, bool) {
	for _, c := range Interesting {
		if classNames[c] == name {
			return c, true
		}
	}
	return NotInteresting, false
}

// Classify looks fb up by its (green, yellow) counts. Everything outside the
// six interesting pairs, including a solved ggggg, is NotInteresting.
func Classify(fb string) Class {
	greens, yellows := Counts(fb)
	switch {
	case greens == 4 && yellows == 0:
		return FourGreen
	case greens == 3 && yellows == 1:
		return ThreeGreenOneYellow
	case greens == 3 && yellows == 2:
		return ThreeGreenTwoYellow
	case greens == 2 && yellows == 3:
		return TwoGreenThreeYellow
	case greens == 1 && yellows == 4:
		return OneGreenFourYellow
	case greens == 0 && yellows == 5:
		return ZeroGreenFiveYellow
	}
	return NotInteresting
}
