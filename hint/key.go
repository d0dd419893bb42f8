package hint

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadKey = errors.New("malformed structural key")

// Key is the structured form of a histogram key. Positions are 1-based:
//
//	4g    [white]            4g.<white>.<occurrence>, or 4g.<white> when Occurrence is 0
//	3g1y  [yellow, white]    3g1y.yellow<p>.white<p>
//	3g2y  [yellow, yellow]   3g2y.yellow<p><p>
//	2g3y  [green, green]     2g3y.green<p><p>
//	1g4y  [green]            1g4y.green<p>
//	0g5y  []                 0g5y.
type Key struct {
	Class      Class
	Positions  []int
	Occurrence int
}

// StructuralKey derives the key of fb. occurrence only matters for 4g and
// counts how many times this exact feedback has been seen so far in the same
// game, this one included. Asking for the key of a NotInteresting feedback
// is a bug in the caller and panics.
func StructuralKey(fb string, class Class, occurrence int) (name, subname, key string) {
	k := KeyOf(fb, class, occurrence)
	return class.String(), k.Subname(), k.String()
}

// KeyOf is StructuralKey returning the structured Key.
func KeyOf(fb string, class Class, occurrence int) Key {
	if class == NotInteresting {
		panic(fmt.Sprintf("hint: structural key requested for uninteresting feedback %q", fb))
	}
	if got := Classify(fb); got != class {
		panic(fmt.Sprintf("hint: feedback %q is %v, not %v", fb, got, class))
	}

	k := Key{Class: class}
	switch class {
	case FourGreen:
		k.Positions = positions(fb, White)
		k.Occurrence = occurrence
	case ThreeGreenOneYellow:
		k.Positions = append(positions(fb, Yellow), positions(fb, White)...)
	case ThreeGreenTwoYellow:
		k.Positions = positions(fb, Yellow)
	case TwoGreenThreeYellow, OneGreenFourYellow:
		k.Positions = positions(fb, Green)
	}
	return k
}

// Subname is the part of the key after the class code.
func (k Key) Subname() string {
	p := k.Positions
	switch k.Class {
	case FourGreen:
		if k.Occurrence > 0 {
			return fmt.Sprintf("%d.%d", p[0], k.Occurrence)
		}
		return strconv.Itoa(p[0])
	case ThreeGreenOneYellow:
		return fmt.Sprintf("yellow%d.white%d", p[0], p[1])
	case ThreeGreenTwoYellow:
		return fmt.Sprintf("yellow%d%d", p[0], p[1])
	case TwoGreenThreeYellow:
		return fmt.Sprintf("green%d%d", p[0], p[1])
	case OneGreenFourYellow:
		return fmt.Sprintf("green%d", p[0])
	}
	return ""
}

func (k Key) String() string {
	return k.Class.String() + "." + k.Subname()
}

// Short drops the 4g occurrence. Fingerprints count guesses per position,
// not occurrences, so they are keyed by short keys.
func (k Key) Short() Key {
	if k.Class == FourGreen {
		k.Occurrence = 0
	}
	return k
}

// Pattern builds a feedback string that has this key.
func (k Key) Pattern() string {
	seq := []byte(strings.Repeat(string(Green), WordLen))
	switch k.Class {
	case FourGreen:
		seq[k.Positions[0]-1] = White
	case ThreeGreenOneYellow:
		seq[k.Positions[0]-1] = Yellow
		seq[k.Positions[1]-1] = White
	case ThreeGreenTwoYellow:
		for _, p := range k.Positions {
			seq[p-1] = Yellow
		}
	case TwoGreenThreeYellow, OneGreenFourYellow, ZeroGreenFiveYellow:
		for i := range seq {
			seq[i] = Yellow
		}
		for _, p := range k.Positions {
			seq[p-1] = Green
		}
	}
	return string(seq)
}

// ParseKey reads a key in the long (or, for 4g, short) form.
func ParseKey(s string) (Key, error) {
	name, rest, ok := strings.Cut(s, ".")
	if !ok {
		return Key{}, fmt.Errorf("%w: %q", ErrBadKey, s)
	}
	class, ok := ParseClass(name)
	if !ok {
		return Key{}, fmt.Errorf("%w: unknown class in %q", ErrBadKey, s)
	}

	k := Key{Class: class}
	var digits string
	switch class {
	case FourGreen:
		pos, occ, hasOcc := strings.Cut(rest, ".")
		digits = pos
		if hasOcc {
			n, err := strconv.Atoi(occ)
			if err != nil || n < 1 {
				return Key{}, fmt.Errorf("%w: bad occurrence in %q", ErrBadKey, s)
			}
			k.Occurrence = n
		}
	case ThreeGreenOneYellow:
		y, w, _ := strings.Cut(rest, ".")
		digits = strings.TrimPrefix(y, "yellow") + strings.TrimPrefix(w, "white")
	case ThreeGreenTwoYellow:
		digits = strings.TrimPrefix(rest, "yellow")
	case TwoGreenThreeYellow, OneGreenFourYellow:
		digits = strings.TrimPrefix(rest, "green")
	}

	for i := 0; i < len(digits); i++ {
		d := int(digits[i] - '0')
		if d < 1 || d > WordLen {
			return Key{}, fmt.Errorf("%w: bad position in %q", ErrBadKey, s)
		}
		k.Positions = append(k.Positions, d)
	}

	// anything odd (wrong arity, unsorted pairs, repeated positions) fails
	// to round trip
	if !k.wellFormed() || k.String() != s {
		return Key{}, fmt.Errorf("%w: %q", ErrBadKey, s)
	}
	return k, nil
}

// ShortKey is ParseKey followed by Short, falling back to s unchanged when
// it does not parse.
func ShortKey(s string) string {
	k, err := ParseKey(s)
	if err != nil {
		return s
	}
	return k.Short().String()
}

func (k Key) wellFormed() bool {
	arity := map[Class]int{
		FourGreen:           1,
		ThreeGreenOneYellow: 2,
		ThreeGreenTwoYellow: 2,
		TwoGreenThreeYellow: 2,
		OneGreenFourYellow:  1,
		ZeroGreenFiveYellow: 0,
	}
	if len(k.Positions) != arity[k.Class] {
		return false
	}
	if len(k.Positions) == 2 {
		a, b := k.Positions[0], k.Positions[1]
		if a == b {
			return false
		}
		if k.Class != ThreeGreenOneYellow && a > b {
			return false
		}
	}
	return true
}
