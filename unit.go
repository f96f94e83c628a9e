package golay

import (
	"fmt"
	"strconv"
	"strings"
)

// UnitKind specifies how a Unit's numeric value is interpreted.
type UnitKind string

const (
	// Pixels is an absolute value in logical pixels.
	Pixels UnitKind = "px"
	// RelativeBase multiplies the theme's base size (like rem).
	RelativeBase UnitKind = "rb"
	// RelativeParent multiplies the parent's extent on the same axis.
	RelativeParent UnitKind = "rp"
	// Percent is a percentage of the parent's extent on the same axis.
	Percent UnitKind = "%"
)

// Unit is a dimension value tagged with its interpretation.
// The value may be negative: negative offsets are valid for edges,
// though a negative resolved size is rejected later (see ErrNegativeExtent).
type Unit struct {
	Value float64
	Kind  UnitKind
}

// Px returns an absolute pixel unit.
func Px(v float64) Unit {
	return Unit{Value: v, Kind: Pixels}
}

// Rb returns a unit relative to the theme base size.
func Rb(v float64) Unit {
	return Unit{Value: v, Kind: RelativeBase}
}

// Rp returns a unit relative to the parent extent.
func Rp(v float64) Unit {
	return Unit{Value: v, Kind: RelativeParent}
}

// Pct returns a percentage-of-parent unit. The value is on a 0-100 scale.
func Pct(v float64) Unit {
	return Unit{Value: v, Kind: Percent}
}

// Resolve converts the unit to a pixel scalar. base is the theme's base size,
// parentExtent the resolved extent of the parent on the same axis.
func (u Unit) Resolve(base, parentExtent float64) float64 {
	switch u.Kind {
	case Pixels:
		return u.Value
	case RelativeBase:
		return u.Value * base
	case RelativeParent:
		return u.Value * parentExtent
	case Percent:
		return u.Value / 100.0 * parentExtent
	default:
		return 0
	}
}

func (u Unit) String() string {
	return strconv.FormatFloat(u.Value, 'g', -1, 64) + string(u.Kind)
}

var unitSuffixes = []UnitKind{Pixels, RelativeBase, RelativeParent, Percent}

// ParseUnit parses a unit string such as "100px", "2rb", "1.5rp" or "50%".
// The grammar is an optional sign, digits with an optional fractional part,
// and a unit suffix. A suffix without digits is an error.
func ParseUnit(s string) (Unit, error) {
	var kind UnitKind
	var number string
	for _, suffix := range unitSuffixes {
		if strings.HasSuffix(s, string(suffix)) {
			kind = suffix
			number = s[:len(s)-len(suffix)]
			break
		}
	}
	if kind == "" {
		return Unit{}, fmt.Errorf("%w: %q has no unit suffix", ErrInvalidUnit, s)
	}

	if !validNumber(number) {
		return Unit{}, fmt.Errorf("%w: %q", ErrInvalidUnit, s)
	}

	v, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return Unit{}, fmt.Errorf("%w: %q", ErrInvalidUnit, s)
	}

	return Unit{Value: v, Kind: kind}, nil
}

// validNumber enforces the fixed grammar: optional sign, one or more digits,
// optionally a decimal point followed by one or more digits. This is stricter
// than strconv.ParseFloat, which would also accept exponents, hex floats and
// leading dots.
func validNumber(s string) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}

	intPart, fracPart, hasDot := strings.Cut(s, ".")
	if !allDigits(intPart) || len(intPart) == 0 {
		return false
	}
	if hasDot && (!allDigits(fracPart) || len(fracPart) == 0) {
		return false
	}
	return true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
