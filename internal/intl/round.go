package intl

import (
	"math"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

// RoundingMode selects how values are brought to the fraction digits a
// formatter allows.
type RoundingMode int

const (
	HalfEven RoundingMode = iota
	Down
	Ceiling
	Floor
)

func (m RoundingMode) String() string {
	switch m {
	case Down:
		return "down"
	case Ceiling:
		return "ceiling"
	case Floor:
		return "floor"
	default:
		return "half_even"
	}
}

// ParseRoundingMode maps a configuration name onto a RoundingMode.
func ParseRoundingMode(s string) (RoundingMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "half_even", "halfeven":
		return HalfEven, true
	case "down", "truncate":
		return Down, true
	case "ceiling", "ceil":
		return Ceiling, true
	case "floor":
		return Floor, true
	}
	return HalfEven, false
}

// Round rounds v to scale fraction digits. It reports false for NaN and
// infinities, which are returned unchanged.
func Round(v float64, scale int, mode RoundingMode) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v, false
	}
	if scale < 0 {
		scale = 0
	}
	d, err := toDecimal(v)
	if err != nil {
		// past the decimal precision every float64 is already an integer
		return v, true
	}
	f, ok := roundDecimal(d, scale, mode).Float64()
	if !ok {
		return v, true
	}
	return f, true
}

// toDecimal converts a finite float through its shortest decimal
// representation. It fails for magnitudes beyond the decimal precision.
func toDecimal(v float64) (decimal.Decimal, error) {
	return decimal.Parse(strconv.FormatFloat(v, 'f', -1, 64))
}

func roundDecimal(d decimal.Decimal, scale int, mode RoundingMode) decimal.Decimal {
	switch mode {
	case Down:
		return d.Trunc(scale)
	case Ceiling:
		return d.Ceil(scale)
	case Floor:
		return d.Floor(scale)
	default:
		return d.Round(scale)
	}
}

// fixedDigits renders a non-negative finite value with ASCII digits, a '.'
// decimal point and between minFrac and maxFrac fraction digits.
func fixedDigits(abs float64, minFrac, maxFrac int, mode RoundingMode) string {
	if maxFrac < minFrac {
		maxFrac = minFrac
	}
	d, err := toDecimal(abs)
	if err != nil {
		// too many integer digits for the decimal type, so abs is integral
		return padFraction(strconv.FormatFloat(abs, 'f', -1, 64), minFrac)
	}
	d = roundDecimal(d, maxFrac, mode).Trim(minFrac)
	if d.Scale() < minFrac {
		d = d.Pad(minFrac)
	}
	// Pad stops short when the coefficient would exceed 19 digits
	return padFraction(d.String(), minFrac)
}

// padFraction appends zeros to s until it carries minFrac fraction digits.
func padFraction(s string, minFrac int) string {
	have := 0
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		have = len(s) - dot - 1
	} else if minFrac > 0 {
		s += "."
	}
	if have < minFrac {
		s += strings.Repeat("0", minFrac-have)
	}
	return s
}
