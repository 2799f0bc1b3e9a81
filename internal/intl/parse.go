package intl

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// parsed is one candidate reading of an input string.
type parsed struct {
	value float64
	code  string
	end   int
	ok    bool
}

// Parse reads a plain number in the formatter's locale. It returns the
// value and the byte offset where parsing stopped; the boolean is false
// when no number could be read at all.
func (f *NumberFormatter) Parse(text string) (float64, int, bool) {
	p := f.parse(text)
	return p.value, p.end, p.ok
}

// ParseCurrency is like Parse but also reports the ISO code of the
// currency token the affixes matched. The token may be the formatter's
// own symbol or any ISO 4217 code.
func (f *NumberFormatter) ParseCurrency(text string) (float64, string, int, bool) {
	p := f.parse(text)
	return p.value, p.code, p.end, p.ok
}

// parse tries the positive and the negative form and keeps the one that
// consumes more input. Ties go to the positive form.
func (f *NumberFormatter) parse(text string) parsed {
	best := f.parseForm(text, f.pat.posPrefix, f.pat.posSuffix)
	neg := f.parseForm(text, f.pat.negPrefix, f.pat.negSuffix)
	if neg.ok && (!best.ok || neg.end > best.end) {
		if !math.IsNaN(neg.value) {
			neg.value = -neg.value
		}
		best = neg
	}
	return best
}

func (f *NumberFormatter) parseForm(text, prefix, suffix string) parsed {
	var res parsed

	pos, code, ok := f.matchAffix(text, 0, prefix)
	if !ok {
		return res
	}
	res.code = code

	v, n, ok := f.scanNumber(text[pos:])
	if !ok {
		return res
	}
	pos += n
	res.value, res.end, res.ok = v, pos, true

	// A suffix that does not match leaves a partial parse ending at the
	// number, the same as trailing garbage would.
	if end, code, ok := f.matchAffix(text, pos, suffix); ok {
		res.end = end
		if code != "" {
			res.code = code
		}
	}
	return res
}

// matchAffix matches affix against text starting at pos. The currency
// placeholder matches the formatter's currency symbol or an ISO code.
func (f *NumberFormatter) matchAffix(text string, pos int, affix string) (int, string, bool) {
	code := ""
	for _, want := range affix {
		if string(want) == currencySign {
			n, c, ok := f.matchCurrency(text[pos:])
			if !ok {
				return 0, "", false
			}
			pos += n
			code = c
			continue
		}
		got, size := utf8.DecodeRuneInString(text[pos:])
		if size == 0 || !sameRune(want, got) {
			return 0, "", false
		}
		pos += size
	}
	return pos, code, true
}

func (f *NumberFormatter) matchCurrency(s string) (int, string, bool) {
	n, code := 0, ""
	if sym := f.symbols[CurrencySymbol]; sym != "" && strings.HasPrefix(s, sym) {
		n, code = len(sym), f.currency
	}
	if len(s) >= 3 && n < 3 {
		if c, ok := isCurrencyCode(s[:3]); ok {
			n, code = 3, c
		}
	}
	return n, code, n > 0
}

// scanNumber reads infinity, NaN or a digit run with optional grouping,
// fraction and exponent from the start of s.
func (f *NumberFormatter) scanNumber(s string) (float64, int, bool) {
	if n := matchSymbol(s, f.symbols[InfinitySymbol]); n > 0 {
		return math.Inf(1), n, true
	}
	if n := matchSymbol(s, f.symbols[NaNSymbol]); n > 0 {
		return math.NaN(), n, true
	}

	dec, grp := f.separators()
	var b strings.Builder
	i, digits, seenDecimal := 0, 0, false
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if d, ok := digitValue(r); ok {
			b.WriteByte(byte('0' + d))
			digits++
			i += size
			continue
		}
		// grouping is lenient: a separator counts anywhere before the
		// decimal as long as a digit follows it
		if !seenDecimal {
			if n := matchSymbol(s[i:], grp); n > 0 && startsWithDigit(s[i+n:]) {
				i += n
				continue
			}
		}
		if !seenDecimal {
			if n := matchSymbol(s[i:], dec); n > 0 && startsWithDigit(s[i+n:]) {
				b.WriteByte('.')
				seenDecimal = true
				i += n
				continue
			}
		}
		break
	}
	if digits == 0 {
		return 0, 0, false
	}
	if n, exp, ok := f.scanExponent(s[i:]); ok {
		b.WriteString("e" + exp)
		i += n
	}

	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		var nerr *strconv.NumError
		if !errors.As(err, &nerr) || !errors.Is(nerr.Err, strconv.ErrRange) {
			return 0, 0, false
		}
	}
	return v, i, true
}

// scanExponent reads the exponential symbol, an optional sign and at least
// one digit. The symbol is matched case-insensitively.
func (f *NumberFormatter) scanExponent(s string) (int, string, bool) {
	sym := f.symbols[ExponentialSymbol]
	if sym == "" || len(s) < len(sym) || !strings.EqualFold(s[:len(sym)], sym) {
		return 0, "", false
	}
	i := len(sym)
	sign := ""
	if n := matchSymbol(s[i:], f.symbols[MinusSignSymbol]); n > 0 {
		sign, i = "-", i+n
	} else if n := matchSymbol(s[i:], f.symbols[PlusSignSymbol]); n > 0 {
		i += n
	}

	var b strings.Builder
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		d, ok := digitValue(r)
		if !ok {
			break
		}
		b.WriteByte(byte('0' + d))
		i += size
	}
	if b.Len() == 0 {
		return 0, "", false
	}
	return i, sign + b.String(), true
}

func startsWithDigit(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return false
	}
	_, ok := digitValue(r)
	return ok
}
