package intl

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// zeros lists the zero digit of the decimal numbering systems the parser
// folds to ASCII. Each system occupies ten consecutive code points.
var zeros = []rune{
	'0',
	'٠', // Arabic-Indic
	'۰', // Extended Arabic-Indic
	'߀', // NKo
	'०', // Devanagari
	'০', // Bengali
	'੦', // Gurmukhi
	'૦', // Gujarati
	'୦', // Oriya
	'௦', // Tamil
	'౦', // Telugu
	'೦', // Kannada
	'൦', // Malayalam
	'๐', // Thai
	'໐', // Lao
	'༠', // Tibetan
	'၀', // Myanmar
	'០', // Khmer
	'᠐', // Mongolian
	'０', // Fullwidth
}

func digitValue(r rune) (int, bool) {
	for _, z := range zeros {
		if r >= z && r <= z+9 {
			return int(r - z), true
		}
	}
	return 0, false
}

// localizeDigits maps the ASCII digits of s onto the numbering system
// starting at zero.
func localizeDigits(s string, zero rune) string {
	if zero == 0 || zero == '0' {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return zero + (r - '0')
		}
		return r
	}, s)
}

func isSpace(r rune) bool {
	return r == ' ' || unicode.Is(unicode.Zs, r)
}

// sameRune compares affix and separator characters treating every space
// separator as equivalent.
func sameRune(a, b rune) bool {
	return a == b || (isSpace(a) && isSpace(b))
}

// matchSymbol reports the byte length of sym at the start of s, or 0.
func matchSymbol(s, sym string) int {
	if sym == "" {
		return 0
	}
	i := 0
	for _, want := range sym {
		if i >= len(s) {
			return 0
		}
		got, size := utf8.DecodeRuneInString(s[i:])
		if !sameRune(want, got) {
			return 0
		}
		i += size
	}
	return i
}
