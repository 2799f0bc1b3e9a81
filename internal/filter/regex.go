package filter

import (
	"regexp"
	"strings"
)

const (
	unicodeDigits = `\p{N}`
	asciiDigits   = `0-9`
)

// RegexComponents are the character class fragments the fallback parser
// builds its patterns from.
type RegexComponents struct {
	Digits  string
	Unicode bool
}

func NewRegexComponents() RegexComponents {
	if _, err := regexp.Compile(`[` + unicodeDigits + `]`); err == nil {
		return RegexComponents{Digits: unicodeDigits, Unicode: true}
	}
	return RegexComponents{Digits: asciiDigits}
}

// allowedChars matches strings made only of digits and the characters of
// the given symbols.
func (rc RegexComponents) allowedChars(symbols []string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString(`^[`)
	b.WriteString(rc.Digits)
	for _, s := range symbols {
		b.WriteString(quoteClass(s))
	}
	b.WriteString(`]+$`)
	return regexp.Compile(b.String())
}

// negativeNotation matches a whole amount written with the currency
// negative affixes, capturing the number between them.
func (rc RegexComponents) negativeNotation(prefix, suffix, decimal, group string) (*regexp.Regexp, error) {
	expr := `^` + regexp.QuoteMeta(prefix) +
		`([` + rc.Digits + quoteClass(decimal) + quoteClass(group) + `]+)` +
		regexp.QuoteMeta(suffix) + `$`
	return regexp.Compile(expr)
}

func (rc RegexComponents) digits() *regexp.Regexp {
	return regexp.MustCompile(`[` + rc.Digits + `]`)
}

// quoteClass escapes the characters that are special inside a bracket
// expression.
func quoteClass(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\', ']', '[', '^', '-':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// literalReplacement escapes s for use as a regexp replacement template.
func literalReplacement(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}
