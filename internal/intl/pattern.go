package intl

import "strings"

// currencySign is the CLDR placeholder for the currency symbol in affixes.
const currencySign = "¤"

// pattern is the parsed form of a CLDR number pattern such as
// "#,##0.00 ¤;(#,##0.00 ¤)".
type pattern struct {
	posPrefix, posSuffix string
	negPrefix, negSuffix string

	primary, secondary int // grouping sizes, 0 disables grouping
	minInt             int
	minFrac, maxFrac   int
	scientific         bool
	minExp             int
}

func parsePattern(s string) pattern {
	pos, neg, hasNeg := strings.Cut(s, ";")

	var p pattern
	prefix, body, suffix := splitPattern(pos)
	p.posPrefix, p.posSuffix = prefix, suffix
	if hasNeg {
		p.negPrefix, _, p.negSuffix = splitPattern(neg)
	} else {
		p.negPrefix, p.negSuffix = "-"+prefix, suffix
	}
	p.parseBody(body)
	return p
}

// splitPattern separates the affixes from the numeric body of a
// sub-pattern.
func splitPattern(s string) (prefix, body, suffix string) {
	start := strings.IndexAny(s, "#0,.")
	if start < 0 {
		return s, "", ""
	}
	end := start
	for end < len(s) && strings.IndexByte("#0,.E", s[end]) >= 0 {
		end++
	}
	return s[:start], s[start:end], s[end:]
}

func (p *pattern) parseBody(body string) {
	mant, exp, sci := strings.Cut(body, "E")
	if sci {
		p.scientific = true
		p.minExp = strings.Count(exp, "0")
	}
	intPart, frac, _ := strings.Cut(mant, ".")
	p.minInt = strings.Count(intPart, "0")
	if last := strings.LastIndexByte(intPart, ','); last >= 0 {
		p.primary = len(intPart) - last - 1
		p.secondary = p.primary
		if prev := strings.LastIndexByte(intPart[:last], ','); prev >= 0 {
			p.secondary = last - prev - 1
		}
	}
	p.minFrac = strings.Count(frac, "0")
	p.maxFrac = len(frac)
}

// group inserts sep into an ASCII digit run following the grouping sizes.
func (p pattern) group(digits, sep string) string {
	if sep == "" || p.primary <= 0 || len(digits) <= p.primary {
		return digits
	}
	var parts []string
	end, size := len(digits), p.primary
	for end > size {
		parts = append(parts, digits[end-size:end])
		end -= size
		if p.secondary > 0 {
			size = p.secondary
		}
	}
	parts = append(parts, digits[:end])

	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteString(parts[i])
		if i > 0 {
			b.WriteString(sep)
		}
	}
	return b.String()
}
