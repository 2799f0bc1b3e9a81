package intl

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Style selects the pattern a NumberFormatter is built from.
type Style int

const (
	DecimalStyle Style = iota
	CurrencyStyle
	ScientificStyle
)

// Symbol names a localized symbol of a NumberFormatter.
type Symbol int

const (
	DecimalSeparatorSymbol Symbol = iota
	GroupingSeparatorSymbol
	MonetarySeparatorSymbol
	MonetaryGroupingSeparatorSymbol
	MinusSignSymbol
	PlusSignSymbol
	CurrencySymbol
	IntlCurrencySymbol
	ExponentialSymbol
	InfinitySymbol
	NaNSymbol
	ZeroDigitSymbol
)

// Attribute names a numeric setting of a NumberFormatter.
type Attribute int

const (
	FractionDigits Attribute = iota
	MinFractionDigits
	MaxFractionDigits
	GroupingUsed
	Rounding
)

// TextAttribute names a textual setting of a NumberFormatter.
type TextAttribute int

const (
	PositivePrefix TextAttribute = iota
	PositiveSuffix
	NegativePrefix
	NegativeSuffix
	CurrencyCode
)

// NumberFormatter formats and parses numbers for one locale and style.
// It is not safe for concurrent mutation.
type NumberFormatter struct {
	locale   Locale
	style    Style
	pattern  string
	pat      pattern
	symbols  map[Symbol]string
	minFrac  int
	maxFrac  int
	grouping bool
	rounding RoundingMode
	currency string
}

// New builds a formatter for the locale identifier id.
func New(id string, style Style) (*NumberFormatter, error) {
	l, err := ParseLocale(id)
	if err != nil {
		return nil, err
	}
	return NewForLocale(l, style)
}

func NewForLocale(l Locale, style Style) (*NumberFormatter, error) {
	d := lookupData(l)

	f := &NumberFormatter{
		locale:   l,
		style:    style,
		grouping: true,
		rounding: HalfEven,
	}
	switch style {
	case DecimalStyle:
		f.pattern = d.decimalPattern
	case CurrencyStyle:
		f.pattern = d.currencyPattern
	case ScientificStyle:
		f.pattern = d.scientificPattern
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidStyle, style)
	}
	f.pat = parsePattern(f.pattern)
	f.minFrac, f.maxFrac = f.pat.minFrac, f.pat.maxFrac

	f.symbols = map[Symbol]string{
		DecimalSeparatorSymbol:          d.decimal,
		GroupingSeparatorSymbol:         d.group,
		MonetarySeparatorSymbol:         d.decimal,
		MonetaryGroupingSeparatorSymbol: d.group,
		MinusSignSymbol:                 d.minus,
		PlusSignSymbol:                  d.plus,
		ExponentialSymbol:               d.exponential,
		InfinitySymbol:                  d.infinity,
		NaNSymbol:                       d.nan,
		ZeroDigitSymbol:                 string(d.zero),
	}

	if err := f.SetTextAttribute(CurrencyCode, DefaultCurrency(l)); err != nil {
		return nil, err
	}
	if style != CurrencyStyle {
		f.minFrac, f.maxFrac = f.pat.minFrac, f.pat.maxFrac
	}
	return f, nil
}

func (f *NumberFormatter) Locale() Locale { return f.locale }

func (f *NumberFormatter) Style() Style { return f.style }

func (f *NumberFormatter) Pattern() string { return f.pattern }

func (f *NumberFormatter) Symbol(s Symbol) string { return f.symbols[s] }

func (f *NumberFormatter) SetSymbol(s Symbol, v string) {
	f.symbols[s] = v
}

func (f *NumberFormatter) Attribute(a Attribute) int {
	switch a {
	case FractionDigits, MaxFractionDigits:
		return f.maxFrac
	case MinFractionDigits:
		return f.minFrac
	case GroupingUsed:
		if f.grouping {
			return 1
		}
		return 0
	case Rounding:
		return int(f.rounding)
	}
	return -1
}

func (f *NumberFormatter) SetAttribute(a Attribute, v int) {
	switch a {
	case FractionDigits:
		f.minFrac, f.maxFrac = v, v
	case MinFractionDigits:
		f.minFrac = v
		if f.maxFrac < v {
			f.maxFrac = v
		}
	case MaxFractionDigits:
		f.maxFrac = v
		if f.minFrac > v {
			f.minFrac = v
		}
	case GroupingUsed:
		f.grouping = v != 0
	case Rounding:
		f.rounding = RoundingMode(v)
	}
}

// TextAttribute returns affixes with the currency placeholder expanded.
func (f *NumberFormatter) TextAttribute(a TextAttribute) string {
	sym := f.symbols[CurrencySymbol]
	switch a {
	case PositivePrefix:
		return expandAffix(f.pat.posPrefix, sym)
	case PositiveSuffix:
		return expandAffix(f.pat.posSuffix, sym)
	case NegativePrefix:
		return expandAffix(f.pat.negPrefix, sym)
	case NegativeSuffix:
		return expandAffix(f.pat.negSuffix, sym)
	case CurrencyCode:
		return f.currency
	}
	return ""
}

// SetTextAttribute overrides an affix or switches the currency. Setting
// the currency code resets the currency symbols and, for the currency
// style, the fraction digits to the scale of the new currency.
func (f *NumberFormatter) SetTextAttribute(a TextAttribute, v string) error {
	switch a {
	case PositivePrefix:
		f.pat.posPrefix = v
	case PositiveSuffix:
		f.pat.posSuffix = v
	case NegativePrefix:
		f.pat.negPrefix = v
	case NegativeSuffix:
		f.pat.negSuffix = v
	case CurrencyCode:
		code, err := CanonicalCurrency(v)
		if err != nil {
			return err
		}
		f.currency = code
		f.symbols[IntlCurrencySymbol] = code
		f.symbols[CurrencySymbol] = currencySymbol(f.locale, code)
		if f.style == CurrencyStyle {
			scale, err := CurrencyScale(code)
			if err != nil {
				return err
			}
			f.minFrac, f.maxFrac = scale, scale
		}
	}
	return nil
}

// Format renders v using the formatter's currency, if any.
func (f *NumberFormatter) Format(v float64) string {
	return f.format(v, f.symbols[CurrencySymbol], f.minFrac, f.maxFrac)
}

// FormatCurrency renders v in the currency code without changing the
// formatter's own currency.
func (f *NumberFormatter) FormatCurrency(v float64, code string) (string, error) {
	if code == "" || strings.EqualFold(code, f.currency) {
		return f.Format(v), nil
	}
	canon, err := CanonicalCurrency(code)
	if err != nil {
		return "", err
	}
	scale, err := CurrencyScale(canon)
	if err != nil {
		return "", err
	}
	return f.format(v, currencySymbol(f.locale, canon), scale, scale), nil
}

func (f *NumberFormatter) format(v float64, sym string, minFrac, maxFrac int) string {
	if math.IsNaN(v) {
		return f.symbols[NaNSymbol]
	}
	prefix, suffix := f.pat.posPrefix, f.pat.posSuffix
	if math.Signbit(v) {
		prefix, suffix = f.pat.negPrefix, f.pat.negSuffix
	}

	var body string
	switch {
	case math.IsInf(v, 0):
		body = f.symbols[InfinitySymbol]
	case f.pat.scientific:
		body = f.formatScientific(math.Abs(v))
	default:
		body = f.formatFixed(math.Abs(v), minFrac, maxFrac)
	}
	return expandAffix(prefix, sym) + body + expandAffix(suffix, sym)
}

func (f *NumberFormatter) formatFixed(abs float64, minFrac, maxFrac int) string {
	s := fixedDigits(abs, minFrac, maxFrac, f.rounding)
	intPart, frac, _ := strings.Cut(s, ".")
	for len(intPart) < f.pat.minInt {
		intPart = "0" + intPart
	}

	dec, grp := f.separators()
	if f.grouping {
		intPart = f.pat.group(intPart, grp)
	}
	out := intPart
	if frac != "" {
		out += dec + frac
	}
	return localizeDigits(out, f.zero())
}

func (f *NumberFormatter) formatScientific(abs float64) string {
	s := strconv.FormatFloat(abs, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	n, _ := strconv.Atoi(exp)

	dec, _ := f.separators()
	out := strings.Replace(mant, ".", dec, 1)
	sign := ""
	if n < 0 {
		sign = f.symbols[MinusSignSymbol]
		n = -n
	}
	e := strconv.Itoa(n)
	for len(e) < f.pat.minExp {
		e = "0" + e
	}
	return localizeDigits(out, f.zero()) + f.symbols[ExponentialSymbol] + sign + localizeDigits(e, f.zero())
}

func (f *NumberFormatter) separators() (dec, grp string) {
	if f.style == CurrencyStyle {
		return f.symbols[MonetarySeparatorSymbol], f.symbols[MonetaryGroupingSeparatorSymbol]
	}
	return f.symbols[DecimalSeparatorSymbol], f.symbols[GroupingSeparatorSymbol]
}

func (f *NumberFormatter) zero() rune {
	z := f.symbols[ZeroDigitSymbol]
	if z == "" {
		return '0'
	}
	r := []rune(z)[0]
	if _, ok := digitValue(r); !ok {
		return '0'
	}
	return r
}

func expandAffix(affix, sym string) string {
	if !strings.Contains(affix, currencySign) {
		return affix
	}
	return strings.ReplaceAll(affix, currencySign, sym)
}
