package intl

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// UnknownCurrency is the ISO 4217 code for "no currency".
const UnknownCurrency = "XXX"

// Catalog answers currency symbol queries for a single locale level. It
// consults the built-in table first and the CLDR data bundled with
// golang.org/x/text for base languages and root.
type Catalog struct{}

// LookupCurrencySymbol reports the symbol l itself defines for code,
// without looking at parent locales.
func (Catalog) LookupCurrencySymbol(l Locale, code string) (string, bool) {
	code = strings.ToUpper(code)
	if e, ok := table[l.String()]; ok {
		if s, ok := e.currencies[code]; ok && s != "" {
			return s, true
		}
	}
	if !l.IsRoot() && !l.isLanguageLevel() {
		return "", false
	}
	u, err := currency.ParseISO(code)
	if err != nil {
		return "", false
	}
	s := message.NewPrinter(l.tag).Sprint(currency.Symbol(u))
	if s == "" || s == code {
		return "", false
	}
	return s, true
}

// currencySymbol walks the chain of l and falls back to the code itself.
func currencySymbol(l Locale, code string) string {
	var c Catalog
	for _, loc := range l.Chain() {
		if s, ok := c.LookupCurrencySymbol(loc, code); ok {
			return s
		}
	}
	return code
}

// CanonicalCurrency validates an ISO 4217 code and returns it upper-cased.
func CanonicalCurrency(code string) (string, error) {
	u, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
	}
	return u.String(), nil
}

// DefaultCurrency is the currency in use in the region of l.
func DefaultCurrency(l Locale) string {
	u, conf := currency.FromTag(l.tag)
	if conf == language.No {
		return UnknownCurrency
	}
	return u.String()
}

// CurrencyScale is the number of fraction digits used for code in
// standard (non-cash) amounts.
func CurrencyScale(code string) (int, error) {
	u, err := currency.ParseISO(code)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
	}
	scale, _ := currency.Standard.Rounding(u)
	return scale, nil
}

// isCurrencyCode matches three upper-case ASCII letters forming a known
// ISO 4217 code.
func isCurrencyCode(s string) (string, bool) {
	if len(s) != 3 {
		return "", false
	}
	for i := 0; i < 3; i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return "", false
		}
	}
	u, err := currency.ParseISO(s)
	if err != nil {
		return "", false
	}
	return u.String(), true
}
