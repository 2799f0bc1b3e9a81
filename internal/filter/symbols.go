package filter

import (
	"strings"

	"github.com/leodido/moneylaundry/internal/intl"
)

// SymbolTable is the formatting metadata both parser paths work from.
// Affixes have the currency symbol removed.
type SymbolTable struct {
	FractionDigits   int
	CurrencySymbol   string
	GroupSeparator   string
	DecimalSeparator string
	PositivePrefix   string
	PositiveSuffix   string
	NegativePrefix   string
	NegativeSuffix   string
	Infinity         string
	NaN              string
}

// NewSymbolTable reads the table off a currency formatter. It clears the
// formatter's exponential symbol first, so scientific notation never
// parses.
func NewSymbolTable(f *intl.NumberFormatter) SymbolTable {
	f.SetSymbol(intl.ExponentialSymbol, "")

	sym := f.Symbol(intl.CurrencySymbol)
	strip := func(s string) string {
		if sym == "" {
			return s
		}
		return strings.ReplaceAll(s, sym, "")
	}
	return SymbolTable{
		FractionDigits:   f.Attribute(intl.FractionDigits),
		CurrencySymbol:   sym,
		GroupSeparator:   f.Symbol(intl.MonetaryGroupingSeparatorSymbol),
		DecimalSeparator: f.Symbol(intl.MonetarySeparatorSymbol),
		PositivePrefix:   strip(f.TextAttribute(intl.PositivePrefix)),
		PositiveSuffix:   strip(f.TextAttribute(intl.PositiveSuffix)),
		NegativePrefix:   strip(f.TextAttribute(intl.NegativePrefix)),
		NegativeSuffix:   strip(f.TextAttribute(intl.NegativeSuffix)),
		Infinity:         f.Symbol(intl.InfinitySymbol),
		NaN:              f.Symbol(intl.NaNSymbol),
	}
}

// Symbols lists the distinct non-empty symbols of the table.
func (t SymbolTable) Symbols() []string {
	all := []string{
		t.CurrencySymbol,
		t.GroupSeparator,
		t.DecimalSeparator,
		t.PositivePrefix,
		t.PositiveSuffix,
		t.NegativePrefix,
		t.NegativeSuffix,
		t.Infinity,
		t.NaN,
	}
	seen := make(map[string]struct{}, len(all))
	out := make([]string, 0, len(all))
	for _, s := range all {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
