package filter

import (
	"fmt"

	"github.com/leodido/moneylaundry/internal/intl"
)

const (
	DefaultScaleCorrectness    = true
	DefaultCurrencyCorrectness = true
)

// Options configures Currency and Uncurrency. An empty Locale selects the
// platform default; an empty CurrencyCode selects the locale's currency.
type Options struct {
	Locale              string `json:"locale,omitempty" yaml:"locale"`
	CurrencyCode        string `json:"currency_code,omitempty" yaml:"currency_code"`
	ScaleCorrectness    bool   `json:"scale_correctness" yaml:"scale_correctness"`
	CurrencyCorrectness bool   `json:"currency_correctness" yaml:"currency_correctness"`
}

func DefaultOptions() Options {
	return Options{
		ScaleCorrectness:    DefaultScaleCorrectness,
		CurrencyCorrectness: DefaultCurrencyCorrectness,
	}
}

// resolve validates the options and normalizes the currency code.
func (o Options) resolve() (intl.Locale, Options, error) {
	loc := intl.DefaultLocale()
	if o.Locale != "" {
		l, err := intl.ParseLocale(o.Locale)
		if err != nil {
			return intl.Locale{}, o, fmt.Errorf("filter options: %w", err)
		}
		loc = l
	}
	o.Locale = loc.String()

	if o.CurrencyCode != "" {
		code, err := intl.CanonicalCurrency(o.CurrencyCode)
		if err != nil {
			return intl.Locale{}, o, fmt.Errorf("filter options: %w", err)
		}
		o.CurrencyCode = code
	}
	return loc, o, nil
}
