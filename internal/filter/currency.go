package filter

import (
	"github.com/rs/zerolog/log"

	"github.com/leodido/moneylaundry/internal/intl"
)

// Currency renders float64 amounts as locale formatted currency text.
// Every other input is handed back unchanged.
type Currency struct {
	base
}

func NewCurrency(opts Options) (*Currency, error) {
	c := &Currency{}
	if err := c.init(opts); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Currency) Filter(value any) any {
	v, ok := value.(float64)
	if !ok {
		return value
	}
	if s, ok := c.Format(v); ok {
		return s
	}
	return value
}

// Format reports false when the value carries more fraction digits than
// the currency allows (with scale correctness on) or the filter cannot be
// set up.
func (c *Currency) Format(v float64) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, err := c.ready()
	if err != nil {
		log.Error().Err(err).Str("locale", c.opts.Locale).Msg("currency setup failed")
		return "", false
	}

	if c.opts.ScaleCorrectness {
		mode := intl.RoundingMode(st.currency.Attribute(intl.Rounding))
		// Round reports false only for NaN and infinities, which have no scale
		if r, ok := intl.Round(v, st.symbols.FractionDigits, mode); ok && r != v {
			log.Debug().
				Str("locale", c.opts.Locale).
				Str("currency", st.code).
				Float64("value", v).
				Int("scale", st.symbols.FractionDigits).
				Msg("amount exceeds currency scale")
			return "", false
		}
	}

	out, err := st.currency.FormatCurrency(v, st.code)
	if err != nil {
		log.Error().Err(err).Str("currency", st.code).Msg("format currency")
		return "", false
	}
	return out, true
}
