package filter

import (
	"math"
	"strings"

	"github.com/rs/zerolog/log"
)

// Uncurrency turns a locale formatted amount ("1.234,61 €") into a number.
// Input it cannot accept is handed back unchanged.
type Uncurrency struct {
	base
}

func NewUncurrency(opts Options) (*Uncurrency, error) {
	u := &Uncurrency{}
	if err := u.init(opts); err != nil {
		return nil, err
	}
	return u, nil
}

// Filter returns a float64 for accepted strings and value itself otherwise.
func (u *Uncurrency) Filter(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	if res := u.Parse(s); res.OK {
		return res.Value
	}
	return value
}

// Parse runs the strict parser and, when the currency is optional, the
// fallback parser.
func (u *Uncurrency) Parse(text string) Result {
	u.mu.Lock()
	defer u.mu.Unlock()

	st, err := u.ready()
	if err != nil {
		log.Error().Err(err).Str("locale", u.opts.Locale).Msg("uncurrency setup failed")
		return reject(ReasonNotInitialized, PathNone)
	}

	value := strings.ReplaceAll(text, " ", nbsp)
	if st.symbols.NaN != "" && value == st.symbols.NaN {
		return accept(math.NaN(), PathNaN)
	}

	res := u.strict(st, value)
	if !res.OK && !u.opts.CurrencyCorrectness {
		res = u.fallback(st, value)
	}
	if !res.OK {
		log.Debug().
			Str("locale", u.opts.Locale).
			Str("currency", st.code).
			Str("path", res.Path.String()).
			Str("reason", res.Reason.String()).
			Msg("amount rejected")
	}
	return res
}

func (u *Uncurrency) strict(st *state, value string) Result {
	v, code, pos, ok := st.currency.ParseCurrency(value)
	if !ok {
		return reject(ReasonUnparsable, PathStrict)
	}
	if pos != len(value) {
		return reject(ReasonIncompleteParse, PathStrict)
	}
	if code != "" && code != st.code {
		return reject(ReasonCurrencyMismatch, PathStrict)
	}
	finite := !math.IsNaN(v) && !math.IsInf(v, 0)
	if u.opts.ScaleCorrectness && finite && st.decimalDigits(value) != st.symbols.FractionDigits {
		return reject(ReasonScaleMismatch, PathStrict)
	}
	if u.opts.CurrencyCorrectness && !st.hasCurrency(value) {
		return reject(ReasonCurrencyMissing, PathStrict)
	}
	return accept(v, PathStrict)
}

func (u *Uncurrency) fallback(st *state, value string) Result {
	if !st.allowed.MatchString(value) {
		return reject(ReasonDisallowedChars, PathFallback)
	}
	if u.opts.ScaleCorrectness && st.decimalDigits(value) != st.symbols.FractionDigits {
		return reject(ReasonScaleMismatch, PathFallback)
	}

	s := value
	if sym := st.symbols.CurrencySymbol; sym != "" {
		s = strings.ReplaceAll(s, sym, "")
	}
	s = strings.ReplaceAll(s, nbsp, "")
	if st.negative != nil {
		s = st.negative.ReplaceAllString(s, st.negRepl)
	}

	v, pos, ok := st.decimal.Parse(s)
	if !ok || pos != len(s) {
		return reject(ReasonUnparsable, PathFallback)
	}
	return accept(v, PathFallback)
}
