package filter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCurrency(t *testing.T, locale, code string, scale bool) *Currency {
	t.Helper()
	c, err := NewCurrency(Options{Locale: locale, CurrencyCode: code, ScaleCorrectness: scale, CurrencyCorrectness: true})
	require.NoError(t, err)
	return c
}

func TestCurrencyFilter(t *testing.T) {
	c := newCurrency(t, "it_IT", "", true)
	assert.Equal(t, "1.234,61\u00a0€", c.Filter(1234.61))
	assert.Equal(t, "-2,50\u00a0€", c.Filter(-2.5))
	assert.Equal(t, "EUR", c.CurrencyCode())

	c = newCurrency(t, "it_IT", "USD", true)
	s, ok := c.Format(3)
	require.True(t, ok)
	assert.Contains(t, s, "3,00")
	assert.NotContains(t, s, "€")
}

func TestCurrencyScaleRejection(t *testing.T) {
	c := newCurrency(t, "it_IT", "EUR", true)
	assert.Equal(t, 1234.619, c.Filter(1234.619))
	assert.Equal(t, 0.001, c.Filter(0.001))

	c.SetScaleCorrectness(false)
	assert.Equal(t, "1.234,62\u00a0€", c.Filter(1234.619))

	jpy := newCurrency(t, "ja_JP", "", true)
	assert.Equal(t, 1234.5, jpy.Filter(1234.5))
	assert.Equal(t, "￥1,234", jpy.Filter(1234.0))
}

func TestCurrencyPassesNonFloatsThrough(t *testing.T) {
	for _, scale := range []bool{true, false} {
		c := newCurrency(t, "it_IT", "", scale)
		for _, in := range []any{nil, true, false, "", "abc", "1234.61", 2, int64(3), []float64{1}, map[string]any{}} {
			assert.Equal(t, in, c.Filter(in))
		}
	}
}

func TestCurrencySpecialValues(t *testing.T) {
	c := newCurrency(t, "it_IT", "", true)
	assert.Equal(t, "NaN", c.Filter(math.NaN()))
	assert.Equal(t, "∞\u00a0€", c.Filter(math.Inf(1)))
	assert.Equal(t, "-∞\u00a0€", c.Filter(math.Inf(-1)))

	c = newCurrency(t, "bn_BD", "", true)
	assert.Equal(t, "(∞৳)", c.Filter(math.Inf(-1)))
}

func TestCurrencySetSymbolSource(t *testing.T) {
	c := newCurrency(t, "it_IT", "", true)
	assert.Equal(t, "1,50\u00a0€", c.Filter(1.5))

	c.SetSymbolSource(fakeSource{"it_IT": {"EUR": "euro"}})
	assert.Equal(t, "1,50\u00a0euro", c.Filter(1.5))
}

func TestRoundTrip(t *testing.T) {
	pairs := []struct {
		locale string
		code   string
		values []float64
	}{
		{"it_IT", "EUR", []float64{0, 0.01, -0.01, 1234.61, -1234.61, 1000000.5, 123456789.12, 1.2345678901234568e17, 1e19}},
		{"en_GB", "GBP", []float64{0, 11.33, -2.5, 1234567.89}},
		{"en_IN", "INR", []float64{1234567.89, -0.99}},
		{"bn_BD", "BDT", []float64{0.01, -0.01, 1234567.5, -4.611686018427388e18}},
		{"fr_FR", "EUR", []float64{1234.61, -1234.61}},
		{"ru_RU", "RUB", []float64{1234.61, -1234.61}},
		{"nl_NL", "EUR", []float64{1234.61, -1234.61}},
		{"de_CH", "CHF", []float64{1234.5, -1234.5, 7.205759403792794e16, -1.2345678901234568e17}},
		{"ja_JP", "JPY", []float64{0, 1234, -1234, 1000000, 9.876543210987654e18}},
		{"en_US", "USD", []float64{1.2345678901234568e17, -9.999999999999998e17, 1.8446744073709552e19}},
	}
	for _, p := range pairs {
		t.Run(p.locale, func(t *testing.T) {
			c := newCurrency(t, p.locale, p.code, true)
			u := newUncurrency(t, p.locale, p.code, true, true)
			for _, v := range p.values {
				text, ok := c.Format(v)
				require.True(t, ok, "%v", v)
				res := u.Parse(text)
				require.True(t, res.OK, "%q: %s", text, res.Reason)
				assert.Equal(t, v, res.Value, text)
			}
		})
	}
}
