package validator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leodido/moneylaundry/internal/filter"
)

// opts decodes "scale currency negative" flags, e.g. "110".
func opts(t *testing.T, flags string) ValidationOptions {
	t.Helper()
	require.Len(t, flags, 3)
	o := DefaultValidationOptions()
	o.Locale = "it_IT"
	o.CurrencyCode = "EUR"
	o.ScaleCorrectness = flags[0] == '1'
	o.CurrencyCorrectness = flags[1] == '1'
	o.NegativeAllowed = flags[2] == '1'
	return o
}

func TestNewCurrencyDefaults(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MONETARY", "")
	t.Setenv("LANG", "")

	v, err := NewCurrency(DefaultValidationOptions())
	require.NoError(t, err)
	assert.Equal(t, "en_US", v.Locale())
	o := v.Options()
	assert.Equal(t, filter.DefaultScaleCorrectness, o.ScaleCorrectness)
	assert.Equal(t, filter.DefaultCurrencyCorrectness, o.CurrencyCorrectness)
	assert.Equal(t, DefaultNegativeAllowed, o.NegativeAllowed)

	t.Setenv("LANG", "de_DE.UTF-8")
	v, err = NewCurrency(DefaultValidationOptions())
	require.NoError(t, err)
	assert.Equal(t, "de_DE", v.Locale())

	v, err = NewCurrency(opts(t, "000"))
	require.NoError(t, err)
	o = v.Options()
	assert.False(t, o.ScaleCorrectness)
	assert.False(t, o.CurrencyCorrectness)
	assert.False(t, o.NegativeAllowed)
}

func TestCurrencyCodeResolution(t *testing.T) {
	o := DefaultValidationOptions()
	o.Locale = "it_IT"
	v, err := NewCurrency(o)
	require.NoError(t, err)
	assert.Empty(t, v.CurrencyCode())

	v.IsValid("1.234,61 €")
	assert.Equal(t, "EUR", v.CurrencyCode())

	o.CurrencyCode = "USD"
	v, err = NewCurrency(o)
	require.NoError(t, err)
	assert.Equal(t, "USD", v.CurrencyCode())
}

func TestCurrencyValidation(t *testing.T) {
	tests := []struct {
		value any
		want  bool
		flags string
	}{
		{123, false, "000"},

		{"1.234,619", false, "100"},
		{"1.234,619", false, "101"},
		{"1.234,619 €", false, "111"},
		{"1.234,619 €", false, "110"},

		{"1.234,61", false, "111"},
		{"1.234,61", false, "110"},
		{"1.234,61", false, "010"},
		{"1.234,61", false, "011"},
		{"1.234,61 EUR", false, "110"},

		{"-1.234,61", false, "000"},
		{"-1.234,61 €", false, "010"},
		{"-1.234,61 €", false, "110"},
		{"-1.234,61", false, "100"},

		{"1.234,619", true, "000"},
		{"1.234,619", true, "001"},
		{"1.234,619 €", true, "011"},
		{"1.234,619 €", true, "010"},

		{"1.234,61", true, "101"},
		{"1.234,61", true, "100"},
		{"1.234,61", true, "000"},
		{"1.234,61", true, "001"},
		{"1.234,61 EUR", true, "001"},

		{"-1.234,61", true, "001"},
		{"-1.234,61 €", true, "011"},
		{"-1.234,61 €", true, "111"},
		{"-1.234,61", true, "101"},

		{"1.234,61 €", true, "110"},
		{"1.234 €", false, "110"},
		{"-1.234.10 €", false, "110"},
		{"1.234,61", false, "110"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v/%s", tt.value, tt.flags), func(t *testing.T) {
			v, err := NewCurrency(opts(t, tt.flags))
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.IsValid(tt.value))
		})
	}
}

func TestCurrencyMessages(t *testing.T) {
	v, err := NewCurrency(opts(t, "110"))
	require.NoError(t, err)

	assert.False(t, v.IsValid(42))
	assert.Equal(t, map[string]string{
		CurrencyInvalid: "Invalid input given: '42' is not a string",
	}, v.Messages())
	assert.Equal(t, filter.ReasonNotString, v.Reason())

	assert.False(t, v.IsValid("1.234,61"))
	msgs := v.Messages()
	require.Contains(t, msgs, NotCurrency)
	assert.Equal(t, "The '1.234,61' is not a well-formatted currency; the requested format is #,##0.00\u00a0¤", msgs[NotCurrency])
	assert.Equal(t, filter.ReasonCurrencyMissing, v.Reason())

	v, err = NewCurrency(opts(t, "010"))
	require.NoError(t, err)
	assert.False(t, v.IsValid("-1,00 €"))
	assert.Equal(t, map[string]string{
		NotPositiveCurrency: "The '-1,00 €' value does not appear to be a positive currency",
	}, v.Messages())

	assert.True(t, v.IsValid("1,00 €"))
	assert.Empty(t, v.Messages())
	assert.Equal(t, filter.ReasonNone, v.Reason())
}
