package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leodido/moneylaundry/internal/config"
	"github.com/leodido/moneylaundry/internal/fileio"
	"github.com/leodido/moneylaundry/internal/intl"
)

func call(t *testing.T, h http.HandlerFunc, body string) (int, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec.Code, out
}

func itConfig() config.Config {
	cfg := config.Default()
	cfg.Locale = "it_IT"
	return cfg
}

func TestFormat(t *testing.T) {
	h := Format(itConfig(), zerolog.Nop())

	code, out := call(t, h, `{"value": 1234.61}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "1.234,61\u00a0€", out["result"])
	assert.Equal(t, true, out["filtered"])
	assert.Equal(t, "EUR", out["currency_code"])

	_, out = call(t, h, `{"value": 1234.619}`)
	assert.Equal(t, false, out["filtered"])
	assert.EqualValues(t, 1234.619, out["result"])

	_, out = call(t, h, `{"value": 1234.619, "scale_correctness": false, "locale": "en_GB"}`)
	assert.Equal(t, "£1,234.62", out["result"])
	assert.Equal(t, "GBP", out["currency_code"])

	_, out = call(t, h, `{"value": "1234"}`)
	assert.Equal(t, false, out["filtered"])
	assert.Equal(t, "1234", out["result"])

	_, out = call(t, h, `{"value": 5}`)
	assert.Equal(t, false, out["filtered"])
	assert.EqualValues(t, 5, out["result"])

	_, out = call(t, h, `{"value": 5.0}`)
	assert.Equal(t, true, out["filtered"])
	assert.Equal(t, "5,00\u00a0€", out["result"])
}

func TestDecodeRequestNumbers(t *testing.T) {
	tests := []struct {
		body string
		want any
	}{
		{`{"value": 5}`, int64(5)},
		{`{"value": -12}`, int64(-12)},
		{`{"value": 5.0}`, 5.0},
		{`{"value": 1e3}`, 1000.0},
		{`{"value": 1E-2}`, 0.01},
		{`{"value": 99999999999999999999}`, 1e20},
		{`{"value": "5"}`, "5"},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			req, err := decodeRequest(strings.NewReader(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Value)
		})
	}
}

func TestParse(t *testing.T) {
	h := Parse(itConfig(), zerolog.Nop())

	_, out := call(t, h, `{"value": "1.234,61 €"}`)
	assert.Equal(t, true, out["filtered"])
	assert.EqualValues(t, 1234.61, out["result"])
	assert.Equal(t, "strict", out["path"])

	_, out = call(t, h, `{"value": "11,33"}`)
	assert.Equal(t, false, out["filtered"])
	assert.Equal(t, "11,33", out["result"])
	assert.Equal(t, "currency_missing", out["reason"])

	_, out = call(t, h, `{"value": "11,33", "currency_correctness": false}`)
	assert.EqualValues(t, 11.33, out["result"])

	_, out = call(t, h, `{"value": "NaN"}`)
	assert.Equal(t, "NaN", out["result"])
	assert.Equal(t, true, out["filtered"])
	assert.Equal(t, "nan", out["path"])

	_, out = call(t, h, `{"value": 12}`)
	assert.Equal(t, "not_string", out["reason"])
}

func TestValidate(t *testing.T) {
	h := Validate(itConfig(), zerolog.Nop())

	_, out := call(t, h, `{"value": "1.234,61 €"}`)
	assert.Equal(t, true, out["valid"])
	assert.Empty(t, out["messages"])

	_, out = call(t, h, `{"value": "-1.234,61 €", "negative_allowed": false}`)
	assert.Equal(t, false, out["valid"])
	assert.Contains(t, out["messages"], "notPositiveCurrency")

	_, out = call(t, h, `{"value": "1.234,61"}`)
	assert.Equal(t, false, out["valid"])
	assert.Equal(t, "currency_missing", out["reason"])
	assert.Contains(t, out["messages"], "notCurrency")

	_, out = call(t, h, `{"value": 3}`)
	assert.Contains(t, out["messages"], "currencyInvalid")
}

func TestBadRequests(t *testing.T) {
	for name, h := range map[string]http.HandlerFunc{
		"format":   Format(itConfig(), zerolog.Nop()),
		"parse":    Parse(itConfig(), zerolog.Nop()),
		"validate": Validate(itConfig(), zerolog.Nop()),
	} {
		t.Run(name, func(t *testing.T) {
			for _, body := range []string{
				`{"value":`,
				`{"value": 1, "bogus": true}`,
				`{"value": 1, "locale": "!!"}`,
				`{"value": 1, "currency_code": "EURO"}`,
			} {
				code, out := call(t, h, body)
				assert.Equal(t, http.StatusBadRequest, code, body)
				assert.NotEmpty(t, out["error"], body)
			}
		})
	}
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusOf(fmt.Errorf("x: %w", intl.ErrInvalidLocale)))
	assert.Equal(t, http.StatusBadRequest, StatusOf(fmt.Errorf("x: %w", fileio.ErrUnsupported)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, StatusOf(fmt.Errorf("x: %w", &http.MaxBytesError{Limit: 1})))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("disk on fire")))
}
