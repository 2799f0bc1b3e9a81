package api

import (
	"fmt"
	"io"
	"math"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/leodido/moneylaundry/internal/validator"
)

// request is the body shared by the amount endpoints. Omitted options fall
// back to the server defaults.
type request struct {
	Value               any     `json:"value"`
	Locale              *string `json:"locale"`
	CurrencyCode        *string `json:"currency_code"`
	ScaleCorrectness    *bool   `json:"scale_correctness"`
	CurrencyCorrectness *bool   `json:"currency_correctness"`
	NegativeAllowed     *bool   `json:"negative_allowed"`
}

func decodeRequest(r io.Reader) (request, error) {
	var req request
	dec := json.NewDecoder(r)
	dec.UseNumber()
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	if n, ok := req.Value.(json.Number); ok {
		v, err := numberValue(n)
		if err != nil {
			return req, fmt.Errorf("%w: value %s: %v", ErrBadRequest, n, err)
		}
		req.Value = v
	}
	return req, nil
}

// numberValue keeps integer literals as int64, which the filters pass
// through, and turns everything else into float64.
func numberValue(n json.Number) (any, error) {
	if !strings.ContainsAny(n.String(), ".eE") {
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
	}
	return n.Float64()
}

func (r request) options(def validator.ValidationOptions) validator.ValidationOptions {
	o := def
	if r.Locale != nil {
		o.Locale = *r.Locale
	}
	if r.CurrencyCode != nil {
		o.CurrencyCode = *r.CurrencyCode
	}
	if r.ScaleCorrectness != nil {
		o.ScaleCorrectness = *r.ScaleCorrectness
	}
	if r.CurrencyCorrectness != nil {
		o.CurrencyCorrectness = *r.CurrencyCorrectness
	}
	if r.NegativeAllowed != nil {
		o.NegativeAllowed = *r.NegativeAllowed
	}
	return o
}

// jsonValue keeps NaN and the infinities encodable.
func jsonValue(v any) any {
	f, ok := v.(float64)
	if !ok || !(math.IsNaN(f) || math.IsInf(f, 0)) {
		return v
	}
	switch {
	case math.IsNaN(f):
		return "NaN"
	case f > 0:
		return "+Inf"
	default:
		return "-Inf"
	}
}
