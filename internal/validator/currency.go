package validator

import (
	"github.com/leodido/moneylaundry/internal/filter"
)

const (
	CurrencyInvalid     = "currencyInvalid"
	NotCurrency         = "notCurrency"
	NotPositiveCurrency = "notPositiveCurrency"
)

const DefaultNegativeAllowed = true

var currencyTemplates = map[string]string{
	CurrencyInvalid:     "Invalid input given: '%value%' is not a string",
	NotCurrency:         "The '%value%' is not a well-formatted currency; the requested format is %format%",
	NotPositiveCurrency: "The '%value%' value does not appear to be a positive currency",
}

type ValidationOptions struct {
	filter.Options
	NegativeAllowed bool `json:"negative_allowed" yaml:"negative_allowed"`
}

func DefaultValidationOptions() ValidationOptions {
	return ValidationOptions{
		Options:         filter.DefaultOptions(),
		NegativeAllowed: DefaultNegativeAllowed,
	}
}

// Currency checks that a string is an amount Uncurrency accepts under the
// configured policies, optionally refusing negative amounts.
// A Currency keeps the outcome of the last call and must not be shared
// between goroutines.
type Currency struct {
	opts     ValidationOptions
	filter   *filter.Uncurrency
	code     string
	reason   filter.Reason
	messages messages
}

func NewCurrency(opts ValidationOptions) (*Currency, error) {
	f, err := filter.NewUncurrency(opts.Options)
	if err != nil {
		return nil, err
	}
	return &Currency{opts: opts, filter: f, messages: messages{}}, nil
}

func (v *Currency) IsValid(value any) bool {
	v.messages = messages{}
	v.reason = filter.ReasonNone

	s, ok := value.(string)
	if !ok {
		v.reason = filter.ReasonNotString
		v.messages.add(CurrencyInvalid, currencyTemplates[CurrencyInvalid], map[string]any{"value": value})
		return false
	}

	res := v.filter.Parse(s)
	v.code = v.filter.CurrencyCode()
	if !res.OK {
		v.reason = res.Reason
		pattern := ""
		if f, err := v.filter.Formatter(); err == nil {
			pattern = f.Pattern()
		}
		v.messages.add(NotCurrency, currencyTemplates[NotCurrency], map[string]any{"value": s, "format": pattern})
		return false
	}
	if !v.opts.NegativeAllowed && res.Value < 0 {
		v.messages.add(NotPositiveCurrency, currencyTemplates[NotPositiveCurrency], map[string]any{"value": s})
		return false
	}
	return true
}

// Messages returns the failures of the last IsValid call by code.
func (v *Currency) Messages() map[string]string { return v.messages.clone() }

// Reason is the parser's rejection reason from the last IsValid call.
func (v *Currency) Reason() filter.Reason { return v.reason }

// CurrencyCode is the code the last validation ran against.
func (v *Currency) CurrencyCode() string {
	if v.code != "" {
		return v.code
	}
	return v.filter.CurrencyCode()
}

func (v *Currency) Locale() string { return v.filter.Locale() }

func (v *Currency) Options() ValidationOptions {
	o := v.opts
	o.Options = v.filter.Options()
	return o
}
