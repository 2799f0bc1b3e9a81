package validator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leodido/moneylaundry/internal/intl"
)

const (
	InvalidInput  = "invalid_input"
	NotScientific = "not_scientific"
	NotNumber     = "not_number"
)

var scientificTemplates = map[string]string{
	InvalidInput:  "Invalid input given: '%value%' is not a string",
	NotScientific: "The '%value%' value does not appear to be a number expressed in scientific notation",
	NotNumber:     "The '%value%' value is not a valid number",
}

// lrm is the left-to-right mark some locales put around numbers.
const lrm = "\u200e"

// ScientificNotation accepts numbers written with the locale's exponent
// symbol, e.g. "1,5E10" for it_IT.
type ScientificNotation struct {
	locale   intl.Locale
	exp      string
	decimal  *intl.NumberFormatter
	messages messages
}

// NewScientificNotation builds the validator; "" selects the platform
// locale.
func NewScientificNotation(locale string) (*ScientificNotation, error) {
	loc := intl.DefaultLocale()
	if locale != "" {
		l, err := intl.ParseLocale(locale)
		if err != nil {
			return nil, err
		}
		loc = l
	}
	sci, err := intl.NewForLocale(loc, intl.ScientificStyle)
	if err != nil {
		return nil, err
	}
	dec, err := intl.NewForLocale(loc, intl.DecimalStyle)
	if err != nil {
		return nil, err
	}
	return &ScientificNotation{
		locale:   loc,
		exp:      strings.ReplaceAll(sci.Symbol(intl.ExponentialSymbol), lrm, ""),
		decimal:  dec,
		messages: messages{},
	}, nil
}

func (v *ScientificNotation) Locale() string { return v.locale.String() }

func (v *ScientificNotation) IsValid(value any) bool {
	v.messages = messages{}

	var s string
	switch x := value.(type) {
	case string:
		s = x
	case float64:
		s = strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		s = strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		s = fmt.Sprint(x)
	default:
		v.messages.add(InvalidInput, scientificTemplates[InvalidInput], map[string]any{"value": value})
		return false
	}

	s = strings.ReplaceAll(s, lrm, "")
	if v.exp == "" || !strings.Contains(strings.ToUpper(s), strings.ToUpper(v.exp)) {
		v.messages.add(NotScientific, scientificTemplates[NotScientific], map[string]any{"value": s})
		return false
	}

	if _, pos, ok := v.decimal.Parse(s); !ok || pos != len(s) {
		v.messages.add(NotNumber, scientificTemplates[NotNumber], map[string]any{"value": s})
		return false
	}
	return true
}

func (v *ScientificNotation) Messages() map[string]string { return v.messages.clone() }
