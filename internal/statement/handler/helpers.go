package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/leodido/moneylaundry/internal/filter"
	"github.com/leodido/moneylaundry/internal/statement/model"
)

func atoi(s string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return i
}

func toBool(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}

// requestFromForm reads the normalization request from multipart fields,
// starting from the server defaults.
func requestFromForm(r *http.Request, def filter.Options) model.Request {
	return model.Request{
		Column:    r.FormValue("column"),
		HeaderRow: atoi(r.FormValue("header_row"), 1),
		Options: filter.Options{
			Locale:              orDefault(r.FormValue("locale"), def.Locale),
			CurrencyCode:        orDefault(r.FormValue("currency_code"), def.CurrencyCode),
			ScaleCorrectness:    toBool(r.FormValue("scale_correctness"), def.ScaleCorrectness),
			CurrencyCorrectness: toBool(r.FormValue("currency_correctness"), def.CurrencyCorrectness),
		},
	}
}
