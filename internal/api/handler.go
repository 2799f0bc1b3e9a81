package api

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/leodido/moneylaundry/internal/config"
	"github.com/leodido/moneylaundry/internal/filter"
	"github.com/leodido/moneylaundry/internal/middleware"
	"github.com/leodido/moneylaundry/internal/validator"
)

type formatResponse struct {
	Result       any    `json:"result"`
	Filtered     bool   `json:"filtered"`
	CurrencyCode string `json:"currency_code"`
}

type parseResponse struct {
	Result       any    `json:"result"`
	Filtered     bool   `json:"filtered"`
	Reason       string `json:"reason,omitempty"`
	Path         string `json:"path"`
	CurrencyCode string `json:"currency_code"`
}

type validateResponse struct {
	Valid        bool              `json:"valid"`
	Messages     map[string]string `json:"messages"`
	Reason       string            `json:"reason,omitempty"`
	CurrencyCode string            `json:"currency_code"`
}

func requestLogger(logger zerolog.Logger, r *http.Request) zerolog.Logger {
	return logger.With().Str("rid", middleware.GetRequestID(r)).Logger()
}

// Format renders a number as currency. Non-numeric values come back
// unchanged with filtered=false.
func Format(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := requestLogger(logger, r)
		req, err := decodeRequest(r.Body)
		if err != nil {
			WriteError(w, log, err)
			return
		}
		f, err := filter.NewCurrency(req.options(cfg.ValidationOptions()).Options)
		if err != nil {
			WriteError(w, log, err)
			return
		}

		resp := formatResponse{Result: jsonValue(req.Value)}
		if v, ok := req.Value.(float64); ok {
			if s, ok := f.Format(v); ok {
				resp.Result, resp.Filtered = s, true
			}
		}
		resp.CurrencyCode = f.CurrencyCode()
		_ = WriteJSON(w, http.StatusOK, resp)
	}
}

// Parse turns currency text into a number, reporting why it was refused.
func Parse(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := requestLogger(logger, r)
		req, err := decodeRequest(r.Body)
		if err != nil {
			WriteError(w, log, err)
			return
		}
		u, err := filter.NewUncurrency(req.options(cfg.ValidationOptions()).Options)
		if err != nil {
			WriteError(w, log, err)
			return
		}

		resp := parseResponse{Result: jsonValue(req.Value), Reason: filter.ReasonNotString.String(), Path: filter.PathNone.String()}
		if s, ok := req.Value.(string); ok {
			res := u.Parse(s)
			resp.Path, resp.Reason = res.Path.String(), ""
			if res.OK {
				resp.Result, resp.Filtered = jsonValue(res.Value), true
			} else {
				resp.Reason = res.Reason.String()
			}
		}
		resp.CurrencyCode = u.CurrencyCode()
		_ = WriteJSON(w, http.StatusOK, resp)
	}
}

func Validate(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := requestLogger(logger, r)
		req, err := decodeRequest(r.Body)
		if err != nil {
			WriteError(w, log, err)
			return
		}
		v, err := validator.NewCurrency(req.options(cfg.ValidationOptions()))
		if err != nil {
			WriteError(w, log, err)
			return
		}

		resp := validateResponse{Valid: v.IsValid(req.Value), Messages: v.Messages(), CurrencyCode: v.CurrencyCode()}
		if reason := v.Reason(); reason != filter.ReasonNone {
			resp.Reason = reason.String()
		}
		_ = WriteJSON(w, http.StatusOK, resp)
	}
}
