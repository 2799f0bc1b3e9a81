package api

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/leodido/moneylaundry/internal/fileio"
	"github.com/leodido/moneylaundry/internal/intl"
)

var ErrBadRequest = errors.New("bad request")

// StatusOf maps an error to the HTTP status it is answered with.
func StatusOf(err error) int {
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, intl.ErrInvalidLocale),
		errors.Is(err, intl.ErrInvalidCurrency),
		errors.Is(err, fileio.ErrUnsupported),
		errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// WriteError answers {"error": ...}; server errors are logged, client
// errors are not.
func WriteError(w http.ResponseWriter, log zerolog.Logger, err error) {
	status := StatusOf(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
	}
	_ = WriteJSON(w, status, map[string]string{"error": err.Error()})
}
