package middleware

import (
	"net/http"
	"runtime/debug"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// Recover turns a panicking handler into a 500 JSON error carrying the
// request id.
func Recover(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				rid := GetRequestID(r)
				logger.Error().
					Str("rid", rid).
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Msg("panic")
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal", "request_id": rid})
			}()
			next.ServeHTTP(w, r)
		})
	}
}
