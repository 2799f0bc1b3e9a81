package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/leodido/moneylaundry/internal/api"
	"github.com/leodido/moneylaundry/internal/config"
	"github.com/leodido/moneylaundry/internal/fileio"
	"github.com/leodido/moneylaundry/internal/middleware"
	"github.com/leodido/moneylaundry/internal/statement/service"
)

// Normalize handles a multipart upload: the statement in "file", the
// amount column in "column" and the engine options as plain fields.
func Normalize(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := logger.With().Str("rid", middleware.GetRequestID(r)).Logger()

		if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
			api.WriteError(w, log, badRequest("multipart form", err))
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			api.WriteError(w, log, badRequest("missing file", err))
			return
		}
		defer file.Close()

		req := requestFromForm(r, cfg.ValidationOptions().Options)
		if req.Column == "" {
			api.WriteError(w, log, fmt.Errorf("%w: column is required", api.ErrBadRequest))
			return
		}

		tab, err := fileio.Read(file, header.Filename, req.HeaderRow)
		if err != nil {
			api.WriteError(w, log, badRequest("read "+header.Filename, err))
			return
		}
		rep, err := service.Normalize(tab, req)
		if errors.Is(err, service.ErrColumnNotFound) {
			err = badRequest("normalize", err)
		}
		if err != nil {
			api.WriteError(w, log, err)
			return
		}

		if err := api.WriteJSON(w, http.StatusOK, rep); err != nil {
			log.Error().Err(err).Msg("write json")
			return
		}
		log.Info().
			Str("file", header.Filename).
			Str("column", rep.Column.Resolved).
			Int("accepted", rep.Totals.Accepted).
			Int("rejected", rep.Totals.Rejected).
			Dur("elapsed", time.Since(start)).
			Msg("statement normalized")
	}
}

// badRequest marks input errors as client errors unless they already map
// to a more specific status.
func badRequest(what string, err error) error {
	if api.StatusOf(err) != http.StatusInternalServerError {
		return fmt.Errorf("%s: %w", what, err)
	}
	return fmt.Errorf("%w: %s: %v", api.ErrBadRequest, what, err)
}
