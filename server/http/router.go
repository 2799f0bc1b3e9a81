package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/leodido/moneylaundry/internal/api"
	"github.com/leodido/moneylaundry/internal/config"
	"github.com/leodido/moneylaundry/internal/middleware"
	stmtHnd "github.com/leodido/moneylaundry/internal/statement/handler"
	"github.com/leodido/moneylaundry/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) << 20))

	r.Get("/health", handlers.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/format", api.Format(cfg, logger))
		r.Post("/parse", api.Parse(cfg, logger))
		r.Post("/validate", api.Validate(cfg, logger))
		r.Post("/statements/normalize", stmtHnd.Normalize(cfg, logger))
	})

	return r
}
