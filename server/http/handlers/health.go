package handlers

import (
	"net/http"

	"github.com/leodido/moneylaundry/internal/api"
)

func Health(w http.ResponseWriter, _ *http.Request) {
	_ = api.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
