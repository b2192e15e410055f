package handler

import (
	"net/http"
	"strconv"

	"github.com/mwren/craftcost/internal/logger"
	"github.com/mwren/craftcost/internal/profit"
)

// HandleGetProfits ranks every known recipe by resale margin.
func HandleGetProfits(svc profit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		opts := profit.RankOptions{}
		if raw := r.URL.Query().Get("spend_inventory"); raw != "" {
			spend, err := strconv.ParseBool(raw)
			if err != nil {
				respondError(w, http.StatusBadRequest, "invalid spend_inventory parameter")
				return
			}
			opts.SpendInventory = spend
		}

		margins, err := svc.Rank(r.Context(), opts)
		if err != nil {
			log.Error("Failed to rank recipes", "error", err)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, margins)
	}
}
