package handler

import (
	"net/http"

	"github.com/mwren/craftcost/internal/domain"
	"github.com/mwren/craftcost/internal/logger"
	"github.com/mwren/craftcost/internal/resolver"
)

// HandleGetCost resolves the cheapest acquisition plan for an item.
func HandleGetCost(svc resolver.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		req, err := itemRequestFromQuery(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		cost, err := svc.ResolveCost(r.Context(), domain.ItemID(req.Item), req.Quantity)
		if err != nil {
			log.Error("Failed to resolve cost", "error", err, "item", req.Item)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, cost)
	}
}

// HandleGetShoppingList resolves an item and returns the net leaf purchases
// its plan requires.
func HandleGetShoppingList(svc resolver.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		req, err := itemRequestFromQuery(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		list, err := svc.ShoppingListFor(r.Context(), domain.ItemID(req.Item), req.Quantity)
		if err != nil {
			log.Error("Failed to build shopping list", "error", err, "item", req.Item)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, list)
	}
}
