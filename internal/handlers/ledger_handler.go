package handlers

import (
	"fmt"
	"net/http"

	"bullion-backend/internal/models"
	"bullion-backend/internal/services"
	"bullion-backend/internal/timeutil"
	"bullion-backend/pkg/utils"
)

type LedgerHandler struct {
	Service *services.LedgerService
}

func NewLedgerHandler(s *services.LedgerService) *LedgerHandler {
	return &LedgerHandler{Service: s}
}

// parseLedgerFilter reads the type/from/to query parameters. Date bounds are
// whole days in IST, inclusive on both ends.
func parseLedgerFilter(r *http.Request) (models.LedgerFilter, error) {
	var filter models.LedgerFilter

	filter.Category = r.URL.Query().Get("type")
	switch filter.Category {
	case "", "all", "purchase", "sale", "payment":
	default:
		return filter, fmt.Errorf("unknown transaction type %q", filter.Category)
	}

	if from := r.URL.Query().Get("from"); from != "" {
		t, err := timeutil.ParseInIST(timeutil.DateLayout, from)
		if err != nil {
			return filter, fmt.Errorf("invalid from date: %w", err)
		}
		start := timeutil.StartOfDay(t)
		filter.From = &start
	}
	if to := r.URL.Query().Get("to"); to != "" {
		t, err := timeutil.ParseInIST(timeutil.DateLayout, to)
		if err != nil {
			return filter, fmt.Errorf("invalid to date: %w", err)
		}
		end := timeutil.EndOfDay(t)
		filter.To = &end
	}

	return filter, nil
}

func (h *LedgerHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	filter, err := parseLedgerFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view, err := h.Service.GetLedger(r.Context(), filter)
	if err != nil {
		http.Error(w, "Failed to build ledger", http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusOK, view)
}
