package handlers

import (
	"net/http"

	"bullion-backend/internal/services"
	"bullion-backend/pkg/utils"
)

type StockHandler struct {
	Service *services.StockService
}

func NewStockHandler(s *services.StockService) *StockHandler {
	return &StockHandler{Service: s}
}

func (h *StockHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	report, err := h.Service.GetStockReport(r.Context())
	if err != nil {
		http.Error(w, "Failed to compute stock report", http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusOK, report)
}

func (h *StockHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	report, err := h.Service.GetDashboard(r.Context())
	if err != nil {
		http.Error(w, "Failed to compute dashboard", http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusOK, report)
}
