package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"bullion-backend/internal/models"
	"bullion-backend/internal/services"
	"bullion-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type SaleHandler struct {
	Service *services.SaleService
}

func NewSaleHandler(s *services.SaleService) *SaleHandler {
	return &SaleHandler{Service: s}
}

func (h *SaleHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sale, err := h.Service.CreateSale(r.Context(), &req)
	if err != nil {
		http.Error(w, "Failed to save sale", http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusCreated, sale)
}

func (h *SaleHandler) GetSale(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	sale, err := h.Service.GetSale(r.Context(), id)
	if err != nil {
		http.Error(w, "Sale not found", http.StatusNotFound)
		return
	}

	utils.JSON(w, http.StatusOK, sale)
}

func (h *SaleHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	if customerParam := r.URL.Query().Get("customer_id"); customerParam != "" {
		customerID, err := strconv.Atoi(customerParam)
		if err != nil {
			http.Error(w, "Invalid customer_id", http.StatusBadRequest)
			return
		}
		sales, err := h.Service.ListSalesByCustomer(r.Context(), customerID)
		if err != nil {
			http.Error(w, "Failed to load sales", http.StatusInternalServerError)
			return
		}
		utils.JSON(w, http.StatusOK, sales)
		return
	}

	sales, err := h.Service.ListSales(r.Context())
	if err != nil {
		http.Error(w, "Failed to load sales", http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusOK, sales)
}

func (h *SaleHandler) UpdateSale(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sale, err := h.Service.UpdateSale(r.Context(), id, &req)
	if err != nil {
		http.Error(w, "Failed to save sale", http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusOK, sale)
}

func (h *SaleHandler) DeleteSale(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.DeleteSale(r.Context(), id); err != nil {
		http.Error(w, "Failed to delete sale", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
