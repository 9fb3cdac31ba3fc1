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

type SellerHandler struct {
	Service *services.SellerService
}

func NewSellerHandler(s *services.SellerService) *SellerHandler {
	return &SellerHandler{Service: s}
}

func (h *SellerHandler) CreateSeller(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSellerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	seller, err := h.Service.CreateSeller(r.Context(), &req)
	if err != nil {
		http.Error(w, "Failed to save seller", http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusCreated, seller)
}

func (h *SellerHandler) GetSeller(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	seller, err := h.Service.GetSeller(r.Context(), id)
	if err != nil {
		http.Error(w, "Seller not found", http.StatusNotFound)
		return
	}

	utils.JSON(w, http.StatusOK, seller)
}

func (h *SellerHandler) SearchByPhone(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")
	if phone == "" {
		http.Error(w, "phone parameter is required", http.StatusBadRequest)
		return
	}

	seller, err := h.Service.SearchByPhone(r.Context(), phone)
	if err != nil {
		http.Error(w, "Seller not found", http.StatusNotFound)
		return
	}

	utils.JSON(w, http.StatusOK, seller)
}

func (h *SellerHandler) ListSellers(w http.ResponseWriter, r *http.Request) {
	sellers, err := h.Service.ListSellers(r.Context())
	if err != nil {
		http.Error(w, "Failed to load sellers", http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusOK, sellers)
}

func (h *SellerHandler) UpdateSeller(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdateSellerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	seller, err := h.Service.UpdateSeller(r.Context(), id, &req)
	if err != nil {
		http.Error(w, "Failed to save seller", http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusOK, seller)
}

func (h *SellerHandler) DeleteSeller(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.DeleteSeller(r.Context(), id); err != nil {
		http.Error(w, "Failed to delete seller", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetTotals serves the always-recomputed aggregate figures for a seller
func (h *SellerHandler) GetTotals(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	totals, err := h.Service.GetTotals(r.Context(), id)
	if err != nil {
		http.Error(w, "Failed to compute seller totals", http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusOK, totals)
}
