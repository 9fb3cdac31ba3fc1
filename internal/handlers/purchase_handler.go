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

type PurchaseHandler struct {
	Service *services.PurchaseService
}

func NewPurchaseHandler(s *services.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{Service: s}
}

func (h *PurchaseHandler) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	purchase, err := h.Service.CreatePurchase(r.Context(), &req)
	if err != nil {
		http.Error(w, "Failed to save purchase", http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusCreated, purchase)
}

func (h *PurchaseHandler) GetPurchase(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	purchase, err := h.Service.GetPurchase(r.Context(), id)
	if err != nil {
		http.Error(w, "Purchase not found", http.StatusNotFound)
		return
	}

	utils.JSON(w, http.StatusOK, purchase)
}

func (h *PurchaseHandler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	if sellerParam := r.URL.Query().Get("seller_id"); sellerParam != "" {
		sellerID, err := strconv.Atoi(sellerParam)
		if err != nil {
			http.Error(w, "Invalid seller_id", http.StatusBadRequest)
			return
		}
		purchases, err := h.Service.ListPurchasesBySeller(r.Context(), sellerID)
		if err != nil {
			http.Error(w, "Failed to load purchases", http.StatusInternalServerError)
			return
		}
		utils.JSON(w, http.StatusOK, purchases)
		return
	}

	purchases, err := h.Service.ListPurchases(r.Context())
	if err != nil {
		http.Error(w, "Failed to load purchases", http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusOK, purchases)
}

func (h *PurchaseHandler) UpdatePurchase(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdatePurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	purchase, err := h.Service.UpdatePurchase(r.Context(), id, &req)
	if err != nil {
		http.Error(w, "Failed to save purchase", http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusOK, purchase)
}

func (h *PurchaseHandler) DeletePurchase(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.DeletePurchase(r.Context(), id); err != nil {
		http.Error(w, "Failed to delete purchase", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
