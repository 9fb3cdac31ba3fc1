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

type BookingHandler struct {
	Service *services.BookingService
}

func NewBookingHandler(s *services.BookingService) *BookingHandler {
	return &BookingHandler{Service: s}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	booking, err := h.Service.CreateBooking(r.Context(), &req)
	if err != nil {
		http.Error(w, "Failed to save booking", http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	booking, err := h.Service.GetBooking(r.Context(), id)
	if err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}

	utils.JSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	if customerParam := r.URL.Query().Get("customer_id"); customerParam != "" {
		customerID, err := strconv.Atoi(customerParam)
		if err != nil {
			http.Error(w, "Invalid customer_id", http.StatusBadRequest)
			return
		}
		bookings, err := h.Service.ListBookingsByCustomer(r.Context(), customerID)
		if err != nil {
			http.Error(w, "Failed to load bookings", http.StatusInternalServerError)
			return
		}
		utils.JSON(w, http.StatusOK, bookings)
		return
	}

	bookings, err := h.Service.ListBookings(r.Context())
	if err != nil {
		http.Error(w, "Failed to load bookings", http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	booking, err := h.Service.UpdateBooking(r.Context(), id, &req)
	if err != nil {
		http.Error(w, "Failed to save booking", http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusOK, booking)
}

// UpdateStatus handles the fulfil/cancel transition
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	booking, err := h.Service.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	utils.JSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.DeleteBooking(r.Context(), id); err != nil {
		http.Error(w, "Failed to delete booking", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
