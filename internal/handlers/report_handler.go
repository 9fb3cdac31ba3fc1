package handlers

import (
	"fmt"
	"net/http"

	"bullion-backend/internal/services"
	"bullion-backend/internal/timeutil"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(s *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: s}
}

// LedgerPDF streams the filtered ledger as a PDF download
func (h *ReportHandler) LedgerPDF(w http.ResponseWriter, r *http.Request) {
	filter, err := parseLedgerFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := h.Service.GenerateLedgerPDF(r.Context(), filter)
	if err != nil {
		http.Error(w, "Failed to generate ledger PDF", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("ledger_%s.pdf", timeutil.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Write(data)
}

// LedgerXLSX streams the filtered ledger as a spreadsheet download
func (h *ReportHandler) LedgerXLSX(w http.ResponseWriter, r *http.Request) {
	filter, err := parseLedgerFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := h.Service.GenerateLedgerXLSX(r.Context(), filter)
	if err != nil {
		http.Error(w, "Failed to generate ledger spreadsheet", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("ledger_%s.xlsx", timeutil.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Write(data)
}

// StockCSV streams the per-lot stock balances as a CSV download
func (h *ReportHandler) StockCSV(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.GenerateStockCSV(r.Context())
	if err != nil {
		http.Error(w, "Failed to generate stock CSV", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("stock_%s.csv", timeutil.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Write(data)
}
