package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"bullion-backend/internal/ledger"
	"bullion-backend/internal/models"
	"bullion-backend/internal/repositories"
	"bullion-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/xuri/excelize/v2"
)

type ReportService struct {
	PurchaseRepo *repositories.PurchaseRepository
	SaleRepo     *repositories.SaleRepository
}

func NewReportService(purchaseRepo *repositories.PurchaseRepository, saleRepo *repositories.SaleRepository) *ReportService {
	return &ReportService{PurchaseRepo: purchaseRepo, SaleRepo: saleRepo}
}

func (s *ReportService) filteredLedger(ctx context.Context, filter models.LedgerFilter) ([]models.Transaction, models.LedgerSummary, error) {
	purchases, err := s.PurchaseRepo.List(ctx)
	if err != nil {
		return nil, models.LedgerSummary{}, err
	}
	sales, err := s.SaleRepo.List(ctx)
	if err != nil {
		return nil, models.LedgerSummary{}, err
	}
	all := ledger.Transactions(purchases, sales)
	filtered := ledger.WithRunningBalance(ledger.Filter(all, filter))
	return filtered, ledger.Summary(all), nil
}

// GenerateLedgerPDF renders the filtered transaction feed as an A4 landscape
// table with the overall summary at the bottom.
func (s *ReportService) GenerateLedgerPDF(ctx context.Context, filter models.LedgerFilter) ([]byte, error) {
	txns, summary, err := s.filteredLedger(ctx, filter)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(277, 10, "Bullion Trading - Transactions Ledger", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(277, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Table header
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(25, 7, "Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 7, "Type", "1", 0, "C", true, 0, "")
	pdf.CellFormat(97, 7, "Description", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Party", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Amount", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Balance", "1", 1, "C", true, 0, "")

	// Table rows
	pdf.SetFont("Arial", "", 10)
	for _, t := range txns {
		sign := "+"
		if !t.Type.IsCredit() {
			sign = "-"
		}
		description := t.Description
		if len(description) > 55 {
			description = description[:52] + "..."
		}
		pdf.CellFormat(25, 6, timeutil.FormatIST(t.Date, "02/01/2006"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(45, 6, string(t.Type), "1", 0, "L", false, 0, "")
		pdf.CellFormat(97, 6, description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, t.RelatedName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%sRs. %.2f", sign, t.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("Rs. %.2f", t.Balance), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(5)

	// Summary
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(92, 8, fmt.Sprintf("Total Purchases: Rs. %.2f", summary.TotalPurchases), "1", 0, "C", false, 0, "")
	pdf.CellFormat(92, 8, fmt.Sprintf("Total Sales: Rs. %.2f", summary.TotalSales), "1", 0, "C", false, 0, "")
	if summary.NetProfit >= 0 {
		pdf.SetFillColor(200, 255, 200)
	} else {
		pdf.SetFillColor(255, 200, 200)
	}
	pdf.CellFormat(93, 8, fmt.Sprintf("Net Profit/Loss: Rs. %.2f", summary.NetProfit), "1", 1, "C", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate ledger PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateLedgerXLSX renders the filtered transaction feed as a spreadsheet.
func (s *ReportService) GenerateLedgerXLSX(ctx context.Context, filter models.LedgerFilter) ([]byte, error) {
	txns, summary, err := s.filteredLedger(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Ledger"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Date", "Type", "Description", "Party", "Amount", "Running Balance"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, t := range txns {
		row := i + 2
		amount := t.Amount
		if !t.Type.IsCredit() {
			amount = -amount
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), timeutil.FormatIST(t.Date, "02/01/2006"))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), string(t.Type))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), t.Description)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), t.RelatedName)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), amount)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), t.Balance)
	}

	summaryRow := len(txns) + 3
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), "Total Purchases")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", summaryRow), summary.TotalPurchases)
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow+1), "Total Sales")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", summaryRow+1), summary.TotalSales)
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow+2), "Net Profit/Loss")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", summaryRow+2), summary.NetProfit)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to generate ledger spreadsheet: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateStockCSV renders the per-lot stock balances as CSV.
func (s *ReportService) GenerateStockCSV(ctx context.Context) ([]byte, error) {
	purchases, err := s.PurchaseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.SaleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	lots := ledger.LotBalances(purchases, sales)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"Purchase Date", "Seller", "Original Weight (g)", "Sold Weight (g)", "Remaining Weight (g)", "Rate/g", "Remaining Value"})
	for _, lot := range lots {
		w.Write([]string{
			timeutil.FormatIST(lot.Date, timeutil.DateLayout),
			lot.SellerName,
			fmt.Sprintf("%.2f", lot.Weight),
			fmt.Sprintf("%.2f", lot.SoldWeight),
			fmt.Sprintf("%.2f", lot.RemainingWeight),
			fmt.Sprintf("%.2f", lot.RatePerGram),
			fmt.Sprintf("%.2f", lot.RemainingValue),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to generate stock CSV: %w", err)
	}
	return buf.Bytes(), nil
}
