package services

import (
	"bytes"
	"context"
	"fmt"

	"cloakroom-backend/internal/models"
	"cloakroom-backend/internal/repositories"
	"cloakroom-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

type ReceiptService struct {
	Store CheckinStore
}

func NewReceiptService(store CheckinStore) *ReceiptService {
	return &ReceiptService{Store: store}
}

// CheckinReceiptPDF renders the counter receipt handed to the passenger at
// check-in, sized for an 80mm thermal printer roll.
func (s *ReceiptService) CheckinReceiptPDF(ctx context.Context, token string) ([]byte, error) {
	c, err := s.Store.GetByToken(ctx, token)
	if repositories.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: 80, Ht: 200},
	})
	pdf.SetMargins(5, 5, 5)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(70, 6, "RAILWAY CLOAKROOM", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(70, 4, "Luggage Check-In Receipt", "", 1, "C", false, 0, "")
	pdf.CellFormat(70, 4, fmt.Sprintf("Printed: %s", timeutil.FormatIST(timeutil.Now(), timeutil.DisplayLayout)), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// Token, large
	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(70, 12, c.TokenNo, "1", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 9)
	receiptLine(pdf, "Passenger", c.PassengerName)
	receiptLine(pdf, "Mobile", c.PassengerMobile)
	receiptLine(pdf, "PNR", c.PNRNumber)
	receiptLine(pdf, "Check-In", timeutil.FormatIST(c.CheckInTime, timeutil.DisplayLayout))
	pdf.Ln(2)

	// Luggage table
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(45, 5, "Luggage", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 5, "Qty", "1", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for _, row := range luggageRows(c.Luggage) {
		pdf.CellFormat(45, 5, row.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 5, fmt.Sprintf("%d", row.count), "1", 1, "C", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(45, 5, "Total Pieces", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 5, fmt.Sprintf("%d", c.Luggage.TotalUnits()), "1", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Arial", "I", 7)
	pdf.MultiCell(70, 3.5, "Keep this receipt safe. Luggage is released only against the token number above. Charges accrue per started 24-hour period.", "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SettlementReportPDF renders the A4 settlement sheet for a record,
// including the per-category amount table once the record is checked out.
func (s *ReceiptService) SettlementReportPDF(ctx context.Context, token string) ([]byte, error) {
	c, err := s.Store.GetByToken(ctx, token)
	if repositories.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Railway Cloakroom - Settlement Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.FormatIST(timeutil.Now(), timeutil.DisplayLayout)), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Passenger Info Box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Passenger Information", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Token: %s", c.TokenNo), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Name: %s", c.PassengerName), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Mobile: %s", c.PassengerMobile), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("PNR: %s", c.PNRNumber), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Check-In: %s", timeutil.FormatIST(c.CheckInTime, timeutil.DisplayLayout)), "LB", 0, "L", false, 0, "")
	if c.Status == models.StatusCheckedOut {
		pdf.CellFormat(95, 7, fmt.Sprintf("Check-Out: %s", timeutil.FormatIST(c.UpdatedAt, timeutil.DisplayLayout)), "RB", 1, "L", false, 0, "")
	} else {
		pdf.CellFormat(95, 7, "Status: In Storage", "RB", 1, "L", false, 0, "")
	}
	pdf.Ln(5)

	// Luggage and amount table
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Luggage & Charges", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(80, 7, "Category", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(70, 7, "Amount", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	amounts := []int{c.Amount.OneUnitAmount, c.Amount.TwoUnitAmount, c.Amount.ThreeUnitAmount, c.Amount.LockerAmount}
	for i, row := range luggageRows(c.Luggage) {
		pdf.CellFormat(80, 6, row.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%d", row.count), "1", 0, "C", false, 0, "")
		pdf.CellFormat(70, 6, fmt.Sprintf("Rs. %d", amounts[i]), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 14)
	pdf.SetFillColor(200, 255, 200)
	pdf.CellFormat(190, 10, fmt.Sprintf("Total Amount: Rs. %d", c.Amount.TotalAmount), "1", 1, "C", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type luggageRow struct {
	label string
	count int
}

func luggageRows(l models.LuggageCount) []luggageRow {
	return []luggageRow{
		{"One Unit (bag/suitcase)", l.OneUnit},
		{"Two Unit (large bag)", l.TwoUnit},
		{"Three Unit (trunk)", l.ThreeUnit},
		{"Locker", l.Locker},
	}
}

func receiptLine(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(22, 4.5, label+":", "", 0, "L", false, 0, "")
	pdf.CellFormat(48, 4.5, value, "", 1, "L", false, 0, "")
}
