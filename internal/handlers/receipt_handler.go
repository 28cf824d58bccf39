package handlers

import (
	"context"
	"errors"
	"net/http"

	"cloakroom-backend/internal/services"
	"cloakroom-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type ReceiptHandler struct {
	Service *services.ReceiptService
}

func NewReceiptHandler(s *services.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{Service: s}
}

// CheckinReceipt serves the thermal check-in receipt PDF for a token
func (h *ReceiptHandler) CheckinReceipt(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	pdf, err := h.Service.CheckinReceiptPDF(context.Background(), token)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "record not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="receipt-`+token+`.pdf"`)
	w.Write(pdf)
}

// SettlementReport serves the A4 settlement report PDF for a token
func (h *ReceiptHandler) SettlementReport(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	pdf, err := h.Service.SettlementReportPDF(context.Background(), token)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "record not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="settlement-`+token+`.pdf"`)
	w.Write(pdf)
}
