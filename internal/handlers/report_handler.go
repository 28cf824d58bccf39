package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"cloakroom-backend/internal/cache"
	"cloakroom-backend/internal/services"
	"cloakroom-backend/pkg/utils"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(s *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: s}
}

// DashboardStats serves the dashboard counters and recent-activity strips
func (h *ReportHandler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	if data, ok := cache.GetCached(r.Context(), cache.DashboardKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
		return
	}

	stats, err := h.Service.DashboardStats(context.Background())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	if data, err := json.Marshal(stats); err == nil {
		cache.SetCached(r.Context(), cache.DashboardKey, data, time.Minute)
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

// CheckinsCSV exports the check-in register as CSV
func (h *ReportHandler) CheckinsCSV(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.CheckinsCSV(context.Background(), r.URL.Query().Get("q"))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="checkins.csv"`)
	w.Write(data)
}

// CheckoutsCSV exports the settled-record register as CSV
func (h *ReportHandler) CheckoutsCSV(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.CheckoutsCSV(context.Background(), r.URL.Query().Get("q"))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="checkouts.csv"`)
	w.Write(data)
}
