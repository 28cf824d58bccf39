package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"cloakroom-backend/internal/cache"
	"cloakroom-backend/internal/metrics"
	"cloakroom-backend/internal/models"
	"cloakroom-backend/internal/services"
	"cloakroom-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type CheckinHandler struct {
	Service *services.CheckinService
}

func NewCheckinHandler(s *services.CheckinService) *CheckinHandler {
	return &CheckinHandler{Service: s}
}

// writeServiceError maps lifecycle errors to HTTP status codes
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.Error(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.Error(w, http.StatusNotFound, "record not found")
	case errors.Is(err, services.ErrAlreadyCheckedOut):
		utils.Error(w, http.StatusConflict, "record already checked out")
	default:
		utils.Error(w, http.StatusInternalServerError, err.Error())
	}
}

func (h *CheckinHandler) CreateCheckin(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := h.Service.Create(context.Background(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	metrics.CheckinsTotal.Inc()
	cache.InvalidateCheckinCaches(r.Context())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(record)
}

func (h *CheckinHandler) ListCheckins(w http.ResponseWriter, r *http.Request) {
	// Serve the full listing from cache when available
	if data, ok := cache.GetCached(r.Context(), cache.CheckinListKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
		return
	}

	records, err := h.Service.List(context.Background())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Ensure we return empty array instead of null
	if records == nil {
		records = []*models.CheckIn{}
	}

	if data, err := json.Marshal(records); err == nil {
		cache.SetCached(r.Context(), cache.CheckinListKey, data, 2*time.Minute)
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

func (h *CheckinHandler) GetCheckin(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	record, err := h.Service.Get(context.Background(), token)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}

func (h *CheckinHandler) UpdateCheckin(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	var req models.UpdateCheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := h.Service.Edit(context.Background(), token, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	cache.InvalidateCheckinCaches(r.Context())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}

func (h *CheckinHandler) SearchCheckins(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	records, err := h.Service.Search(context.Background(), q)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if records == nil {
		records = []*models.CheckIn{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

func (h *CheckinHandler) ListCheckouts(w http.ResponseWriter, r *http.Request) {
	if data, ok := cache.GetCached(r.Context(), cache.CheckoutListKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
		return
	}

	records, err := h.Service.ListCheckedOut(context.Background())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	if records == nil {
		records = []*models.CheckIn{}
	}

	if data, err := json.Marshal(records); err == nil {
		cache.SetCached(r.Context(), cache.CheckoutListKey, data, 2*time.Minute)
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

func (h *CheckinHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	// An empty body means "settle at computed rates"; chunked requests
	// report ContentLength -1, so decode and tolerate EOF instead.
	var req models.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := h.Service.Checkout(context.Background(), token, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	metrics.CheckoutsTotal.Inc()
	metrics.RevenueTotal.Add(float64(record.Amount.TotalAmount))
	cache.InvalidateCheckinCaches(r.Context())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}

func (h *CheckinHandler) DeleteCheckin(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid record id")
		return
	}

	if err := h.Service.Delete(context.Background(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	cache.InvalidateCheckinCaches(r.Context())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "deleted"})
}
