package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cloakroom-backend/internal/models"
	"cloakroom-backend/internal/services"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
)

// stubStore is a map-backed CheckinStore for handler tests.
type stubStore struct {
	records map[string]*models.CheckIn
	nextID  int
}

func newStubStore() *stubStore {
	return &stubStore{records: map[string]*models.CheckIn{}, nextID: 1}
}

func (s *stubStore) Create(ctx context.Context, c *models.CheckIn) error {
	c.ID = s.nextID
	s.nextID++
	s.records[c.TokenNo] = c
	return nil
}

func (s *stubStore) GetByToken(ctx context.Context, token string) (*models.CheckIn, error) {
	c, ok := s.records[token]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *c
	return &cp, nil
}

func (s *stubStore) GetByID(ctx context.Context, id int) (*models.CheckIn, error) {
	for _, c := range s.records {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *stubStore) List(ctx context.Context) ([]*models.CheckIn, error) {
	var out []*models.CheckIn
	for _, c := range s.records {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (s *stubStore) ListByStatus(ctx context.Context, status string) ([]*models.CheckIn, error) {
	var out []*models.CheckIn
	for _, c := range s.records {
		if c.Status == status {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *stubStore) Search(ctx context.Context, q string) ([]*models.CheckIn, error) {
	var out []*models.CheckIn
	for _, c := range s.records {
		if c.TokenNo == q || c.PNRNumber == q {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *stubStore) Update(ctx context.Context, c *models.CheckIn) error {
	if _, ok := s.records[c.TokenNo]; !ok {
		return pgx.ErrNoRows
	}
	cp := *c
	s.records[c.TokenNo] = &cp
	return nil
}

func (s *stubStore) Delete(ctx context.Context, id int) error {
	for token, c := range s.records {
		if c.ID == id {
			delete(s.records, token)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func newTestRouter(store *stubStore) *mux.Router {
	h := NewCheckinHandler(services.NewCheckinService(store))
	r := mux.NewRouter()
	r.HandleFunc("/api/checkins", h.CreateCheckin).Methods("POST")
	r.HandleFunc("/api/checkins/token/{token}", h.GetCheckin).Methods("GET")
	r.HandleFunc("/api/checkouts/token/{token}", h.Checkout).Methods("PUT")
	return r
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", ct)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("error body is not JSON: %v", err)
	}
	return body["error"]
}

func TestGetCheckinNotFoundReturnsJSONError(t *testing.T) {
	router := newTestRouter(newStubStore())

	req := httptest.NewRequest("GET", "/api/checkins/token/9999999", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if msg := decodeErrorBody(t, rec); msg != "record not found" {
		t.Fatalf("error = %q, want %q", msg, "record not found")
	}
}

func TestCreateCheckinValidationReturnsJSONError(t *testing.T) {
	router := newTestRouter(newStubStore())

	payload := `{"passengerName":"Asha Verma","passengerMobile":"98765","pnrNumber":"4521678903","aadharNumber":"123412341234","luggage":{"oneUnit":1}}`
	req := httptest.NewRequest("POST", "/api/checkins", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if msg := decodeErrorBody(t, rec); !strings.Contains(msg, "mobile") {
		t.Fatalf("error = %q, want mobile validation message", msg)
	}
}

func seedRecord(store *stubStore, token string) {
	store.records[token] = &models.CheckIn{
		ID:              1,
		TokenNo:         token,
		PassengerName:   "Asha Verma",
		PassengerMobile: "9876543210",
		PNRNumber:       "4521678903",
		AadharNumber:    "123412341234",
		CheckInTime:     time.Now().Add(-2 * time.Hour),
		Luggage:         models.LuggageCount{OneUnit: 2, Locker: 1},
		Status:          models.StatusCheckedIn,
	}
	store.nextID = 2
}

func TestCheckoutChunkedBodyOverride(t *testing.T) {
	store := newStubStore()
	seedRecord(store, "1234567")
	router := newTestRouter(store)

	// MultiReader hides the payload length, so the request carries
	// ContentLength -1 the way a chunked upload does.
	payload := `{"amount":{"oneUnitAmount":50,"lockerAmount":40}}`
	body := io.MultiReader(strings.NewReader(payload))
	req := httptest.NewRequest("PUT", "/api/checkouts/token/1234567", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	var got models.CheckIn
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Amount.TotalAmount != 90 {
		t.Fatalf("TotalAmount = %d, want 90 from the override", got.Amount.TotalAmount)
	}
	if got.Status != models.StatusCheckedOut {
		t.Fatalf("Status = %q, want %q", got.Status, models.StatusCheckedOut)
	}
}

func TestCheckoutEmptyBodyComputesAmounts(t *testing.T) {
	store := newStubStore()
	seedRecord(store, "1234567")
	router := newTestRouter(store)

	req := httptest.NewRequest("PUT", "/api/checkouts/token/1234567", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	var got models.CheckIn
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	// Two hours elapsed: one billing day at 2x30 + 1x60
	if got.Amount.TotalAmount != 120 {
		t.Fatalf("TotalAmount = %d, want 120", got.Amount.TotalAmount)
	}
}

func TestCheckoutAlreadySettledReturnsJSONConflict(t *testing.T) {
	store := newStubStore()
	seedRecord(store, "1234567")
	store.records["1234567"].Status = models.StatusCheckedOut
	router := newTestRouter(store)

	req := httptest.NewRequest("PUT", "/api/checkouts/token/1234567", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
	if msg := decodeErrorBody(t, rec); msg != "record already checked out" {
		t.Fatalf("error = %q, want %q", msg, "record already checked out")
	}
}
