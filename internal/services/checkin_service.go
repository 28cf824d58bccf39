package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"cloakroom-backend/internal/billing"
	"cloakroom-backend/internal/models"
	"cloakroom-backend/internal/repositories"
	"cloakroom-backend/internal/timeutil"
)

// CheckinStore is the persistence contract the lifecycle service depends on.
// Implemented by repositories.CheckinRepository and by an in-memory store in
// tests. Lookups that match nothing return an error satisfying
// repositories.IsNotFound.
type CheckinStore interface {
	Create(ctx context.Context, c *models.CheckIn) error
	GetByToken(ctx context.Context, token string) (*models.CheckIn, error)
	GetByID(ctx context.Context, id int) (*models.CheckIn, error)
	List(ctx context.Context) ([]*models.CheckIn, error)
	ListByStatus(ctx context.Context, status string) ([]*models.CheckIn, error)
	Search(ctx context.Context, q string) ([]*models.CheckIn, error)
	Update(ctx context.Context, c *models.CheckIn) error
	Delete(ctx context.Context, id int) error
}

type CheckinService struct {
	Store CheckinStore
	Rates billing.RateTable

	now func() time.Time
}

func NewCheckinService(store CheckinStore) *CheckinService {
	return &CheckinService{
		Store: store,
		Rates: billing.DefaultRates,
		now:   timeutil.Now,
	}
}

// Create validates and stores a new check-in record. The record starts in
// checkedIn status with zero amounts; billing happens only at checkout.
// When no token is supplied one is generated, with a single retry if the
// generated token collides.
func (s *CheckinService) Create(ctx context.Context, req *models.CreateCheckInRequest) (*models.CheckIn, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	generated := req.TokenNo == ""
	token := req.TokenNo
	if generated {
		token = generateToken()
	}

	c := &models.CheckIn{
		TokenNo:         token,
		PassengerName:   req.PassengerName,
		PassengerMobile: req.PassengerMobile,
		PNRNumber:       req.PNRNumber,
		AadharNumber:    req.AadharNumber,
		CheckInTime:     s.now(),
		Luggage:         req.Luggage,
		Status:          models.StatusCheckedIn,
	}

	err := s.Store.Create(ctx, c)
	if repositories.IsDuplicateToken(err) && generated {
		c.TokenNo = generateToken()
		err = s.Store.Create(ctx, c)
	}
	if repositories.IsDuplicateToken(err) {
		return nil, invalid("tokenNo", fmt.Sprintf("token %s already exists", c.TokenNo))
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns the record for a token.
func (s *CheckinService) Get(ctx context.Context, token string) (*models.CheckIn, error) {
	c, err := s.Store.GetByToken(ctx, token)
	if repositories.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List returns every record, newest check-in first.
func (s *CheckinService) List(ctx context.Context) ([]*models.CheckIn, error) {
	return s.Store.List(ctx)
}

// ListCheckedOut returns finalized records, most recently settled first.
func (s *CheckinService) ListCheckedOut(ctx context.Context) ([]*models.CheckIn, error) {
	return s.Store.ListByStatus(ctx, models.StatusCheckedOut)
}

// Search finds records by exact token or PNR match.
func (s *CheckinService) Search(ctx context.Context, q string) ([]*models.CheckIn, error) {
	if q == "" {
		return nil, invalid("q", "search query is required")
	}
	return s.Store.Search(ctx, q)
}

// Checkout finalizes a record: elapsed hours at server time determine the
// day multiplier, amounts are computed from the rate table, and the record
// transitions to checkedOut. An operator-supplied amount breakdown replaces
// the computed per-category amounts, with the total recomputed from them.
func (s *CheckinService) Checkout(ctx context.Context, token string, req *models.CheckoutRequest) (*models.CheckIn, error) {
	c, err := s.Store.GetByToken(ctx, token)
	if repositories.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if c.Status == models.StatusCheckedOut {
		return nil, ErrAlreadyCheckedOut
	}

	if req != nil && req.Amount != nil {
		c.Amount = *req.Amount
		c.Amount.RecalcTotal()
	} else {
		hours := billing.ElapsedHours(c.CheckInTime, s.now())
		c.Amount = billing.ComputeAmounts(c.Luggage, s.Rates, billing.Multiplier(hours))
	}
	c.Status = models.StatusCheckedOut

	if err := s.Store.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Edit applies a manual correction to a record in either status. Amounts
// are never recomputed here; an explicit amount override only has its total
// refreshed from the supplied per-category fields.
func (s *CheckinService) Edit(ctx context.Context, token string, req *models.UpdateCheckInRequest) (*models.CheckIn, error) {
	c, err := s.Store.GetByToken(ctx, token)
	if repositories.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.PassengerName != nil {
		c.PassengerName = *req.PassengerName
	}
	if req.PassengerMobile != nil {
		c.PassengerMobile = *req.PassengerMobile
	}
	if req.PNRNumber != nil {
		c.PNRNumber = *req.PNRNumber
	}
	if req.AadharNumber != nil {
		c.AadharNumber = *req.AadharNumber
	}
	if req.CheckInTime != nil {
		c.CheckInTime = *req.CheckInTime
	}
	if req.Luggage != nil {
		c.Luggage = *req.Luggage
	}
	if req.Amount != nil {
		c.Amount = *req.Amount
		c.Amount.RecalcTotal()
	}

	if err := validateRecord(c); err != nil {
		return nil, err
	}

	if err := s.Store.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes a record permanently by internal id.
func (s *CheckinService) Delete(ctx context.Context, id int) error {
	err := s.Store.Delete(ctx, id)
	if repositories.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

func validateCreate(req *models.CreateCheckInRequest) error {
	if req.PassengerName == "" {
		return invalid("passengerName", "passenger name is required")
	}
	if req.PNRNumber == "" {
		return invalid("pnrNumber", "PNR number is required")
	}
	if !isDigits(req.PassengerMobile) || len(req.PassengerMobile) != 10 {
		return invalid("passengerMobile", "mobile number must be exactly 10 digits")
	}
	if !isDigits(req.AadharNumber) || len(req.AadharNumber) != 12 {
		return invalid("aadharNumber", "aadhaar number must be exactly 12 digits")
	}
	if req.Luggage.TotalUnits() <= 0 {
		return invalid("luggage", "at least one luggage unit is required")
	}
	return nil
}

func validateRecord(c *models.CheckIn) error {
	req := models.CreateCheckInRequest{
		PassengerName:   c.PassengerName,
		PassengerMobile: c.PassengerMobile,
		PNRNumber:       c.PNRNumber,
		AadharNumber:    c.AadharNumber,
		Luggage:         c.Luggage,
	}
	return validateCreate(&req)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// generateToken returns a random 7-digit token in [1000000, 9999999].
func generateToken() string {
	return fmt.Sprintf("%d", 1000000+rand.Intn(9000000))
}
