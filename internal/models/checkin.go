package models

import "time"

// Check-in record status values
const (
	StatusCheckedIn  = "checkedIn"
	StatusCheckedOut = "checkedOut"
)

// LuggageCount holds the number of stored pieces per category.
type LuggageCount struct {
	OneUnit   int `json:"oneUnit"`
	TwoUnit   int `json:"twoUnit"`
	ThreeUnit int `json:"threeUnit"`
	Locker    int `json:"locker"`
}

// TotalUnits returns the combined piece count across all categories.
func (l LuggageCount) TotalUnits() int {
	return l.OneUnit + l.TwoUnit + l.ThreeUnit + l.Locker
}

// AmountBreakdown holds the billed amount per luggage category in whole rupees.
type AmountBreakdown struct {
	OneUnitAmount   int `json:"oneUnitAmount"`
	TwoUnitAmount   int `json:"twoUnitAmount"`
	ThreeUnitAmount int `json:"threeUnitAmount"`
	LockerAmount    int `json:"lockerAmount"`
	TotalAmount     int `json:"totalAmount"`
}

// RecalcTotal recomputes TotalAmount as the sum of the per-category amounts.
// Used after manual per-category overrides so the total never drifts.
func (a *AmountBreakdown) RecalcTotal() {
	a.TotalAmount = a.OneUnitAmount + a.TwoUnitAmount + a.ThreeUnitAmount + a.LockerAmount
}

// CheckIn is a single cloakroom storage record, keyed publicly by TokenNo.
type CheckIn struct {
	ID              int             `json:"id"`
	TokenNo         string          `json:"tokenNo"`
	PassengerName   string          `json:"passengerName"`
	PassengerMobile string          `json:"passengerMobile"`
	PNRNumber       string          `json:"pnrNumber"`
	AadharNumber    string          `json:"aadharNumber"`
	CheckInTime     time.Time       `json:"checkInTime"`
	Luggage         LuggageCount    `json:"luggage"`
	Amount          AmountBreakdown `json:"amount"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// CreateCheckInRequest represents the request body for a new check-in.
// TokenNo is optional; the service generates one when absent.
type CreateCheckInRequest struct {
	TokenNo         string       `json:"tokenNo,omitempty"`
	PassengerName   string       `json:"passengerName"`
	PassengerMobile string       `json:"passengerMobile"`
	PNRNumber       string       `json:"pnrNumber"`
	AadharNumber    string       `json:"aadharNumber"`
	Luggage         LuggageCount `json:"luggage"`
}

// UpdateCheckInRequest represents a partial edit of an existing record.
// Nil fields are left untouched.
type UpdateCheckInRequest struct {
	PassengerName   *string          `json:"passengerName,omitempty"`
	PassengerMobile *string          `json:"passengerMobile,omitempty"`
	PNRNumber       *string          `json:"pnrNumber,omitempty"`
	AadharNumber    *string          `json:"aadharNumber,omitempty"`
	CheckInTime     *time.Time       `json:"checkInTime,omitempty"`
	Luggage         *LuggageCount    `json:"luggage,omitempty"`
	Amount          *AmountBreakdown `json:"amount,omitempty"`
}

// CheckoutRequest represents the request body for finalizing a record.
// When Amount is present the operator has overridden the computed
// per-category amounts; the total is recomputed from them.
type CheckoutRequest struct {
	Amount *AmountBreakdown `json:"amount,omitempty"`
}

// DashboardStats is the aggregate payload behind the dashboard page.
type DashboardStats struct {
	TotalCheckins      int       `json:"totalCheckins"`
	ActiveCheckins     int       `json:"activeCheckins"`
	CompletedCheckouts int       `json:"completedCheckouts"`
	TodayCheckins      int       `json:"todayCheckins"`
	TotalRevenue       int       `json:"totalRevenue"`
	TodayRevenue       int       `json:"todayRevenue"`
	RecentlyJoined     []CheckIn `json:"recentlyJoined"`
	RecentCheckouts    []CheckIn `json:"recentCheckouts"`
	RecentTransactions []CheckIn `json:"recentTransactions"`
}
