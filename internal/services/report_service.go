package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"sort"
	"strconv"
	"strings"
	"time"

	"cloakroom-backend/internal/models"
	"cloakroom-backend/internal/timeutil"
)

type ReportService struct {
	Store CheckinStore
}

func NewReportService(store CheckinStore) *ReportService {
	return &ReportService{Store: store}
}

// Summary holds the counters shown on the dashboard cards.
type Summary struct {
	TotalCheckins      int
	ActiveCheckins     int
	CompletedCheckouts int
	TodayCheckins      int
	TotalRevenue       int
	TodayRevenue       int
}

// Summarize computes dashboard counters over a record set. Revenue counts
// only checked-out records; "today" is the IST calendar day of now.
func Summarize(records []*models.CheckIn, now time.Time) Summary {
	dayStart := timeutil.StartOfDay(now)
	dayEnd := timeutil.EndOfDay(now)

	var s Summary
	s.TotalCheckins = len(records)
	for _, c := range records {
		switch c.Status {
		case models.StatusCheckedOut:
			s.CompletedCheckouts++
			s.TotalRevenue += c.Amount.TotalAmount
			if !c.UpdatedAt.Before(dayStart) && !c.UpdatedAt.After(dayEnd) {
				s.TodayRevenue += c.Amount.TotalAmount
			}
		default:
			s.ActiveCheckins++
		}
		if !c.CheckInTime.Before(dayStart) && !c.CheckInTime.After(dayEnd) {
			s.TodayCheckins++
		}
	}
	return s
}

// RevenueBetween sums checked-out totals whose settlement day falls in
// [from, to], inclusive on both IST calendar days.
func RevenueBetween(records []*models.CheckIn, from, to time.Time) int {
	start := timeutil.StartOfDay(from)
	end := timeutil.EndOfDay(to)

	total := 0
	for _, c := range records {
		if c.Status != models.StatusCheckedOut {
			continue
		}
		if c.UpdatedAt.Before(start) || c.UpdatedAt.After(end) {
			continue
		}
		total += c.Amount.TotalAmount
	}
	return total
}

// RecentlyJoined returns up to n records by check-in time, newest first.
func RecentlyJoined(records []*models.CheckIn, n int) []*models.CheckIn {
	out := make([]*models.CheckIn, len(records))
	copy(out, records)
	SortByCheckInDesc(out)
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// RecentCheckouts returns up to n checked-out records, most recently
// settled first.
func RecentCheckouts(records []*models.CheckIn, n int) []*models.CheckIn {
	var out []*models.CheckIn
	for _, c := range records {
		if c.Status == models.StatusCheckedOut {
			out = append(out, c)
		}
	}
	SortByCheckoutDesc(out)
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// FilterRecords keeps records where the query appears, case-insensitively,
// in any searchable field including the formatted IST timestamps.
func FilterRecords(records []*models.CheckIn, query string) []*models.CheckIn {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return records
	}
	var out []*models.CheckIn
	for _, c := range records {
		if matchesQuery(c, q) {
			out = append(out, c)
		}
	}
	return out
}

func matchesQuery(c *models.CheckIn, q string) bool {
	fields := []string{
		c.PassengerName,
		c.PassengerMobile,
		c.PNRNumber,
		c.TokenNo,
		c.AadharNumber,
		timeutil.FormatIST(c.CheckInTime, timeutil.DisplayLayout),
		timeutil.FormatIST(c.UpdatedAt, timeutil.DisplayLayout),
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// SortByCheckInDesc orders records newest check-in first, in place.
func SortByCheckInDesc(records []*models.CheckIn) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CheckInTime.After(records[j].CheckInTime)
	})
}

// SortByCheckoutDesc orders records by most recent update first, in place.
func SortByCheckoutDesc(records []*models.CheckIn) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].UpdatedAt.After(records[j].UpdatedAt)
	})
}

// DashboardStats assembles the dashboard payload: counters plus the
// recently-joined, recent-checkout and recent-transaction strips.
func (s *ReportService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	records, err := s.Store.List(ctx)
	if err != nil {
		return nil, err
	}

	now := timeutil.Now()
	sum := Summarize(records, now)

	stats := &models.DashboardStats{
		TotalCheckins:      sum.TotalCheckins,
		ActiveCheckins:     sum.ActiveCheckins,
		CompletedCheckouts: sum.CompletedCheckouts,
		TodayCheckins:      sum.TodayCheckins,
		TotalRevenue:       sum.TotalRevenue,
		TodayRevenue:       sum.TodayRevenue,
		RecentlyJoined:     deref(RecentlyJoined(records, 3)),
		RecentCheckouts:    deref(RecentCheckouts(records, 4)),
		RecentTransactions: deref(RecentCheckouts(records, 6)),
	}
	return stats, nil
}

// CheckinsCSV renders every record as a CSV table.
func (s *ReportService) CheckinsCSV(ctx context.Context, query string) ([]byte, error) {
	records, err := s.Store.List(ctx)
	if err != nil {
		return nil, err
	}
	records = FilterRecords(records, query)
	SortByCheckInDesc(records)
	return checkinsCSV(records)
}

// CheckoutsCSV renders settled records with their amounts as a CSV table.
func (s *ReportService) CheckoutsCSV(ctx context.Context, query string) ([]byte, error) {
	records, err := s.Store.ListByStatus(ctx, models.StatusCheckedOut)
	if err != nil {
		return nil, err
	}
	records = FilterRecords(records, query)
	SortByCheckoutDesc(records)
	return checkoutsCSV(records)
}

func checkinsCSV(records []*models.CheckIn) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Token", "Passenger Name", "Mobile", "PNR", "Aadhaar", "Check-In Time", "Luggage Units", "Status"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, c := range records {
		row := []string{
			c.TokenNo,
			c.PassengerName,
			c.PassengerMobile,
			c.PNRNumber,
			c.AadharNumber,
			timeutil.FormatIST(c.CheckInTime, timeutil.DisplayLayout),
			strconv.Itoa(c.Luggage.TotalUnits()),
			c.Status,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func checkoutsCSV(records []*models.CheckIn) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Token", "Passenger Name", "Mobile", "PNR", "Check-In Time", "Check-Out Time", "Luggage Units", "Total Amount"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, c := range records {
		row := []string{
			c.TokenNo,
			c.PassengerName,
			c.PassengerMobile,
			c.PNRNumber,
			timeutil.FormatIST(c.CheckInTime, timeutil.DisplayLayout),
			timeutil.FormatIST(c.UpdatedAt, timeutil.DisplayLayout),
			strconv.Itoa(c.Luggage.TotalUnits()),
			strconv.Itoa(c.Amount.TotalAmount),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func deref(in []*models.CheckIn) []models.CheckIn {
	out := make([]models.CheckIn, 0, len(in))
	for _, c := range in {
		out = append(out, *c)
	}
	return out
}
