package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"cloakroom-backend/internal/models"
	"cloakroom-backend/internal/timeutil"
)

func record(token string, status string, checkIn, updated time.Time, total int) *models.CheckIn {
	return &models.CheckIn{
		TokenNo:         token,
		PassengerName:   "Passenger " + token,
		PassengerMobile: "9876543210",
		PNRNumber:       "PNR" + token,
		Status:          status,
		CheckInTime:     checkIn,
		UpdatedAt:       updated,
		Amount:          models.AmountBreakdown{TotalAmount: total},
	}
}

func TestSummarize(t *testing.T) {
	now := time.Date(2025, 3, 12, 15, 0, 0, 0, timeutil.IST)
	yesterday := now.Add(-24 * time.Hour)

	records := []*models.CheckIn{
		record("1000001", models.StatusCheckedIn, now.Add(-2*time.Hour), now.Add(-2*time.Hour), 0),
		record("1000002", models.StatusCheckedIn, yesterday, yesterday, 0),
		record("1000003", models.StatusCheckedOut, yesterday, now.Add(-1*time.Hour), 120),
		record("1000004", models.StatusCheckedOut, yesterday.Add(-24*time.Hour), yesterday, 240),
	}

	s := Summarize(records, now)
	if s.TotalCheckins != 4 {
		t.Errorf("TotalCheckins = %d, want 4", s.TotalCheckins)
	}
	if s.ActiveCheckins != 2 {
		t.Errorf("ActiveCheckins = %d, want 2", s.ActiveCheckins)
	}
	if s.CompletedCheckouts != 2 {
		t.Errorf("CompletedCheckouts = %d, want 2", s.CompletedCheckouts)
	}
	if s.TodayCheckins != 1 {
		t.Errorf("TodayCheckins = %d, want 1", s.TodayCheckins)
	}
	if s.TotalRevenue != 360 {
		t.Errorf("TotalRevenue = %d, want 360", s.TotalRevenue)
	}
	if s.TodayRevenue != 120 {
		t.Errorf("TodayRevenue = %d, want 120", s.TodayRevenue)
	}
}

func TestRevenueBetween(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 3, d, 12, 0, 0, 0, timeutil.IST)
	}
	records := []*models.CheckIn{
		record("1000001", models.StatusCheckedOut, day(1), day(2), 100),
		record("1000002", models.StatusCheckedOut, day(3), day(4), 200),
		record("1000003", models.StatusCheckedOut, day(5), day(6), 400),
		record("1000004", models.StatusCheckedIn, day(4), day(4), 999),
	}

	tests := []struct {
		name     string
		from, to time.Time
		want     int
	}{
		{"full range", day(1), day(6), 700},
		{"inclusive bounds", day(2), day(4), 300},
		{"single day", day(4), day(4), 200},
		{"empty range", day(10), day(12), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RevenueBetween(records, tt.from, tt.to); got != tt.want {
				t.Errorf("RevenueBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRecents(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, timeutil.IST)
	var records []*models.CheckIn
	for i := 0; i < 6; i++ {
		status := models.StatusCheckedIn
		if i%2 == 0 {
			status = models.StatusCheckedOut
		}
		records = append(records, record(
			string(rune('a'+i)),
			status,
			base.Add(time.Duration(i)*time.Hour),
			base.Add(time.Duration(i)*time.Minute),
			10,
		))
	}

	joined := RecentlyJoined(records, 3)
	if len(joined) != 3 {
		t.Fatalf("RecentlyJoined returned %d records, want 3", len(joined))
	}
	if joined[0].TokenNo != "f" {
		t.Errorf("newest check-in first: got %q, want %q", joined[0].TokenNo, "f")
	}

	checkouts := RecentCheckouts(records, 4)
	if len(checkouts) != 3 {
		t.Fatalf("RecentCheckouts returned %d records, want the 3 settled ones", len(checkouts))
	}
	if checkouts[0].TokenNo != "e" {
		t.Errorf("most recently settled first: got %q, want %q", checkouts[0].TokenNo, "e")
	}
}

func TestFilterRecords(t *testing.T) {
	now := time.Date(2025, 3, 12, 15, 0, 0, 0, timeutil.IST)
	a := record("1000001", models.StatusCheckedIn, now, now, 0)
	a.PassengerName = "Ramesh Kumar"
	b := record("2000002", models.StatusCheckedIn, now, now, 0)
	b.PassengerName = "Sita Devi"
	records := []*models.CheckIn{a, b}

	tests := []struct {
		query string
		want  int
	}{
		{"ramesh", 1},
		{"KUMAR", 1},
		{"1000001", 1},
		{"PNR2000002", 1},
		{"devi", 1},
		{"", 2},
		{"nobody", 0},
	}
	for _, tt := range tests {
		got := FilterRecords(records, tt.query)
		if len(got) != tt.want {
			t.Errorf("FilterRecords(%q) returned %d records, want %d", tt.query, len(got), tt.want)
		}
	}
}

func TestCheckoutsCSV(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, time.Now())
	reports := NewReportService(store)

	c, err := svc.Create(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.Checkout(context.Background(), c.TokenNo, nil); err != nil {
		t.Fatalf("Checkout() error = %v", err)
	}

	out, err := reports.CheckoutsCSV(context.Background(), "")
	if err != nil {
		t.Fatalf("CheckoutsCSV() error = %v", err)
	}
	body := string(out)
	if !strings.Contains(body, "Total Amount") {
		t.Errorf("CSV missing header, got:\n%s", body)
	}
	if !strings.Contains(body, c.TokenNo) {
		t.Errorf("CSV missing record token %s, got:\n%s", c.TokenNo, body)
	}
	if len(strings.Split(strings.TrimSpace(body), "\n")) != 2 {
		t.Errorf("CSV should have header plus one row, got:\n%s", body)
	}
}

func TestDashboardStats(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, timeutil.Now())
	reports := NewReportService(store)

	c1, err := svc.Create(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	req := validRequest()
	req.PNRNumber = "9988776655"
	if _, err := svc.Create(context.Background(), req); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.Checkout(context.Background(), c1.TokenNo, nil); err != nil {
		t.Fatalf("Checkout() error = %v", err)
	}

	stats, err := reports.DashboardStats(context.Background())
	if err != nil {
		t.Fatalf("DashboardStats() error = %v", err)
	}
	if stats.TotalCheckins != 2 || stats.ActiveCheckins != 1 || stats.CompletedCheckouts != 1 {
		t.Errorf("counters = %d/%d/%d, want 2/1/1",
			stats.TotalCheckins, stats.ActiveCheckins, stats.CompletedCheckouts)
	}
	if len(stats.RecentlyJoined) != 2 {
		t.Errorf("RecentlyJoined has %d records, want 2", len(stats.RecentlyJoined))
	}
	if len(stats.RecentCheckouts) != 1 {
		t.Errorf("RecentCheckouts has %d records, want 1", len(stats.RecentCheckouts))
	}
	if stats.TotalRevenue != 120 {
		t.Errorf("TotalRevenue = %d, want 120", stats.TotalRevenue)
	}
}
