package timeutil

import (
	"testing"
	"time"
)

func TestDayBoundariesFollowIST(t *testing.T) {
	// 20:00 UTC is already 01:30 the next day in IST
	utc := time.Date(2026, 3, 9, 20, 0, 0, 0, time.UTC)

	start := StartOfDay(utc)
	if got := start.Format(DateTimeLayout); got != "2026-03-10 00:00:00" {
		t.Fatalf("StartOfDay = %q, want 2026-03-10 00:00:00", got)
	}

	end := EndOfDay(utc)
	if got := end.Format(DateLayout); got != "2026-03-10" {
		t.Fatalf("EndOfDay date = %q, want 2026-03-10", got)
	}
	if !end.After(start) {
		t.Fatal("EndOfDay must be after StartOfDay")
	}
	if end.Sub(start) >= 24*time.Hour {
		t.Fatalf("day span = %v, want < 24h", end.Sub(start))
	}
}

func TestFormatISTConvertsZone(t *testing.T) {
	utc := time.Date(2026, 3, 9, 20, 0, 0, 0, time.UTC)
	if got := FormatIST(utc, DateLayout); got != "2026-03-10" {
		t.Fatalf("FormatIST = %q, want 2026-03-10", got)
	}
}

func TestParseInISTRoundTrip(t *testing.T) {
	parsed, err := ParseInIST(DateTimeLayout, "2026-03-10 01:30:00")
	if err != nil {
		t.Fatalf("ParseInIST: %v", err)
	}
	if got := FormatIST(parsed, DateTimeLayout); got != "2026-03-10 01:30:00" {
		t.Fatalf("round trip = %q", got)
	}
}
