package billing

import (
	"testing"
	"time"

	"cloakroom-backend/internal/models"
)

func TestElapsedHours(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		checkIn time.Time
		now     time.Time
		want    float64
	}{
		{"five hours", base, base.Add(5 * time.Hour), 5},
		{"half hour", base, base.Add(30 * time.Minute), 0.5},
		{"zero duration", base, base, 0},
		{"clock skew clamps to zero", base, base.Add(-2 * time.Hour), 0},
		{"zero check-in time", time.Time{}, base, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ElapsedHours(tt.checkIn, tt.now)
			if got != tt.want {
				t.Errorf("ElapsedHours() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMultiplier(t *testing.T) {
	tests := []struct {
		name  string
		hours float64
		want  int
	}{
		{"zero hours bills one day", 0, 1},
		{"five hours", 5, 1},
		{"exactly 24 hours", 24, 1},
		{"just over a day", 24.01, 2},
		{"thirty hours", 30, 2},
		{"exactly 48 hours", 48, 2},
		{"three days and change", 49, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Multiplier(tt.hours); got != tt.want {
				t.Errorf("Multiplier(%v) = %d, want %d", tt.hours, got, tt.want)
			}
		})
	}
}

func TestComputeAmounts(t *testing.T) {
	luggage := models.LuggageCount{OneUnit: 2, TwoUnit: 1, ThreeUnit: 0, Locker: 1}

	t.Run("single day", func(t *testing.T) {
		got := ComputeAmounts(luggage, DefaultRates, 1)
		want := models.AmountBreakdown{
			OneUnitAmount: 60,
			TwoUnitAmount: 60,
			LockerAmount:  60,
			TotalAmount:   180,
		}
		if got != want {
			t.Errorf("ComputeAmounts() = %+v, want %+v", got, want)
		}
	})

	t.Run("two days doubles every category", func(t *testing.T) {
		got := ComputeAmounts(luggage, DefaultRates, 2)
		if got.TotalAmount != 360 {
			t.Errorf("TotalAmount = %d, want 360", got.TotalAmount)
		}
		if got.OneUnitAmount != 120 || got.TwoUnitAmount != 120 || got.LockerAmount != 120 {
			t.Errorf("per-category amounts not scaled: %+v", got)
		}
	})

	t.Run("empty luggage bills zero", func(t *testing.T) {
		got := ComputeAmounts(models.LuggageCount{}, DefaultRates, 3)
		if got.TotalAmount != 0 {
			t.Errorf("TotalAmount = %d, want 0", got.TotalAmount)
		}
	})
}

func TestRecalcTotal(t *testing.T) {
	a := models.AmountBreakdown{
		OneUnitAmount:   50,
		TwoUnitAmount:   0,
		ThreeUnitAmount: 90,
		LockerAmount:    10,
		TotalAmount:     9999, // stale total from a manual override
	}
	a.RecalcTotal()
	if a.TotalAmount != 150 {
		t.Errorf("TotalAmount = %d, want 150", a.TotalAmount)
	}
}
