package billing

// RateTable holds the per-day storage charge for each luggage category,
// in whole rupees.
type RateTable struct {
	OneUnit   int
	TwoUnit   int
	ThreeUnit int
	Locker    int
}

// DefaultRates is the counter rate card.
var DefaultRates = RateTable{
	OneUnit:   30,
	TwoUnit:   60,
	ThreeUnit: 90,
	Locker:    60,
}
