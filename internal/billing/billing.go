package billing

import "cloakroom-backend/internal/models"

// ComputeAmounts prices a luggage count against the rate table for the
// given number of billable days. Each category bills count x rate x days;
// the total is the sum of the four categories.
func ComputeAmounts(luggage models.LuggageCount, rates RateTable, multiplier int) models.AmountBreakdown {
	a := models.AmountBreakdown{
		OneUnitAmount:   luggage.OneUnit * rates.OneUnit * multiplier,
		TwoUnitAmount:   luggage.TwoUnit * rates.TwoUnit * multiplier,
		ThreeUnitAmount: luggage.ThreeUnit * rates.ThreeUnit * multiplier,
		LockerAmount:    luggage.Locker * rates.Locker * multiplier,
	}
	a.RecalcTotal()
	return a
}
