package pricing

import "colectivo/internal/domain/models"

// PriceMatch names the fallback step that produced a price.
type PriceMatch string

const (
	PriceExact     PriceMatch = "exact"
	PriceFullDay   PriceMatch = "full_day"
	PriceMorning   PriceMatch = "morning"
	PriceAfternoon PriceMatch = "afternoon"
	PriceAnyPeriod PriceMatch = "any_period"
	PriceNone      PriceMatch = "none"
)

// LookupResult is the price plus the step that found it.
type LookupResult struct {
	Price  float64
	Match  PriceMatch
	TierID int64
}

type lookupStep struct {
	match  PriceMatch
	period string // empty means any period
	skip   func(requested string) bool
}

// lookupChain is ordered loosest last. Reordering changes observable prices.
var lookupChain = []lookupStep{
	{match: PriceExact},
	{match: PriceFullDay, period: models.PeriodFullDay, skip: func(p string) bool { return p == models.PeriodFullDay }},
	{match: PriceMorning, period: models.PeriodMorning},
	{match: PriceAfternoon, period: models.PeriodAfternoon},
	{match: PriceAnyPeriod},
}

// Lookup finds the price for (service, capacity, period) in rows, walking the
// fallback chain. It never fails; an empty result has Match PriceNone and a
// zero price. Duplicate rows resolve to the lowest id.
func Lookup(rows []models.PriceTier, serviceID int64, capacity int, period string) LookupResult {
	for _, step := range lookupChain {
		if step.skip != nil && step.skip(period) {
			continue
		}
		want := step.period
		if step.match == PriceExact {
			want = period
		}
		anyPeriod := step.match == PriceAnyPeriod
		if row, ok := firstRow(rows, serviceID, capacity, want, anyPeriod); ok {
			return LookupResult{Price: row.PriceNormal, Match: step.match, TierID: row.ID}
		}
	}
	return LookupResult{Price: 0, Match: PriceNone}
}

func firstRow(rows []models.PriceTier, serviceID int64, capacity int, period string, anyPeriod bool) (models.PriceTier, bool) {
	var best models.PriceTier
	found := false
	for _, r := range rows {
		if r.ServiceID != serviceID || r.Capacity != capacity {
			continue
		}
		if !anyPeriod && r.Period != period {
			continue
		}
		if !found || r.ID < best.ID {
			best = r
			found = true
		}
	}
	return best, found
}
