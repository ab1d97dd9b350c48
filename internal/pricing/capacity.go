package pricing

import (
	"sort"

	"colectivo/internal/domain"
	"colectivo/internal/domain/models"
)

// Allocate returns the smallest tier that fits the passengers, or the
// largest tier when nothing is big enough. Overflow is accepted.
func Allocate(passengers int, tiers []int) (int, error) {
	distinct := DistinctCapacities(tiers)
	if len(distinct) == 0 {
		return 0, domain.ErrNoCapacityConfigured
	}
	if passengers < 0 {
		passengers = 0
	}
	for _, c := range distinct {
		if passengers <= c {
			return c, nil
		}
	}
	return distinct[len(distinct)-1], nil
}

// DistinctCapacities returns the tiers sorted ascending without duplicates.
func DistinctCapacities(tiers []int) []int {
	seen := make(map[int]struct{}, len(tiers))
	out := make([]int, 0, len(tiers))
	for _, c := range tiers {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Ints(out)
	return out
}

// CapacitiesOf extracts the capacity column of a price table.
func CapacitiesOf(rows []models.PriceTier) []int {
	out := make([]int, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Capacity)
	}
	return out
}
