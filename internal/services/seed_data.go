package services

import "colectivo/internal/domain/models"

type seedTier struct {
	Capacity int
	Period   string
	Price    float64
}

type seedService struct {
	Name  string
	Slug  string
	Tiers []seedTier
}

// tierGrid expands a 6/14/20 x same_day/weekend/long_weekend table.
func tierGrid(prices map[int][3]float64) []seedTier {
	out := make([]seedTier, 0, 9)
	for _, capacity := range []int{6, 14, 20} {
		row, ok := prices[capacity]
		if !ok {
			continue
		}
		for i, period := range []string{models.PeriodSameDay, models.PeriodWeekend, models.PeriodLongWeekend} {
			if row[i] == 0 {
				continue
			}
			out = append(out, seedTier{Capacity: capacity, Period: period, Price: row[i]})
		}
	}
	return out
}

// defaultCatalog is the destination list the business started with.
// Mazatlán is never sold as a same-day trip.
var defaultCatalog = []seedService{
	{Name: "Mazatlán", Slug: "mazatlan", Tiers: tierGrid(map[int][3]float64{
		6: {0, 12500, 13500}, 14: {0, 17500, 18000}, 20: {0, 20500, 21500},
	})},
	{Name: "Puerto Vallarta", Slug: "pto-vallarta", Tiers: tierGrid(map[int][3]float64{
		6: {9500, 10500, 11500}, 14: {12500, 13500, 14500}, 20: {14000, 15000, 16000},
	})},
	{Name: "Manzanillo", Slug: "manzanillo", Tiers: tierGrid(map[int][3]float64{
		6: {8500, 9500, 10500}, 14: {11500, 12500, 13500}, 20: {13000, 14000, 14500},
	})},
	{Name: "Guanajuato", Slug: "guanajuato", Tiers: tierGrid(map[int][3]float64{
		6: {8500, 9500, 10500}, 14: {11500, 12500, 13500}, 20: {13000, 14000, 15000},
	})},
	{Name: "Morelia", Slug: "morelia", Tiers: tierGrid(map[int][3]float64{
		6: {8500, 9500, 10500}, 14: {11500, 12500, 13500}, 20: {13000, 14000, 15000},
	})},
	{Name: "Tepic", Slug: "tepic", Tiers: tierGrid(map[int][3]float64{
		6: {8000, 9000, 10000}, 14: {10500, 11500, 12500}, 20: {12000, 13000, 14000},
	})},
	{Name: "Tapalpa", Slug: "tapalpa", Tiers: tierGrid(map[int][3]float64{
		6: {5000, 6500, 7500}, 14: {7500, 8500, 9500}, 20: {9000, 10000, 11000},
	})},
	{Name: "Mazamitla", Slug: "mazamitla", Tiers: tierGrid(map[int][3]float64{
		6: {5000, 6500, 7500}, 14: {7500, 8500, 9500}, 20: {9000, 10000, 11000},
	})},
	{Name: "Chapala", Slug: "chapala", Tiers: tierGrid(map[int][3]float64{
		6: {3000, 3500, 4000}, 14: {5500, 6000, 6500}, 20: {6500, 7000, 7500},
	})},
	{Name: "Tequila", Slug: "tequila", Tiers: tierGrid(map[int][3]float64{
		6: {3000, 3500, 4000}, 14: {5500, 6000, 6500}, 20: {6500, 7000, 7500},
	})},
}
