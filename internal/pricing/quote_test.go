package pricing

import (
	"context"
	"errors"
	"testing"

	"colectivo/internal/domain"
	"colectivo/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	services []models.Service
	tiers    map[int64][]models.PriceTier
	err      error
}

func (f fakeCatalog) ListActiveServices(context.Context) ([]models.Service, error) {
	return f.services, f.err
}

func (f fakeCatalog) ListPriceTiers(_ context.Context, serviceID int64) ([]models.PriceTier, error) {
	return f.tiers[serviceID], nil
}

func tapalpaCatalog(mode string) fakeCatalog {
	tapalpa := svc(7, "tapalpa", "Tapalpa")
	tapalpa.PeriodMode = mode
	var rows []models.PriceTier
	id := int64(100)
	for _, p := range []struct {
		capacity int
		prices   [3]float64
	}{
		{6, [3]float64{5000, 6500, 7500}},
		{14, [3]float64{7500, 8500, 9500}},
		{20, [3]float64{9000, 10000, 11000}},
	} {
		for i, period := range []string{models.PeriodSameDay, models.PeriodWeekend, models.PeriodLongWeekend} {
			id++
			rows = append(rows, tier(id, 7, p.capacity, period, p.prices[i]))
		}
	}
	return fakeCatalog{
		services: []models.Service{svc(1, "mazatlan", "Mazatlán"), tapalpa},
		tiers:    map[int64][]models.PriceTier{7: rows},
	}
}

func TestComputeQuoteTapalpaByDuration(t *testing.T) {
	q, err := ComputeQuote(context.Background(), tapalpaCatalog(models.PeriodModeDuration), QuoteRequest{
		Destination:   "ida a Tapalpa",
		Passengers:    10,
		DurationHours: 10,
		Departure:     "17:33:00 am",
	})
	require.NoError(t, err)
	assert.Equal(t, "tapalpa", q.Service.Slug)
	assert.Equal(t, MatchSlug, q.ServiceMatch)
	assert.Equal(t, 14, q.Capacity)
	assert.Equal(t, models.PeriodSameDay, q.Period)
	assert.Equal(t, 7500.0, q.Price)
	assert.Equal(t, PriceExact, q.PriceMatch)
	assert.Equal(t, OutcomePriced, q.Outcome)
	assert.Equal(t, Hour{Value: 17, Known: true}, q.Departure)
}

func TestComputeQuoteTapalpaByHour(t *testing.T) {
	q, err := ComputeQuote(context.Background(), tapalpaCatalog(models.PeriodModeHour), QuoteRequest{
		Destination: "ida a Tapalpa",
		Passengers:  10,
		Departure:   "17:33:00 am",
	})
	require.NoError(t, err)
	assert.Equal(t, models.PeriodAfternoon, q.Period)
	assert.Equal(t, 14, q.Capacity)
	// Tapalpa has no day-part rows, so the earliest 14 seat row answers.
	assert.Equal(t, 7500.0, q.Price)
	assert.Equal(t, PriceAnyPeriod, q.PriceMatch)
	assert.Equal(t, OutcomeFallback, q.Outcome)
	assert.False(t, q.NeedsReview())
}

func TestComputeQuoteUnparseableTimeInHourMode(t *testing.T) {
	cat := tapalpaCatalog(models.PeriodModeHour)
	q, err := ComputeQuote(context.Background(), cat, QuoteRequest{Destination: "tapalpa", Passengers: 3, Departure: "temprano"})
	require.NoError(t, err)
	assert.False(t, q.Departure.Known)
	assert.Equal(t, models.PeriodFullDay, q.Period)
	assert.Equal(t, 6, q.Capacity)
	assert.Equal(t, 5000.0, q.Price)
}

func TestComputeQuoteZeroPrice(t *testing.T) {
	cat := fakeCatalog{
		services: []models.Service{svc(1, "mazatlan", "Mazatlán")},
		tiers:    map[int64][]models.PriceTier{1: {tier(1, 1, 6, models.PeriodWeekend, 0)}},
	}
	q, err := ComputeQuote(context.Background(), cat, QuoteRequest{Destination: "Mazatlan", Passengers: 2, DurationHours: 30})
	require.NoError(t, err)
	assert.Equal(t, PriceExact, q.PriceMatch)
	assert.Equal(t, 0.0, q.Price)
	assert.Equal(t, OutcomeZeroPrice, q.Outcome)
	assert.True(t, q.NeedsReview())

	q, err = ComputeQuote(context.Background(), cat, QuoteRequest{Destination: "Mazatlan", Passengers: 9, DurationHours: 60})
	require.NoError(t, err)
	assert.Equal(t, PriceAnyPeriod, q.PriceMatch)
	assert.Equal(t, OutcomeZeroPrice, q.Outcome)

	cat.tiers[1] = []models.PriceTier{tier(1, 1, 6, models.PeriodWeekend, 12500), tier(2, 1, 14, models.PeriodWeekend, 17500)}
	q, err = ComputeQuote(context.Background(), cat, QuoteRequest{Destination: "Mazatlan", Passengers: 2, DurationHours: 30})
	require.NoError(t, err)
	assert.Equal(t, 12500.0, q.Price)
}

func TestComputeQuoteUnknownDestinationUsesDefault(t *testing.T) {
	cat := tapalpaCatalog(models.PeriodModeDuration)
	cat.services[0], cat.services[1] = cat.services[1], cat.services[0]

	q, err := ComputeQuote(context.Background(), cat, QuoteRequest{Destination: "Monterrey", Passengers: 4})
	require.NoError(t, err)
	assert.Equal(t, MatchDefault, q.ServiceMatch)
	assert.Equal(t, "tapalpa", q.Service.Slug)
	assert.Equal(t, 5000.0, q.Price)
}

func TestComputeQuoteErrors(t *testing.T) {
	_, err := ComputeQuote(context.Background(), fakeCatalog{}, QuoteRequest{Destination: "tapalpa"})
	assert.ErrorIs(t, err, domain.ErrNoServiceConfigured)

	// mazatlan resolves but has no tiers in this catalog
	_, err = ComputeQuote(context.Background(), tapalpaCatalog(models.PeriodModeDuration), QuoteRequest{Destination: "mazatlan"})
	assert.ErrorIs(t, err, domain.ErrNoCapacityConfigured)
	assert.True(t, domain.IsConfiguration(err))

	boom := errors.New("db down")
	_, err = ComputeQuote(context.Background(), fakeCatalog{err: boom}, QuoteRequest{})
	assert.ErrorIs(t, err, boom)
	assert.False(t, domain.IsConfiguration(err))
}
