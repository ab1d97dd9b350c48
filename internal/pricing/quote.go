package pricing

import (
	"context"
	"fmt"

	"colectivo/internal/domain"
	"colectivo/internal/domain/models"
)

// Catalog is the read-only configuration the engine prices against.
type Catalog interface {
	ListActiveServices(ctx context.Context) ([]models.Service, error)
	ListPriceTiers(ctx context.Context, serviceID int64) ([]models.PriceTier, error)
}

// Outcome summarizes how trustworthy a quote is.
type Outcome string

const (
	OutcomePriced    Outcome = "priced"
	OutcomeFallback  Outcome = "fallback"
	OutcomeZeroPrice Outcome = "zero_price"
)

type QuoteRequest struct {
	Destination   string  `json:"destination"`
	Passengers    int     `json:"passengers"`
	DurationHours float64 `json:"duration_hours"`
	Departure     string  `json:"departure"`
}

// Quote is a resolved price plus the stage tags that produced it.
type Quote struct {
	Service      models.Service `json:"service"`
	Capacity     int            `json:"capacity"`
	Period       string         `json:"period"`
	Price        float64        `json:"price"`
	ServiceMatch ServiceMatch   `json:"service_match"`
	PriceMatch   PriceMatch     `json:"price_match"`
	Departure    Hour           `json:"departure_hour"`
	Outcome      Outcome        `json:"outcome"`
}

// NeedsReview reports a zero-price quote that staff must correct by hand.
func (q Quote) NeedsReview() bool {
	return q.Outcome == OutcomeZeroPrice
}

// ComputeQuote runs the full resolution: service, period, capacity, price.
func ComputeQuote(ctx context.Context, catalog Catalog, req QuoteRequest) (Quote, error) {
	services, err := catalog.ListActiveServices(ctx)
	if err != nil {
		return Quote{}, fmt.Errorf("list active services: %w", err)
	}

	res := Resolve(req.Destination, services)
	if !res.Found() {
		return Quote{}, domain.ErrNoServiceConfigured
	}

	tiers, err := catalog.ListPriceTiers(ctx, res.Service.ID)
	if err != nil {
		return Quote{}, fmt.Errorf("list price tiers for service %d: %w", res.Service.ID, err)
	}

	capacity, err := Allocate(req.Passengers, CapacitiesOf(tiers))
	if err != nil {
		return Quote{}, fmt.Errorf("service %s: %w", res.Service.Slug, err)
	}

	departure := ParseHour(req.Departure)
	period := ClassifyPeriod(res.Service, req.DurationHours, departure)
	found := Lookup(tiers, res.Service.ID, capacity, period)

	return Quote{
		Service:      res.Service,
		Capacity:     capacity,
		Period:       period,
		Price:        found.Price,
		ServiceMatch: res.Stage,
		PriceMatch:   found.Match,
		Departure:    departure,
		Outcome:      outcomeOf(found),
	}, nil
}

func outcomeOf(r LookupResult) Outcome {
	switch {
	case r.Match == PriceNone || r.Price == 0:
		return OutcomeZeroPrice
	case r.Match == PriceExact:
		return OutcomePriced
	default:
		return OutcomeFallback
	}
}
