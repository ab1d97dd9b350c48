package services

import (
	"context"
	"fmt"

	"colectivo/internal/metrics"
	"colectivo/internal/pricing"
	"colectivo/internal/utils"
)

// QuoteService prices a trip against the live catalog.
type QuoteService struct {
	Catalog   pricing.Catalog
	Metrics   *metrics.Registry
	RequestID string
}

func (s QuoteService) Quote(ctx context.Context, req pricing.QuoteRequest) (pricing.Quote, error) {
	q, err := pricing.ComputeQuote(ctx, s.Catalog, req)
	if err != nil {
		utils.LogError(s.RequestID, "quote", "compute", err)
		return pricing.Quote{}, err
	}
	s.Metrics.ObserveQuote(string(q.Outcome), string(q.ServiceMatch), string(q.PriceMatch))
	utils.LogEvent(s.RequestID, "quote", "compute", fmt.Sprintf(
		"service=%s match=%s capacity=%d period=%s price=%.2f price_match=%s",
		q.Service.Slug, q.ServiceMatch, q.Capacity, q.Period, q.Price, q.PriceMatch,
	))
	return q, nil
}
