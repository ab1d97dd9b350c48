package services

import (
	"context"
	"fmt"
	"strings"

	"colectivo/internal/domain"
	"colectivo/internal/domain/models"
	"colectivo/internal/pricing"
	"colectivo/internal/utils"
)

var validPeriods = map[string]struct{}{
	models.PeriodSameDay:     {},
	models.PeriodWeekend:     {},
	models.PeriodLongWeekend: {},
	models.PeriodMorning:     {},
	models.PeriodAfternoon:   {},
	models.PeriodFullDay:     {},
}

// CatalogService manages services and price tiers. Every successful write
// drops the cached active-service list.
type CatalogService struct {
	Store     CatalogStore
	Cache     Invalidator
	RequestID string
}

func (s CatalogService) ListServices(ctx context.Context) ([]models.Service, error) {
	return s.Store.ListServices(ctx)
}

func (s CatalogService) ListPrices(ctx context.Context) ([]models.PriceTier, error) {
	return s.Store.ListAllPriceTiers(ctx)
}

func (s CatalogService) CreateService(ctx context.Context, in models.ServiceInput) (models.Service, error) {
	name := utils.NormalizeSpace(in.Name)
	if name == "" {
		return models.Service{}, domain.ValidationError{Field: "name", Msg: "required"}
	}
	slug := slugify(in.Slug)
	if slug == "" {
		slug = slugify(name)
	}
	mode := strings.TrimSpace(in.PeriodMode)
	if mode == "" {
		mode = models.PeriodModeDuration
	}
	if mode != models.PeriodModeDuration && mode != models.PeriodModeHour {
		return models.Service{}, domain.ValidationError{Field: "period_mode", Msg: "must be duration or hour"}
	}

	if _, exists, err := s.Store.FindServiceBySlug(ctx, slug); err != nil {
		return models.Service{}, err
	} else if exists {
		return models.Service{}, domain.ConflictError{Resource: "service", Msg: "slug already exists: " + slug}
	}

	svc := models.Service{Name: name, Slug: slug, Active: true, PeriodMode: mode}
	id, err := s.Store.CreateService(ctx, svc)
	if err != nil {
		return models.Service{}, err
	}
	svc.ID = id
	s.invalidate(ctx)
	utils.LogEvent(s.RequestID, "catalog", "create_service", "slug="+slug)
	return svc, nil
}

// SetServiceActive soft-deactivates or reactivates a service.
func (s CatalogService) SetServiceActive(ctx context.Context, id int64, active bool) (models.Service, error) {
	svc, err := s.Store.GetService(ctx, id)
	if err != nil {
		return models.Service{}, err
	}
	if err := s.Store.SetServiceActive(ctx, id, active); err != nil {
		return models.Service{}, err
	}
	svc.Active = active
	s.invalidate(ctx)
	utils.LogEvent(s.RequestID, "catalog", "set_active", fmt.Sprintf("service_id=%d active=%t", id, active))
	return svc, nil
}

func (s CatalogService) CreatePrice(ctx context.Context, in models.PriceTierInput) (models.PriceTier, error) {
	if in.ServiceID == nil || in.Capacity == nil || in.Period == nil || in.PriceNormal == nil {
		return models.PriceTier{}, domain.ValidationError{Msg: "service_id, capacidad, period and price_normal are required"}
	}
	t := models.PriceTier{
		ServiceID:     *in.ServiceID,
		Capacity:      *in.Capacity,
		Period:        strings.TrimSpace(*in.Period),
		PriceNormal:   *in.PriceNormal,
		PriceDiscount: in.PriceDiscount,
	}
	if err := validateTier(t); err != nil {
		return models.PriceTier{}, err
	}
	if _, err := s.Store.GetService(ctx, t.ServiceID); err != nil {
		return models.PriceTier{}, err
	}
	if _, exists, err := s.Store.FindPriceTier(ctx, t.ServiceID, t.Capacity, t.Period); err != nil {
		return models.PriceTier{}, err
	} else if exists {
		return models.PriceTier{}, domain.ConflictError{Resource: "service price", Msg: "tier already exists for capacity and period"}
	}

	id, err := s.Store.CreatePriceTier(ctx, t)
	if err != nil {
		return models.PriceTier{}, err
	}
	t.ID = id
	s.invalidate(ctx)
	utils.LogEvent(s.RequestID, "catalog", "create_price", fmt.Sprintf("price_id=%d service_id=%d", id, t.ServiceID))
	return t, nil
}

func (s CatalogService) UpdatePrice(ctx context.Context, id int64, in models.PriceTierInput) (models.PriceTier, error) {
	t, err := s.Store.GetPriceTier(ctx, id)
	if err != nil {
		return models.PriceTier{}, err
	}
	if in.ServiceID != nil {
		t.ServiceID = *in.ServiceID
	}
	if in.Capacity != nil {
		t.Capacity = *in.Capacity
	}
	if in.Period != nil {
		t.Period = strings.TrimSpace(*in.Period)
	}
	if in.PriceNormal != nil {
		t.PriceNormal = *in.PriceNormal
	}
	if in.PriceDiscount != nil {
		t.PriceDiscount = in.PriceDiscount
	}
	if err := validateTier(t); err != nil {
		return models.PriceTier{}, err
	}
	if other, exists, err := s.Store.FindPriceTier(ctx, t.ServiceID, t.Capacity, t.Period); err != nil {
		return models.PriceTier{}, err
	} else if exists && other.ID != id {
		return models.PriceTier{}, domain.ConflictError{Resource: "service price", Msg: "tier already exists for capacity and period"}
	}

	if err := s.Store.UpdatePriceTier(ctx, t); err != nil {
		return models.PriceTier{}, err
	}
	s.invalidate(ctx)
	utils.LogEvent(s.RequestID, "catalog", "update_price", fmt.Sprintf("price_id=%d", id))
	return t, nil
}

func (s CatalogService) DeletePrice(ctx context.Context, id int64) error {
	if err := s.Store.DeletePriceTier(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	utils.LogEvent(s.RequestID, "catalog", "delete_price", fmt.Sprintf("price_id=%d", id))
	return nil
}

func (s CatalogService) invalidate(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Invalidate(ctx); err != nil {
		utils.LogError(s.RequestID, "catalog", "invalidate_cache", err)
	}
}

func validateTier(t models.PriceTier) error {
	if t.Capacity <= 0 {
		return domain.ValidationError{Field: "capacidad", Msg: "must be positive"}
	}
	if _, ok := validPeriods[t.Period]; !ok {
		return domain.ValidationError{Field: "period", Msg: "unknown period " + t.Period}
	}
	if t.PriceNormal < 0 {
		return domain.ValidationError{Field: "price_normal", Msg: "must not be negative"}
	}
	if t.PriceDiscount != nil && *t.PriceDiscount < 0 {
		return domain.ValidationError{Field: "price_discount", Msg: "must not be negative"}
	}
	return nil
}

// slugify lowercases, strips accents and joins words with dashes.
func slugify(s string) string {
	s = pricing.Normalize(strings.TrimSpace(s))
	var b strings.Builder
	dash := false
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
