package services

import (
	"context"
	"fmt"

	"colectivo/internal/domain"
	"colectivo/internal/domain/models"
	"colectivo/internal/utils"
)

// SeedReport counts what a seed run inserted; existing rows are skipped.
type SeedReport struct {
	ServicesCreated int  `json:"services_created"`
	PricesCreated   int  `json:"prices_created"`
	AdminCreated    bool `json:"admin_created"`
}

// SeedService loads the starting destination catalog and an admin account.
// It is idempotent: services match by slug and tiers by (service, capacity, period).
type SeedService struct {
	Catalog       CatalogStore
	Users         UserStore
	Cache         Invalidator
	AdminUser     string
	AdminPassword string
	RequestID     string
}

func (s SeedService) Run(ctx context.Context) (SeedReport, error) {
	var report SeedReport
	for _, entry := range defaultCatalog {
		svc, exists, err := s.Catalog.FindServiceBySlug(ctx, entry.Slug)
		if err != nil {
			return report, fmt.Errorf("seed %s: %w", entry.Slug, err)
		}
		if !exists {
			svc = models.Service{Name: entry.Name, Slug: entry.Slug, Active: true, PeriodMode: models.PeriodModeDuration}
			if svc.ID, err = s.Catalog.CreateService(ctx, svc); err != nil {
				return report, fmt.Errorf("seed %s: %w", entry.Slug, err)
			}
			report.ServicesCreated++
		}

		for _, t := range entry.Tiers {
			_, found, err := s.Catalog.FindPriceTier(ctx, svc.ID, t.Capacity, t.Period)
			if err != nil {
				return report, fmt.Errorf("seed %s tier: %w", entry.Slug, err)
			}
			if found {
				continue
			}
			zero := 0.0
			if _, err := s.Catalog.CreatePriceTier(ctx, models.PriceTier{
				ServiceID:     svc.ID,
				Capacity:      t.Capacity,
				Period:        t.Period,
				PriceNormal:   t.Price,
				PriceDiscount: &zero,
			}); err != nil {
				return report, fmt.Errorf("seed %s tier: %w", entry.Slug, err)
			}
			report.PricesCreated++
		}
	}

	created, err := s.seedAdmin(ctx)
	if err != nil {
		return report, err
	}
	report.AdminCreated = created

	if s.Cache != nil && (report.ServicesCreated > 0 || report.PricesCreated > 0) {
		if err := s.Cache.Invalidate(ctx); err != nil {
			utils.LogError(s.RequestID, "seed", "invalidate_cache", err)
		}
	}
	utils.LogEvent(s.RequestID, "seed", "run", fmt.Sprintf("services=%d prices=%d admin=%t",
		report.ServicesCreated, report.PricesCreated, report.AdminCreated))
	return report, nil
}

func (s SeedService) seedAdmin(ctx context.Context) (bool, error) {
	if s.Users == nil || s.AdminUser == "" || s.AdminPassword == "" {
		return false, nil
	}
	_, err := s.Users.GetByUsername(ctx, s.AdminUser)
	if err == nil {
		return false, nil
	}
	if !domain.IsNotFound(err) {
		return false, err
	}
	hash, err := HashPassword(s.AdminPassword)
	if err != nil {
		return false, err
	}
	if _, err := s.Users.Create(ctx, models.User{
		Username:     s.AdminUser,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		Status:       "active",
	}); err != nil {
		return false, err
	}
	return true, nil
}
