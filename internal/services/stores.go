package services

import (
	"context"

	"colectivo/internal/domain/models"
	"colectivo/internal/pricing"
)

// CatalogStore is the full service/price table surface. The repository
// satisfies it; tests use in-memory fakes.
type CatalogStore interface {
	pricing.Catalog
	ListServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id int64) (models.Service, error)
	FindServiceBySlug(ctx context.Context, slug string) (models.Service, bool, error)
	CreateService(ctx context.Context, s models.Service) (int64, error)
	SetServiceActive(ctx context.Context, id int64, active bool) error
	ListAllPriceTiers(ctx context.Context) ([]models.PriceTier, error)
	GetPriceTier(ctx context.Context, id int64) (models.PriceTier, error)
	FindPriceTier(ctx context.Context, serviceID int64, capacity int, period string) (models.PriceTier, bool, error)
	CreatePriceTier(ctx context.Context, t models.PriceTier) (int64, error)
	UpdatePriceTier(ctx context.Context, t models.PriceTier) error
	DeletePriceTier(ctx context.Context, id int64) error
}

type OrderStore interface {
	Create(ctx context.Context, o models.Order) (int64, error)
	Get(ctx context.Context, id int64) (models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	Delete(ctx context.Context, id int64) error
	Mutate(ctx context.Context, id int64, fn func(*models.Order) error) (models.Order, error)
}

type UserStore interface {
	GetByUsername(ctx context.Context, username string) (models.User, error)
	Create(ctx context.Context, u models.User) (int64, error)
}

// Invalidator drops cached catalog reads after a write.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}
