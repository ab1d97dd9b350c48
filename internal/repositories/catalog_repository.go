package repositories

import (
	"context"
	"database/sql"
	"errors"

	"colectivo/internal/domain"
	"colectivo/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

// CatalogRepository reads and writes services and their price tables.
type CatalogRepository struct {
	DB *sqlx.DB
}

const serviceColumns = `id, name, slug, active, COALESCE(period_mode,'duration') AS period_mode`

const tierColumns = `id, service_id, capacidad, period, price_normal, price_discount`

// ListActiveServices returns active services in id order; the resolver
// depends on that order for its first-match and default rules.
func (r CatalogRepository) ListActiveServices(ctx context.Context) ([]models.Service, error) {
	out := []models.Service{}
	err := r.DB.SelectContext(ctx, &out, `SELECT `+serviceColumns+` FROM services WHERE active = 1 ORDER BY id`)
	if err != nil {
		return nil, storeError("list active services", err)
	}
	return out, nil
}

func (r CatalogRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	out := []models.Service{}
	err := r.DB.SelectContext(ctx, &out, `SELECT `+serviceColumns+` FROM services ORDER BY id`)
	if err != nil {
		return nil, storeError("list services", err)
	}
	return out, nil
}

func (r CatalogRepository) GetService(ctx context.Context, id int64) (models.Service, error) {
	var s models.Service
	err := r.DB.GetContext(ctx, &s, `SELECT `+serviceColumns+` FROM services WHERE id = ? LIMIT 1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Service{}, domain.NotFoundError{Resource: "service", Err: err}
	}
	if err != nil {
		return models.Service{}, storeError("get service", err)
	}
	return s, nil
}

// FindServiceBySlug returns ok=false when no row has the slug.
func (r CatalogRepository) FindServiceBySlug(ctx context.Context, slug string) (models.Service, bool, error) {
	var s models.Service
	err := r.DB.GetContext(ctx, &s, `SELECT `+serviceColumns+` FROM services WHERE slug = ? LIMIT 1`, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Service{}, false, nil
	}
	if err != nil {
		return models.Service{}, false, storeError("find service", err)
	}
	return s, true, nil
}

func (r CatalogRepository) CreateService(ctx context.Context, s models.Service) (int64, error) {
	res, err := r.DB.NamedExecContext(ctx, `
		INSERT INTO services (name, slug, active, period_mode)
		VALUES (:name, :slug, :active, :period_mode)`, s)
	if err != nil {
		return 0, storeError("insert service", err)
	}
	return res.LastInsertId()
}

// SetServiceActive soft-(de)activates a service. Slugs are never touched.
// MySQL reports zero affected rows for no-op updates, so callers check
// existence first.
func (r CatalogRepository) SetServiceActive(ctx context.Context, id int64, active bool) error {
	if _, err := r.DB.ExecContext(ctx, `UPDATE services SET active = ? WHERE id = ?`, active, id); err != nil {
		return storeError("update service", err)
	}
	return nil
}

// ListPriceTiers returns a service's price table in id order so duplicate
// rows resolve to the earliest one.
func (r CatalogRepository) ListPriceTiers(ctx context.Context, serviceID int64) ([]models.PriceTier, error) {
	out := []models.PriceTier{}
	err := r.DB.SelectContext(ctx, &out, `SELECT `+tierColumns+` FROM service_prices WHERE service_id = ? ORDER BY id`, serviceID)
	if err != nil {
		return nil, storeError("list price tiers", err)
	}
	return out, nil
}

// ListAllPriceTiers lists every tier, ordered for display.
func (r CatalogRepository) ListAllPriceTiers(ctx context.Context) ([]models.PriceTier, error) {
	out := []models.PriceTier{}
	err := r.DB.SelectContext(ctx, &out, `SELECT `+tierColumns+` FROM service_prices ORDER BY service_id, capacidad, period, id`)
	if err != nil {
		return nil, storeError("list price tiers", err)
	}
	return out, nil
}

func (r CatalogRepository) GetPriceTier(ctx context.Context, id int64) (models.PriceTier, error) {
	var t models.PriceTier
	err := r.DB.GetContext(ctx, &t, `SELECT `+tierColumns+` FROM service_prices WHERE id = ? LIMIT 1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PriceTier{}, domain.NotFoundError{Resource: "service price", Err: err}
	}
	if err != nil {
		return models.PriceTier{}, storeError("get service price", err)
	}
	return t, nil
}

// FindPriceTier returns ok=false when the (service, capacity, period) triple has no row.
func (r CatalogRepository) FindPriceTier(ctx context.Context, serviceID int64, capacity int, period string) (models.PriceTier, bool, error) {
	var t models.PriceTier
	err := r.DB.GetContext(ctx, &t, `
		SELECT `+tierColumns+` FROM service_prices
		WHERE service_id = ? AND capacidad = ? AND period = ?
		ORDER BY id LIMIT 1`, serviceID, capacity, period)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PriceTier{}, false, nil
	}
	if err != nil {
		return models.PriceTier{}, false, storeError("find service price", err)
	}
	return t, true, nil
}

func (r CatalogRepository) CreatePriceTier(ctx context.Context, t models.PriceTier) (int64, error) {
	res, err := r.DB.NamedExecContext(ctx, `
		INSERT INTO service_prices (service_id, capacidad, period, price_normal, price_discount)
		VALUES (:service_id, :capacidad, :period, :price_normal, :price_discount)`, t)
	if err != nil {
		return 0, storeError("insert service price", err)
	}
	return res.LastInsertId()
}

func (r CatalogRepository) UpdatePriceTier(ctx context.Context, t models.PriceTier) error {
	_, err := r.DB.NamedExecContext(ctx, `
		UPDATE service_prices
		SET service_id = :service_id, capacidad = :capacidad, period = :period,
		    price_normal = :price_normal, price_discount = :price_discount
		WHERE id = :id`, t)
	if err != nil {
		return storeError("update service price", err)
	}
	return nil
}

func (r CatalogRepository) DeletePriceTier(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM service_prices WHERE id = ?`, id)
	if err != nil {
		return storeError("delete service price", err)
	}
	return requireAffected(res, "service price")
}

func requireAffected(res sql.Result, resource string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return storeError("rows affected", err)
	}
	if n == 0 {
		return domain.NotFoundError{Resource: resource}
	}
	return nil
}

// storeError marks a database failure as internal; op names the statement.
func storeError(op string, err error) error {
	return domain.InternalError{Msg: op, Err: err}
}
