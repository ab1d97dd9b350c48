package repositories

import (
	"context"
	"regexp"
	"testing"

	"colectivo/internal/domain"
	"colectivo/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { raw.Close() })
	return sqlx.NewDb(raw, "mysql"), mock
}

func TestCatalogListActiveServicesOrdered(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM services WHERE active = 1 ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "active", "period_mode"}).
			AddRow(1, "Mazatlán", "mazatlan", true, "duration").
			AddRow(7, "Tapalpa", "tapalpa", true, "hour"))

	got, err := CatalogRepository{DB: db}.ListActiveServices(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "mazatlan", got[0].Slug)
	assert.True(t, got[1].UsesHourPeriods())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogListPriceTiers(t *testing.T) {
	db, mock := newMockDB(t)
	discount := 6750.0
	mock.ExpectQuery(regexp.QuoteMeta("FROM service_prices WHERE service_id = ? ORDER BY id")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "service_id", "capacidad", "period", "price_normal", "price_discount"}).
			AddRow(1, 7, 6, "same_day", 5000.0, nil).
			AddRow(2, 7, 14, "same_day", 7500.0, discount))

	got, err := CatalogRepository{DB: db}.ListPriceTiers(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Nil(t, got[0].PriceDiscount)
	require.NotNil(t, got[1].PriceDiscount)
	assert.Equal(t, discount, *got[1].PriceDiscount)
	assert.Equal(t, 14, got[1].Capacity)
}

func TestCatalogGetServiceNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM services WHERE id = ?")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := CatalogRepository{DB: db}.GetService(context.Background(), 99)
	assert.True(t, domain.IsNotFound(err))
}

func TestCatalogFindPriceTierMissing(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE service_id = ? AND capacidad = ? AND period = ?")).
		WithArgs(int64(1), 6, "weekend").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, ok, err := CatalogRepository{DB: db}.FindPriceTier(context.Background(), 1, 6, "weekend")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCatalogCreatePriceTier(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO service_prices")).
		WithArgs(int64(3), 20, "weekend", 10000.0, nil).
		WillReturnResult(sqlmock.NewResult(42, 1))

	id, err := CatalogRepository{DB: db}.CreatePriceTier(context.Background(), models.PriceTier{
		ServiceID: 3, Capacity: 20, Period: "weekend", PriceNormal: 10000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestCatalogDeletePriceTierMissing(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM service_prices WHERE id = ?")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := CatalogRepository{DB: db}.DeletePriceTier(context.Background(), 5)
	assert.True(t, domain.IsNotFound(err))
}
