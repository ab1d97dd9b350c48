package repositories

import (
	"context"
	"database/sql"
	"errors"

	"colectivo/internal/domain"
	"colectivo/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

type OrderRepository struct {
	DB *sqlx.DB
}

const orderColumns = `
	id, service_id,
	COALESCE(nombre,'') AS nombre,
	COALESCE(fecha,'') AS fecha,
	COALESCE(fecha_regreso,'') AS fecha_regreso,
	COALESCE(dir_salida,'') AS dir_salida,
	COALESCE(dir_destino,'') AS dir_destino,
	COALESCE(hor_ida,'') AS hor_ida,
	COALESCE(hor_regreso,'') AS hor_regreso,
	COALESCE(duracion,0) AS duracion,
	COALESCE(personas,0) AS personas,
	COALESCE(capacidadu,0) AS capacidadu,
	COALESCE(subtotal,0) AS subtotal,
	COALESCE(descuento,0) AS descuento,
	COALESCE(total,0) AS total,
	COALESCE(abonado,0) AS abonado,
	COALESCE(fecha_abono,'') AS fecha_abono,
	COALESCE(liquidar,0) AS liquidar,
	COALESCE(price_match,'') AS price_match,
	COALESCE(texto_extra,'') AS texto_extra,
	created_at`

func (r OrderRepository) Create(ctx context.Context, o models.Order) (int64, error) {
	res, err := r.DB.NamedExecContext(ctx, `
		INSERT INTO orders (
			service_id, nombre, fecha, fecha_regreso, dir_salida, dir_destino, hor_ida, hor_regreso,
			duracion, personas, capacidadu, subtotal, descuento, total, abonado,
			fecha_abono, liquidar, price_match, texto_extra, created_at
		) VALUES (
			:service_id, :nombre, :fecha, :fecha_regreso, :dir_salida, :dir_destino, :hor_ida, :hor_regreso,
			:duracion, :personas, :capacidadu, :subtotal, :descuento, :total, :abonado,
			:fecha_abono, :liquidar, :price_match, :texto_extra, :created_at
		)`, o)
	if err != nil {
		return 0, storeError("insert order", err)
	}
	return res.LastInsertId()
}

func (r OrderRepository) Get(ctx context.Context, id int64) (models.Order, error) {
	return getOrder(ctx, r.DB, `SELECT `+orderColumns+` FROM orders WHERE id = ? LIMIT 1`, id)
}

// List returns orders newest first.
func (r OrderRepository) List(ctx context.Context) ([]models.Order, error) {
	out := []models.Order{}
	if err := r.DB.SelectContext(ctx, &out, `SELECT `+orderColumns+` FROM orders ORDER BY id DESC`); err != nil {
		return nil, storeError("list orders", err)
	}
	return out, nil
}

func (r OrderRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return storeError("delete order", err)
	}
	return requireAffected(res, "order")
}

// Mutate is a locked read-modify-write of one order. The row is held with
// SELECT ... FOR UPDATE until fn returns and the new state is written, so
// concurrent edits of the same order are serialized. When fn fails nothing
// is written.
func (r OrderRepository) Mutate(ctx context.Context, id int64, fn func(*models.Order) error) (models.Order, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return models.Order{}, storeError("begin tx", err)
	}
	defer func() { _ = tx.Rollback() }()

	o, err := getOrder(ctx, tx, `SELECT `+orderColumns+` FROM orders WHERE id = ? FOR UPDATE`, id)
	if err != nil {
		return models.Order{}, err
	}
	if err := fn(&o); err != nil {
		return models.Order{}, err
	}

	query, args, err := sqlx.Named(`
		UPDATE orders SET
			service_id = :service_id, nombre = :nombre, fecha = :fecha, fecha_regreso = :fecha_regreso,
			dir_salida = :dir_salida, dir_destino = :dir_destino,
			hor_ida = :hor_ida, hor_regreso = :hor_regreso,
			duracion = :duracion, personas = :personas, capacidadu = :capacidadu,
			subtotal = :subtotal, descuento = :descuento, total = :total,
			abonado = :abonado, fecha_abono = :fecha_abono, liquidar = :liquidar,
			price_match = :price_match, texto_extra = :texto_extra
		WHERE id = :id`, o)
	if err != nil {
		return models.Order{}, storeError("bind order", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return models.Order{}, storeError("update order", err)
	}
	if err := tx.Commit(); err != nil {
		return models.Order{}, storeError("commit order", err)
	}
	return o, nil
}

func getOrder(ctx context.Context, q sqlx.QueryerContext, query string, id int64) (models.Order, error) {
	var o models.Order
	err := sqlx.GetContext(ctx, q, &o, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, domain.NotFoundError{Resource: "order", Err: err}
	}
	if err != nil {
		return models.Order{}, storeError("get order", err)
	}
	return o, nil
}
