package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
)

// Tables are created in dependency order.
var tables = []struct {
	name string
	ddl  string
}{
	{"services", `CREATE TABLE services (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(120) NOT NULL,
		slug VARCHAR(120) NOT NULL UNIQUE,
		active TINYINT(1) NOT NULL DEFAULT 1,
		period_mode VARCHAR(16) NOT NULL DEFAULT 'duration'
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"service_prices", `CREATE TABLE service_prices (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		service_id BIGINT NOT NULL,
		capacidad INT NOT NULL,
		period VARCHAR(32) NOT NULL,
		price_normal DOUBLE NOT NULL DEFAULT 0,
		price_discount DOUBLE NULL,
		KEY idx_service_prices_lookup (service_id, capacidad, period),
		CONSTRAINT fk_service_prices_service FOREIGN KEY (service_id) REFERENCES services(id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"orders", `CREATE TABLE orders (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		service_id BIGINT NULL,
		nombre VARCHAR(255) NOT NULL DEFAULT '',
		fecha VARCHAR(64) NOT NULL DEFAULT '',
		fecha_regreso VARCHAR(64) NOT NULL DEFAULT '',
		dir_salida VARCHAR(255) NOT NULL DEFAULT '',
		dir_destino VARCHAR(255) NOT NULL DEFAULT '',
		hor_ida VARCHAR(32) NOT NULL DEFAULT '',
		hor_regreso VARCHAR(32) NOT NULL DEFAULT '',
		duracion DOUBLE NOT NULL DEFAULT 0,
		personas INT NOT NULL DEFAULT 0,
		capacidadu INT NOT NULL DEFAULT 0,
		subtotal DOUBLE NOT NULL DEFAULT 0,
		descuento DOUBLE NOT NULL DEFAULT 0,
		total DOUBLE NOT NULL DEFAULT 0,
		abonado DOUBLE NOT NULL DEFAULT 0,
		fecha_abono VARCHAR(64) NOT NULL DEFAULT '',
		liquidar DOUBLE NOT NULL DEFAULT 0,
		price_match VARCHAR(16) NOT NULL DEFAULT '',
		texto_extra TEXT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		KEY idx_orders_service (service_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"users", `CREATE TABLE users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(64) NOT NULL UNIQUE,
		email VARCHAR(255) NOT NULL DEFAULT '',
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(16) NOT NULL DEFAULT 'staff',
		status VARCHAR(16) NOT NULL DEFAULT 'active'
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
}

// HasTable checks information_schema for a table in the current database.
func HasTable(ctx context.Context, q sqlx.QueryerContext, table string) (bool, error) {
	var name string
	err := sqlx.GetContext(ctx, q, &name, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return name != "", nil
}

// EnsureSchema creates missing tables. Existing tables are never altered.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, t := range tables {
		ok, err := HasTable(ctx, db, t.name)
		if err != nil {
			return fmt.Errorf("check table %s: %w", t.name, err)
		}
		if ok {
			continue
		}
		if _, err := db.ExecContext(ctx, t.ddl); err != nil {
			return fmt.Errorf("create table %s: %w", t.name, err)
		}
		log.WithField("table", t.name).Info("created table")
	}
	return nil
}
