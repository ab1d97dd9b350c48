package models

import "time"

// Order is one booked trip. Total and Liquidar are derived fields and are
// always recomputed from Subtotal, Descuento and Abonado.
type Order struct {
	ID           int64     `db:"id" json:"id"`
	ServiceID    *int64    `db:"service_id" json:"service_id"`
	Nombre       string    `db:"nombre" json:"nombre"`
	Fecha        string    `db:"fecha" json:"fecha"`
	FechaRegreso string    `db:"fecha_regreso" json:"fecha_regreso"`
	DirSalida    string    `db:"dir_salida" json:"dir_salida"`
	DirDestino   string    `db:"dir_destino" json:"dir_destino"`
	HorIda       string    `db:"hor_ida" json:"hor_ida"`
	HorRegreso   string    `db:"hor_regreso" json:"hor_regreso"`
	Duracion     float64   `db:"duracion" json:"duracion"`
	Personas     int       `db:"personas" json:"personas"`
	Capacidadu   int       `db:"capacidadu" json:"capacidadu"`
	Subtotal     float64   `db:"subtotal" json:"subtotal"`
	Descuento    float64   `db:"descuento" json:"descuento"`
	Total        float64   `db:"total" json:"total"`
	Abonado      float64   `db:"abonado" json:"abonado"`
	FechaAbono   string    `db:"fecha_abono" json:"fecha_abono"`
	Liquidar     float64   `db:"liquidar" json:"liquidar"`
	PriceMatch   string    `db:"price_match" json:"price_match"`
	TextoExtra   string    `db:"texto_extra" json:"texto_extra"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// NeedsReview flags orders that were priced at zero and need a manual price.
func (o Order) NeedsReview() bool {
	return o.Subtotal == 0
}

// Overpaid reports a negative balance due; it is never clamped.
func (o Order) Overpaid() bool {
	return o.Liquidar < 0
}

// IntakeRequest is the form submission payload from the external integration.
type IntakeRequest struct {
	Nombre       string   `json:"nombre"`
	Fecha        string   `json:"fecha"`
	FechaRegreso string   `json:"fecha_regreso"`
	DirSalida    string   `json:"dir_salida"`
	DirDestino   string   `json:"dir_destino"`
	HorIda       string   `json:"hor_ida"`
	HorRegreso   string   `json:"hor_regreso"`
	Personas     int      `json:"personas"`
	Duracion     *float64 `json:"duracion"`
}

// OrderUpdate is a partial staff edit. Only non-nil fields are applied.
type OrderUpdate struct {
	Nombre       *string  `json:"nombre"`
	Fecha        *string  `json:"fecha"`
	FechaRegreso *string  `json:"fecha_regreso"`
	DirSalida    *string  `json:"dir_salida"`
	DirDestino   *string  `json:"dir_destino"`
	HorIda       *string  `json:"hor_ida"`
	HorRegreso   *string  `json:"hor_regreso"`
	Duracion     *float64 `json:"duracion"`
	Personas     *int     `json:"personas"`
	Capacidadu   *int     `json:"capacidadu"`
	Subtotal     *float64 `json:"subtotal"`
	Descuento    *float64 `json:"descuento"`
	Abonado      *float64 `json:"abonado"`
	FechaAbono   *string  `json:"fecha_abono"`
}

// PaymentInput adds an amount to the cumulative paid total.
type PaymentInput struct {
	Amount     float64 `json:"amount"`
	FechaAbono string  `json:"fecha_abono"`
}
