package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"colectivo/internal/domain"
	"colectivo/internal/domain/models"
	"colectivo/internal/metrics"
	"colectivo/internal/pricing"
	"colectivo/internal/utils"
)

// Order sources, used as a metrics label.
const (
	SourceIntake = "intake"
	SourceStaff  = "staff"
)

// OrderService owns the order lifecycle. Every mutation that touches
// subtotal, discount or paid re-derives total and balance due.
type OrderService struct {
	Orders    OrderStore
	Quotes    QuoteService
	Metrics   *metrics.Registry
	RequestID string
	Now       func() time.Time
}

func (s OrderService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create prices and stores a new order. Pricing never blocks creation:
// an unmatched destination or a missing price row still yields an order,
// possibly at zero. Only an empty catalog is fatal.
func (s OrderService) Create(ctx context.Context, req models.IntakeRequest, source string) (models.Order, pricing.Quote, error) {
	if req.Personas < 0 {
		return models.Order{}, pricing.Quote{}, domain.ValidationError{Field: "personas", Msg: "must not be negative"}
	}

	duration := 0.0
	if req.Duracion != nil && *req.Duracion > 0 {
		duration = *req.Duracion
	} else if h, ok := utils.TripHours(req.Fecha, req.FechaRegreso, req.HorIda, req.HorRegreso); ok {
		duration = h
	}

	q, err := s.Quotes.Quote(ctx, pricing.QuoteRequest{
		Destination:   req.DirDestino,
		Passengers:    req.Personas,
		DurationHours: duration,
		Departure:     req.HorIda,
	})
	if err != nil {
		return models.Order{}, pricing.Quote{}, err
	}

	serviceID := q.Service.ID
	o := models.Order{
		ServiceID:    &serviceID,
		Nombre:       utils.NormalizeSpace(req.Nombre),
		Fecha:        strings.TrimSpace(req.Fecha),
		FechaRegreso: strings.TrimSpace(req.FechaRegreso),
		DirSalida:    strings.TrimSpace(req.DirSalida),
		DirDestino:   strings.TrimSpace(req.DirDestino),
		HorIda:       strings.TrimSpace(req.HorIda),
		HorRegreso:   strings.TrimSpace(req.HorRegreso),
		Duracion:     roundHours(duration),
		Personas:     req.Personas,
		Capacidadu:   q.Capacity,
		Subtotal:     q.Price,
		PriceMatch:   string(q.PriceMatch),
		CreatedAt:    s.now().UTC(),
	}
	applyTotals(&o)

	id, err := s.Orders.Create(ctx, o)
	if err != nil {
		return models.Order{}, pricing.Quote{}, err
	}
	o.ID = id
	s.Metrics.ObserveOrder(source)
	utils.LogEvent(s.RequestID, "order", "create", fmt.Sprintf("order_id=%d source=%s outcome=%s", id, source, q.Outcome))
	return o, q, nil
}

func (s OrderService) Get(ctx context.Context, id int64) (models.Order, error) {
	return s.Orders.Get(ctx, id)
}

func (s OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.Orders.List(ctx)
}

func (s OrderService) Delete(ctx context.Context, id int64) error {
	if err := s.Orders.Delete(ctx, id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "order", "delete", fmt.Sprintf("order_id=%d", id))
	return nil
}

// Update applies a staff edit. Changing passengers, destination, duration
// or the schedule re-runs the quote unless the same edit sets capacity or
// subtotal by hand. A discount already applied follows the new subtotal.
func (s OrderService) Update(ctx context.Context, id int64, in models.OrderUpdate) (models.Order, error) {
	if err := validateUpdate(in); err != nil {
		return models.Order{}, err
	}

	o, err := s.Orders.Mutate(ctx, id, func(o *models.Order) error {
		reprice := false
		setString(&o.Nombre, in.Nombre)
		setString(&o.DirSalida, in.DirSalida)
		setString(&o.FechaAbono, in.FechaAbono)

		schedule := in.Fecha != nil || in.FechaRegreso != nil || in.HorIda != nil || in.HorRegreso != nil
		setString(&o.Fecha, in.Fecha)
		setString(&o.FechaRegreso, in.FechaRegreso)
		setString(&o.HorIda, in.HorIda)
		setString(&o.HorRegreso, in.HorRegreso)

		if in.DirDestino != nil {
			o.DirDestino = strings.TrimSpace(*in.DirDestino)
			reprice = true
		}
		if in.Personas != nil {
			o.Personas = *in.Personas
			reprice = true
		}
		switch {
		case in.Duracion != nil:
			o.Duracion = *in.Duracion
			reprice = true
		case schedule:
			// hour-mode services price by departure, so re-price even when
			// no duration can be derived.
			if h, ok := utils.TripHours(o.Fecha, o.FechaRegreso, o.HorIda, o.HorRegreso); ok {
				o.Duracion = roundHours(h)
			}
			reprice = true
		}

		if reprice && in.Capacidadu == nil && in.Subtotal == nil {
			discounted := o.Descuento != 0
			q, err := s.Quotes.Quote(ctx, pricing.QuoteRequest{
				Destination:   o.DirDestino,
				Passengers:    o.Personas,
				DurationHours: o.Duracion,
				Departure:     o.HorIda,
			})
			if err != nil {
				return err
			}
			serviceID := q.Service.ID
			o.ServiceID = &serviceID
			o.Capacidadu = q.Capacity
			o.Subtotal = q.Price
			o.PriceMatch = string(q.PriceMatch)
			if discounted {
				o.Descuento = pricing.ToggleDiscount(0, o.Subtotal)
			}
		}

		if in.Capacidadu != nil {
			o.Capacidadu = *in.Capacidadu
		}
		if in.Subtotal != nil {
			o.Subtotal = *in.Subtotal
			o.PriceMatch = "manual"
		}
		if in.Descuento != nil {
			o.Descuento = *in.Descuento
		}
		if in.Abonado != nil {
			o.Abonado = *in.Abonado
		}
		applyTotals(o)
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}
	utils.LogEvent(s.RequestID, "order", "update", fmt.Sprintf("order_id=%d", id))
	return o, nil
}

// ToggleDiscount flips between no discount and the fixed 10%.
func (s OrderService) ToggleDiscount(ctx context.Context, id int64) (models.Order, error) {
	o, err := s.Orders.Mutate(ctx, id, func(o *models.Order) error {
		o.Descuento = pricing.ToggleDiscount(o.Descuento, o.Subtotal)
		applyTotals(o)
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}
	utils.LogEvent(s.RequestID, "order", "toggle_discount", fmt.Sprintf("order_id=%d descuento=%.2f", id, o.Descuento))
	return o, nil
}

// AddPayment adds to the cumulative paid amount. Non-positive amounts are
// rejected before the order is read.
func (s OrderService) AddPayment(ctx context.Context, id int64, in models.PaymentInput) (models.Order, error) {
	if in.Amount <= 0 {
		return models.Order{}, domain.ValidationError{Field: "amount", Err: domain.ErrInvalidPaymentAmount}
	}
	o, err := s.Orders.Mutate(ctx, id, func(o *models.Order) error {
		o.Abonado += in.Amount
		o.FechaAbono = strings.TrimSpace(in.FechaAbono)
		if o.FechaAbono == "" {
			o.FechaAbono = utils.FormatDate(s.now())
		}
		applyTotals(o)
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}
	s.Metrics.ObservePayment(in.Amount)
	if o.Overpaid() {
		utils.LogEvent(s.RequestID, "order", "add_payment", fmt.Sprintf("order_id=%d overpaid by %.2f", id, -o.Liquidar))
	} else {
		utils.LogEvent(s.RequestID, "order", "add_payment", fmt.Sprintf("order_id=%d amount=%.2f", id, in.Amount))
	}
	return o, nil
}

func (s OrderService) ResetPayment(ctx context.Context, id int64) (models.Order, error) {
	o, err := s.Orders.Mutate(ctx, id, func(o *models.Order) error {
		o.Abonado = 0
		o.FechaAbono = ""
		applyTotals(o)
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}
	utils.LogEvent(s.RequestID, "order", "reset_payment", fmt.Sprintf("order_id=%d", id))
	return o, nil
}

func (s OrderService) ExtraText(ctx context.Context, id int64) (string, error) {
	o, err := s.Orders.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return o.TextoExtra, nil
}

// SetExtraText stores the free text printed on the voucher's extra page.
// An empty string clears it.
func (s OrderService) SetExtraText(ctx context.Context, id int64, text string) (models.Order, error) {
	return s.Orders.Mutate(ctx, id, func(o *models.Order) error {
		o.TextoExtra = strings.TrimSpace(text)
		return nil
	})
}

func applyTotals(o *models.Order) {
	t := pricing.Recompute(o.Subtotal, o.Descuento, o.Abonado)
	o.Total = t.Total
	o.Liquidar = t.BalanceDue
}

func validateUpdate(in models.OrderUpdate) error {
	nonNegative := []struct {
		field string
		v     *float64
	}{
		{"duracion", in.Duracion},
		{"subtotal", in.Subtotal},
		{"descuento", in.Descuento},
		{"abonado", in.Abonado},
	}
	for _, n := range nonNegative {
		if n.v != nil && *n.v < 0 {
			return domain.ValidationError{Field: n.field, Msg: "must not be negative"}
		}
	}
	if in.Personas != nil && *in.Personas < 0 {
		return domain.ValidationError{Field: "personas", Msg: "must not be negative"}
	}
	if in.Capacidadu != nil && *in.Capacidadu <= 0 {
		return domain.ValidationError{Field: "capacidadu", Msg: "must be positive"}
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func roundHours(h float64) float64 {
	return float64(int64(h*100+0.5)) / 100
}
