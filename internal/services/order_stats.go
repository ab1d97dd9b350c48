package services

import (
	"context"
	"math"
	"time"

	"colectivo/internal/domain/models"
)

type FinanceStats struct {
	TotalFacturado              float64 `json:"total_facturado"`
	TotalAbonado                float64 `json:"total_abonado"`
	TotalPendiente              float64 `json:"total_pendiente"`
	IngresosBrutos              float64 `json:"ingresos_brutos"`
	TotalDescuentos             float64 `json:"total_descuentos"`
	TicketPromedio              float64 `json:"ticket_promedio"`
	PorcentajePromedioDescuento float64 `json:"porcentaje_promedio_descuento"`
}

type OperationStats struct {
	TotalOrdenes       int `json:"total_ordenes"`
	OrdenesSinServicio int `json:"ordenes_sin_servicio"`
	OrdenesPrecioCero  int `json:"ordenes_precio_cero"`
}

type MonthStats struct {
	Ordenes  int     `json:"ordenes"`
	Ingresos float64 `json:"ingresos"`
}

type OrderStats struct {
	Finanzas  FinanceStats   `json:"finanzas"`
	Operacion OperationStats `json:"operacion"`
	MesActual MonthStats     `json:"mes_actual"`
}

// Stats aggregates the dashboard figures over every stored order.
func (s OrderService) Stats(ctx context.Context) (OrderStats, error) {
	orders, err := s.Orders.List(ctx)
	if err != nil {
		return OrderStats{}, err
	}
	return summarize(orders, s.now()), nil
}

func summarize(orders []models.Order, now time.Time) OrderStats {
	var out OrderStats
	year, month, _ := now.UTC().Date()

	for _, o := range orders {
		out.Operacion.TotalOrdenes++
		if o.ServiceID == nil {
			out.Operacion.OrdenesSinServicio++
		}
		if o.NeedsReview() {
			out.Operacion.OrdenesPrecioCero++
		}

		out.Finanzas.TotalFacturado += o.Total
		out.Finanzas.TotalAbonado += o.Abonado
		out.Finanzas.IngresosBrutos += o.Subtotal
		out.Finanzas.TotalDescuentos += o.Descuento
		if o.Liquidar > 0 {
			out.Finanzas.TotalPendiente += o.Liquidar
		}

		y, m, _ := o.CreatedAt.UTC().Date()
		if y == year && m == month {
			out.MesActual.Ordenes++
			out.MesActual.Ingresos += o.Total
		}
	}

	if n := out.Operacion.TotalOrdenes; n > 0 {
		out.Finanzas.TicketPromedio = out.Finanzas.TotalFacturado / float64(n)
	}
	if out.Finanzas.IngresosBrutos > 0 {
		out.Finanzas.PorcentajePromedioDescuento = out.Finanzas.TotalDescuentos / out.Finanzas.IngresosBrutos * 100
	}

	f := &out.Finanzas
	for _, v := range []*float64{&f.TotalFacturado, &f.TotalAbonado, &f.TotalPendiente, &f.IngresosBrutos, &f.TotalDescuentos, &f.TicketPromedio, &f.PorcentajePromedioDescuento, &out.MesActual.Ingresos} {
		*v = math.Round(*v*100) / 100
	}
	return out
}
