package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg           *prometheus.Registry
	Quotes        *prometheus.CounterVec
	ServiceMatch  *prometheus.CounterVec
	PriceMatch    *prometheus.CounterVec
	OrdersCreated *prometheus.CounterVec
	Payments      prometheus.Counter
	PaymentAmount prometheus.Counter
	HTTPLatency   *prometheus.HistogramVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	quotes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "colectivo_quotes_total",
		Help: "Quotes computed, by outcome.",
	}, []string{"outcome"})
	serviceMatch := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "colectivo_service_match_total",
		Help: "Destination resolutions, by matching stage.",
	}, []string{"stage"})
	priceMatch := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "colectivo_price_match_total",
		Help: "Price lookups, by fallback step.",
	}, []string{"step"})
	orders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "colectivo_orders_created_total",
		Help: "Orders created, by source.",
	}, []string{"source"})
	payments := prometheus.NewCounter(prometheus.CounterOpts{Name: "colectivo_payments_total"})
	paymentAmount := prometheus.NewCounter(prometheus.CounterOpts{Name: "colectivo_payments_amount_total"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "colectivo_http_request_duration_seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	r.MustRegister(quotes, serviceMatch, priceMatch, orders, payments, paymentAmount, latency)
	return &Registry{
		reg:           r,
		Quotes:        quotes,
		ServiceMatch:  serviceMatch,
		PriceMatch:    priceMatch,
		OrdersCreated: orders,
		Payments:      payments,
		PaymentAmount: paymentAmount,
		HTTPLatency:   latency,
	}
}

// ObserveQuote records the stage tags of one quote.
func (r *Registry) ObserveQuote(outcome, serviceStage, priceStep string) {
	if r == nil {
		return
	}
	r.Quotes.WithLabelValues(outcome).Inc()
	r.ServiceMatch.WithLabelValues(serviceStage).Inc()
	r.PriceMatch.WithLabelValues(priceStep).Inc()
}

func (r *Registry) ObserveOrder(source string) {
	if r == nil {
		return
	}
	r.OrdersCreated.WithLabelValues(source).Inc()
}

func (r *Registry) ObservePayment(amount float64) {
	if r == nil {
		return
	}
	r.Payments.Inc()
	r.PaymentAmount.Add(amount)
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
