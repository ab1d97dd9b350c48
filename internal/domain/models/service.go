package models

// Period labels used by price tiers.
const (
	PeriodSameDay     = "same_day"
	PeriodWeekend     = "weekend"
	PeriodLongWeekend = "long_weekend"
	PeriodMorning     = "morning"
	PeriodAfternoon   = "afternoon"
	PeriodFullDay     = "full_day"
)

// Period modes select which signal classifies a trip for a service.
const (
	PeriodModeDuration = "duration"
	PeriodModeHour     = "hour"
)

// Service is a sellable destination/route with its own price table.
type Service struct {
	ID         int64  `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	Slug       string `db:"slug" json:"slug"`
	Active     bool   `db:"active" json:"active"`
	PeriodMode string `db:"period_mode" json:"period_mode"`
}

// UsesHourPeriods reports whether the service prices by departure hour.
// Anything other than an explicit "hour" mode falls back to duration.
func (s Service) UsesHourPeriods() bool {
	return s.PeriodMode == PeriodModeHour
}

// PriceTier is one (service, capacity, period) quote.
type PriceTier struct {
	ID            int64    `db:"id" json:"id"`
	ServiceID     int64    `db:"service_id" json:"service_id"`
	Capacity      int      `db:"capacidad" json:"capacidad"`
	Period        string   `db:"period" json:"period"`
	PriceNormal   float64  `db:"price_normal" json:"price_normal"`
	PriceDiscount *float64 `db:"price_discount" json:"price_discount"`
}

// PriceTierInput is the payload for creating or editing a tier.
// Nil fields keep the stored value on update.
type PriceTierInput struct {
	ServiceID     *int64   `json:"service_id"`
	Capacity      *int     `json:"capacidad"`
	Period        *string  `json:"period"`
	PriceNormal   *float64 `json:"price_normal"`
	PriceDiscount *float64 `json:"price_discount"`
}

// ServiceInput creates a service. Slug is immutable afterwards.
type ServiceInput struct {
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	PeriodMode string `json:"period_mode"`
}
