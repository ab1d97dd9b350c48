package pricing

import "colectivo/internal/domain/models"

// PeriodByDuration classifies multi-day trips by elapsed hours.
func PeriodByDuration(hours float64) string {
	switch {
	case hours <= 24:
		return models.PeriodSameDay
	case hours <= 48:
		return models.PeriodWeekend
	default:
		return models.PeriodLongWeekend
	}
}

// PeriodByHour classifies same-day trips by departure hour.
// Unknown hours land in full_day.
func PeriodByHour(h Hour) string {
	if !h.Known {
		return models.PeriodFullDay
	}
	switch {
	case h.Value >= 9 && h.Value < 13:
		return models.PeriodMorning
	case h.Value >= 13 && h.Value < 20:
		return models.PeriodAfternoon
	default:
		return models.PeriodFullDay
	}
}

// ClassifyPeriod picks the classifier configured on the service.
func ClassifyPeriod(svc models.Service, durationHours float64, departure Hour) string {
	if svc.UsesHourPeriods() {
		return PeriodByHour(departure)
	}
	return PeriodByDuration(durationHours)
}
