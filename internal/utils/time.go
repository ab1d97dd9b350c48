package utils

import (
	"regexp"
	"strings"
	"time"
)

const layoutDate = "2006-01-02"

var dateLayouts = []string{layoutDate, "02/01/2006", "2/1/2006", "02-01-2006"}

var dottedClockRe = regexp.MustCompile(`(\d)\.(\d)`)

var clockLayouts = []string{"15:04:05", "15:04", "3:04:05 PM", "3:04 PM", "3:04PM", "3PM"}

// ParseDate accepts ISO dates and the day-first formats forms tend to send.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// ParseClock reads a wall-clock time and returns it as an offset from midnight.
func ParseClock(s string) (time.Duration, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.NewReplacer("A.M.", "AM", "P.M.", "PM", "A. M.", "AM", "P. M.", "PM").Replace(s)
	s = dottedClockRe.ReplaceAllString(s, "${1}:${2}")
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute + time.Duration(t.Second())*time.Second, true
		}
	}
	return 0, false
}

// TripHours is the elapsed time between departure and return. The return
// date defaults to the departure date; a return clock earlier than the
// departure on the same day rolls over to the next day.
func TripHours(fecha, fechaRegreso, horIda, horRegreso string) (float64, bool) {
	start, err := ParseDate(fecha)
	if err != nil {
		return 0, false
	}
	end := start
	if strings.TrimSpace(fechaRegreso) != "" {
		if end, err = ParseDate(fechaRegreso); err != nil {
			return 0, false
		}
	}
	ida, ok1 := ParseClock(horIda)
	regreso, ok2 := ParseClock(horRegreso)
	if !ok1 || !ok2 {
		if end.After(start) {
			return end.Sub(start).Hours(), true
		}
		return 0, false
	}
	from := start.Add(ida)
	to := end.Add(regreso)
	if !to.After(from) && end.Equal(start) {
		to = to.Add(24 * time.Hour)
	}
	if !to.After(from) {
		return 0, false
	}
	return to.Sub(from).Hours(), true
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}
