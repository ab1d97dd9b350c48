package pricing

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"colectivo/internal/domain"
)

// Hour is a parsed hour of day. Known is false when nothing could be parsed.
type Hour struct {
	Value int  `json:"value"`
	Known bool `json:"known"`
}

// UnknownHour is the zero value returned for unparseable input.
var UnknownHour = Hour{}

var (
	leadingHourRe  = regexp.MustCompile(`^(\d{1,2})`)
	dottedClockRe  = regexp.MustCompile(`(\d)\.(\d)`)
	markerReplacer = strings.NewReplacer(
		"a.m.", "am", "a. m.", "am", "a.m", "am",
		"p.m.", "pm", "p. m.", "pm", "p.m", "pm",
	)
	layouts12h = []string{"3:04:05pm", "3:04pm", "3pm"}
	layouts24h = []string{"15:04:05", "15:04"}
)

// ParseHour turns a free-form time string into an hour of day.
// It never fails: anything it cannot read confidently comes back unknown.
func ParseHour(raw string) Hour {
	h, err := parseHour(raw)
	if err != nil {
		return UnknownHour
	}
	return Hour{Value: h, Known: true}
}

func parseHour(raw string) (int, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return 0, domain.ErrAmbiguousTimeFormat
	}
	s = markerReplacer.Replace(s)
	// "7.30" is a clock, not 730.
	s = dottedClockRe.ReplaceAllString(s, "${1}:${2}")
	s = strings.NewReplacer(".", "", " ", "", "\t", "").Replace(s)

	marker := ""
	switch {
	case strings.Contains(s, "am"):
		marker = "am"
	case strings.Contains(s, "pm"):
		marker = "pm"
	}
	digits := strings.NewReplacer("am", "", "pm", "").Replace(s)

	candidate := -1
	if m := leadingHourRe.FindStringSubmatch(digits); m != nil {
		candidate, _ = strconv.Atoi(m[1])
	}

	// A marker next to an hour above 12 is noise: "17:33:00 am" is 17h.
	if marker != "" && candidate > 12 {
		if h, ok := tryLayouts(layouts24h, digits); ok {
			return h, nil
		}
	} else if marker != "" {
		if h, ok := tryLayouts(layouts12h, digits+marker); ok {
			return h, nil
		}
	} else if h, ok := tryLayouts(layouts24h, digits); ok {
		return h, nil
	}

	if candidate >= 0 && candidate <= 23 {
		return candidate, nil
	}
	return 0, domain.ErrAmbiguousTimeFormat
}

func tryLayouts(layouts []string, value string) (int, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Hour(), true
		}
	}
	return 0, false
}
