package pricing

import (
	"strings"

	"colectivo/internal/domain/models"
)

// ServiceMatch names the stage that resolved a destination.
type ServiceMatch string

const (
	MatchSlug    ServiceMatch = "slug"
	MatchName    ServiceMatch = "name"
	MatchDefault ServiceMatch = "default"
	MatchNone    ServiceMatch = "none"
)

// Matcher is one resolution stage: a pure function over the normalized
// destination and a service.
type Matcher struct {
	Stage ServiceMatch
	Match func(destination string, svc models.Service) bool
}

func substringOf(key func(models.Service) string) func(string, models.Service) bool {
	return func(destination string, svc models.Service) bool {
		k := strings.TrimSpace(Normalize(key(svc)))
		return k != "" && strings.Contains(destination, k)
	}
}

// DefaultMatchers is the resolution order: slug beats name.
var DefaultMatchers = []Matcher{
	{Stage: MatchSlug, Match: substringOf(func(s models.Service) string { return s.Slug })},
	{Stage: MatchName, Match: substringOf(func(s models.Service) string { return s.Name })},
}

// Resolution is the outcome of resolving a destination.
type Resolution struct {
	Service models.Service
	Stage   ServiceMatch
}

// Found reports whether any service was resolved.
func (r Resolution) Found() bool {
	return r.Stage != MatchNone
}

// Resolve maps free-text destination to a service. Each matcher scans the
// services in the given order and the first hit wins. When nothing matches
// the first service is returned so intake never blocks; an empty list is the
// only way to get MatchNone.
func Resolve(destination string, services []models.Service) Resolution {
	return ResolveWith(DefaultMatchers, destination, services)
}

// ResolveWith runs an explicit matcher chain.
func ResolveWith(matchers []Matcher, destination string, services []models.Service) Resolution {
	active := make([]models.Service, 0, len(services))
	for _, s := range services {
		if s.Active {
			active = append(active, s)
		}
	}
	if len(active) == 0 {
		return Resolution{Stage: MatchNone}
	}

	dest := Normalize(destination)
	for _, m := range matchers {
		for _, s := range active {
			if m.Match(dest, s) {
				return Resolution{Service: s, Stage: m.Stage}
			}
		}
	}
	return Resolution{Service: active[0], Stage: MatchDefault}
}
