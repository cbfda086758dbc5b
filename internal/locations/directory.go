// Package locations serves lookups over the static place table.
package locations

import (
	"sort"
	"strings"
)

const (
	// MaxStateResults caps a filtered state search.
	MaxStateResults = 20
	// DefaultPlaceResults and MaxPlaceResults bound SearchPlaces.
	DefaultPlaceResults = 20
	MaxPlaceResults     = 50
)

// Place is one row of the location table.
type Place struct {
	City  string `json:"city"`
	State string `json:"state"`
}

// StateOption pairs a state with itself as display label and value.
type StateOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Directory answers searches over an immutable set of places.
type Directory struct {
	places []Place
}

// Default is the directory over the built-in table.
var Default = NewDirectory(places)

// NewDirectory copies in so later changes to the caller's slice do not leak in.
func NewDirectory(in []Place) *Directory {
	cp := make([]Place, len(in))
	copy(cp, in)
	return &Directory{places: cp}
}

// States returns the distinct state names, sorted ascending.
func (d *Directory) States() []string {
	seen := make(map[string]struct{}, len(d.places))
	out := make([]string, 0, len(d.places))
	for _, p := range d.places {
		s := strings.TrimSpace(p.State)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// SearchStates matches query case-insensitively as a substring of each state.
// A blank query returns every state; otherwise at most MaxStateResults.
func (d *Directory) SearchStates(query string) []StateOption {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []StateOption{}
	for _, s := range d.States() {
		if q != "" && !strings.Contains(strings.ToLower(s), q) {
			continue
		}
		out = append(out, StateOption{Name: s, Value: s})
		if q != "" && len(out) == MaxStateResults {
			break
		}
	}
	return out
}

// SearchPlaces matches query against city or state, sorted by city then state.
func (d *Directory) SearchPlaces(query string, limit int) []Place {
	if limit <= 0 {
		limit = DefaultPlaceResults
	}
	if limit > MaxPlaceResults {
		limit = MaxPlaceResults
	}
	q := strings.ToLower(strings.TrimSpace(query))

	out := []Place{}
	for _, p := range d.places {
		if q == "" || strings.Contains(strings.ToLower(p.City), q) || strings.Contains(strings.ToLower(p.State), q) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].City != out[j].City {
			return out[i].City < out[j].City
		}
		return out[i].State < out[j].State
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
