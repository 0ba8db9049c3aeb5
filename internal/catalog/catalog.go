// Package catalog defines the fixed set of travel destinations.
//
// The catalog is closed: destinations are registered at build time, validated
// once, and never mutated afterwards. Iteration order is registration order
// and is part of the contract (the recommendation tie-break depends on it).
package catalog

import (
	"fmt"
)

// Destination is a single bookable time-travel destination.
type Destination struct {
	Slug            string   `json:"slug"`
	Name            string   `json:"name"`
	Period          string   `json:"period"`
	Location        string   `json:"location"`
	ShortPitch      string   `json:"shortPitch"`
	LongDescription string   `json:"longDescription"`
	Activities      []string `json:"activities"`
	Warnings        []string `json:"warnings"`
	Price           string   `json:"price"`
	DurationOptions []string `json:"durationOptions"`
	Tags            []string `json:"tags"`
}

// Catalog is an immutable ordered collection of destinations.
type Catalog struct {
	ordered []Destination
	bySlug  map[string]int
}

// New builds a catalog from the given destinations, preserving order.
func New(destinations []Destination) (*Catalog, error) {
	if len(destinations) == 0 {
		return nil, fmt.Errorf("catalog cannot be empty")
	}

	bySlug := make(map[string]int, len(destinations))
	for i, d := range destinations {
		if d.Slug == "" {
			return nil, fmt.Errorf("destination %d has an empty slug", i)
		}
		if _, exists := bySlug[d.Slug]; exists {
			return nil, fmt.Errorf("duplicate destination slug %q", d.Slug)
		}
		bySlug[d.Slug] = i
	}

	return &Catalog{ordered: destinations, bySlug: bySlug}, nil
}

// BySlug returns the destination with the given slug.
func (c *Catalog) BySlug(slug string) (Destination, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Destination{}, false
	}
	return c.ordered[i], true
}

// All returns every destination in catalog order.
func (c *Catalog) All() []Destination {
	out := make([]Destination, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Slugs returns every slug in catalog order.
func (c *Catalog) Slugs() []string {
	out := make([]string, len(c.ordered))
	for i, d := range c.ordered {
		out[i] = d.Slug
	}
	return out
}

// Len returns the number of destinations.
func (c *Catalog) Len() int {
	return len(c.ordered)
}

// Default returns the agency's current catalog.
func Default() *Catalog {
	c, err := New(defaultDestinations)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in catalog: %v", err))
	}
	return c
}
