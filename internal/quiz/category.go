package quiz

import (
	"fmt"
	"strings"

	"github.com/gokatarajesh/flag-quiz/internal/country"
	"github.com/gokatarajesh/flag-quiz/internal/flags"
)

// CategoryKind is the attribute a memory drill filters on.
type CategoryKind string

const (
	CategoryRegion CategoryKind = "region"
	CategoryMotif  CategoryKind = "motif"
	CategoryLayout CategoryKind = "layout"
	CategoryColor  CategoryKind = "color"
	CategoryGroup  CategoryKind = "group"
)

// NoMotif selects flags whose motif data is known to be empty.
const NoMotif = "none"

// Category restricts a memory drill to a subset of the pool.
type Category struct {
	Kind  CategoryKind `json:"kind"`
	Value string       `json:"value"`
}

func (c Category) String() string {
	return string(c.Kind) + ":" + c.Value
}

func (c Category) normalized() (Category, error) {
	c.Kind = CategoryKind(strings.ToLower(strings.TrimSpace(string(c.Kind))))
	c.Value = strings.TrimSpace(c.Value)
	if c.Value == "" {
		return c, fmt.Errorf("%w: empty value", ErrInvalidCategory)
	}
	switch c.Kind {
	case CategoryRegion:
		r, ok := country.ParseRegion(c.Value)
		if !ok {
			return c, fmt.Errorf("%w: unknown region %q", ErrInvalidCategory, c.Value)
		}
		c.Value = string(r)
	case CategoryMotif, CategoryLayout, CategoryColor, CategoryGroup:
	default:
		return c, fmt.Errorf("%w: unknown kind %q", ErrInvalidCategory, c.Kind)
	}
	return c, nil
}

// Contains reports whether e belongs to the category. Tag categories need
// attribute data; countries missing from the index never match them.
func (c Category) Contains(e country.Country, index flags.Index) bool {
	if c.Kind == CategoryRegion {
		return string(e.Region) == c.Value
	}
	attrs, ok := index.Lookup(e.Code)
	if !ok {
		return false
	}
	switch c.Kind {
	case CategoryMotif:
		if c.Value == NoMotif {
			return attrs.HasMotifData() && len(attrs.Motif) == 0
		}
		return attrs.Motif.Contains(c.Value)
	case CategoryLayout:
		return attrs.Layout.Contains(c.Value)
	case CategoryColor:
		return attrs.Color.Contains(c.Value)
	case CategoryGroup:
		return attrs.Group.Contains(c.Value)
	}
	return false
}

// Members filters pool down to the category, preserving order.
func (c Category) Members(pool []country.Country, index flags.Index) []country.Country {
	out := make([]country.Country, 0, len(pool))
	for _, e := range pool {
		if c.Contains(e, index) {
			out = append(out, e)
		}
	}
	return out
}
