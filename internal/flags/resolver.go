package flags

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/gokatarajesh/flag-quiz/internal/country"
)

// Resolver binds name-keyed flag attributes to country codes.
type Resolver struct {
	locale string
}

// NewResolver creates a resolver preferring names in the given locale
// (a restcountries translation key such as "fra").
func NewResolver(locale string) *Resolver {
	return &Resolver{locale: locale}
}

// Resolve builds an Index from raw attributes keyed by display name. Exact
// name matches are tried for every candidate name before any loose match.
func (r *Resolver) Resolve(entities []country.Country, raw map[string]Attributes) Index {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	exact := make(map[string]Attributes, len(raw))
	loose := make(map[string]Attributes, len(raw))
	for _, k := range keys {
		name := normalizeName(k)
		if name == "" {
			continue
		}
		if _, dup := exact[name]; !dup {
			exact[name] = raw[k]
		}
		lk := looseKey(name)
		if _, dup := loose[lk]; !dup && lk != "" {
			loose[lk] = raw[k]
		}
	}

	index := make(Index, len(entities))
	for _, e := range entities {
		if _, done := index[e.Code]; done {
			continue
		}
		names := r.candidateNames(e)
		if attrs, ok := lookup(exact, names, func(s string) string { return s }); ok {
			index[e.Code] = attrs
			continue
		}
		if attrs, ok := lookup(loose, names, looseKey); ok {
			index[e.Code] = attrs
		}
	}
	return index
}

// candidateNames lists the entity's display names in match priority order.
func (r *Resolver) candidateNames(e country.Country) []string {
	var ordered []string
	if loc, ok := e.Names.Localized(r.locale); ok {
		ordered = append(ordered, loc.Common, loc.Official)
	}
	ordered = append(ordered, e.Names.Common, e.Names.Official)

	seen := make(map[string]struct{}, len(ordered))
	out := ordered[:0]
	for _, n := range ordered {
		n = normalizeName(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

func lookup(idx map[string]Attributes, names []string, key func(string) string) (Attributes, bool) {
	for _, n := range names {
		if attrs, ok := idx[key(n)]; ok {
			return attrs, true
		}
	}
	return Attributes{}, false
}

func normalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func looseKey(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || isInterpunct(r) {
			return -1
		}
		return r
	}, s)
}

func isInterpunct(r rune) bool {
	switch r {
	case '\u00b7', '\u2027', '\u2219', '\u30fb', '\uff65':
		return true
	}
	return false
}
