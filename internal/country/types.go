package country

import "strings"

// Region is the geographic region classifier of a country.
type Region string

// Supported regions.
const (
	RegionAfrica    Region = "Africa"
	RegionAmericas  Region = "Americas"
	RegionAsia      Region = "Asia"
	RegionEurope    Region = "Europe"
	RegionOceania   Region = "Oceania"
	RegionAntarctic Region = "Antarctic"
)

var regions = []Region{RegionAfrica, RegionAmericas, RegionAsia, RegionEurope, RegionOceania, RegionAntarctic}

// ParseRegion matches a region name case-insensitively.
func ParseRegion(s string) (Region, bool) {
	s = strings.TrimSpace(s)
	for _, r := range regions {
		if strings.EqualFold(string(r), s) {
			return r, true
		}
	}
	return "", false
}

// Name is one common/official display name pair.
type Name struct {
	Common   string `json:"common"`
	Official string `json:"official"`
}

// Names holds the default name and its localized variants keyed by language code.
type Names struct {
	Name
	Translations map[string]Name `json:"translations,omitempty"`
}

// Localized returns the translation for locale, if any.
func (n Names) Localized(locale string) (Name, bool) {
	if locale == "" || n.Translations == nil {
		return Name{}, false
	}
	v, ok := n.Translations[locale]
	return v, ok
}

// LatLng is a geographic point.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Flag references the flag image assets.
type Flag struct {
	PNG string `json:"png,omitempty"`
	SVG string `json:"svg,omitempty"`
}

// Country is an immutable quiz entity. Identity is Code (ISO 3166-1 alpha-3).
type Country struct {
	Code   string  `json:"code"`
	Names  Names   `json:"names"`
	LatLng LatLng  `json:"latlng"`
	Region Region  `json:"region"`
	Area   float64 `json:"area"`
	Flag   Flag    `json:"flag"`
}

// Dedupe returns a fresh slice keeping the first occurrence of every code.
func Dedupe(in []Country) []Country {
	seen := make(map[string]struct{}, len(in))
	out := make([]Country, 0, len(in))
	for _, c := range in {
		if _, ok := seen[c.Code]; ok {
			continue
		}
		seen[c.Code] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Codes lists the identifiers of the given countries in order.
func Codes(in []Country) []string {
	out := make([]string, len(in))
	for i, c := range in {
		out[i] = c.Code
	}
	return out
}
