package country

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gokatarajesh/flag-quiz/internal/country/external"
)

// Source supplies raw country records (file on disk or the restcountries API).
type Source interface {
	FetchAll(ctx context.Context) ([]external.RestCountry, error)
}

// FileSource reads a restcountries-shaped JSON array from disk.
type FileSource struct {
	Path string
}

func (s FileSource) FetchAll(_ context.Context) ([]external.RestCountry, error) {
	f, err := os.Open(filepath.Clean(s.Path))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return external.DecodeCountries(f)
}

// Catalog is the read-only playable pool, loaded once at startup.
type Catalog struct {
	countries []Country
	byCode    map[string]Country
}

// NewCatalog builds a catalog from already-playable countries, sorted by code.
func NewCatalog(countries []Country) *Catalog {
	pool := Dedupe(countries)
	sort.Slice(pool, func(i, j int) bool { return pool[i].Code < pool[j].Code })
	byCode := make(map[string]Country, len(pool))
	for _, c := range pool {
		byCode[c.Code] = c
	}
	return &Catalog{countries: pool, byCode: byCode}
}

// LoadCatalog fetches raw records, converts them and keeps the playable ones.
func LoadCatalog(ctx context.Context, src Source, excluded []string) (*Catalog, error) {
	raw, err := src.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch countries: %w", err)
	}
	skip := make(map[string]struct{}, len(excluded))
	for _, code := range excluded {
		skip[strings.ToUpper(strings.TrimSpace(code))] = struct{}{}
	}

	playable := make([]Country, 0, len(raw))
	for _, r := range raw {
		c, ok := FromRest(r)
		if !ok || !Playable(c, skip) {
			continue
		}
		playable = append(playable, c)
	}
	if len(playable) == 0 {
		return nil, fmt.Errorf("no playable countries in source")
	}
	return NewCatalog(playable), nil
}

// All returns a copy of the pool.
func (c *Catalog) All() []Country {
	out := make([]Country, len(c.countries))
	copy(out, c.countries)
	return out
}

// Get looks a country up by code.
func (c *Catalog) Get(code string) (Country, bool) {
	v, ok := c.byCode[strings.ToUpper(strings.TrimSpace(code))]
	return v, ok
}

func (c *Catalog) Len() int {
	return len(c.countries)
}

// FromRest converts a raw record. Records without a code or with a malformed
// coordinate pair are rejected.
func FromRest(r external.RestCountry) (Country, bool) {
	code := strings.ToUpper(strings.TrimSpace(r.CCA3))
	if code == "" || len(r.LatLng) != 2 {
		return Country{}, false
	}
	region, _ := ParseRegion(r.Region)

	var translations map[string]Name
	if len(r.Translations) > 0 {
		translations = make(map[string]Name, len(r.Translations))
		for lang, n := range r.Translations {
			translations[lang] = Name{Common: n.Common, Official: n.Official}
		}
	}

	return Country{
		Code: code,
		Names: Names{
			Name:         Name{Common: r.Name.Common, Official: r.Name.Official},
			Translations: translations,
		},
		LatLng: LatLng{Lat: r.LatLng[0], Lng: r.LatLng[1]},
		Region: region,
		Area:   r.Area,
		Flag:   Flag{PNG: r.Flags.PNG, SVG: r.Flags.SVG},
	}, true
}

// Playable reports whether c can appear in a game: valid coordinates,
// a known region, a flag asset, and not explicitly excluded.
func Playable(c Country, excluded map[string]struct{}) bool {
	if _, skip := excluded[c.Code]; skip {
		return false
	}
	if c.LatLng.Lat < -90 || c.LatLng.Lat > 90 || c.LatLng.Lng < -180 || c.LatLng.Lng > 180 {
		return false
	}
	if c.Region == "" {
		return false
	}
	return c.Flag.SVG != "" || c.Flag.PNG != ""
}
