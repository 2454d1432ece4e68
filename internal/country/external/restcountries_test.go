package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePayload = `[
  {
    "name": {"common": "Germany", "official": "Federal Republic of Germany"},
    "cca3": "DEU",
    "latlng": [51, 9],
    "region": "Europe",
    "area": 357114,
    "flags": {"png": "https://flagcdn.com/w320/de.png", "svg": "https://flagcdn.com/de.svg"},
    "translations": {"fra": {"common": "Allemagne", "official": "République fédérale d'Allemagne"}}
  }
]`

func TestFetchAll(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/all", r.URL.Path)
		gotQuery = r.URL.Query().Get("fields")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(samplePayload))
	}))
	defer srv.Close()

	client := NewRestCountriesClient(srv.URL+"/", srv.Client())
	countries, err := client.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, countries, 1)

	assert.Equal(t, restCountriesFields, gotQuery)
	de := countries[0]
	assert.Equal(t, "DEU", de.CCA3)
	assert.Equal(t, "Germany", de.Name.Common)
	assert.Equal(t, []float64{51, 9}, de.LatLng)
	assert.Equal(t, "Allemagne", de.Translations["fra"].Common)
	assert.Equal(t, "https://flagcdn.com/de.svg", de.Flags.SVG)
}

func TestFetchAllNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewRestCountriesClient(srv.URL, srv.Client()).FetchAll(context.Background())
	assert.ErrorContains(t, err, "502")
}

func TestDecodeCountriesMalformed(t *testing.T) {
	_, err := DecodeCountries(strings.NewReader(`{"not":"an array"}`))
	assert.Error(t, err)
}
