package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const restCountriesFields = "name,cca3,latlng,region,area,flags,translations"

// RestCountriesClient fetches the country list from a restcountries v3.1 compatible API (no API key).
type RestCountriesClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewRestCountriesClient(baseURL string, httpClient *http.Client) *RestCountriesClient {
	if baseURL == "" {
		baseURL = "https://restcountries.com/v3.1"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &RestCountriesClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// RestCountry mirrors the subset of the restcountries payload the quiz needs.
type RestCountry struct {
	Name struct {
		Common   string `json:"common"`
		Official string `json:"official"`
	} `json:"name"`
	CCA3         string                  `json:"cca3"`
	LatLng       []float64               `json:"latlng"`
	Region       string                  `json:"region"`
	Area         float64                 `json:"area"`
	Flags        RestFlags               `json:"flags"`
	Translations map[string]RestNamePair `json:"translations"`
}

type RestFlags struct {
	PNG string `json:"png"`
	SVG string `json:"svg"`
}

type RestNamePair struct {
	Common   string `json:"common"`
	Official string `json:"official"`
}

// FetchAll downloads every country in one request.
func (c *RestCountriesClient) FetchAll(ctx context.Context) ([]RestCountry, error) {
	values := url.Values{}
	values.Set("fields", restCountriesFields)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/all?%s", c.baseURL, values.Encode()), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("restcountries non-200: %d", resp.StatusCode)
	}
	return DecodeCountries(resp.Body)
}

// DecodeCountries parses a restcountries JSON array.
func DecodeCountries(r io.Reader) ([]RestCountry, error) {
	var payload []RestCountry
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode countries: %w", err)
	}
	return payload, nil
}
