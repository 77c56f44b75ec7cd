package geocode

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// nominatimResult is one element of the Nominatim /search response array.
// Coordinates are returned as strings.
type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode implements Client against the Nominatim search endpoint. Requests
// are spaced by the client's rate limiter; callers that hit a cache never
// reach this method, so only fresh lookups pay the delay.
func (n *nominatim) Geocode(ctx context.Context, query string) (*Result, error) {
	if err := n.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "geocode: rate limit wait")
	}

	params := url.Values{
		"q":      {query},
		"format": {"json"},
		"limit":  {"1"},
	}
	reqURL := n.baseURL + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: build request")
	}
	req.Header.Set("User-Agent", n.userAgent)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("geocode: nominatim returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: read body")
	}

	var results []nominatimResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, eris.Wrap(err, "geocode: parse response")
	}

	if len(results) == 0 {
		zap.L().Debug("geocode: no match", zap.String("query", query))
		return &Result{Matched: false}, nil
	}

	first := results[0]
	lat, err := strconv.ParseFloat(first.Lat, 64)
	if err != nil {
		return nil, eris.Wrapf(err, "geocode: parse lat %q", first.Lat)
	}
	lon, err := strconv.ParseFloat(first.Lon, 64)
	if err != nil {
		return nil, eris.Wrapf(err, "geocode: parse lon %q", first.Lon)
	}
	if lon < -180 || lon > 180 || lat < -90 || lat > 90 {
		return nil, eris.Errorf("geocode: coordinate out of range: lon=%v lat=%v", lon, lat)
	}

	return &Result{Lon: lon, Lat: lat, Matched: true}, nil
}
