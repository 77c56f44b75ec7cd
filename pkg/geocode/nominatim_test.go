package geocode

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// newTestClient builds a client against the given test server without real
// rate-limit delays.
func newTestClient(serverURL string) Client {
	return NewClient(
		WithBaseURL(serverURL),
		WithLimiter(rate.NewLimiter(rate.Inf, 1)),
	)
}

func TestNominatim_Geocode_Match(t *testing.T) {
	var gotUA, gotQuery, gotFormat, gotLimit string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotQuery = r.URL.Query().Get("q")
		gotFormat = r.URL.Query().Get("format")
		gotLimit = r.URL.Query().Get("limit")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"lat": "52.5170365", "lon": "13.3888599", "display_name": "Berlin, Deutschland"}]`)
	}))
	defer srv.Close()

	c := NewClient(
		WithBaseURL(srv.URL),
		WithUserAgent("test-agent"),
		WithLimiter(rate.NewLimiter(rate.Inf, 1)),
	)

	result, err := c.Geocode(context.Background(), "Berlin, Germany")
	require.NoError(t, err)
	assert.True(t, result.Matched)
	assert.InDelta(t, 13.3888599, result.Lon, 1e-9)
	assert.InDelta(t, 52.5170365, result.Lat, 1e-9)

	assert.Equal(t, "test-agent", gotUA)
	assert.Equal(t, "Berlin, Germany", gotQuery)
	assert.Equal(t, "json", gotFormat)
	assert.Equal(t, "1", gotLimit)
}

func TestNominatim_Geocode_EmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	result, err := newTestClient(srv.URL).Geocode(context.Background(), "Atlantis, Nowhere")
	require.NoError(t, err)
	assert.False(t, result.Matched)
}

func TestNominatim_Geocode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, `{"not": "an array"}`)
			},
		},
		{
			name: "unparseable latitude",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, `[{"lat": "fifty-two", "lon": "13.38"}]`)
			},
		},
		{
			name: "unparseable longitude",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, `[{"lat": "52.51", "lon": ""}]`)
			},
		},
		{
			name: "coordinate out of range",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, `[{"lat": "52.51", "lon": "313.38"}]`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := newTestClient(srv.URL).Geocode(context.Background(), "Berlin, Germany")
			assert.Error(t, err)
		})
	}
}

func TestNominatim_Geocode_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // closed server refuses connections

	_, err := newTestClient(srv.URL).Geocode(context.Background(), "Berlin, Germany")
	assert.Error(t, err)
}

func TestNominatim_Geocode_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(srv.URL).Geocode(ctx, "Berlin, Germany")
	assert.Error(t, err)
}
