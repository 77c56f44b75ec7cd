// Package pipeline orchestrates the geocoding run: it walks the loaded
// records in input order, deduplicates lookups by place and country, and
// assembles enriched locations.
package pipeline

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/correlaid/geomap/internal/model"
	"github.com/correlaid/geomap/pkg/geocode"
)

// Pipeline resolves project records to enriched locations through a geocode
// client. It is single-threaded; the client's rate limiter is the only
// suspension point.
type Pipeline struct {
	client   geocode.Client
	progress func()
}

// Option configures the pipeline.
type Option func(*Pipeline)

// WithProgress registers a callback invoked once per processed record,
// typically to advance a progress bar.
func WithProgress(fn func()) Option {
	return func(p *Pipeline) {
		p.progress = fn
	}
}

// New creates a Pipeline backed by the given geocode client.
func New(client geocode.Client, opts ...Option) *Pipeline {
	p := &Pipeline{
		client:   client,
		progress: func() {},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run processes records strictly in input order and returns the enriched
// locations in order of first successful resolution. Records without place or
// country are skipped; failed lookups are logged and excluded, never retried.
// Only a cancelled context aborts the run.
func (p *Pipeline) Run(ctx context.Context, records []model.ProjectRecord) ([]model.EnrichedLocation, error) {
	log := zap.L()
	log.Info("processing records", zap.Int("count", len(records)))

	cache := NewCache()
	var locations []model.EnrichedLocation

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, eris.Wrap(err, "pipeline: run cancelled")
		}

		addr := rec.Organization.Address.Trimmed()
		if !addr.Geocodable() {
			log.Debug("skipping record without place or country",
				zap.String("project", rec.Title),
			)
			p.progress()
			continue
		}

		key := addr.DedupKey()
		coord, hit := cache.Get(key)
		if !hit {
			query := addr.Query()
			log.Info("geocoding",
				zap.String("place", addr.Place),
				zap.String("country", addr.Country),
			)

			result, err := p.client.Geocode(ctx, query)
			if err != nil {
				log.Warn("lookup failed",
					zap.String("query", query),
					zap.Error(err),
				)
				p.progress()
				continue
			}
			if !result.Matched {
				log.Warn("no coordinate found", zap.String("query", query))
				p.progress()
				continue
			}

			coord = model.Coordinate{Lon: result.Lon, Lat: result.Lat}
			cache.Put(key, coord)
		}

		locations = append(locations, model.NewEnrichedLocation(rec, coord.Lon, coord.Lat))
		p.progress()
	}

	log.Info("geocoding complete",
		zap.Int("locations", len(locations)),
		zap.Int("unique_places", cache.Len()),
	)
	return locations, nil
}
