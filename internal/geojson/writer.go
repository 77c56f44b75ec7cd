// Package geojson turns enriched locations into a GeoJSON FeatureCollection
// and persists it.
package geojson

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	geomjson "github.com/twpayne/go-geom/encoding/geojson"

	"github.com/correlaid/geomap/internal/model"
)

// Collection builds a FeatureCollection with one point feature per location.
// Feature properties carry every location field verbatim, lon and lat
// included, so map popups can render without touching the geometry.
func Collection(locations []model.EnrichedLocation) *geomjson.FeatureCollection {
	features := make([]*geomjson.Feature, 0, len(locations))
	for _, loc := range locations {
		properties := map[string]interface{}{
			"name":    loc.Name,
			"project": loc.Project,
			"lon":     loc.Lon,
			"lat":     loc.Lat,
			"address": loc.Address,
			"place":   loc.Place,
			"country": loc.Country,
		}
		if loc.URL != "" {
			properties["url"] = loc.URL
		}
		features = append(features, &geomjson.Feature{
			Geometry:   geom.NewPointFlat(geom.XY, []float64{loc.Lon, loc.Lat}),
			Properties: properties,
		})
	}
	return &geomjson.FeatureCollection{Features: features}
}

// Write serializes the locations as a pretty-printed FeatureCollection at
// path. The document is marshaled fully in memory first so a failed run never
// leaves a partial file behind.
func Write(path string, locations []model.EnrichedLocation) error {
	data, err := Marshal(Collection(locations))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "geojson: write %s", path)
	}
	return nil
}

// Marshal renders the collection with 2-space indentation and HTML escaping
// off, so non-ASCII place names survive literally.
func Marshal(fc *geomjson.FeatureCollection) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fc); err != nil {
		return nil, eris.Wrap(err, "geojson: marshal collection")
	}
	return buf.Bytes(), nil
}
