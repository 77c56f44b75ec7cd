// Package loader reads the project address collection from disk.
package loader

import (
	"encoding/json"
	"io"
	"os"

	"github.com/rotisserie/eris"

	"github.com/correlaid/geomap/internal/model"
)

// Load parses the file at path as a JSON array of project records and returns
// them in input order. Any read or decode failure aborts the whole load; no
// partial results are returned.
func Load(path string) ([]model.ProjectRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "loader: open %s", path)
	}
	defer f.Close() //nolint:errcheck

	records, err := decodeArray[model.ProjectRecord](f)
	if err != nil {
		return nil, eris.Wrapf(err, "loader: parse %s", path)
	}
	return records, nil
}

// decodeArray decodes a top-level JSON array element by element. Expects
// input in the form [{...},{...}].
func decodeArray[T any](r io.Reader) ([]T, error) {
	decoder := json.NewDecoder(r)

	tok, err := decoder.Token()
	if err != nil {
		return nil, eris.Wrap(err, "read opening token")
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '[' {
		return nil, eris.Errorf("expected '[', got %v", tok)
	}

	var items []T
	for decoder.More() {
		var item T
		if err := decoder.Decode(&item); err != nil {
			return nil, eris.Wrap(err, "decode element")
		}
		items = append(items, item)
	}

	if _, err := decoder.Token(); err != nil && err != io.EOF {
		return nil, eris.Wrap(err, "read closing token")
	}
	return items, nil
}
