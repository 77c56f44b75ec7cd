package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "correlaid_projects_addresses.json", cfg.Input)
	assert.Equal(t, "locations.geojson", cfg.Output)
	assert.Equal(t, "https://nominatim.openstreetmap.org", cfg.Nominatim.BaseURL)
	assert.Equal(t, "CorrelAid Map Project", cfg.Nominatim.UserAgent)
	assert.Equal(t, 10, cfg.Nominatim.TimeoutSecs)
	assert.Equal(t, 1100, cfg.Nominatim.MinIntervalMS)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)

	assert.Equal(t, 10*time.Second, cfg.Nominatim.Timeout())
	assert.Equal(t, 1100*time.Millisecond, cfg.Nominatim.MinInterval())
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
input: addresses.json
output: out/points.geojson
nominatim:
  base_url: http://localhost:8080
  min_interval_ms: 0
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "addresses.json", cfg.Input)
	assert.Equal(t, "out/points.geojson", cfg.Output)
	assert.Equal(t, "http://localhost:8080", cfg.Nominatim.BaseURL)
	assert.Equal(t, 0, cfg.Nominatim.MinIntervalMS)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Defaults still apply for unset values
	assert.Equal(t, "CorrelAid Map Project", cfg.Nominatim.UserAgent)
	assert.Equal(t, 10, cfg.Nominatim.TimeoutSecs)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
output: from-file.geojson
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("GEOMAP_OUTPUT", "from-env.geojson")
	t.Setenv("GEOMAP_NOMINATIM_USER_AGENT", "test-agent")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "from-env.geojson", cfg.Output)
	assert.Equal(t, "test-agent", cfg.Nominatim.UserAgent)
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	require.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))

	err := InitLogger(LogConfig{Level: "nope", Format: "json"})
	assert.Error(t, err)
}
