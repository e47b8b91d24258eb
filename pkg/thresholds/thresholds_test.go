package thresholds

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	th := Default()
	assert.Equal(t, 0.0, th.TempMin)
	assert.Equal(t, 45.0, th.TempMax)
	assert.Equal(t, 40.0, th.TempHeatSplit)
	assert.Equal(t, 10.0, th.SoilMin)
	assert.Equal(t, 80.0, th.SoilMax)
	assert.Equal(t, 20.0, th.HumidityMin)
	assert.Equal(t, 95.0, th.HumidityMax)
}

func TestLoadFromFiles_CSVOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "thresholds.csv")
	csv := "Metric,Min,Max\n" +
		"soil_moisture,15,75\n" +
		"temperature,,50\n" +
		"unknown_metric,1,2\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	th := LoadFromFiles(path, "")
	assert.Equal(t, 15.0, th.SoilMin)
	assert.Equal(t, 75.0, th.SoilMax)
	assert.Equal(t, 0.0, th.TempMin, "unset min keeps default")
	assert.Equal(t, 50.0, th.TempMax)
	assert.Equal(t, 20.0, th.HumidityMin, "untouched metric keeps default")
}

func TestLoadFromFiles_MissingFileKeepsDefaults(t *testing.T) {
	th := LoadFromFiles(filepath.Join(t.TempDir(), "nope.csv"), "")
	assert.Equal(t, Default(), th)
}

func TestLoadFromFiles_BadHeaderKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "thresholds.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644))

	th := LoadFromFiles(path, "")
	assert.Equal(t, Default(), th)
}
