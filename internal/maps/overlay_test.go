package maps_test

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/devin-hart/route-maps/internal/maps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"stroke": "#ff0000"},
      "geometry": {"type": "LineString", "coordinates": [[5.95, 50.88], [5.96, 50.89], [5.97, 50.87]]}
    },
    {
      "type": "Feature",
      "properties": {"name": "Heerlen", "marker-color": "#0f0"},
      "geometry": {"type": "Point", "coordinates": [5.98, 50.88]}
    },
    {
      "type": "Feature",
      "properties": {},
      "geometry": {"type": "Polygon", "coordinates": [[[5.9, 50.8], [6.0, 50.8], [6.0, 50.9], [5.9, 50.8]]]}
    }
  ]
}`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadOverlay(t *testing.T) {
	o, err := maps.LoadOverlay(writeFile(t, "route.geojson", sample))
	require.NoError(t, err)

	require.Len(t, o.Paths, 2)
	assert.Len(t, o.Paths[0].Points, 3)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, o.Paths[0].Color)
	assert.Equal(t, maps.DefaultLineColor, o.Paths[1].Color)

	require.Len(t, o.Labels, 1)
	assert.Equal(t, "Heerlen", o.Labels[0].Text)
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, o.Labels[0].Color)
	assert.Equal(t, maps.LatLng{Lat: 50.88, Lng: 5.98}, o.Labels[0].At)

	assert.False(t, o.Empty())
	assert.Equal(t, 5.9, o.Bound.Min.Lon())
	assert.Equal(t, 50.8, o.Bound.Min.Lat())
	assert.Equal(t, 6.0, o.Bound.Max.Lon())
	assert.Equal(t, 50.9, o.Bound.Max.Lat())
}

func TestLoadOverlay_Errors(t *testing.T) {
	_, err := maps.LoadOverlay(filepath.Join(t.TempDir(), "missing.geojson"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = maps.LoadOverlay(writeFile(t, "bad.geojson", "{"))
	assert.Error(t, err)

	_, err = maps.LoadOverlay(writeFile(t, "empty.geojson", `{"type": "FeatureCollection", "features": []}`))
	assert.Error(t, err)
}

func TestNewOverlay_Empty(t *testing.T) {
	o := maps.NewOverlay("none")

	assert.True(t, o.Empty())
	assert.Empty(t, o.Paths)
}

func TestLoadOverlay_NonStringProperties(t *testing.T) {
	body := `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"name": 42, "marker-color": true},
      "geometry": {"type": "Point", "coordinates": [5.98, 50.88]}
    },
    {
      "type": "Feature",
      "properties": {"stroke": 7},
      "geometry": {"type": "LineString", "coordinates": [[5.95, 50.88], [5.96, 50.89]]}
    },
    {
      "type": "Feature",
      "properties": {},
      "geometry": {"type": "Point", "coordinates": [5.99, 50.87]}
    }
  ]
}`
	path := writeFile(t, "typed.geojson", body)

	var o *maps.Overlay
	var err error
	require.NotPanics(t, func() { o, err = maps.LoadOverlay(path) })
	require.NoError(t, err)

	require.Len(t, o.Paths, 1)
	assert.Equal(t, maps.DefaultLineColor, o.Paths[0].Color)

	require.Len(t, o.Labels, 2, "unnamed points still become labels")
	for _, l := range o.Labels {
		assert.Empty(t, l.Text)
		assert.Equal(t, maps.DefaultLabelColor, l.Color)
	}
}
