package maps_test

import (
	"testing"

	"github.com/devin-hart/route-maps/internal/maps"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func newView() *maps.View {
	v := maps.NewView(maps.LatLng{Lat: 50.881401, Lng: 5.956668}, 13, 4, 19)
	v.SetPane(0, 0, 800, 600)
	return v
}

func TestView_CenterMapsToPaneCenter(t *testing.T) {
	v := newView()

	x, y := v.LatLngToScreen(v.Center)
	assert.InDelta(t, 400, x, 1e-6)
	assert.InDelta(t, 300, y, 1e-6)

	ll := v.ScreenToLatLng(400, 300)
	assert.InDelta(t, 50.881401, ll.Lat, 1e-9)
	assert.InDelta(t, 5.956668, ll.Lng, 1e-9)
}

func TestView_RoundTrip(t *testing.T) {
	v := newView()
	v.SetPane(20, 40, 800, 600)

	for _, p := range [][2]float64{{20, 40}, {819, 639}, {123, 456}} {
		ll := v.ScreenToLatLng(p[0], p[1])
		x, y := v.LatLngToScreen(ll)
		assert.InDelta(t, p[0], x, 1e-6)
		assert.InDelta(t, p[1], y, 1e-6)
	}
}

func TestView_ScreenAxes(t *testing.T) {
	v := newView()

	right := v.ScreenToLatLng(500, 300)
	down := v.ScreenToLatLng(400, 400)

	assert.Greater(t, right.Lng, v.Center.Lng)
	assert.Less(t, down.Lat, v.Center.Lat)
}

func TestView_Pan(t *testing.T) {
	v := newView()
	target := v.ScreenToLatLng(300, 250)

	// dragging the surface right/down brings the upper left point to the center
	v.Pan(100, 50)

	assert.InDelta(t, target.Lat, v.Center.Lat, 1e-9)
	assert.InDelta(t, target.Lng, v.Center.Lng, 1e-9)
}

func TestView_ZoomClamped(t *testing.T) {
	v := newView()

	v.ZoomBy(100)
	assert.Equal(t, 19.0, v.Zoom)
	v.ZoomBy(-100)
	assert.Equal(t, 4.0, v.Zoom)
}

func TestView_MetersPerPixelHalvesPerZoom(t *testing.T) {
	v := newView()
	at13 := v.MetersPerPixel()
	v.ZoomBy(1)

	assert.InDelta(t, at13/2, v.MetersPerPixel(), 1e-9)
}

func TestView_Fit(t *testing.T) {
	v := newView()
	b := orb.Bound{Min: orb.Point{5.6, 50.8}, Max: orb.Point{6.0, 51.0}}

	v.Fit(b)

	for _, p := range []orb.Point{b.Min, b.Max} {
		x, y := v.LatLngToScreen(maps.FromPoint(p))
		assert.True(t, v.Contains(x, y), "corner %v at %v,%v", p, x, y)
	}
}

func TestView_Contains(t *testing.T) {
	v := newView()

	assert.True(t, v.Contains(0, 0))
	assert.False(t, v.Contains(800, 10))
	assert.False(t, v.Contains(10, -1))
}

func TestLatLng_String(t *testing.T) {
	assert.Equal(t, "50.8814, 5.9567", maps.LatLng{Lat: 50.8814, Lng: 5.9567}.String())
	assert.Equal(t, "-1.5, 0", maps.LatLng{Lat: -1.5}.String())
}
