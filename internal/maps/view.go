package maps

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

const (
	TileSize = 256.0

	// MaxLatitude is the Web Mercator latitude limit.
	MaxLatitude = 85.05112878

	earthCircumference = 2 * math.Pi * 6378137.0
)

// View is the visible part of the map: a pane on screen showing the
// Web Mercator plane around Center at Zoom (slippy-map zoom levels).
type View struct {
	Center  LatLng
	Zoom    float64
	MinZoom float64
	MaxZoom float64

	// Pane in screen pixels.
	X, Y          float64
	Width, Height float64
}

func NewView(center LatLng, zoom, minZoom, maxZoom float64) *View {
	v := &View{
		Center:  center,
		MinZoom: minZoom,
		MaxZoom: maxZoom,
	}
	v.SetZoom(zoom)
	return v
}

// SetPane updates the screen rectangle the map is drawn into.
func (v *View) SetPane(x, y, width, height float64) {
	v.X, v.Y = x, y
	v.Width, v.Height = width, height
}

// MetersPerPixel at the current zoom, measured on the Mercator plane.
func (v *View) MetersPerPixel() float64 {
	return earthCircumference / (TileSize * math.Pow(2, v.Zoom))
}

func (v *View) paneCenter() (float64, float64) {
	return v.X + v.Width/2, v.Y + v.Height/2
}

// LatLngToScreen projects a coordinate into screen pixels.
func (v *View) LatLngToScreen(ll LatLng) (float64, float64) {
	c := project.WGS84.ToMercator(v.Center.Point())
	p := project.WGS84.ToMercator(clampLat(ll).Point())
	mpp := v.MetersPerPixel()
	cx, cy := v.paneCenter()
	return cx + (p.X()-c.X())/mpp, cy - (p.Y()-c.Y())/mpp
}

// ScreenToLatLng is the inverse of LatLngToScreen.
func (v *View) ScreenToLatLng(sx, sy float64) LatLng {
	c := project.WGS84.ToMercator(v.Center.Point())
	mpp := v.MetersPerPixel()
	cx, cy := v.paneCenter()
	m := orb.Point{c.X() + (sx-cx)*mpp, c.Y() - (sy-cy)*mpp}
	return clampLat(FromPoint(project.Mercator.ToWGS84(m)))
}

// Contains reports whether a screen point lies inside the pane.
func (v *View) Contains(sx, sy float64) bool {
	return sx >= v.X && sx < v.X+v.Width && sy >= v.Y && sy < v.Y+v.Height
}

// Pan moves the map by a screen delta, like dragging the surface.
func (v *View) Pan(dx, dy float64) {
	cx, cy := v.paneCenter()
	v.Center = v.ScreenToLatLng(cx-dx, cy-dy)
}

func (v *View) SetZoom(z float64) {
	v.Zoom = math.Max(v.MinZoom, math.Min(v.MaxZoom, z))
}

func (v *View) ZoomBy(delta float64) {
	v.SetZoom(v.Zoom + delta)
}

func (v *View) CenterOn(ll LatLng) {
	v.Center = clampLat(ll)
}

// Fit centers on the bound and picks the largest zoom that shows all of it.
func (v *View) Fit(b orb.Bound) {
	v.CenterOn(FromPoint(b.Center()))
	if v.Width <= 0 || v.Height <= 0 {
		return
	}
	lo := project.WGS84.ToMercator(clampLat(FromPoint(b.Min)).Point())
	hi := project.WGS84.ToMercator(clampLat(FromPoint(b.Max)).Point())
	spanX := math.Abs(hi.X() - lo.X())
	spanY := math.Abs(hi.Y() - lo.Y())
	if spanX == 0 && spanY == 0 {
		return
	}
	mpp := math.Max(spanX/v.Width, spanY/v.Height)
	v.SetZoom(math.Floor(math.Log2(earthCircumference / (TileSize * mpp))))
}

func clampLat(ll LatLng) LatLng {
	ll.Lat = math.Max(-MaxLatitude, math.Min(MaxLatitude, ll.Lat))
	return ll
}
