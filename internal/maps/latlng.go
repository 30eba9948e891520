package maps

import (
	"strconv"

	"github.com/paulmach/orb"
)

// LatLng is a geographic coordinate in degrees.
type LatLng struct {
	Lat float64
	Lng float64
}

// String formats the coordinate as "lat, lng" using the shortest decimal
// form of each value, e.g. "50.8814, 5.9567".
func (ll LatLng) String() string {
	return strconv.FormatFloat(ll.Lat, 'f', -1, 64) + ", " + strconv.FormatFloat(ll.Lng, 'f', -1, 64)
}

// Point returns the coordinate as an orb point (lon, lat order).
func (ll LatLng) Point() orb.Point {
	return orb.Point{ll.Lng, ll.Lat}
}

func FromPoint(p orb.Point) LatLng {
	return LatLng{Lat: p.Lat(), Lng: p.Lon()}
}
