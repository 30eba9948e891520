package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/devin-hart/route-maps/internal/maps"
)

var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Delimiter separates latitude from longitude in field text.
const Delimiter = ","

// ParseLatLng reads "lat, lng" as written by the context menu. Whitespace
// around either number is ignored.
func ParseLatLng(text string) (maps.LatLng, error) {
	parts := strings.Split(text, Delimiter)
	if len(parts) != 2 {
		return maps.LatLng{}, fmt.Errorf("%w: want \"lat, lng\", got %q", ErrInvalidCoordinate, text)
	}

	lat, err := parseAxis(parts[0], 90)
	if err != nil {
		return maps.LatLng{}, fmt.Errorf("%w: latitude: %v", ErrInvalidCoordinate, err)
	}
	lng, err := parseAxis(parts[1], 180)
	if err != nil {
		return maps.LatLng{}, fmt.Errorf("%w: longitude: %v", ErrInvalidCoordinate, err)
	}
	return maps.LatLng{Lat: lat, Lng: lng}, nil
}

func parseAxis(s string, limit float64) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.Abs(v) > limit {
		return 0, fmt.Errorf("%v out of range [-%v, %v]", v, limit, limit)
	}
	return v, nil
}
