// Package route turns the filled-in form into a route request.
package route

import (
	"errors"
	"fmt"

	"github.com/devin-hart/route-maps/internal/maps"
	"github.com/devin-hart/route-maps/internal/parser"
)

var ErrMissingEndpoint = errors.New("missing endpoint")

type Request struct {
	Start maps.LatLng
	End   maps.LatLng
}

// NewRequest parses the start and end field values.
func NewRequest(start, end string) (Request, error) {
	var req Request
	var err error
	if req.Start, err = field("start", start); err != nil {
		return Request{}, err
	}
	if req.End, err = field("end", end); err != nil {
		return Request{}, err
	}
	return req, nil
}

func field(name, value string) (maps.LatLng, error) {
	if value == "" {
		return maps.LatLng{}, fmt.Errorf("%s point: %w", name, ErrMissingEndpoint)
	}
	ll, err := parser.ParseLatLng(value)
	if err != nil {
		return maps.LatLng{}, fmt.Errorf("%s point: %w", name, err)
	}
	return ll, nil
}
