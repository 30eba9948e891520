package maps

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

var (
	DefaultLineColor  = color.RGBA{150, 150, 150, 255}
	DefaultLabelColor = color.RGBA{230, 230, 230, 255}
)

type Path struct {
	Points []LatLng
	Color  color.RGBA
}

type Label struct {
	At    LatLng
	Text  string
	Color color.RGBA
}

// Overlay is the vector backdrop drawn under the markers.
type Overlay struct {
	Name   string
	Paths  []Path
	Labels []Label
	Bound  orb.Bound
	empty  bool
}

func NewOverlay(name string) *Overlay {
	return &Overlay{Name: name, empty: true}
}

// Empty reports whether nothing has been added yet.
func (o *Overlay) Empty() bool {
	return o.empty
}

// LoadOverlay reads a GeoJSON FeatureCollection. Lines and polygon rings
// become paths; points become labels, captioned by their "name" property
// when it is set. Styling follows the simplestyle "stroke" / "marker-color"
// properties. Properties that are not strings are treated as unset.
func LoadOverlay(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read overlay: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse overlay %s: %w", path, err)
	}

	o := NewOverlay(path)
	for _, f := range fc.Features {
		o.addFeature(f)
	}
	if o.empty {
		return nil, fmt.Errorf("no drawable features in overlay: %s", path)
	}
	return o, nil
}

func (o *Overlay) addFeature(f *geojson.Feature) {
	if f == nil || f.Geometry == nil {
		return
	}
	stroke := parseColor(stringProp(f.Properties, "stroke"), DefaultLineColor)
	marker := parseColor(stringProp(f.Properties, "marker-color"), DefaultLabelColor)
	name := stringProp(f.Properties, "name")

	switch g := f.Geometry.(type) {
	case orb.Point:
		o.addLabel(g, name, marker)
	case orb.MultiPoint:
		for _, p := range g {
			o.addLabel(p, name, marker)
		}
	case orb.LineString:
		o.addPath(g, stroke)
	case orb.MultiLineString:
		for _, ls := range g {
			o.addPath(ls, stroke)
		}
	case orb.Polygon:
		for _, r := range g {
			o.addPath(r, stroke)
		}
	case orb.MultiPolygon:
		for _, poly := range g {
			for _, r := range poly {
				o.addPath(r, stroke)
			}
		}
	}
}

func (o *Overlay) addPath(pts []orb.Point, c color.RGBA) {
	if len(pts) < 2 {
		return
	}
	p := Path{Points: make([]LatLng, 0, len(pts)), Color: c}
	for _, pt := range pts {
		p.Points = append(p.Points, FromPoint(pt))
		o.extend(pt)
	}
	o.Paths = append(o.Paths, p)
}

func (o *Overlay) addLabel(pt orb.Point, text string, c color.RGBA) {
	o.Labels = append(o.Labels, Label{At: FromPoint(pt), Text: text, Color: c})
	o.extend(pt)
}

func (o *Overlay) extend(pt orb.Point) {
	if o.empty {
		o.Bound = orb.Bound{Min: pt, Max: pt}
		o.empty = false
		return
	}
	o.Bound = o.Bound.Extend(pt)
}

func stringProp(props geojson.Properties, key string) string {
	s, _ := props[key].(string)
	return s
}

// parseColor accepts "#rgb" or "#rrggbb".
func parseColor(s string, def color.RGBA) color.RGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return def
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return def
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}
}
