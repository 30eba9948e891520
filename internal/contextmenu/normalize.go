// Package contextmenu positions and drives the map's right-click menu.
package contextmenu

type Point struct {
	X, Y float64
}

type Size struct {
	Width, Height float64
}

// Rect is an offset plus a visible size, in screen coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Viewport is the element hosting the map. Bounds is measured on every call
// since the layout may change between events.
type Viewport interface {
	Bounds() Rect
}

// Panel is the rendered menu.
type Panel interface {
	Size() Size
}

// Normalize returns where to place a menu of the given size, opened at
// pointer, so that it does not spill out of the viewport.
//
// A negative viewport offset counts as 0. An axis that would overflow is
// aligned flush with the viewport's far edge; an axis that fits keeps the raw
// pointer coordinate. A menu larger than the viewport can come out negative.
func Normalize(pointer Point, viewport Rect, menu Size) Point {
	offX := max(viewport.X, 0)
	offY := max(viewport.Y, 0)

	localX := pointer.X - offX
	localY := pointer.Y - offY

	out := pointer
	if localX+menu.Width > viewport.Width {
		out.X = offX + viewport.Width - menu.Width
	}
	if localY+menu.Height > viewport.Height {
		out.Y = offY + viewport.Height - menu.Height
	}
	return out
}

// Normalizer measures live layout and applies Normalize.
type Normalizer struct {
	Viewport Viewport
	Panel    Panel
}

func (n Normalizer) Normalize(x, y float64) (float64, float64) {
	p := Normalize(Point{X: x, Y: y}, n.Viewport.Bounds(), n.Panel.Size())
	return p.X, p.Y
}
