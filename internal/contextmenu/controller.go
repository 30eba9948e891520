package contextmenu

import (
	"log/slog"

	"github.com/devin-hart/route-maps/internal/maps"
)

const (
	KindStart = "start"
	KindEnd   = "end"
)

type State int

const (
	Hidden State = iota
	Visible
)

func (s State) String() string {
	if s == Visible {
		return "visible"
	}
	return "hidden"
}

// Endpoints are the route form fields the menu writes into.
type Endpoints interface {
	SetStart(value string)
	SetEnd(value string)
}

// LastClicked holds the most recent right-clicked coordinate as text.
// It stays set until the next right-click.
type LastClicked struct {
	text string
	pos  maps.LatLng
	set  bool
}

func (l *LastClicked) Record(pos maps.LatLng) {
	l.pos = pos
	l.text = pos.String()
	l.set = true
}

// Text is "" until the first Record.
func (l *LastClicked) Text() string {
	return l.text
}

func (l *LastClicked) Position() (maps.LatLng, bool) {
	return l.pos, l.set
}

// Controller is the menu state machine. Opening is split in two phases:
// Open repositions the hidden menu, and the following Tick reveals it, so
// the new position is always in place before the menu shows.
type Controller struct {
	normalizer Normalizer
	endpoints  Endpoints
	last       LastClicked

	state         State
	pendingReveal bool
	position      Point
}

func NewController(viewport Viewport, panel Panel, endpoints Endpoints) *Controller {
	return &Controller{
		normalizer: Normalizer{Viewport: viewport, Panel: panel},
		endpoints:  endpoints,
	}
}

// HandleSecondaryClick records the clicked coordinate and opens the menu at
// the pointer. It always re-enters the visible state at the new position.
func (c *Controller) HandleSecondaryClick(x, y float64, pos maps.LatLng) {
	c.Record(pos)
	c.Open(x, y)
}

func (c *Controller) Record(pos maps.LatLng) {
	c.last.Record(pos)
}

// Open is the reposition phase: hide, move, and queue the reveal.
func (c *Controller) Open(x, y float64) {
	c.state = Hidden
	nx, ny := c.normalizer.Normalize(x, y)
	c.position = Point{X: nx, Y: ny}
	c.pendingReveal = true
}

// Tick runs the reveal phase queued by Open. Call it once per frame before
// handling new input.
func (c *Controller) Tick() {
	if !c.pendingReveal {
		return
	}
	c.pendingReveal = false
	c.state = Visible
}

// HandlePrimaryClick hides the menu unless the click landed on it.
func (c *Controller) HandlePrimaryClick(x, y float64) {
	if c.Bounds().Contains(Point{X: x, Y: y}) {
		return
	}
	c.Hide()
}

// SetPosition copies the last clicked coordinate into the start or end
// field and hides the menu. Any other kind is ignored.
func (c *Controller) SetPosition(kind string) {
	switch kind {
	case KindStart:
		c.endpoints.SetStart(c.last.Text())
	case KindEnd:
		c.endpoints.SetEnd(c.last.Text())
	default:
		slog.Debug("ignoring menu action", "kind", kind)
		return
	}
	c.Hide()
}

func (c *Controller) Hide() {
	c.state = Hidden
	c.pendingReveal = false
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Visible() bool {
	return c.state == Visible
}

// Pending reports a reposition waiting for its reveal.
func (c *Controller) Pending() bool {
	return c.pendingReveal
}

func (c *Controller) Position() Point {
	return c.position
}

// Bounds is the menu rectangle at its current position.
func (c *Controller) Bounds() Rect {
	s := c.normalizer.Panel.Size()
	return Rect{X: c.position.X, Y: c.position.Y, Width: s.Width, Height: s.Height}
}

func (c *Controller) LastClicked() *LastClicked {
	return &c.last
}
