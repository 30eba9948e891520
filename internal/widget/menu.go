// Package widget holds the layout and input state of the map's context
// menu and route form. Drawing lives in package ui.
package widget

import (
	"github.com/devin-hart/route-maps/internal/contextmenu"
	"golang.org/x/image/font"
)

type MenuItem struct {
	Label  string
	Hint   string // right aligned, e.g. a shortcut
	Action func()
}

// Menu lays out context menu items. Its size follows the labels.
type Menu struct {
	Items []MenuItem

	ItemHeight float64
	Padding    float64
	MinWidth   float64

	face font.Face
}

func NewMenu(face font.Face) *Menu {
	return &Menu{
		ItemHeight: 22,
		Padding:    6,
		MinWidth:   150,
		face:       face,
	}
}

func (m *Menu) Face() font.Face {
	return m.face
}

// Option appends an item, builder style.
func (m *Menu) Option(label, hint string, action func()) *Menu {
	m.Items = append(m.Items, MenuItem{Label: label, Hint: hint, Action: action})
	return m
}

// Size is measured from the current items every time it is asked for.
func (m *Menu) Size() contextmenu.Size {
	width := m.MinWidth
	for _, it := range m.Items {
		w := m.Padding*2 + m.Measure(it.Label)
		if it.Hint != "" {
			w += 24 + m.Measure(it.Hint)
		}
		width = max(width, w)
	}
	return contextmenu.Size{
		Width:  width,
		Height: m.Padding*2 + float64(len(m.Items))*m.ItemHeight,
	}
}

// Measure is the advance width of s in whole pixels.
func (m *Menu) Measure(s string) float64 {
	return float64(font.MeasureString(m.face, s).Ceil())
}

// ItemTop is the y of item i for a menu drawn at originY.
func (m *Menu) ItemTop(originY float64, i int) float64 {
	return originY + m.Padding + float64(i)*m.ItemHeight
}

// ItemAt returns the index of the item under p for a menu drawn at origin,
// or -1.
func (m *Menu) ItemAt(origin, p contextmenu.Point) int {
	s := m.Size()
	if !(contextmenu.Rect{X: origin.X, Y: origin.Y, Width: s.Width, Height: s.Height}).Contains(p) {
		return -1
	}
	if p.Y-origin.Y < m.Padding {
		return -1
	}
	i := int((p.Y - origin.Y - m.Padding) / m.ItemHeight)
	if i >= len(m.Items) {
		return -1
	}
	return i
}

// Activate runs the action of item i. It reports whether an item ran.
func (m *Menu) Activate(i int) bool {
	if i < 0 || i >= len(m.Items) || m.Items[i].Action == nil {
		return false
	}
	m.Items[i].Action()
	return true
}
