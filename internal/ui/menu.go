package ui

import (
	"image/color"

	"github.com/devin-hart/route-maps/internal/contextmenu"
	"github.com/devin-hart/route-maps/internal/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// MenuPanel is the drawn context menu.
type MenuPanel struct {
	*widget.Menu

	background color.RGBA
	border     color.RGBA
	hover      color.RGBA
	textColor  color.RGBA
	hintColor  color.RGBA
	shadow     color.RGBA
}

func NewMenuPanel() *MenuPanel {
	return &MenuPanel{
		Menu: widget.NewMenu(basicfont.Face7x13),

		background: color.RGBA{32, 38, 44, 240},
		border:     color.RGBA{73, 86, 97, 255},
		hover:      color.RGBA{58, 68, 77, 255},
		textColor:  color.RGBA{226, 230, 234, 255},
		hintColor:  color.RGBA{140, 150, 160, 255},
		shadow:     color.RGBA{0, 0, 0, 100},
	}
}

func (m *MenuPanel) Draw(screen *ebiten.Image, origin contextmenu.Point, hovered int) {
	s := m.Size()
	x, y := float32(origin.X), float32(origin.Y)
	w, h := float32(s.Width), float32(s.Height)

	vector.DrawFilledRect(screen, x+3, y+3, w, h, m.shadow, false)
	vector.DrawFilledRect(screen, x, y, w, h, m.background, false)
	vector.StrokeRect(screen, x, y, w, h, 1, m.border, false)

	for i, it := range m.Items {
		itemY := m.ItemTop(origin.Y, i)
		if i == hovered {
			vector.DrawFilledRect(screen, x, float32(itemY), w, float32(m.ItemHeight), m.hover, false)
		}
		baseline := int(itemY + m.ItemHeight/2 + 4)
		text.Draw(screen, it.Label, m.Face(), int(origin.X+m.Padding), baseline, m.textColor)
		if it.Hint != "" {
			hx := origin.X + s.Width - m.Padding - m.Measure(it.Hint)
			text.Draw(screen, it.Hint, m.Face(), int(hx), baseline, m.hintColor)
		}
	}
}
