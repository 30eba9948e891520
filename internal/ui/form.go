package ui

import (
	"image/color"

	"github.com/devin-hart/route-maps/internal/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	formBackground  = color.RGBA{32, 38, 44, 255}
	fieldBackground = color.RGBA{45, 53, 60, 255}
	fieldBorder     = color.RGBA{73, 86, 97, 255}
	fieldFocus      = color.RGBA{77, 146, 255, 255}
	fieldInvalid    = color.RGBA{220, 80, 80, 255}
	formText        = color.RGBA{226, 230, 234, 255}
)

func drawForm(screen *ebiten.Image, f *widget.Form) {
	vector.DrawFilledRect(screen, float32(f.X), float32(f.Y), float32(f.Width), widget.FormHeight, formBackground, false)

	for _, tf := range f.Fields() {
		border := fieldBorder
		if tf.Invalid() {
			border = fieldInvalid
		}
		if tf == f.Focused() {
			border = fieldFocus
		}
		vector.DrawFilledRect(screen, float32(tf.X), float32(tf.Y), float32(tf.Width), float32(tf.Height), fieldBackground, false)
		vector.StrokeRect(screen, float32(tf.X), float32(tf.Y), float32(tf.Width), float32(tf.Height), 1, border, false)

		text.Draw(screen, tf.Label, basicfont.Face7x13, int(tf.X), int(tf.Y)-6, formText)
		value := tf.Value
		if tf == f.Focused() {
			value += "_"
		}
		text.Draw(screen, value, basicfont.Face7x13, int(tf.X)+6, int(tf.Y+tf.Height/2)+4, formText)
	}

	if f.Status != "" {
		text.Draw(screen, f.Status, basicfont.Face7x13, int(f.X)+10, int(f.Y)+widget.FormHeight-6, formText)
	}
}
