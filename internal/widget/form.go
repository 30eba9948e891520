package widget

import (
	"unicode/utf8"

	"github.com/devin-hart/route-maps/internal/maps"
	"github.com/devin-hart/route-maps/internal/parser"
)

const FormHeight = 64

type TextField struct {
	Label string
	Value string

	X, Y, Width, Height float64
}

func (f *TextField) Contains(x, y float64) bool {
	return x >= f.X && x < f.X+f.Width && y >= f.Y && y < f.Y+f.Height
}

// LatLng parses the field, false when it is empty or not a coordinate.
func (f *TextField) LatLng() (maps.LatLng, bool) {
	ll, err := parser.ParseLatLng(f.Value)
	return ll, err == nil
}

// Invalid reports a non-empty value that does not parse.
func (f *TextField) Invalid() bool {
	_, ok := f.LatLng()
	return !ok && f.Value != ""
}

// Form is the strip below the map holding the route's start and end
// fields. The context menu writes into it.
type Form struct {
	Start  *TextField
	End    *TextField
	Status string

	focused *TextField
	X, Y    float64
	Width   float64
}

func NewForm() *Form {
	return &Form{
		Start: &TextField{Label: "Start"},
		End:   &TextField{Label: "End"},
	}
}

func (f *Form) SetStart(value string) { f.Start.Value = value }
func (f *Form) SetEnd(value string)   { f.End.Value = value }

func (f *Form) Fields() []*TextField {
	return []*TextField{f.Start, f.End}
}

func (f *Form) Layout(x, y, width float64) {
	f.X, f.Y, f.Width = x, y, width
	fieldW := (width - 3*10) / 2
	f.Start.X, f.Start.Y, f.Start.Width, f.Start.Height = x+10, y+22, fieldW, 24
	f.End.X, f.End.Y, f.End.Width, f.End.Height = x+20+fieldW, y+22, fieldW, 24
}

func (f *Form) Contains(x, y float64) bool {
	return y >= f.Y && y < f.Y+FormHeight && x >= f.X && x < f.X+f.Width
}

func (f *Form) FieldAt(x, y float64) *TextField {
	for _, tf := range f.Fields() {
		if tf.Contains(x, y) {
			return tf
		}
	}
	return nil
}

func (f *Form) Focus(tf *TextField) { f.focused = tf }
func (f *Form) Blur()               { f.focused = nil }
func (f *Form) Focused() *TextField { return f.focused }

// FocusNext cycles start -> end -> start.
func (f *Form) FocusNext() {
	if f.focused == f.Start {
		f.focused = f.End
		return
	}
	f.focused = f.Start
}

// Type appends printable runes to the focused field.
func (f *Form) Type(runes []rune) {
	if f.focused == nil {
		return
	}
	for _, r := range runes {
		if r >= ' ' {
			f.focused.Value += string(r)
		}
	}
}

func (f *Form) Backspace() {
	if f.focused == nil || f.focused.Value == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(f.focused.Value)
	f.focused.Value = f.focused.Value[:len(f.focused.Value)-size]
}
