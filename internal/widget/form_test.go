package widget_test

import (
	"testing"

	"github.com/devin-hart/route-maps/internal/maps"
	"github.com/devin-hart/route-maps/internal/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForm_Layout(t *testing.T) {
	f := widget.NewForm()
	f.Layout(0, 536, 1030)

	assert.Equal(t, 10.0, f.Start.X)
	assert.Equal(t, 558.0, f.Start.Y)
	assert.Equal(t, 500.0, f.Start.Width)
	assert.Equal(t, 520.0, f.End.X)
	assert.Equal(t, 500.0, f.End.Width)

	assert.True(t, f.Contains(5, 540))
	assert.False(t, f.Contains(5, 535))
	assert.False(t, f.Contains(5, 536+widget.FormHeight))

	assert.Same(t, f.Start, f.FieldAt(20, 570))
	assert.Same(t, f.End, f.FieldAt(600, 570))
	assert.Nil(t, f.FieldAt(515, 570), "gap between fields")
}

func TestForm_Endpoints(t *testing.T) {
	f := widget.NewForm()

	f.SetStart("50.8814, 5.9567")
	f.SetEnd("not a place")

	ll, ok := f.Start.LatLng()
	require.True(t, ok)
	assert.Equal(t, maps.LatLng{Lat: 50.8814, Lng: 5.9567}, ll)
	assert.False(t, f.Start.Invalid())

	_, ok = f.End.LatLng()
	assert.False(t, ok)
	assert.True(t, f.End.Invalid())

	f.SetEnd("")
	assert.False(t, f.End.Invalid(), "empty is unset, not invalid")
}

func TestForm_FocusNext(t *testing.T) {
	f := widget.NewForm()
	assert.Nil(t, f.Focused())

	f.FocusNext()
	assert.Same(t, f.Start, f.Focused())
	f.FocusNext()
	assert.Same(t, f.End, f.Focused())
	f.FocusNext()
	assert.Same(t, f.Start, f.Focused())

	f.Blur()
	assert.Nil(t, f.Focused())
}

func TestForm_Typing(t *testing.T) {
	f := widget.NewForm()

	f.Type([]rune("ignored"))
	assert.Empty(t, f.Start.Value, "nothing focused")

	f.Focus(f.End)
	f.Type([]rune("51.0,\t4.5\n"))
	assert.Equal(t, "51.0,4.5", f.End.Value, "control characters are dropped")

	f.Backspace()
	assert.Equal(t, "51.0,4.", f.End.Value)

	f.SetEnd("Zürich é")
	f.Backspace()
	assert.Equal(t, "Zürich ", f.End.Value)

	f.SetEnd("")
	f.Backspace()
	assert.Empty(t, f.End.Value)
	assert.Empty(t, f.Start.Value)
}
