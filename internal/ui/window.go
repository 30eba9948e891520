package ui

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"github.com/atotto/clipboard"
	"github.com/devin-hart/route-maps/internal/config"
	"github.com/devin-hart/route-maps/internal/contextmenu"
	"github.com/devin-hart/route-maps/internal/maps"
	"github.com/devin-hart/route-maps/internal/route"
	"github.com/devin-hart/route-maps/internal/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// paneViewport exposes the map pane to the menu controller.
type paneViewport struct {
	view *maps.View
}

func (p paneViewport) Bounds() contextmenu.Rect {
	return contextmenu.Rect{X: p.view.X, Y: p.view.Y, Width: p.view.Width, Height: p.view.Height}
}

type Window struct {
	View        *maps.View
	Overlay     *maps.Overlay
	Menu        *MenuPanel
	Form        *widget.Form
	Controller  *contextmenu.Controller
	Attribution string

	IsDragging bool
	DragStartX int
	DragStartY int

	// OnRoute receives submitted requests.
	OnRoute func(route.Request)

	Width, Height int
}

func NewWindow(cfg *config.Config, overlay *maps.Overlay) *Window {
	if overlay == nil {
		overlay = maps.NewOverlay("")
	}
	view := maps.NewView(
		maps.LatLng{Lat: cfg.Map.CenterLat, Lng: cfg.Map.CenterLng},
		cfg.Map.Zoom, cfg.Map.MinZoom, cfg.Map.MaxZoom,
	)

	w := &Window{
		View:        view,
		Overlay:     overlay,
		Menu:        NewMenuPanel(),
		Form:        widget.NewForm(),
		Attribution: cfg.Map.Attribution,
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
	}
	w.Controller = contextmenu.NewController(paneViewport{view: view}, w.Menu, w.Form)

	w.Menu.
		Option("Set as start point", "S", func() { w.Controller.SetPosition(contextmenu.KindStart) }).
		Option("Set as end point", "E", func() { w.Controller.SetPosition(contextmenu.KindEnd) }).
		Option("Copy coordinates", "C", w.copyLastClicked)

	w.Layout(w.Width, w.Height)
	return w
}

func (w *Window) Update() error {
	// reveal a menu repositioned during the previous frame
	w.Controller.Tick()

	mx, my := ebiten.CursorPosition()
	fx, fy := float64(mx), float64(my)

	if w.Form.Focused() != nil {
		w.updateTyping()
	} else {
		w.updateKeys()
	}

	// ZOOM
	if _, dy := ebiten.Wheel(); dy != 0 && w.View.Contains(fx, fy) {
		w.View.ZoomBy(dy * 0.5)
	}

	// CONTEXT MENU
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && w.View.Contains(fx, fy) {
		ll := w.View.ScreenToLatLng(fx, fy)
		w.Form.Blur()
		w.IsDragging = false
		w.Controller.HandleSecondaryClick(fx, fy, ll)
		slog.Debug("context menu requested", "x", mx, "y", my, "position", ll.String())
		return nil
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		w.handlePrimaryPress(mx, my)
	}

	// PAN
	if w.IsDragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		w.View.Pan(float64(mx-w.DragStartX), float64(my-w.DragStartY))
		w.DragStartX, w.DragStartY = mx, my
	} else {
		w.IsDragging = false
	}

	return nil
}

func (w *Window) handlePrimaryPress(mx, my int) {
	fx, fy := float64(mx), float64(my)
	p := contextmenu.Point{X: fx, Y: fy}

	if w.Controller.Visible() && w.Controller.Bounds().Contains(p) {
		w.Menu.Activate(w.Menu.ItemAt(w.Controller.Position(), p))
		return
	}

	switch {
	case w.View.Contains(fx, fy):
		w.Controller.HandlePrimaryClick(fx, fy)
		w.Form.Blur()
		w.IsDragging = true
		w.DragStartX, w.DragStartY = mx, my
	case w.Form.Contains(fx, fy):
		w.Form.Focus(w.Form.FieldAt(fx, fy))
	}
}

func (w *Window) updateKeys() {
	if w.Controller.Visible() || w.Controller.Pending() {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			w.Controller.Hide()
		case inpututil.IsKeyJustPressed(ebiten.KeyS):
			w.Controller.SetPosition(contextmenu.KindStart)
		case inpututil.IsKeyJustPressed(ebiten.KeyE):
			w.Controller.SetPosition(contextmenu.KindEnd)
		case inpututil.IsKeyJustPressed(ebiten.KeyC):
			w.copyLastClicked()
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w.centerOnField(w.Form.Start)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		w.centerOnField(w.Form.End)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		w.FitOverlay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		w.Form.FocusNext()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		w.Submit()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		w.View.ZoomBy(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		w.View.ZoomBy(-1)
	}
}

func (w *Window) updateTyping() {
	w.Form.Type(ebiten.AppendInputChars(nil))

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		w.Form.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		w.Form.FocusNext()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		w.Form.Blur()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		w.Form.Blur()
		w.Submit()
	}
}

func (w *Window) copyLastClicked() {
	value := w.Controller.LastClicked().Text()
	w.Controller.Hide()
	if value == "" {
		return
	}
	if err := clipboard.WriteAll(value); err != nil {
		w.Form.Status = "Clipboard unavailable"
		slog.Warn("copy to clipboard failed", "err", err)
		return
	}
	w.Form.Status = "Copied " + value
}

// Submit validates both fields and hands the request to OnRoute.
func (w *Window) Submit() {
	req, err := route.NewRequest(w.Form.Start.Value, w.Form.End.Value)
	if err != nil {
		w.Form.Status = err.Error()
		return
	}
	w.Form.Status = fmt.Sprintf("Route requested: %s -> %s", req.Start, req.End)
	fmt.Printf("🧭 Route requested: %s -> %s\n", req.Start, req.End)
	if w.OnRoute != nil {
		w.OnRoute(req)
	}
}

func (w *Window) centerOnField(f *widget.TextField) {
	ll, ok := f.LatLng()
	if !ok {
		w.Form.Status = f.Label + " point is not set"
		return
	}
	w.View.CenterOn(ll)
}

func (w *Window) FitOverlay() {
	if w.Overlay.Empty() {
		return
	}
	w.View.Fit(w.Overlay.Bound)
}

var (
	mapBackground = color.RGBA{20, 24, 28, 255}
	gridColor     = color.RGBA{45, 52, 60, 255}
	startColor    = color.RGBA{0, 200, 90, 255}
	endColor      = color.RGBA{230, 60, 60, 255}
	pinColor      = color.RGBA{80, 160, 255, 255}
)

func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(mapBackground)

	// 1. Graticule
	w.drawGrid(screen)

	// 2. Overlay
	for _, p := range w.Overlay.Paths {
		for i := 1; i < len(p.Points); i++ {
			x1, y1 := w.View.LatLngToScreen(p.Points[i-1])
			x2, y2 := w.View.LatLngToScreen(p.Points[i])
			vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), 1.5, p.Color, true)
		}
	}
	for _, l := range w.Overlay.Labels {
		x, y := w.View.LatLngToScreen(l.At)
		vector.DrawFilledCircle(screen, float32(x), float32(y), 3, l.Color, true)
		if l.Text != "" {
			ebitenutil.DebugPrintAt(screen, l.Text, int(x)+5, int(y)-8)
		}
	}

	// 3. Markers
	if ll, ok := w.Controller.LastClicked().Position(); ok {
		x, y := w.View.LatLngToScreen(ll)
		drawPin(screen, x, y, pinColor)
	}
	if ll, ok := w.Form.Start.LatLng(); ok {
		x, y := w.View.LatLngToScreen(ll)
		drawPin(screen, x, y, startColor)
	}
	if ll, ok := w.Form.End.LatLng(); ok {
		x, y := w.View.LatLngToScreen(ll)
		drawPin(screen, x, y, endColor)
	}

	// HUD
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Zoom: %.1f\n[Right click] Menu | [Space] Start | [E] End | [F] Fit | [Enter] Route", w.View.Zoom))

	mx, my := ebiten.CursorPosition()
	if w.View.Contains(float64(mx), float64(my)) {
		cursor := w.View.ScreenToLatLng(float64(mx), float64(my))
		cursorText := fmt.Sprintf("%.5f, %.5f", cursor.Lat, cursor.Lng)
		ebitenutil.DebugPrintAt(screen, cursorText, w.Width-len(cursorText)*6-10, 10)
	}
	if w.Attribution != "" {
		ax := int(w.View.X+w.View.Width) - len([]rune(w.Attribution))*6 - 6
		ay := int(w.View.Y+w.View.Height) - 18
		ebitenutil.DebugPrintAt(screen, w.Attribution, ax, ay)
	}

	drawForm(screen, w.Form)

	if w.Controller.Visible() {
		hovered := w.Menu.ItemAt(w.Controller.Position(), contextmenu.Point{X: float64(mx), Y: float64(my)})
		w.Menu.Draw(screen, w.Controller.Position(), hovered)
	}
}

func (w *Window) drawGrid(screen *ebiten.Image) {
	nw := w.View.ScreenToLatLng(w.View.X, w.View.Y)
	se := w.View.ScreenToLatLng(w.View.X+w.View.Width, w.View.Y+w.View.Height)

	// aim for a line roughly every 128px
	step := niceStep(128 * 360 / (maps.TileSize * math.Pow(2, w.View.Zoom)))

	for lng := math.Ceil(nw.Lng/step) * step; lng <= se.Lng; lng += step {
		x, _ := w.View.LatLngToScreen(maps.LatLng{Lat: w.View.Center.Lat, Lng: lng})
		vector.StrokeLine(screen, float32(x), float32(w.View.Y), float32(x), float32(w.View.Y+w.View.Height), 1, gridColor, false)
	}
	for lat := math.Ceil(se.Lat/step) * step; lat <= nw.Lat; lat += step {
		_, y := w.View.LatLngToScreen(maps.LatLng{Lat: lat, Lng: w.View.Center.Lng})
		vector.StrokeLine(screen, float32(w.View.X), float32(y), float32(w.View.X+w.View.Width), float32(y), 1, gridColor, false)
	}
}

func drawPin(screen *ebiten.Image, x, y float64, clr color.RGBA) {
	vector.DrawFilledCircle(screen, float32(x), float32(y)-10, 6, clr, true)
	vector.StrokeLine(screen, float32(x), float32(y)-4, float32(x), float32(y), 2, clr, true)
	vector.DrawFilledCircle(screen, float32(x), float32(y)-10, 2, color.White, true)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.Width = outsideWidth
	w.Height = outsideHeight
	paneH := max(float64(w.Height-widget.FormHeight), 0)
	w.View.SetPane(0, 0, float64(w.Width), paneH)
	w.Form.Layout(0, paneH, float64(w.Width))
	return w.Width, w.Height
}

// --- HELPER FUNCTIONS ---

// niceStep rounds up to 1, 2 or 5 times a power of ten.
func niceStep(raw float64) float64 {
	if raw <= 0 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5, 10} {
		if raw <= m*mag {
			return m * mag
		}
	}
	return 10 * mag
}
