// Package overlay is the Fyne presenter: a resizable window showing the
// glyph strip over a flat background.
package overlay

import (
	"fmt"
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"sowon/internal/core/display"
	"sowon/internal/core/input"
	"sowon/internal/logger"
	"sowon/internal/ui/atlas"
)

// Config defines overlay visuals.
type Config struct {
	Title      string
	Background color.NRGBA
	Fullscreen bool
	Width      float32
	Height     float32
	// Walker, when set, is drawn wherever a frame places the walker.
	Walker *atlas.WalkerSprites
}

// DefaultConfig returns the window defaults.
func DefaultConfig() Config {
	return Config{
		Title:      "sowon",
		Background: color.NRGBA{R: 24, G: 24, B: 24, A: 255},
		Width:      display.StripWidth,
		Height:     display.StripHeight * 2,
	}
}

type cellImages = [display.WiggleCount][display.GlyphCount]image.Image

// Window manages the overlay UI. Its Presenter methods may be called from
// any goroutine; Fyne work is marshalled onto the UI thread.
type Window struct {
	window     fyne.Window
	config     Config
	atlas      *atlas.Atlas
	queue      *Queue
	log        *logger.Logger
	background *canvas.Rectangle
	cells      [display.CellCount]*canvas.Image
	walker     *canvas.Image
	content    *fyne.Container

	tints   map[color.NRGBA]*cellImages
	current *cellImages
	control bool
}

// New creates the overlay window. Call Show to display it.
func New(app fyne.App, config Config, sheet *atlas.Atlas, queue *Queue, log *logger.Logger) *Window {
	if log == nil {
		log = logger.Discard()
	}
	window := app.NewWindow(config.Title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(config.Background)
	catcher := newScrollCatcher()
	overlay := &Window{
		window:     window,
		config:     config,
		atlas:      sheet,
		queue:      queue,
		log:        log,
		background: background,
		tints:      make(map[color.NRGBA]*cellImages),
	}

	strip := container.NewWithoutLayout()
	// The walker goes under the digits.
	if config.Walker != nil {
		overlay.walker = canvas.NewImageFromImage(nil)
		overlay.walker.FillMode = canvas.ImageFillStretch
		overlay.walker.ScaleMode = canvas.ImageScalePixels
		overlay.walker.Hide()
		strip.Add(overlay.walker)
	}
	for i := range overlay.cells {
		cell := canvas.NewImageFromImage(nil)
		cell.FillMode = canvas.ImageFillStretch
		cell.ScaleMode = canvas.ImageScaleSmooth
		overlay.cells[i] = cell
		strip.Add(cell)
	}
	catcher.onScroll = func(deltaY float32) {
		if event, ok := wheelEvent(deltaY, overlay.control); ok {
			queue.Push(event)
		}
	}
	overlay.content = container.NewStack(background, strip, catcher)
	window.SetContent(overlay.content)
	window.Resize(fyne.NewSize(config.Width, config.Height))
	overlay.bindInput()

	if config.Fullscreen {
		window.SetFullScreen(true)
	}
	return overlay
}

func (overlay *Window) bindInput() {
	window := overlay.window
	window.SetCloseIntercept(func() {
		overlay.queue.Push(input.Close())
	})
	window.Canvas().SetOnTypedRune(func(r rune) {
		if key, ok := runeKey(r); ok {
			overlay.queue.Push(input.Press(key))
		}
	})
	window.Canvas().SetOnTypedKey(func(event *fyne.KeyEvent) {
		if key, ok := namedKey(event.Name); ok {
			overlay.queue.Push(input.Press(key))
		}
	})
	if deskCanvas, ok := window.Canvas().(desktop.Canvas); ok {
		deskCanvas.SetOnKeyDown(func(event *fyne.KeyEvent) {
			if isControl(event.Name) {
				overlay.control = true
			}
		})
		deskCanvas.SetOnKeyUp(func(event *fyne.KeyEvent) {
			if isControl(event.Name) {
				overlay.control = false
			}
		})
	} else {
		overlay.log.Debug("canvas has no key up/down events, ctrl+wheel zoom disabled")
	}
}

// Show displays the window.
func (overlay *Window) Show() {
	overlay.window.Show()
}

// Size returns the canvas size in device independent units.
func (overlay *Window) Size() display.Viewport {
	var size fyne.Size
	fyne.DoAndWait(func() {
		size = overlay.window.Canvas().Size()
	})
	return display.Viewport{Width: int(size.Width), Height: int(size.Height)}
}

// PollEvents drains pending input.
func (overlay *Window) PollEvents() []input.Event {
	return overlay.queue.Drain()
}

// SetTint selects the cell images for a colour, building them on first use.
func (overlay *Window) SetTint(tint color.NRGBA) {
	images, ok := overlay.tints[tint]
	if !ok {
		cells := overlay.atlas.Tinted(tint).Cells()
		images = &cells
		overlay.tints[tint] = images
		overlay.log.Debug("tinted atlas built for %v", tint)
	}
	overlay.current = images
}

// Draw places the eight cells.
func (overlay *Window) Draw(frame display.Frame) {
	images := overlay.current
	if images == nil {
		return
	}
	fyne.DoAndWait(func() {
		for i, cell := range frame.Cells {
			object := overlay.cells[i]
			object.Image = images[cell.Wiggle][cell.Glyph]
			object.Move(fyne.NewPos(float32(cell.Rect.X), float32(cell.Rect.Y)))
			object.Resize(fyne.NewSize(float32(cell.Rect.W), float32(cell.Rect.H)))
		}
		overlay.drawWalker(frame.Walker)
	})
}

func (overlay *Window) drawWalker(walker *display.Walker) {
	if overlay.walker == nil {
		return
	}
	if walker == nil {
		overlay.walker.Hide()
		return
	}
	flipped := 0
	if walker.Flipped {
		flipped = 1
	}
	overlay.walker.Image = overlay.config.Walker[flipped][walker.Frame%display.WalkerFrames]
	overlay.walker.Move(fyne.NewPos(float32(walker.Rect.X), float32(walker.Rect.Y)))
	overlay.walker.Resize(fyne.NewSize(float32(walker.Rect.W), float32(walker.Rect.H)))
	overlay.walker.Show()
}

// SetTitle shows the displayed time in the title bar.
func (overlay *Window) SetTitle(title string) {
	text := fmt.Sprintf("%s - %s", title, overlay.config.Title)
	fyne.DoAndWait(func() {
		overlay.window.SetTitle(text)
	})
}

// ToggleFullscreen switches between windowed and fullscreen.
func (overlay *Window) ToggleFullscreen() {
	fyne.DoAndWait(func() {
		fullscreen := !overlay.window.FullScreen()
		overlay.window.SetFullScreen(fullscreen)
		overlay.log.Debug("fullscreen: %t", fullscreen)
	})
}

// Present refreshes the cells drawn this frame.
func (overlay *Window) Present() {
	fyne.DoAndWait(func() {
		for _, cell := range overlay.cells {
			cell.Refresh()
		}
		if overlay.walker != nil {
			overlay.walker.Refresh()
		}
	})
}

// scrollCatcher is a transparent widget covering the window so wheel
// events reach the overlay.
type scrollCatcher struct {
	widget.BaseWidget
	onScroll func(deltaY float32)
}

func newScrollCatcher() *scrollCatcher {
	catcher := &scrollCatcher{}
	catcher.ExtendBaseWidget(catcher)
	return catcher
}

func (catcher *scrollCatcher) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}

func (catcher *scrollCatcher) Scrolled(event *fyne.ScrollEvent) {
	if catcher.onScroll != nil {
		catcher.onScroll(event.Scrolled.DY)
	}
}
