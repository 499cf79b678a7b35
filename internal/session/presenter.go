package session

//go:generate mockgen -source=presenter.go -destination=mocks/mock_presenter.go -package=mocks

import (
	"image/color"

	"sowon/internal/core/display"
	"sowon/internal/core/input"
)

// Presenter is the platform side of the frame loop: it reports the window
// size and pending input, and carries out draw commands.
type Presenter interface {
	Size() display.Viewport
	PollEvents() []input.Event
	SetTint(tint color.NRGBA)
	Draw(frame display.Frame)
	SetTitle(title string)
	ToggleFullscreen()
	Present()
}
