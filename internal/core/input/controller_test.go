package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingTarget struct {
	pauses int
	resets int
}

func (target *recordingTarget) TogglePause() { target.pauses++ }
func (target *recordingTarget) Reset()       { target.resets++ }

func TestControllerKeys(t *testing.T) {
	target := &recordingTarget{}
	controller := NewController(target)

	assert.Equal(t, Action{}, controller.Apply(Press(KeyTogglePause)))
	assert.Equal(t, 1, target.pauses)

	controller.Apply(Press(KeyZoomIn))
	assert.InDelta(t, 1.15, controller.Zoom(), 1e-12)

	controller.Apply(Press(KeyZoomOut))
	assert.InDelta(t, 1.15*0.85, controller.Zoom(), 1e-12, "zoom out is not the inverse of zoom in")

	controller.Apply(Press(KeyZoomReset))
	assert.Equal(t, 1.0, controller.Zoom())

	controller.Apply(Press(KeyReset))
	assert.Equal(t, 1, target.resets)

	assert.Equal(t, Action{ToggleFullscreen: true}, controller.Apply(Press(KeyToggleFullscreen)))
	assert.Equal(t, Action{Quit: true}, controller.Apply(Press(KeyQuit)))
	assert.Equal(t, Action{Quit: true}, controller.Apply(Close()))
}

func TestControllerIgnoresUnknownInput(t *testing.T) {
	target := &recordingTarget{}
	controller := NewController(target)

	assert.Equal(t, Action{}, controller.Apply(Press(Key("bogus"))))
	assert.Equal(t, Action{}, controller.Apply(Event{Type: EventResize}))
	assert.Equal(t, Action{}, controller.Apply(Event{Type: EventType("joystick")}))
	assert.Equal(t, 1.0, controller.Zoom())
	assert.Zero(t, target.pauses)
	assert.Zero(t, target.resets)
}

func TestControllerWheelNeedsModifier(t *testing.T) {
	controller := NewController(&recordingTarget{})

	controller.Apply(Wheel(1, false))
	assert.Equal(t, 1.0, controller.Zoom())

	controller.Apply(Wheel(1, true))
	assert.InDelta(t, 1.15, controller.Zoom(), 1e-12)

	controller.Apply(Wheel(-2, true))
	assert.InDelta(t, 1.15*0.85, controller.Zoom(), 1e-12)

	controller.Apply(Wheel(0, true))
	assert.InDelta(t, 1.15*0.85, controller.Zoom(), 1e-12)
}

func TestZoomNeverReachesZero(t *testing.T) {
	controller := NewController(&recordingTarget{})
	for i := 0; i < 10000; i++ {
		controller.ZoomOut()
		assert.Greater(t, controller.Zoom(), MinZoom)
	}
	floor := controller.Zoom()
	controller.ZoomOut()
	assert.Equal(t, floor, controller.Zoom(), "further zoom out is rejected")
	assert.Greater(t, floor*(1-ZoomStep), 0.0)
	assert.LessOrEqual(t, floor*(1-ZoomStep), MinZoom)
}

func TestDrainMergesActions(t *testing.T) {
	target := &recordingTarget{}
	controller := NewController(target)

	action := controller.Drain([]Event{
		Press(KeyTogglePause),
		Press(KeyToggleFullscreen),
		Press(KeyTogglePause),
		Press(KeyToggleFullscreen),
		Press(KeyToggleFullscreen),
	})
	assert.Equal(t, Action{ToggleFullscreen: true}, action)
	assert.Equal(t, 2, target.pauses)

	action = controller.Drain([]Event{Close(), Press(KeyZoomIn)})
	assert.True(t, action.Quit)
	assert.InDelta(t, 1.15, controller.Zoom(), 1e-12, "events after close are still applied")

	assert.Equal(t, Action{}, controller.Drain(nil))
}
