// Package input turns discrete window events into clock state changes.
package input

import "math"

const (
	// ZoomStep is the relative zoom change per step.
	ZoomStep = 0.15
	// MinZoom is the smallest zoom that is still accepted.
	MinZoom = 0.01
)

// Target is the part of the time source the controller mutates.
type Target interface {
	TogglePause()
	Reset()
}

// Action collects the requests the caller has to carry out.
type Action struct {
	Quit             bool
	ToggleFullscreen bool
}

// Merge combines two actions. Fullscreen requests toggle, so two cancel out.
func (action Action) Merge(other Action) Action {
	return Action{
		Quit:             action.Quit || other.Quit,
		ToggleFullscreen: action.ToggleFullscreen != other.ToggleFullscreen,
	}
}

// Controller owns the zoom level and applies events to a Target.
type Controller struct {
	target Target
	zoom   float64
}

// NewController creates a controller with zoom 1.
func NewController(target Target) *Controller {
	return &Controller{
		target: target,
		zoom:   1,
	}
}

// Zoom returns the user zoom multiplier. It is always greater than MinZoom.
func (controller *Controller) Zoom() float64 {
	return controller.zoom
}

// Drain applies every event in order and returns the combined action.
func (controller *Controller) Drain(events []Event) Action {
	var action Action
	for _, event := range events {
		action = action.Merge(controller.Apply(event))
	}
	return action
}

// Apply handles a single event. Unknown events are ignored.
func (controller *Controller) Apply(event Event) Action {
	switch event.Type {
	case EventClose:
		return Action{Quit: true}
	case EventKey:
		return controller.applyKey(event.Key)
	case EventWheel:
		if !event.Modifier {
			return Action{}
		}
		if event.WheelY > 0 {
			controller.ZoomIn()
		} else if event.WheelY < 0 {
			controller.ZoomOut()
		}
	}
	return Action{}
}

func (controller *Controller) applyKey(key Key) Action {
	switch key {
	case KeyTogglePause:
		controller.target.TogglePause()
	case KeyZoomIn:
		controller.ZoomIn()
	case KeyZoomOut:
		controller.ZoomOut()
	case KeyZoomReset:
		controller.zoom = 1
	case KeyReset:
		controller.target.Reset()
	case KeyToggleFullscreen:
		return Action{ToggleFullscreen: true}
	case KeyQuit:
		return Action{Quit: true}
	}
	return Action{}
}

// ZoomIn grows the zoom by ZoomStep.
func (controller *Controller) ZoomIn() {
	controller.setZoom(controller.zoom + ZoomStep*controller.zoom)
}

// ZoomOut shrinks the zoom by ZoomStep. The change is rejected when the
// result would drop to MinZoom or below.
func (controller *Controller) ZoomOut() {
	controller.setZoom(controller.zoom - ZoomStep*controller.zoom)
}

func (controller *Controller) setZoom(zoom float64) {
	if !(zoom > MinZoom) || math.IsInf(zoom, 0) {
		return
	}
	controller.zoom = zoom
}
