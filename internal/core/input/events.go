package input

// EventType defines the kind of input event.
type EventType string

const (
	EventClose  EventType = "close"
	EventKey    EventType = "key"
	EventWheel  EventType = "wheel"
	EventResize EventType = "resize"
)

// Key is a platform independent command key.
type Key string

const (
	KeyTogglePause      Key = "toggle_pause"
	KeyZoomIn           Key = "zoom_in"
	KeyZoomOut          Key = "zoom_out"
	KeyZoomReset        Key = "zoom_reset"
	KeyReset            Key = "reset"
	KeyToggleFullscreen Key = "toggle_fullscreen"
	KeyQuit             Key = "quit"
)

// Event is a single discrete input event.
type Event struct {
	Type EventType
	Key  Key
	// WheelY is the vertical wheel delta; positive scrolls up.
	WheelY float64
	// Modifier reports whether the zoom modifier (Ctrl) was held.
	Modifier bool
}

// Close returns a window close event.
func Close() Event {
	return Event{Type: EventClose}
}

// Press returns a key event.
func Press(key Key) Event {
	return Event{Type: EventKey, Key: key}
}

// Wheel returns a wheel event.
func Wheel(deltaY float64, modifier bool) Event {
	return Event{Type: EventWheel, WheelY: deltaY, Modifier: modifier}
}
