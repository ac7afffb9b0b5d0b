package app

type EventKind uint8

const (
	EventInit EventKind = iota
	EventRedraw
	EventTick
	EventResize
	EventKey
	EventButton
	EventMotion
	EventScroll
	EventShutdown
)

var eventNames = [...]string{
	EventInit:     "init",
	EventRedraw:   "redraw",
	EventTick:     "tick",
	EventResize:   "resize",
	EventKey:      "key",
	EventButton:   "button",
	EventMotion:   "motion",
	EventScroll:   "scroll",
	EventShutdown: "shutdown",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

type Key rune

const KeyEscape Key = 0x1b

type Button uint8

const (
	ButtonLeft Button = iota + 1
	ButtonRight
	ButtonMiddle
)

type Action uint8

const (
	Press Action = iota
	Release
)

// Event is everything the windowing system reports to the application.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind EventKind

	Key    Key
	Button Button
	Action Action

	// pointer position in pixels, origin at the top left corner
	X, Y float64

	Width, Height int

	// wheel ticks, positive is away from the user
	Scroll float64
}
