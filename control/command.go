// Package control defines the input commands the UI sends to the slider and
// the command loop that applies them one at a time. The UI layer only
// translates fyne events into commands; the mapping from a command to
// controller transitions lives here so it can be tested without a window.
package control

// CommandType enumerates supported input sources.
type CommandType int

const (
	CmdPrevious CommandType = iota
	CmdNext
	CmdGoTo
	CmdKey
	CmdSwipe
	CmdHoverEnter
	CmdHoverLeave
	CmdVisibility
)

func (t CommandType) String() string {
	switch t {
	case CmdPrevious:
		return "previous"
	case CmdNext:
		return "next"
	case CmdGoTo:
		return "goto"
	case CmdKey:
		return "key"
	case CmdSwipe:
		return "swipe"
	case CmdHoverEnter:
		return "hover-enter"
	case CmdHoverLeave:
		return "hover-leave"
	case CmdVisibility:
		return "visibility"
	}
	return "unknown"
}

// Key is a directional key press.
type Key int

const (
	KeyOther Key = iota
	KeyLeft
	KeyRight
)

// Command is the message sent from the UI to Dispatcher. The optional Reply
// channel is signalled once the command has been applied, which keeps
// callers that need to read the new state in sync.
type Command struct {
	Type CommandType

	Index int // CmdGoTo: the dot that was activated

	StartX, EndX float32 // CmdSwipe

	Key        Key  // CmdKey
	InViewport bool // CmdKey: whether the slider was on screen

	Hidden bool // CmdVisibility

	Reply chan error // optional reply channel
}

// InViewport reports whether a vertical span [top, bottom) intersects a
// viewport of the given height starting at 0.
func InViewport(top, bottom, viewportHeight float32) bool {
	return top < viewportHeight && bottom > 0
}
