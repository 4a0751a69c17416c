// Package tuicap defines the terminal capability consumed by the view and
// input threads (spec.md §6) and is the one place a concrete terminal
// backend (tcell) is wired in. Everything above this package talks only to
// the TUI interface.
package tuicap

import (
	"time"

	"github.com/akavel/girt/internal/config"
)

// ColorMode is the terminal's negotiated color depth.
type ColorMode int

const (
	ColorModeNone ColorMode = iota
	ColorMode8
	ColorMode256
	ColorModeTrueColor
)

// Modifiers is a bitset of key modifiers, decoded in any order per spec.md
// §4.D ("Control|Alt|Shift in any order").
type Modifiers uint8

const (
	ModNone  Modifiers = 0
	ModShift Modifiers = 1 << iota
	ModAlt
	ModCtrl
)

// KeyCode names a non-rune key (arrows, function keys, Home/End, etc).
// Values mirror tcell's own Key enum closely enough that the adapter is a
// near-identity mapping, but this package does not import tcell directly so
// other backends stay pluggable.
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDn
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlK
	KeyCtrlQ
	KeyCtrlS
	KeyCtrlU
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlUnderscore
	KeyUnknown
)

// KeyEvent is one decoded keypress.
type KeyEvent struct {
	Code      KeyCode
	Rune      rune
	Modifiers Modifiers
}

// MouseEvent is a decoded mouse action; girt does not act on these today
// but the capability still reports them so a module could opt in later.
type MouseEvent struct {
	X, Y    int
	Buttons int
}

// EventKind tags the union carried by Event.
type EventKind int

const (
	EventNone EventKind = iota
	EventKey
	EventMouse
	EventResize
	EventError
)

// Event is the raw, backend-decoded terminal event handed to the input
// thread, which further decodes it into a high-level StandardEvent via the
// keybinding map.
type Event struct {
	Kind   EventKind
	Key    KeyEvent
	Mouse  MouseEvent
	Width  int
	Height int
	Err    error
}

// TUI is the terminal capability interface (spec.md §6): everything the
// view and input threads need from a concrete terminal backend.
type TUI interface {
	GetColorMode() ColorMode
	Start() error
	End() error
	Reset()
	Flush() error
	Print(s string)
	SetColor(fg, bg config.Color)
	SetDim(dim bool)
	SetUnderline(underline bool)
	SetReverse(reverse bool)
	MoveToColumn(x int)
	MoveNextLine()
	GetSize() (width, height int)
	// ReadEvent blocks up to timeout for the next terminal event, returning
	// a zero-value Event{Kind: EventNone} on timeout.
	ReadEvent(timeout time.Duration) Event
}
