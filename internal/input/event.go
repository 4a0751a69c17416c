// Package input implements component D (spec.md §4.D): decoding raw
// terminal events into high-level Events against a configurable keymap,
// and the input thread that owns the read loop.
package input

import "github.com/akavel/girt/internal/tuicap"

// StandardEvent is the high-level, module-agnostic vocabulary a keybinding
// chord resolves to. Modules interpret a subset of these depending on
// their input_options (spec.md §4.H).
type StandardEvent int

const (
	StandardNone StandardEvent = iota

	Exit
	Kill
	Help

	ScrollUp
	ScrollDown
	ScrollLeft
	ScrollRight
	ScrollPageUp
	ScrollPageDown
	ScrollHome
	ScrollEnd

	Undo
	Redo

	SearchStart
	SearchNext
	SearchPrevious
	SearchFinish

	OpenInEditor
	ToggleVisualMode

	ActionBreak
	ActionDrop
	ActionEdit
	ActionExec
	ActionFixup
	ActionPick
	ActionReword
	ActionSquash
	ActionLabel
	ActionReset
	ActionMerge
	ActionUpdateRef

	InsertLine
	DuplicateLine
	Remove
	SwapSelectedUp
	SwapSelectedDown

	ShowCommit
	ShowDiff

	Confirm
	Reject

	Abort
	ForceAbort
	Rebase
	ForceRebase
)

// EventKind tags the union carried by Event.
type EventKind int

const (
	KindNone EventKind = iota
	KindKey
	KindMouse
	KindResize
	KindStandard
)

// Event is the decoded event the process loop and modules operate on.
type Event struct {
	Kind     EventKind
	Key      tuicap.KeyEvent
	Mouse    tuicap.MouseEvent
	Width    int
	Height   int
	Standard StandardEvent
}

// NoneEvent is the canonical empty event.
var NoneEvent = Event{Kind: KindNone}
