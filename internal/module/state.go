package module

// State is a module identity, matching spec.md §3's State enum.
type State int

const (
	StateList State = iota
	StateInsert
	StateShowCommit
	StateExternalEditor
	StateConfirmAbort
	StateConfirmRebase
	StateError
	StateWindowSizeError
)

func (s State) String() string {
	switch s {
	case StateList:
		return "List"
	case StateInsert:
		return "Insert"
	case StateShowCommit:
		return "ShowCommit"
	case StateExternalEditor:
		return "ExternalEditor"
	case StateConfirmAbort:
		return "ConfirmAbort"
	case StateConfirmRebase:
		return "ConfirmRebase"
	case StateError:
		return "Error"
	case StateWindowSizeError:
		return "WindowSizeError"
	default:
		return "Unknown"
	}
}

// MinimumWindowHeight and MinimumCompactWindowWidth gate entry into
// StateWindowSizeError (spec.md §4.H).
const (
	MinimumWindowHeight       = 5
	MinimumCompactWindowWidth = 20
)
