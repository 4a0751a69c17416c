package input

import (
	"sort"
	"strings"

	"github.com/akavel/girt/internal/config"
	"github.com/akavel/girt/internal/tuicap"
)

// standardEventNames maps config.KeyBindings' action-name strings to the
// StandardEvent they resolve to. Kept separate from the StandardEvent enum
// itself so the TOML-facing name stays a stable string independent of
// Go identifier/ordering churn.
var standardEventNames = map[string]StandardEvent{
	"Abort":              Abort,
	"ActionBreak":        ActionBreak,
	"ActionDrop":         ActionDrop,
	"ActionEdit":         ActionEdit,
	"ActionExec":         ActionExec,
	"ActionFixup":        ActionFixup,
	"ActionLabel":        ActionLabel,
	"ActionMerge":        ActionMerge,
	"ActionPick":         ActionPick,
	"ActionReset":        ActionReset,
	"ActionReword":       ActionReword,
	"ActionSquash":       ActionSquash,
	"ActionUpdateRef":    ActionUpdateRef,
	"Confirm":            Confirm,
	"DuplicateLine":      DuplicateLine,
	"Edit":               ActionEdit,
	"ForceAbort":         ForceAbort,
	"ForceRebase":        ForceRebase,
	"Help":               Help,
	"InsertLine":         InsertLine,
	"MoveCursorDown":     ScrollDown,
	"MoveCursorEnd":      ScrollEnd,
	"MoveCursorHome":     ScrollHome,
	"MoveCursorLeft":     ScrollLeft,
	"MoveCursorPageDown": ScrollPageDown,
	"MoveCursorPageUp":   ScrollPageUp,
	"MoveCursorRight":    ScrollRight,
	"MoveCursorUp":       ScrollUp,
	"OpenInEditor":       OpenInEditor,
	"Rebase":             Rebase,
	"Redo":               Redo,
	"Reject":             Reject,
	"Remove":             Remove,
	"SearchFinish":       SearchFinish,
	"SearchNext":         SearchNext,
	"SearchPrevious":     SearchPrevious,
	"SearchStart":        SearchStart,
	"ShowCommit":         ShowCommit,
	"ShowDiff":           ShowDiff,
	"SwapSelectedDown":   SwapSelectedDown,
	"SwapSelectedUp":     SwapSelectedUp,
	"ToggleVisualMode":   ToggleVisualMode,
	"Undo":               Undo,
}

// chord identifies a decoded key regardless of which modifier order the
// user configured it with.
type chord struct {
	mods tuicap.Modifiers
	code tuicap.KeyCode
	r    rune
}

// Keymap resolves a decoded tuicap.KeyEvent to a StandardEvent using a
// config.KeyBindings table. Decoding accepts Control|Alt|Shift in any
// combination/order (spec.md §4.D) because chord parsing normalizes the
// modifier set into a bitmask before matching.
type Keymap struct {
	byChord map[chord]StandardEvent
}

// NewKeymap builds a Keymap from bindings, skipping any chord string it
// cannot parse (an unknown named key in a user config file is a soft
// failure, not fatal — Config.Load validates types but not every string
// against this table). When several actions list the same chord, the
// action whose name sorts first keeps it.
func NewKeymap(bindings config.KeyBindings) *Keymap {
	km := &Keymap{byChord: make(map[chord]StandardEvent)}
	actions := make([]string, 0, len(bindings.Bindings))
	for action := range bindings.Bindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)
	for _, action := range actions {
		ev, ok := standardEventNames[action]
		if !ok {
			continue
		}
		for _, raw := range bindings.Bindings[action] {
			c, ok := parseChord(raw)
			if !ok {
				continue
			}
			if _, taken := km.byChord[c]; !taken {
				km.byChord[c] = ev
			}
		}
	}
	return km
}

// Resolve looks up key in the keymap, returning (event, true) on a match.
func (km *Keymap) Resolve(key tuicap.KeyEvent) (StandardEvent, bool) {
	if c, ok := km.byChord[chord{mods: key.Modifiers, code: key.Code, r: 0}]; ok {
		return c, true
	}
	if key.Code == tuicap.KeyRune {
		if c, ok := km.byChord[chord{mods: key.Modifiers, code: tuicap.KeyRune, r: key.Rune}]; ok {
			return c, true
		}
	}
	return StandardNone, false
}

var namedKeys = map[string]tuicap.KeyCode{
	"Up":        tuicap.KeyUp,
	"Down":      tuicap.KeyDown,
	"Left":      tuicap.KeyLeft,
	"Right":     tuicap.KeyRight,
	"Home":      tuicap.KeyHome,
	"End":       tuicap.KeyEnd,
	"PageUp":    tuicap.KeyPgUp,
	"PageDown":  tuicap.KeyPgDn,
	"Enter":     tuicap.KeyEnter,
	"Escape":    tuicap.KeyEscape,
	"Tab":       tuicap.KeyTab,
	"Backspace": tuicap.KeyBackspace,
	"Delete":    tuicap.KeyDelete,
	"Insert":    tuicap.KeyInsert,
	"F1":        tuicap.KeyF1,
	"F2":        tuicap.KeyF2,
	"F3":        tuicap.KeyF3,
	"F4":        tuicap.KeyF4,
}

// parseChord parses strings like "Control+Shift+Up", "Control+d", "j",
// "PageDown" into a chord. Modifier tokens may appear in any order; the
// final token names either a bare rune or one of namedKeys.
func parseChord(raw string) (chord, bool) {
	parts := strings.Split(raw, "+")
	if len(parts) == 0 {
		return chord{}, false
	}
	var mods tuicap.Modifiers
	last := parts[len(parts)-1]
	for _, p := range parts[:len(parts)-1] {
		switch p {
		case "Control":
			mods |= tuicap.ModCtrl
		case "Alt":
			mods |= tuicap.ModAlt
		case "Shift":
			mods |= tuicap.ModShift
		default:
			return chord{}, false
		}
	}

	if code, ok := namedKeys[last]; ok {
		return chord{mods: mods, code: code}, true
	}
	runes := []rune(last)
	if len(runes) == 1 {
		return chord{mods: mods, code: tuicap.KeyRune, r: runes[0]}, true
	}
	return chord{}, false
}
