package config

// KeyBindings maps a configurable set of key-chord strings (e.g.
// "Control+Shift+Up", "j", "Home", "F1") to a high-level action name. The
// input decoder (internal/input) owns chord parsing; this package only
// owns the configured table and its defaults.
type KeyBindings struct {
	// Bindings maps an action name (e.g. "MoveCursorDown") to the list of
	// chord strings that trigger it. internal/input builds one keymap for
	// all modules from this table; a chord listed under several actions
	// goes to the action whose name sorts first, so in the defaults "d"
	// resolves to ActionDrop, "n" to Reject and "Enter" to Confirm.
	Bindings map[string][]string
}

// DefaultKeyBindings returns the built-in chord table, grounded on the
// teacher's key-combination constants (getKey/altKey/ctrlKey) generalized
// from hard-coded switch cases into a configurable map.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{Bindings: map[string][]string{
		"Abort":             {"q"},
		"ActionBreak":       {"b"},
		"ActionDrop":        {"d"},
		"ActionEdit":        {"e"},
		"ActionFixup":       {"f"},
		"ActionPick":        {"p"},
		"ActionReword":      {"r"},
		"ActionSquash":      {"s"},
		"Confirm":           {"y", "Enter"},
		"DuplicateLine":     {"Control+d"},
		"Edit":              {"E"},
		"ForceAbort":        {"Control+q"},
		"ForceRebase":       {"Control+w"},
		"Help":              {"?"},
		"InsertLine":        {"I"},
		"MoveCursorDown":    {"Down", "j"},
		"MoveCursorEnd":     {"End"},
		"MoveCursorHome":    {"Home"},
		"MoveCursorLeft":    {"Left", "h"},
		"MoveCursorPageDown": {"PageDown"},
		"MoveCursorPageUp":  {"PageUp"},
		"MoveCursorRight":   {"Right", "l"},
		"MoveCursorUp":      {"Up", "k"},
		"OpenInEditor":      {"!"},
		"Rebase":            {"w"},
		"Redo":              {"Control+y"},
		"Reject":            {"n", "Escape"},
		"Remove":            {"Control+k"},
		"SearchFinish":      {"Enter"},
		"SearchNext":        {"n"},
		"SearchPrevious":    {"N"},
		"SearchStart":       {"/"},
		"ShowCommit":        {"c"},
		"ShowDiff":          {"d"},
		"SwapSelectedDown":  {"Control+Down", "J"},
		"SwapSelectedUp":    {"Control+Up", "K"},
		"ToggleVisualMode":  {"v"},
		"Undo":              {"Control+z"},
	}}
}
