package todo

import "fmt"

// Action is the verb of one rebase instruction line.
type Action int

const (
	// ActionNoop is the sentinel for a blank/unparseable instruction slot.
	ActionNoop Action = iota
	ActionPick
	ActionReword
	ActionEdit
	ActionSquash
	ActionFixup
	ActionDrop
	ActionExec
	ActionBreak
	ActionLabel
	ActionReset
	ActionMerge
	ActionUpdateRef
)

var actionNames = map[Action]string{
	ActionNoop:      "noop",
	ActionPick:      "pick",
	ActionReword:    "reword",
	ActionEdit:      "edit",
	ActionSquash:    "squash",
	ActionFixup:     "fixup",
	ActionDrop:      "drop",
	ActionExec:      "exec",
	ActionBreak:     "break",
	ActionLabel:     "label",
	ActionReset:     "reset",
	ActionMerge:     "merge",
	ActionUpdateRef: "update-ref",
}

var actionsByName = func() map[string]Action {
	m := make(map[string]Action, len(actionNames))
	for a, n := range actionNames {
		m[n] = a
	}
	return m
}()

// String implements fmt.Stringer.
func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ParseAction maps a todo-file token to an Action.
func ParseAction(token string) (Action, bool) {
	a, ok := actionsByName[token]
	return a, ok
}

// HasHash reports whether this action carries a commit hash operand.
func (a Action) HasHash() bool {
	switch a {
	case ActionPick, ActionReword, ActionEdit, ActionSquash, ActionFixup, ActionDrop:
		return true
	default:
		return false
	}
}

// HasContent reports whether this action carries a free-text content operand.
func (a Action) HasContent() bool {
	switch a {
	case ActionExec, ActionLabel, ActionReset, ActionMerge, ActionUpdateRef:
		return true
	default:
		return false
	}
}

// Mutable reports whether update_range may change this action's verb/content.
// break and noop carry no operand to mutate.
func (a Action) Mutable() bool {
	return a != ActionBreak && a != ActionNoop
}
