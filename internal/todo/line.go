package todo

// Line is the parsed form of one instruction line. Outside this package it
// is treated as immutable; all mutation happens through TodoFile's guarded
// façade, which replaces a Line wholesale rather than mutating in place.
type Line struct {
	action  Action
	hash    string
	content string
	mutated bool

	// original is the on-disk snapshot captured at parse time, used by
	// IsOriginal/is_modified. hasOriginal is false only for lines that
	// were never loaded from disk (e.g. inserted fresh).
	original    lineSnapshot
	hasOriginal bool
}

// lineSnapshot is the on-disk baseline a Line is compared against.
type lineSnapshot struct {
	action  Action
	hash    string
	content string
}

// NewLine constructs a parsed instruction line and records it as its own
// on-disk baseline.
func NewLine(action Action, hash, content string) Line {
	l := Line{action: action, hash: hash, content: content}
	l.original = lineSnapshot{action: action, hash: hash, content: content}
	l.hasOriginal = true
	return l
}

// NewNoop constructs the noop sentinel line.
func NewNoop() Line {
	return NewLine(ActionNoop, "", "")
}

// Action returns the line's verb.
func (l Line) Action() Action { return l.action }

// Hash returns the commit id operand, if any.
func (l Line) Hash() string { return l.hash }

// Content returns the free-text operand, if any.
func (l Line) Content() string { return l.content }

// Mutated reports whether this line has been edited since it was parsed.
func (l Line) Mutated() bool { return l.mutated }

// IsOriginal reports whether the line is unchanged from its on-disk form.
func (l Line) IsOriginal() bool {
	if !l.hasOriginal {
		return false
	}
	return l.original.action == l.action && l.original.hash == l.hash && l.original.content == l.content
}

// WithAction returns a copy of l with a new action, marked mutated if changed.
func (l Line) WithAction(a Action) Line {
	if a == l.action {
		return l
	}
	l.action = a
	l.mutated = true
	return l
}

// WithContent returns a copy of l with new content, marked mutated if changed.
func (l Line) WithContent(c string) Line {
	if c == l.content {
		return l
	}
	l.content = c
	l.mutated = true
	return l
}

// ResetOriginal stamps the current values as the new on-disk baseline; used
// by Write after a successful save.
func (l Line) ResetOriginal() Line {
	l.original = lineSnapshot{action: l.action, hash: l.hash, content: l.content}
	l.hasOriginal = true
	l.mutated = false
	return l
}

// ToLine renders the on-disk textual form of the instruction, excluding the
// trailing newline.
func (l Line) ToLine() string {
	switch {
	case l.action == ActionNoop:
		return ""
	case !l.action.HasHash() && !l.action.HasContent():
		return l.action.String()
	case l.action.HasHash():
		if l.content == "" {
			return l.action.String() + " " + l.hash
		}
		return l.action.String() + " " + l.hash + " " + l.content
	default: // HasContent only
		return l.action.String() + " " + l.content
	}
}
