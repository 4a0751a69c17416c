// Package insert implements the Insert module (spec.md §4.I): a small
// sub-state machine that lets the user choose a new instruction's line
// type, type its content, then splice it into the todo file at the
// current selection and return to List.
package insert

import (
	"github.com/akavel/girt/internal/config"
	"github.com/akavel/girt/internal/input"
	"github.com/akavel/girt/internal/module"
	"github.com/akavel/girt/internal/todo"
	"github.com/akavel/girt/internal/tuicap"
	"github.com/akavel/girt/internal/viewdata"
)

// phase is Insert's own sub-state, grounded on
// original_source/modules/insert/line_type.rs's LineType choice step
// followed by an Edit-subcomponent content step (spec.md §4.I).
type phase int

const (
	phaseChooseType phase = iota
	phaseEditContent
)

// typeChoices maps the choosable StandardEvents to the Action they select,
// matching spec.md §4.I's "(pick/exec/label/reset/merge/update-ref/cancel)"
// — a superset of original_source's LineType enum (which has no
// update-ref variant), since spec.md is authoritative over the original.
var typeChoices = map[input.StandardEvent]todo.Action{
	input.ActionPick:      todo.ActionPick,
	input.ActionExec:      todo.ActionExec,
	input.ActionLabel:     todo.ActionLabel,
	input.ActionReset:     todo.ActionReset,
	input.ActionMerge:     todo.ActionMerge,
	input.ActionUpdateRef: todo.ActionUpdateRef,
}

// Module is the Insert module.
type Module struct {
	file *todo.File

	phase    phase
	selected todo.Action
	content  string
}

// New constructs an Insert module over file.
func New(file *todo.File) *Module {
	return &Module{file: file}
}

// Activate resets the sub-state machine to its first phase every time
// List transitions in via its InsertLine key.
func (m *Module) Activate(previous module.State) module.Results {
	m.phase = phaseChooseType
	m.content = ""
	return nil
}

// Deactivate is a no-op.
func (m *Module) Deactivate() module.Results { return nil }

// InputOptions opts into Help only; Insert owns its own content-entry
// keystrokes and must not have Undo/Redo or Movement intercepted out from
// under it.
func (m *Module) InputOptions() module.InputOptions {
	return module.InputOptions{Help: true}
}

// ReadEvent is identity.
func (m *Module) ReadEvent(event input.Event, keybindings config.KeyBindings) input.Event {
	return event
}

// BuildViewData renders the current sub-phase: the type choices, or the
// in-progress content buffer.
func (m *Module) BuildViewData(ctx module.RenderContext) *viewdata.ViewData {
	vd := viewdata.New(nil)
	vd.SetTitle(true)
	vd.SetHelp(ctx.HelpVisible)

	switch m.phase {
	case phaseChooseType:
		vd.PushLeading(viewdata.NewViewLine(viewdata.Segment{
			Text: " Insert: choose line type ", Style: viewdata.DefaultStyle(),
		}))
		vd.PushBody(viewdata.NewViewLine(viewdata.Segment{
			Text: " p)ick  x)exec  l)abel  r)eset  m)erge  u)pdate-ref  Esc)cancel ",
		}))
	case phaseEditContent:
		vd.PushLeading(viewdata.NewViewLine(viewdata.Segment{
			Text: " Insert " + m.selected.String() + ": type content, Enter to confirm ",
			Style: viewdata.DefaultStyle(),
		}))
		vd.PushBody(viewdata.NewViewLine(viewdata.Segment{Text: " > " + m.content}))
	}
	return vd
}

// HandleEvent drives the two phases of the sub-state machine.
func (m *Module) HandleEvent(event input.Event, viewState *module.ViewState) module.Results {
	switch m.phase {
	case phaseChooseType:
		return m.handleChooseType(event)
	case phaseEditContent:
		return m.handleEditContent(event)
	default:
		return nil
	}
}

func (m *Module) handleChooseType(event input.Event) module.Results {
	if event.Kind != input.KindStandard {
		return nil
	}
	if event.Standard == input.Reject {
		return module.Results{module.ChangeState(module.StateList)}
	}
	if action, ok := typeChoices[event.Standard]; ok {
		m.selected = action
		m.content = ""
		m.phase = phaseEditContent
	}
	return nil
}

func (m *Module) handleEditContent(event input.Event) module.Results {
	switch event.Kind {
	case input.KindStandard:
		switch event.Standard {
		case input.Reject:
			// Back out to type-choice rather than abandoning Insert
			// entirely, so a mis-picked type can be corrected.
			m.phase = phaseChooseType
			return nil
		case input.Confirm, input.SearchFinish:
			_, cursor := m.file.SelectedRange()
			m.file.InsertLine(cursor, m.selected, m.content)
			return module.Results{module.ChangeState(module.StateList)}
		}
		return nil
	case input.KindKey:
		switch event.Key.Code {
		case tuicap.KeyRune:
			m.content += string(event.Key.Rune)
		case tuicap.KeyBackspace:
			if len(m.content) > 0 {
				m.content = m.content[:len(m.content)-1]
			}
		}
		return nil
	default:
		return nil
	}
}

// HandleError is never invoked on Insert.
func (m *Module) HandleError(err error, fallback module.State) module.Results { return nil }
