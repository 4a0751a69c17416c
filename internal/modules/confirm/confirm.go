// Package confirm implements the ConfirmAbort and ConfirmRebase modules
// (spec.md §4.I): a Yes/No prompt that either clears the todo file and
// exits, or writes it as-is and exits, with No returning to whichever
// state asked for confirmation.
package confirm

import (
	"github.com/akavel/girt/internal/config"
	"github.com/akavel/girt/internal/exitstatus"
	"github.com/akavel/girt/internal/input"
	"github.com/akavel/girt/internal/module"
	"github.com/akavel/girt/internal/todo"
	"github.com/akavel/girt/internal/viewdata"
)

// Kind distinguishes the two confirmations this package hosts; spec.md
// names them as separate states (StateConfirmAbort/StateConfirmRebase)
// sharing one Yes/No shape, so one Module type is parameterized by Kind
// rather than duplicated.
type Kind int

const (
	KindAbort Kind = iota
	KindRebase
)

// Module is the ConfirmAbort/ConfirmRebase module.
type Module struct {
	file *todo.File
	kind Kind

	previous module.State
}

// New constructs a confirmation module of the given kind over file.
func New(file *todo.File, kind Kind) *Module {
	return &Module{file: file, kind: kind}
}

// Activate records where to return to on No.
func (m *Module) Activate(previous module.State) module.Results {
	m.previous = previous
	return nil
}

// Deactivate is a no-op.
func (m *Module) Deactivate() module.Results { return nil }

// InputOptions opts into nothing generic: only Confirm/Reject matter here.
func (m *Module) InputOptions() module.InputOptions { return module.InputOptions{} }

// ReadEvent is identity.
func (m *Module) ReadEvent(event input.Event, keybindings config.KeyBindings) input.Event {
	return event
}

// BuildViewData renders the Yes/No prompt for this Kind.
func (m *Module) BuildViewData(ctx module.RenderContext) *viewdata.ViewData {
	vd := viewdata.New(nil)
	vd.SetTitle(true)

	var prompt string
	switch m.kind {
	case KindAbort:
		prompt = " Are you sure you want to abort the rebase? (y/n) "
	case KindRebase:
		prompt = " Are you sure you want to rebase? (y/n) "
	}
	vd.PushLeading(viewdata.NewViewLine(viewdata.Segment{Text: prompt, Style: viewdata.DefaultStyle()}))
	return vd
}

// HandleEvent answers Yes (Confirm) or No (Reject).
func (m *Module) HandleEvent(event input.Event, viewState *module.ViewState) module.Results {
	if event.Kind != input.KindStandard {
		return nil
	}
	switch event.Standard {
	case input.Confirm:
		return m.yes()
	case input.Reject:
		return module.Results{module.ChangeState(m.previous)}
	}
	return nil
}

func (m *Module) yes() module.Results {
	if m.kind == KindAbort && !m.file.IsEmpty() {
		m.file.RemoveLines(0, m.file.Len()-1)
	}
	if err := m.file.Write(); err != nil {
		return module.Results{module.ErrorArtifact(err)}
	}
	return module.Results{module.Exit(exitstatus.Good)}
}

// HandleError is never invoked on Confirm.
func (m *Module) HandleError(err error, fallback module.State) module.Results { return nil }
