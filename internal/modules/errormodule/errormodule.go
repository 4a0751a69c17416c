// Package errormodule implements the Error module (spec.md §4.I):
// displays the error that triggered it plus the state to return to;
// any key returns there.
package errormodule

import (
	"github.com/akavel/girt/internal/config"
	"github.com/akavel/girt/internal/input"
	"github.com/akavel/girt/internal/module"
	"github.com/akavel/girt/internal/viewdata"
)

// Module is the Error module.
type Module struct {
	err      error
	fallback module.State
}

// New constructs an Error module. fallback is returned to when no
// ArtifactError carried its own (module.Loop falls back to the state the
// error interrupted, recorded as l.beforeError).
func New() *Module {
	return &Module{}
}

// HandleError records the error to display and the state a dismissal
// returns to; it is the sole way this module's state is populated,
// invoked directly by module.Loop.dispatch rather than through Activate
// (spec.md §4.H: "ArtifactError targets the Error module directly").
func (m *Module) HandleError(err error, fallback module.State) module.Results {
	m.err = err
	m.fallback = fallback
	return nil
}

// Activate is a no-op; HandleError populates this module's state instead.
func (m *Module) Activate(previous module.State) module.Results { return nil }

// Deactivate clears the displayed error.
func (m *Module) Deactivate() module.Results {
	m.err = nil
	return nil
}

// InputOptions opts into nothing generic: any key dismisses.
func (m *Module) InputOptions() module.InputOptions { return module.InputOptions{} }

// ReadEvent is identity.
func (m *Module) ReadEvent(event input.Event, keybindings config.KeyBindings) input.Event {
	return event
}

// BuildViewData renders the error message.
func (m *Module) BuildViewData(ctx module.RenderContext) *viewdata.ViewData {
	vd := viewdata.New(nil)
	vd.SetTitle(true)
	text := " Error "
	if m.err != nil {
		text = " Error: " + m.err.Error() + " "
	}
	vd.PushLeading(viewdata.NewViewLine(viewdata.Segment{Text: text, Style: viewdata.DefaultStyle()}))
	vd.PushTrailing(viewdata.NewViewLine(viewdata.Segment{Text: " press any key to continue "}))
	return vd
}

// HandleEvent returns to the fallback state on any key.
func (m *Module) HandleEvent(event input.Event, viewState *module.ViewState) module.Results {
	if event.Kind == input.KindNone {
		return nil
	}
	return module.Results{module.ChangeState(m.fallback)}
}
