// Package windowsize implements the WindowSizeError module (spec.md
// §4.H/§4.I): displayed whenever the terminal drops below the engine's
// minimum dimensions, showing which dimension(s) are too small. Returning
// to the previous state on a satisfying resize is handled generically by
// module.Loop.applyWindowGating before this module is ever asked to
// handle an event, so this module only renders.
package windowsize

import (
	"github.com/akavel/girt/internal/config"
	"github.com/akavel/girt/internal/input"
	"github.com/akavel/girt/internal/module"
	"github.com/akavel/girt/internal/viewdata"
)

// Module is the WindowSizeError module.
type Module struct{}

// New constructs a WindowSizeError module.
func New() *Module { return &Module{} }

// Activate is a no-op.
func (m *Module) Activate(previous module.State) module.Results { return nil }

// Deactivate is a no-op.
func (m *Module) Deactivate() module.Results { return nil }

// InputOptions opts into nothing: this state never handles input itself,
// it is only ever exited by the loop's window-size gating.
func (m *Module) InputOptions() module.InputOptions { return module.InputOptions{} }

// ReadEvent is identity.
func (m *Module) ReadEvent(event input.Event, keybindings config.KeyBindings) input.Event {
	return event
}

// BuildViewData picks one of three messages depending on which
// minimum(s) the current size violates.
func (m *Module) BuildViewData(ctx module.RenderContext) *viewdata.ViewData {
	vd := viewdata.New(nil)
	vd.SetTitle(true)

	tooShort := ctx.Height < module.MinimumWindowHeight
	tooNarrow := ctx.Width < module.MinimumCompactWindowWidth

	var text string
	switch {
	case tooShort && tooNarrow:
		text = " Window too small: widen and heighten the terminal "
	case tooShort:
		text = " Window too small: increase the terminal height "
	default:
		text = " Window too small: increase the terminal width "
	}
	vd.PushLeading(viewdata.NewViewLine(viewdata.Segment{Text: text, Style: viewdata.DefaultStyle()}))
	return vd
}

// HandleEvent is a no-op; the loop's gating is what restores the
// previous state once a resize satisfies the minimums.
func (m *Module) HandleEvent(event input.Event, viewState *module.ViewState) module.Results {
	return nil
}

// HandleError is never invoked on WindowSizeError.
func (m *Module) HandleError(err error, fallback module.State) module.Results { return nil }
