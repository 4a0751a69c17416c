// Package module implements component H (spec.md §4.H): the module
// framework contract every screen implements, and the single-threaded
// cooperative process loop that dispatches events to the active module
// and drains its Results.
package module

import (
	"github.com/akavel/girt/internal/config"
	"github.com/akavel/girt/internal/diffload"
	"github.com/akavel/girt/internal/input"
	"github.com/akavel/girt/internal/render"
	"github.com/akavel/girt/internal/search"
	"github.com/akavel/girt/internal/todo"
	"github.com/akavel/girt/internal/viewdata"
)

// InputOptions is a bitset controlling which pre-canonicalised events the
// process loop attempts to handle generically (spec.md §4.H) before
// dispatching to the module's own HandleEvent.
type InputOptions struct {
	Movement bool
	Resize   bool
	UndoRedo bool
	Help     bool
}

// RenderContext is everything a module's BuildViewData needs to describe
// the current screen: window size, theme, and read-only handles to the
// shared engine state it may draw from.
type RenderContext struct {
	Width, Height int
	Theme         config.Theme

	TodoFile *todo.File

	// Slicer is the shared scroll/size state the view thread paints
	// through. Modules whose body is a 1:1 projection of their own
	// selection (List, ShowCommit) use it to keep the selected/scrolled
	// row in view by calling SetVScroll directly, rather than going
	// through the loop's generic +-1 nudge (which only ever moves by one
	// row per keypress and knows nothing about selection).
	Slicer *render.Slicer

	HasDiff    bool
	DiffStatus diffload.LoadStatus

	Search search.State

	HelpVisible bool
}

// ViewState is ephemeral UI state that lives outside TodoFile/ViewData —
// things like visual-selection mode — and is threaded into HandleEvent by
// the process loop rather than owned by any one module.
type ViewState struct {
	VisualMode bool
	HelpVisible bool
}

// Module is the contract every screen (List, Insert, ShowCommit, ...)
// implements, per spec.md §4.H.
type Module interface {
	// Activate runs when the loop switches into this module, carrying
	// the previously active state.
	Activate(previous State) Results
	// Deactivate runs when the loop switches away from this module.
	Deactivate() Results
	// BuildViewData produces this tick's screen description.
	BuildViewData(ctx RenderContext) *viewdata.ViewData
	// InputOptions reports which generic pre-handling this module wants.
	InputOptions() InputOptions
	// ReadEvent lets the module remap/translate the raw decoded event
	// before HandleEvent sees it (e.g. per-module keymap overlays).
	ReadEvent(event input.Event, keybindings config.KeyBindings) input.Event
	// HandleEvent processes event against the given ephemeral view state
	// and returns the artifacts the process loop should act on.
	HandleEvent(event input.Event, viewState *ViewState) Results
	// HandleError is invoked by the loop when an ArtifactError targets
	// this module directly (the Error module's own handling path).
	// fallback is the state a dismissal should return to; every module
	// but Error ignores it, since HandleError is never invoked on them.
	HandleError(err error, fallback State) Results
}
