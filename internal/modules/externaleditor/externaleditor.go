// Package externaleditor implements the ExternalEditor module (spec.md
// §4.I): writes the current todo to disk, hands the terminal to the
// user's $GIT_EDITOR, reloads on success, and offers a small recovery
// menu when the child produced an empty file or failed outright.
package externaleditor

import (
	"os"
	"strings"

	"github.com/akavel/girt/internal/config"
	"github.com/akavel/girt/internal/exitstatus"
	"github.com/akavel/girt/internal/input"
	"github.com/akavel/girt/internal/module"
	"github.com/akavel/girt/internal/todo"
	"github.com/akavel/girt/internal/viewdata"
)

// phase is the module's own sub-state, grounded on
// original_source/modules/external_editor/external_editor_state.rs's
// ExternalEditorState{Active, Empty, Error}.
type phase int

const (
	phaseActive phase = iota
	phaseEmpty
	phaseError
)

// ResolveEditor reads $GIT_EDITOR (falling back to "vi", matching git's
// own fallback when neither GIT_EDITOR nor core.editor nor $EDITOR is
// set) and splits it into a program plus leading arguments the way a
// shell word-split would, so a configured "code --wait" works as well as
// a bare "vim".
func ResolveEditor() (program string, args []string) {
	raw := os.Getenv("GIT_EDITOR")
	if raw == "" {
		raw = "vi"
	}
	fields := strings.Fields(raw)
	return fields[0], fields[1:]
}

// Module is the ExternalEditor module.
type Module struct {
	file       *todo.File
	program    string
	editorArgs []string
	run        func(program string, args []string, done func(err error)) module.Artifact

	phase phase
	err   error

	// wasModified snapshots file.IsModified() at the start of the session,
	// before launch's first Write() resets File.original to match the
	// written content. restoreAndAbort must consult this snapshot rather
	// than a live IsModified() call, which would always read false by the
	// time the recovery menu runs.
	wasModified bool
}

// New constructs an ExternalEditor module over file, invoking program/args
// (program's args plus the todo file path appended) each time it is
// activated or the user retries. runCommand builds the
// ArtifactExternalCommand the loop will execute; tests substitute a fake
// that calls done synchronously instead of spawning a real child.
func New(file *todo.File, program string, editorArgs []string) *Module {
	return &Module{
		file:       file,
		program:    program,
		editorArgs: editorArgs,
		run: func(program string, args []string, done func(err error)) module.Artifact {
			return module.ExternalCommandWithCallback(program, args, done)
		},
	}
}

// Activate writes the current todo to disk and launches the editor.
func (m *Module) Activate(previous module.State) module.Results {
	m.phase = phaseActive
	m.err = nil
	m.wasModified = m.file.IsModified()
	return m.launch()
}

// Deactivate is a no-op.
func (m *Module) Deactivate() module.Results { return nil }

func (m *Module) launch() module.Results {
	if err := m.file.Write(); err != nil {
		return module.Results{module.ErrorWithFallback(err, module.StateList)}
	}
	args := append(append([]string{}, m.editorArgs...), m.file.Path())
	return module.Results{m.run(m.program, args, m.onEditorDone)}
}

// onEditorDone is the ArtifactExternalCommand callback (spec.md §4.I: the
// editor's outcome decides whether ExternalEditor returns to List or
// drops into its Empty/Error sub-state).
func (m *Module) onEditorDone(err error) {
	if err != nil {
		m.phase = phaseError
		m.err = err
		return
	}
	if loadErr := m.file.Load(m.file.Path()); loadErr != nil {
		m.phase = phaseError
		m.err = loadErr
		return
	}
	if m.file.IsEmpty() {
		m.phase = phaseEmpty
		return
	}
	m.phase = phaseActive
}

// InputOptions opts into nothing generic; the recovery menu owns its own
// three keys and the happy path produces no events to handle.
func (m *Module) InputOptions() module.InputOptions { return module.InputOptions{} }

// ReadEvent is identity.
func (m *Module) ReadEvent(event input.Event, keybindings config.KeyBindings) input.Event {
	return event
}

// BuildViewData renders the recovery menu once the phase leaves Active;
// while Active, the editor owns the terminal and this is never drawn.
func (m *Module) BuildViewData(ctx module.RenderContext) *viewdata.ViewData {
	vd := viewdata.New(nil)
	vd.SetTitle(true)

	switch m.phase {
	case phaseEmpty:
		vd.PushLeading(viewdata.NewViewLine(viewdata.Segment{
			Text: " The rebase todo was emptied ", Style: viewdata.DefaultStyle(),
		}))
	case phaseError:
		vd.PushLeading(viewdata.NewViewLine(viewdata.Segment{
			Text: " Editor error: " + m.err.Error() + " ", Style: viewdata.DefaultStyle(),
		}))
	}
	if m.phase != phaseActive {
		vd.PushBody(viewdata.NewViewLine(viewdata.Segment{
			Text: " r)estore & abort  u)ndo & edit  e)dit ",
		}))
	}
	return vd
}

// HandleEvent implements the three-option recovery menu. There is no
// dedicated three-way-choice StandardEvent, so this reuses the closest
// existing vocabulary: Abort selects "restore & abort", Undo selects
// "undo & edit", Confirm selects "edit" (retry).
func (m *Module) HandleEvent(event input.Event, viewState *module.ViewState) module.Results {
	if m.phase == phaseActive || event.Kind != input.KindStandard {
		return nil
	}
	switch event.Standard {
	case input.Abort:
		return m.restoreAndAbort()
	case input.Undo:
		m.file.Undo()
		return m.launch()
	case input.Confirm:
		return m.launch()
	}
	return nil
}

func (m *Module) restoreAndAbort() module.Results {
	if m.wasModified {
		return module.Results{module.ChangeState(module.StateConfirmAbort)}
	}
	if !m.file.IsEmpty() {
		m.file.RemoveLines(0, m.file.Len()-1)
	}
	if err := m.file.Write(); err != nil {
		return module.Results{module.ErrorArtifact(err)}
	}
	return module.Results{module.Exit(exitstatus.Good)}
}

// HandleError is never invoked on ExternalEditor.
func (m *Module) HandleError(err error, fallback module.State) module.Results { return nil }
