package module

import (
	"os"
	"os/exec"
	"time"

	"github.com/akavel/girt/internal/config"
	"github.com/akavel/girt/internal/diffload"
	"github.com/akavel/girt/internal/exitstatus"
	"github.com/akavel/girt/internal/input"
	"github.com/akavel/girt/internal/render"
	"github.com/akavel/girt/internal/runtime"
	"github.com/akavel/girt/internal/search"
	"github.com/akavel/girt/internal/todo"
)

// ReadEventTimeout is the process loop's bound on input.Thread.ReadEvent
// (spec.md §4.H pseudocode: "blocks, ~1 s timeout").
const ReadEventTimeout = time.Second

// Dependencies wires the process loop to every threadable and shared
// datum it coordinates. Grounded on Omairy12-up's main(), which wires its
// equivalents (tui, Buf, keymap) together inline in one function; here
// that wiring is a struct so cmd/girt can assemble it and Loop stays
// testable against fakes.
type Dependencies struct {
	Modules     map[State]Module
	TodoFile    *todo.File
	ViewThread  *render.Thread
	InputThread *input.Thread
	Search      *search.Thread
	Diff        *diffload.Thread
	Slicer      *render.Slicer
	KeyBindings config.KeyBindings
	Theme       config.Theme
	Supervisor  *runtime.Supervisor
	GetSize     func() (width, height int)

	// RunExternalCommand runs program/args with the terminal's standard
	// streams, blocking until it exits. Overridable in tests; defaults
	// to os/exec with inherited stdio (ExternalEditor needs the child to
	// own the terminal, unlike Omairy12-up's Subprocess which captures
	// output into a Buf for an in-UI pane).
	RunExternalCommand func(program string, args []string) error
}

// Loop is the process loop (spec.md §4.H): the single thread that owns
// active-module state and drains Results.
type Loop struct {
	deps Dependencies

	state       State
	beforeError State
	viewState   ViewState
	helpVisible bool

	// lastVScroll/lastHScroll shadow the Slicer's current offsets so
	// applyGeneric can issue relative +-1 nudges; Slicer itself only
	// exposes absolute setters (its Compute clamps whatever is set).
	lastVScroll int
	lastHScroll int
}

// NewLoop constructs a Loop over deps, defaulting RunExternalCommand to a
// real child-process runner if unset.
func NewLoop(deps Dependencies) *Loop {
	if deps.RunExternalCommand == nil {
		deps.RunExternalCommand = runExternalCommand
	}
	return &Loop{deps: deps, state: StateList}
}

func runExternalCommand(program string, args []string) error {
	cmd := exec.Command(program, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Run executes the process loop until a module produces ArtifactExitStatus,
// returning the final ExitStatus.
func (l *Loop) Run() exitstatus.ExitStatus {
	l.dispatch(l.deps.Modules[l.state].Activate(l.state))

	for {
		width, height := l.deps.GetSize()
		l.applyWindowGating(width, height)

		mod := l.deps.Modules[l.state]
		ctx := l.buildRenderContext(width, height)
		vd := mod.BuildViewData(ctx)
		l.deps.ViewThread.Submit(vd.Snapshot())

		ev := l.deps.InputThread.ReadEvent(ReadEventTimeout)
		ev = l.applyGeneric(mod.InputOptions(), ev)
		ev = mod.ReadEvent(ev, l.deps.KeyBindings)

		results := mod.HandleEvent(ev, &l.viewState)
		if status, done := l.dispatch(results); done {
			return status
		}
	}
}

// applyWindowGating forces StateWindowSizeError while the terminal is
// below the configured minimums, and restores the prior state once it
// clears (spec.md §4.H).
func (l *Loop) applyWindowGating(width, height int) {
	tooSmall := height < MinimumWindowHeight || width < MinimumCompactWindowWidth
	if tooSmall {
		if l.state != StateWindowSizeError {
			l.beforeError = l.state
			l.state = StateWindowSizeError
		}
		return
	}
	if l.state == StateWindowSizeError {
		l.state = l.beforeError
	}
}

func (l *Loop) buildRenderContext(width, height int) RenderContext {
	ctx := RenderContext{
		Width:       width,
		Height:      height,
		Theme:       l.deps.Theme,
		TodoFile:    l.deps.TodoFile,
		Slicer:      l.deps.Slicer,
		HelpVisible: l.helpVisible,
	}
	if l.deps.Diff != nil {
		ctx.DiffStatus = l.deps.Diff.Status()
		_, ctx.HasDiff = l.deps.Diff.Diff()
	}
	if l.deps.Search != nil {
		ctx.Search = l.deps.Search.State()
	}
	return ctx
}

// applyGeneric handles the subset of standard events a module opts into
// via InputOptions generically, consuming them before the module's own
// ReadEvent/HandleEvent ever see them (spec.md §4.H: "apply generic
// handlers per input_options").
func (l *Loop) applyGeneric(opts InputOptions, ev input.Event) input.Event {
	if ev.Kind != input.KindStandard {
		return ev
	}

	if opts.Help && ev.Standard == input.Help {
		l.helpVisible = !l.helpVisible
		l.viewState.HelpVisible = l.helpVisible
		return input.NoneEvent
	}

	if opts.UndoRedo {
		switch ev.Standard {
		case input.Undo:
			l.deps.TodoFile.Undo()
			return input.NoneEvent
		case input.Redo:
			l.deps.TodoFile.Redo()
			return input.NoneEvent
		}
	}

	if opts.Movement && l.deps.Slicer != nil {
		switch ev.Standard {
		case input.ScrollUp:
			l.lastVScroll--
			l.deps.Slicer.SetVScroll(l.lastVScroll)
			return input.NoneEvent
		case input.ScrollDown:
			l.lastVScroll++
			l.deps.Slicer.SetVScroll(l.lastVScroll)
			return input.NoneEvent
		case input.ScrollLeft:
			l.lastHScroll--
			l.deps.Slicer.SetHScroll(l.lastHScroll)
			return input.NoneEvent
		case input.ScrollRight:
			l.lastHScroll++
			l.deps.Slicer.SetHScroll(l.lastHScroll)
			return input.NoneEvent
		}
	}

	return ev
}

// dispatch drains results, mutating l.state on ChangeState/Error and
// returning (status, true) once an ArtifactExitStatus artifact is seen
// (spec.md §4.H's for-artifact match block).
func (l *Loop) dispatch(results Results) (exitstatus.ExitStatus, bool) {
	for _, a := range results {
		switch a.Kind {
		case ArtifactEvent:
			// Already consumed by the module that produced it.
		case ArtifactChangeState:
			l.deps.Modules[l.state].Deactivate()
			previous := l.state
			l.state = a.ChangeTo
			l.dispatch(l.deps.Modules[l.state].Activate(previous))
		case ArtifactExitStatus:
			if l.deps.Supervisor != nil {
				l.deps.Supervisor.EndAll()
			}
			return a.ExitStatus, true
		case ArtifactError:
			fallback := l.state
			if a.HasFallback {
				fallback = a.Fallback
			}
			l.deps.Modules[StateError].HandleError(a.Err, fallback)
			l.beforeError = fallback
			l.state = StateError
		case ArtifactExternalCommand:
			err := l.runExternal(a.Program, a.Args)
			if a.Callback != nil {
				a.Callback(err)
			}
		case ArtifactSearchStart:
			if l.deps.Search != nil {
				l.deps.Search.Start(a.SearchTerm)
			}
		case ArtifactSearchNext:
			l.stepSearch(1)
		case ArtifactSearchPrevious:
			l.stepSearch(-1)
		case ArtifactSearchCancel:
			if l.deps.Search != nil {
				l.deps.Search.Cancel()
			}
		case ArtifactLoad:
			if l.deps.Diff != nil {
				l.deps.Diff.Load(a.LoadHash)
			}
		case ArtifactEnqueueResize:
			// Window size is polled fresh every iteration via GetSize;
			// nothing to re-emit to.
		case ArtifactUpdateView:
			// ViewData's own dirty bit is the module's responsibility;
			// this artifact exists for modules whose mutation doesn't
			// otherwise touch ViewData (e.g. a background thread update).
		}
	}
	return exitstatus.Good, false
}

// stepSearch advances/retreats the active search match (spec.md §4.F:
// Next/Previous "rotate the pointer with wrap-around") and moves whatever
// the current module uses to show position onto the matched row: List
// re-selects the matched todo line the same way a direct move would
// (spec.md §8 seed scenario 6); any other Movement-scrolling module (e.g.
// ShowCommit) has no TodoFile selection of its own, so it scrolls its body
// to the matched row instead, the same Slicer nudge applyGeneric already
// uses for arrow-key scrolling.
func (l *Loop) stepSearch(delta int) {
	if l.deps.Search == nil {
		return
	}
	rowIndex, ok := l.deps.Search.Step(delta)
	if !ok {
		return
	}
	if l.state == StateList {
		l.deps.TodoFile.SetSelectedIndex(rowIndex)
		return
	}
	if l.deps.Slicer != nil {
		l.lastVScroll = rowIndex
		l.deps.Slicer.SetVScroll(rowIndex)
	}
}

// runExternal pauses every other threadable, runs the child with
// inherited terminal control, then resumes — spec.md §5: "External-editor
// invocations pause input/view/search/diff threads before spawning the
// child and resume them on return."
func (l *Loop) runExternal(program string, args []string) error {
	if l.deps.Supervisor != nil {
		l.deps.Supervisor.PauseAll("")
	}
	err := l.deps.RunExternalCommand(program, args)
	if l.deps.Supervisor != nil {
		l.deps.Supervisor.ResumeAll()
	}
	return err
}
