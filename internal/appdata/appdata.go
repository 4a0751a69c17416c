// Package appdata wires every component into one running session: it is
// the "AppData" spec.md §9's cyclic-ownership design note calls for — a
// single struct owning config, the todo file, the shared view/input/search/
// diff threadables, the eight modules, and the process loop, constructed
// once at startup and handed out to threads as plain field references
// rather than back-pointers. Grounded on Omairy12-up's main(), which wires
// its equivalents (tui, Buf, commandEditor, commandOutput) together inline
// in one function; here that wiring is reified into its own package so
// cmd/girt stays a thin flag-parsing shell.
package appdata

import (
	"fmt"
	"path/filepath"

	"github.com/akavel/girt/internal/config"
	"github.com/akavel/girt/internal/diffload"
	"github.com/akavel/girt/internal/exitstatus"
	"github.com/akavel/girt/internal/input"
	"github.com/akavel/girt/internal/module"
	"github.com/akavel/girt/internal/modules/confirm"
	"github.com/akavel/girt/internal/modules/errormodule"
	"github.com/akavel/girt/internal/modules/externaleditor"
	"github.com/akavel/girt/internal/modules/insert"
	"github.com/akavel/girt/internal/modules/list"
	"github.com/akavel/girt/internal/modules/showcommit"
	"github.com/akavel/girt/internal/modules/windowsize"
	"github.com/akavel/girt/internal/render"
	"github.com/akavel/girt/internal/runtime"
	"github.com/akavel/girt/internal/search"
	"github.com/akavel/girt/internal/todo"
	"github.com/akavel/girt/internal/tuicap"
	"github.com/akavel/girt/internal/vcs"
)

// Options configures one session's construction: everything cmd/girt would
// otherwise have to thread through by hand.
type Options struct {
	// TodoPath is the rebase-todo file git passed on the command line.
	TodoPath string
	// ConfigPath is an optional TOML settings file (empty: built-in
	// defaults only).
	ConfigPath string
}

// AppData is the fully wired session: every shared handle a module or
// threadable needs, plus the process loop that drives them. No field here
// holds a reference back to AppData itself — threads only ever see the
// individual handles they were constructed with, per spec.md §9's
// "no back-pointers from children to parents."
type AppData struct {
	Config config.Config
	File   *todo.File

	TUI         tuicap.TUI
	ViewThread  *render.Thread
	InputThread *input.Thread
	Search      *search.Thread
	Diff        *diffload.Thread
	Slicer      *render.Slicer

	Statuses   *runtime.ThreadStatuses
	Installer  *runtime.Installer
	Supervisor *runtime.Supervisor

	Loop *module.Loop

	// repoErr records a non-fatal repository-open failure (e.g. the todo
	// file's directory is not inside a git work tree); ShowCommit reports
	// it inline rather than failing the whole session, per spec.md §7's
	// VCS error taxonomy ("missing commit, repository open failure... in
	// the ShowCommit module this becomes an inline error message").
	repoErr error
}

// unavailableRepository is a vcs.Repository stub used when the todo file's
// directory could not be opened as a git repository; every call fails with
// the original open error so a commit-view attempt surfaces it the normal
// StatusError way instead of the session needing a separate "no repo" path.
type unavailableRepository struct{ err error }

func (u unavailableRepository) LoadCommitDiff(hash string, _ vcs.CommitDiffLoaderOptions) (vcs.CommitDiff, error) {
	return vcs.CommitDiff{}, u.err
}

func (u unavailableRepository) ReferencesFor(hash string) ([]vcs.Reference, error) {
	return nil, u.err
}

// New constructs one session: loads config, loads the todo file, opens the
// repository (best-effort), and wires every threadable and module into a
// ready-to-run Loop. It does not start any goroutine; call Run.
func New(opts Options) (*AppData, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	file := todo.New(todo.Options{
		UndoLimit:     cfg.UndoLimit,
		CommentPrefix: cfg.CommentPrefix,
	})
	if err := file.Load(opts.TodoPath); err != nil {
		return nil, fmt.Errorf("load todo file: %w", err)
	}

	tui, err := tuicap.NewTCellTUI()
	if err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}

	repo, repoErr := vcs.Open(filepath.Dir(opts.TodoPath))
	if repoErr != nil {
		// A missing/unreadable repository is not fatal to the session
		// (spec.md §7's VCS error taxonomy: "in the ShowCommit module
		// this becomes an inline error message"). Substitute a stub that
		// fails every load the same way a real repository failure would,
		// so ShowCommit's existing StatusError rendering covers this case
		// too without a second error path.
		repo = unavailableRepository{err: repoErr}
	}

	statuses := runtime.NewThreadStatuses()
	installer := runtime.NewInstaller(statuses)

	slicer := render.NewSlicer()

	app := &AppData{
		Config:  cfg,
		File:    file,
		TUI:     tui,
		Slicer:  slicer,
		repoErr: repoErr,
	}

	app.Search = search.NewThread(func() { app.requestRender() })
	installer.Install("search", app.Search)

	app.Diff = diffload.NewThread(repo, cfg, func() { app.requestRender() })
	installer.Install("diff", app.Diff)

	app.ViewThread = render.NewThread(tui, cfg.Theme, slicer, render.DefaultDraw, nil)
	installer.Install("view", app.ViewThread)

	keymap := input.NewKeymap(cfg.KeyBindings)
	app.InputThread = input.NewThread(tui.ReadEvent, keymap)
	installer.Install("input", app.InputThread)

	app.Statuses = statuses
	app.Installer = installer
	app.Supervisor = runtime.NewSupervisor(statuses, installer)

	program, editorArgs := externaleditor.ResolveEditor()

	modules := map[module.State]module.Module{
		module.StateList:            list.New(file, app.Search, cfg),
		module.StateInsert:          insert.New(file),
		module.StateShowCommit:      showcommit.New(app.Diff, app.Search),
		module.StateExternalEditor:  externaleditor.New(file, program, editorArgs),
		module.StateConfirmAbort:    confirm.New(file, confirm.KindAbort),
		module.StateConfirmRebase:   confirm.New(file, confirm.KindRebase),
		module.StateError:           errormodule.New(),
		module.StateWindowSizeError: windowsize.New(),
	}

	app.Loop = module.NewLoop(module.Dependencies{
		Modules:     modules,
		TodoFile:    file,
		ViewThread:  app.ViewThread,
		InputThread: app.InputThread,
		Search:      app.Search,
		Diff:        app.Diff,
		Slicer:      slicer,
		KeyBindings: cfg.KeyBindings,
		Theme:       cfg.Theme,
		Supervisor:  app.Supervisor,
		GetSize:     tui.GetSize,
	})

	return app, nil
}

// requestRender wakes the view thread with whatever the active module's
// ViewData last produced. Threads that only mutate shared state they don't
// themselves render from (diff loader, search) call this after publishing,
// matching spec.md §4.E/§4.F's "notify the process loop" shape; the loop's
// own Run iterates on a ~1s ReadEvent bound regardless, so this is a
// latency nudge, not a correctness requirement.
func (a *AppData) requestRender() {
	a.ViewThread.Post(render.ViewActionRefresh)
}

// Run starts every background threadable, drives the process loop to
// completion, and tears everything down, returning the final ExitStatus.
func (a *AppData) Run() exitstatus.ExitStatus {
	go a.ViewThread.Run()
	go a.InputThread.Run()
	go a.Search.Run()
	go a.Diff.Run()

	status := a.Loop.Run()
	a.Supervisor.EndAll()
	return status
}
