// Package list implements the List module (spec.md §4.I): the primary
// editor screen over the todo file, in Normal and Visual (anchored
// multi-line selection) modes.
package list

import (
	"github.com/akavel/girt/internal/config"
	"github.com/akavel/girt/internal/exitstatus"
	"github.com/akavel/girt/internal/input"
	"github.com/akavel/girt/internal/module"
	"github.com/akavel/girt/internal/render"
	"github.com/akavel/girt/internal/search"
	"github.com/akavel/girt/internal/todo"
	"github.com/akavel/girt/internal/tuicap"
	"github.com/akavel/girt/internal/viewdata"
)

// standardToAction maps the action-toggle StandardEvents to their todo.Action.
var standardToAction = map[input.StandardEvent]todo.Action{
	input.ActionPick:      todo.ActionPick,
	input.ActionReword:    todo.ActionReword,
	input.ActionEdit:      todo.ActionEdit,
	input.ActionSquash:    todo.ActionSquash,
	input.ActionFixup:     todo.ActionFixup,
	input.ActionDrop:      todo.ActionDrop,
	input.ActionExec:      todo.ActionExec,
	input.ActionBreak:     todo.ActionBreak,
	input.ActionLabel:     todo.ActionLabel,
	input.ActionReset:     todo.ActionReset,
	input.ActionMerge:     todo.ActionMerge,
	input.ActionUpdateRef: todo.ActionUpdateRef,
}

// autoAdvance is the set of actions that move the cursor down by one after
// being applied, when Config.AutoSelectNext is set (spec.md §4.I).
var autoAdvance = map[todo.Action]bool{
	todo.ActionSquash: true,
	todo.ActionFixup:  true,
	todo.ActionDrop:   true,
}

// Module is the List module. It holds the TodoFile and search thread
// directly (Activate/HandleEvent need to mutate/install against them
// outside the Results union spec.md §3 defines for transient search
// commands), while rendering reads everything else from RenderContext.
type Module struct {
	file   *todo.File
	search *search.Thread
	cfg    config.Config

	lastHeight int
	vscroll    int
	hscroll    int
	slicer     *render.Slicer

	// searchEntry is non-nil while the user is composing a search term;
	// its pointee accumulates typed runes between SearchStart and
	// SearchFinish/Reject.
	searchEntry *string
}

// New constructs a List module over file, installing its search target on
// the given search thread (nil if search is not wired, e.g. in a test).
func New(file *todo.File, searchThread *search.Thread, cfg config.Config) *Module {
	return &Module{file: file, search: searchThread, cfg: cfg}
}

func (m *Module) lines() []search.Line {
	n := m.file.Len()
	out := make([]search.Line, n)
	for i := 0; i < n; i++ {
		l, _ := m.file.Get(i)
		out[i] = search.Line{Hash: l.Hash(), Content: l.Content()}
	}
	return out
}

// Activate installs the todo file's lines as the search thread's current
// Searchable (spec.md §4.F: "swap target, preserving term").
func (m *Module) Activate(previous module.State) module.Results {
	if m.search != nil {
		m.search.SetSearchable(search.NewLineSearchable(m.lines))
	}
	return nil
}

// Deactivate is a no-op: List owns no resources that need releasing on
// transition, only on process End (handled by the runtime supervisor).
func (m *Module) Deactivate() module.Results { return nil }

// InputOptions opts into generic Help/UndoRedo handling but not Movement:
// List's movement keys drive the todo-file cursor/selection, not a raw
// view scroll offset, so it is handled in HandleEvent instead.
func (m *Module) InputOptions() module.InputOptions {
	return module.InputOptions{UndoRedo: true, Help: true}
}

// ReadEvent is identity: List needs no per-module remapping of the
// globally-resolved keymap.
func (m *Module) ReadEvent(event input.Event, keybindings config.KeyBindings) input.Event {
	return event
}

// BuildViewData renders the todo file as one body line per instruction,
// selection-highlighted over [anchor, cursor], with a leading status line
// and a trailing hint bar; it also keeps the cursor in view by nudging the
// shared Slicer directly (List's body is a 1:1 projection of file lines, so
// "keep selection visible" and "view scroll" are the same offset).
func (m *Module) BuildViewData(ctx module.RenderContext) *viewdata.ViewData {
	m.lastHeight = ctx.Height
	m.slicer = ctx.Slicer

	vd := viewdata.New(nil)
	vd.SetTitle(true)
	vd.SetHelp(ctx.HelpVisible)

	vd.PushLeading(statusLine(ctx))

	start, end := normalizeRange(m.file)
	for i := 0; i < m.file.Len(); i++ {
		line, _ := m.file.Get(i)
		vd.PushBody(lineView(ctx.Theme, line, i >= start && i <= end))
	}

	vd.PushTrailing(hintLine(ctx))

	if m.slicer != nil {
		m.followCursor(end, ctx.Height-2)
	}
	return vd
}

func (m *Module) followCursor(cursor, bodyHeight int) {
	if bodyHeight <= 0 {
		return
	}
	if cursor < m.vscroll {
		m.vscroll = cursor
	} else if cursor >= m.vscroll+bodyHeight {
		m.vscroll = cursor - bodyHeight + 1
	}
	m.slicer.SetVScroll(m.vscroll)
}

func normalizeRange(file *todo.File) (int, int) {
	a, c := file.SelectedRange()
	if a > c {
		a, c = c, a
	}
	return a, c
}

func statusLine(ctx module.RenderContext) viewdata.ViewLine {
	mode := "NORMAL"
	if ctx.Search.Status != search.StatusInactive {
		mode = "SEARCH"
	}
	return viewdata.NewViewLine(
		viewdata.Segment{Text: " girt — interactive rebase ", Style: viewdata.DefaultStyle()},
		viewdata.Segment{Text: "[" + mode + "] ", Style: viewdata.Style{Foreground: ctx.Theme.Indicator}},
	)
}

func hintLine(ctx module.RenderContext) viewdata.ViewLine {
	if ctx.HelpVisible {
		return viewdata.NewViewLine(viewdata.Segment{
			Text:  " p)ick r)eword e)dit s)quash f)ixup d)rop  v)isual  I)nsert  C-d dup  C-k remove  c)ommit  w)rite  q)uit  /)search  ?)help ",
			Style: viewdata.DefaultStyle(),
		})
	}
	if ctx.Search.Status != search.StatusInactive {
		return viewdata.NewViewLine(viewdata.Segment{Text: " /" + ctx.Search.Term, Style: viewdata.DefaultStyle()})
	}
	return viewdata.NewViewLine(viewdata.Segment{Text: " ? for help ", Style: viewdata.DefaultStyle()})
}

func lineView(theme config.Theme, line todo.Line, selected bool) viewdata.ViewLine {
	color := actionColor(theme, line.Action())
	segs := []viewdata.Segment{
		{Text: padHash(line.Hash()), Style: viewdata.Style{Foreground: color}},
		{Text: " " + line.Action().String() + " " + line.Content(), Style: viewdata.Style{Foreground: theme.Foreground}},
	}
	return viewdata.NewViewLine(segs...).
		WithSelected(selected).
		WithPinnedHead(1).
		WithPad(viewdata.Segment{Style: viewdata.Style{Foreground: config.ColorDefault, Background: theme.SelectedBackground}})
}

func padHash(hash string) string {
	if len(hash) >= 7 {
		return hash[:7]
	}
	return hash
}

func actionColor(theme config.Theme, a todo.Action) config.Color {
	switch a {
	case todo.ActionPick:
		return theme.ActionPick
	case todo.ActionReword:
		return theme.ActionReword
	case todo.ActionEdit:
		return theme.ActionEdit
	case todo.ActionSquash:
		return theme.ActionSquash
	case todo.ActionFixup:
		return theme.ActionFixup
	case todo.ActionDrop:
		return theme.ActionDrop
	case todo.ActionExec:
		return theme.ActionExec
	case todo.ActionBreak:
		return theme.ActionBreak
	case todo.ActionLabel:
		return theme.ActionLabel
	case todo.ActionReset:
		return theme.ActionReset
	case todo.ActionMerge:
		return theme.ActionMerge
	case todo.ActionUpdateRef:
		return theme.ActionUpdateRef
	default:
		return theme.Foreground
	}
}

// HandleEvent implements the bulk of spec.md §4.I's List bullet.
func (m *Module) HandleEvent(event input.Event, viewState *module.ViewState) module.Results {
	if m.searchEntry != nil {
		return m.handleSearchEntry(event)
	}

	if event.Kind != input.KindStandard {
		return nil
	}

	switch event.Standard {
	case input.ScrollUp:
		return m.move(viewState, -1)
	case input.ScrollDown:
		return m.move(viewState, 1)
	case input.ScrollPageUp:
		return m.move(viewState, -m.pageStep())
	case input.ScrollPageDown:
		return m.move(viewState, m.pageStep())
	case input.ScrollHome:
		return m.moveTo(viewState, 0)
	case input.ScrollEnd:
		return m.moveTo(viewState, m.file.Len()-1)
	case input.ScrollLeft:
		m.hscroll--
		m.applyHScroll()
		return nil
	case input.ScrollRight:
		m.hscroll++
		m.applyHScroll()
		return nil
	case input.ToggleVisualMode:
		return m.toggleVisual(viewState)
	case input.SwapSelectedUp:
		start, end := normalizeRange(m.file)
		m.file.SwapUp(start, end)
		return module.Results{module.UpdateView()}
	case input.SwapSelectedDown:
		start, end := normalizeRange(m.file)
		m.file.SwapDown(start, end)
		return module.Results{module.UpdateView()}
	case input.Remove:
		start, end := normalizeRange(m.file)
		m.file.RemoveLines(start, end)
		m.collapseVisual(viewState)
		return module.Results{module.UpdateView()}
	case input.InsertLine:
		return module.Results{module.ChangeState(module.StateInsert)}
	case input.DuplicateLine:
		return m.duplicateLine()
	case input.ShowCommit:
		return m.showCommit()
	case input.Abort:
		return m.abort()
	case input.Rebase:
		return module.Results{module.ChangeState(module.StateConfirmRebase)}
	case input.OpenInEditor:
		return module.Results{module.SearchCancel(), module.ChangeState(module.StateExternalEditor)}
	case input.SearchStart:
		empty := ""
		m.searchEntry = &empty
		return nil
	case input.SearchNext:
		return module.Results{module.SearchNext()}
	case input.SearchPrevious:
		return module.Results{module.SearchPrevious()}
	}

	if action, ok := standardToAction[event.Standard]; ok {
		return m.applyAction(action)
	}

	return nil
}

func (m *Module) pageStep() int {
	step := m.lastHeight - 3
	if step < 1 {
		step = 1
	}
	return step
}

func (m *Module) move(viewState *module.ViewState, delta int) module.Results {
	_, cursor := m.file.SelectedRange()
	return m.moveTo(viewState, cursor+delta)
}

func (m *Module) moveTo(viewState *module.ViewState, index int) module.Results {
	if viewState.VisualMode {
		m.file.SetCursor(index)
	} else {
		m.file.SetSelectedIndex(index)
	}
	return module.Results{module.UpdateView()}
}

func (m *Module) toggleVisual(viewState *module.ViewState) module.Results {
	viewState.VisualMode = !viewState.VisualMode
	if !viewState.VisualMode {
		m.collapseVisual(viewState)
	}
	return module.Results{module.UpdateView()}
}

func (m *Module) collapseVisual(viewState *module.ViewState) {
	_, cursor := m.file.SelectedRange()
	m.file.SetSelectedIndex(cursor)
}

func (m *Module) applyHScroll() {
	if m.hscroll < 0 {
		m.hscroll = 0
	}
	if m.slicer != nil {
		m.slicer.SetHScroll(m.hscroll)
	}
}

func (m *Module) applyAction(action todo.Action) module.Results {
	start, end := normalizeRange(m.file)
	m.file.UpdateRange(start, end, &action, nil)
	if m.cfg.AutoSelectNext && autoAdvance[action] {
		m.file.SetSelectedIndex(end + 1)
	}
	return module.Results{module.UpdateView()}
}

func (m *Module) duplicateLine() module.Results {
	_, cursor := m.file.SelectedRange()
	line, ok := m.file.Get(cursor)
	if !ok {
		return nil
	}
	m.file.InsertLine(cursor+1, line.Action(), line.Content())
	return module.Results{module.UpdateView()}
}

func (m *Module) showCommit() module.Results {
	_, cursor := m.file.SelectedRange()
	line, ok := m.file.Get(cursor)
	if !ok || !line.Action().HasHash() || line.Hash() == "" {
		return nil
	}
	return module.Results{module.Load(line.Hash()), module.ChangeState(module.StateShowCommit)}
}

// abort implements spec.md §4.I's "abort (→ ConfirmAbort or direct if not
// modified)".
func (m *Module) abort() module.Results {
	if m.file.IsModified() {
		return module.Results{module.ChangeState(module.StateConfirmAbort)}
	}
	return clearAndExit(m.file)
}

// clearAndExit empties the todo file and writes it, the action spec.md's
// ConfirmAbort "Yes" takes; shared with List's own direct-abort path for an
// unmodified file.
func clearAndExit(file *todo.File) module.Results {
	if !file.IsEmpty() {
		file.RemoveLines(0, file.Len()-1)
	}
	if err := file.Write(); err != nil {
		return module.Results{module.ErrorArtifact(err)}
	}
	return module.Results{module.Exit(exitstatus.Good)}
}

// handleSearchEntry captures typed characters while composing a search
// term, per spec.md §4.I's "search (start/next/prev/finish)". Only raw
// KindKey events (those the global keymap did not already resolve to a
// StandardEvent) and the Confirm/Reject standard events reach here.
func (m *Module) handleSearchEntry(event input.Event) module.Results {
	switch event.Kind {
	case input.KindStandard:
		switch event.Standard {
		case input.SearchFinish, input.Confirm:
			term := *m.searchEntry
			m.searchEntry = nil
			return module.Results{module.SearchStart(term)}
		case input.Reject:
			m.searchEntry = nil
			return module.Results{module.SearchCancel()}
		}
		return nil
	case input.KindKey:
		switch event.Key.Code {
		case tuicap.KeyRune:
			*m.searchEntry += string(event.Key.Rune)
		case tuicap.KeyBackspace:
			s := *m.searchEntry
			if len(s) > 0 {
				*m.searchEntry = s[:len(s)-1]
			}
		}
		return nil
	default:
		return nil
	}
}

// HandleError is never invoked on List; only the Error module's own
// HandleError is called by the process loop.
func (m *Module) HandleError(err error, fallback module.State) module.Results { return nil }
