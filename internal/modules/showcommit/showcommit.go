// Package showcommit implements the ShowCommit module (spec.md §4.I): a
// read-only, Searchable scroll over the single CommitDiff the diff loader
// publishes for the line currently selected in List, with a progress
// indicator while the load is still in flight.
package showcommit

import (
	"fmt"

	"github.com/akavel/girt/internal/config"
	"github.com/akavel/girt/internal/diffload"
	"github.com/akavel/girt/internal/input"
	"github.com/akavel/girt/internal/module"
	"github.com/akavel/girt/internal/search"
	"github.com/akavel/girt/internal/tuicap"
	"github.com/akavel/girt/internal/vcs"
	"github.com/akavel/girt/internal/viewdata"
)

// Module is the ShowCommit module.
type Module struct {
	diff   *diffload.Thread
	search *search.Thread

	// searchEntry mirrors internal/modules/list's search-entry submode.
	searchEntry *string
}

// New constructs a ShowCommit module reading from diff and, if non-nil,
// installing its diff-line Searchable on searchThread.
func New(diff *diffload.Thread, searchThread *search.Thread) *Module {
	return &Module{diff: diff, search: searchThread}
}

// Activate installs this module's diff-line Searchable, replacing
// whatever List had installed (spec.md §4.F: "swap target, preserving
// term").
func (m *Module) Activate(previous module.State) module.Results {
	if m.search != nil {
		m.search.SetSearchable(search.NewLineSearchable(m.lines))
	}
	return nil
}

func (m *Module) lines() []search.Line {
	d, ok := m.diff.Diff()
	if !ok {
		return nil
	}
	var out []search.Line
	for _, fs := range d.FileStatus {
		for _, hunk := range fs.Deltas {
			for _, l := range hunk.Lines {
				out = append(out, search.Line{Content: l.Content})
			}
		}
	}
	return out
}

// Deactivate is a no-op.
func (m *Module) Deactivate() module.Results { return nil }

// InputOptions opts into generic scroll handling, except while composing a
// search term, so scroll-bound keys are not consumed as view movement then.
// Keys the keymap resolves to a standard event (such as j or k) still reach
// HandleEvent as that event, not as a keystroke, and are not added to the
// term.
func (m *Module) InputOptions() module.InputOptions {
	return module.InputOptions{Movement: m.searchEntry == nil, Help: true}
}

// ReadEvent is identity.
func (m *Module) ReadEvent(event input.Event, keybindings config.KeyBindings) input.Event {
	return event
}

// BuildViewData renders either the load progress indicator or the
// commit's summary plus per-file hunks, depending on ctx.HasDiff.
func (m *Module) BuildViewData(ctx module.RenderContext) *viewdata.ViewData {
	vd := viewdata.New(nil)
	vd.SetTitle(true)
	vd.SetHelp(ctx.HelpVisible)

	if !ctx.HasDiff {
		vd.PushLeading(progressLine(ctx.DiffStatus))
		vd.PushTrailing(viewdata.NewViewLine(viewdata.Segment{Text: " Esc to cancel "}))
		return vd
	}

	d, ok := m.diff.Diff()
	if !ok {
		vd.PushLeading(progressLine(ctx.DiffStatus))
		return vd
	}

	vd.PushLeading(commitSummaryLine(d))
	for _, fs := range d.FileStatus {
		vd.PushBody(fileHeaderLine(ctx.Theme, fs))
		for _, hunk := range fs.Deltas {
			vd.PushBody(hunkHeaderLine(hunk))
			for _, l := range hunk.Lines {
				vd.PushBody(diffLineView(ctx.Theme, l))
			}
		}
	}

	if m.searchEntry != nil {
		vd.PushTrailing(viewdata.NewViewLine(viewdata.Segment{Text: " /" + *m.searchEntry}))
	} else {
		vd.PushTrailing(viewdata.NewViewLine(viewdata.Segment{Text: " q/Esc back  /)search  n/N next/prev "}))
	}
	return vd
}

func progressLine(status diffload.LoadStatus) viewdata.ViewLine {
	var label string
	switch status.Kind {
	case diffload.StatusQuickDiff:
		label = fmt.Sprintf(" Loading file list... (%d/%d) ", status.Done, status.Total)
	case diffload.StatusCompleteQuickDiff:
		label = " File list loaded, loading diff... "
	case diffload.StatusDiff:
		label = fmt.Sprintf(" Loading diff... (%d/%d) ", status.Done, status.Total)
	case diffload.StatusError:
		label = " Error loading diff: " + status.ErrMsg + " "
	default:
		label = " Loading... "
	}
	return viewdata.NewViewLine(viewdata.Segment{Text: label, Style: viewdata.DefaultStyle()})
}

func commitSummaryLine(d vcs.CommitDiff) viewdata.ViewLine {
	text := fmt.Sprintf(" %s %s (%d files, +%d/-%d) ",
		shortHash(d.Commit.Hash), d.Commit.Summary, d.NumberFilesChanged, d.NumberInsertions, d.NumberDeletions)
	return viewdata.NewViewLine(viewdata.Segment{Text: text, Style: viewdata.DefaultStyle()})
}

func shortHash(hash string) string {
	if len(hash) >= 7 {
		return hash[:7]
	}
	return hash
}

func fileHeaderLine(theme config.Theme, fs vcs.FileStatus) viewdata.ViewLine {
	path := fs.ToPath
	if path == "" {
		path = fs.FromPath
	}
	return viewdata.NewViewLine(viewdata.Segment{
		Text:  fmt.Sprintf(" %s %s ", fs.Kind.String(), path),
		Style: viewdata.Style{Foreground: theme.Indicator},
	})
}

func hunkHeaderLine(hunk vcs.Hunk) viewdata.ViewLine {
	return viewdata.NewViewLine(viewdata.Segment{Text: " " + hunk.Header})
}

func diffLineView(theme config.Theme, l vcs.DiffLine) viewdata.ViewLine {
	color := theme.Foreground
	prefix := " "
	switch l.Origin {
	case vcs.Addition:
		color = theme.DiffAdd
		prefix = "+"
	case vcs.Deletion:
		color = theme.DiffRemove
		prefix = "-"
	case vcs.Header, vcs.Binary:
		color = theme.DiffChange
	}
	return viewdata.NewViewLine(viewdata.Segment{Text: prefix + l.Content, Style: viewdata.Style{Foreground: color}})
}

// HandleEvent implements scrolling (delegated to the generic handler via
// InputOptions), search entry, search stepping, and the cancel-to-List
// transition (spec.md §4.I: "Returns to List on any cancel key").
func (m *Module) HandleEvent(event input.Event, viewState *module.ViewState) module.Results {
	if m.searchEntry != nil {
		return m.handleSearchEntry(event)
	}

	if event.Kind != input.KindStandard {
		return nil
	}

	switch event.Standard {
	case input.Reject, input.Abort, input.ShowCommit:
		return module.Results{module.SearchCancel(), module.ChangeState(module.StateList)}
	case input.SearchStart:
		empty := ""
		m.searchEntry = &empty
		return nil
	case input.SearchNext:
		return module.Results{module.SearchNext()}
	case input.SearchPrevious:
		return module.Results{module.SearchPrevious()}
	}
	return nil
}

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

// HandleError is never invoked on ShowCommit.
func (m *Module) HandleError(err error, fallback module.State) module.Results { return nil }
