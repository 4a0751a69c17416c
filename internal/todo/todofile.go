// Package todo implements the editable, undoable rebase-instruction list:
// component A of the engine (spec.md §4.A). All mutation happens through
// the File type's guarded façade methods; callers never touch the
// underlying Line slice directly.
package todo

import (
	"fmt"
	"os"
	"strings"
)

// File is the editable todo-file document.
type File struct {
	path    string
	options Options
	state   State

	lines    []Line
	original []Line

	anchor int
	cursor int

	version Version
	hist    *history
}

// New constructs an empty File with the given options, ready for Load.
func New(options Options) *File {
	return &File{options: options, hist: newHistory(options.UndoLimit), version: NewVersion()}
}

// Load reads path, parses it into lines, and resets history/version/state.
// It is always a destructive reload: any unsaved edits in the File are
// discarded.
func (f *File) Load(path string) error {
	data, err := os.Open(path)
	if err != nil {
		return &FileReadError{Path: path, Cause: err}
	}
	defer data.Close()

	lines, err := ParseLines(data, f.options.CommentPrefix)
	if err != nil {
		return &FileReadError{Path: path, Cause: err}
	}

	f.path = path
	f.lines = lines
	f.original = append([]Line(nil), lines...)
	f.anchor = 0
	f.cursor = 0
	f.state = DetectState(path)
	f.version.Reset()
	f.hist.reset()
	return nil
}

// Write serializes Lines back to Path, appending options.LineChangedCommand
// as a trailing comment after each mutated line, dropping trailing empty
// lines, and terminating the final instruction with a newline.
func (f *File) Write() error {
	var b strings.Builder
	for _, l := range f.lines {
		text := l.ToLine()
		if text == "" {
			continue
		}
		b.WriteString(text)
		if l.Mutated() && f.options.LineChangedCommand != "" {
			b.WriteString(" ")
			b.WriteString(f.options.CommentPrefix)
			b.WriteString(" ")
			b.WriteString(f.options.LineChangedCommand)
		}
		b.WriteString("\n")
	}

	if err := os.WriteFile(f.path, []byte(b.String()), 0o644); err != nil {
		return &FileWriteError{Path: f.path, Cause: err}
	}

	for i, l := range f.lines {
		f.lines[i] = l.ResetOriginal()
	}
	f.original = append([]Line(nil), f.lines...)
	return nil
}

// Path returns the file path this File was loaded from.
func (f *File) Path() string { return f.path }

// State returns the detected rebase-lifecycle state.
func (f *File) State() State { return f.state }

// Version returns the current (id, counter) change-detection stamp.
func (f *File) Version() Version { return f.version }

// Get returns the line at index.
func (f *File) Get(index int) (Line, bool) {
	if index < 0 || index >= len(f.lines) {
		return Line{}, false
	}
	return f.lines[index], true
}

// Len returns the number of lines.
func (f *File) Len() int { return len(f.lines) }

// IsEmpty reports whether the file has no lines.
func (f *File) IsEmpty() bool { return len(f.lines) == 0 }

// IsNoop reports whether the file is a single noop line (an empty rebase).
func (f *File) IsNoop() bool {
	return len(f.lines) == 1 && f.lines[0].Action() == ActionNoop
}

// IsModified reports whether the current lines differ from the on-disk
// snapshot captured at Load (or the last successful Write).
func (f *File) IsModified() bool {
	if len(f.lines) != len(f.original) {
		return true
	}
	for i := range f.lines {
		if f.lines[i].ToLine() != f.original[i].ToLine() {
			return true
		}
	}
	return false
}

// SelectedRange returns the (anchor, cursor) pair.
func (f *File) SelectedRange() (int, int) { return f.anchor, f.cursor }

// SetSelectedIndex moves the cursor to index, clamped to the valid range,
// and collapses the anchor to match (ending any visual selection).
func (f *File) SetSelectedIndex(index int) {
	index = clampRange(index, len(f.lines))
	f.anchor = index
	f.cursor = index
}

// SetCursor moves only the cursor, preserving anchor (for visual-mode
// selection extension).
func (f *File) SetCursor(index int) {
	f.cursor = clampRange(index, len(f.lines))
}

func (f *File) clampSelection() {
	f.anchor = clampRange(f.anchor, len(f.lines))
	f.cursor = clampRange(f.cursor, len(f.lines))
}

func (f *File) bumpVersion() {
	f.version.Increment()
}

// snapshotRange copies lines[lo..hi] inclusive (lo<=hi required).
func snapshotRange(lines []Line, lo, hi int) []Line {
	return append([]Line(nil), lines[lo:hi+1]...)
}

// UpdateRange changes the action and/or content of every mutable line in
// [start, end] (inclusive, either order). It is a no-op, with no history
// entry, if the range contains no mutation-capable lines.
func (f *File) UpdateRange(start, end int, action *Action, content *string) {
	lo, hi := normalize(start, end)
	lo = clampRange(lo, len(f.lines))
	hi = clampRange(hi, len(f.lines))

	anyMutable := false
	for i := lo; i <= hi; i++ {
		if f.lines[i].Action().Mutable() {
			anyMutable = true
			break
		}
	}
	if !anyMutable {
		return
	}

	before := snapshotRange(f.lines, lo, hi)
	for i := lo; i <= hi; i++ {
		if !f.lines[i].Action().Mutable() {
			continue
		}
		if action != nil {
			f.lines[i] = f.lines[i].WithAction(*action)
		}
		if content != nil {
			f.lines[i] = f.lines[i].WithContent(*content)
		}
	}
	f.hist.record(newModifyItem(lo, hi, before))
	f.bumpVersion()
}

// InsertLine inserts a new line at index.
func (f *File) InsertLine(index int, action Action, content string) {
	index = clampInsertIndex(index, len(f.lines))
	hash := ""
	newLine := NewLine(action, hash, content)
	f.lines = addRange(f.lines, []Line{newLine}, index, index)
	f.hist.record(newAddItem(index, index))
	f.bumpVersion()
	f.clampSelection()
}

// RemoveLines removes lines [start, end]; end < start is normalized.
func (f *File) RemoveLines(start, end int) {
	lo, hi := normalize(start, end)
	lo = clampRange(lo, len(f.lines))
	hi = clampRange(hi, len(f.lines))
	if len(f.lines) == 0 {
		return
	}

	lines, removed := removeRange(f.lines, lo, hi)
	f.lines = lines
	f.hist.record(newRemoveItem(lo, hi, removed))
	f.bumpVersion()
	f.clampSelection()
}

// SwapUp moves the [start, end] block up by one row. A no-op (no history
// entry) if the block is already at the top.
func (f *File) SwapUp(start, end int) {
	lo, _ := normalize(start, end)
	if lo <= 0 {
		return
	}
	swapRangeUp(f.lines, start, end)
	f.hist.record(newSwapUpItem(start, end))
	f.bumpVersion()
}

// SwapDown moves the [start, end] block down by one row. A no-op (no
// history entry) if the block is already at the bottom.
func (f *File) SwapDown(start, end int) {
	_, hi := normalize(start, end)
	if hi >= len(f.lines)-1 {
		return
	}
	swapRangeDown(f.lines, start, end)
	f.hist.record(newSwapDownItem(start, end))
	f.bumpVersion()
}

// Reset restores all lines to their on-disk (load-time) content, recording
// a history entry so the reset itself can be undone. Rerolls version.id.
func (f *File) Reset() {
	before := append([]Line(nil), f.lines...)
	f.lines = append([]Line(nil), f.original...)
	f.hist.record(newLoadItem(before))
	f.version.Reset()
	f.clampSelection()
}

// Undo pops the most recent undo entry, applies its inverse, pushes the
// inverse's own inverse onto redo, and returns the restored range so the
// caller can reposition the cursor. Returns ok=false if there is nothing
// to undo.
func (f *File) Undo() (start, end int, ok bool) {
	if len(f.hist.undo) == 0 {
		return 0, 0, false
	}
	item := f.hist.undo[len(f.hist.undo)-1]
	f.hist.undo = f.hist.undo[:len(f.hist.undo)-1]

	switch item.Operation {
	case OpModify:
		lo, hi := normalize(item.StartIndex, item.EndIndex)
		current := snapshotRange(f.lines, lo, hi)
		copy(f.lines[lo:hi+1], item.Lines)
		f.hist.redo = append(f.hist.redo, newModifyItem(item.StartIndex, item.EndIndex, current))
	case OpAdd:
		lines, removed := removeRange(f.lines, item.StartIndex, item.EndIndex)
		f.lines = lines
		f.hist.redo = append(f.hist.redo, HistoryItem{Operation: OpAdd, StartIndex: item.StartIndex, EndIndex: item.EndIndex, Lines: removed})
	case OpRemove:
		f.lines = addRange(f.lines, item.Lines, item.StartIndex, item.EndIndex)
		f.hist.redo = append(f.hist.redo, HistoryItem{Operation: OpRemove, StartIndex: item.StartIndex, EndIndex: item.EndIndex})
	case OpSwapUp:
		swapRangeDown(f.lines, item.StartIndex-1, item.EndIndex-1)
		f.hist.redo = append(f.hist.redo, HistoryItem{Operation: OpSwapUp, StartIndex: item.StartIndex, EndIndex: item.EndIndex})
	case OpSwapDown:
		swapRangeUp(f.lines, item.StartIndex+1, item.EndIndex+1)
		f.hist.redo = append(f.hist.redo, HistoryItem{Operation: OpSwapDown, StartIndex: item.StartIndex, EndIndex: item.EndIndex})
	case OpLoad:
		after := append([]Line(nil), f.lines...)
		f.lines = append([]Line(nil), item.Lines...)
		f.hist.redo = append(f.hist.redo, newLoadItem(after))
	}

	f.bumpVersion()
	f.clampSelection()
	lo, hi := normalize(item.StartIndex, item.EndIndex)
	lo = clampRange(lo, len(f.lines))
	hi = clampRange(hi, len(f.lines))
	f.SetSelectedIndex(lo)
	return lo, hi, true
}

// Redo pops the most recent redo entry (pushed there by Undo) and re-applies
// it, restoring the state Undo had reverted.
func (f *File) Redo() (start, end int, ok bool) {
	if len(f.hist.redo) == 0 {
		return 0, 0, false
	}
	item := f.hist.redo[len(f.hist.redo)-1]
	f.hist.redo = f.hist.redo[:len(f.hist.redo)-1]

	switch item.Operation {
	case OpModify:
		lo, hi := normalize(item.StartIndex, item.EndIndex)
		current := snapshotRange(f.lines, lo, hi)
		copy(f.lines[lo:hi+1], item.Lines)
		f.hist.pushUndo(newModifyItem(item.StartIndex, item.EndIndex, current))
	case OpAdd:
		f.lines = addRange(f.lines, item.Lines, item.StartIndex, item.EndIndex)
		f.hist.pushUndo(HistoryItem{Operation: OpAdd, StartIndex: item.StartIndex, EndIndex: item.EndIndex})
	case OpRemove:
		lines, removed := removeRange(f.lines, item.StartIndex, item.EndIndex)
		f.lines = lines
		f.hist.pushUndo(HistoryItem{Operation: OpRemove, StartIndex: item.StartIndex, EndIndex: item.EndIndex, Lines: removed})
	case OpSwapUp:
		swapRangeUp(f.lines, item.StartIndex, item.EndIndex)
		f.hist.pushUndo(HistoryItem{Operation: OpSwapUp, StartIndex: item.StartIndex, EndIndex: item.EndIndex})
	case OpSwapDown:
		swapRangeDown(f.lines, item.StartIndex, item.EndIndex)
		f.hist.pushUndo(HistoryItem{Operation: OpSwapDown, StartIndex: item.StartIndex, EndIndex: item.EndIndex})
	case OpLoad:
		before := append([]Line(nil), f.lines...)
		f.lines = append([]Line(nil), item.Lines...)
		f.hist.pushUndo(newLoadItem(before))
	}

	f.bumpVersion()
	f.clampSelection()
	lo, hi := normalize(item.StartIndex, item.EndIndex)
	lo = clampRange(lo, len(f.lines))
	hi = clampRange(hi, len(f.lines))
	f.SetSelectedIndex(lo)
	return lo, hi, true
}

// FileReadError wraps an I/O or parse failure encountered by Load.
type FileReadError struct {
	Path  string
	Cause error
}

func (e *FileReadError) Error() string { return fmt.Sprintf("read %s: %v", e.Path, e.Cause) }
func (e *FileReadError) Unwrap() error { return e.Cause }

// FileWriteError wraps an I/O failure encountered by Write.
type FileWriteError struct {
	Path  string
	Cause error
}

func (e *FileWriteError) Error() string { return fmt.Sprintf("write %s: %v", e.Path, e.Cause) }
func (e *FileWriteError) Unwrap() error { return e.Cause }
