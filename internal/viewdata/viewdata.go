// Package viewdata holds the structured, pre-layout description of what a
// module wants on screen: component B of the engine (spec.md §4.B).
package viewdata

import "sync"

// RebuildFunc repopulates a ViewData's zones. It is captured once at
// construction and re-invoked, pull-driven, whenever the render path finds
// the data dirty.
type RebuildFunc func(v *ViewData)

// ViewData groups a title/help flag pair with three zones of ViewLine:
// leading (pinned rows, e.g. a header), body (the scrollable region), and
// trailing (a pinned footer, e.g. a help bar). A dirty bit, set by New and
// MarkDirty and cleared once the rebuild closure has run, makes the rebuild
// lazy: the zones are re-populated at most once per MarkDirty, on the next
// read. The Set*/Push*/Extend*/Clear* mutators do not set the dirty bit.
//
// Exported methods take v's lock; internal/render takes a snapshot copy via
// Snapshot before handing it to the view thread, per the "borrowed through a
// snapshot copy" sharing policy.
type ViewData struct {
	mu sync.Mutex

	title    bool
	showHelp bool

	leading  []ViewLine
	body     []ViewLine
	trailing []ViewLine

	dirty   bool
	rebuild RebuildFunc
}

// New constructs an empty, dirty ViewData with the given rebuild closure.
func New(rebuild RebuildFunc) *ViewData {
	return &ViewData{dirty: true, rebuild: rebuild}
}

// MarkDirty flags the ViewData for rebuild on next read.
func (v *ViewData) MarkDirty() {
	v.mu.Lock()
	v.dirty = true
	v.mu.Unlock()
}

// SetTitle sets the title-bar flag.
func (v *ViewData) SetTitle(show bool) {
	v.mu.Lock()
	v.title = show
	v.mu.Unlock()
}

// SetHelp sets the help-indicator flag.
func (v *ViewData) SetHelp(show bool) {
	v.mu.Lock()
	v.showHelp = show
	v.mu.Unlock()
}

// PushLeading appends one line to the leading zone.
func (v *ViewData) PushLeading(l ViewLine) {
	v.mu.Lock()
	v.leading = append(v.leading, l)
	v.mu.Unlock()
}

// PushBody appends one line to the body zone.
func (v *ViewData) PushBody(l ViewLine) {
	v.mu.Lock()
	v.body = append(v.body, l)
	v.mu.Unlock()
}

// PushTrailing appends one line to the trailing zone.
func (v *ViewData) PushTrailing(l ViewLine) {
	v.mu.Lock()
	v.trailing = append(v.trailing, l)
	v.mu.Unlock()
}

// ExtendLeading appends multiple lines to the leading zone.
func (v *ViewData) ExtendLeading(lines []ViewLine) {
	v.mu.Lock()
	v.leading = append(v.leading, lines...)
	v.mu.Unlock()
}

// ExtendBody appends multiple lines to the body zone.
func (v *ViewData) ExtendBody(lines []ViewLine) {
	v.mu.Lock()
	v.body = append(v.body, lines...)
	v.mu.Unlock()
}

// ExtendTrailing appends multiple lines to the trailing zone.
func (v *ViewData) ExtendTrailing(lines []ViewLine) {
	v.mu.Lock()
	v.trailing = append(v.trailing, lines...)
	v.mu.Unlock()
}

// ClearLeading empties the leading zone.
func (v *ViewData) ClearLeading() {
	v.mu.Lock()
	v.leading = nil
	v.mu.Unlock()
}

// ClearBody empties the body zone.
func (v *ViewData) ClearBody() {
	v.mu.Lock()
	v.body = nil
	v.mu.Unlock()
}

// ClearTrailing empties the trailing zone.
func (v *ViewData) ClearTrailing() {
	v.mu.Lock()
	v.trailing = nil
	v.mu.Unlock()
}

// ensureBuilt invokes the rebuild closure if dirty. Caller must hold v.mu.
func (v *ViewData) ensureBuilt() {
	if !v.dirty || v.rebuild == nil {
		return
	}
	v.leading = nil
	v.body = nil
	v.trailing = nil
	// rebuild calls back into this ViewData's own Push/Extend/Set
	// mutators, each of which takes v.mu; drop the lock for the duration
	// of the callback to avoid self-deadlock, then reacquire it.
	v.mu.Unlock()
	v.rebuild(v)
	v.mu.Lock()
	v.dirty = false
}

// Title reports the title-bar flag, rebuilding first if dirty.
func (v *ViewData) Title() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.ensureBuilt()
	return v.title
}

// Help reports the help-indicator flag, rebuilding first if dirty.
func (v *ViewData) Help() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.ensureBuilt()
	return v.showHelp
}

// LeadingLines returns a copy of the leading zone, rebuilding first if dirty.
func (v *ViewData) LeadingLines() []ViewLine {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.ensureBuilt()
	return append([]ViewLine(nil), v.leading...)
}

// BodyLines returns a copy of the body zone, rebuilding first if dirty.
func (v *ViewData) BodyLines() []ViewLine {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.ensureBuilt()
	return append([]ViewLine(nil), v.body...)
}

// TrailingLines returns a copy of the trailing zone, rebuilding first if
// dirty.
func (v *ViewData) TrailingLines() []ViewLine {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.ensureBuilt()
	return append([]ViewLine(nil), v.trailing...)
}

// Snapshot is the immutable copy handed to the view thread at submission
// time, per the "ViewData is borrowed through a snapshot copy" sharing
// policy (spec.md §5).
type Snapshot struct {
	Title    bool
	Help     bool
	Leading  []ViewLine
	Body     []ViewLine
	Trailing []ViewLine
}

// Snapshot rebuilds if needed and returns an immutable copy of all zones.
func (v *ViewData) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.ensureBuilt()
	return Snapshot{
		Title:    v.title,
		Help:     v.showHelp,
		Leading:  append([]ViewLine(nil), v.leading...),
		Body:     append([]ViewLine(nil), v.body...),
		Trailing: append([]ViewLine(nil), v.trailing...),
	}
}
