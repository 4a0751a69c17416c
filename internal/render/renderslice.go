// Package render implements component C (spec.md §4.B-C): deriving the
// clipped, scrolled RenderSlice from a ViewData snapshot, and the view
// thread that owns the terminal handle and paints it.
package render

import (
	"sync"

	"github.com/akavel/girt/internal/viewdata"
)

// RenderSlice is the terminal-ready projection of a ViewData snapshot:
// the body lines actually visible after vertical scroll/clip, the
// horizontal scroll offset applied to every line, and scrollbar placement.
type RenderSlice struct {
	Title bool
	Help  bool

	Leading  []viewdata.ViewLine
	Body     []viewdata.ViewLine
	Trailing []viewdata.ViewLine

	HScroll int
	VScroll int

	TotalRows     int
	ShowScrollbar bool
	ScrollbarRow  int

	Width, Height int
}

// Slicer holds the scroll/size state that persists across renders (the
// ViewData itself is stateless regarding scroll position) and recomputes a
// RenderSlice on demand.
type Slicer struct {
	mu sync.Mutex

	width, height int
	vscroll       int
	hscroll       int
}

// NewSlicer constructs a Slicer with a zero-size window; the first Resize
// call establishes real dimensions.
func NewSlicer() *Slicer { return &Slicer{} }

// Resize records new window dimensions; the scroll offsets are left as
// they are and clamped to the new size in Compute. Per spec.md §4.B-C rule 1, this invalidates any cached slice;
// since Compute always recomputes from scratch, that invalidation is
// implicit here.
func (s *Slicer) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width, s.height = width, height
}

// SetVScroll sets the body's vertical scroll offset (in body rows), used by
// a module to keep the selected row in view; it is clamped during Compute.
func (s *Slicer) SetVScroll(v int) {
	s.mu.Lock()
	s.vscroll = v
	s.mu.Unlock()
}

// SetHScroll sets the horizontal scroll offset (in columns).
func (s *Slicer) SetHScroll(h int) {
	s.mu.Lock()
	s.hscroll = h
	s.mu.Unlock()
}

// Compute derives a RenderSlice from snap given the Slicer's current window
// size and scroll offsets, applying spec.md §4.B-C's rules: clip body rows
// to the leading/trailing-adjusted height, clamp horizontal scroll to the
// widest visible row, and decide scrollbar placement via ScrollPosition.
func (s *Slicer) Compute(snap viewdata.Snapshot) RenderSlice {
	s.mu.Lock()
	width, height := s.width, s.height
	vscroll, hscroll := s.vscroll, s.hscroll
	s.mu.Unlock()

	bodyHeight := height - len(snap.Leading) - len(snap.Trailing)
	if bodyHeight < 0 {
		bodyHeight = 0
	}

	itemCount := len(snap.Body)
	maxVScroll := itemCount - bodyHeight
	if maxVScroll < 0 {
		maxVScroll = 0
	}
	if vscroll > maxVScroll {
		vscroll = maxVScroll
	}
	if vscroll < 0 {
		vscroll = 0
	}

	end := vscroll + bodyHeight
	if end > itemCount {
		end = itemCount
	}
	var visibleBody []viewdata.ViewLine
	if vscroll < end {
		visibleBody = append([]viewdata.ViewLine(nil), snap.Body[vscroll:end]...)
	}

	maxWidth := 0
	for _, l := range snap.Leading {
		if w := l.Width(); w > maxWidth {
			maxWidth = w
		}
	}
	for _, l := range visibleBody {
		if w := l.Width(); w > maxWidth {
			maxWidth = w
		}
	}
	for _, l := range snap.Trailing {
		if w := l.Width(); w > maxWidth {
			maxWidth = w
		}
	}
	maxHScroll := maxWidth - width
	if maxHScroll < 0 {
		maxHScroll = 0
	}
	if hscroll > maxHScroll {
		hscroll = maxHScroll
	}
	if hscroll < 0 {
		hscroll = 0
	}

	slice := RenderSlice{
		Title:     snap.Title,
		Help:      snap.Help,
		Leading:   snap.Leading,
		Body:      visibleBody,
		Trailing:  snap.Trailing,
		HScroll:   hscroll,
		VScroll:   vscroll,
		TotalRows: itemCount,
		Width:     width,
		Height:    height,
	}
	if itemCount > bodyHeight && bodyHeight > 0 {
		slice.ShowScrollbar = true
		slice.ScrollbarRow = ScrollPosition(vscroll, itemCount, bodyHeight)
	}
	return slice
}
