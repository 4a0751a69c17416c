package viewdata

// Segment is one styled run of text within a ViewLine.
type Segment struct {
	Text  string
	Style Style
}

// ViewLine is one logical row of on-screen content: an ordered list of
// styled segments, an optional trailing pad segment used to fill unused
// width (e.g. the selection highlight bar), a selected flag, and a count of
// leading "pinned" segments that never scroll horizontally (e.g. a hash
// column that should stay visible while the content column scrolls).
type ViewLine struct {
	Segments   []Segment
	Pad        *Segment
	Selected   bool
	PinnedHead int
}

// NewViewLine builds a ViewLine from plain segments with no padding.
func NewViewLine(segments ...Segment) ViewLine {
	return ViewLine{Segments: segments}
}

// WithSelected returns a copy of l marked selected.
func (l ViewLine) WithSelected(selected bool) ViewLine {
	l.Selected = selected
	return l
}

// WithPad returns a copy of l with a trailing pad segment set.
func (l ViewLine) WithPad(s Segment) ViewLine {
	l.Pad = &s
	return l
}

// WithPinnedHead returns a copy of l with n leading segments marked pinned.
func (l ViewLine) WithPinnedHead(n int) ViewLine {
	l.PinnedHead = n
	return l
}

// Width returns the total rune-count width of all segments (padding
// excluded); internal/render is responsible for runewidth-aware measurement
// against the terminal, this is a logical rune-count helper used for
// scroll clamping before that measurement happens.
func (l ViewLine) Width() int {
	n := 0
	for _, s := range l.Segments {
		n += len([]rune(s.Text))
	}
	return n
}
