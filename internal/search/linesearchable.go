package search

import "strings"

// LineMatch is one line that matched the current search term, per
// spec.md §4.F.
type LineMatch struct {
	Index   int
	Hash    string
	Content string
}

// Line is one searchable row: Hash is matched by case-insensitive prefix,
// Content by case-insensitive substring (spec.md §4.F).
type Line struct {
	Hash    string
	Content string
}

// LinesProvider returns the current searchable rows; called once per
// Reset/search pass so it can reflect TodoFile mutations that happened
// between searches.
type LinesProvider func() []Line

// LineSearchable is the Searchable the list module (and show-commit's
// diff scroll) installs: it walks LinesProvider's rows incrementally,
// yielding control back to the search thread once the Interrupter's slice
// budget expires, and accumulates Matches for the caller to read after
// each Search call.
//
// Grounded on spec.md §4.F's prose description of the list module's
// Searchable (no single teacher file implements incremental substring
// search; this mirrors the teacher's own incremental style of processing
// used elsewhere, such as Buf.capture appending progressively to a
// shared slice under lock).
type LineSearchable struct {
	provider LinesProvider

	lines   []Line
	cursor  int
	matches []LineMatch
}

// NewLineSearchable builds a LineSearchable reading rows from provider.
func NewLineSearchable(provider LinesProvider) *LineSearchable {
	return &LineSearchable{provider: provider}
}

// Reset clears progress and re-reads the current lines.
func (l *LineSearchable) Reset() {
	l.lines = l.provider()
	l.cursor = 0
	l.matches = nil
}

// Matches returns the match set accumulated so far.
func (l *LineSearchable) Matches() []LineMatch {
	return l.matches
}

// MatchCount implements search.Countable so Thread.Step can wrap around
// the current match set.
func (l *LineSearchable) MatchCount() int {
	return len(l.matches)
}

// RowIndex implements search.RowIndexer, resolving a position in Matches()
// back to the row it came from (Line.Index in the original LinesProvider
// slice), so Thread.Step can report where the caller should move its own
// selection/scroll to.
func (l *LineSearchable) RowIndex(matchPosition int) int {
	if matchPosition < 0 || matchPosition >= len(l.matches) {
		return -1
	}
	return l.matches[matchPosition].Index
}

// Search scans forward from the last cursor position, matching term
// against each line's hash prefix and content substring, until the
// Interrupter's budget expires or every line has been visited.
func (l *LineSearchable) Search(interrupter Interrupter, term string) Result {
	if term == "" {
		return ResultComplete
	}
	needle := strings.ToLower(term)

	for l.cursor < len(l.lines) {
		if !interrupter.ShouldContinue() {
			return ResultUpdated
		}
		line := l.lines[l.cursor]
		if matchesLine(line, needle) {
			l.matches = append(l.matches, LineMatch{
				Index:   l.cursor,
				Hash:    line.Hash,
				Content: line.Content,
			})
		}
		l.cursor++
	}
	return ResultComplete
}

func matchesLine(line Line, needle string) bool {
	if line.Hash != "" && strings.HasPrefix(strings.ToLower(line.Hash), needle) {
		return true
	}
	return strings.Contains(strings.ToLower(line.Content), needle)
}
