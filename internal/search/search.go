// Package search implements component F (spec.md §4.F): a background
// thread that drives a pluggable Searchable in a cooperative loop,
// publishing incremental match results under a bounded slice budget so it
// stays responsive to cancellation.
package search

import (
	"sync"
	"time"
)

// Result is the outcome of one search(Interrupter, term) call.
type Result int

const (
	ResultNone Result = iota
	ResultUpdated
	ResultComplete
)

// Status is the lifecycle state of the search thread.
type Status int

const (
	StatusInactive Status = iota
	StatusSearching
	StatusComplete
)

// Interrupter wraps a monotonic deadline; a Searchable polls
// ShouldContinue between match attempts and must yield (returning
// ResultUpdated) once it reports false, per spec.md §4.F's slice-budget
// rule (~10ms).
type Interrupter struct {
	deadline time.Time
}

// NewInterrupter builds an Interrupter whose budget expires after d.
func NewInterrupter(d time.Duration) Interrupter {
	return Interrupter{deadline: time.Now().Add(d)}
}

// ShouldContinue reports whether the caller may keep working within this
// slice's time budget.
func (i Interrupter) ShouldContinue() bool {
	return time.Now().Before(i.deadline)
}

// Searchable is the capability a search target implements: reset clears
// incremental state, search advances the scan by one slice and reports
// whether more work remains.
type Searchable interface {
	Reset()
	Search(interrupter Interrupter, term string) Result
}

// Countable is an optional capability a Searchable may also implement so
// Step (Next/Previous) knows how many matches to wrap around; LineSearchable
// implements it via its Matches() slice length.
type Countable interface {
	MatchCount() int
}

// RowIndexer is an optional capability letting Step resolve a match's
// position in the match list back to the underlying row it came from (e.g.
// a todo-file line index), so callers can re-select or re-scroll to it.
// LineSearchable implements it via its Matches() slice's Index field.
type RowIndexer interface {
	RowIndex(matchPosition int) int
}

// State is the lock-protected snapshot the UI reads on each render.
type State struct {
	Term        string
	Status      Status
	ActiveIndex int
	HasActive   bool
}

// SliceBudget is the default per-call time budget handed to a Searchable,
// matching spec.md §4.F's "~10 ms" figure.
const SliceBudget = 10 * time.Millisecond

type actionKind int

const (
	actionStart actionKind = iota
	actionCancel
	actionSetSearchable
)

type mailboxAction struct {
	kind       actionKind
	term       string
	searchable Searchable
}

// Thread is the search threadable. Grounded on internal/diffload.Thread's
// mailbox-plus-generation shape (itself grounded on Omairy12-up's
// Buf/Subprocess pairing): a single goroutine drains a buffered channel of
// actions, runs bounded units of work via an Interrupter, and republishes
// State under lock after every slice so the list/show-commit modules can
// poll a consistent snapshot.
type Thread struct {
	updateHandler func()

	mu         sync.Mutex
	state      State
	searchable Searchable
	paused     bool
	poisoned   bool

	actions chan mailboxAction
	stop    chan struct{}
	once    sync.Once
}

// NewThread constructs a search thread with no Searchable installed yet;
// install one via SetSearchable before Start.
func NewThread(updateHandler func()) *Thread {
	return &Thread{
		updateHandler: updateHandler,
		actions:       make(chan mailboxAction, 8),
		stop:          make(chan struct{}),
	}
}

// SetSearchable swaps the search target, preserving the current term
// (spec.md §4.F: "swap target, preserving term").
func (t *Thread) SetSearchable(s Searchable) {
	t.actions <- mailboxAction{kind: actionSetSearchable, searchable: s}
}

// Start begins (or restarts) searching for term.
func (t *Thread) Start(term string) {
	t.actions <- mailboxAction{kind: actionStart, term: term}
}

// Cancel resets the searchable and clears state.
func (t *Thread) Cancel() {
	t.actions <- mailboxAction{kind: actionCancel}
}

// Step moves the active match pointer by delta (+1 Next, -1 Previous) with
// wrap-around (spec.md §4.F: Next/Previous "rotate the pointer with
// wrap-around"). Unlike Start/Cancel/SetSearchable, it is handled directly
// under the state lock rather than via the mailbox: it only ever touches
// already-accumulated matches, never drives a slice of search work, so a
// caller acting on a keypress needs its result in the same call rather than
// after the next slice. It reports the matched row's index (via the
// installed Searchable's RowIndexer, when it implements one) so the caller
// can move its own selection/scroll there; ok is false if there is nothing
// to step to.
func (t *Thread) Step(delta int) (rowIndex int, ok bool) {
	t.mu.Lock()

	countable, isCountable := t.searchable.(Countable)
	if !isCountable {
		t.mu.Unlock()
		return 0, false
	}
	total := countable.MatchCount()
	if total <= 0 {
		t.mu.Unlock()
		return 0, false
	}

	next := 0
	if t.state.HasActive {
		next = ((t.state.ActiveIndex+delta)%total + total) % total
	}
	t.state.ActiveIndex = next
	t.state.HasActive = true

	indexer, isIndexer := t.searchable.(RowIndexer)
	t.mu.Unlock()
	t.notify()

	if !isIndexer {
		return 0, false
	}
	return indexer.RowIndex(next), true
}

// State returns a copy of the current search state.
func (t *Thread) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Pause suspends slice processing until Resume, used while an external
// editor child has the terminal (spec.md §5 "Cancellation"), mirroring
// internal/input.Thread's Pause.
func (t *Thread) Pause() {
	t.mu.Lock()
	t.paused = true
	t.mu.Unlock()
}

// Resume re-enables slice processing.
func (t *Thread) Resume() {
	t.mu.Lock()
	t.paused = false
	t.mu.Unlock()
}

// Poisoned reports whether the thread has ended, mirroring
// internal/input.Thread.Poisoned's "ended" meaning.
func (t *Thread) Poisoned() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.poisoned
}

// End stops the thread.
func (t *Thread) End() {
	t.once.Do(func() { close(t.stop) })
	t.mu.Lock()
	t.poisoned = true
	t.mu.Unlock()
}

// Run processes mailbox actions until End is called; call it in its own
// goroutine. While Searching, it repeatedly calls the installed
// Searchable between draining the mailbox, so a Cancel or SetSearchable
// queued mid-search is observed within one slice budget.
func (t *Thread) Run() {
	for {
		select {
		case <-t.stop:
			return
		case act := <-t.actions:
			t.handle(act)
		default:
			if t.searching() {
				t.runSlice()
			} else {
				select {
				case <-t.stop:
					return
				case act := <-t.actions:
					t.handle(act)
				}
			}
		}
	}
}

func (t *Thread) searching() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.paused && t.state.Status == StatusSearching
}

func (t *Thread) handle(act mailboxAction) {
	switch act.kind {
	case actionSetSearchable:
		t.mu.Lock()
		t.searchable = act.searchable
		t.mu.Unlock()
		if act.searchable != nil {
			act.searchable.Reset()
		}
	case actionStart:
		t.mu.Lock()
		if t.searchable != nil {
			t.searchable.Reset()
		}
		t.state = State{Term: act.term, Status: StatusSearching}
		t.mu.Unlock()
		t.notify()
	case actionCancel:
		t.mu.Lock()
		if t.searchable != nil {
			t.searchable.Reset()
		}
		t.state = State{Status: StatusInactive}
		t.mu.Unlock()
		t.notify()
	}
}

func (t *Thread) runSlice() {
	t.mu.Lock()
	searchable := t.searchable
	term := t.state.Term
	t.mu.Unlock()

	if searchable == nil {
		t.mu.Lock()
		t.state.Status = StatusComplete
		t.mu.Unlock()
		t.notify()
		return
	}

	result := searchable.Search(NewInterrupter(SliceBudget), term)

	t.mu.Lock()
	if result == ResultComplete || result == ResultNone {
		t.state.Status = StatusComplete
	}
	// ResultUpdated leaves Status as Searching; intermediate match
	// accumulation lives on the concrete Searchable (e.g.
	// LineSearchable.Matches), polled separately by the owning module.
	t.mu.Unlock()
	t.notify()
}

func (t *Thread) notify() {
	if t.updateHandler != nil {
		t.updateHandler()
	}
}
