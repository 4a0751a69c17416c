package render

import (
	"sync"
	"time"

	"github.com/akavel/girt/internal/config"
	"github.com/akavel/girt/internal/tuicap"
	"github.com/akavel/girt/internal/viewdata"
)

// ViewAction is a command sent to the view thread.
type ViewAction int

const (
	ViewActionStart ViewAction = iota
	ViewActionStop
	ViewActionRefresh
	ViewActionRender
	ViewActionEnd
)

// DrawFunc paints a RenderSlice onto a TUI. internal/module owns layout
// policy (title bar, help indicator, per-segment styling); render only
// owns the tick/throttle/poison machinery, so the paint step is injected.
type DrawFunc func(tui tuicap.TUI, theme config.Theme, slice RenderSlice)

// Thread is the view threadable (spec.md §4.B-C): it owns the terminal
// handle, consumes ViewAction commands, and throttles bursts of Render
// requests to one paint per tick (~20ms / ~50Hz). Grounded on
// Omairy12-up's main loop, which redraws unconditionally on every event;
// here that draw call is pulled out into its own goroutine so the process
// loop's event handling is decoupled from paint cadence, and on a companion
// ticker goroutine that injects Refresh the way up.go's capture() goroutine
// injects PostEvent(EventInterrupt) to wake the main loop on new data.
type Thread struct {
	tui       tuicap.TUI
	theme     config.Theme
	slicer    *Slicer
	draw      DrawFunc
	tickEvery time.Duration

	actions chan ViewAction
	submit  chan viewdata.Snapshot

	mu       sync.Mutex
	poisoned bool
	paused   bool

	updateHandler func()
}

// NewThread constructs a view thread. updateHandler, if non-nil, is called
// after every paint (successful or not) so the process loop can react
// (e.g. clear a dirty flag); this is the same "invoke a callback after each
// publication" shape diffload and search use, grounded on
// Omairy12-up's Buf.StartCapturing(r, notify).
func NewThread(tui tuicap.TUI, theme config.Theme, slicer *Slicer, draw DrawFunc, updateHandler func()) *Thread {
	return &Thread{
		tui:           tui,
		theme:         theme,
		slicer:        slicer,
		draw:          draw,
		tickEvery:     20 * time.Millisecond,
		actions:       make(chan ViewAction, 32),
		submit:        make(chan viewdata.Snapshot, 1),
		updateHandler: updateHandler,
	}
}

// Submit hands a fresh ViewData snapshot to the thread for its next paint,
// overwriting any snapshot not yet painted (the thread only ever wants the
// latest).
func (t *Thread) Submit(snap viewdata.Snapshot) {
	select {
	case <-t.submit:
	default:
	}
	t.submit <- snap
}

// Post enqueues a ViewAction.
func (t *Thread) Post(action ViewAction) {
	t.actions <- action
}

// Poisoned reports whether the thread has ended or hit a terminal I/O
// failure — End() sets this the same way input.Thread's does, so the
// supervisor can poll it to detect a clean shutdown as well as a failure.
func (t *Thread) Poisoned() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.poisoned
}

// Pause stops painting without tearing down the terminal.
func (t *Thread) Pause() { t.Post(ViewActionStop) }

// Resume resumes painting.
func (t *Thread) Resume() { t.Post(ViewActionStart) }

// End tears down the terminal and stops the thread's goroutines.
func (t *Thread) End() { t.Post(ViewActionEnd) }

// Run is the thread's main loop; call it in its own goroutine. A companion
// ticker goroutine periodically posts Refresh to drive throttled repaint.
func (t *Thread) Run() {
	if err := t.tui.Start(); err != nil {
		t.mu.Lock()
		t.poisoned = true
		t.mu.Unlock()
		return
	}

	stopTicker := make(chan struct{})
	go t.tick(stopTicker)
	defer close(stopTicker)

	var pending viewdata.Snapshot
	haveSnapshot := false
	lastPaint := time.Time{}

	for action := range t.actions {
		switch action {
		case ViewActionStart:
			t.mu.Lock()
			t.paused = false
			t.mu.Unlock()
		case ViewActionStop:
			t.mu.Lock()
			t.paused = true
			t.mu.Unlock()
		case ViewActionEnd:
			t.tui.End()
			t.mu.Lock()
			t.poisoned = true
			t.mu.Unlock()
			return
		case ViewActionRefresh, ViewActionRender:
			t.mu.Lock()
			paused := t.paused
			t.mu.Unlock()
			if paused {
				continue
			}
			select {
			case s := <-t.submit:
				pending = s
				haveSnapshot = true
			default:
			}
			if !haveSnapshot {
				continue
			}
			if since := time.Since(lastPaint); since < t.tickEvery {
				continue
			}
			if !t.paint(pending) {
				return
			}
			lastPaint = time.Now()
		}
	}
}

func (t *Thread) paint(snap viewdata.Snapshot) bool {
	w, h := t.tui.GetSize()
	t.slicer.Resize(w, h)
	slice := t.slicer.Compute(snap)

	t.tui.Reset()
	t.draw(t.tui, t.theme, slice)
	if err := t.tui.Flush(); err != nil {
		t.mu.Lock()
		t.poisoned = true
		t.mu.Unlock()
		if t.updateHandler != nil {
			t.updateHandler()
		}
		return false
	}
	if t.updateHandler != nil {
		t.updateHandler()
	}
	return true
}

func (t *Thread) tick(stop <-chan struct{}) {
	ticker := time.NewTicker(t.tickEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			select {
			case t.actions <- ViewActionRefresh:
			default:
			}
		case <-stop:
			return
		}
	}
}
