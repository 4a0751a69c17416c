package input

import (
	"sync"
	"time"

	"github.com/akavel/girt/internal/tuicap"
)

// RawReader polls the terminal backend for the next event, blocking up to
// timeout. It is the seam between this package and internal/tuicap,
// matching tuicap.TUI.ReadEvent's signature so the process wiring can pass
// that method directly.
type RawReader func(timeout time.Duration) tuicap.Event

// Thread is the input threadable (spec.md §4.D): it polls a RawReader on
// its own goroutine, decodes each raw event through a Keymap into a
// high-level Event, and buffers decoded events in a FIFO queue that
// read_event()-style consumers drain with a bounded wait.
//
// Grounded on Omairy12-up's main loop in shape only (decode raw tcell keys
// via a lookup), generalized: the teacher's PollEvent call and dispatch
// happen inline on the single UI goroutine, with no queue, pause, or
// poison state, since up has no background threadables to coordinate with.
type Thread struct {
	read   RawReader
	keymap *Keymap

	mu       sync.Mutex
	queue    []Event
	paused   bool
	poisoned bool

	wake chan struct{}
	stop chan struct{}
	once sync.Once
}

// NewThread constructs an input thread. Call Run in its own goroutine.
func NewThread(read RawReader, keymap *Keymap) *Thread {
	return &Thread{
		read:   read,
		keymap: keymap,
		wake:   make(chan struct{}, 1),
		stop:   make(chan struct{}),
	}
}

// Run polls read in a loop, decoding and enqueueing events, until End is
// called. The internal poll timeout (not the caller-visible ~1s
// read_event bound) is kept short so End is observed promptly.
func (t *Thread) Run() {
	const pollTimeout = 200 * time.Millisecond
	for {
		select {
		case <-t.stop:
			return
		default:
		}

		raw := t.read(pollTimeout)
		switch raw.Kind {
		case tuicap.EventNone:
			continue
		case tuicap.EventError:
			t.mu.Lock()
			t.poisoned = true
			t.mu.Unlock()
			continue
		}

		t.mu.Lock()
		if t.paused {
			t.mu.Unlock()
			continue
		}
		t.queue = append(t.queue, t.decode(raw))
		t.mu.Unlock()

		select {
		case t.wake <- struct{}{}:
		default:
		}
	}
}

func (t *Thread) decode(raw tuicap.Event) Event {
	switch raw.Kind {
	case tuicap.EventResize:
		return Event{Kind: KindResize, Width: raw.Width, Height: raw.Height}
	case tuicap.EventMouse:
		return Event{Kind: KindMouse, Mouse: raw.Mouse}
	case tuicap.EventKey:
		if se, ok := t.keymap.Resolve(raw.Key); ok {
			return Event{Kind: KindStandard, Standard: se}
		}
		return Event{Kind: KindKey, Key: raw.Key}
	default:
		return NoneEvent
	}
}

// ReadEvent blocks up to timeout (spec.md §4.D: ~1s) for the next decoded
// event, returning NoneEvent on timeout.
func (t *Thread) ReadEvent(timeout time.Duration) Event {
	deadline := time.Now().Add(timeout)
	for {
		t.mu.Lock()
		if len(t.queue) > 0 {
			ev := t.queue[0]
			t.queue = t.queue[1:]
			t.mu.Unlock()
			return ev
		}
		t.mu.Unlock()

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return NoneEvent
		}
		select {
		case <-t.wake:
		case <-time.After(remaining):
			return NoneEvent
		}
	}
}

// Pause drops raw events instead of enqueueing them.
func (t *Thread) Pause() {
	t.mu.Lock()
	t.paused = true
	t.mu.Unlock()
}

// Resume re-enables enqueueing.
func (t *Thread) Resume() {
	t.mu.Lock()
	t.paused = false
	t.mu.Unlock()
}

// End stops Run, drains outstanding queued events, and sets poisoned —
// per spec.md §4.D, "ending drains outstanding events and sets poisoned".
func (t *Thread) End() {
	t.once.Do(func() { close(t.stop) })
	t.mu.Lock()
	t.queue = nil
	t.poisoned = true
	t.mu.Unlock()
}

// Poisoned reports whether the thread has ended or hit a read error.
func (t *Thread) Poisoned() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.poisoned
}
