package runtime

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeThreadable struct {
	paused   bool
	resumed  bool
	ended    bool
	poisoned bool
}

func (f *fakeThreadable) Pause()  { f.paused = true }
func (f *fakeThreadable) Resume() { f.resumed = true }
func (f *fakeThreadable) End() {
	f.ended = true
	f.poisoned = true
}
func (f *fakeThreadable) Poisoned() bool { return f.poisoned }

func TestPauseAllSkipsExcepted(t *testing.T) {
	statuses := NewThreadStatuses()
	in := NewInstaller(statuses)
	view := &fakeThreadable{}
	input := &fakeThreadable{}
	in.Install("view", view)
	in.Install("input", input)
	sup := NewSupervisor(statuses, in)

	sup.PauseAll("input")

	assert.True(t, view.paused)
	assert.False(t, input.paused)
	assert.Equal(t, StatusWaiting, statuses.Get("view"))
}

func TestResumeAllResumesEveryone(t *testing.T) {
	statuses := NewThreadStatuses()
	in := NewInstaller(statuses)
	view := &fakeThreadable{}
	in.Install("view", view)
	sup := NewSupervisor(statuses, in)

	sup.ResumeAll()

	assert.True(t, view.resumed)
	assert.Equal(t, StatusBusy, statuses.Get("view"))
}

func TestEndAllEndsEveryoneAndReturnsNilOnSuccess(t *testing.T) {
	statuses := NewThreadStatuses()
	in := NewInstaller(statuses)
	view := &fakeThreadable{}
	input := &fakeThreadable{}
	in.Install("view", view)
	in.Install("input", input)
	sup := NewSupervisor(statuses, in)

	err := sup.EndAll()

	require.NoError(t, err)
	assert.True(t, view.ended)
	assert.True(t, input.ended)
	assert.Equal(t, StatusEnded, statuses.Get("view"))
	assert.Equal(t, StatusEnded, statuses.Get("input"))
}

func TestEndAllReportsWaitTimeoutForUnresponsiveThreadable(t *testing.T) {
	original := ThreadWaitTimeout
	ThreadWaitTimeout = 20 * time.Millisecond
	defer func() { ThreadWaitTimeout = original }()

	statuses := NewThreadStatuses()
	in := NewInstaller(statuses)
	in.Install("diff", &neverPoisons{})
	sup := NewSupervisor(statuses, in)

	err := sup.EndAll()

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrThreadWaitTimeout))
	assert.Equal(t, StatusError, statuses.Get("diff"))
}

// neverPoisons simulates a threadable that never honours End, forcing the
// supervisor's bounded wait to expire.
type neverPoisons struct{}

func (n *neverPoisons) Pause()         {}
func (n *neverPoisons) Resume()        {}
func (n *neverPoisons) End()           {}
func (n *neverPoisons) Poisoned() bool { return false }

func TestFirstErrorReportsFirstRecordedKind(t *testing.T) {
	statuses := NewThreadStatuses()
	statuses.PostError("diff", ErrKindIO)

	name, kind, ok := statuses.FirstError()

	require.True(t, ok)
	assert.Equal(t, "diff", name)
	assert.Equal(t, ErrKindIO, kind)
}
