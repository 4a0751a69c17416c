package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForStatus(t *testing.T, th *Thread, want Status) State {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		st := th.State()
		if st.Status == want {
			return st
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("status never reached %v, last was %v", want, th.State().Status)
	return State{}
}

func linesOf(contents ...string) []Line {
	out := make([]Line, len(contents))
	for i, c := range contents {
		out[i] = Line{Hash: "", Content: c}
	}
	return out
}

func TestLineSearchableMatchesPrefixAndSubstring(t *testing.T) {
	ls := NewLineSearchable(func() []Line {
		return []Line{
			{Hash: "abc123", Content: "fix bug"},
			{Hash: "def456", Content: "add feature ABC"},
			{Hash: "ghi789", Content: "unrelated"},
		}
	})
	ls.Reset()
	result := ls.Search(NewInterrupter(time.Second), "abc")
	require.Equal(t, ResultComplete, result)
	require.Len(t, ls.Matches(), 2)
	assert.Equal(t, 0, ls.Matches()[0].Index)
	assert.Equal(t, 1, ls.Matches()[1].Index)
}

func TestLineSearchableYieldsOnExpiredInterrupter(t *testing.T) {
	ls := NewLineSearchable(func() []Line {
		return linesOf("alpha", "alpha", "alpha")
	})
	ls.Reset()
	expired := Interrupter{deadline: time.Now().Add(-time.Hour)}
	result := ls.Search(expired, "alpha")
	assert.Equal(t, ResultUpdated, result)
	assert.Empty(t, ls.Matches(), "should not have scanned any line past an already-expired budget")
}

func TestThreadStartSearchesAndCompletes(t *testing.T) {
	ls := NewLineSearchable(func() []Line {
		return linesOf("alpha", "beta", "alpha")
	})
	th := NewThread(nil)
	th.SetSearchable(ls)
	go th.Run()
	defer th.End()

	th.Start("alpha")
	waitForStatus(t, th, StatusComplete)
	assert.Equal(t, 2, ls.MatchCount())
}

func TestThreadStepWrapsAround(t *testing.T) {
	ls := NewLineSearchable(func() []Line {
		return linesOf("alpha", "beta", "alpha")
	})
	th := NewThread(nil)
	th.SetSearchable(ls)
	go th.Run()
	defer th.End()

	th.Start("alpha")
	waitForStatus(t, th, StatusComplete)

	first, ok := th.Step(1)
	require.True(t, ok)
	second, ok := th.Step(1)
	require.True(t, ok)
	third, ok := th.Step(1)
	require.True(t, ok)

	// Matches are at row indices 0 and 2 ("alpha", "beta", "alpha"); the
	// active pointer itself cycles 0,1,0 across matches, which resolves to
	// row indices 0,2,0 (spec.md §8 seed scenario 6).
	assert.Equal(t, []int{0, 2, 0}, []int{first, second, third})
}

func TestThreadCancelClearsState(t *testing.T) {
	ls := NewLineSearchable(func() []Line {
		return linesOf("alpha", "beta")
	})
	th := NewThread(nil)
	th.SetSearchable(ls)
	go th.Run()
	defer th.End()

	th.Start("alpha")
	waitForStatus(t, th, StatusComplete)

	th.Cancel()
	st := waitForStatus(t, th, StatusInactive)
	assert.Equal(t, "", st.Term)
}
