package diffload

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akavel/girt/internal/config"
	"github.com/akavel/girt/internal/vcs"
)

// fakeRepo blocks on LoadCommitDiff for the given hash until release is
// closed, letting tests interleave a superseding Load mid-flight.
type fakeRepo struct {
	release map[string]chan struct{}
	diffs   map[string]vcs.CommitDiff
}

func (f *fakeRepo) LoadCommitDiff(hash string, _ vcs.CommitDiffLoaderOptions) (vcs.CommitDiff, error) {
	if ch, ok := f.release[hash]; ok {
		<-ch
	}
	return f.diffs[hash], nil
}

func (f *fakeRepo) ReferencesFor(hash string) ([]vcs.Reference, error) { return nil, nil }

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestLoadPublishesTwoPhaseProgress(t *testing.T) {
	repo := &fakeRepo{
		diffs: map[string]vcs.CommitDiff{
			"aaa": {FileStatus: []vcs.FileStatus{{ToPath: "a.go"}, {ToPath: "b.go"}}},
		},
	}
	updates := 0
	th := NewThread(repo, config.Default(), func() { updates++ })
	go th.Run()
	defer th.End()

	th.Load("aaa")
	waitFor(t, func() bool { return th.Status().Kind == StatusDiffComplete })

	diff, ok := th.Diff()
	require.True(t, ok)
	assert.Len(t, diff.FileStatus, 2)
	assert.Greater(t, updates, 0)
}

func TestSupersedingLoadDiscardsStaleWork(t *testing.T) {
	release := make(chan struct{})
	repo := &fakeRepo{
		release: map[string]chan struct{}{"slow": release},
		diffs: map[string]vcs.CommitDiff{
			"slow": {FileStatus: []vcs.FileStatus{{ToPath: "x.go"}}},
			"fast": {FileStatus: []vcs.FileStatus{{ToPath: "y.go"}, {ToPath: "z.go"}}},
		},
	}
	th := NewThread(repo, config.Default(), nil)
	go th.Run()
	defer th.End()

	th.Load("slow")
	// Let the slow goroutine reach the blocking LoadCommitDiff call before
	// issuing the superseding request on the single request channel.
	time.Sleep(20 * time.Millisecond)
	th.Load("fast")
	waitFor(t, func() bool { return th.Status().Kind == StatusDiffComplete })

	diff, ok := th.Diff()
	require.True(t, ok)
	assert.Len(t, diff.FileStatus, 2, "must reflect fast's diff, not slow's")

	close(release)
	// Draining the slow goroutine's remaining publish calls must not
	// resurrect its (now-superseded) DiffComplete.
	time.Sleep(20 * time.Millisecond)
	diff, _ = th.Diff()
	assert.Len(t, diff.FileStatus, 2)
}
