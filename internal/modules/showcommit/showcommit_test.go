package showcommit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akavel/girt/internal/config"
	"github.com/akavel/girt/internal/diffload"
	"github.com/akavel/girt/internal/input"
	"github.com/akavel/girt/internal/module"
	"github.com/akavel/girt/internal/search"
	"github.com/akavel/girt/internal/tuicap"
	"github.com/akavel/girt/internal/vcs"
)

type fakeRepo struct {
	diffs map[string]vcs.CommitDiff
}

func (f *fakeRepo) LoadCommitDiff(hash string, _ vcs.CommitDiffLoaderOptions) (vcs.CommitDiff, error) {
	return f.diffs[hash], nil
}

func (f *fakeRepo) ReferencesFor(hash string) ([]vcs.Reference, error) { return nil, nil }

func loadedThread(t *testing.T, diff vcs.CommitDiff) *diffload.Thread {
	t.Helper()
	repo := &fakeRepo{diffs: map[string]vcs.CommitDiff{diff.Commit.Hash: diff}}
	th := diffload.NewThread(repo, config.Default(), nil)
	go th.Run()
	t.Cleanup(th.End)
	th.Load(diff.Commit.Hash)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if th.Status().Kind == diffload.StatusDiffComplete {
			return th
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("diff never completed")
	return th
}

func sampleDiff() vcs.CommitDiff {
	return vcs.CommitDiff{
		Commit: vcs.Commit{Hash: "aaa111", Summary: "add feature"},
		FileStatus: []vcs.FileStatus{{
			ToPath: "main.go",
			Kind:   vcs.Modified,
			Deltas: []vcs.Hunk{{
				Header: "@@ -1,2 +1,3 @@",
				Lines: []vcs.DiffLine{
					{Origin: vcs.Context, Content: "package main"},
					{Origin: vcs.Addition, Content: "import \"fmt\""},
				},
			}},
		}},
		NumberFilesChanged: 1,
		NumberInsertions:   1,
	}
}

func standardEvent(se input.StandardEvent) input.Event {
	return input.Event{Kind: input.KindStandard, Standard: se}
}

func runeEvent(r rune) input.Event {
	return input.Event{Kind: input.KindKey, Key: tuicap.KeyEvent{Code: tuicap.KeyRune, Rune: r}}
}

func TestBuildViewDataShowsProgressBeforeDiffArrives(t *testing.T) {
	th := diffload.NewThread(&fakeRepo{}, config.Default(), nil)
	m := New(th, nil)

	vd := m.BuildViewData(module.RenderContext{HasDiff: false, DiffStatus: diffload.LoadStatus{Kind: diffload.StatusQuickDiff, Done: 1, Total: 3}})
	require.NotNil(t, vd)
}

func TestBuildViewDataRendersDiffOnceLoaded(t *testing.T) {
	diff := sampleDiff()
	th := loadedThread(t, diff)
	m := New(th, nil)

	vd := m.BuildViewData(module.RenderContext{HasDiff: true})
	require.NotNil(t, vd)
}

func TestCancelReturnsToList(t *testing.T) {
	th := diffload.NewThread(&fakeRepo{}, config.Default(), nil)
	m := New(th, nil)

	results := m.HandleEvent(standardEvent(input.Reject), &module.ViewState{})

	require.Len(t, results, 2)
	assert.Equal(t, module.ArtifactSearchCancel, results[0].Kind)
	assert.Equal(t, module.StateList, results[1].ChangeTo)
}

func TestSearchEntryCapturesRunesAndStarts(t *testing.T) {
	diff := sampleDiff()
	th := loadedThread(t, diff)
	searchThread := search.NewThread(nil)
	m := New(th, searchThread)
	m.Activate(module.StateList)
	vs := &module.ViewState{}

	m.HandleEvent(standardEvent(input.SearchStart), vs)
	m.HandleEvent(runeEvent('f'), vs)
	m.HandleEvent(runeEvent('m'), vs)
	results := m.HandleEvent(standardEvent(input.SearchFinish), vs)

	require.Len(t, results, 1)
	assert.Equal(t, module.ArtifactSearchStart, results[0].Kind)
	assert.Equal(t, "fm", results[0].SearchTerm)
}

func TestActivateInstallsDiffLineSearchable(t *testing.T) {
	diff := sampleDiff()
	th := loadedThread(t, diff)
	searchThread := search.NewThread(nil)
	m := New(th, searchThread)

	m.Activate(module.StateList)
	lines := m.lines()

	require.Len(t, lines, 2)
	assert.Equal(t, "package main", lines[0].Content)
}
