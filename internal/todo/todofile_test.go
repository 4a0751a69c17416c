package todo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempTodo(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "git-rebase-todo")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func loadFile(t *testing.T, content string) *File {
	t.Helper()
	path := writeTempTodo(t, content)
	f := New(DefaultOptions())
	require.NoError(t, f.Load(path))
	return f
}

func TestLoadParsesLines(t *testing.T) {
	f := loadFile(t, "pick aaa c1\npick bbb c2\n")
	assert.Equal(t, 2, f.Len())
	l0, ok := f.Get(0)
	require.True(t, ok)
	assert.Equal(t, ActionPick, l0.Action())
	assert.Equal(t, "aaa", l0.Hash())
	assert.False(t, f.IsModified())
}

func TestBasicReorder(t *testing.T) {
	// Seed scenario 1: swap up then write.
	path := writeTempTodo(t, "pick aaa c1\npick bbb c2\n")
	f := New(DefaultOptions())
	require.NoError(t, f.Load(path))

	f.SetSelectedIndex(1)
	f.SwapUp(1, 1)
	require.NoError(t, f.Write())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pick bbb c2\npick aaa c1\n", string(data))
}

func TestSquashAutoAdvanceIsCallerResponsibility(t *testing.T) {
	// Component A only guarantees the mutation; auto-advance is the List
	// module's job (see internal/modules/list). Here we verify the
	// mutation itself: row 0 becomes "squash aaa c1".
	f := loadFile(t, "pick aaa c1\npick bbb c2\n")
	action := ActionSquash
	f.UpdateRange(0, 0, &action, nil)

	l0, _ := f.Get(0)
	assert.Equal(t, ActionSquash, l0.Action())
	assert.True(t, l0.Mutated())
	assert.True(t, f.IsModified())
}

func TestUndoRedoDrop(t *testing.T) {
	// Seed scenario 5.
	f := loadFile(t, "pick aaa c1\n")
	action := ActionDrop
	f.UpdateRange(0, 0, &action, nil)
	l0, _ := f.Get(0)
	assert.Equal(t, ActionDrop, l0.Action())

	_, _, ok := f.Undo()
	require.True(t, ok)
	l0, _ = f.Get(0)
	assert.Equal(t, ActionPick, l0.Action())
	assert.False(t, f.IsModified())

	_, _, ok = f.Redo()
	require.True(t, ok)
	l0, _ = f.Get(0)
	assert.Equal(t, ActionDrop, l0.Action())
}

func TestUndoRedoSymmetryAcrossMixedOps(t *testing.T) {
	f := loadFile(t, "pick aaa c1\npick bbb c2\npick ccc c3\n")
	initial := snapshotText(f)

	action := ActionEdit
	f.UpdateRange(0, 0, &action, nil)
	f.SwapDown(1, 1)
	f.InsertLine(0, ActionLabel, "start")
	f.RemoveLines(3, 3)

	postOps := snapshotText(f)
	require.NotEqual(t, initial, postOps)

	opCount := 4
	for i := 0; i < opCount; i++ {
		_, _, ok := f.Undo()
		require.True(t, ok, "undo %d", i)
	}
	assert.Equal(t, initial, snapshotText(f))
	assert.False(t, f.IsModified())

	for i := 0; i < opCount; i++ {
		_, _, ok := f.Redo()
		require.True(t, ok, "redo %d", i)
	}
	assert.Equal(t, postOps, snapshotText(f))
}

func snapshotText(f *File) []string {
	out := make([]string, f.Len())
	for i := 0; i < f.Len(); i++ {
		l, _ := f.Get(i)
		out[i] = l.ToLine()
	}
	return out
}

func TestHistoryBound(t *testing.T) {
	f := loadFile(t, "pick aaa c1\n")
	f2 := New(Options{UndoLimit: 3, CommentPrefix: "#"})
	require.NoError(t, f2.Load(f.path))

	action := ActionPick
	for i := 0; i < 10; i++ {
		f2.UpdateRange(0, 0, &action, nil)
		action = ActionEdit
		f2.UpdateRange(0, 0, &action, nil)
		action = ActionPick
	}
	assert.LessOrEqual(t, len(f2.hist.undo), 3)
}

func TestVersionMonotonicity(t *testing.T) {
	f := loadFile(t, "pick aaa c1\npick bbb c2\n")
	v0 := f.Version()

	action := ActionDrop
	f.UpdateRange(0, 0, &action, nil)
	v1 := f.Version()
	assert.Equal(t, v0.ID, v1.ID)
	assert.Equal(t, v0.Counter+1, v1.Counter)

	f.Reset()
	v2 := f.Version()
	assert.NotEqual(t, v1.ID, v2.ID)
	assert.Equal(t, uint32(0), v2.Counter)
}

func TestSwapAtBoundaryIsNoop(t *testing.T) {
	f := loadFile(t, "pick aaa c1\npick bbb c2\n")
	v0 := f.Version()
	f.SwapUp(0, 0)
	assert.Equal(t, v0, f.Version(), "swap up at top must be a no-op")

	f.SwapDown(1, 1)
	assert.Equal(t, v0, f.Version(), "swap down at bottom must be a no-op")
}

func TestRemoveNormalizesReversedRange(t *testing.T) {
	f := loadFile(t, "pick aaa c1\npick bbb c2\npick ccc c3\n")
	f.RemoveLines(2, 0)
	assert.Equal(t, 0, f.Len())
}

func TestAbortFlow(t *testing.T) {
	// Seed scenario 3.
	path := writeTempTodo(t, "pick aaa c1\n")
	f := New(DefaultOptions())
	require.NoError(t, f.Load(path))

	f.RemoveLines(0, 0)
	require.NoError(t, f.Write())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "", string(data))
}

func TestIsModifiedComparesToOriginal(t *testing.T) {
	f := loadFile(t, "pick aaa c1\n")
	assert.False(t, f.IsModified())

	action := ActionDrop
	f.UpdateRange(0, 0, &action, nil)
	assert.True(t, f.IsModified())

	require.NoError(t, f.Write())
	assert.False(t, f.IsModified(), "write should re-baseline original")
}
