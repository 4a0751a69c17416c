package confirm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akavel/girt/internal/input"
	"github.com/akavel/girt/internal/module"
	"github.com/akavel/girt/internal/todo"
)

func loadFile(t *testing.T, content string) *todo.File {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "git-rebase-todo")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	f := todo.New(todo.DefaultOptions())
	require.NoError(t, f.Load(path))
	return f
}

func standardEvent(se input.StandardEvent) input.Event {
	return input.Event{Kind: input.KindStandard, Standard: se}
}

func TestConfirmAbortYesClearsAndExits(t *testing.T) {
	file := loadFile(t, "pick aaa c1\npick bbb c2\n")
	m := New(file, KindAbort)
	m.Activate(module.StateList)

	results := m.HandleEvent(standardEvent(input.Confirm), &module.ViewState{})

	require.Len(t, results, 1)
	assert.Equal(t, module.ArtifactExitStatus, results[0].Kind)
	data, err := os.ReadFile(file.Path())
	require.NoError(t, err)
	assert.Equal(t, "", string(data))
}

func TestConfirmRebaseYesWritesAsIsAndExits(t *testing.T) {
	file := loadFile(t, "pick aaa c1\npick bbb c2\n")
	m := New(file, KindRebase)
	m.Activate(module.StateList)

	results := m.HandleEvent(standardEvent(input.Confirm), &module.ViewState{})

	require.Len(t, results, 1)
	assert.Equal(t, module.ArtifactExitStatus, results[0].Kind)
	data, err := os.ReadFile(file.Path())
	require.NoError(t, err)
	assert.Equal(t, "pick aaa c1\npick bbb c2\n", string(data))
}

func TestNoReturnsToPreviousState(t *testing.T) {
	file := loadFile(t, "pick aaa c1\n")
	m := New(file, KindAbort)
	m.Activate(module.StateExternalEditor)

	results := m.HandleEvent(standardEvent(input.Reject), &module.ViewState{})

	require.Len(t, results, 1)
	assert.Equal(t, module.StateExternalEditor, results[0].ChangeTo)
}
