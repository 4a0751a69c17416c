package externaleditor

import (
	"errors"
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

// fakeRun substitutes the real ArtifactExternalCommand spawn with a
// synchronous stand-in: writeResult is written to the todo file's on-disk
// path (simulating what the child would have left behind) and err is
// passed to the module's callback, exactly like the loop would after a
// real child returns.
func fakeRun(t *testing.T, writeResult *string, err error) func(program string, args []string, done func(error)) module.Artifact {
	return func(program string, args []string, done func(error)) module.Artifact {
		if writeResult != nil {
			path := args[len(args)-1]
			require.NoError(t, os.WriteFile(path, []byte(*writeResult), 0o644))
		}
		done(err)
		return module.Artifact{}
	}
}

func TestActivateWritesAndReloadsOnSuccess(t *testing.T) {
	file := loadFile(t, "pick aaa c1\n")
	result := "pick aaa c1\npick bbb c2\n"
	m := New(file, "vi", nil)
	m.run = fakeRun(t, &result, nil)

	m.Activate(module.StateList)

	assert.Equal(t, phaseActive, m.phase)
	assert.Equal(t, 2, file.Len())
}

func TestActivateEnterEmptyOnBlankResult(t *testing.T) {
	file := loadFile(t, "pick aaa c1\n")
	empty := ""
	m := New(file, "vi", nil)
	m.run = fakeRun(t, &empty, nil)

	m.Activate(module.StateList)

	assert.Equal(t, phaseEmpty, m.phase)
}

func TestActivateEntersErrorOnChildFailure(t *testing.T) {
	file := loadFile(t, "pick aaa c1\n")
	m := New(file, "vi", nil)
	m.run = fakeRun(t, nil, errors.New("exit status 1"))

	m.Activate(module.StateList)

	assert.Equal(t, phaseError, m.phase)
	require.Error(t, m.err)
}

func TestEditRetriesLaunch(t *testing.T) {
	file := loadFile(t, "pick aaa c1\n")
	m := New(file, "vi", nil)
	m.run = fakeRun(t, nil, errors.New("boom"))
	m.Activate(module.StateList)
	require.Equal(t, phaseError, m.phase)

	result := "pick aaa c1\n"
	m.run = fakeRun(t, &result, nil)
	m.HandleEvent(standardEvent(input.Confirm), &module.ViewState{})

	assert.Equal(t, phaseActive, m.phase)
}

func TestUndoAndEditRevertsBeforeRetrying(t *testing.T) {
	file := loadFile(t, "pick aaa c1\n")
	action := todo.ActionDrop
	file.UpdateRange(0, 0, &action, nil)
	m := New(file, "vi", nil)
	empty := ""
	m.run = fakeRun(t, &empty, nil)
	m.Activate(module.StateList)
	require.Equal(t, phaseEmpty, m.phase)

	result := "pick aaa c1\n"
	m.run = fakeRun(t, &result, nil)
	m.HandleEvent(standardEvent(input.Undo), &module.ViewState{})

	line, ok := file.Get(0)
	require.True(t, ok)
	assert.Equal(t, todo.ActionPick, line.Action())
}

func TestRestoreAndAbortWithoutModificationClearsAndExits(t *testing.T) {
	file := loadFile(t, "pick aaa c1\n")
	m := New(file, "vi", nil)
	empty := ""
	m.run = fakeRun(t, &empty, nil)
	m.Activate(module.StateList)
	require.Equal(t, phaseEmpty, m.phase)

	results := m.HandleEvent(standardEvent(input.Abort), &module.ViewState{})

	require.Len(t, results, 1)
	assert.Equal(t, module.ArtifactExitStatus, results[0].Kind)
}

func TestRestoreAndAbortWithModificationAsksConfirm(t *testing.T) {
	file := loadFile(t, "pick aaa c1\n")
	action := todo.ActionDrop
	file.UpdateRange(0, 0, &action, nil)
	m := New(file, "vi", nil)
	empty := ""
	m.run = fakeRun(t, &empty, nil)
	m.Activate(module.StateList)
	require.Equal(t, phaseEmpty, m.phase)

	results := m.HandleEvent(standardEvent(input.Abort), &module.ViewState{})

	require.Len(t, results, 1)
	assert.Equal(t, module.StateConfirmAbort, results[0].ChangeTo)
}

func TestResolveEditorSplitsArgsAndDefaultsToVi(t *testing.T) {
	t.Setenv("GIT_EDITOR", "code --wait")
	program, args := ResolveEditor()
	assert.Equal(t, "code", program)
	assert.Equal(t, []string{"--wait"}, args)

	t.Setenv("GIT_EDITOR", "")
	program, args = ResolveEditor()
	assert.Equal(t, "vi", program)
	assert.Empty(t, args)
}
