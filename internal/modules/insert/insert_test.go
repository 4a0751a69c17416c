package insert

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akavel/girt/internal/input"
	"github.com/akavel/girt/internal/module"
	"github.com/akavel/girt/internal/todo"
	"github.com/akavel/girt/internal/tuicap"
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

func runeEvent(r rune) input.Event {
	return input.Event{Kind: input.KindKey, Key: tuicap.KeyEvent{Code: tuicap.KeyRune, Rune: r}}
}

func TestChooseCancelReturnsToList(t *testing.T) {
	file := loadFile(t, "pick aaa c1\n")
	m := New(file)
	m.Activate(module.StateList)

	results := m.HandleEvent(standardEvent(input.Reject), &module.ViewState{})

	require.Len(t, results, 1)
	assert.Equal(t, module.StateList, results[0].ChangeTo)
}

func TestChooseTypeThenTypeThenConfirmInserts(t *testing.T) {
	file := loadFile(t, "pick aaa c1\n")
	file.SetSelectedIndex(0)
	m := New(file)
	m.Activate(module.StateList)
	vs := &module.ViewState{}

	m.HandleEvent(standardEvent(input.ActionExec), vs)
	m.HandleEvent(runeEvent('m'), vs)
	m.HandleEvent(runeEvent('a'), vs)
	m.HandleEvent(runeEvent('k'), vs)
	m.HandleEvent(runeEvent('e'), vs)
	results := m.HandleEvent(standardEvent(input.Confirm), vs)

	require.Len(t, results, 1)
	assert.Equal(t, module.StateList, results[0].ChangeTo)
	require.Equal(t, 2, file.Len())
	line, ok := file.Get(0)
	require.True(t, ok)
	assert.Equal(t, todo.ActionExec, line.Action())
	assert.Equal(t, "make", line.Content())
}

func TestBackspaceTrimsContent(t *testing.T) {
	file := loadFile(t, "pick aaa c1\n")
	m := New(file)
	m.Activate(module.StateList)
	vs := &module.ViewState{}

	m.HandleEvent(standardEvent(input.ActionLabel), vs)
	m.HandleEvent(runeEvent('x'), vs)
	m.HandleEvent(runeEvent('y'), vs)
	m.HandleEvent(input.Event{Kind: input.KindKey, Key: tuicap.KeyEvent{Code: tuicap.KeyBackspace}}, vs)
	m.HandleEvent(standardEvent(input.Confirm), vs)

	line, ok := file.Get(0)
	require.True(t, ok)
	assert.Equal(t, "x", line.Content())
}

func TestRejectDuringEditReturnsToChooseType(t *testing.T) {
	file := loadFile(t, "pick aaa c1\n")
	m := New(file)
	m.Activate(module.StateList)
	vs := &module.ViewState{}

	m.HandleEvent(standardEvent(input.ActionLabel), vs)
	m.HandleEvent(standardEvent(input.Reject), vs)
	assert.Equal(t, phaseChooseType, m.phase)

	results := m.HandleEvent(standardEvent(input.Reject), vs)
	require.Len(t, results, 1)
	assert.Equal(t, module.StateList, results[0].ChangeTo)
}
