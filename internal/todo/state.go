package todo

import (
	"os"
	"path/filepath"
	"strings"
)

// State describes when, in the rebase lifecycle, the todo file is being
// edited.
type State int

const (
	// StateInitial is editing the todo at the start of a rebase.
	StateInitial State = iota
	// StateEdit is editing the todo in the middle of a rebase with --edit.
	StateEdit
	// StateRevise is editing the todo file for git-revise.
	StateRevise
)

func (s State) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateEdit:
		return "edit"
	case StateRevise:
		return "revise"
	default:
		return "unknown"
	}
}

// DetectState infers the State from the todo file path: a git-revise-todo
// filename means StateRevise; a sibling "stopped-sha" file means StateEdit;
// otherwise StateInitial.
func DetectState(path string) State {
	if strings.HasSuffix(path, "git-revise-todo") {
		return StateRevise
	}
	dir := filepath.Dir(path)
	if _, err := os.Stat(filepath.Join(dir, "stopped-sha")); err == nil {
		return StateEdit
	}
	return StateInitial
}
