package module

import (
	"github.com/akavel/girt/internal/exitstatus"
	"github.com/akavel/girt/internal/input"
)

// ArtifactKind tags the variant of one Artifact a module's HandleEvent
// produces, per spec.md §3's Results union.
type ArtifactKind int

const (
	ArtifactEvent ArtifactKind = iota
	ArtifactChangeState
	ArtifactError
	ArtifactExitStatus
	ArtifactExternalCommand
	ArtifactEnqueueResize
	ArtifactSearchCancel
	ArtifactSearchStart
	ArtifactSearchNext
	ArtifactSearchPrevious
	ArtifactUpdateView
	ArtifactLoad
)

// Artifact is one element of a module's Results list. Only the field(s)
// relevant to Kind are populated; the process loop switches on Kind.
type Artifact struct {
	Kind ArtifactKind

	Event        input.Event
	ChangeTo     State
	Err          error
	Fallback     State
	HasFallback  bool
	ExitStatus   exitstatus.ExitStatus
	Program      string
	Args         []string
	SearchTerm   string
	LoadHash     string

	// Callback, if set on an ArtifactExternalCommand, is invoked by the
	// loop with the child's exit error immediately after it returns and
	// threads are resumed — the only way a module learns the outcome of
	// its own spawned command, since RunExternalCommand's result would
	// otherwise be discarded by the generic dispatch path.
	Callback func(err error)
}

// Results is the ordered artifact list a module's HandleEvent/Activate/
// Deactivate/HandleError returns; the process loop drains it in order
// (spec.md §4.H).
type Results []Artifact

// ChangeState builds an ArtifactChangeState artifact.
func ChangeState(s State) Artifact { return Artifact{Kind: ArtifactChangeState, ChangeTo: s} }

// ErrorArtifact builds an ArtifactError artifact with no fallback state
// (the loop then returns to the state that was active when it dispatched
// the error).
func ErrorArtifact(err error) Artifact { return Artifact{Kind: ArtifactError, Err: err} }

// ErrorWithFallback builds an ArtifactError artifact that returns to
// fallback after acknowledgement.
func ErrorWithFallback(err error, fallback State) Artifact {
	return Artifact{Kind: ArtifactError, Err: err, Fallback: fallback, HasFallback: true}
}

// Exit builds an ArtifactExitStatus artifact.
func Exit(status exitstatus.ExitStatus) Artifact {
	return Artifact{Kind: ArtifactExitStatus, ExitStatus: status}
}

// ExternalCommand builds a fire-and-forget ArtifactExternalCommand artifact.
func ExternalCommand(program string, args []string) Artifact {
	return Artifact{Kind: ArtifactExternalCommand, Program: program, Args: args}
}

// ExternalCommandWithCallback builds an ArtifactExternalCommand artifact
// that reports the child's outcome back to the issuing module via done,
// called synchronously once the child returns and threads are resumed
// (spec.md §4.I's ExternalEditor needs the exit outcome to choose between
// its Active/Empty/Error sub-states).
func ExternalCommandWithCallback(program string, args []string, done func(err error)) Artifact {
	return Artifact{Kind: ArtifactExternalCommand, Program: program, Args: args, Callback: done}
}

// EnqueueResize builds an ArtifactEnqueueResize artifact.
func EnqueueResize() Artifact { return Artifact{Kind: ArtifactEnqueueResize} }

// SearchCancel builds an ArtifactSearchCancel artifact.
func SearchCancel() Artifact { return Artifact{Kind: ArtifactSearchCancel} }

// SearchStart builds an ArtifactSearchStart artifact.
func SearchStart(term string) Artifact {
	return Artifact{Kind: ArtifactSearchStart, SearchTerm: term}
}

// SearchNext builds an ArtifactSearchNext artifact.
func SearchNext() Artifact { return Artifact{Kind: ArtifactSearchNext} }

// SearchPrevious builds an ArtifactSearchPrevious artifact.
func SearchPrevious() Artifact { return Artifact{Kind: ArtifactSearchPrevious} }

// UpdateView builds an ArtifactUpdateView artifact.
func UpdateView() Artifact { return Artifact{Kind: ArtifactUpdateView} }

// Load builds an ArtifactLoad artifact.
func Load(hash string) Artifact { return Artifact{Kind: ArtifactLoad, LoadHash: hash} }
