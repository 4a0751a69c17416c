// Package vcs implements the §6 "VCS repository interface" external
// collaborator: enumerate a commit's diff and the references pointing at a
// hash. It is consumed by internal/diffload.
package vcs

import "time"

// Commit is the subset of commit metadata the diff viewer needs.
type Commit struct {
	Hash        string
	AuthorName  string
	AuthorEmail string
	AuthorDate  time.Time
	Summary     string
	Body        string
}

// DeltaKind classifies how a path changed between a commit and its parent.
// Mirrors original_source/show_commit/status.rs, but is derived from
// go-git's object.Change (Insert/Delete/Modify + go-git's own rename
// detection) rather than git2.Delta, since go-git is pure Go and
// introduces no cgo dependency (see SPEC_FULL.md §3).
type DeltaKind int

const (
	Added DeltaKind = iota
	Deleted
	Modified
	Renamed
	Copied
	Typechange
	Other
)

func (d DeltaKind) String() string {
	switch d {
	case Added:
		return "Added"
	case Deleted:
		return "Deleted"
	case Modified:
		return "Modified"
	case Renamed:
		return "Renamed"
	case Copied:
		return "Copied"
	case Typechange:
		return "Typechange"
	default:
		return "Other"
	}
}

// Origin classifies one diff line. Resolved per SPEC_FULL.md's Open
// Question answer as the superset original_source/show_commit/origin.rs's
// 3-variant form widened with Header/Binary, since go-diff's hunk model
// distinguishes a binary marker from ordinary context.
type Origin int

const (
	Context Origin = iota
	Addition
	Deletion
	Header
	Binary
)

// DiffLine is one line of a hunk's body.
type DiffLine struct {
	Origin  Origin
	Content string
}

// Hunk is one contiguous change region within a file, parsed from the
// unified-diff text go-git produces.
type Hunk struct {
	Header   string
	OldStart int
	OldLines int
	NewStart int
	NewLines int
	Lines    []DiffLine
}

// FileStatus is one file's change entry within a CommitDiff.
type FileStatus struct {
	FromPath string
	ToPath   string
	Kind     DeltaKind
	Binary   bool
	Deltas   []Hunk
}

// CommitDiff is the full diff-loader result for one commit, cached by
// hash (spec.md §3).
type CommitDiff struct {
	Commit             Commit
	FileStatus         []FileStatus
	NumberFilesChanged int
	NumberInsertions   int
	NumberDeletions    int
}

// CommitDiffLoaderOptions controls how a diff is computed (spec.md §6).
type CommitDiffLoaderOptions struct {
	IgnoreWhitespace IgnoreWhitespace
	ShowWhitespace   ShowWhitespace
	ContextLines     uint32
	RenameLimit      uint16
	Copies           bool
}

// IgnoreWhitespace mirrors internal/config.DiffIgnoreWhitespaceSetting
// without importing internal/config, keeping this package's public
// contract free of the config package's TOML-facing concerns; the wiring
// layer (internal/diffload) translates between the two.
type IgnoreWhitespace int

const (
	IgnoreWhitespaceNone IgnoreWhitespace = iota
	IgnoreWhitespaceAll
	IgnoreWhitespaceChange
)

// ShowWhitespace mirrors internal/config.DiffShowWhitespaceSetting.
type ShowWhitespace int

const (
	ShowWhitespaceNone ShowWhitespace = iota
	ShowWhitespaceTrailing
	ShowWhitespaceLeading
	ShowWhitespaceBoth
)

// Reference is a named ref pointing at a hash (branch, tag, HEAD, etc).
type Reference struct {
	Name string
	Hash string
}
