package vcs

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	godiff "github.com/sourcegraph/go-diff/diff"
)

// GitRepository adapts github.com/go-git/go-git/v5 to the Repository
// interface. Grounded on the go-git-go-git example's use of the library's
// object/plumbing packages, combined with sourcegraph/go-diff (the
// Roasbeef-hunk example's dependency) to turn go-git's unified-diff text
// into structured Hunk/DiffLine values.
type GitRepository struct {
	repo *git.Repository
}

// Open opens the repository containing path, searching parent directories
// for .git (DetectDotGit), matching spec.md §6's "GIT_DIR discovery from
// the todo path's parent" rule.
func Open(path string) (Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("vcs: open %s: %w", path, err)
	}
	return &GitRepository{repo: repo}, nil
}

func (g *GitRepository) LoadCommitDiff(hash string, options CommitDiffLoaderOptions) (CommitDiff, error) {
	commitObj, err := g.repo.CommitObject(plumbing.NewHash(hash))
	if err != nil {
		return CommitDiff{}, fmt.Errorf("%w: %s", ErrCommitNotFound, hash)
	}

	tree, err := commitObj.Tree()
	if err != nil {
		return CommitDiff{}, fmt.Errorf("vcs: tree for %s: %w", hash, err)
	}

	var parentTree *object.Tree
	if commitObj.NumParents() > 0 {
		parent, err := commitObj.Parent(0)
		if err != nil {
			return CommitDiff{}, fmt.Errorf("vcs: parent of %s: %w", hash, err)
		}
		parentTree, err = parent.Tree()
		if err != nil {
			return CommitDiff{}, fmt.Errorf("vcs: parent tree for %s: %w", hash, err)
		}
	}

	changes, err := object.DiffTreeWithOptions(context.Background(), parentTree, tree, &object.DiffTreeOptions{
		DetectRenames:    options.RenameLimit > 0,
		RenameLimit:      int(options.RenameLimit),
		OnlyExactRenames: !options.Copies,
	})
	if err != nil {
		return CommitDiff{}, fmt.Errorf("vcs: diff for %s: %w", hash, err)
	}

	fileStatus := make([]FileStatus, 0, len(changes))
	for _, change := range changes {
		fs, err := fileStatusFromChange(change)
		if err != nil {
			return CommitDiff{}, fmt.Errorf("vcs: change in %s: %w", hash, err)
		}
		fileStatus = append(fileStatus, fs)
	}

	patch, err := changes.Patch()
	if err != nil {
		return CommitDiff{}, fmt.Errorf("vcs: patch for %s: %w", hash, err)
	}
	attachHunks(fileStatus, patch.String())

	insertions, deletions := countStatLines(patch.Stats())

	return CommitDiff{
		Commit: Commit{
			Hash:        commitObj.Hash.String(),
			AuthorName:  commitObj.Author.Name,
			AuthorEmail: commitObj.Author.Email,
			AuthorDate:  commitObj.Author.When,
			Summary:     firstLine(commitObj.Message),
			Body:        commitObj.Message,
		},
		FileStatus:         fileStatus,
		NumberFilesChanged: len(fileStatus),
		NumberInsertions:   insertions,
		NumberDeletions:    deletions,
	}, nil
}

func (g *GitRepository) ReferencesFor(hash string) ([]Reference, error) {
	want := plumbing.NewHash(hash)
	refs, err := g.repo.References()
	if err != nil {
		return nil, fmt.Errorf("vcs: references: %w", err)
	}
	defer refs.Close()

	var out []Reference
	for {
		ref, err := refs.Next()
		if err != nil {
			break
		}
		if ref.Hash() == want {
			out = append(out, Reference{Name: ref.Name().Short(), Hash: ref.Hash().String()})
		}
	}
	return out, nil
}

func fileStatusFromChange(change *object.Change) (FileStatus, error) {
	action, err := change.Action()
	if err != nil {
		return FileStatus{}, err
	}

	fs := FileStatus{FromPath: change.From.Name, ToPath: change.To.Name}
	switch {
	case change.From.Name != "" && change.To.Name != "" && change.From.Name != change.To.Name:
		fs.Kind = Renamed
	case action.String() == "Insert":
		fs.Kind = Added
	case action.String() == "Delete":
		fs.Kind = Deleted
	default:
		fs.Kind = Modified
	}
	return fs, nil
}

// attachHunks parses go-git's unified multi-file diff text with
// sourcegraph/go-diff and attaches each file's hunks to the matching
// FileStatus entry by path.
func attachHunks(fileStatus []FileStatus, patchText string) {
	fileDiffs, err := godiff.ParseMultiFileDiff([]byte(patchText))
	if err != nil {
		return
	}
	byPath := make(map[string]*FileStatus, len(fileStatus))
	for i := range fileStatus {
		fs := &fileStatus[i]
		if fs.ToPath != "" {
			byPath[fs.ToPath] = fs
		}
		if fs.FromPath != "" {
			byPath[fs.FromPath] = fs
		}
	}

	for _, fd := range fileDiffs {
		path := strings.TrimPrefix(fd.NewName, "b/")
		fs, ok := byPath[path]
		if !ok {
			path = strings.TrimPrefix(fd.OrigName, "a/")
			fs, ok = byPath[path]
		}
		if !ok {
			continue
		}
		if isBinaryFileDiff(fd) {
			fs.Binary = true
			continue
		}
		for _, h := range fd.Hunks {
			fs.Deltas = append(fs.Deltas, convertHunk(h))
		}
	}
}

func isBinaryFileDiff(fd *godiff.FileDiff) bool {
	for _, ex := range fd.Extended {
		if strings.Contains(ex, "Binary") {
			return true
		}
	}
	return false
}

func convertHunk(h *godiff.Hunk) Hunk {
	out := Hunk{
		Header:   string(h.Section),
		OldStart: int(h.OrigStartLine),
		OldLines: int(h.OrigLines),
		NewStart: int(h.NewStartLine),
		NewLines: int(h.NewLines),
	}
	scanner := bufio.NewScanner(bytes.NewReader(h.Body))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		switch line[0] {
		case '+':
			out.Lines = append(out.Lines, DiffLine{Origin: Addition, Content: line[1:]})
		case '-':
			out.Lines = append(out.Lines, DiffLine{Origin: Deletion, Content: line[1:]})
		default:
			out.Lines = append(out.Lines, DiffLine{Origin: Context, Content: strings.TrimPrefix(line, " ")})
		}
	}
	return out
}

func countStatLines(stats godiff.FileStats) (insertions, deletions int) {
	for _, s := range stats {
		insertions += s.Added
		deletions += s.Deleted
	}
	return
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
