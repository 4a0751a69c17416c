package todo

// Options configures a TodoFile's parsing and serialization behavior.
type Options struct {
	// UndoLimit bounds the undo history deque.
	UndoLimit uint32
	// CommentPrefix marks a line as a comment to be skipped on parse.
	CommentPrefix string
	// LineChangedCommand, if non-empty, is appended as a trailing comment
	// after each mutated line on Write, so the caller's tooling can flag
	// edited lines.
	LineChangedCommand string
}

// DefaultOptions returns sane defaults matching original_source's
// TodoFileOptions default construction path (undo_limit from config,
// comment_prefix "#").
func DefaultOptions() Options {
	return Options{UndoLimit: 5000, CommentPrefix: "#"}
}
