package vcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachHunksParsesUnifiedDiff(t *testing.T) {
	patch := `diff --git a/foo.txt b/foo.txt
index aaa..bbb 100644
--- a/foo.txt
+++ b/foo.txt
@@ -1,2 +1,3 @@
 unchanged
-removed line
+added line
+another added line
`
	fileStatus := []FileStatus{{FromPath: "foo.txt", ToPath: "foo.txt", Kind: Modified}}
	attachHunks(fileStatus, patch)

	require.Len(t, fileStatus[0].Deltas, 1)
	hunk := fileStatus[0].Deltas[0]
	require.Len(t, hunk.Lines, 4)
	assert.Equal(t, Context, hunk.Lines[0].Origin)
	assert.Equal(t, Deletion, hunk.Lines[1].Origin)
	assert.Equal(t, Addition, hunk.Lines[2].Origin)
	assert.Equal(t, "added line", hunk.Lines[2].Content)
}

func TestDeltaKindString(t *testing.T) {
	assert.Equal(t, "Added", Added.String())
	assert.Equal(t, "Renamed", Renamed.String())
	assert.Equal(t, "Other", Other.String())
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "subject", firstLine("subject\n\nbody text"))
	assert.Equal(t, "subject only", firstLine("subject only"))
}
