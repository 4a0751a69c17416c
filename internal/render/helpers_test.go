package render

import (
	"fmt"
	"testing"

	"github.com/akavel/girt/internal/viewdata"
)

func snapshotOfNLines(t *testing.T, n int) viewdata.Snapshot {
	t.Helper()
	body := make([]viewdata.ViewLine, n)
	for i := range body {
		body[i] = viewdata.NewViewLine(viewdata.Segment{Text: fmt.Sprintf("line %d", i)})
	}
	return viewdata.Snapshot{Body: body}
}
