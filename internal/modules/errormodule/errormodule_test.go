package errormodule

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akavel/girt/internal/input"
	"github.com/akavel/girt/internal/module"
)

func TestHandleErrorRecordsMessageAndFallback(t *testing.T) {
	m := New()

	m.HandleError(errors.New("disk full"), module.StateList)

	vd := m.BuildViewData(module.RenderContext{})
	snap := vd.Snapshot()
	var found bool
	for _, l := range snap.Leading {
		for _, seg := range l.Segments {
			if strings.Contains(seg.Text, "disk full") {
				found = true
			}
		}
	}
	assert.True(t, found, "expected error text in rendered leading line")
}

func TestAnyKeyReturnsToFallback(t *testing.T) {
	m := New()
	m.HandleError(errors.New("boom"), module.StateExternalEditor)

	results := m.HandleEvent(input.Event{Kind: input.KindStandard, Standard: input.Confirm}, &module.ViewState{})

	require.Len(t, results, 1)
	assert.Equal(t, module.StateExternalEditor, results[0].ChangeTo)
}
