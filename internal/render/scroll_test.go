package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrollPositionBoundaries(t *testing.T) {
	assert.Equal(t, 0, ScrollPosition(0, 100, 10))
	assert.Equal(t, 9, ScrollPosition(90, 100, 10))
	assert.Equal(t, 9, ScrollPosition(95, 100, 10))
}

func TestScrollPositionMonotonicAndBounded(t *testing.T) {
	const itemCount, height = 200, 20
	prev := -1
	for pos := 0; pos < itemCount-height; pos++ {
		row := ScrollPosition(pos, itemCount, height)
		assert.GreaterOrEqual(t, row, prev)
		assert.GreaterOrEqual(t, row, 0)
		assert.Less(t, row, height)
		prev = row
	}
}

func TestScrollPositionNoScrollNeeded(t *testing.T) {
	assert.Equal(t, 0, ScrollPosition(0, 5, 10))
}

func TestScrollPositionDegenerateRange(t *testing.T) {
	// itemCount - height - 1 == 1: a single "in-between" position, must
	// not divide by zero.
	row := ScrollPosition(1, 12, 10)
	assert.GreaterOrEqual(t, row, 0)
	assert.Less(t, row, 10)
}

func TestSlicerComputeClipsAndScrolls(t *testing.T) {
	s := NewSlicer()
	s.Resize(40, 5)

	snap := snapshotOfNLines(t, 20)
	slice := s.Compute(snap)
	assert.Len(t, slice.Body, 5)
	assert.True(t, slice.ShowScrollbar)

	s.SetVScroll(15)
	slice = s.Compute(snap)
	assert.Equal(t, 15, slice.VScroll)
	assert.Len(t, slice.Body, 5)

	// Scroll past the end clamps back to the max.
	s.SetVScroll(1000)
	slice = s.Compute(snap)
	assert.Equal(t, 15, slice.VScroll)
}
