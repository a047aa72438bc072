package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaledWidthAndSpacing(t *testing.T) {
	f := New(0.5, 0.45)
	assert.Equal(t, int64(500000), f.ScaledWidth())
	assert.Equal(t, int64(450000), f.ScaledSpacing())
}

func TestClonePreservesRatio(t *testing.T) {
	f := New(0.5, 0.45)
	clone := f.Clone(0.25)
	assert.InDelta(t, 0.225, clone.Spacing, 1e-9)
	assert.Equal(t, 0.25, clone.Width)
}

func TestCloneZeroWidthFallsBackToEqualSpacing(t *testing.T) {
	f := Flow{}
	clone := f.Clone(0.3)
	assert.Equal(t, 0.3, clone.Width)
	assert.Equal(t, 0.3, clone.Spacing)
}
