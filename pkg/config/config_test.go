package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultEnablesGapFillAndBridging(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.GapFillEnabled())
	assert.True(t, cfg.BridgingEnabled())
}

func TestZeroDisablesGapFillAndBridging(t *testing.T) {
	cfg := Default()
	cfg.GapFillSpeed = 0
	cfg.FillDensity = 0
	assert.False(t, cfg.GapFillEnabled())
	assert.False(t, cfg.BridgingEnabled())
}
