package spatialmixer

/*
spatialmixer - a spatial audio mixing engine core

(c) 2026 The spatialmixer authors
https://github.com/soundstage/spatialmixer

License: GPLv3 or later
*/

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// Fade-time bounds.
func TestCalcFadeTime_Bounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		oldGain := rapid.Float64Range(0, 1).Draw(t, "oldGain")
		newGain := rapid.Float64Range(0, 1).Draw(t, "newGain")
		oldDir := Vec4{X: rapid.Float64Range(-1, 1).Draw(t, "oldX"), Z: rapid.Float64Range(-1, 1).Draw(t, "oldZ")}
		newDir := Vec4{X: rapid.Float64Range(-1, 1).Draw(t, "newX"), Z: rapid.Float64Range(-1, 1).Draw(t, "newZ")}

		fade := CalcFadeTime(oldGain, newGain, oldDir, newDir)
		assert.GreaterOrEqual(t, fade, 0.0)
		assert.LessOrEqual(t, fade, 0.015000001)
	})
}

func TestCalcFadeTime_ZeroWhenUnchanged(t *testing.T) {
	dir := Vec4{Z: -1}
	assert.Equal(t, 0.0, CalcFadeTime(1, 1, dir, dir))
}

func TestCalcFadeTime_MaxOnFullScaleGainChange(t *testing.T) {
	dir := Vec4{Z: -1}
	assert.InDelta(t, 0.015, CalcFadeTime(0.0001, 1, dir, dir), 1e-9)
}

func TestCalcFadeTime_MaxOnDirectionReversal(t *testing.T) {
	assert.InDelta(t, 0.015, CalcFadeTime(1, 1, Vec4{Z: -1}, Vec4{Z: 1}), 1e-9)
}
