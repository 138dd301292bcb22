package spatialmixer

/*
spatialmixer - a spatial audio mixing engine core

(c) 2026 The spatialmixer authors
https://github.com/soundstage/spatialmixer

License: GPLv3 or later
*/

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// Gain smoothing conservation.
func TestUpdateDryStepping_Conservation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		current := rapid.Float64Range(-2, 2).Draw(t, "current")
		target := rapid.Float64Range(-2, 2).Draw(t, "target")
		horizon := rapid.IntRange(2, 4096).Draw(t, "horizon")

		gains := [][]GainStep{{{Current: current, Target: target}}}
		UpdateDryStepping(gains, horizon)
		g := gains[0][0]

		projected := g.Current + g.Step*float64(horizon)
		assert.LessOrEqual(t, math.Abs(g.Target-projected), GainSilenceThreshold*2,
			"target not reached within one horizon's worth of steps")

		if g.Step == 0 {
			assert.Less(t, math.Abs(g.Target-g.Current), GainSilenceThreshold*2)
		}
	})
}

// First-update snap.
func TestUpdateDryStepping_FirstUpdateSnap(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		target := rapid.Float64Range(-2, 2).Draw(t, "target")

		gains := [][]GainStep{{{Current: 0, Target: target}}}
		UpdateDryStepping(gains, 0) // Moving starts false: horizon 0
		assert.Equal(t, target, gains[0][0].Current)
		assert.Equal(t, 0.0, gains[0][0].Step)

		gains[0][0].Target = target + 1
		UpdateDryStepping(gains, SteppingHorizon)
		if math.Abs(1) >= GainSilenceThreshold {
			assert.Greater(t, gains[0][0].Counter, 0)
		}
	})
}

func TestGainStepAdvance_ReachesTargetExactlyAtHorizon(t *testing.T) {
	g := GainStep{Current: 0, Target: 1}
	UpdateWetStepping(&g, SteppingHorizon)
	for i := 0; i < SteppingHorizon; i++ {
		g.Advance()
	}
	assert.Equal(t, 1.0, g.Current)
	assert.Equal(t, 0, g.Counter)
}
