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
)

// Distance model boundary.
func TestCalcDistanceAttenuation_InverseClampedBoundary(t *testing.T) {
	const rolloff, minDist, maxDist = 1.0, 1.0, 10.0

	att, _ := CalcDistanceAttenuation(DistanceInverseClamped, 0.5, minDist, maxDist, rolloff)
	assert.InDelta(t, 1.0, att, 1e-9)

	att, _ = CalcDistanceAttenuation(DistanceInverseClamped, 1, minDist, maxDist, rolloff)
	assert.InDelta(t, 1.0, att, 1e-9)

	att, _ = CalcDistanceAttenuation(DistanceInverseClamped, 2, minDist, maxDist, rolloff)
	assert.InDelta(t, 0.5, att, 1e-9)

	att20, _ := CalcDistanceAttenuation(DistanceInverseClamped, 20, minDist, maxDist, rolloff)
	att10, _ := CalcDistanceAttenuation(DistanceInverseClamped, 10, minDist, maxDist, rolloff)
	assert.InDelta(t, att10, att20, 1e-9)
	assert.InDelta(t, 0.1, att20, 1e-9)

	att, _ = CalcDistanceAttenuation(DistanceInverseClamped, 5, 10, 1, rolloff) // maxDist < minDist
	assert.InDelta(t, 1.0, att, 1e-9)
}

// Linear model midpoint.
func TestCalcDistanceAttenuation_LinearClamped(t *testing.T) {
	const rolloff, minDist, maxDist = 1.0, 1.0, 3.0

	att, _ := CalcDistanceAttenuation(DistanceLinearClamped, 2, minDist, maxDist, rolloff)
	assert.InDelta(t, 0.5, att, 1e-9)

	att, _ = CalcDistanceAttenuation(DistanceLinearClamped, 0.5, minDist, maxDist, rolloff)
	assert.InDelta(t, 1.0, att, 1e-9)

	att, _ = CalcDistanceAttenuation(DistanceLinearClamped, 4, minDist, maxDist, rolloff)
	assert.InDelta(t, 0.0, att, 1e-9)
}

// Exponent model.
func TestCalcDistanceAttenuation_Exponent(t *testing.T) {
	att, _ := CalcDistanceAttenuation(DistanceExponent, 2, 1, 1e9, 2)
	assert.InDelta(t, 0.25, att, 1e-9)
}
