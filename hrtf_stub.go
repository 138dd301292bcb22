// hrtf_stub.go - a minimal HRTFDataSet usable without a real impulse-response database

/*
spatialmixer - a spatial audio mixing engine core

(c) 2026 The spatialmixer authors
https://github.com/soundstage/spatialmixer

License: GPLv3 or later
*/

package spatialmixer

import "math"

// SimpleHRTFDataSet is a placeholder HRTFDataSet: it synthesizes an
// interaural-time-difference-only "impulse response" (a single delayed tap
// per ear, shaped by a cosine panning law) rather than loading measured
// HRIRs. The real data-set loader is out of scope; this exists so the
// HRTF lookup in UpdateVoiceSpatial has a concrete data set to drive.
// Nothing in this module (tests or demo) constructs one.
type SimpleHRTFDataSet struct {
	SampleRate int
	MaxDelay   int // in samples, the ITD at the most lateral azimuth
}

// NewSimpleHRTFDataSet returns a data set tuned for the given sample rate,
// with a maximum interaural delay of roughly 0.6ms (a typical human ITD).
func NewSimpleHRTFDataSet(sampleRate int) *SimpleHRTFDataSet {
	return &SimpleHRTFDataSet{
		SampleRate: sampleRate,
		MaxDelay:   int(0.0006 * float64(sampleRate)),
	}
}

func (s *SimpleHRTFDataSet) Lerped(elevationRad, azimuthRad, dirFactor, gain float64) HRTFCoeffs {
	var c HRTFCoeffs
	leftGain := 0.5 + 0.5*math.Cos(azimuthRad+math.Pi/2)
	rightGain := 0.5 + 0.5*math.Cos(azimuthRad-math.Pi/2)
	elevRolloff := math.Cos(elevationRad)
	if elevRolloff < 0 {
		elevRolloff = 0
	}

	g := gain * dirFactor * elevRolloff
	c.Coeffs[0][0] = leftGain * g
	c.Coeffs[0][1] = rightGain * g

	delayRange := float64(s.MaxDelay)
	c.Delays[0] = int(delayRange * math.Max(0, math.Cos(azimuthRad-math.Pi/2)))
	c.Delays[1] = int(delayRange * math.Max(0, math.Cos(azimuthRad+math.Pi/2)))
	return c
}
