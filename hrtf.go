// hrtf.go - HRTF coefficient lookup and the fade-time heuristic

/*
spatialmixer - a spatial audio mixing engine core

(c) 2026 The spatialmixer authors
https://github.com/soundstage/spatialmixer

License: GPLv3 or later
*/

package spatialmixer

import "math"

// HRTFCoeffs holds one voice's per-ear impulse response coefficients and
// integer sample delays for the current direction.
type HRTFCoeffs struct {
	Coeffs [HRIRLength][2]float64
	Delays [2]int
}

// HRTFDataSet is the out-of-scope HRTF impulse-response database; the
// mixer only ever calls its one lookup method, Lerped. A real data set loader is
// external; this interface is all the core depends on.
type HRTFDataSet interface {
	// Lerped returns the interpolated impulse response nearest (elev, az),
	// scaled by gain*dirFactor.
	Lerped(elevationRad, azimuthRad, dirFactor, gain float64) HRTFCoeffs
}

// LerpedHrtfCoeffs interpolates set's four nearest impulse responses at the
// requested direction and scales by gain*dirFactor, which fades out
// spatialization inside a source's physical radius.
func LerpedHrtfCoeffs(set HRTFDataSet, elevationRad, azimuthRad, dirFactor, gain float64) HRTFCoeffs {
	return set.Lerped(elevationRad, azimuthRad, dirFactor, gain)
}

// MovingHrtfCoeffs returns target coefficients from set along with the
// per-sample delta from current needed to reach them over fadeTimeSec
// seconds at the device's sample rate, continuing from previousCounter so
// an update mid-ramp doesn't restart the transition from scratch.
func MovingHrtfCoeffs(set HRTFDataSet, elevationRad, azimuthRad, dirFactor, gain, fadeTimeSec float64, previousCounter, sampleRate int, current HRTFCoeffs) (target HRTFCoeffs, coeffStep [HRIRLength][2]float64, delayStep [2]float64, counter int) {
	target = set.Lerped(elevationRad, azimuthRad, dirFactor, gain)

	counter = int(fadeTimeSec * float64(sampleRate))
	if counter < 1 {
		counter = 1
	}
	if previousCounter > 0 && previousCounter < counter {
		counter = previousCounter
	}

	inv := 1.0 / float64(counter)
	for i := 0; i < HRIRLength; i++ {
		coeffStep[i][0] = (target.Coeffs[i][0] - current.Coeffs[i][0]) * inv
		coeffStep[i][1] = (target.Coeffs[i][1] - current.Coeffs[i][1]) * inv
	}
	delayStep[0] = float64(target.Delays[0]-current.Delays[0]) * inv
	delayStep[1] = float64(target.Delays[1]-current.Delays[1]) * inv
	return target, coeffStep, delayStep, counter
}

// CalcFadeTime bounds HRTF transitions to at most 0.015s, biased
// heavily toward direction change: a full reversal of direction dominates
// even a full-scale gain change.
func CalcFadeTime(oldGain, newGain float64, oldDir, newDir Vec4) float64 {
	if oldGain < 0.0001 {
		oldGain = 0.0001
	}
	if newGain < 0.0001 {
		newGain = 0.0001
	}
	gainChange := math.Abs(math.Log10(newGain/oldGain) / math.Log10(0.0001))

	var angleChange float64
	if (gainChange > 0.0001 || newGain > 0.0001) && oldDir != newDir {
		d := clamp(Dot(oldDir, newDir), -1, 1)
		angleChange = math.Acos(d) / math.Pi
	}

	change := math.Max(angleChange*25, gainChange) * 2
	if change > 1 {
		change = 1
	}
	return change * 0.015
}
