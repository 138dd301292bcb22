// filter.go - per-voice HF/LF shelf filters

/*
spatialmixer - a spatial audio mixing engine core

(c) 2026 The spatialmixer authors
https://github.com/soundstage/spatialmixer

License: GPLv3 or later
*/

package spatialmixer

// ShelfFilter is a one-pole shelving filter: below (low-shelf) or above
// (high-shelf) a corner frequency, gain is applied; the other side passes
// through unaffected. The original engine implements HF gain with a
// filter it calls "LowPass" and LF gain with one it calls "HighPass" -
// confusing, but preserved here as the ActiveType bit names on ShelfPair
// so the mapping to the HF/LF filter stage stays obvious.
type ShelfFilter struct {
	cornerCoeff float64
	gain        float64
	state       float64
}

// NewShelfFilter builds a filter with the given corner frequency (already
// expressed as cornerHz/sampleRate, the ratio of HFReference/LFReference
// to the device frequency) and shelf gain.
func NewShelfFilter(cornerRatio, gain float64) ShelfFilter {
	return ShelfFilter{cornerCoeff: clamp(cornerRatio, 0, 1), gain: gain}
}

// ProcessHighShelf applies gain to frequencies above the corner.
func (f *ShelfFilter) ProcessHighShelf(x float64) float64 {
	f.state += f.cornerCoeff * (x - f.state)
	hp := x - f.state
	return x + (f.gain-1)*hp
}

// ProcessLowShelf applies gain to frequencies below the corner.
func (f *ShelfFilter) ProcessLowShelf(x float64) float64 {
	f.state += f.cornerCoeff * (x - f.state)
	return x + (f.gain-1)*f.state
}

// ActiveType bits record which shelf stages actually do anything, matching
// the original engine's "skip the filter entirely when gain==1" fast path.
type ActiveType struct {
	LowPass  bool // the HF (high-shelf) stage is active
	HighPass bool // the LF (low-shelf) stage is active
}

// ShelfPair bundles both stages plus their activity flags for one channel.
type ShelfPair struct {
	HF     ShelfFilter
	LF     ShelfFilter
	Active ActiveType
}

// setupShelfPair initializes a channel's shelf filter pair:
// corner frequencies are ratios of reference frequency to device frequency;
// gains are floored at 0.01 and the active bits are set whenever a stage is
// not a no-op unity gain.
func setupShelfPair(hfReference, lfReference float64, deviceFreq int, gainHF, gainLF float64) ShelfPair {
	if gainHF < 0.01 {
		gainHF = 0.01
	}
	if gainLF < 0.01 {
		gainLF = 0.01
	}
	freq := float64(deviceFreq)
	pair := ShelfPair{
		HF: NewShelfFilter(hfReference/freq, gainHF),
		LF: NewShelfFilter(lfReference/freq, gainLF),
	}
	pair.Active.LowPass = gainHF != 1
	pair.Active.HighPass = gainLF != 1
	return pair
}

// Process runs both active shelf stages in series on one sample.
func (p *ShelfPair) Process(x float64) float64 {
	if p.Active.LowPass {
		x = p.HF.ProcessHighShelf(x)
	}
	if p.Active.HighPass {
		x = p.LF.ProcessLowShelf(x)
	}
	return x
}
