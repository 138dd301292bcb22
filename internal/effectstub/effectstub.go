// effectstub.go - stand-in effect-slot bodies: null, flat gain, and a gain-based reverb

/*
spatialmixer - a spatial audio mixing engine core

(c) 2026 The spatialmixer authors
https://github.com/soundstage/spatialmixer

License: GPLv3 or later
*/

// Package effectstub supplies the effect-slot bodies this module ships:
// Null (no-op), Gain (flat scale-and-sum) and Reverb (Gain's processing
// plus reverb parameters for the auto-send model). None of them implements
// real reverb or echo DSP.
package effectstub

import "github.com/soundstage/spatialmixer"

// Null is a no-op effect: it reports no reverb parameters and leaves the
// dry bus untouched, so the auto-send distance model in
// UpdateVoiceSpatial falls back to its default room-rolloff/air-absorption
// behavior.
type Null struct{}

func (Null) Update(*spatialmixer.Device, *spatialmixer.EffectSlot) {}

func (Null) Process(samples int, wetIn [][]float32, dryOut [][]float32, numChannels int) {}

// Gain sums the wet buffer down to mono, scales it, and mixes it into
// every dry output channel equally - standing in for a real reverb/echo
// body just well enough to exercise EffectSlot.Process and the
// auto-send wiring end to end.
type Gain struct {
	Level float64
}

func (g *Gain) Update(device *spatialmixer.Device, slot *spatialmixer.EffectSlot) {}

func (g *Gain) Process(samples int, wetIn [][]float32, dryOut [][]float32, numChannels int) {
	if len(wetIn) == 0 {
		return
	}
	wet := wetIn[0]
	for i := 0; i < samples && i < len(wet); i++ {
		v := wet[i] * float32(g.Level)
		for c := 0; c < numChannels; c++ {
			if i < len(dryOut[c]) {
				dryOut[c][i] += v
			}
		}
	}
}

// Reverb is a minimal reverb stand-in: its Process behaves exactly like
// Gain (a flat scale-and-sum), but it additionally implements
// spatialmixer.ReverbParams so a slot running it participates in the
// auto-send decay-distance modifier.
type Reverb struct {
	Level              float64
	DecayTimeSec       float64
	RoomRolloffFactor  float64
	HFAirAbsorptionGain float64
}

func (r *Reverb) Update(device *spatialmixer.Device, slot *spatialmixer.EffectSlot) {}

func (r *Reverb) Process(samples int, wetIn [][]float32, dryOut [][]float32, numChannels int) {
	(&Gain{Level: r.Level}).Process(samples, wetIn, dryOut, numChannels)
}

func (r *Reverb) ReverbParams() (decayTimeSec, roomRolloffFactor, hfAirAbsorptionGain float64) {
	return r.DecayTimeSec, r.RoomRolloffFactor, r.HFAirAbsorptionGain
}
