// scenario.go - the built-in demo scenarios

/*
spatialmixer - a spatial audio mixing engine core

(c) 2026 The spatialmixer authors
https://github.com/soundstage/spatialmixer

License: GPLv3 or later
*/

package main

import (
	"github.com/soundstage/spatialmixer"
)

// noConeAngle disables cone attenuation: a source whose cone spans the
// full circle never falls into the interpolated or outer-gain branch.
const noConeAngle = 360

func buildScenario(name string, device *spatialmixer.Device) *spatialmixer.Context {
	ctx := &spatialmixer.Context{
		Listener: spatialmixer.Listener{
			Forward:       spatialmixer.Vec4{Z: -1},
			Up:            spatialmixer.Vec4{Y: 1},
			Gain:          1,
			MetersPerUnit: 1,
		},
		DefaultModel: spatialmixer.DistanceInverseClamped,
	}
	ctx.ListenerParams = spatialmixer.UpdateListenerParams(&ctx.Listener)
	ctx.UpdateSources.Store(true)

	tone := &spatialmixer.Buffer{
		SampleRate: device.Frequency,
		Layout:     spatialmixer.LayoutMono,
		Data:       constantTone(device.Frequency, 1.0),
	}

	switch name {
	case "inverse-distance":
		src := &spatialmixer.Source{
			Position:          spatialmixer.Vec4{Z: -2},
			Gain:              1,
			MaxGain:           1,
			ReferenceDistance: 1,
			RolloffFactor:     1,
			MaxDistance:       1e9,
			DistanceModel:     modelPtr(spatialmixer.DistanceInverse),
			Direct:            spatialmixer.PathGain{Gain: 1, GainHF: 1, GainLF: 1, HFReference: 12000, LFReference: 200},
			InnerAngleDeg:     noConeAngle,
			OuterAngleDeg:     noConeAngle,
			OuterGain:         1,
			OuterGainHF:       1,
		}
		src.Queue = []*spatialmixer.Buffer{tone}
		src.Play()
		ctx.SourceDistanceModel = true
		ctx.AddVoice(src, 1)

	case "stereo-wide":
		stereoTone := &spatialmixer.Buffer{
			SampleRate: device.Frequency,
			Layout:     spatialmixer.LayoutStereo,
			Data:       constantTone(device.Frequency, 1.0),
		}
		src := &spatialmixer.Source{
			Gain: 1, MaxGain: 1,
			Direct: spatialmixer.PathGain{Gain: 1, GainHF: 1, GainLF: 1, HFReference: 12000, LFReference: 200},
		}
		src.Queue = []*spatialmixer.Buffer{stereoTone}
		src.Play()
		ctx.AddVoice(src, 2)

	default: // mono-centered
		src := &spatialmixer.Source{
			HeadRelative:      true,
			Gain:              1,
			MaxGain:           1,
			ReferenceDistance: 1,
			RolloffFactor:     1,
			MaxDistance:       1e9,
			Direct:            spatialmixer.PathGain{Gain: 1, GainHF: 1, GainLF: 1, HFReference: 12000, LFReference: 200},
			InnerAngleDeg:     noConeAngle,
			OuterAngleDeg:     noConeAngle,
			OuterGain:         1,
			OuterGainHF:       1,
		}
		src.Queue = []*spatialmixer.Buffer{tone}
		src.Play()
		ctx.AddVoice(src, 1)
	}

	return ctx
}

func modelPtr(m spatialmixer.DistanceModel) *spatialmixer.DistanceModel { return &m }

func constantTone(sampleRate int, level float32) []float32 {
	data := make([]float32, sampleRate) // one second of a flat DC buffer
	for i := range data {
		data[i] = level
	}
	return data
}
