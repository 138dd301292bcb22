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
	"github.com/stretchr/testify/require"
)

func newTestDevice(numChannels int, present []ChannelID) *Device {
	d := NewDevice(48000, numChannels, present)
	d.Backend = noopBackend{}
	return d
}

// Mono, head-relative, centered.
func TestScenario_MonoHeadRelativeCentered(t *testing.T) {
	device := newTestDevice(2, []ChannelID{ChannelFrontLeft, ChannelFrontRight})
	ctx := &Context{Listener: Listener{Forward: Vec4{Z: -1}, Up: Vec4{Y: 1}, Gain: 1}, DefaultModel: DistanceInverseClamped}
	ctx.ListenerParams = UpdateListenerParams(&ctx.Listener)

	src := &Source{
		HeadRelative:      true,
		Gain:              1,
		MaxGain:           1,
		Pitch:             1,
		ReferenceDistance: 1,
		RolloffFactor:     1,
		MaxDistance:       1e9,
		InnerAngleDeg:     360,
		OuterAngleDeg:     360,
		OuterGain:         1,
		OuterGainHF:       1,
		Direct:            PathGain{Gain: 1, GainHF: 1, GainLF: 1, HFReference: 12000, LFReference: 200},
		Queue:             []*Buffer{{SampleRate: 48000, Layout: LayoutMono, Data: []float32{1}}},
	}
	src.Play()
	device.Contexts = []*Context{ctx}
	ctx.AddVoice(src, 1)

	buf := make([]byte, BufferSize*2*4)
	MixCycle(device, buf, 1)

	voice := ctx.Voices[0]
	dirFunc := channelDirFor(device)
	expected := PanByDirection(Vec4{Z: -1}, 1.0, device.Present, dirFunc)

	assert.InDelta(t, expected[0], voice.Direct.Gains[0][0].Current, 1e-9)
	assert.InDelta(t, expected[1], voice.Direct.Gains[0][1].Current, 1e-9)
	assert.InDelta(t, voice.Direct.Gains[0][0].Current, voice.Direct.Gains[0][1].Current, 1e-9)
}

// Mono, inverse distance, Doppler off.
func TestScenario_InverseDistance(t *testing.T) {
	device := newTestDevice(2, []ChannelID{ChannelFrontLeft, ChannelFrontRight})
	ctx := &Context{Listener: Listener{Forward: Vec4{Z: -1}, Up: Vec4{Y: 1}, Gain: 1}, DefaultModel: DistanceInverse}
	ctx.ListenerParams = UpdateListenerParams(&ctx.Listener)

	model := DistanceInverse
	src := &Source{
		Position:          Vec4{Z: -2},
		Gain:              1,
		MaxGain:           1,
		Pitch:             1,
		ReferenceDistance: 1,
		RolloffFactor:     1,
		MaxDistance:       1e9,
		DistanceModel:     &model,
		InnerAngleDeg:     360,
		OuterAngleDeg:     360,
		OuterGain:         1,
		OuterGainHF:       1,
		Direct:            PathGain{Gain: 1, GainHF: 1, GainLF: 1, HFReference: 12000, LFReference: 200},
		Queue:             []*Buffer{{SampleRate: 48000, Layout: LayoutMono, Data: []float32{1}}},
	}
	src.Play()
	ctx.SourceDistanceModel = true
	device.Contexts = []*Context{ctx}
	voice := ctx.AddVoice(src, 1)

	UpdateVoiceSpatial(voice, ctx, device)

	attenuation, _ := CalcDistanceAttenuation(DistanceInverse, 2, 1, 1e9, 1)
	require.InDelta(t, 0.5, attenuation, 1e-9)
}

// Stereo wide.
func TestScenario_StereoWide(t *testing.T) {
	device := newTestDevice(2, []ChannelID{ChannelFrontLeft, ChannelFrontRight})
	ctx := &Context{Listener: Listener{Forward: Vec4{Z: -1}, Up: Vec4{Y: 1}, Gain: 1}}
	ctx.ListenerParams = UpdateListenerParams(&ctx.Listener)

	src := &Source{
		Gain: 1, MaxGain: 1, Pitch: 1,
		Direct: PathGain{Gain: 1, GainHF: 1, GainLF: 1, HFReference: 12000, LFReference: 200},
		Queue:  []*Buffer{{SampleRate: 48000, Layout: LayoutStereo, Data: []float32{1, 1}}},
	}
	src.Play()
	voice := ctx.AddVoice(src, 2)

	UpdateVoiceNonSpatial(voice, ctx, device, LayoutStereo)

	dirFunc := channelDirFor(device)
	left := PanByAngle(-math.Pi/2, 0, 1, device.Present, dirFunc)
	right := PanByAngle(math.Pi/2, 0, 1, device.Present, dirFunc)

	assert.InDelta(t, left[0], voice.Direct.Gains[0][0].Current, 1e-9)
	assert.InDelta(t, right[1], voice.Direct.Gains[1][1].Current, 1e-9)
}

// Reverb wet path with auto-gain.
func TestScenario_ReverbAutoGainDecay(t *testing.T) {
	attenuation := 0.1
	decayDistance := 10.0
	apparentDist := 1/attenuation - 1
	require.InDelta(t, 9, apparentDist, 1e-9)

	wetFactor := math.Pow(0.001, apparentDist/decayDistance)
	assert.InDelta(t, 0.00199526, wetFactor, 1e-7)
}
