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
)

// Cone attenuation continuity.
func TestConeAttenuation_Continuity(t *testing.T) {
	const inner, outer, outerGain, outerGainHF = 30.0, 90.0, 0.25, 0.5
	direction := Vec4{Z: -1}

	// At theta == inner: rotate source-to-listener by inner degrees off-axis.
	rad := inner * math.Pi / 180 / 2 // coneAttenuation's angleDeg = acos(d)*180/pi*ConeScale*2
	sl := Vec4{X: math.Sin(rad), Z: -math.Cos(rad)}
	gain, _ := coneAttenuation(direction, sl, inner, outer, outerGain, outerGainHF)
	assert.InDelta(t, 1.0, gain, 1e-9)

	// At theta == outer: rotate source-to-listener by outer degrees off-axis.
	rad = outer * math.Pi / 180 / 2
	sl = Vec4{X: math.Sin(rad), Z: -math.Cos(rad)}
	gain, gainHF := coneAttenuation(direction, sl, inner, outer, outerGain, outerGainHF)
	assert.InDelta(t, outerGain, gain, 1e-6)
	assert.InDelta(t, outerGainHF, gainHF, 1e-6)

	// Midway between inner and outer.
	mid := (inner + outer) / 2
	rad = mid * math.Pi / 180 / 2
	sl = Vec4{X: math.Sin(rad), Z: -math.Cos(rad)}
	gain, _ = coneAttenuation(direction, sl, inner, outer, outerGain, outerGainHF)
	assert.InDelta(t, (1+outerGain)/2, gain, 1e-6)
}

// Doppler idempotence.
func TestUpdateVoiceSpatial_DopplerIdempotence(t *testing.T) {
	device := NewDevice(48000, 2, []ChannelID{ChannelFrontLeft, ChannelFrontRight})
	ctx := &Context{Listener: Listener{Forward: Vec4{Z: -1}, Up: Vec4{Y: 1}, Gain: 1}, DefaultModel: DistanceInverseClamped}
	ctx.ListenerParams = UpdateListenerParams(&ctx.Listener)

	newSource := func(velocity Vec4, doppler float64) *Source {
		return &Source{
			Position:          Vec4{Z: -2},
			Velocity:          velocity,
			Pitch:             1,
			Gain:              1,
			MaxGain:           1,
			ReferenceDistance: 1,
			MaxDistance:       1e9,
			RolloffFactor:     1,
			DopplerFactor:     doppler,
			Direct:            PathGain{Gain: 1, HFReference: 12000, LFReference: 200},
			Queue:             []*Buffer{{SampleRate: 48000, Layout: LayoutMono, Data: []float32{1}}},
		}
	}

	zeroVelSrc := newSource(Vec4{}, 0)
	voiceA := NewVoice(1)
	voiceA.Source = zeroVelSrc
	UpdateVoiceSpatial(voiceA, ctx, device)

	movingSrc := newSource(Vec4{X: 50, Y: 30, Z: 10}, 0) // DopplerFactor=0: velocity must not matter
	voiceB := NewVoice(1)
	voiceB.Source = movingSrc
	UpdateVoiceSpatial(voiceB, ctx, device)

	assert.Equal(t, voiceA.Step, voiceB.Step)

	// Equal, collinear source/listener velocity with Doppler enabled: VSS == VLS, pitch unchanged.
	ctx.Listener.Velocity = Vec4{Z: 5}
	ctx.ListenerParams = UpdateListenerParams(&ctx.Listener)
	collinearSrc := newSource(Vec4{Z: 5}, 1)
	voiceC := NewVoice(1)
	voiceC.Source = collinearSrc
	UpdateVoiceSpatial(voiceC, ctx, device)

	ctx.Listener.Velocity = Vec4{}
	ctx.ListenerParams = UpdateListenerParams(&ctx.Listener)
	assert.Equal(t, voiceA.Step, voiceC.Step)
}
