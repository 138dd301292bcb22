// constants.go - process-wide mixer tunables

/*
spatialmixer - a spatial audio mixing engine core

(c) 2026 The spatialmixer authors
https://github.com/soundstage/spatialmixer

License: GPLv3 or later
*/

package spatialmixer

// Fixed-point pitch stepping. Pitch is tracked as an integer with
// FRACTIONBITS of fractional precision so the mixer can advance a voice's
// read position without floating-point drift accumulating over long runs.
const (
	FractionBits = 12
	FractionOne  = 1 << FractionBits
	FractionMask = FractionOne - 1
)

// MaxPitch bounds the fixed-point pitch step so a single voice can never
// consume more than this many whole input samples per output sample.
const MaxPitch = 10

const (
	// MaxSends is the number of auxiliary effect-slot sends a voice may
	// route to simultaneously.
	MaxSends = 3

	// MaxOutputChannels bounds the device's output channel layout (7.1,
	// seven speakers plus LFE, is the widest layout this core understands).
	MaxOutputChannels = 8

	// HRIRLength is the number of taps in each HRTF impulse response.
	HRIRLength = 32

	// BufferSize is the largest slice of samples mixed in one inner
	// iteration of MixCycle; larger requests are chunked into passes of
	// at most this many samples.
	BufferSize = 1024

	// GainSilenceThreshold is the smallest gain delta the stepping
	// machinery bothers to ramp; anything smaller snaps immediately.
	GainSilenceThreshold = 0.00001

	// SteppingHorizon is the number of mix samples a gain or HRTF
	// coefficient change ramps over on a non-initial update. At 48kHz
	// this is ~1.3ms: short enough not to read as a ramp, long enough
	// to avoid zipper noise.
	SteppingHorizon = 64

	// AirAbsorbGainHF is the per-metre HF attenuation coefficient used
	// by the air-absorption model.
	AirAbsorbGainHF = 0.99426

	// SpeedOfSoundMetresPerSec is used both by the Doppler model and by
	// the reverb decay-distance auto-send computation.
	SpeedOfSoundMetresPerSec = 343.3

	// DefaultAirAbsorptionGainHF is the air-absorption coefficient used
	// for sends whose effect slot does not supply its own.
	DefaultAirAbsorptionGainHF = AirAbsorbGainHF

	// DeviceClockRes is the number of clock ticks per second exposed by
	// Device.Clock(); chosen as nanoseconds for convenient conversion to
	// time.Duration.
	DeviceClockRes = 1_000_000_000
)

// ConeScale and ZScale are compile-time knobs the original engine exposed
// as process-wide constants rather than per-device settings. ConeScale
// scales the half-angle used in cone-attenuation calculations; ZScale
// localizes the Z component of a mono source's direction vector, with or
// without HRTF.
var (
	ConeScale float64 = 1
	ZScale    float64 = 1
)
