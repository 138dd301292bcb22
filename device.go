// device.go - device and context data model

/*
spatialmixer - a spatial audio mixing engine core

(c) 2026 The spatialmixer authors
https://github.com/soundstage/spatialmixer

License: GPLv3 or later
*/

package spatialmixer

import (
	"sync"
	"sync/atomic"
)

// Context groups one Listener with the voices mixed against it (implicit
// in the mix tick and the producer/mixer concurrency model, made explicit here).
type Context struct {
	Listener       Listener
	ListenerParams ListenerParams

	// SourceDistanceModel, when set, lets each source's own DistanceModel
	// override the default; when false every source uses DefaultModel.
	SourceDistanceModel bool
	DefaultModel        DistanceModel

	Voices []*Voice

	// UpdateSources is a single-writer(app)/single-reader(mixer) flag
	// consumed via atomic exchange each tick.
	UpdateSources atomic.Bool

	// DeferUpdates, when true, tells the mixer to skip all per-voice and
	// per-listener update work this tick while still mixing.
	DeferUpdates atomic.Bool

	// VoiceCount mirrors the live (Source != nil) voice count; driven to
	// zero by HandleDisconnect.
	VoiceCount int
}

// SampleFormat enumerates the seven supported output encodings.
type SampleFormat int

const (
	FormatFloat32 SampleFormat = iota
	FormatInt32
	FormatUInt32
	FormatInt16
	FormatUInt16
	FormatInt8
	FormatUInt8
)

// Backend is the backend-facing interface: the mixer locks/unlocks
// around each tick and never otherwise touches the hardware.
type Backend interface {
	Lock()
	Unlock()
}

// Synth is the out-of-scope MIDI/oscillator synthesizer; the
// mixer calls it once per tick before mixing voices.
type Synth interface {
	Process(samples int, outBuffer [][]float32, outChannels int)
}

// CrossfeedState is the optional 2-channel Bauer stereo-to-binaural
// crossfeed filter. A nil CrossfeedState disables it.
type CrossfeedState interface {
	Process(left, right []float32)
}

// LoopbackRing is the byte-addressed SPSC ring the mixer is the sole
// producer for.
type LoopbackRing interface {
	Write(p []byte) (int, error)
}

// Device is external and mix-scratch state: the output format, the
// planar mixing scratch buffers, and everything the mix loop needs to
// drive one tick.
type Device struct {
	Frequency   int
	NumChannels int
	Present     []ChannelID // the physical channels this device's layout exposes, in DryBuffer order

	// DryBuffer has NumChannels real channels, plus two virtual binaural
	// channels at indices [NumChannels, NumChannels+1] used only when
	// Hrtf is non-nil.
	DryBuffer [][]float32

	Hrtf      HRTFDataSet
	HrtfState []hrtfOutputState // per real output channel, only used when Hrtf != nil
	HrtfOffset int

	Crossfeed CrossfeedState

	Slots       []*EffectSlot
	DefaultSlot *EffectSlot

	Format SampleFormat

	Backend Backend
	Synth   Synth
	Ring    LoopbackRing

	Contexts []*Context

	Connected atomic.Bool

	ClockBase   int64
	SamplesDone int64

	// MixCount is the seqlock counter, bumped before and after every tick.
	MixCount atomic.Uint32

	mu sync.Mutex
}

type hrtfOutputState struct {
	// placeholder convolution state for one output channel; the dispatched
	// SIMD HRTF mixer kernel is out of scope, and nothing in this package
	// allocates or reads this state (mixHRTF is a plain two-channel sum).
	history [HRIRLength]float64
}

// NewDevice builds a Device with zeroed scratch buffers sized for
// numChannels real outputs (plus two virtual binaural channels, always
// allocated so enabling Hrtf later needs no reallocation).
func NewDevice(frequency, numChannels int, present []ChannelID) *Device {
	d := &Device{
		Frequency:   frequency,
		NumChannels: numChannels,
		Present:     present,
		Format:      FormatFloat32,
	}
	d.DryBuffer = make([][]float32, numChannels+2)
	for i := range d.DryBuffer {
		d.DryBuffer[i] = make([]float32, BufferSize)
	}
	d.Connected.Store(true)
	logDeviceCreated(d)
	return d
}

// ReadMixCountConsistent implements the seqlock read pattern: it retries
// snapshot until two MixCount reads bracketing it agree and are even (no
// tick in progress).
func ReadMixCountConsistent[T any](d *Device, snapshot func() T) T {
	for {
		c1 := d.MixCount.Load()
		v := snapshot()
		c2 := d.MixCount.Load()
		if c1 == c2 && c1%2 == 0 {
			return v
		}
	}
}

// HandleDisconnect clears Connected, detaches
// every voice from its source, force-stops any source that was Playing
// with its position reset, and zeroes each context's VoiceCount.
func (d *Device) HandleDisconnect() {
	d.Connected.Store(false)
	logDisconnect(d)
	for _, ctx := range d.Contexts {
		for _, voice := range ctx.Voices {
			source := voice.Source
			voice.Source = nil
			if source != nil && source.State == SourcePlaying {
				source.State = SourceStopped
			}
			voice.Cursor = PlaybackCursor{}
		}
		ctx.VoiceCount = 0
	}
}

// Clock returns the device's monotonic playback clock in DeviceClockRes
// units.
func (d *Device) Clock() int64 {
	return d.ClockBase + d.SamplesDone*DeviceClockRes/int64(d.Frequency)
}

func channelDirFor(device *Device) func(ChannelID) Vec4 {
	specs := map[ChannelID]ChannelSpec{
		ChannelFrontLeft:   {ChannelFrontLeft, -degConst30, 0},
		ChannelFrontRight:  {ChannelFrontRight, degConst30, 0},
		ChannelFrontCenter: {ChannelFrontCenter, 0, 0},
		ChannelLFE:         {ChannelLFE, 0, 0},
		ChannelBackLeft:    {ChannelBackLeft, -degConst135, 0},
		ChannelBackRight:   {ChannelBackRight, degConst135, 0},
		ChannelBackCenter:  {ChannelBackCenter, degConst180, 0},
		ChannelSideLeft:    {ChannelSideLeft, -degConst90, 0},
		ChannelSideRight:   {ChannelSideRight, degConst90, 0},
	}
	return func(c ChannelID) Vec4 {
		s := specs[c]
		return directionFromAngle(s.AzimuthRad, s.ElevationRad)
	}
}

const (
	degConst30  = 0.5235987755982988
	degConst90  = 1.5707963267948966
	degConst135 = 2.356194490192345
	degConst180 = 3.141592653589793
)
