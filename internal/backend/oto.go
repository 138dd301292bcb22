//go:build !headless

// oto.go - oto/v3 audio output backend

/*
spatialmixer - a spatial audio mixing engine core

(c) 2026 The spatialmixer authors
https://github.com/soundstage/spatialmixer

License: GPLv3 or later
*/

package backend

import (
	"sync"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
	"github.com/soundstage/spatialmixer"
)

// OtoPlayer drives oto/v3's pull-based Read callback from a Device's
// MixCycle instead of a single-channel sample ring - the channel count and
// the per-callback fill routine both now match the device's actual output
// layout rather than a hard-coded mono chip tap.
type OtoPlayer struct {
	ctx    *oto.Context
	player *oto.Player

	device      atomic.Pointer[spatialmixer.Device]
	numChannels int
	sampleBuf   []byte
	mutex       sync.Mutex
	started     bool
}

// NewOtoPlayer opens an oto context at sampleRate for numChannels of
// interleaved float32 output.
func NewOtoPlayer(sampleRate, numChannels int) (*OtoPlayer, error) {
	opts := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: numChannels,
		Format:       oto.FormatFloat32LE,
		BufferSize:   4,
	}

	ctx, ready, err := oto.NewContext(opts)
	if err != nil {
		return nil, err
	}
	<-ready

	return &OtoPlayer{ctx: ctx, numChannels: numChannels}, nil
}

// SetupPlayer attaches the Device this player pulls audio from.
func (op *OtoPlayer) SetupPlayer(device *spatialmixer.Device) {
	op.mutex.Lock()
	defer op.mutex.Unlock()

	op.device.Store(device)
	op.player = op.ctx.NewPlayer(op)
	op.sampleBuf = make([]byte, 4096)
}

// Lock/Unlock satisfy spatialmixer.Backend; oto's Read callback already
// runs off the mixer's own goroutine, so the lock only needs to serialize
// against Start/Stop/Close.
func (op *OtoPlayer) Lock()   { op.mutex.Lock() }
func (op *OtoPlayer) Unlock() { op.mutex.Unlock() }

// Read implements io.Reader for oto: it asks the attached Device for one
// MixCycle's worth of interleaved samples sized to len(p).
func (op *OtoPlayer) Read(p []byte) (n int, err error) {
	device := op.device.Load()
	if device == nil {
		for i := range p {
			p[i] = 0
		}
		return len(p), nil
	}

	bytesPerFrame := 4 * op.numChannels
	frames := len(p) / bytesPerFrame
	if cap(op.sampleBuf) < len(p) {
		op.sampleBuf = make([]byte, len(p))
	}
	buf := op.sampleBuf[:len(p)]

	spatialmixer.MixCycle(device, buf, frames)
	copy(p, buf)
	return len(p), nil
}

func (op *OtoPlayer) Start() {
	op.mutex.Lock()
	defer op.mutex.Unlock()
	if !op.started && op.player != nil {
		op.player.Play()
		op.started = true
	}
}

func (op *OtoPlayer) Stop() {
	op.mutex.Lock()
	defer op.mutex.Unlock()
	if op.started && op.player != nil {
		op.player.Close()
		op.started = false
	}
}

func (op *OtoPlayer) Close() {
	op.Stop()
	op.mutex.Lock()
	defer op.mutex.Unlock()
	if op.player != nil {
		op.player.Close()
		op.player = nil
	}
}

func (op *OtoPlayer) IsStarted() bool {
	op.mutex.Lock()
	defer op.mutex.Unlock()
	return op.started
}

