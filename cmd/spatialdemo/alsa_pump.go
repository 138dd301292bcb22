//go:build !headless

/*
spatialmixer - a spatial audio mixing engine core

(c) 2026 The spatialmixer authors
https://github.com/soundstage/spatialmixer

License: GPLv3 or later
*/

// alsa_pump.go - drives the ALSA backend, which is push- rather than
// pull-based like oto, from a dedicated goroutine calling MixCycle.

package main

import (
	"encoding/binary"
	"math"
	"sync"
	"time"

	"github.com/soundstage/spatialmixer"
	"github.com/soundstage/spatialmixer/internal/backend"
)

type alsaPump struct {
	player      *backend.ALSAPlayer
	device      *spatialmixer.Device
	numChannels int

	stop chan struct{}
	wg   sync.WaitGroup
}

func newALSAPump(sampleRate, channels int, device *spatialmixer.Device) (startable, error) {
	player, err := backend.NewALSAPlayer(sampleRate, channels)
	if err != nil {
		return nil, err
	}
	return &alsaPump{player: player, device: device, numChannels: channels}, nil
}

func (p *alsaPump) Lock()   { p.player.Lock() }
func (p *alsaPump) Unlock() { p.player.Unlock() }

// Start begins pumping MixCycle output to the ALSA device in frame-sized
// chunks matching the device's existing BufferSize-derived scratch space.
func (p *alsaPump) Start() {
	p.player.Start()
	p.stop = make(chan struct{})
	p.wg.Add(1)
	go p.run()
}

func (p *alsaPump) Stop() {
	close(p.stop)
	p.wg.Wait()
	p.player.Stop()
}

func (p *alsaPump) run() {
	defer p.wg.Done()
	const frames = spatialmixer.BufferSize
	buf := make([]byte, frames*p.numChannels*4)
	ticker := time.NewTicker(time.Second * time.Duration(frames) / time.Duration(p.device.Frequency))
	defer ticker.Stop()

	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
			spatialmixer.MixCycle(p.device, buf, frames)
			samples := bytesToFloat32(buf)
			if err := p.player.Write(samples); err != nil {
				spatialmixer.Logger.Error("alsa write", "err", err)
			}
		}
	}
}

// bytesToFloat32 decodes the little-endian float32 samples MixCycle wrote
// (the device stays in its default FormatFloat32 for the ALSA path since
// ALSA itself wants float frames).
func bytesToFloat32(buf []byte) []float32 {
	out := make([]float32, len(buf)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	return out
}
