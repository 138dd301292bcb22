//go:build headless

/*
spatialmixer - a spatial audio mixing engine core

(c) 2026 The spatialmixer authors
https://github.com/soundstage/spatialmixer

License: GPLv3 or later
*/

// headless.go - no-op audio backend for headless builds and tests

package backend

import "github.com/soundstage/spatialmixer"

// OtoPlayer is a stand-in used in headless builds/CI where no audio
// device exists. Its Read runs MixCycle into the caller's buffer; nothing
// in this type calls Read on its own, and Start/Stop only flip a flag.
type OtoPlayer struct {
	device      *spatialmixer.Device
	numChannels int
	started     bool
}

func NewOtoPlayer(sampleRate, numChannels int) (*OtoPlayer, error) {
	return &OtoPlayer{numChannels: numChannels}, nil
}

func (op *OtoPlayer) SetupPlayer(device *spatialmixer.Device) {
	op.device = device
}

func (op *OtoPlayer) Lock()   {}
func (op *OtoPlayer) Unlock() {}

func (op *OtoPlayer) Read(p []byte) (n int, err error) {
	if op.device == nil {
		return len(p), nil
	}
	bytesPerFrame := 4 * op.numChannels
	frames := len(p) / bytesPerFrame
	spatialmixer.MixCycle(op.device, p, frames)
	return len(p), nil
}

func (op *OtoPlayer) Start()          { op.started = true }
func (op *OtoPlayer) Stop()           { op.started = false }
func (op *OtoPlayer) Close()          { op.started = false }
func (op *OtoPlayer) IsStarted() bool { return op.started }
