package spatialmixer

/*
spatialmixer - a spatial audio mixing engine core

(c) 2026 The spatialmixer authors
https://github.com/soundstage/spatialmixer

License: GPLv3 or later
*/

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopBackend struct{}

func (noopBackend) Lock()   {}
func (noopBackend) Unlock() {}

// Mix-count seqlock.
func TestReadMixCountConsistent_Seqlock(t *testing.T) {
	device := NewDevice(48000, 2, []ChannelID{ChannelFrontLeft, ChannelFrontRight})
	device.Backend = noopBackend{}

	var wg sync.WaitGroup
	wg.Add(2)
	stop := make(chan struct{})

	go func() {
		defer wg.Done()
		buf := make([]byte, BufferSize*2*4)
		for i := 0; i < 200; i++ {
			MixCycle(device, buf, BufferSize)
		}
		close(stop)
	}()

	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				ReadMixCountConsistent(device, func() int64 { return device.SamplesDone })
			}
		}
	}()

	wg.Wait()
}

// Disconnect drains.
func TestHandleDisconnect_DrainsEveryVoice(t *testing.T) {
	device := NewDevice(48000, 2, []ChannelID{ChannelFrontLeft, ChannelFrontRight})
	ctx := &Context{Listener: Listener{Forward: Vec4{Z: -1}, Up: Vec4{Y: 1}, Gain: 1}}
	ctx.ListenerParams = UpdateListenerParams(&ctx.Listener)
	device.Contexts = []*Context{ctx}

	sources := make([]*Source, 3)
	for i := range sources {
		sources[i] = &Source{Gain: 1, MaxGain: 1, State: SourcePlaying}
		voice := ctx.AddVoice(sources[i], 1)
		voice.Cursor.Position = 17
		voice.Cursor.PositionFraction = 42
	}

	device.HandleDisconnect()

	require.False(t, device.Connected.Load())
	assert.Equal(t, 0, ctx.VoiceCount)
	for _, voice := range ctx.Voices {
		assert.Nil(t, voice.Source)
		assert.Equal(t, PlaybackCursor{}, voice.Cursor)
	}
	for _, src := range sources {
		assert.Equal(t, SourceStopped, src.State)
	}
}
