//go:build !headless

// alsa.go - ALSA audio output backend

/*
spatialmixer - a spatial audio mixing engine core

(c) 2026 The spatialmixer authors
https://github.com/soundstage/spatialmixer

License: GPLv3 or later
*/

package backend

/*
#cgo LDFLAGS: -lasound
#cgo CFLAGS: -Ofast -march=native -mtune=native -flto
#include <alsa/asoundlib.h>
#include <stdlib.h>

static snd_pcm_t* openPCM(const char* device, int* err) {
    snd_pcm_t* handle;
    *err = snd_pcm_open(&handle, device, SND_PCM_STREAM_PLAYBACK, 0);
    return handle;
}

static int setupPCM(snd_pcm_t* handle, unsigned int rate, unsigned int channels) {
    snd_pcm_hw_params_t* params;
    int err;

    snd_pcm_hw_params_alloca(&params);
    err = snd_pcm_hw_params_any(handle, params);
    if (err < 0) return err;

    err = snd_pcm_hw_params_set_access(handle, params, SND_PCM_ACCESS_RW_INTERLEAVED);
    if (err < 0) return err;

    err = snd_pcm_hw_params_set_format(handle, params, SND_PCM_FORMAT_FLOAT);
    if (err < 0) return err;

    err = snd_pcm_hw_params_set_channels(handle, params, channels);
    if (err < 0) return err;

    err = snd_pcm_hw_params_set_rate(handle, params, rate, 0);
    if (err < 0) return err;

    err = snd_pcm_hw_params(handle, params);
    if (err < 0) return err;

    return snd_pcm_prepare(handle);
}

static int writePCM(snd_pcm_t* handle, float* buffer, int frames) {
    return snd_pcm_writei(handle, buffer, frames);
}

static void closePCM(snd_pcm_t* handle) {
    if (handle != NULL) {
        snd_pcm_drain(handle);
        snd_pcm_close(handle);
    }
}
*/
import "C"
import (
	"fmt"
	"sync"
	"unsafe"
)

// ALSAPlayer writes interleaved float32 frames straight to libasound; the
// frame size now follows the device's channel count instead of the
// teacher's fixed mono layout.
type ALSAPlayer struct {
	handle      *C.snd_pcm_t
	numChannels int
	started     bool
	playing     bool
	mutex       sync.Mutex
	samples     []float32
}

// NewALSAPlayer opens the default PCM device at sampleRate for numChannels
// of interleaved float output.
func NewALSAPlayer(sampleRate, numChannels int) (*ALSAPlayer, error) {
	var err C.int
	handle := C.openPCM(C.CString("default"), &err)
	if err < 0 {
		return nil, fmt.Errorf("open PCM device: %s", C.GoString(C.snd_strerror(err)))
	}

	if err = C.setupPCM(handle, C.uint(sampleRate), C.uint(numChannels)); err < 0 {
		C.closePCM(handle)
		return nil, fmt.Errorf("setup PCM: %s", C.GoString(C.snd_strerror(err)))
	}

	return &ALSAPlayer{
		handle:      handle,
		numChannels: numChannels,
		samples:     make([]float32, 4410*numChannels),
	}, nil
}

func (ap *ALSAPlayer) Lock()   {}
func (ap *ALSAPlayer) Unlock() {}

func (ap *ALSAPlayer) IsStarted() bool {
	ap.mutex.Lock()
	defer ap.mutex.Unlock()
	return ap.started
}

// Write pushes one buffer of interleaved float32 frames to the device,
// re-preparing on underrun (-EPIPE).
func (ap *ALSAPlayer) Write(samples []float32) error {
	ap.mutex.Lock()
	defer ap.mutex.Unlock()

	if !ap.playing {
		return nil
	}
	if cap(ap.samples) < len(samples) {
		ap.samples = make([]float32, len(samples))
	}
	buf := ap.samples[:len(samples)]
	copy(buf, samples)

	frameCount := len(samples) / ap.numChannels
	frames := C.writePCM(ap.handle, (*C.float)(unsafe.Pointer(&buf[0])), C.int(frameCount))
	if frames < 0 {
		if frames == -C.EPIPE {
			C.snd_pcm_prepare(ap.handle)
			frames = C.writePCM(ap.handle, (*C.float)(unsafe.Pointer(&buf[0])), C.int(frameCount))
		}
		if frames < 0 {
			return fmt.Errorf("write failed: %s", C.GoString(C.snd_strerror(C.int(frames))))
		}
	}
	return nil
}

func (ap *ALSAPlayer) Start() {
	ap.mutex.Lock()
	defer ap.mutex.Unlock()
	if !ap.started {
		ap.started = true
		ap.playing = true
	}
}

func (ap *ALSAPlayer) Stop() {
	ap.mutex.Lock()
	defer ap.mutex.Unlock()
	if ap.playing {
		ap.playing = false
		ap.started = false
	}
}

func (ap *ALSAPlayer) Close() {
	ap.mutex.Lock()
	defer ap.mutex.Unlock()
	if ap.handle != nil {
		ap.playing = false
		ap.started = false
		C.closePCM(ap.handle)
		ap.handle = nil
	}
}
