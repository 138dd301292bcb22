// device_reset.go - Reset() methods restoring mixer state to defaults

/*
spatialmixer - a spatial audio mixing engine core

(c) 2026 The spatialmixer authors
https://github.com/soundstage/spatialmixer

License: GPLv3 or later
*/

package spatialmixer

// Reset restores a Voice to its freshly-allocated state: detaches the
// source, zeroes the pitch cursor, and clears every gain ramp so the next
// UpdateVoiceSpatial/UpdateVoiceNonSpatial call starts from silence rather
// than stale targets.
func (v *Voice) Reset() {
	v.Source = nil
	v.Step = FractionOne
	v.IsHrtf = false
	v.Cursor = PlaybackCursor{}

	v.Direct.Counter = 0
	v.Direct.Moving = false
	v.Direct.LastGain = 0
	v.Direct.LastDir = Vec4{}
	for i := range v.Direct.Gains {
		for j := range v.Direct.Gains[i] {
			v.Direct.Gains[i][j] = GainStep{}
		}
	}
	for i := range v.Direct.HRTF {
		v.Direct.HRTF[i] = hrtfVoiceState{}
	}
	for i := range v.Send {
		v.Send[i] = sendState{}
	}
}

// Reset clears a context back to an empty voice list with updates pending,
// so the next tick rebuilds listener params from scratch.
func (c *Context) Reset() {
	c.Voices = nil
	c.VoiceCount = 0
	c.UpdateSources.Store(true)
	c.DeferUpdates.Store(false)
}

// Reset restores a Device's mix scratch state: clears the dry buffer,
// zeroes the clock, and marks it connected again (e.g. after a simulated
// HandleDisconnect in a test).
func (d *Device) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, ch := range d.DryBuffer {
		for i := range ch {
			ch[i] = 0
		}
	}
	d.ClockBase = 0
	d.SamplesDone = 0
	d.HrtfOffset = 0
	d.Connected.Store(true)
	d.MixCount.Store(0)
}
