// producer.go - producer-facing setters that raise the appropriate publish flag

/*
spatialmixer - a spatial audio mixing engine core

(c) 2026 The spatialmixer authors
https://github.com/soundstage/spatialmixer

License: GPLv3 or later
*/

package spatialmixer

// Producer-facing setters are called from application threads, never from
// the mixer tick. Each one mutates the field(s) it owns and then raises
// the matching single-writer/single-reader flag the mixer consumes via
// atomic exchange: only one application thread and the mixer thread
// ever touch a given source's fields, so the atomic flag alone is enough
// to publish the write without a mutex.

// SetPosition updates a source's world/head-relative position.
func (s *Source) SetPosition(p Vec4) {
	s.Position = p
	s.NeedsUpdate.Store(true)
}

// SetVelocity updates a source's velocity.
func (s *Source) SetVelocity(v Vec4) {
	s.Velocity = v
	s.NeedsUpdate.Store(true)
}

// SetDirection updates a source's facing direction (used by cone attenuation).
func (s *Source) SetDirection(d Vec4) {
	s.Direction = d
	s.NeedsUpdate.Store(true)
}

// SetGain updates a source's scalar gain.
func (s *Source) SetGain(gain float64) {
	s.Gain = gain
	s.NeedsUpdate.Store(true)
}

// SetPitch updates a source's base pitch multiplier.
func (s *Source) SetPitch(pitch float64) {
	s.Pitch = pitch
	s.NeedsUpdate.Store(true)
}

// SetDistanceParams updates the reference/max distance and rolloff used by
// the active distance model.
func (s *Source) SetDistanceParams(referenceDistance, maxDistance, rolloff float64) {
	s.ReferenceDistance = referenceDistance
	s.MaxDistance = maxDistance
	s.RolloffFactor = rolloff
	s.NeedsUpdate.Store(true)
}

// SetCone updates the cone attenuation parameters.
func (s *Source) SetCone(innerDeg, outerDeg, outerGain, outerGainHF float64) {
	s.InnerAngleDeg = innerDeg
	s.OuterAngleDeg = outerDeg
	s.OuterGain = outerGain
	s.OuterGainHF = outerGainHF
	s.NeedsUpdate.Store(true)
}

// SetHeadRelative toggles whether the source's pose is interpreted
// relative to the listener rather than the world.
func (s *Source) SetHeadRelative(relative bool) {
	s.HeadRelative = relative
	s.NeedsUpdate.Store(true)
}

// Enqueue appends a buffer to the source's playback queue.
func (s *Source) Enqueue(b *Buffer) {
	s.Queue = append(s.Queue, b)
	s.NeedsUpdate.Store(true)
}

// Play transitions a source to Playing, publishing the state change before
// raising NeedsUpdate only after the field write is visible.
func (s *Source) Play() {
	s.State = SourcePlaying
	s.NeedsUpdate.Store(true)
}

// Pause transitions a source to Paused.
func (s *Source) Pause() {
	s.State = SourcePaused
	s.NeedsUpdate.Store(true)
}

// Stop transitions a source to Stopped. The playback cursor lives on the
// Voice and is not reset here.
func (s *Source) Stop() {
	s.State = SourceStopped
	s.NeedsUpdate.Store(true)
}

// SetListenerPose updates the listener's world pose and marks the owning
// context's listener params dirty.
func (c *Context) SetListenerPose(position, velocity, forward, up Vec4) {
	c.Listener.Position = position
	c.Listener.Velocity = velocity
	c.Listener.Forward = forward
	c.Listener.Up = up
	c.UpdateSources.Store(true)
}

// AddVoice binds a fresh voice to source and adds it to the context.
func (c *Context) AddVoice(source *Source, numInChannels int) *Voice {
	v := NewVoice(numInChannels)
	v.Source = source
	c.Voices = append(c.Voices, v)
	c.UpdateSources.Store(true)
	return v
}
