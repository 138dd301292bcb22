// mixer.go - per-device mix tick

/*
spatialmixer - a spatial audio mixing engine core

(c) 2026 The spatialmixer authors
https://github.com/soundstage/spatialmixer

License: GPLv3 or later
*/

package spatialmixer

// MixCycle is the per-device tick: zero the output buses, run one
// synth pass, iterate every context and voice applying updates and source
// mixing, run effect-slot processing, post-process HRTF/crossfeed, convert
// to the device's sample format, and write a mono downmix to the loopback
// ring. outBytes may be nil (loopback-only consumers).
func MixCycle(device *Device, outBytes []byte, sampleCount int) {
	outOffset := 0
	for sampleCount > 0 {
		device.MixCount.Add(1) // pre-tick bump: odd means mixing in progress

		samplesToDo := sampleCount
		if samplesToDo > BufferSize {
			samplesToDo = BufferSize
		}
		for _, ch := range device.DryBuffer {
			for i := 0; i < samplesToDo; i++ {
				ch[i] = 0
			}
		}

		device.Backend.Lock()

		if device.Synth != nil {
			device.Synth.Process(samplesToDo, device.DryBuffer[:device.NumChannels], device.NumChannels)
		}

		for _, ctx := range device.Contexts {
			deferred := ctx.DeferUpdates.Load()
			updateSources := false
			if !deferred {
				updateSources = ctx.UpdateSources.Swap(false)
				if updateSources {
					ctx.ListenerParams = UpdateListenerParams(&ctx.Listener)
				}
			}

			live := ctx.Voices[:0]
			for _, voice := range ctx.Voices {
				if voice.Source == nil {
					continue
				}
				src := voice.Source
				if src.State != SourcePlaying && src.State != SourcePaused {
					voice.Source = nil
					continue
				}
				live = append(live, voice)

				if !deferred {
					needsUpdate := src.NeedsUpdate.Swap(false)
					if needsUpdate || updateSources {
						voiceUpdate(voice, ctx, device)
					}
				}
				if src.State != SourcePaused {
					MixSource(voice, device, samplesToDo)
				}
			}
			ctx.Voices = live
			ctx.VoiceCount = len(live)
		}

		for _, slot := range device.Slots {
			processSlot(device, slot, samplesToDo)
		}
		if device.DefaultSlot != nil {
			processSlot(device, device.DefaultSlot, samplesToDo)
		}

		device.SamplesDone += int64(samplesToDo)
		device.ClockBase += (device.SamplesDone / int64(device.Frequency)) * DeviceClockRes
		device.SamplesDone %= int64(device.Frequency)

		device.Backend.Unlock()

		if device.Hrtf != nil {
			mixHRTF(device, samplesToDo)
		} else if device.Crossfeed != nil && device.NumChannels >= 2 {
			device.Crossfeed.Process(device.DryBuffer[0][:samplesToDo], device.DryBuffer[1][:samplesToDo])
		}

		if outBytes != nil {
			n := writeFormat(device.Format, device.DryBuffer[:device.NumChannels], samplesToDo, device.NumChannels, outBytes[outOffset:])
			outOffset += n
		}

		if device.Ring != nil {
			mono := make([]byte, samplesToDo*2)
			writeInt16Mono(device.DryBuffer[:device.NumChannels], samplesToDo, mono)
			device.Ring.Write(mono)
		}

		sampleCount -= samplesToDo
		device.MixCount.Add(1) // post-tick bump: even means idle
	}
}

func voiceUpdate(voice *Voice, ctx *Context, device *Device) {
	src := voice.Source
	buf := headBuffer(src)
	if buf == nil {
		return
	}
	switch buf.Layout {
	case LayoutMono:
		UpdateVoiceSpatial(voice, ctx, device)
	default:
		UpdateVoiceNonSpatial(voice, ctx, device, buf.Layout)
	}
}

func processSlot(device *Device, slot *EffectSlot, samplesToDo int) {
	if slot.State == nil {
		return
	}
	if slot.NeedsUpdate.Swap(false) {
		slot.State.Update(device, slot)
	}
	slot.State.Process(samplesToDo, slot.WetBuffer, device.DryBuffer[:device.NumChannels], device.NumChannels)
	for _, ch := range slot.WetBuffer {
		for i := 0; i < samplesToDo && i < len(ch); i++ {
			ch[i] = 0
		}
	}
}

// MixSource advances voice's pitch accumulator, pulls interpolated samples
// from the head buffer, runs the per-input-channel shelf filter, applies
// the stepped gain ramps, and accumulates into Direct.OutBuffer and each
// active Send.OutBuffer.
func MixSource(voice *Voice, device *Device, samplesToDo int) {
	src := voice.Source
	buf := headBuffer(src)
	if buf == nil || len(buf.Data) == 0 {
		return
	}
	numInChans := voice.numInChannels
	if numInChans < 1 {
		numInChans = 1
	}
	frames := len(buf.Data) / numInChans
	if frames == 0 {
		return
	}

	pos := voice.Cursor.Position
	frac := voice.Cursor.PositionFraction

	for i := 0; i < samplesToDo; i++ {
		if pos >= frames {
			break
		}
		nextPos := pos + 1
		if nextPos >= frames {
			nextPos = pos
		}
		t := float32(frac) / float32(FractionOne)

		// Gain ramps advance exactly once per output sample, regardless of
		// how many input channels feed them.
		var sendGain [MaxSends]float64
		for s := range voice.Send {
			if voice.Send[s].OutBuffer != nil {
				sendGain[s] = voice.Send[s].Gain.Advance()
			}
		}

		for c := 0; c < numInChans; c++ {
			s0 := buf.Data[pos*numInChans+c]
			s1 := buf.Data[nextPos*numInChans+c]
			sample := float64(s0 + (s1-s0)*t)
			sample = voice.Direct.Shelf[c].Process(sample)

			if c < len(voice.Direct.Gains) {
				row := voice.Direct.Gains[c]
				for outChan := 0; outChan < len(row) && outChan < voice.Direct.OutChannels; outChan++ {
					g := row[outChan].Advance()
					if outChan < len(voice.Direct.OutBuffer) && i < len(voice.Direct.OutBuffer[outChan]) {
						voice.Direct.OutBuffer[outChan][i] += float32(sample * g)
					}
				}
			}

			for s := range voice.Send {
				if voice.Send[s].OutBuffer == nil {
					continue
				}
				wet := voice.Send[s].Shelf.Process(sample)
				if len(voice.Send[s].OutBuffer) > 0 && i < len(voice.Send[s].OutBuffer[0]) {
					voice.Send[s].OutBuffer[0][i] += float32(wet * sendGain[s])
				}
			}
		}

		frac += voice.Step & FractionMask
		pos += voice.Step >> FractionBits
		if frac >= FractionOne {
			frac -= FractionOne
			pos++
		}
	}

	voice.Cursor.Position = pos
	voice.Cursor.PositionFraction = frac
}

// mixHRTF stands in for the out-of-scope dispatched HRTF kernel: it adds
// the two virtual binaural channels into real output channels 0 and 1.
// No HRIR convolution is applied and Device.HrtfState is not read.
func mixHRTF(device *Device, samplesToDo int) {
	left := device.DryBuffer[device.NumChannels]
	right := device.DryBuffer[device.NumChannels+1]
	if device.NumChannels < 2 {
		return
	}
	outL := device.DryBuffer[0]
	outR := device.DryBuffer[1]
	for i := 0; i < samplesToDo; i++ {
		outL[i] += left[i]
		outR[i] += right[i]
	}
	device.HrtfOffset += samplesToDo
}
