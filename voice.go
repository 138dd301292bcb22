// voice.go - per-voice mixing state and the two voice-update code paths

/*
spatialmixer - a spatial audio mixing engine core

(c) 2026 The spatialmixer authors
https://github.com/soundstage/spatialmixer

License: GPLv3 or later
*/

package spatialmixer

import "math"

// sendState is the per-send mixing state a Voice owns.
type sendState struct {
	OutBuffer [][]float32 // nil when the source has no slot on this send; a slot running a no-op effect still gets its WetBuffer bound
	Gain      GainStep
	Shelf     ShelfPair
	Counter   int
	Moving    bool
}

// hrtfVoiceState is the per-input-channel HRTF coefficient/delay state a
// Voice owns while IsHrtf is true.
type hrtfVoiceState struct {
	Current   HRTFCoeffs
	CoeffStep [HRIRLength][2]float64
	DelayStep [2]float64
	Counter   int
}

// directState is the dry-path mixing state a Voice owns.
type directState struct {
	OutBuffer   [][]float32 // the dry bus slice this voice's dry path writes into
	OutChannels int

	Gains  [][]GainStep // [inChan][outChan]
	Shelf  []ShelfPair  // per inChan
	HRTF   []hrtfVoiceState

	Counter  int
	Moving   bool
	LastGain float64
	LastDir  Vec4
}

// Voice is the per-tick mixing state bound to one playing Source.
type Voice struct {
	Source *Source
	Step   int // fixed-point pitch, 1:FractionBits
	IsHrtf bool

	Direct directState
	Send   [MaxSends]sendState

	Cursor PlaybackCursor

	numInChannels int
}

// NewVoice allocates a Voice with its per-input-channel slices sized for
// numInChannels: one per input channel of the buffer's layout (1 for mono,
// 2 for stereo, 3 or 4 for B-Format, and so on).
func NewVoice(numInChannels int) *Voice {
	v := &Voice{numInChannels: numInChannels}
	v.Direct.Gains = make([][]GainStep, numInChannels)
	v.Direct.Shelf = make([]ShelfPair, numInChannels)
	v.Direct.HRTF = make([]hrtfVoiceState, numInChannels)
	return v
}

func headBuffer(s *Source) *Buffer {
	for _, b := range s.Queue {
		if b != nil {
			return b
		}
	}
	return nil
}

// calcPitchStep implements the "same pitch stepping
// without Doppler": given the effective pitch (post-Doppler for the
// spatial path, raw for the non-spatial path) and the head buffer's
// sample rate, returns a clamped fixed-point step.
func calcPitchStep(pitch float64, bufferFreq, deviceFreq int) int {
	p := pitch * float64(bufferFreq) / float64(deviceFreq)
	if p > MaxPitch {
		return MaxPitch << FractionBits
	}
	step := int(math.Round(p * FractionOne))
	if step < 1 {
		step = 1
	}
	return step
}

func coneAttenuation(direction, sourceToListener Vec4, innerDeg, outerDeg, outerGain, outerGainHF float64) (coneGain, coneGainHF float64) {
	d := clamp(Dot(Normalize(direction), sourceToListener), -1, 1)
	angleDeg := (math.Acos(d) * 180 / math.Pi) * ConeScale * 2
	switch {
	case angleDeg <= innerDeg:
		return 1, 1
	case angleDeg >= outerDeg:
		return outerGain, outerGainHF
	default:
		f := (angleDeg - innerDeg) / (outerDeg - innerDeg)
		return lerp(1, outerGain, f), lerp(1, outerGainHF, f)
	}
}

// UpdateVoiceSpatial is the spatial (mono point-source) voice-update path.
func UpdateVoiceSpatial(voice *Voice, ctx *Context, device *Device) {
	src := voice.Source
	if src == nil {
		return
	}
	dirFunc := channelDirFor(device)

	voice.Direct.OutBuffer = device.DryBuffer[:device.NumChannels]
	voice.Direct.OutChannels = device.NumChannels
	for i := range voice.Send {
		if src.Sends[i].Slot != nil {
			voice.Send[i].OutBuffer = src.Sends[i].Slot.WetBuffer
		} else {
			voice.Send[i].OutBuffer = nil
		}
	}

	var roomRolloff, decayDistance, roomAirAbsorption [MaxSends]float64
	for i := range src.Sends {
		roomRolloff[i], decayDistance[i], roomAirAbsorption[i] = auxSendParams(src.Sends[i].Slot, src.RolloffFactor, src.RoomRolloffFactor)
	}

	position := src.Position
	velocity := src.Velocity
	direction := src.Direction
	if !src.HeadRelative {
		position = MatrixVector(Vec4{X: position.X, Y: position.Y, Z: position.Z, W: 1}, ctx.ListenerParams.Matrix)
		velocity = MatrixVector(Vec4{X: velocity.X, Y: velocity.Y, Z: velocity.Z}, ctx.ListenerParams.Matrix)
		direction = MatrixVector(Vec4{X: direction.X, Y: direction.Y, Z: direction.Z}, ctx.ListenerParams.Matrix)
	} else {
		velocity = velocity.Add(ctx.ListenerParams.Velocity)
	}

	distance := Length(position)
	sourceToListener := Normalize(position.Negate())

	model := ctx.DefaultModel
	if ctx.SourceDistanceModel && src.DistanceModel != nil {
		model = *src.DistanceModel
	}

	attenuation, clampedDist := CalcDistanceAttenuation(model, distance, src.ReferenceDistance, src.MaxDistance, src.RolloffFactor)

	dryGainHF := 1.0
	dryGainLF := 1.0
	var wetGain [MaxSends]float64
	var wetGainHF [MaxSends]float64
	var roomAttenuation [MaxSends]float64
	for i := range src.Sends {
		roomAttenuation[i], _ = CalcDistanceAttenuation(model, distance, src.ReferenceDistance, src.MaxDistance, roomRolloff[i])
		wetGain[i] = roomAttenuation[i]
		wetGainHF[i] = 1
	}

	if src.AirAbsorptionFactor > 0 && clampedDist > src.ReferenceDistance {
		meters := (clampedDist - src.ReferenceDistance) * listenerMetersPerUnit(ctx)
		dryGainHF *= powf(AirAbsorbGainHF, src.AirAbsorptionFactor*meters)
		for i := range src.Sends {
			if src.Sends[i].WetGainHFAuto {
				wetGainHF[i] *= powf(roomAirAbsorption[i], src.AirAbsorptionFactor*meters)
			}
		}
	}

	for i := range src.Sends {
		if src.Sends[i].WetGainAuto && decayDistance[i] > 0 {
			apparentDist := 1/math.Max(attenuation, 0.00001) - 1
			wetGain[i] *= powf(0.001, apparentDist/decayDistance[i])
		}
	}

	coneGain, coneGainHF := coneAttenuation(direction, sourceToListener, src.InnerAngleDeg, src.OuterAngleDeg, src.OuterGain, src.OuterGainHF)

	dryGain := attenuation * coneGain
	for i := range src.Sends {
		if src.Sends[i].WetGainAuto {
			wetGain[i] *= coneGain
		}
	}
	if src.DryGainHFAuto {
		dryGainHF *= coneGainHF
	}
	for i := range src.Sends {
		if src.Sends[i].WetGainHFAuto {
			wetGainHF[i] *= coneGainHF
		}
	}

	dryGain = clamp(dryGain, src.MinGain, src.MaxGain) * src.Direct.Gain * ctx.Listener.Gain
	for i := range src.Sends {
		wetGain[i] = clamp(wetGain[i], src.MinGain, src.MaxGain) * src.Sends[i].Path.Gain * ctx.Listener.Gain
	}

	pitch := src.Pitch
	if src.DopplerFactor > 0 {
		c := SpeedOfSoundMetresPerSec
		dopplerFactor := src.DopplerFactor
		if c < 1 {
			dopplerFactor *= c
			c = 1
		}
		vss := Dot(velocity, sourceToListener) * dopplerFactor
		vls := Dot(ctx.ListenerParams.Velocity, sourceToListener) * dopplerFactor
		vss = clamp(vss, -(c*2 - 1), c-1)
		vls = clamp(vls, -(c*2 - 1), c-1)
		pitch *= (c - vls) / (c - vss)
	}

	if buf := headBuffer(src); buf != nil {
		voice.Step = calcPitchStep(pitch, buf.SampleRate, device.Frequency)
	} else {
		voice.Step = FractionOne
	}

	var dir Vec4
	var dirFactor = 1.0
	if distance > 1e-7 {
		dir = position.Scale(1 / distance)
		dir.Z *= ZScale
		if src.Radius > distance {
			dirFactor = distance / src.Radius
		}
	} else {
		dir = Vec4{Z: -1}
	}

	if device.Hrtf != nil {
		voice.IsHrtf = true
		voice.Direct.OutBuffer = device.DryBuffer[device.NumChannels : device.NumChannels+2]
		voice.Direct.OutChannels = 2

		elev := math.Asin(clamp(dir.Y, -1, 1))
		az := math.Atan2(dir.X, -dir.Z)

		if voice.Direct.Moving {
			fade := CalcFadeTime(voice.Direct.LastGain, dryGain, voice.Direct.LastDir, dir)
			if fade > 0.000015 {
				target, coeffStep, delayStep, counter := MovingHrtfCoeffs(device.Hrtf, elev, az, dirFactor, dryGain, fade, voice.Direct.Counter, device.Frequency, voice.Direct.HRTF[0].Current)
				voice.Direct.HRTF[0].Current = target
				voice.Direct.HRTF[0].CoeffStep = coeffStep
				voice.Direct.HRTF[0].DelayStep = delayStep
				voice.Direct.HRTF[0].Counter = counter
				voice.Direct.Counter = counter
			}
		} else {
			voice.Direct.HRTF[0].Current = LerpedHrtfCoeffs(device.Hrtf, elev, az, dirFactor, dryGain)
			voice.Direct.Counter = 0
		}
		voice.Direct.LastGain = dryGain
		voice.Direct.LastDir = dir
		voice.Direct.Moving = true
	} else {
		voice.IsHrtf = false
		panDir := dir.Scale(1 / math.Max(distance, src.Radius+1e-12))
		gains := PanByDirection(panDir, dryGain, device.Present, dirFunc)
		horizon := 0
		if voice.Direct.Moving {
			horizon = SteppingHorizon
		}
		setTargets(voice.Direct.Gains, 0, gains, device.NumChannels)
		UpdateDryStepping(voice.Direct.Gains, horizon)
		voice.Direct.Moving = true
	}

	for i := range src.Sends {
		voice.Send[i].Gain.Target = wetGain[i]
		horizon := 0
		if voice.Send[i].Moving {
			horizon = SteppingHorizon
		}
		UpdateWetStepping(&voice.Send[i].Gain, horizon)
		voice.Send[i].Moving = true
	}

	setupVoiceShelves(voice, 0, device.Frequency, dryGainHF, dryGainLF, src, wetGainHF)
}

// setTargets writes a flat [MaxOutputChannels]float64 pan result into the
// Gains[inChan] row's Target fields, sized to outChannels.
func setTargets(gains [][]GainStep, inChan int, pan [MaxOutputChannels]float64, outChannels int) {
	row := gains[inChan]
	if len(row) != outChannels {
		row = make([]GainStep, outChannels)
		gains[inChan] = row
	}
	for i := 0; i < outChannels; i++ {
		row[i].Target = pan[i]
	}
}

func setupVoiceShelves(voice *Voice, inChan, deviceFreq int, dryGainHF, dryGainLF float64, src *Source, wetGainHF [MaxSends]float64) {
	gainHF := math.Max(0.01, dryGainHF)
	gainLF := math.Max(0.01, dryGainLF)
	voice.Direct.Shelf[inChan] = setupShelfPair(src.Direct.HFReference, src.Direct.LFReference, deviceFreq, gainHF, gainLF)
	for i := range src.Sends {
		gHF := math.Max(0.01, wetGainHF[i])
		voice.Send[i].Shelf = setupShelfPair(src.Sends[i].Path.HFReference, src.Sends[i].Path.LFReference, deviceFreq, gHF, 1)
	}
}

func listenerMetersPerUnit(ctx *Context) float64 {
	if ctx.Listener.MetersPerUnit <= 0 {
		return 1
	}
	return ctx.Listener.MetersPerUnit
}

// UpdateVoiceNonSpatial is the non-spatial voice-update path for
// pre-panned (multi-channel, B-Format) and direct-channel buffers.
func UpdateVoiceNonSpatial(voice *Voice, ctx *Context, device *Device, layout Layout) {
	src := voice.Source
	if src == nil {
		return
	}
	dirFunc := channelDirFor(device)

	voice.Direct.OutBuffer = device.DryBuffer[:device.NumChannels]
	voice.Direct.OutChannels = device.NumChannels
	for i := range voice.Send {
		if src.Sends[i].Slot != nil {
			voice.Send[i].OutBuffer = src.Sends[i].Slot.WetBuffer
		} else {
			voice.Send[i].OutBuffer = nil
		}
	}

	if buf := headBuffer(src); buf != nil {
		voice.Step = calcPitchStep(src.Pitch, buf.SampleRate, device.Frequency)
	} else {
		voice.Step = FractionOne
	}

	horizon := 0
	if voice.Direct.Moving {
		horizon = SteppingHorizon
	}

	dryGain := clamp(src.Gain, src.MinGain, src.MaxGain) * src.Direct.Gain * ctx.Listener.Gain
	var wetGain [MaxSends]float64
	for i := range src.Sends {
		wetGain[i] = clamp(src.Gain, src.MinGain, src.MaxGain) * src.Sends[i].Path.Gain * ctx.Listener.Gain
	}

	switch layout {
	case LayoutBFormat2D, LayoutBFormat3D:
		at := src.OrientationAt
		up := src.OrientationUp
		if !src.HeadRelative {
			at = MatrixVector(Vec4{X: at.X, Y: at.Y, Z: at.Z}, ctx.ListenerParams.Matrix)
			up = MatrixVector(Vec4{X: up.X, Y: up.Y, Z: up.Z}, ctx.ListenerParams.Matrix)
		}
		n := Normalize(at)
		v := Normalize(up)
		u := Normalize(Cross(n, v))

		numChans := 3
		if layout == LayoutBFormat3D {
			numChans = 4
		}
		rows := []BFormatRow{
			{W: 1}, // W channel: omnidirectional, untouched by rotation
			{X: u.X, Y: v.X, Z: -n.X},
			{X: u.Y, Y: v.Y, Z: -n.Y},
		}
		if numChans == 4 {
			rows = append(rows, BFormatRow{X: u.Z, Y: v.Z, Z: -n.Z})
		}
		for c := 0; c < numChans; c++ {
			gains := PanBFormat(rows[c], dryGain, device.Present, dirFunc)
			setTargets(voice.Direct.Gains, c, gains, device.NumChannels)
			voice.Direct.Shelf[c] = ShelfPair{}
		}
		UpdateDryStepping(voice.Direct.Gains[:numChans], horizon)
		const bFormatWetBoost = 1.4142135623730951 // sqrt(2), preserved verbatim
		for i := range wetGain {
			wetGain[i] *= bFormatWetBoost
		}

	case LayoutMono:
		if src.DirectChannels {
			setDirectChannelTargets(voice, device, layout, 0, dryGain)
		} else {
			gains := PanByAngle(0, 0, dryGain, device.Present, dirFunc)
			setTargets(voice.Direct.Gains, 0, gains, device.NumChannels)
		}
		UpdateDryStepping(voice.Direct.Gains[:1], horizon)

	default:
		wide := layout == LayoutStereo && device.NumChannels == 2 && device.Hrtf == nil
		chanMap := nonSpatialChannelMap(layout, wide)
		for c, spec := range chanMap {
			if src.DirectChannels {
				setDirectChannelTargets(voice, device, layout, c, dryGain)
				continue
			}
			if spec.Channel == ChannelLFE {
				idx := ChannelIndexForName(device.Present, ChannelLFE)
				row := make([]GainStep, device.NumChannels)
				if idx >= 0 {
					row[idx].Target = dryGain
				}
				voice.Direct.Gains[c] = row
				continue
			}
			gains := PanByAngle(spec.AzimuthRad, spec.ElevationRad, dryGain, device.Present, dirFunc)
			setTargets(voice.Direct.Gains, c, gains, device.NumChannels)
		}
		UpdateDryStepping(voice.Direct.Gains[:len(chanMap)], horizon)
	}

	for i := range src.Sends {
		voice.Send[i].Gain.Target = wetGain[i]
		sendHorizon := 0
		if voice.Send[i].Moving {
			sendHorizon = SteppingHorizon
		}
		UpdateWetStepping(&voice.Send[i].Gain, sendHorizon)
		voice.Send[i].Moving = true
	}

	numInChans := voice.numInChannels
	for c := 0; c < numInChans; c++ {
		gainHF := math.Max(0.01, 1.0)
		gainLF := math.Max(0.01, 1.0)
		voice.Direct.Shelf[c] = setupShelfPair(src.Direct.HFReference, src.Direct.LFReference, device.Frequency, gainHF, gainLF)
	}
	voice.Direct.Moving = true
}

// setDirectChannelTargets implements DirectChannels routing: zero
// every target then set the one matching the named physical channel,
// or under HRTF route only FrontLeft/FrontRight into the two virtual
// binaural slots.
func setDirectChannelTargets(voice *Voice, device *Device, layout Layout, inChan int, dryGain float64) {
	chanMap := nonSpatialChannelMap(layout, false)
	if device.Hrtf != nil {
		voice.IsHrtf = true
		voice.Direct.OutBuffer = device.DryBuffer[device.NumChannels : device.NumChannels+2]
		voice.Direct.OutChannels = 2
		row := make([]GainStep, 2)
		if inChan < len(chanMap) {
			switch chanMap[inChan].Channel {
			case ChannelFrontLeft:
				row[0].Target = dryGain
			case ChannelFrontRight:
				row[1].Target = dryGain
			}
		}
		voice.Direct.Gains[inChan] = row
		return
	}
	row := make([]GainStep, device.NumChannels)
	if inChan < len(chanMap) {
		idx := ChannelIndexForName(device.Present, chanMap[inChan].Channel)
		if idx >= 0 {
			row[idx].Target = dryGain
		}
	}
	voice.Direct.Gains[inChan] = row
}
