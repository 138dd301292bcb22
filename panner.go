// panner.go - gain panner: amplitude panning across a device's speaker layout

/*
spatialmixer - a spatial audio mixing engine core

(c) 2026 The spatialmixer authors
https://github.com/soundstage/spatialmixer

License: GPLv3 or later
*/

package spatialmixer

import "math"

// ChannelID names one physical output channel slot.
type ChannelID int

const (
	ChannelFrontLeft ChannelID = iota
	ChannelFrontRight
	ChannelFrontCenter
	ChannelLFE
	ChannelBackLeft
	ChannelBackRight
	ChannelBackCenter
	ChannelSideLeft
	ChannelSideRight
	numChannelIDs
)

// Layout enumerates the channel layouts a Buffer can be tagged with.
type Layout int

const (
	LayoutMono Layout = iota
	LayoutStereo
	LayoutRear
	LayoutQuad
	Layout51
	Layout61
	Layout71
	LayoutBFormat2D
	LayoutBFormat3D
)

// ChannelSpec is one entry of a non-spatial channel map: the
// canonical (azimuth, elevation) in radians for a given input channel, and
// the physical output channel it targets.
type ChannelSpec struct {
	Channel   ChannelID
	AzimuthRad   float64
	ElevationRad float64
}

func deg(d float64) float64 { return d * math.Pi / 180 }

// nonSpatialChannelMap returns the per-input-channel table for a layout.
// wideStereo selects the ±90° stereo variant used when the device is
// stereo and HRTF is not active.
func nonSpatialChannelMap(layout Layout, wideStereo bool) []ChannelSpec {
	switch layout {
	case LayoutMono:
		return []ChannelSpec{{ChannelFrontCenter, 0, 0}}
	case LayoutStereo:
		if wideStereo {
			return []ChannelSpec{
				{ChannelFrontLeft, deg(-90), 0},
				{ChannelFrontRight, deg(90), 0},
			}
		}
		return []ChannelSpec{
			{ChannelFrontLeft, deg(-30), 0},
			{ChannelFrontRight, deg(30), 0},
		}
	case LayoutRear:
		return []ChannelSpec{
			{ChannelBackLeft, deg(-150), 0},
			{ChannelBackRight, deg(150), 0},
		}
	case LayoutQuad:
		return []ChannelSpec{
			{ChannelFrontLeft, deg(-45), 0},
			{ChannelFrontRight, deg(45), 0},
			{ChannelBackLeft, deg(-135), 0},
			{ChannelBackRight, deg(135), 0},
		}
	case Layout51:
		return []ChannelSpec{
			{ChannelFrontLeft, deg(-30), 0},
			{ChannelFrontRight, deg(30), 0},
			{ChannelFrontCenter, 0, 0},
			{ChannelLFE, 0, 0},
			{ChannelSideLeft, deg(-110), 0},
			{ChannelSideRight, deg(110), 0},
		}
	case Layout61:
		return []ChannelSpec{
			{ChannelFrontLeft, deg(-30), 0},
			{ChannelFrontRight, deg(30), 0},
			{ChannelFrontCenter, 0, 0},
			{ChannelLFE, 0, 0},
			{ChannelBackCenter, deg(180), 0},
			{ChannelSideLeft, deg(-90), 0},
			{ChannelSideRight, deg(90), 0},
		}
	case Layout71:
		return []ChannelSpec{
			{ChannelFrontLeft, deg(-30), 0},
			{ChannelFrontRight, deg(30), 0},
			{ChannelFrontCenter, 0, 0},
			{ChannelLFE, 0, 0},
			{ChannelBackLeft, deg(-150), 0},
			{ChannelBackRight, deg(150), 0},
			{ChannelSideLeft, deg(-90), 0},
			{ChannelSideRight, deg(90), 0},
		}
	default:
		return nil
	}
}

// ChannelIndexForName returns the output-bus index of the named channel in
// the device's layout, or -1 if the layout does not contain it.
func ChannelIndexForName(present []ChannelID, name ChannelID) int {
	for i, c := range present {
		if c == name {
			return i
		}
	}
	return -1
}

func directionFromAngle(azimuthRad, elevationRad float64) Vec4 {
	ce := math.Cos(elevationRad)
	return Vec4{
		X: math.Sin(azimuthRad) * ce,
		Y: math.Sin(elevationRad),
		Z: -math.Cos(azimuthRad) * ce,
	}
}

// PanByDirection distributes gain over present's output channels using
// constant-power amplitude panning: each channel's weight is the squared,
// clamped-positive cosine of the angle between dir and that channel's
// canonical direction, normalized so the weight vector has unit length.
// A channel behind the panning direction receives zero.
func PanByDirection(dir Vec4, gain float64, present []ChannelID, dirs func(ChannelID) Vec4) [MaxOutputChannels]float64 {
	var out [MaxOutputChannels]float64
	var weights [MaxOutputChannels]float64
	sumSq := 0.0
	dir = Normalize(dir)
	for i, ch := range present {
		if i >= MaxOutputChannels {
			break
		}
		d := Dot(dir, dirs(ch))
		if d < 0 {
			d = 0
		}
		w := d * d
		weights[i] = w
		sumSq += w * w
	}
	if sumSq <= 0 {
		return out
	}
	norm := 1 / math.Sqrt(sumSq)
	for i := range present {
		if i >= MaxOutputChannels {
			break
		}
		out[i] = gain * weights[i] * norm
	}
	return out
}

// PanByAngle is PanByDirection taking azimuth/elevation in radians instead
// of a direction vector.
func PanByAngle(azimuthRad, elevationRad, gain float64, present []ChannelID, dirs func(ChannelID) Vec4) [MaxOutputChannels]float64 {
	return PanByDirection(directionFromAngle(azimuthRad, elevationRad), gain, present, dirs)
}

// BFormatRow is one row of a source's ambisonic re-rotation matrix: the
// per-input-channel W/X/Y/Z coefficients used to decode that input channel
// onto the output speaker layout.
type BFormatRow struct {
	W, X, Y, Z float64
}

// PanBFormat decodes one B-Format input channel's ambisonic row onto the
// output speaker layout: each output channel's gain is the row
// dotted with that speaker's first-order ambisonic encoding vector for its
// canonical direction, scaled by gain and clamped to non-negative.
func PanBFormat(row BFormatRow, gain float64, present []ChannelID, dirs func(ChannelID) Vec4) [MaxOutputChannels]float64 {
	var out [MaxOutputChannels]float64
	const wWeight = 0.7071067811865476 // 1/sqrt(2)
	for i, ch := range present {
		if i >= MaxOutputChannels {
			break
		}
		d := dirs(ch)
		g := row.W*wWeight + row.X*d.X + row.Y*d.Y + row.Z*d.Z
		if g < 0 {
			g = 0
		}
		out[i] = gain * g
	}
	return out
}
