// format.go - planar float to interleaved integer/float format conversion

/*
spatialmixer - a spatial audio mixing engine core

(c) 2026 The spatialmixer authors
https://github.com/soundstage/spatialmixer

License: GPLv3 or later
*/

package spatialmixer

import (
	"encoding/binary"
	"math"
)

// floatToInt25 implements aluF2I25: a clamp to [-1,1] followed by
// rounding into a 25-bit signed range.
func floatToInt25(v float32) int32 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int32(math.Round(float64(v) * 16777215.0))
}

func floatToInt32(v float32) int32  { return floatToInt25(v) << 7 }
func floatToUint32(v float32) uint32 { return uint32(floatToInt32(v)) + 2147483648 }
func floatToInt16(v float32) int16  { return int16(floatToInt25(v) >> 9) }
func floatToUint16(v float32) uint16 { return uint16(floatToInt16(v)) + 32768 }
func floatToInt8(v float32) int8    { return int8(floatToInt25(v) >> 17) }
func floatToUint8(v float32) uint8  { return uint8(floatToInt8(v)) + 128 }

// writeFormat interleaves numChannels planar float channels (each at least
// samples long) into dst according to format, and returns the number of
// bytes written.
func writeFormat(format SampleFormat, channels [][]float32, samples, numChannels int, dst []byte) int {
	switch format {
	case FormatFloat32:
		return writeInterleaved(dst, samples, numChannels, func(b []byte, v float32) int {
			binary.LittleEndian.PutUint32(b, math.Float32bits(v))
			return 4
		}, channels)
	case FormatInt32:
		return writeInterleaved(dst, samples, numChannels, func(b []byte, v float32) int {
			binary.LittleEndian.PutUint32(b, uint32(floatToInt32(v)))
			return 4
		}, channels)
	case FormatUInt32:
		return writeInterleaved(dst, samples, numChannels, func(b []byte, v float32) int {
			binary.LittleEndian.PutUint32(b, floatToUint32(v))
			return 4
		}, channels)
	case FormatInt16:
		return writeInterleaved(dst, samples, numChannels, func(b []byte, v float32) int {
			binary.LittleEndian.PutUint16(b, uint16(floatToInt16(v)))
			return 2
		}, channels)
	case FormatUInt16:
		return writeInterleaved(dst, samples, numChannels, func(b []byte, v float32) int {
			binary.LittleEndian.PutUint16(b, floatToUint16(v))
			return 2
		}, channels)
	case FormatInt8:
		return writeInterleaved(dst, samples, numChannels, func(b []byte, v float32) int {
			b[0] = byte(floatToInt8(v))
			return 1
		}, channels)
	case FormatUInt8:
		return writeInterleaved(dst, samples, numChannels, func(b []byte, v float32) int {
			b[0] = floatToUint8(v)
			return 1
		}, channels)
	default:
		return 0
	}
}

func writeInterleaved(dst []byte, samples, numChannels int, put func([]byte, float32) int, channels [][]float32) int {
	off := 0
	for i := 0; i < samples; i++ {
		for c := 0; c < numChannels; c++ {
			var v float32
			if i < len(channels[c]) {
				v = channels[c][i]
			}
			off += put(dst[off:], v)
		}
	}
	return off
}

// writeInt16Mono writes a mono Int16 downmix of channels into dst, one
// frame of 2 bytes per sample (the loopback ring always receives this
// format regardless of the device's own output format).
func writeInt16Mono(channels [][]float32, samples int, dst []byte) {
	numChannels := len(channels)
	off := 0
	for i := 0; i < samples; i++ {
		var sum float32
		for c := 0; c < numChannels; c++ {
			if i < len(channels[c]) {
				sum += channels[c][i]
			}
		}
		if numChannels > 0 {
			sum /= float32(numChannels)
		}
		binary.LittleEndian.PutUint16(dst[off:], uint16(floatToInt16(sum)))
		off += 2
	}
}
