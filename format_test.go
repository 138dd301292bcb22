package spatialmixer

/*
spatialmixer - a spatial audio mixing engine core

(c) 2026 The spatialmixer authors
https://github.com/soundstage/spatialmixer

License: GPLv3 or later
*/

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Format round-trip on extremes.
func TestFloatToInt25_Extremes(t *testing.T) {
	assert.Equal(t, int32(16777215), floatToInt25(1.0))
	assert.Equal(t, int32(-16777215), floatToInt25(-1.0))
	assert.Equal(t, int32(16777215), floatToInt25(2.0))
	assert.Equal(t, int32(-16777215), floatToInt25(-2.0))
	assert.Equal(t, int32(0), floatToInt25(0))
}

func TestFloatToInt16_FullScale(t *testing.T) {
	assert.Equal(t, int16(32767), floatToInt16(1.0))
}

func TestFloatToUint8_Midpoint(t *testing.T) {
	assert.Equal(t, uint8(128), floatToUint8(0.0))
}
