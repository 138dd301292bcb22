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

// Listener-matrix correctness.
func TestUpdateListenerParams_WorldToHead(t *testing.T) {
	l := Listener{Forward: Vec4{Z: -1}, Up: Vec4{Y: 1}}
	params := UpdateListenerParams(&l)
	head := MatrixVector(Vec4{X: 1, Y: 2, Z: 3, W: 1}, params.Matrix)
	assert.InDelta(t, 1.0, head.X, 1e-9)
	assert.InDelta(t, 2.0, head.Y, 1e-9)
	assert.InDelta(t, 3.0, head.Z, 1e-9)

	l = Listener{Forward: Vec4{X: 1}, Up: Vec4{Y: 1}}
	params = UpdateListenerParams(&l)
	head = MatrixVector(Vec4{X: 1, Y: 0, Z: 0, W: 1}, params.Matrix)
	assert.InDelta(t, 0.0, head.X, 1e-9)
	assert.InDelta(t, 0.0, head.Y, 1e-9)
	assert.InDelta(t, -1.0, head.Z, 1e-9)

	l = Listener{Position: Vec4{X: 10}, Forward: Vec4{X: 1}, Up: Vec4{Y: 1}}
	params = UpdateListenerParams(&l)
	head = MatrixVector(Vec4{X: 11, Y: 0, Z: 0, W: 1}, params.Matrix)
	assert.InDelta(t, 0.0, head.X, 1e-9)
	assert.InDelta(t, 0.0, head.Y, 1e-9)
	assert.InDelta(t, -1.0, head.Z, 1e-9)
}
