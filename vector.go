// vector.go - four-component homogeneous vector and row-major 4x4 matrix math

/*
spatialmixer - a spatial audio mixing engine core

(c) 2026 The spatialmixer authors
https://github.com/soundstage/spatialmixer

License: GPLv3 or later
*/

package spatialmixer

import "math"

// Vec4 is a four-component homogeneous vector: a point when W=1, a
// direction when W=0.
type Vec4 struct {
	X, Y, Z, W float64
}

// Mat4 is a row-major 4x4 matrix; Rows[i] is the i-th row.
type Mat4 struct {
	Rows [4]Vec4
}

// Identity4 returns the row-major identity matrix.
func Identity4() Mat4 {
	return Mat4{Rows: [4]Vec4{
		{X: 1},
		{Y: 1},
		{Z: 1},
		{W: 1},
	}}
}

func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z, W: v.W + o.W}
}

func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z, W: v.W - o.W}
}

func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

func (v Vec4) Negate() Vec4 {
	return Vec4{X: -v.X, Y: -v.Y, Z: -v.Z, W: v.W}
}

// Dot is the three-component dot product; W does not participate, matching
// the source engine's treatment of direction/position vectors.
func Dot(a, b Vec4) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross is the three-component cross product; the result's W is always 0.
func Cross(a, b Vec4) Vec4 {
	return Vec4{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Length is the three-component Euclidean length.
func Length(v Vec4) float64 {
	return math.Sqrt(Dot(v, v))
}

// Normalize returns v scaled to unit length. A zero-length vector is
// returned unchanged rather than producing NaN.
func Normalize(v Vec4) Vec4 {
	lenSq := Dot(v, v)
	if lenSq <= 0 {
		return v
	}
	return v.Scale(1 / math.Sqrt(lenSq))
}

// MatrixVector computes v'_i = sum_j v_j * m.Rows[j][i] - the matrix's rows
// are read as the basis vectors of the destination frame.
func MatrixVector(v Vec4, m Mat4) Vec4 {
	return Vec4{
		X: v.X*m.Rows[0].X + v.Y*m.Rows[1].X + v.Z*m.Rows[2].X + v.W*m.Rows[3].X,
		Y: v.X*m.Rows[0].Y + v.Y*m.Rows[1].Y + v.Z*m.Rows[2].Y + v.W*m.Rows[3].Y,
		Z: v.X*m.Rows[0].Z + v.Y*m.Rows[1].Z + v.Z*m.Rows[2].Z + v.W*m.Rows[3].Z,
		W: v.X*m.Rows[0].W + v.Y*m.Rows[1].W + v.Z*m.Rows[2].W + v.W*m.Rows[3].W,
	}
}

// MatrixSetRow sets row i of m in place.
func MatrixSetRow(m *Mat4, i int, row Vec4) {
	m.Rows[i] = row
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerp(a, b, f float64) float64 {
	return a + (b-a)*f
}
