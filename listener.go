// listener.go - listener world->head transform

/*
spatialmixer - a spatial audio mixing engine core

(c) 2026 The spatialmixer authors
https://github.com/soundstage/spatialmixer

License: GPLv3 or later
*/

package spatialmixer

// Listener is external state, owned by the application and only read by
// the mixer: world-space pose plus the scalar knobs that scale every
// voice's gain and distance.
type Listener struct {
	Position     Vec4
	Velocity     Vec4
	Forward      Vec4 // AT
	Up           Vec4 // UP
	Gain         float64
	MetersPerUnit float64
}

// ListenerParams is the block the mixer derives from Listener once per
// dirty update and every voice update reads thereafter.
type ListenerParams struct {
	Matrix   Mat4 // world -> head
	Velocity Vec4 // head-frame velocity
}

// UpdateListenerParams builds the listener's world->head transform.
//
// Forward and Up are normalized, a right vector U = normalize(Forward x Up)
// is formed, and the rows [U, Up, -Forward, 0] become the rotation part of
// the matrix. The listener position is transformed through that rotation,
// then negated into row 3 so the composite matrix carries the listener's
// translation as well: a world-space point maps straight to head space
// (listener at the origin, facing -Z, up +Y).
func UpdateListenerParams(l *Listener) ListenerParams {
	n := Normalize(l.Forward)
	v := Normalize(l.Up)
	u := Normalize(Cross(n, v))

	m := Mat4{Rows: [4]Vec4{
		{X: u.X, Y: v.X, Z: -n.X, W: 0},
		{X: u.Y, Y: v.Y, Z: -n.Y, W: 0},
		{X: u.Z, Y: v.Z, Z: -n.Z, W: 0},
		{X: 0, Y: 0, Z: 0, W: 1},
	}}

	p := MatrixVector(Vec4{X: l.Position.X, Y: l.Position.Y, Z: l.Position.Z, W: 1}, m)
	MatrixSetRow(&m, 3, Vec4{X: -p.X, Y: -p.Y, Z: -p.Z, W: 1})

	headVel := MatrixVector(Vec4{X: l.Velocity.X, Y: l.Velocity.Y, Z: l.Velocity.Z, W: 0}, m)

	return ListenerParams{Matrix: m, Velocity: headVel}
}
