// util.go - small numeric helpers shared across the mixer

/*
spatialmixer - a spatial audio mixing engine core

(c) 2026 The spatialmixer authors
https://github.com/soundstage/spatialmixer

License: GPLv3 or later
*/

package spatialmixer

import "math"

func powf(base, exp float64) float64 {
	return math.Pow(base, exp)
}
