// Package chord generates normalized chordwise sample coordinates,
// clustered toward the leading and trailing edges.
package chord

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// CosineSpacing maps a uniform eta in [0,1] onto [0,1], clustering
// values near both ends.
func CosineSpacing(eta float64) float64 {
	return 0.5 - 0.5*math.Cos(math.Pi*eta)
}

// Coordinates returns n ascending chordwise coordinates from 0 to 1,
// denser near both ends than a uniform sample.
func Coordinates(n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{0}
	}

	etas := floats.Span(make([]float64, n), 0, 1)
	for i, eta := range etas {
		etas[i] = CosineSpacing(eta)
	}
	return etas
}

// Loop returns the chordwise coordinates of a closed aerofoil loop of
// n points: the upper surface from leading to trailing edge followed by
// the lower surface from trailing back to leading edge.
//
// n is expected to be even; an odd n yields a loop of n-1 points.
func Loop(n int) []float64 {
	upper := Coordinates(n / 2)
	lower := make([]float64, len(upper))
	copy(lower, upper)
	floats.Reverse(lower)
	return append(upper, lower...)
}
