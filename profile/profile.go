// Package profile defines the planform and aerofoil provider contracts
// and a set of closed-form providers that satisfy them.
package profile

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/integrate/quad"
)

// Point is a wing point: [0] chordwise, [1] spanwise (xi), [2] height.
//
// Aerofoil providers return normalized points (chordwise in [0,1] and
// height as a fraction of chord); placement turns them into real
// chordwise positions and heights.
type Point = mgl64.Vec3

// Planform describes the outline of a wing seen from above over the
// normalized span xi in [0,1].
type Planform interface {
	// QuarterChord returns the chordwise position of the 25%-chord point.
	QuarterChord(xi float64) float64
	// Chord returns the chord length at xi. It must be non-negative.
	Chord(xi float64) float64
}

// Aerofoil describes a family of normalized cross-sections.
type Aerofoil interface {
	// Loop returns n normalized points forming a closed loop at span
	// station xi. The loop starts at the leading edge on the upper
	// surface, runs to the trailing edge, and returns along the lower
	// surface.
	Loop(xi float64, n int) []Point
}

// Sampler is implemented by aerofoils that can evaluate a single
// surface point directly. It must agree with Loop at matching eta.
type Sampler interface {
	Point(eta, xi float64, upper bool) (Point, error)
}

// LeadingEdge returns the chordwise position of the leading edge at xi.
func LeadingEdge(pl Planform, xi float64) float64 {
	return pl.QuarterChord(xi) - 0.25*pl.Chord(xi)
}

// TrailingEdge returns the chordwise position of the trailing edge at xi.
func TrailingEdge(pl Planform, xi float64) float64 {
	return pl.QuarterChord(xi) + 0.75*pl.Chord(xi)
}

// quadPoints is the Gauss-Legendre order used for planform integrals.
const quadPoints = 64

// Area returns the planform area of a span-normalized wing: the
// integral of chord over [0,1].
func Area(pl Planform) float64 {
	return quad.Fixed(pl.Chord, 0, 1, quadPoints, quad.Legendre{}, 0)
}

// MeanChord returns the mean geometric chord. Over a unit span it equals Area.
func MeanChord(pl Planform) float64 {
	const span = 1
	return Area(pl) / span
}

// AspectRatio returns span^2/area for a unit span.
func AspectRatio(pl Planform) float64 {
	const span = 1
	return span * span / Area(pl)
}
