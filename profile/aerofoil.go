package profile

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gmlewis/wings"
	"github.com/gmlewis/wings/chord"
)

// NACA4 is the NACA 4-digit aerofoil family. The thickness may taper
// linearly from T at the root to TipT at the tip.
//
// The half-thickness is added vertically to the camber line so that
// every loop point keeps its chordwise coordinate on the cosine grid.
type NACA4 struct {
	M    float64 // maximum camber, fraction of chord
	P    float64 // chordwise position of maximum camber
	T    float64 // maximum thickness at the root
	TipT float64 // maximum thickness at the tip; 0 means T

	// ClosedTE selects the trailing-edge coefficient that closes the
	// section at eta=1.
	ClosedTE bool
}

var (
	_ Aerofoil = NACA4{}
	_ Sampler  = NACA4{}
)

// ParseNACA4 parses a 4-digit designation such as "2412".
func ParseNACA4(code string) (NACA4, error) {
	if len(code) != 4 {
		return NACA4{}, fmt.Errorf("%w: NACA designation %q must have 4 digits", wings.ErrConfig, code)
	}
	m, err1 := strconv.Atoi(code[0:1])
	p, err2 := strconv.Atoi(code[1:2])
	t, err3 := strconv.Atoi(code[2:4])
	if err1 != nil || err2 != nil || err3 != nil {
		return NACA4{}, fmt.Errorf("%w: NACA designation %q must be numeric", wings.ErrConfig, code)
	}
	if (m == 0) != (p == 0) {
		return NACA4{}, fmt.Errorf("%w: NACA designation %q: camber and camber position must both be zero or non-zero", wings.ErrConfig, code)
	}
	return NACA4{
		M: float64(m) / 100,
		P: float64(p) / 10,
		T: float64(t) / 100,
	}, nil
}

func (a NACA4) thickness(xi float64) float64 {
	if a.TipT == 0 {
		return a.T
	}
	return a.T + (a.TipT-a.T)*xi
}

func (a NACA4) halfThickness(x, t float64) float64 {
	c4 := -0.1015
	if a.ClosedTE {
		c4 = -0.1036
	}
	return 5 * t * (0.2969*math.Sqrt(x) - 0.1260*x - 0.3516*x*x + 0.2843*x*x*x + c4*x*x*x*x)
}

func (a NACA4) camber(x float64) float64 {
	if a.M == 0 || a.P == 0 {
		return 0
	}
	if x < a.P {
		return a.M / (a.P * a.P) * (2*a.P*x - x*x)
	}
	q := 1 - a.P
	return a.M / (q * q) * ((1 - 2*a.P) + 2*a.P*x - x*x)
}

func (a NACA4) point(eta, xi float64, upper bool) Point {
	yt := a.halfThickness(eta, a.thickness(xi))
	if !upper {
		yt = -yt
	}
	return Point{eta, xi, a.camber(eta) + yt}
}

// Loop returns n points around the section at xi.
func (a NACA4) Loop(xi float64, n int) []Point {
	return sampleLoop(a.point, xi, n)
}

// Point returns a single surface point.
func (a NACA4) Point(eta, xi float64, upper bool) (Point, error) {
	if err := checkQuery(eta, xi); err != nil {
		return Point{}, err
	}
	return a.point(eta, xi, upper), nil
}

// FlatPlate is a rectangular section of constant thickness centred on
// the chord line.
type FlatPlate struct {
	Thickness float64 // fraction of chord
}

var (
	_ Aerofoil = FlatPlate{}
	_ Sampler  = FlatPlate{}
)

func (f FlatPlate) point(eta, xi float64, upper bool) Point {
	h := 0.5 * f.Thickness
	if !upper {
		h = -h
	}
	return Point{eta, xi, h}
}

// Loop returns n points around the section at xi.
func (f FlatPlate) Loop(xi float64, n int) []Point {
	return sampleLoop(f.point, xi, n)
}

// Point returns a single surface point.
func (f FlatPlate) Point(eta, xi float64, upper bool) (Point, error) {
	if err := checkQuery(eta, xi); err != nil {
		return Point{}, err
	}
	return f.point(eta, xi, upper), nil
}

// sampleLoop evaluates fn on the closed cosine-spaced loop of n points.
func sampleLoop(fn func(eta, xi float64, upper bool) Point, xi float64, n int) []Point {
	etas := chord.Loop(n)
	half := len(etas) / 2
	pts := make([]Point, len(etas))
	for i, eta := range etas {
		pts[i] = fn(eta, xi, i < half)
	}
	return pts
}

func checkQuery(eta, xi float64) error {
	if err := wings.CheckUnit("eta", eta); err != nil {
		return err
	}
	return wings.CheckUnit("xi", xi)
}
