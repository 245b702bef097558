package wing

import "github.com/gmlewis/wings/profile"

// Scale multiplies the chordwise and height components of each loop
// point by the chord at xi. Spanwise components are untouched.
func Scale(pl profile.Planform, xi float64, loop []profile.Point) []profile.Point {
	c := pl.Chord(xi)
	out := make([]profile.Point, len(loop))
	for i, p := range loop {
		out[i] = profile.Point{c * p[0], p[1], c * p[2]}
	}
	return out
}

// Translate shifts the chordwise component of each loop point by the
// leading edge position at xi.
func Translate(pl profile.Planform, xi float64, loop []profile.Point) []profile.Point {
	le := profile.LeadingEdge(pl, xi)
	out := make([]profile.Point, len(loop))
	for i, p := range loop {
		out[i] = profile.Point{p[0] + le, p[1], p[2]}
	}
	return out
}

// Place scales a normalized loop to the chord at xi and then moves it
// onto the leading edge, so the result spans exactly
// [LeadingEdge(xi), TrailingEdge(xi)].
func Place(pl profile.Planform, xi float64, loop []profile.Point) []profile.Point {
	return Translate(pl, xi, Scale(pl, xi, loop))
}
