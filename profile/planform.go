package profile

import (
	"fmt"
	"math"
	"sort"

	"github.com/gmlewis/wings"
)

// Rectangular is a constant-chord, unswept planform.
type Rectangular struct {
	ChordLength float64
	QC          float64 // quarter-chord position
}

var _ Planform = Rectangular{}

func (r Rectangular) QuarterChord(xi float64) float64 { return r.QC }
func (r Rectangular) Chord(xi float64) float64        { return r.ChordLength }

// Trapezoidal is a linearly tapered planform with a straight, possibly
// swept, quarter-chord line.
type Trapezoidal struct {
	RootChord float64
	TipChord  float64
	Sweep     float64 // quarter-chord sweep in degrees, positive aft
	QC        float64 // quarter-chord position at the root
}

var _ Planform = Trapezoidal{}

func (t Trapezoidal) QuarterChord(xi float64) float64 {
	return t.QC + xi*math.Tan(t.Sweep*math.Pi/180)
}

func (t Trapezoidal) Chord(xi float64) float64 {
	return t.RootChord + (t.TipChord-t.RootChord)*xi
}

// Elliptical has an elliptical chord distribution about a straight,
// unswept quarter-chord line.
type Elliptical struct {
	RootChord float64
	QC        float64
}

var _ Planform = Elliptical{}

func (e Elliptical) QuarterChord(xi float64) float64 { return e.QC }

func (e Elliptical) Chord(xi float64) float64 {
	if xi >= 1 {
		return 0
	}
	return e.RootChord * math.Sqrt(1-xi*xi)
}

// Tabulated is a piecewise-linear planform through a table of stations.
type Tabulated struct {
	stations      []float64
	chords        []float64
	quarterChords []float64
}

var _ Planform = (*Tabulated)(nil)

// NewTabulated returns a planform interpolating chords and quarterChords
// at the given stations. Stations must be strictly ascending from 0 to 1
// and chords must be non-negative.
func NewTabulated(stations, chords, quarterChords []float64) (*Tabulated, error) {
	if len(stations) < 2 {
		return nil, fmt.Errorf("%w: tabulated planform needs at least 2 stations, got %v", wings.ErrConfig, len(stations))
	}
	if len(chords) != len(stations) || len(quarterChords) != len(stations) {
		return nil, fmt.Errorf("%w: tabulated planform has %v stations, %v chords, %v quarter-chords",
			wings.ErrConfig, len(stations), len(chords), len(quarterChords))
	}
	if stations[0] != 0 || stations[len(stations)-1] != 1 {
		return nil, fmt.Errorf("%w: tabulated stations must run from 0 to 1, got %v to %v",
			wings.ErrConfig, stations[0], stations[len(stations)-1])
	}
	for i, s := range stations {
		if i > 0 && s <= stations[i-1] {
			return nil, fmt.Errorf("%w: tabulated stations must be strictly ascending: stations[%v]=%v", wings.ErrConfig, i, s)
		}
		if chords[i] < 0 {
			return nil, fmt.Errorf("%w: negative chord %v at station %v", wings.ErrConfig, chords[i], s)
		}
	}

	return &Tabulated{
		stations:      append([]float64(nil), stations...),
		chords:        append([]float64(nil), chords...),
		quarterChords: append([]float64(nil), quarterChords...),
	}, nil
}

// At interpolates the chord and quarter-chord line at xi. It returns a
// *wings.RangeError when xi lies outside [0,1].
func (t *Tabulated) At(xi float64) (chord, qc float64, err error) {
	if err := wings.CheckUnit("xi", xi); err != nil {
		return 0, 0, err
	}
	return t.interp(t.chords, xi), t.interp(t.quarterChords, xi), nil
}

// QuarterChord interpolates the quarter-chord line. Callers must keep xi
// within [0,1]; use At to have that checked.
func (t *Tabulated) QuarterChord(xi float64) float64 { return t.interp(t.quarterChords, xi) }

// Chord interpolates the chord. Callers must keep xi within [0,1]; use
// At to have that checked.
func (t *Tabulated) Chord(xi float64) float64 { return t.interp(t.chords, xi) }

func (t *Tabulated) interp(values []float64, xi float64) float64 {
	n := len(t.stations)
	switch {
	case xi <= 0:
		return values[0]
	case xi >= 1:
		return values[n-1]
	}
	// First station strictly greater than xi; always in 1..n-1 here.
	i := sort.Search(n, func(i int) bool { return t.stations[i] > xi })
	s0, s1 := t.stations[i-1], t.stations[i]
	f := (xi - s0) / (s1 - s0)
	return values[i-1] + f*(values[i]-values[i-1])
}
