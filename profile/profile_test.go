package profile

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/gmlewis/wings"
)

const eps = 1e-12

func TestEdges(t *testing.T) {
	tab, err := NewTabulated([]float64{0, 0.5, 1}, []float64{1, 0.8, 0.2}, []float64{0.25, 0.3, 0.5})
	if err != nil {
		t.Fatalf("NewTabulated: %v", err)
	}

	tests := []struct {
		name string
		pl   Planform
	}{
		{name: "rectangular", pl: Rectangular{ChordLength: 0.5, QC: 1}},
		{name: "trapezoidal", pl: Trapezoidal{RootChord: 1, TipChord: 0.4, Sweep: 15, QC: 0.25}},
		{name: "elliptical", pl: Elliptical{RootChord: 1.2, QC: 0.3}},
		{name: "tabulated", pl: tab},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for xi := 0.0; xi <= 1; xi += 0.125 {
				qc, c := tt.pl.QuarterChord(xi), tt.pl.Chord(xi)
				if got, want := LeadingEdge(tt.pl, xi), qc-0.25*c; math.Abs(got-want) > eps {
					t.Errorf("LeadingEdge(%v) = %v, want %v", xi, got, want)
				}
				if got, want := TrailingEdge(tt.pl, xi), qc+0.75*c; math.Abs(got-want) > eps {
					t.Errorf("TrailingEdge(%v) = %v, want %v", xi, got, want)
				}
				if c < 0 {
					t.Errorf("Chord(%v) = %v, want >= 0", xi, c)
				}
			}
		})
	}
}

func TestConstantChordIntegrals(t *testing.T) {
	for i := 1; i <= 10; i++ {
		c := 0.1 * float64(i)
		t.Run(fmt.Sprintf("c=%v", c), func(t *testing.T) {
			pl := Rectangular{ChordLength: c, QC: 0.25}
			if got := Area(pl); math.Abs(got-c) > eps {
				t.Errorf("Area = %v, want %v", got, c)
			}
			if got := MeanChord(pl); math.Abs(got-c) > eps {
				t.Errorf("MeanChord = %v, want %v", got, c)
			}
			if got := AspectRatio(pl); math.Abs(got-1/c) > 1e-9 {
				t.Errorf("AspectRatio = %v, want %v", got, 1/c)
			}
		})
	}
}

func TestAreaEqualsMeanChord(t *testing.T) {
	tests := []struct {
		name string
		pl   Planform
		want float64
	}{
		{name: "trapezoidal", pl: Trapezoidal{RootChord: 1, TipChord: 0.5}, want: 0.75},
		{name: "elliptical", pl: Elliptical{RootChord: 1}, want: math.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			area, mean := Area(tt.pl), MeanChord(tt.pl)
			if area != mean {
				t.Errorf("Area = %v, MeanChord = %v, want equal", area, mean)
			}
			if math.Abs(area-tt.want) > 1e-3 {
				t.Errorf("Area = %v, want %v", area, tt.want)
			}
		})
	}
}

func TestNewTabulated(t *testing.T) {
	tests := []struct {
		name     string
		stations []float64
		chords   []float64
		qcs      []float64
		wantErr  bool
	}{
		{name: "ok", stations: []float64{0, 1}, chords: []float64{1, 0.5}, qcs: []float64{0, 0}},
		{name: "too few", stations: []float64{0}, chords: []float64{1}, qcs: []float64{0}, wantErr: true},
		{name: "length mismatch", stations: []float64{0, 1}, chords: []float64{1}, qcs: []float64{0, 0}, wantErr: true},
		{name: "not from zero", stations: []float64{0.1, 1}, chords: []float64{1, 1}, qcs: []float64{0, 0}, wantErr: true},
		{name: "not ascending", stations: []float64{0, 0.6, 0.5, 1}, chords: []float64{1, 1, 1, 1}, qcs: []float64{0, 0, 0, 0}, wantErr: true},
		{name: "negative chord", stations: []float64{0, 1}, chords: []float64{1, -0.1}, qcs: []float64{0, 0}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTabulated(tt.stations, tt.chords, tt.qcs)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewTabulated = %v, wantErr=%v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, wings.ErrConfig) {
				t.Errorf("errors.Is(%v, ErrConfig) = false", err)
			}
		})
	}
}

func TestTabulatedInterp(t *testing.T) {
	tab, err := NewTabulated([]float64{0, 0.5, 1}, []float64{1, 0.5, 0.25}, []float64{0, 0.1, 0.3})
	if err != nil {
		t.Fatalf("NewTabulated: %v", err)
	}
	tests := []struct {
		xi, chord, qc float64
	}{
		{xi: 0, chord: 1, qc: 0},
		{xi: 0.25, chord: 0.75, qc: 0.05},
		{xi: 0.5, chord: 0.5, qc: 0.1},
		{xi: 0.75, chord: 0.375, qc: 0.2},
		{xi: 1, chord: 0.25, qc: 0.3},
	}
	for _, tt := range tests {
		if got := tab.Chord(tt.xi); math.Abs(got-tt.chord) > eps {
			t.Errorf("Chord(%v) = %v, want %v", tt.xi, got, tt.chord)
		}
		if got := tab.QuarterChord(tt.xi); math.Abs(got-tt.qc) > eps {
			t.Errorf("QuarterChord(%v) = %v, want %v", tt.xi, got, tt.qc)
		}
		chord, qc, err := tab.At(tt.xi)
		if err != nil {
			t.Fatalf("At(%v): %v", tt.xi, err)
		}
		if math.Abs(chord-tt.chord) > eps || math.Abs(qc-tt.qc) > eps {
			t.Errorf("At(%v) = (%v, %v), want (%v, %v)", tt.xi, chord, qc, tt.chord, tt.qc)
		}
	}
}

func TestTabulatedAtRange(t *testing.T) {
	tab, err := NewTabulated([]float64{0, 0.5, 1}, []float64{1, 0.5, 0.25}, []float64{0, 0.1, 0.3})
	if err != nil {
		t.Fatalf("NewTabulated: %v", err)
	}
	for _, xi := range []float64{-1, -0.5, 1.5, 2, math.NaN()} {
		t.Run(fmt.Sprintf("xi=%v", xi), func(t *testing.T) {
			_, _, err := tab.At(xi)
			var re *wings.RangeError
			if !errors.As(err, &re) {
				t.Fatalf("At(%v) = %v, want *wings.RangeError", xi, err)
			}
			if re.Param != "xi" {
				t.Errorf("Param = %q, want %q", re.Param, "xi")
			}
			if !(re.Value == xi || math.IsNaN(xi) && math.IsNaN(re.Value)) {
				t.Errorf("Value = %v, want %v", re.Value, xi)
			}
			if !errors.Is(err, wings.ErrRange) {
				t.Errorf("errors.Is(%v, ErrRange) = false", err)
			}
		})
	}
}

func TestParseNACA4(t *testing.T) {
	tests := []struct {
		code    string
		want    NACA4
		wantErr bool
	}{
		{code: "0012", want: NACA4{T: 0.12}},
		{code: "2412", want: NACA4{M: 0.02, P: 0.4, T: 0.12}},
		{code: "4415", want: NACA4{M: 0.04, P: 0.4, T: 0.15}},
		{code: "241", wantErr: true},
		{code: "24a2", wantErr: true},
		{code: "2012", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := ParseNACA4(tt.code)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseNACA4 = %v, wantErr=%v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, wings.ErrConfig) {
					t.Errorf("errors.Is(%v, ErrConfig) = false", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseNACA4 = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoopShape(t *testing.T) {
	tests := []struct {
		name string
		af   Aerofoil
	}{
		{name: "naca0012", af: NACA4{T: 0.12}},
		{name: "naca2412 tapered", af: NACA4{M: 0.02, P: 0.4, T: 0.12, TipT: 0.08, ClosedTE: true}},
		{name: "flat plate", af: FlatPlate{Thickness: 0.05}},
	}

	const n = 20
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const xi = 0.3
			loop := tt.af.Loop(xi, n)
			if len(loop) != n {
				t.Fatalf("len = %v, want %v", len(loop), n)
			}
			if loop[0][0] != 0 || loop[n-1][0] != 0 {
				t.Errorf("loop ends at eta=%v,%v, want 0,0", loop[0][0], loop[n-1][0])
			}
			if loop[n/2-1][0] != 1 || loop[n/2][0] != 1 {
				t.Errorf("trailing edge at eta=%v,%v, want 1,1", loop[n/2-1][0], loop[n/2][0])
			}
			for i, p := range loop {
				if p[1] != xi {
					t.Errorf("loop[%v] spanwise = %v, want %v", i, p[1], xi)
				}
			}
			// Upper surface is never below the matching lower point.
			for i := 0; i < n/2; i++ {
				if up, lo := loop[i][2], loop[n-1-i][2]; up < lo-eps {
					t.Errorf("upper[%v]=%v < lower=%v", i, up, lo)
				}
			}

			s, ok := tt.af.(Sampler)
			if !ok {
				return
			}
			for i, p := range loop {
				got, err := s.Point(p[0], xi, i < n/2)
				if err != nil {
					t.Fatalf("Point: %v", err)
				}
				if got != p {
					t.Errorf("Point(%v, %v, %v) = %v, want %v", p[0], xi, i < n/2, got, p)
				}
			}
		})
	}
}

func TestNACA4Thickness(t *testing.T) {
	af := NACA4{T: 0.12, TipT: 0.06}
	root, err := af.Point(0.3, 0, true)
	if err != nil {
		t.Fatal(err)
	}
	tip, err := af.Point(0.3, 1, true)
	if err != nil {
		t.Fatal(err)
	}
	// Maximum half-thickness of a NACA 00xx section is ~t/2 near 30% chord.
	if math.Abs(root[2]-0.06) > 1e-3 {
		t.Errorf("root half-thickness = %v, want ~0.06", root[2])
	}
	if math.Abs(tip[2]-root[2]/2) > eps {
		t.Errorf("tip half-thickness = %v, want %v", tip[2], root[2]/2)
	}

	closed := NACA4{T: 0.12, ClosedTE: true}
	p, err := closed.Point(1, 0, true)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(p[2]) > 1e-4 {
		t.Errorf("closed trailing edge height = %v, want ~0", p[2])
	}
}

func TestSamplerRange(t *testing.T) {
	tests := []struct {
		name    string
		eta, xi float64
		param   string
	}{
		{name: "eta low", eta: -0.1, xi: 0.5, param: "eta"},
		{name: "eta high", eta: 1.5, xi: 0.5, param: "eta"},
		{name: "xi high", eta: 0.5, xi: 1.01, param: "xi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range []Sampler{NACA4{T: 0.12}, FlatPlate{Thickness: 0.1}} {
				_, err := s.Point(tt.eta, tt.xi, true)
				var re *wings.RangeError
				if !errors.As(err, &re) {
					t.Fatalf("Point(%v, %v) = %v, want *RangeError", tt.eta, tt.xi, err)
				}
				if re.Param != tt.param {
					t.Errorf("Param = %q, want %q", re.Param, tt.param)
				}
			}
		})
	}
}
