// Package config parses and validates JSON wing descriptions.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/gmlewis/wings"
	"github.com/gmlewis/wings/profile"
	"github.com/gmlewis/wings/wing"
)

// Wing represents a JSON wing description.
type Wing struct {
	Title    string   `json:"title"`
	Units    string   `json:"units"`
	Notes    string   `json:"notes"`
	Planform Planform `json:"planform"`
	Aerofoil Aerofoil `json:"aerofoil"`
	NChord   int      `json:"nchord"`
	NSpan    int      `json:"nspan"`
	Xi0      float64  `json:"xi0"`
	Xi1      *float64 `json:"xi1"` // nil means 1
	Scale    float64  `json:"scale"`
}

// Planform selects and parameterizes a planform provider.
type Planform struct {
	Type          string    `json:"type"` // rectangular, trapezoidal, elliptical or tabulated
	Chord         float64   `json:"chord"`
	RootChord     float64   `json:"rootChord"`
	TipChord      float64   `json:"tipChord"`
	Sweep         float64   `json:"sweep"`
	QuarterChord  float64   `json:"quarterChord"`
	Stations      []float64 `json:"stations"`
	Chords        []float64 `json:"chords"`
	QuarterChords []float64 `json:"quarterChords"`
}

// Aerofoil selects and parameterizes an aerofoil provider.
type Aerofoil struct {
	Type      string  `json:"type"` // naca4 or flatplate
	Code      string  `json:"code"`
	TipCode   string  `json:"tipCode"`
	Thickness float64 `json:"thickness"`
	ClosedTE  bool    `json:"closedTE"`
}

var (
	// Both patterns match whole string literals first so that their
	// contents are left alone.
	trailingCommaRE = regexp.MustCompile(`"(?:[^"\\]|\\.)*"|,\s*[}\]]`)
	unquotedKeyRE   = regexp.MustCompile(`"(?:[^"\\]|\\.)*"|[A-Za-z_][A-Za-z0-9_]*\s*:`)

	jsonKeys = map[string]bool{
		"aerofoil":      true,
		"chord":         true,
		"chords":        true,
		"closedTE":      true,
		"code":          true,
		"nchord":        true,
		"notes":         true,
		"nspan":         true,
		"planform":      true,
		"quarterChord":  true,
		"quarterChords": true,
		"rootChord":     true,
		"scale":         true,
		"stations":      true,
		"sweep":         true,
		"thickness":     true,
		"tipChord":      true,
		"tipCode":       true,
		"title":         true,
		"type":          true,
		"units":         true,
		"xi0":           true,
		"xi1":           true,
	}
)

// New parses the JSON wing description src.
func New(src string) (*Wing, error) {
	w, err := parseJSON(src)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to parse JSON: %v", wings.ErrConfig, err)
	}

	if lineNum, err := w.validate(src); err != nil {
		return nil, fmt.Errorf("%w: invalid wing description on line %v: %v", wings.ErrConfig, lineNum, err)
	}

	return w, nil
}

// Load reads and parses the wing description in filename.
func Load(filename string) (*Wing, error) {
	buf, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return New(string(buf))
}

func parseJSON(s string) (*Wing, error) {
	result := &Wing{}

	// Avoid the trailing comma silliness in JavaScript:
	s = trailingCommaRE.ReplaceAllStringFunc(s, func(m string) string {
		if strings.HasPrefix(m, `"`) {
			return m
		}
		return m[len(m)-1:]
	})

	if err := json.Unmarshal([]byte(s), result); err != nil {
		s = unquotedKeyRE.ReplaceAllStringFunc(s, func(m string) string {
			key := strings.TrimSpace(strings.TrimSuffix(m, ":"))
			if strings.HasPrefix(m, `"`) || !jsonKeys[key] {
				return m
			}
			return fmt.Sprintf("%q:", key)
		})
		result = &Wing{}
		if err := json.Unmarshal([]byte(s), result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (w *Wing) validate(src string) (int, error) {
	if _, err := w.planform(); err != nil {
		return findKeyLine(src, "planform"), err
	}
	if _, err := w.aerofoil(); err != nil {
		return findKeyLine(src, "aerofoil"), err
	}
	if w.Scale < 0 {
		return findKeyLine(src, "scale"), fmt.Errorf("scale must be positive, got %v", w.Scale)
	}
	if err := w.Options().Validate(); err != nil {
		var re *wings.RangeError
		switch {
		case errors.As(err, &re):
			return findKeyLine(src, re.Param), err
		case w.NChord != 0 && (w.NChord < 4 || w.NChord%2 != 0):
			return findKeyLine(src, "nchord"), err
		case w.NSpan != 0 && w.NSpan < 2:
			return findKeyLine(src, "nspan"), err
		case w.Xi1 != nil:
			return findKeyLine(src, "xi1"), err
		}
		return findKeyLine(src, "xi0"), err
	}
	return 0, nil
}

// Options returns the sampling options, falling back to
// wing.DefaultOptions for unset fields.
func (w *Wing) Options() wing.Options {
	opts := wing.DefaultOptions()
	opts.Xi0 = w.Xi0
	if w.Xi1 != nil {
		opts.Xi1 = *w.Xi1
	}
	if w.NChord != 0 {
		opts.NChord = w.NChord
	}
	if w.NSpan != 0 {
		opts.NSpan = w.NSpan
	}
	return opts
}

// ScaleFactor returns the output scale, 1 if unset.
func (w *Wing) ScaleFactor() float64 {
	if w.Scale == 0 {
		return 1
	}
	return w.Scale
}

// Header returns an 80-byte-safe STL header naming the wing.
func (w *Wing) Header() string {
	h := "wings"
	if w.Title != "" {
		h += ": " + w.Title
	}
	if w.Units != "" {
		h += " [" + w.Units + "]"
	}
	if len(h) > 80 {
		h = h[:80]
	}
	return h
}

// Build returns the providers described by w.
func (w *Wing) Build() (profile.Planform, profile.Aerofoil, error) {
	pl, err := w.planform()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: planform: %v", wings.ErrConfig, err)
	}
	af, err := w.aerofoil()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: aerofoil: %v", wings.ErrConfig, err)
	}
	return pl, af, nil
}

func (w *Wing) planform() (profile.Planform, error) {
	p := w.Planform
	switch strings.ToLower(p.Type) {
	case "rectangular":
		if p.Chord <= 0 {
			return nil, fmt.Errorf("rectangular planform needs a positive chord, got %v", p.Chord)
		}
		return profile.Rectangular{ChordLength: p.Chord, QC: p.QuarterChord}, nil
	case "trapezoidal":
		if p.RootChord <= 0 || p.TipChord < 0 {
			return nil, fmt.Errorf("trapezoidal planform needs rootChord > 0 and tipChord >= 0, got %v and %v", p.RootChord, p.TipChord)
		}
		return profile.Trapezoidal{RootChord: p.RootChord, TipChord: p.TipChord, Sweep: p.Sweep, QC: p.QuarterChord}, nil
	case "elliptical":
		if p.RootChord <= 0 {
			return nil, fmt.Errorf("elliptical planform needs a positive rootChord, got %v", p.RootChord)
		}
		return profile.Elliptical{RootChord: p.RootChord, QC: p.QuarterChord}, nil
	case "tabulated":
		qcs := p.QuarterChords
		if qcs == nil {
			qcs = make([]float64, len(p.Stations))
		}
		return profile.NewTabulated(p.Stations, p.Chords, qcs)
	case "":
		return nil, errors.New("missing planform type")
	}
	return nil, fmt.Errorf("unknown planform type %q", p.Type)
}

func (w *Wing) aerofoil() (profile.Aerofoil, error) {
	a := w.Aerofoil
	switch strings.ToLower(a.Type) {
	case "naca4", "naca":
		af, err := profile.ParseNACA4(a.Code)
		if err != nil {
			return nil, err
		}
		if a.TipCode != "" {
			tip, err := profile.ParseNACA4(a.TipCode)
			if err != nil {
				return nil, fmt.Errorf("tipCode: %w", err)
			}
			if tip.M != af.M || tip.P != af.P {
				return nil, fmt.Errorf("tipCode %q must share the camber of code %q", a.TipCode, a.Code)
			}
			af.TipT = tip.T
		}
		af.ClosedTE = a.ClosedTE
		return af, nil
	case "flatplate":
		if a.Thickness <= 0 {
			return nil, fmt.Errorf("flat plate needs a positive thickness, got %v", a.Thickness)
		}
		return profile.FlatPlate{Thickness: a.Thickness}, nil
	case "":
		return nil, errors.New("missing aerofoil type")
	}
	return nil, fmt.Errorf("unknown aerofoil type %q", a.Type)
}

func findKeyLine(s, key string) int {
	if i := strings.Index(s, fmt.Sprintf("%q:", key)); i >= 0 {
		return indexToLineNum(s, i)
	}
	if i := strings.Index(s, fmt.Sprintf("%v:", key)); i >= 0 {
		return indexToLineNum(s, i)
	}
	if i := strings.Index(s, key); i >= 0 {
		return indexToLineNum(s, i)
	}
	return 1 // Fall back to top of file.
}

func indexToLineNum(s string, offset int) int {
	s = s[:offset]
	return strings.Count(s, "\n") + 1
}
