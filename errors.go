// Package wings generates watertight binary STL surface meshes of wings
// from a planform and an aerofoil family.
//
// The pipeline lives in the sub-packages:
//
//	chord   - clustered chordwise sample coordinates
//	profile - planform and aerofoil providers
//	wing    - aerofoil placement and span-wise stacking
//	mesh    - triangle connectivity and end caps
//	stl     - binary STL output
//	xyz     - plain-text point output
//	config  - JSON wing descriptions
//
// This package holds the error values shared by all of them.
package wings

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig reports a caller or provider configuration problem,
	// e.g. a nil provider or an odd number of chordwise points.
	ErrConfig = errors.New("configuration error")

	// ErrRange reports a normalized query parameter outside [0,1].
	ErrRange = errors.New("range error")

	// ErrGeometry reports geometry that cannot be meshed or written,
	// e.g. a zero-area triangle.
	ErrGeometry = errors.New("geometry error")
)

// RangeError names a normalized parameter and its offending value.
type RangeError struct {
	Param string
	Value float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v=%v outside [0,1]", e.Param, e.Value)
}

// Is reports whether target is ErrRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

// CheckUnit returns a *RangeError if v is outside [0,1] (or NaN).
func CheckUnit(param string, v float64) error {
	if !(v >= 0 && v <= 1) {
		return &RangeError{Param: param, Value: v}
	}
	return nil
}
