// Package wing places normalized aerofoil sections onto a planform and
// stacks them span-wise into a single row-major point buffer.
//
// The point at chordwise index i (0-based) of span station j lives at
// buffer index j*NChord + i.
package wing

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/gmlewis/wings"
	"github.com/gmlewis/wings/profile"
	"gonum.org/v1/gonum/floats"
)

// Options controls wing sampling.
type Options struct {
	Xi0, Xi1 float64 // span interval, within [0,1]
	NChord   int     // points per section loop; even, at least 4
	NSpan    int     // span stations; at least 2
}

// DefaultOptions samples the full span with 100 chordwise points and
// 50 span stations.
func DefaultOptions() Options {
	return Options{Xi0: 0, Xi1: 1, NChord: 100, NSpan: 50}
}

// Validate checks the options without touching any provider.
func (o Options) Validate() error {
	if err := wings.CheckUnit("xi0", o.Xi0); err != nil {
		return err
	}
	if err := wings.CheckUnit("xi1", o.Xi1); err != nil {
		return err
	}
	if o.Xi0 >= o.Xi1 {
		return fmt.Errorf("%w: span interval [%v,%v] is empty", wings.ErrConfig, o.Xi0, o.Xi1)
	}
	if o.NChord < 4 || o.NChord%2 != 0 {
		return fmt.Errorf("%w: nchord must be even and at least 4, got %v", wings.ErrConfig, o.NChord)
	}
	if o.NSpan < 2 {
		return fmt.Errorf("%w: nspan must be at least 2, got %v", wings.ErrConfig, o.NSpan)
	}
	return nil
}

// Stations returns n span stations uniformly spaced over [xi0, xi1],
// including both ends.
func Stations(xi0, xi1 float64, n int) []float64 {
	if n < 2 {
		return []float64{xi0}
	}
	xis := floats.Span(make([]float64, n), xi0, xi1)
	xis[n-1] = xi1
	return xis
}

// Generate samples the wing described by pl and af. A nil opts uses
// DefaultOptions. The result always holds NChord*NSpan points.
func Generate(pl profile.Planform, af profile.Aerofoil, opts *Options) ([]profile.Point, error) {
	if pl == nil {
		return nil, fmt.Errorf("%w: nil planform", wings.ErrConfig)
	}
	if af == nil {
		return nil, fmt.Errorf("%w: nil aerofoil", wings.ErrConfig)
	}
	if opts == nil {
		o := DefaultOptions()
		opts = &o
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	n := opts.NChord
	xis := Stations(opts.Xi0, opts.Xi1, opts.NSpan)
	pts := make([]profile.Point, n*len(xis))
	errs := make([]error, len(xis))

	// Each station writes only its own slice of pts.
	workers := runtime.NumCPU()
	if workers > len(xis) {
		workers = len(xis)
	}
	ch := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range ch {
				errs[j] = placeStation(pts[j*n:(j+1)*n], pl, af, xis[j])
			}
		}()
	}
	for j := range xis {
		ch <- j
	}
	close(ch)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return pts, nil
}

func placeStation(dst []profile.Point, pl profile.Planform, af profile.Aerofoil, xi float64) error {
	loop := af.Loop(xi, len(dst))
	if len(loop) != len(dst) {
		return fmt.Errorf("%w: aerofoil returned %v points at xi=%v, want %v", wings.ErrConfig, len(loop), xi, len(dst))
	}
	copy(dst, Place(pl, xi, loop))
	return nil
}
