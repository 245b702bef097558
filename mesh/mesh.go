// Package mesh derives triangle connectivity from the implicit grid of a
// wing point buffer.
//
// The buffer is treated as nspan rows of nchord points. Each row is a
// closed loop; rows are joined into a surface and the first and last
// rows are closed with end caps, giving a watertight mesh.
package mesh

import (
	"fmt"

	"github.com/gmlewis/wings"
)

// Tri holds three one-based indices into a wing point buffer.
type Tri [3]int

// Zero returns the zero-based indices of t.
func (t Tri) Zero() (a, b, c int) {
	return t[0] - 1, t[1] - 1, t[2] - 1
}

// Conns returns the surface triangles joining adjacent span stations,
// two per quad, in station order then chordwise order. The last quad of
// each row closes the loop back onto its first point.
func Conns(nchord, nspan int) ([]Tri, error) {
	if nchord < 3 {
		return nil, fmt.Errorf("%w: nchord must be at least 3, got %v", wings.ErrConfig, nchord)
	}
	if nspan < 2 {
		return nil, fmt.Errorf("%w: nspan must be at least 2, got %v", wings.ErrConfig, nspan)
	}

	n := nchord
	tris := make([]Tri, 0, 2*n*(nspan-1))
	for j := 1; j < nspan; j++ {
		for i := 1; i <= n; i++ {
			a := i + (j-1)*n
			if i < n {
				tris = append(tris,
					Tri{a, a + n, a + n + 1},
					Tri{a + n + 1, a + 1, a},
				)
				continue
			}
			// seam
			tris = append(tris,
				Tri{a, a + n, j*n + 1},
				Tri{j*n + 1, (j-1)*n + 1, a},
			)
		}
	}
	return tris, nil
}

// Caps returns the root cap followed by the tip cap. Each cap pairs
// upper-surface index i with its lower-surface mirror nchord+1-i and
// fills the nchord/2-1 quads between consecutive pairs.
func Caps(nchord, nspan int) ([]Tri, error) {
	if nchord < 4 || nchord%2 != 0 {
		return nil, fmt.Errorf("%w: end caps need an even nchord of at least 4, got %v", wings.ErrConfig, nchord)
	}
	if nspan < 2 {
		return nil, fmt.Errorf("%w: nspan must be at least 2, got %v", wings.ErrConfig, nspan)
	}

	n := nchord
	quads := n/2 - 1
	tris := make([]Tri, 0, 4*quads)
	for i := 1; i <= quads; i++ {
		m := n + 1 - i
		tris = append(tris,
			Tri{i, i + 1, m},
			Tri{i + 1, m - 1, m},
		)
	}
	off := (nspan - 1) * n
	for i := 1; i <= quads; i++ {
		m := n + 1 - i
		tris = append(tris,
			Tri{off + i, off + m, off + i + 1},
			Tri{off + i + 1, off + m, off + m - 1},
		)
	}
	return tris, nil
}

// Triangles returns the full watertight mesh: Conns followed by Caps.
func Triangles(nchord, nspan int) ([]Tri, error) {
	surface, err := Conns(nchord, nspan)
	if err != nil {
		return nil, err
	}
	caps, err := Caps(nchord, nspan)
	if err != nil {
		return nil, err
	}
	return append(surface, caps...), nil
}

// Len returns len(Triangles(nchord, nspan)) without building it.
func Len(nchord, nspan int) int {
	return 2*nchord*(nspan-1) + 2*(nchord-2)
}
