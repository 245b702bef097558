package stl

import (
	"fmt"
	"log"
	"math"

	"github.com/gmlewis/wings"
	"github.com/gmlewis/wings/mesh"
	"github.com/gmlewis/wings/profile"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Options controls facet generation.
type Options struct {
	// Scale multiplies every vertex coordinate. Zero means 1.
	Scale float64
	// Header is the 80-byte file header. Empty means DefaultHeader.
	Header string
	// DropDegenerate skips zero-area triangles instead of failing.
	DropDegenerate bool
}

func (o *Options) scale() float64 {
	if o == nil || o.Scale == 0 {
		return 1
	}
	return o.Scale
}

func (o *Options) header() string {
	if o == nil || o.Header == "" {
		return DefaultHeader
	}
	return o.Header
}

// DegenerateError reports a zero-area triangle, whose normal is undefined.
type DegenerateError struct {
	Index int      // position in mesh.Triangles
	Tri   mesh.Tri // one-based point indices
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("triangle #%v %v has zero area", e.Index, e.Tri)
}

// Is reports whether target is wings.ErrGeometry.
func (e *DegenerateError) Is(target error) bool {
	return target == wings.ErrGeometry
}

// Normal returns the unit normal of (v2-v1)x(v3-v1). It returns false
// when the triangle has zero area or non-finite coordinates.
func Normal(v1, v2, v3 mgl64.Vec3) (mgl64.Vec3, bool) {
	n := v2.Sub(v1).Cross(v3.Sub(v1))
	l := n.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return mgl64.Vec3{}, false
	}
	return n.Mul(1 / l), true
}

// vertex maps a wing point into the facet frame: X spanwise, Y chordwise,
// Z height. With mesh winding this frame gives outward-facing normals.
func vertex(p profile.Point, scale float64) mgl64.Vec3 {
	return mgl64.Vec3{p[1] * scale, p[0] * scale, p[2] * scale}
}

func vec32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

// Facets returns the STL triangles of the watertight mesh over pts, a
// row-major buffer of nchord points per span station.
func Facets(pts []profile.Point, nchord int, opts *Options) ([]Tri, error) {
	scale := opts.scale()
	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("%w: scale must be positive, got %v", wings.ErrConfig, scale)
	}
	if nchord <= 0 || len(pts)%nchord != 0 {
		return nil, fmt.Errorf("%w: %v points do not form rows of nchord=%v", wings.ErrConfig, len(pts), nchord)
	}

	tris, err := mesh.Triangles(nchord, len(pts)/nchord)
	if err != nil {
		return nil, err
	}

	facets := make([]Tri, 0, len(tris))
	var dropped int
	for i, tri := range tris {
		a, b, c := tri.Zero()
		v1, v2, v3 := vertex(pts[a], scale), vertex(pts[b], scale), vertex(pts[c], scale)
		n, ok := Normal(v1, v2, v3)
		if !ok {
			if opts != nil && opts.DropDegenerate {
				dropped++
				continue
			}
			return nil, &DegenerateError{Index: i, Tri: tri}
		}
		facets = append(facets, Tri{N: vec32(n), V1: vec32(v1), V2: vec32(v2), V3: vec32(v3)})
	}

	if dropped > 0 {
		log.Printf("stl: dropped %v zero-area triangles of %v", dropped, len(tris))
	}
	return facets, nil
}
