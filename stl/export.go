package stl

import (
	"encoding/binary"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gmlewis/wings/profile"
)

// Filename returns name with a ".stl" extension, appending one if missing.
func Filename(name string) string {
	if strings.EqualFold(filepath.Ext(name), ".stl") {
		return name
	}
	return name + ".stl"
}

// Export writes the watertight mesh over pts to a binary STL file.
//
// All facets are computed before the file is created, so a degenerate
// triangle or bad option leaves no output behind.
func Export(filename string, pts []profile.Point, nchord int, opts *Options) error {
	facets, err := Facets(pts, nchord, opts)
	if err != nil {
		return err
	}

	c, err := New(Filename(filename), opts.header())
	if err != nil {
		return fmt.Errorf("stl.New: %w", err)
	}
	for i := range facets {
		if err := c.Write(&facets[i]); err != nil {
			c.Close()
			return err
		}
	}
	return c.Close()
}

// Encode writes facets as a complete binary STL stream to w. Unlike
// Client it needs no seeking, since the triangle count is known.
func Encode(w io.Writer, header string, facets []Tri) error {
	h, err := encodeHeader(header)
	if err != nil {
		return err
	}
	hdr := struct {
		H    [headerSize]uint8
		NTri uint32
	}{H: h, NTri: uint32(len(facets))}
	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, facets); err != nil {
		return fmt.Errorf("write %v triangles: %w", len(facets), err)
	}
	return nil
}
