package zipper

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/gmlewis/wings"
	"github.com/gmlewis/wings/mesh"
	"github.com/gmlewis/wings/profile"
	"github.com/gmlewis/wings/stl"
	"github.com/gmlewis/wings/wing"
)

func TestWrite(t *testing.T) {
	const nchord, nspan = 10, 4
	pts, err := wing.Generate(profile.Rectangular{ChordLength: 1}, profile.FlatPlate{Thickness: 0.1},
		&wing.Options{Xi1: 1, NChord: nchord, NSpan: nspan})
	if err != nil {
		t.Fatalf("wing.Generate: %v", err)
	}

	tests := []struct {
		name  string
		opts  *Options
		names []string
	}{
		{name: "defaults", names: []string{"wing.stl", "wing.xyz"}},
		{name: "stl only", opts: &Options{NoXYZ: true}, names: []string{"wing.stl"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zipName := filepath.Join(t.TempDir(), "wing.zip")
			if err := Write(zipName, pts, nchord, tt.opts); err != nil {
				t.Fatalf("Write: %v", err)
			}

			r, err := zip.OpenReader(zipName)
			if err != nil {
				t.Fatalf("zip.OpenReader: %v", err)
			}
			defer r.Close()

			var names []string
			for _, f := range r.File {
				names = append(names, f.Name)
			}
			sort.Strings(names)
			if len(names) != len(tt.names) {
				t.Fatalf("entries = %v, want %v", names, tt.names)
			}
			for i := range names {
				if names[i] != tt.names[i] {
					t.Errorf("entries = %v, want %v", names, tt.names)
				}
			}

			rc, err := r.File[0].Open()
			if err != nil {
				t.Fatal(err)
			}
			defer rc.Close()
			s, err := stl.Read(rc)
			if err != nil {
				t.Fatalf("stl.Read: %v", err)
			}
			if got, want := len(s.Tris), mesh.Len(nchord, nspan); got != want {
				t.Errorf("got %v triangles, want %v", got, want)
			}
		})
	}
}

func TestWriteDegenerate(t *testing.T) {
	const nchord, nspan = 10, 3
	pts, err := wing.Generate(profile.Rectangular{ChordLength: 1}, profile.NACA4{T: 0.12},
		&wing.Options{Xi1: 1, NChord: nchord, NSpan: nspan})
	if err != nil {
		t.Fatalf("wing.Generate: %v", err)
	}

	zipName := filepath.Join(t.TempDir(), "naca.zip")
	if err := Write(zipName, pts, nchord, nil); !errors.Is(err, wings.ErrGeometry) {
		t.Fatalf("Write = %v, want ErrGeometry", err)
	}
	if _, err := os.Stat(zipName); !os.IsNotExist(err) {
		t.Errorf("os.Stat = %v, want no output file", err)
	}
}
