// Package zipper writes the exports of a wing into a single ZIP file.
package zipper

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gmlewis/wings/profile"
	"github.com/gmlewis/wings/stl"
	"github.com/gmlewis/wings/xyz"
)

// Options controls the contents of the ZIP file.
type Options struct {
	STL   *stl.Options // STL facet options; nil means defaults
	Delim string       // xyz delimiter; "" means xyz.DefaultDelim
	NoXYZ bool         // omit the plain-text point file
}

// Write writes "<base>.stl" and "<base>.xyz" entries for the wing in pts
// to zipName, where base is the name of zipName without its extension.
//
// As with stl.Export, all facets are computed before zipName is created.
func Write(zipName string, pts []profile.Point, nchord int, opts *Options) (err error) {
	if opts == nil {
		opts = &Options{}
	}
	facets, err := stl.Facets(pts, nchord, opts.STL)
	if err != nil {
		return err
	}
	header := stl.DefaultHeader
	if opts.STL != nil && opts.STL.Header != "" {
		header = opts.STL.Header
	}

	zf, err := os.Create(zipName)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	defer func() {
		if cerr := zf.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("Unable to close ZIP file: %w", cerr)
		}
	}()
	w := zip.NewWriter(zf)

	base := filepath.Base(zipName)
	base = base[:len(base)-len(filepath.Ext(base))]
	now := time.Now()

	f, err := w.CreateHeader(&zip.FileHeader{
		Name:     base + ".stl",
		Comment:  fmt.Sprintf("%v triangles", len(facets)),
		Method:   zip.Deflate,
		Modified: now,
	})
	if err != nil {
		return fmt.Errorf("Unable to create ZIP entry %q: %w", base+".stl", err)
	}
	if err := stl.Encode(f, header, facets); err != nil {
		return fmt.Errorf("stl.Encode: %w", err)
	}

	if !opts.NoXYZ {
		f, err := w.CreateHeader(&zip.FileHeader{
			Name:     base + ".xyz",
			Comment:  fmt.Sprintf("%v points", len(pts)),
			Method:   zip.Deflate,
			Modified: now,
		})
		if err != nil {
			return fmt.Errorf("Unable to create ZIP entry %q: %w", base+".xyz", err)
		}
		if err := xyz.Encode(f, pts, opts.Delim); err != nil {
			return fmt.Errorf("xyz.Encode: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("Unable to close ZIP writer: %w", err)
	}
	return nil
}
