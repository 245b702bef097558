// Package xyz writes wing point buffers as plain text, one point per line.
package xyz

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/gmlewis/wings/profile"
)

// DefaultDelim separates the coordinates of a point.
const DefaultDelim = " "

// Encode writes one line per point to w, joining the chordwise, spanwise
// and height coordinates with delim ("" means DefaultDelim).
func Encode(w io.Writer, pts []profile.Point, delim string) error {
	if delim == "" {
		delim = DefaultDelim
	}
	bw := bufio.NewWriter(w)
	var buf []byte
	for i, p := range pts {
		buf = buf[:0]
		for j, v := range p {
			if j > 0 {
				buf = append(buf, delim...)
			}
			buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("write point #%v: %w", i, err)
		}
	}
	return bw.Flush()
}

// Write writes pts to filename. See Encode.
func Write(filename string, pts []profile.Point, delim string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %v: %w", filename, cerr)
		}
	}()
	return Encode(f, pts, delim)
}
