// Package stl provides a streaming binary STL file writer and reader,
// and turns wing point buffers into STL facets.
//
// Facet vertices are written as (span, chordwise, height): the first two
// coordinates of each wing point are swapped relative to the point
// buffer and the xyz export, so that the mesh winding faces outward.
package stl

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/gmlewis/wings"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	headerSize = 80
	bufSize    = 10000

	// DefaultHeader is written when no header is supplied.
	DefaultHeader = "binary STL wing surface mesh"
)

// Client is a streaming binary STL file writer client.
type Client struct {
	wg sync.WaitGroup // ensures file is closed
	ch chan Tri

	mu  sync.RWMutex
	err error
}

// Tri represents an STL triangle.
type Tri struct {
	// Normal plus three vertex triplets: {x,y,z}
	N, V1, V2, V3 mgl32.Vec3
	_             uint16 // unused attribute byte count
}

// New creates a new streaming binary STL file writer.
// The header must fit in 80 bytes and must not begin with "solid",
// which readers take as the start of an ASCII STL file.
func New(filename, header string) (*Client, error) {
	h, err := encodeHeader(header)
	if err != nil {
		return nil, err
	}

	out, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	// Write header
	hdr := struct {
		H [headerSize]uint8
		_ uint32 // count will be overwritten on channel close.
	}{H: h}
	if err := binary.Write(out, binary.LittleEndian, &hdr); err != nil {
		out.Close()
		return nil, fmt.Errorf("error writing header: %w", err)
	}

	ch := make(chan Tri, bufSize)
	c := &Client{
		ch: ch,
	}
	c.start(out)
	return c, nil
}

func encodeHeader(header string) ([headerSize]uint8, error) {
	var h [headerSize]uint8
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(header)), "solid") {
		return h, fmt.Errorf(`%w: binary STL header must not begin with "solid": %q`, wings.ErrConfig, header)
	}
	if len(header) > headerSize {
		return h, fmt.Errorf("%w: STL header is %v bytes, max %v", wings.ErrConfig, len(header), headerSize)
	}
	copy(h[:], header)
	return h, nil
}

func (c *Client) start(out writeSeekCloser) {
	c.wg.Add(1)
	go func() {
		err := writer(out, c.ch)
		c.mu.Lock()
		c.err = err
		c.mu.Unlock()
		c.wg.Done()
	}()
}

// Write writes a triangle to the STL file.
func (c *Client) Write(t *Tri) error {
	c.ch <- *t
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

// Close finalizes the STL file.
func (c *Client) Close() error {
	close(c.ch)
	c.wg.Wait()
	return c.err
}

type writeSeekCloser interface {
	io.Writer
	io.Seeker
	io.Closer
}

// writer always closes out. After a failed write it keeps draining ch
// so that callers of Write never block.
func writer(out writeSeekCloser, ch <-chan Tri) (err error) {
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close: %w", cerr)
		}
	}()

	var count uint32
	for t := range ch {
		if err != nil {
			continue
		}
		if werr := binary.Write(out, binary.LittleEndian, &t); werr != nil {
			err = fmt.Errorf("write triangle #%v: %w", count, werr)
			continue
		}
		count++
	}
	if err != nil {
		return err
	}

	if _, err := out.Seek(headerSize, io.SeekStart); err != nil {
		return fmt.Errorf("seek: %w", err)
	}

	if err := binary.Write(out, binary.LittleEndian, &count); err != nil {
		return fmt.Errorf("write count %v: %w", count, err)
	}

	return nil
}
