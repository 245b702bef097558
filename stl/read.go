package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Solid is a parsed binary STL file.
type Solid struct {
	Header [headerSize]byte
	Tris   []Tri
}

// Read parses a binary STL stream.
func Read(r io.Reader) (*Solid, error) {
	var header struct {
		H    [headerSize]byte
		NTri uint32
	}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	n := int(header.NTri)
	s := &Solid{Header: header.H, Tris: make([]Tri, 0, min(n, bufSize))}
	for i := 0; i < n; i++ {
		var t Tri
		if err := binary.Read(r, binary.LittleEndian, &t); err != nil {
			return nil, fmt.Errorf("read triangle #%v of %v: %w", i, n, err)
		}
		s.Tris = append(s.Tris, t)
	}
	return s, nil
}

// ReadFile parses the binary STL file filename.
func ReadFile(filename string) (*Solid, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(bufio.NewReader(f))
}
