package sac

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// Write encodes the file little-endian: the 632-byte header followed by the
// data section. Npts must match the data length.
func (f *File) Write(w io.Writer) error {
	if f.Npts() != len(f.Data) {
		return fmt.Errorf("sac: npts %d does not match data length %d", f.Npts(), len(f.Data))
	}

	order := binary.LittleEndian
	raw := make([]byte, headerBytes+4*len(f.Data))
	encodeHeader(&f.Header, raw, order)
	for i, v := range f.Data {
		order.PutUint32(raw[headerBytes+4*i:], math.Float32bits(v))
	}

	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("sac: error writing file: %w", err)
	}
	return nil
}

// WriteFile encodes the file to path, replacing any existing file.
func (f *File) WriteFile(path string) error {
	fd, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sac: %w", err)
	}
	if err := f.Write(fd); err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

// encodeHeader walks the descriptor table, placing each field into the raw
// header at its fixed offset.
func encodeHeader(h *Header, raw []byte, order binary.ByteOrder) {
	for _, d := range headerFields {
		off := 4 * d.word
		switch d.kind {
		case kindFloat:
			order.PutUint32(raw[off:], math.Float32bits(h.floats[d.word]))
		case kindInt, kindEnum, kindLogical:
			order.PutUint32(raw[off:], uint32(h.ints[d.word-floatWords]))
		case kindString8, kindString16:
			coff, size := charRange(d)
			copy(raw[off:off+size], h.chars[coff:coff+size])
		}
	}
}
