package sac

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// Read decodes a SAC file. Byte order is detected from the header version
// word, which must decode to a known version in exactly one byte order.
func Read(r io.Reader) (*File, error) {
	raw := make([]byte, headerBytes)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("sac: error reading header: %w", err)
	}

	order, err := detectByteOrder(raw)
	if err != nil {
		return nil, err
	}

	f := &File{}
	decodeHeader(&f.Header, raw, order)

	if f.FileType() != FileTypeTimeSeries {
		return nil, fmt.Errorf("sac: unsupported file type %v", f.FileType())
	}
	npts := f.Npts()
	if npts < 0 {
		return nil, fmt.Errorf("sac: invalid npts %d", npts)
	}

	data := make([]byte, 4*npts)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("sac: error reading %d data samples: %w", npts, err)
	}
	f.Data = make([]float32, npts)
	for i := range f.Data {
		f.Data[i] = math.Float32frombits(order.Uint32(data[4*i:]))
	}
	return f, nil
}

// ReadFile decodes the SAC file at path.
func ReadFile(path string) (*File, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sac: %w", err)
	}
	defer fd.Close()
	return Read(fd)
}

func detectByteOrder(raw []byte) (binary.ByteOrder, error) {
	versionOK := func(v int32) bool {
		return v == HeaderVersion6 || v == HeaderVersion7
	}
	le := int32(binary.LittleEndian.Uint32(raw[4*nvhdrWord:]))
	if versionOK(le) {
		return binary.LittleEndian, nil
	}
	be := int32(binary.BigEndian.Uint32(raw[4*nvhdrWord:]))
	if versionOK(be) {
		return binary.BigEndian, nil
	}
	return nil, fmt.Errorf("sac: cannot determine byte order (nvhdr %d le / %d be)", le, be)
}

// decodeHeader walks the descriptor table, pulling each field out of the raw
// header at its fixed offset.
func decodeHeader(h *Header, raw []byte, order binary.ByteOrder) {
	for _, d := range headerFields {
		off := 4 * d.word
		switch d.kind {
		case kindFloat:
			h.floats[d.word] = math.Float32frombits(order.Uint32(raw[off:]))
		case kindInt, kindEnum, kindLogical:
			h.ints[d.word-floatWords] = int32(order.Uint32(raw[off:]))
		case kindString8, kindString16:
			coff, size := charRange(d)
			copy(h.chars[coff:coff+size], raw[off:off+size])
		}
	}
}
