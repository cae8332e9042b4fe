package sac

import (
	"fmt"
	"strings"
)

const (
	headerBytes = 632
	floatWords  = 70
	intWords    = 40
	charWords   = 48
	charOffset  = floatWords + intWords // first string word

	// nvhdrWord locates the header version used for byte-order detection.
	nvhdrWord = 76
)

// SAC sentinel values for unset header fields.
const (
	Undefined       float64 = -12345
	UndefinedInt    int32   = -12345
	UndefinedString         = "-12345"
)

// Header version numbers accepted on read.
const (
	HeaderVersion6 int32 = 6
	HeaderVersion7 int32 = 7
)

type fieldKind int

const (
	kindFloat fieldKind = iota
	kindInt
	kindEnum
	kindLogical
	kindString8
	kindString16
)

// fieldDesc places one named header field: 4-byte word offset from the start
// of the header plus the value kind. Strings occupy 2 words (4 for kevnm).
type fieldDesc struct {
	name string
	word int
	kind fieldKind
}

// headerFields is the complete SAC header layout. Field order follows the
// on-disk word order; unused words are named so every byte round-trips.
var headerFields = []fieldDesc{
	{"delta", 0, kindFloat}, {"depmin", 1, kindFloat}, {"depmax", 2, kindFloat},
	{"scale", 3, kindFloat}, {"odelta", 4, kindFloat},
	{"b", 5, kindFloat}, {"e", 6, kindFloat}, {"o", 7, kindFloat}, {"a", 8, kindFloat},
	{"fmt", 9, kindFloat},
	{"t0", 10, kindFloat}, {"t1", 11, kindFloat}, {"t2", 12, kindFloat},
	{"t3", 13, kindFloat}, {"t4", 14, kindFloat}, {"t5", 15, kindFloat},
	{"t6", 16, kindFloat}, {"t7", 17, kindFloat}, {"t8", 18, kindFloat},
	{"t9", 19, kindFloat}, {"f", 20, kindFloat},
	{"resp0", 21, kindFloat}, {"resp1", 22, kindFloat}, {"resp2", 23, kindFloat},
	{"resp3", 24, kindFloat}, {"resp4", 25, kindFloat}, {"resp5", 26, kindFloat},
	{"resp6", 27, kindFloat}, {"resp7", 28, kindFloat}, {"resp8", 29, kindFloat},
	{"resp9", 30, kindFloat},
	{"stla", 31, kindFloat}, {"stlo", 32, kindFloat}, {"stel", 33, kindFloat},
	{"stdp", 34, kindFloat},
	{"evla", 35, kindFloat}, {"evlo", 36, kindFloat}, {"evel", 37, kindFloat},
	{"evdp", 38, kindFloat}, {"mag", 39, kindFloat},
	{"user0", 40, kindFloat}, {"user1", 41, kindFloat}, {"user2", 42, kindFloat},
	{"user3", 43, kindFloat}, {"user4", 44, kindFloat}, {"user5", 45, kindFloat},
	{"user6", 46, kindFloat}, {"user7", 47, kindFloat}, {"user8", 48, kindFloat},
	{"user9", 49, kindFloat},
	{"dist", 50, kindFloat}, {"az", 51, kindFloat}, {"baz", 52, kindFloat},
	{"gcarc", 53, kindFloat}, {"sb", 54, kindFloat}, {"sdelta", 55, kindFloat},
	{"depmen", 56, kindFloat}, {"cmpaz", 57, kindFloat}, {"cmpinc", 58, kindFloat},
	{"xminimum", 59, kindFloat}, {"xmaximum", 60, kindFloat},
	{"yminimum", 61, kindFloat}, {"ymaximum", 62, kindFloat},
	{"unused6", 63, kindFloat}, {"unused7", 64, kindFloat}, {"unused8", 65, kindFloat},
	{"unused9", 66, kindFloat}, {"unused10", 67, kindFloat}, {"unused11", 68, kindFloat},
	{"unused12", 69, kindFloat},

	{"nzyear", 70, kindInt}, {"nzjday", 71, kindInt}, {"nzhour", 72, kindInt},
	{"nzmin", 73, kindInt}, {"nzsec", 74, kindInt}, {"nzmsec", 75, kindInt},
	{"nvhdr", 76, kindInt}, {"norid", 77, kindInt}, {"nevid", 78, kindInt},
	{"npts", 79, kindInt}, {"nsnpts", 80, kindInt}, {"nwfid", 81, kindInt},
	{"nxsize", 82, kindInt}, {"nysize", 83, kindInt}, {"unused15", 84, kindInt},
	{"iftype", 85, kindEnum}, {"idep", 86, kindEnum}, {"iztype", 87, kindEnum},
	{"unused16", 88, kindInt}, {"iinst", 89, kindEnum}, {"istreg", 90, kindEnum},
	{"ievreg", 91, kindEnum}, {"ievtyp", 92, kindEnum}, {"iqual", 93, kindEnum},
	{"isynth", 94, kindEnum}, {"imagtyp", 95, kindEnum}, {"imagsrc", 96, kindEnum},
	{"unused17", 97, kindInt}, {"unused18", 98, kindInt}, {"unused19", 99, kindInt},
	{"unused20", 100, kindInt}, {"unused21", 101, kindInt}, {"unused22", 102, kindInt},
	{"unused23", 103, kindInt}, {"unused24", 104, kindInt},
	{"leven", 105, kindLogical}, {"lpspol", 106, kindLogical},
	{"lovrok", 107, kindLogical}, {"lcalda", 108, kindLogical},
	{"unused25", 109, kindInt},

	{"kstnm", 110, kindString8}, {"kevnm", 112, kindString16},
	{"khole", 116, kindString8}, {"ko", 118, kindString8}, {"ka", 120, kindString8},
	{"kt0", 122, kindString8}, {"kt1", 124, kindString8}, {"kt2", 126, kindString8},
	{"kt3", 128, kindString8}, {"kt4", 130, kindString8}, {"kt5", 132, kindString8},
	{"kt6", 134, kindString8}, {"kt7", 136, kindString8}, {"kt8", 138, kindString8},
	{"kt9", 140, kindString8}, {"kf", 142, kindString8},
	{"kuser0", 144, kindString8}, {"kuser1", 146, kindString8}, {"kuser2", 148, kindString8},
	{"kcmpnm", 150, kindString8}, {"knetwk", 152, kindString8},
	{"kdatrd", 154, kindString8}, {"kinst", 156, kindString8},
}

var fieldByName = func() map[string]fieldDesc {
	m := make(map[string]fieldDesc, len(headerFields))
	for _, d := range headerFields {
		m[d.name] = d
	}
	return m
}()

// FileType enumerates the SAC iftype header values.
type FileType int32

const (
	FileTypeTimeSeries FileType = 1 // ITIME: evenly sampled time series
	FileTypeRealImag   FileType = 2 // IRLIM: spectral, real/imaginary
	FileTypeAmpPhase   FileType = 3 // IAMPH: spectral, amplitude/phase
	FileTypeXY         FileType = 4 // IXY: general x-y pairs
)

// DepType enumerates the SAC idep header values.
type DepType int32

const (
	DepUnknown      DepType = 5 // IUNKN
	DepDisplacement DepType = 6 // IDISP, nm
	DepVelocity     DepType = 7 // IVEL, nm/s
	DepAcceleration DepType = 8 // IACC, nm/s/s
)

// ZeroTimeType enumerates the SAC iztype header values.
type ZeroTimeType int32

const (
	ZeroTimeBegin   ZeroTimeType = 9  // IB
	ZeroTimeGMTDay  ZeroTimeType = 10 // IDAY
	ZeroTimeOrigin  ZeroTimeType = 11 // IO
	ZeroTimeArrival ZeroTimeType = 12 // IA
)

var fileTypeNames = map[FileType]string{
	FileTypeTimeSeries: "ITIME",
	FileTypeRealImag:   "IRLIM",
	FileTypeAmpPhase:   "IAMPH",
	FileTypeXY:         "IXY",
}

func (t FileType) String() string {
	if s, ok := fileTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("FileType(%d)", int32(t))
}

var depTypeNames = map[DepType]string{
	DepUnknown:      "IUNKN",
	DepDisplacement: "IDISP",
	DepVelocity:     "IVEL",
	DepAcceleration: "IACC",
}

func (t DepType) String() string {
	if s, ok := depTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("DepType(%d)", int32(t))
}

// Header holds the decoded SAC header words. Named access goes through the
// descriptor table; typed convenience accessors cover the common fields.
type Header struct {
	floats [floatWords]float32
	ints   [intWords]int32
	chars  [charWords * 4]byte
}

// NewHeader returns a header with every field set to its SAC sentinel and
// the version word set to 6.
func NewHeader() Header {
	var h Header
	for i := range h.floats {
		h.floats[i] = float32(Undefined)
	}
	for i := range h.ints {
		h.ints[i] = UndefinedInt
	}
	for _, d := range headerFields {
		switch d.kind {
		case kindString8, kindString16:
			// Errors are impossible for table-sourced names.
			_ = h.SetString(d.name, UndefinedString)
		}
	}
	h.ints[nvhdrWord-floatWords] = HeaderVersion6
	return h
}

func lookupField(name string, kinds ...fieldKind) (fieldDesc, error) {
	d, ok := fieldByName[name]
	if !ok {
		return fieldDesc{}, fmt.Errorf("sac: unknown header field %q", name)
	}
	for _, k := range kinds {
		if d.kind == k {
			return d, nil
		}
	}
	return fieldDesc{}, fmt.Errorf("sac: header field %q has wrong kind", name)
}

// Float returns a named float header field.
func (h *Header) Float(name string) (float64, error) {
	d, err := lookupField(name, kindFloat)
	if err != nil {
		return 0, err
	}
	return float64(h.floats[d.word]), nil
}

// SetFloat sets a named float header field.
func (h *Header) SetFloat(name string, v float64) error {
	d, err := lookupField(name, kindFloat)
	if err != nil {
		return err
	}
	h.floats[d.word] = float32(v)
	return nil
}

// Int returns a named integer, enumerated, or logical header field.
func (h *Header) Int(name string) (int32, error) {
	d, err := lookupField(name, kindInt, kindEnum, kindLogical)
	if err != nil {
		return 0, err
	}
	return h.ints[d.word-floatWords], nil
}

// SetInt sets a named integer, enumerated, or logical header field.
func (h *Header) SetInt(name string, v int32) error {
	d, err := lookupField(name, kindInt, kindEnum, kindLogical)
	if err != nil {
		return err
	}
	h.ints[d.word-floatWords] = v
	return nil
}

// String returns a named string header field with padding removed, or the
// empty string when the field carries the SAC sentinel.
func (h *Header) String(name string) (string, error) {
	d, err := lookupField(name, kindString8, kindString16)
	if err != nil {
		return "", err
	}
	off, size := charRange(d)
	s := strings.TrimRight(string(h.chars[off:off+size]), " \x00")
	if s == UndefinedString {
		return "", nil
	}
	return s, nil
}

// SetString sets a named string header field, space-padded and truncated to
// the field width.
func (h *Header) SetString(name, value string) error {
	d, err := lookupField(name, kindString8, kindString16)
	if err != nil {
		return err
	}
	off, size := charRange(d)
	if len(value) > size {
		value = value[:size]
	}
	copy(h.chars[off:off+size], []byte(value+strings.Repeat(" ", size-len(value))))
	return nil
}

func charRange(d fieldDesc) (off, size int) {
	off = (d.word - charOffset) * 4
	size = 8
	if d.kind == kindString16 {
		size = 16
	}
	return off, size
}

// Delta returns the sampling interval in seconds.
func (h *Header) Delta() float64 { return float64(h.floats[0]) }

// SetDelta sets the sampling interval in seconds.
func (h *Header) SetDelta(v float64) { h.floats[0] = float32(v) }

// Npts returns the sample count.
func (h *Header) Npts() int { return int(h.ints[79-floatWords]) }

// SetNpts sets the sample count.
func (h *Header) SetNpts(n int) { h.ints[79-floatWords] = int32(n) }

// Nvhdr returns the header version.
func (h *Header) Nvhdr() int32 { return h.ints[nvhdrWord-floatWords] }

// Begin returns the record begin offset b in seconds relative to the
// reference time.
func (h *Header) Begin() float64 { return float64(h.floats[5]) }

// SetBegin sets the record begin offset in seconds.
func (h *Header) SetBegin(v float64) { h.floats[5] = float32(v) }

// FileType returns the iftype enumeration.
func (h *Header) FileType() FileType { return FileType(h.ints[85-floatWords]) }

// SetFileType sets the iftype enumeration.
func (h *Header) SetFileType(t FileType) { h.ints[85-floatWords] = int32(t) }

// DepType returns the idep enumeration.
func (h *Header) DepType() DepType { return DepType(h.ints[86-floatWords]) }

// SetDepType sets the idep enumeration.
func (h *Header) SetDepType(t DepType) { h.ints[86-floatWords] = int32(t) }

// Leven reports whether the record is flagged evenly sampled.
func (h *Header) Leven() bool { return h.ints[105-floatWords] == 1 }

// SetLeven flags the record as evenly or unevenly sampled.
func (h *Header) SetLeven(v bool) {
	if v {
		h.ints[105-floatWords] = 1
	} else {
		h.ints[105-floatWords] = 0
	}
}
