package sac

import (
	"fmt"
	"math"
	"time"

	"github.com/cwbudde/algo-seis/trace"
)

// File is a decoded SAC file: header plus the sample data section.
type File struct {
	Header
	Data []float32
}

// New returns an empty evenly sampled time-series file with a
// sentinel-initialized header.
func New() *File {
	f := &File{Header: NewHeader()}
	f.SetFileType(FileTypeTimeSeries)
	f.SetLeven(true)
	f.SetNpts(0)
	return f
}

// FromTrace populates a new File from any seismogram: delta, npts, begin and
// end offsets, dependent-variable extrema, and the data section. A non-zero
// begin time is stored as the reference time.
func FromTrace(s trace.Seismogram) *File {
	f := New()
	data := s.Data()

	f.SetDelta(s.Delta())
	f.SetNpts(len(data))

	f.Data = make([]float32, len(data))
	depmin, depmax, depmen := math.Inf(1), math.Inf(-1), 0.0
	for i, v := range data {
		f.Data[i] = float32(v)
		depmin = math.Min(depmin, v)
		depmax = math.Max(depmax, v)
		depmen += v
	}
	// An empty seismogram keeps b, e and the extrema at their sentinels.
	if len(data) > 0 {
		f.SetBegin(0)
		f.SetFloat("e", s.Delta()*float64(len(data)-1))
		f.SetFloat("depmin", depmin)
		f.SetFloat("depmax", depmax)
		f.SetFloat("depmen", depmen/float64(len(data)))
	}

	if begin := s.Begin(); !begin.IsZero() {
		f.SetReferenceTime(begin)
		f.SetInt("iztype", int32(ZeroTimeBegin))
	}
	return f
}

// SetReferenceTime stores t in the nz* reference time fields.
func (f *File) SetReferenceTime(t time.Time) {
	t = t.UTC()
	f.SetInt("nzyear", int32(t.Year()))
	f.SetInt("nzjday", int32(t.YearDay()))
	f.SetInt("nzhour", int32(t.Hour()))
	f.SetInt("nzmin", int32(t.Minute()))
	f.SetInt("nzsec", int32(t.Second()))
	f.SetInt("nzmsec", int32(t.Nanosecond()/1e6))
}

// ReferenceTime reassembles the nz* fields, or the zero time when they are
// unset.
func (f *File) ReferenceTime() time.Time {
	year, _ := f.Int("nzyear")
	jday, _ := f.Int("nzjday")
	if year == UndefinedInt || jday == UndefinedInt {
		return time.Time{}
	}
	hour, _ := f.Int("nzhour")
	min, _ := f.Int("nzmin")
	sec, _ := f.Int("nzsec")
	msec, _ := f.Int("nzmsec")
	day := time.Date(int(year), time.January, 1, int(hour), int(min), int(sec), int(msec)*1e6, time.UTC)
	return day.AddDate(0, 0, int(jday)-1)
}

// Trace converts the data section to a [trace.Trace]. The trace begin time
// is the reference time shifted by the b offset, when both are set.
func (f *File) Trace() (*trace.Trace, error) {
	if f.FileType() != FileTypeTimeSeries {
		return nil, fmt.Errorf("sac: cannot convert %v file to trace", f.FileType())
	}

	data := make([]float64, len(f.Data))
	for i, v := range f.Data {
		data[i] = float64(v)
	}

	var opts []trace.TraceOption
	if ref := f.ReferenceTime(); !ref.IsZero() {
		b := f.Begin()
		if b == Undefined {
			b = 0
		}
		opts = append(opts, trace.WithBegin(ref.Add(time.Duration(b*float64(time.Second)))))
	}
	return trace.New(data, f.Delta(), opts...)
}
