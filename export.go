package poisson

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"github.com/voidshard/poisson/internal/encoding"
)

const (
	// magic bytes at the start of the binary format
	binaryMagic = "PDS1"

	headerSize = 4 + 8 + 8 + 1 + 4 + 4
	pointSize  = 8 + 8 + 8 + 4 + 4 + 1

	flagInactive = 1 << 0
)

// ErrBadEncoding implies binary data isn't something we wrote, or a
// result holds values the binary format can't carry.
var ErrBadEncoding = errors.New("bad point encoding")

// JSON returns the result as json.
func (r *Result) JSON() ([]byte, error) {
	return json.Marshal(r)
}

// SaveJSON writes a json file to the given path.
func (r *Result) SaveJSON(fpath string) error {
	data, err := r.JSON()
	if err != nil {
		return err
	}
	return os.WriteFile(fpath, data, 0644)
}

// WriteCSV writes one row per point (with a header row) to w.
func (r *Result) WriteCSV(w io.Writer) error {
	return gocsv.Marshal(&r.Points, w)
}

// SaveCSV writes the points as a csv file to the given path.
func (r *Result) SaveCSV(fpath string) error {
	buff := new(bytes.Buffer)
	err := r.WriteCSV(buff)
	if err != nil {
		return err
	}
	return os.WriteFile(fpath, buff.Bytes(), 0644)
}

// MarshalBinary encodes the result in a compact big-endian format
//
//	header: magic[4] region_size[f64] seed[2 x u32] state[u8] steps[u32] count[u32]
//	point:  x[f64] y[f64] radius[f64] value[u32] parent[u32] flags[u8]
//
// Value & parent are stored as two's complement 32 bit ints, anything
// that doesn't fit is an error rather than being truncated.
func (r *Result) MarshalBinary() ([]byte, error) {
	if int64(r.Steps) < 0 || int64(r.Steps) > math.MaxUint32 {
		return nil, errors.Wrapf(ErrBadEncoding, "steps %d overflow 32 bits", r.Steps)
	}
	if int64(len(r.Points)) > math.MaxUint32 {
		return nil, errors.Wrapf(ErrBadEncoding, "%d points overflow 32 bits", len(r.Points))
	}
	for i, p := range r.Points {
		if !fitsInt32(p.Value) || !fitsInt32(p.Parent) {
			return nil, errors.Wrapf(ErrBadEncoding, "point %d value %d or parent %d overflow 32 bits", i, p.Value, p.Parent)
		}
	}

	buff := bytes.NewBuffer(make([]byte, 0, headerSize+pointSize*len(r.Points)))

	buff.WriteString(binaryMagic)
	buff.Write(encoding.ToBytes64(r.RegionSize))
	buff.Write(encoding.ToBytes32(uint32(uint64(r.Seed) >> 32)))
	buff.Write(encoding.ToBytes32(uint32(r.Seed)))
	buff.Write(encoding.ToBytes8(uint8(r.State)))
	buff.Write(encoding.ToBytes32(uint32(r.Steps)))
	buff.Write(encoding.ToBytes32(uint32(len(r.Points))))

	for _, p := range r.Points {
		buff.Write(encoding.ToBytes64(p.X))
		buff.Write(encoding.ToBytes64(p.Y))
		buff.Write(encoding.ToBytes64(p.Radius))
		buff.Write(encoding.ToBytes32(uint32(int32(p.Value))))
		buff.Write(encoding.ToBytes32(uint32(int32(p.Parent))))

		flags := uint8(0)
		if p.Inactive {
			flags |= flagInactive
		}
		buff.Write(encoding.ToBytes8(flags))
	}

	return buff.Bytes(), nil
}

// fitsInt32 returns if v survives a round trip through an int32
func fitsInt32(v int) bool {
	return int64(v) >= math.MinInt32 && int64(v) <= math.MaxInt32
}

// UnmarshalBinary decodes data written by MarshalBinary into r.
func (r *Result) UnmarshalBinary(data []byte) error {
	if len(data) < headerSize || string(data[:4]) != binaryMagic {
		return errors.Wrap(ErrBadEncoding, "missing header")
	}

	off := 4
	next := func(n int) []byte {
		b := data[off : off+n]
		off += n
		return b
	}

	regionSize := encoding.FromBytes64(next(8))
	hi := uint64(encoding.FromBytes32(next(4)))
	lo := uint64(encoding.FromBytes32(next(4)))
	state := State(encoding.FromBytes8(next(1)))
	steps := int(encoding.FromBytes32(next(4)))
	count := int(encoding.FromBytes32(next(4)))

	if len(data)-off != count*pointSize {
		return errors.Wrapf(ErrBadEncoding, "expected %d points (%d bytes), got %d bytes", count, count*pointSize, len(data)-off)
	}

	points := make([]Point, count)
	for i := range points {
		points[i] = Point{
			X:      encoding.FromBytes64(next(8)),
			Y:      encoding.FromBytes64(next(8)),
			Radius: encoding.FromBytes64(next(8)),
			Value:  int(int32(encoding.FromBytes32(next(4)))),
			Parent: int(int32(encoding.FromBytes32(next(4)))),
		}
		points[i].Inactive = encoding.FromBytes8(next(1))&flagInactive != 0
	}

	r.Points = points
	r.Seed = int64(hi<<32 | lo)
	r.RegionSize = regionSize
	r.State = state
	r.Steps = steps
	return nil
}
