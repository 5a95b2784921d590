package pgz

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"

	"github.com/klauspost/compress/zlib"

	"github.com/rocketman768/GliderWeatherBot/grid"
)

const (
	// Magic opens every PGZ header line.
	Magic = "PGZ"
	// Ext is the file extension appended to archived RASP data files.
	Ext = ".pgz"
	// DefaultMaxValue is the declared maximum written by Encode.
	DefaultMaxValue uint64 = 1<<32 - 1
	// Level is the zlib compression level used by Encode.
	Level = zlib.BestCompression

	bytesPerSample = 4
)

// ErrDecompression indicates a payload that is not a valid zlib stream of
// exactly 4*width*height bytes.
var ErrDecompression = errors.New("pgz: payload does not decompress to the declared grid")

var headerPattern = regexp.MustCompile(`^PGZ (\d+) (\d+) (\d+)$`)

// Header is the parsed first line of a PGZ file.
type Header struct {
	Width, Height int
	MaxValue      uint64
}

// String renders the header line without its terminator.
func (h Header) String() string {
	return fmt.Sprintf("%s %d %d %d", Magic, h.Width, h.Height, h.MaxValue)
}

// Encode returns the PGZ encoding of g.
// Complexity: O(W×H) plus compression cost.
func Encode(g *grid.Grid) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, g); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Write streams the PGZ encoding of g to w.
func Write(w io.Writer, g *grid.Grid) error {
	if g == nil {
		return fmt.Errorf("pgz: encode: %w", grid.ErrInvalidDimensions)
	}
	width, height := g.Dimensions()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("pgz: encode %dx%d: %w", width, height, grid.ErrInvalidDimensions)
	}

	hdr := Header{Width: width, Height: height, MaxValue: DefaultMaxValue}
	if _, err := io.WriteString(w, hdr.String()+"\n"); err != nil {
		return fmt.Errorf("pgz: write header: %w", err)
	}

	// Pack samples row-major as big-endian int32.
	packed := make([]byte, bytesPerSample*g.Len())
	g.Each(func(x, y int, v int32) {
		off := bytesPerSample * (y*width + x)
		binary.BigEndian.PutUint32(packed[off:], uint32(v))
	})

	zw, err := zlib.NewWriterLevel(w, Level)
	if err != nil {
		return fmt.Errorf("pgz: zlib writer: %w", err)
	}
	if _, err := zw.Write(packed); err != nil {
		_ = zw.Close()
		return fmt.Errorf("pgz: compress: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("pgz: compress: %w", err)
	}

	return nil
}

// DecodeHeader parses the header line and returns it with the remaining
// compressed payload. No text parsing happens past the first newline.
func DecodeHeader(data []byte) (Header, []byte, error) {
	nl := bytes.IndexByte(data, '\n')
	if nl < 0 {
		return Header{}, nil, fmt.Errorf("%w: pgz header line not terminated", grid.ErrFormat)
	}
	line := bytes.TrimSuffix(data[:nl], []byte("\r"))
	m := headerPattern.FindSubmatch(line)
	if m == nil {
		return Header{}, nil, fmt.Errorf("%w: bad pgz header %q", grid.ErrFormat, truncate(line))
	}

	w, errW := strconv.Atoi(string(m[1]))
	h, errH := strconv.Atoi(string(m[2]))
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return Header{}, nil, fmt.Errorf("%w: bad pgz dimensions %q", grid.ErrFormat, line)
	}
	if w > math.MaxInt32/bytesPerSample/h {
		return Header{}, nil, fmt.Errorf("%w: pgz dimensions %dx%d too large", grid.ErrFormat, w, h)
	}
	// maxValue is informational; an out-of-range declaration is tolerated.
	maxValue, err := strconv.ParseUint(string(m[3]), 10, 64)
	if err != nil {
		maxValue = math.MaxUint64
	}

	return Header{Width: w, Height: h, MaxValue: maxValue}, data[nl+1:], nil
}

// Decode parses a complete PGZ byte sequence into a Grid.
// Complexity: O(W×H) plus decompression cost.
func Decode(data []byte) (*grid.Grid, error) {
	hdr, payload, err := DecodeHeader(data)
	if err != nil {
		return nil, err
	}

	zr, err := zlib.NewReader(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompression, err)
	}
	defer zr.Close()

	// Inflate through a limit so the buffer grows with the payload actually
	// present rather than with the declared dimensions. Reaching EOF also
	// verifies the adler-32 trailer.
	want := bytesPerSample * hdr.Width * hdr.Height
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, io.LimitReader(zr, int64(want)+1)); err != nil {
		return nil, fmt.Errorf("%w: inflated %d bytes, want %d: %v", ErrDecompression, buf.Len(), want, err)
	}
	switch n := buf.Len(); {
	case n < want:
		return nil, fmt.Errorf("%w: inflated %d bytes, want %d", ErrDecompression, n, want)
	case n > want:
		return nil, fmt.Errorf("%w: payload longer than %d bytes", ErrDecompression, want)
	}
	raw := buf.Bytes()

	samples := make([]int32, hdr.Width*hdr.Height)
	for i := range samples {
		samples[i] = int32(binary.BigEndian.Uint32(raw[bytesPerSample*i:]))
	}

	return grid.New(hdr.Width, hdr.Height, samples)
}

// IsPGZ reports whether data starts with the PGZ magic.
func IsPGZ(data []byte) bool {
	return bytes.HasPrefix(data, []byte(Magic+" "))
}

func truncate(b []byte) []byte {
	const limit = 40
	if len(b) > limit {
		return b[:limit]
	}
	return b
}
