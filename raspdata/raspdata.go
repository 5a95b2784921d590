package raspdata

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketman768/GliderWeatherBot/grid"
	"github.com/rocketman768/GliderWeatherBot/pgz"
)

const (
	// DefaultHeaderLines is the number of lines preceding the data rows in
	// a bare grid: the title and two metadata lines.
	DefaultHeaderLines = 3
	// ProviderHeaderLines is the header length of files served by a RASP
	// site, which add a separator line before the title.
	ProviderHeaderLines = 4
)

// Options controls text decoding.
type Options struct {
	// HeaderLines is the number of leading lines ignored before the first
	// data row. Must be >= 0.
	HeaderLines int
}

// Option configures Decode.
type Option func(*Options)

// WithProviderHeader skips the four header lines of a RASP site file.
func WithProviderHeader() Option {
	return WithHeaderLines(ProviderHeaderLines)
}

// WithHeaderLines overrides the number of ignored header lines.
// Negative values are treated as zero.
func WithHeaderLines(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.HeaderLines = n
	}
}

// DefaultOptions returns Options for a title plus two metadata lines.
func DefaultOptions() Options {
	return Options{HeaderLines: DefaultHeaderLines}
}

// Decode parses an ASCII grid. Rows are stored in the order they appear, so
// the first data row becomes y=0.
// Complexity: O(N) in the input size.
func Decode(data []byte, opts ...Option) (*grid.Grid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	// Rows of a few hundred five-digit values exceed the default token size.
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	// 1) Skip header lines.
	for i := 0; i < cfg.HeaderLines; i++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("%w: reading header: %v", grid.ErrFormat, err)
			}
			return nil, fmt.Errorf("%w: header truncated after %d of %d lines", grid.ErrFormat, i, cfg.HeaderLines)
		}
	}

	// 2) Parse data rows; width is fixed by the first row.
	var (
		samples []int32
		width   = -1
		height  int
	)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		row := height + 1
		if width < 0 {
			width = len(fields)
			samples = make([]int32, 0, width*128)
		} else if len(fields) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", grid.ErrFormat, row, len(fields), width)
		}
		for col, tok := range fields {
			v, err := strconv.ParseInt(tok, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %d: bad integer %q", grid.ErrFormat, row, col+1, tok)
			}
			samples = append(samples, int32(v))
		}
		height++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", grid.ErrFormat, err)
	}
	if height == 0 {
		return nil, fmt.Errorf("%w: no data rows", grid.ErrFormat)
	}

	return grid.New(width, height, samples)
}

// Parse decodes either a PGZ container or an ASCII grid, choosing by the
// first bytes of data. Options apply only to the ASCII path.
func Parse(data []byte, opts ...Option) (*grid.Grid, error) {
	if pgz.IsPGZ(data) {
		return pgz.Decode(data)
	}

	return Decode(data, opts...)
}

// FileName returns the provider file name for a parameter at a local time,
// e.g. FileName("hwcrit", 1400) == "hwcrit.curr.1400lst.d2.data".
func FileName(parameter string, localTime int) string {
	return fmt.Sprintf("%s.curr.%dlst.d2.data", parameter, localTime)
}

// Parameters lists the gridded outputs a RASP site publishes per time slice.
var Parameters = []string{
	"blcloudpct", "blcwbase", "bltopvariab", "bltopwinddir", "bltopwindspd",
	"blwinddir", "blwindshear", "blwindspd", "bsratio", "cape", "dbl",
	"dwcrit", "hbl", "hglider", "hwcrit",
	"press500", "press500wdir", "press500wspd",
	"press700", "press700wdir", "press700wspd",
	"press850", "press850wdir", "press850wspd",
	"sfcdewpt", "sfcshf", "sfcsunpct", "sfctemp", "sfcwinddir", "sfcwindspd",
	"wblmaxmin", "wstar", "zblcl", "zblcldif", "zsfclcl", "zsfclcldif", "zwblmaxmin",
}
