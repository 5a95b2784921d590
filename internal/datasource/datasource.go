// Package datasource supplies raw RASP forecast files, from the web or
// from an archive directory, and decodes them into classifier inputs.
package datasource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/rocketman768/GliderWeatherBot/classifier"
	"github.com/rocketman768/GliderWeatherBot/pgz"
	"github.com/rocketman768/GliderWeatherBot/raspdata"
)

var (
	// ErrNotFound indicates no file exists for a parameter and time.
	ErrNotFound = errors.New("datasource: file not found")

	// ErrHTTPStatus indicates a non-2xx response other than 404.
	ErrHTTPStatus = errors.New("datasource: unexpected HTTP status")

	// ErrTooLarge indicates a response body over the download limit.
	ErrTooLarge = errors.New("datasource: response exceeds size limit")
)

// DefaultMaxBody caps a single forecast download.
const DefaultMaxBody = 64 << 20

// Source returns the raw bytes of one forecast file.
type Source interface {
	Open(ctx context.Context, parameter string, localTime int) ([]byte, error)
}

// Archive reads files previously saved under Dir. A plain data file wins
// over its PGZ copy.
type Archive struct {
	Dir string
}

// Open implements Source.
func (a Archive) Open(ctx context.Context, parameter string, localTime int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := filepath.Join(a.Dir, raspdata.FileName(parameter, localTime))
	for _, candidate := range []string{name, name + pgz.Ext} {
		data, err := os.ReadFile(candidate)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("datasource: %s: %w", candidate, err)
		}
	}

	return nil, fmt.Errorf("%w: %s at %d in %s", ErrNotFound, parameter, localTime, a.Dir)
}

// Web fetches files from a RASP site for one forecast day.
type Web struct {
	BaseURL string
	// DayOffset selects the OUT+<n> directory: 0 is today.
	DayOffset int
	Client    *http.Client
	// Limiter paces requests when non-nil.
	Limiter *rate.Limiter
	// MaxBody caps one response; zero means DefaultMaxBody.
	MaxBody int64
}

// NewWeb returns a Web source with a client timeout and an optional
// request rate. rps <= 0 disables pacing.
func NewWeb(baseURL string, dayOffset int, timeout time.Duration, rps float64) *Web {
	w := &Web{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		DayOffset: dayOffset,
		Client:    &http.Client{Timeout: timeout},
	}
	if rps > 0 {
		w.Limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}

	return w
}

// URL returns <base>/OUT+<day>/FCST/<file>.
func (w *Web) URL(parameter string, localTime int) string {
	return fmt.Sprintf("%s/OUT+%d/FCST/%s", w.BaseURL, w.DayOffset, url.PathEscape(raspdata.FileName(parameter, localTime)))
}

// Open implements Source.
func (w *Web) Open(ctx context.Context, parameter string, localTime int) ([]byte, error) {
	if w.Limiter != nil {
		if err := w.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	u := w.URL(parameter, localTime)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("datasource: %w", err)
	}
	client := w.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("datasource: GET %s: %w", u, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, u)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%w: %s: %s", ErrHTTPStatus, u, resp.Status)
	}
	limit := w.MaxBody
	if limit <= 0 {
		limit = DefaultMaxBody
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("datasource: read %s: %w", u, err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: %s: over %d bytes", ErrTooLarge, u, limit)
	}

	return data, nil
}

// LoadInputs fetches and decodes every parameter for localTime. Text files
// are read with the RASP site header.
func LoadInputs(ctx context.Context, src Source, params []string, localTime int) (classifier.Inputs, error) {
	in := make(classifier.Inputs, len(params))
	for _, p := range params {
		data, err := src.Open(ctx, p, localTime)
		if err != nil {
			return nil, err
		}
		g, err := raspdata.Parse(data, raspdata.WithProviderHeader())
		if err != nil {
			return nil, fmt.Errorf("datasource: decode %s at %d: %w", p, localTime, err)
		}
		in[p] = g
	}

	return in, nil
}
