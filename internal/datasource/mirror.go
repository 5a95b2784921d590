package datasource

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/rocketman768/GliderWeatherBot/pgz"
	"github.com/rocketman768/GliderWeatherBot/raspdata"
)

// DefaultWorkers is the number of parallel downloads in Mirror.
const DefaultWorkers = 4

// MirrorOptions configures Mirror.
type MirrorOptions struct {
	// Binary re-encodes each data file as PGZ.
	Binary  bool
	Workers int
	Logger  *slog.Logger
}

// MirrorStats counts Mirror outcomes.
type MirrorStats struct {
	Written int64
	Missing int64
}

// Mirror copies every (parameter, time) file from src into dir. Missing
// files are logged and skipped; any other error stops the mirror.
func Mirror(ctx context.Context, src Source, dir string, params []string, times []int, opts MirrorOptions) (MirrorStats, error) {
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return MirrorStats{}, fmt.Errorf("datasource: %w", err)
	}

	var written, missing atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for _, p := range params {
		for _, t := range times {
			g.Go(func() error {
				data, err := src.Open(ctx, p, t)
				if errors.Is(err, ErrNotFound) {
					log.Warn("resource not found", "parameter", p, "time", t, "error", err)
					missing.Add(1)
					return nil
				}
				if err != nil {
					return err
				}
				name := filepath.Join(dir, raspdata.FileName(p, t))
				if opts.Binary {
					if !pgz.IsPGZ(data) {
						gr, err := raspdata.Decode(data, raspdata.WithProviderHeader())
						if err != nil {
							return fmt.Errorf("datasource: decode %s at %d: %w", p, t, err)
						}
						if data, err = pgz.Encode(gr); err != nil {
							return err
						}
					}
					name += pgz.Ext
				}
				if err := os.WriteFile(name, data, 0o644); err != nil {
					return fmt.Errorf("datasource: %w", err)
				}
				log.Debug("mirrored", "file", name, "bytes", len(data))
				written.Add(1)
				return nil
			})
		}
	}
	err := g.Wait()

	return MirrorStats{Written: written.Load(), Missing: missing.Load()}, err
}
