// Package fetch transfers download sets with a fixed pool of workers.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/bnema/mcli/internal/atomicfile"
	"github.com/bnema/mcli/internal/domain"
	"github.com/bnema/mcli/internal/logging"
	"github.com/bnema/mcli/internal/ports"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	DefaultWorkers = 10
	defaultBackoff = 500 * time.Millisecond
	fileMode       = 0o644
)

// ProgressFunc is called after every completed entry.
type ProgressFunc func(done, total int)

type Options struct {
	Workers int
	// Rate caps requests per second. Zero means unlimited.
	Rate     float64
	Backoff  time.Duration
	Progress ProgressFunc
}

type Engine struct {
	client   *resty.Client
	workers  int
	limiter  *rate.Limiter
	backoff  time.Duration
	progress ProgressFunc
}

var _ ports.Fetcher = (*Engine)(nil)

func New(client *resty.Client, opts Options) *Engine {
	e := &Engine{
		client:   client,
		workers:  opts.Workers,
		backoff:  opts.Backoff,
		progress: opts.Progress,
	}
	if e.workers <= 0 {
		e.workers = DefaultWorkers
	}
	if e.backoff <= 0 {
		e.backoff = defaultBackoff
	}
	if opts.Rate > 0 {
		e.limiter = rate.NewLimiter(rate.Limit(opts.Rate), 1)
	}
	return e
}

// OnProgress replaces the progress callback.
func (e *Engine) OnProgress(progress ProgressFunc) {
	e.progress = progress
}

// Fetch blocks until every entry arrived or one of them failed after
// exhausting the set's retry budget.
func (e *Engine) Fetch(ctx context.Context, set domain.DownloadSet) error {
	if set.Empty() {
		return nil
	}

	logger := logging.FromContext(ctx)
	logger.Debug("fetching download set", zap.Int("entries", set.Len()), zap.Int("workers", e.workers))

	total := set.Len()
	var done atomic.Int64

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(e.workers)
	for _, entry := range set.Entries {
		group.Go(func() error {
			if err := e.fetchWithRetry(groupCtx, entry, set.Retries); err != nil {
				return domain.Wrap(domain.CategoryDownload, fmt.Errorf("fetch %s: %w", entry.URL, err))
			}
			n := done.Add(1)
			if e.progress != nil {
				e.progress(int(n), total)
			}
			return nil
		})
	}
	return group.Wait()
}

func (e *Engine) fetchWithRetry(ctx context.Context, entry domain.DownloadEntry, retries int) error {
	logger := logging.FromContext(ctx)

	var err error
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			logger.Debug("retrying download", zap.String("url", entry.URL), zap.Int("attempt", attempt), zap.Error(err))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * e.backoff):
			}
		}

		err = e.fetchOnce(ctx, entry)
		if err == nil || errors.Is(err, context.Canceled) {
			return err
		}
	}
	return err
}

func (e *Engine) fetchOnce(ctx context.Context, entry domain.DownloadEntry) error {
	if e.limiter != nil {
		if err := e.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	resp, err := e.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(entry.URL)
	if err != nil {
		return err
	}
	body := resp.RawBody()
	defer func() { _ = body.Close() }()

	if resp.IsError() {
		return fmt.Errorf("unexpected status %d", resp.StatusCode())
	}

	if err := writeStream(entry.Path, body); err != nil {
		return err
	}
	if entry.Extract {
		if err := extract(entry.Path, filepath.Dir(entry.Path)); err != nil {
			return err
		}
	}

	logging.FromContext(ctx).Debug("downloaded", zap.String("url", entry.URL), zap.String("path", entry.Path))
	return nil
}

func writeStream(path string, body io.Reader) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, atomicfile.DirMode); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	part, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.part")
	if err != nil {
		return fmt.Errorf("create partial file: %w", err)
	}
	partName := part.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(partName)
		}
	}()

	if _, err := io.Copy(part, body); err != nil {
		_ = part.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := part.Chmod(fileMode); err != nil {
		_ = part.Close()
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := part.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(partName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}

	cleanup = false
	return nil
}
