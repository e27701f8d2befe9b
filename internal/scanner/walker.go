package scanner

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/samuli/dirlist/internal/logging"
	"github.com/samuli/dirlist/internal/model"
)

// number of directory entries to read in one shot
const numEntriesToRead = 100

// ErrIncomplete is returned by a KeepGoing scan that had to skip paths
var ErrIncomplete = errors.New("some paths could not be read")

// ErrorPolicy decides what a filesystem error does to the scan
type ErrorPolicy int

const (
	// FailFast aborts the whole scan on the first error
	FailFast ErrorPolicy = iota
	// KeepGoing reports the error, skips the path and continues
	KeepGoing
)

func (p ErrorPolicy) String() string {
	if p == KeepGoing {
		return "keep-going"
	}
	return "fail-fast"
}

// Option configures a Walker
type Option func(*Walker)

// WithErrorPolicy sets the error policy (default FailFast)
func WithErrorPolicy(p ErrorPolicy) Option {
	return func(w *Walker) { w.policy = p }
}

// WithErrorHandler registers fn to receive errors skipped under KeepGoing
func WithErrorHandler(fn func(error)) Option {
	return func(w *Walker) { w.onError = fn }
}

// Walker implements a sequential depth-first scan
type Walker struct {
	policy  ErrorPolicy
	onError func(error)
	stats   Stats
}

// NewWalker creates a new filesystem walker
func NewWalker(opts ...Option) *Walker {
	w := &Walker{}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Stats returns the counters of the last scan
func (w *Walker) Stats() Stats {
	return w.stats
}

// Scan walks cfg.Root. The root itself is never part of the result.
// Children of a directory are appended before the directory itself.
func (w *Walker) Scan(ctx context.Context, cfg Config) (*model.ResultSet, error) {
	w.stats = Stats{}
	rs := model.NewResultSet()

	logging.Scanner.Debugw("scan started", "root", cfg.Root, "policy", w.policy)

	if err := w.walk(ctx, cfg, cfg.Root, rs); err != nil {
		logging.Scanner.Debugw("scan aborted", "root", cfg.Root, "error", err)
		return nil, err
	}

	logging.Scanner.Debugw("scan finished",
		"dirs", w.stats.DirsVisited,
		"seen", w.stats.EntriesSeen,
		"kept", w.stats.Kept,
		"skipped", w.stats.Skipped,
	)

	if w.stats.Skipped > 0 {
		return rs, errors.Wrapf(ErrIncomplete, "%d skipped", w.stats.Skipped)
	}
	return rs, nil
}

func (w *Walker) walk(ctx context.Context, cfg Config, dir string, rs *model.ResultSet) error {
	f, err := os.Open(dir) //nolint:gosec
	if err != nil {
		return w.fail(errors.Wrap(err, "unable to read directory"))
	}
	defer f.Close() //nolint:errcheck

	w.stats.DirsVisited++
	logging.Scanner.Debugw("visiting", "dir", dir)

	for {
		batch, readErr := f.ReadDir(numEntriesToRead)

		for _, d := range batch {
			if err := ctx.Err(); err != nil {
				return err
			}

			name := d.Name()
			if name == "." || name == ".." {
				continue
			}

			fullPath := joinPath(dir, name)

			st, err := lstat(fullPath)
			if err != nil {
				if err := w.fail(errors.Wrap(err, "unable to stat entry")); err != nil {
					return err
				}
				continue
			}
			w.stats.EntriesSeen++

			// descend before deciding on the directory itself
			if st.isDir() {
				if err := w.walk(ctx, cfg, fullPath, rs); err != nil {
					return err
				}
			}

			if e := classify(fullPath, st); cfg.Includes(e.Kind) {
				rs.Append(e)
				w.stats.Kept++
			}
		}

		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return w.fail(errors.Wrap(readErr, "unable to read directory"))
		}
	}
}

// fail returns err under FailFast. Under KeepGoing it records err,
// hands it to the error handler and returns nil.
func (w *Walker) fail(err error) error {
	if w.policy == FailFast {
		return err
	}

	w.stats.Skipped++
	logging.Scanner.Warnw("skipping", "error", err)
	if w.onError != nil {
		w.onError(err)
	}
	return nil
}

// Ensure Walker implements Scanner
var _ Scanner = (*Walker)(nil)
