package flatfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/airroute/core"
	"github.com/katalvlaran/airroute/logging"
	"github.com/katalvlaran/airroute/store"
)

// Store keeps the network in a single flat file.
type Store struct {
	path    string
	log     *slog.Logger
	netOpts []core.NetworkOption
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report skipped lines.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithNetworkOptions sets the options of networks built by Load.
func WithNetworkOptions(opts ...core.NetworkOption) Option {
	return func(s *Store) { s.netOpts = opts }
}

// New returns a Store backed by path. The file need not exist yet.
func New(path string, opts ...Option) *Store {
	s := &Store{path: path, log: logging.Discard()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Path returns the backing file.
func (s *Store) Path() string { return s.path }

// Load decodes the file. A missing file yields store.ErrNotFound; skipped
// lines are logged at warn level and do not fail the load.
func (s *Store) Load(ctx context.Context) (*core.Network, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("flatfile: %s: %w", s.path, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("flatfile: open: %w", err)
	}
	defer f.Close()

	n, rep, err := Decode(f, s.netOpts...)
	if err != nil {
		return nil, fmt.Errorf("flatfile: %s: %w", s.path, err)
	}
	for _, le := range rep.Lines {
		s.log.Warn("skipped line", "file", s.path, "line", le.Line, "text", le.Text, "err", le.Err)
	}
	s.log.Debug("network decoded", "file", s.path, "airports", rep.Airports, "routes", rep.Routes, "skipped", len(rep.Lines))

	return n, nil
}

// Save writes n to a temporary file in the same directory and renames it
// over the backing file, so readers never see a partial file.
func (s *Store) Save(ctx context.Context, n *core.Network) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("flatfile: create temp: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := Encode(tmp, n); err != nil {
		tmp.Close()
		return fmt.Errorf("flatfile: encode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("flatfile: close temp: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("flatfile: rename: %w", err)
	}
	s.log.Debug("network saved", "file", s.path, "airports", n.AirportCount(), "routes", n.RouteCount())

	return nil
}

// Close is a no-op; the file is only open during Load and Save.
func (s *Store) Close() error { return nil }

var _ store.Store = (*Store)(nil)
