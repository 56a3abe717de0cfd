// Package sqlite persists a flight network in two SQLite tables:
//
//	airports(id, code, name)                      one row per airport, id = core.AirportID
//	routes(seq, src, dst, distance, duration, cost) one row per route, seq keeps adjacency order
//
// Save replaces both tables inside one transaction. Load rebuilds the network
// through core.Network, so codes stay unique and ids dense even if the
// tables were edited by hand.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/airroute/core"
	"github.com/katalvlaran/airroute/logging"
	"github.com/katalvlaran/airroute/store"
)

// DriverName is the database/sql driver registered by go-sqlite3.
const DriverName = "sqlite3"

// ErrCorrupt indicates rows that cannot be rebuilt into a network.
var ErrCorrupt = errors.New("sqlite: stored network is inconsistent")

const schema = `
CREATE TABLE IF NOT EXISTS airports (
	id   INTEGER PRIMARY KEY,
	code TEXT    NOT NULL UNIQUE,
	name TEXT    NOT NULL
);
CREATE TABLE IF NOT EXISTS routes (
	seq      INTEGER PRIMARY KEY,
	src      INTEGER NOT NULL REFERENCES airports(id),
	dst      INTEGER NOT NULL REFERENCES airports(id),
	distance INTEGER NOT NULL CHECK (distance BETWEEN 0 AND 4294967295),
	duration INTEGER NOT NULL CHECK (duration BETWEEN 0 AND 4294967295),
	cost     INTEGER NOT NULL CHECK (cost BETWEEN 0 AND 4294967295)
);
`

// Store is a store.Store backed by a SQLite database.
type Store struct {
	db      *sql.DB
	log     *slog.Logger
	netOpts []core.NetworkOption
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithNetworkOptions sets the options of networks built by Load.
func WithNetworkOptions(opts ...core.NetworkOption) Option {
	return func(s *Store) { s.netOpts = opts }
}

// Open opens (or creates) the database at dsn and makes sure the schema
// exists. ":memory:" gives a private in-memory database.
func Open(ctx context.Context, dsn string, opts ...Option) (*Store, error) {
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", dsn, err)
	}
	// One connection: every statement sees the same in-memory database and
	// writers never contend for the file lock.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: migrate: %w", err)
	}

	s := &Store{db: db, log: logging.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	s.log.Debug("sqlite store opened", "dsn", dsn)

	return s, nil
}

// Load rebuilds the network. An empty airports table yields store.ErrNotFound.
func (s *Store) Load(ctx context.Context) (*core.Network, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("sqlite: begin: %w", err)
	}
	defer tx.Rollback()

	n := core.NewNetwork(s.netOpts...)
	codes, err := loadAirports(ctx, tx, n)
	if err != nil {
		return nil, err
	}
	if len(codes) == 0 {
		return nil, fmt.Errorf("sqlite: %w", store.ErrNotFound)
	}
	if err := loadRoutes(ctx, tx, n, codes); err != nil {
		return nil, err
	}
	s.log.Debug("network loaded", "airports", n.AirportCount(), "routes", n.RouteCount())

	return n, nil
}

func loadAirports(ctx context.Context, tx *sql.Tx, n *core.Network) (map[int64]string, error) {
	rows, err := tx.QueryContext(ctx, `SELECT id, code, name FROM airports ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: query airports: %w", err)
	}
	defer rows.Close()

	codes := make(map[int64]string)
	for rows.Next() {
		var (
			id         int64
			code, name string
		)
		if err := rows.Scan(&id, &code, &name); err != nil {
			return nil, fmt.Errorf("sqlite: scan airport: %w", err)
		}
		if _, err := n.AddAirport(code, name); err != nil {
			return nil, fmt.Errorf("sqlite: airport %d %q: %w", id, code, err)
		}
		codes[id] = code
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: airports: %w", err)
	}

	return codes, nil
}

func loadRoutes(ctx context.Context, tx *sql.Tx, n *core.Network, codes map[int64]string) error {
	rows, err := tx.QueryContext(ctx,
		`SELECT seq, src, dst, distance, duration, cost FROM routes ORDER BY seq`)
	if err != nil {
		return fmt.Errorf("sqlite: query routes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			seq, src, dst            int64
			distance, duration, cost uint32
		)
		if err := rows.Scan(&seq, &src, &dst, &distance, &duration, &cost); err != nil {
			return fmt.Errorf("sqlite: scan route: %w", err)
		}
		from, ok := codes[src]
		if !ok {
			return fmt.Errorf("%w: route %d: unknown source id %d", ErrCorrupt, seq, src)
		}
		to, ok := codes[dst]
		if !ok {
			return fmt.Errorf("%w: route %d: unknown destination id %d", ErrCorrupt, seq, dst)
		}
		if err := n.AddRoute(from, to, distance, duration, cost); err != nil {
			return fmt.Errorf("sqlite: route %d: %w", seq, err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("sqlite: routes: %w", err)
	}

	return nil
}

// Save replaces the stored network with n in a single transaction.
func (s *Store) Save(ctx context.Context, n *core.Network) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// 1) Clear
	for _, q := range []string{`DELETE FROM routes`, `DELETE FROM airports`} {
		if _, err = tx.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("sqlite: clear: %w", err)
		}
	}

	// 2) Airports
	ins, err := tx.PrepareContext(ctx, `INSERT INTO airports (id, code, name) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("sqlite: prepare airports: %w", err)
	}
	defer ins.Close()
	for _, a := range n.Airports() {
		if _, err = ins.ExecContext(ctx, int64(a.ID), a.Code, a.Name); err != nil {
			return fmt.Errorf("sqlite: insert airport %q: %w", a.Code, err)
		}
	}

	// 3) Routes, seq in Routes() order so Load restores adjacency order
	rins, err := tx.PrepareContext(ctx,
		`INSERT INTO routes (seq, src, dst, distance, duration, cost) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("sqlite: prepare routes: %w", err)
	}
	defer rins.Close()
	for i, r := range n.Routes() {
		if _, err = rins.ExecContext(ctx, i, int64(r.From), int64(r.To),
			int64(r.Distance), int64(r.Duration), int64(r.Cost)); err != nil {
			return fmt.Errorf("sqlite: insert route %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit: %w", err)
	}
	s.log.Debug("network saved", "airports", n.AirportCount(), "routes", n.RouteCount())

	return nil
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

var _ store.Store = (*Store)(nil)
