// Package storage provides SQLite-based persistence for the run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/randwalk/internal/sim"
	"github.com/vovakirdan/randwalk/internal/walk"
)

// Run kinds.
const (
	KindWalk = "walk"
	KindGrid = "grid"
)

// ErrRunNotFound is returned when no run matches the requested id.
var ErrRunNotFound = errors.New("storage: run not found")

// Store manages the SQLite database connection for the run history.
type Store struct {
	db *sql.DB
}

// Run is the summary of one simulation run.
type Run struct {
	ID         string
	Kind       string // KindWalk or KindGrid
	Variants   string // comma separated; plain walkers use their pattern name
	Steps      int
	Walkers    int
	Seed       int64
	Playground int     // catalog seed, walk runs only
	Fill       float64 // grid runs only
	Skipped    int     // walkers that could not walk
	Trapped    bool    // grid walker got stuck
	CreatedAt  time.Time
}

// KindStats aggregates the runs of one kind.
type KindStats struct {
	Kind       string
	Runs       int
	Trapped    int
	TotalSteps int64
	LastRun    time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			variants TEXT NOT NULL DEFAULT '',
			steps INTEGER NOT NULL,
			walkers INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			playground INTEGER NOT NULL DEFAULT 0,
			fill REAL NOT NULL DEFAULT 0,
			skipped INTEGER NOT NULL DEFAULT 0,
			trapped INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_kind ON runs(kind);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a run. An empty ID is replaced with a new UUID.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.Kind != KindWalk && r.Kind != KindGrid {
		return "", fmt.Errorf("storage: unknown run kind %q", r.Kind)
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, kind, variants, steps, walkers, seed, playground, fill, skipped, trapped)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Kind, r.Variants, r.Steps, r.Walkers, r.Seed, r.Playground, r.Fill, r.Skipped, r.Trapped,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.ID, nil
}

const runColumns = `id, kind, variants, steps, walkers, seed, playground, fill, skipped, trapped, created_at`

// RecentRuns retrieves the latest runs, newest first. An empty kind
// selects every kind.
func (s *Store) RecentRuns(kind string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	var (
		rows *sql.Rows
		err  error
	)
	if kind == "" {
		rows, err = s.db.Query(
			`SELECT `+runColumns+` FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?`,
			limit,
		)
	} else {
		rows, err = s.db.Query(
			`SELECT `+runColumns+` FROM runs WHERE kind = ? ORDER BY created_at DESC, rowid DESC LIMIT ?`,
			kind, limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunByID retrieves a single run.
func (s *Store) RunByID(id string) (*Run, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ClearRuns deletes every run of the given kind; an empty kind deletes all.
func (s *Store) ClearRuns(kind string) error {
	var err error
	if kind == "" {
		_, err = s.db.Exec("DELETE FROM runs")
	} else {
		_, err = s.db.Exec("DELETE FROM runs WHERE kind = ?", kind)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics per run kind.
func (s *Store) Stats() (map[string]*KindStats, error) {
	rows, err := s.db.Query(
		`SELECT kind, COUNT(*), COALESCE(SUM(trapped), 0), COALESCE(SUM(steps), 0), MAX(created_at)
		 FROM runs
		 GROUP BY kind`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*KindStats)
	for rows.Next() {
		var ks KindStats
		var lastRun any
		if err := rows.Scan(&ks.Kind, &ks.Runs, &ks.Trapped, &ks.TotalSteps, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ks.LastRun = parseTime(lastRun)
		stats[ks.Kind] = &ks
	}

	return stats, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var r Run
	var createdAt any
	err := sc.Scan(&r.ID, &r.Kind, &r.Variants, &r.Steps, &r.Walkers, &r.Seed,
		&r.Playground, &r.Fill, &r.Skipped, &r.Trapped, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return r, err
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// WalkRun summarizes a continuous-model run.
func WalkRun(opts sim.WalkOptions, res *sim.WalkResult) Run {
	variants := strings.Join(opts.Variants, ",")
	if variants == "" {
		variants = string(opts.Pattern)
	}
	r := Run{
		Kind:       KindWalk,
		Variants:   variants,
		Steps:      opts.Steps,
		Walkers:    opts.Walkers,
		Seed:       opts.Seed,
		Playground: opts.Boundary.Seed,
	}
	if res != nil {
		r.Seed = res.Seed
		r.Skipped = len(res.Skipped)
	}
	return r
}

// GridRun summarizes a raster-model run; runErr is the error RunGridWalk returned.
func GridRun(opts sim.GridOptions, res *sim.GridResult, runErr error) Run {
	r := Run{
		Kind:    KindGrid,
		Steps:   opts.Steps,
		Walkers: 1,
		Seed:    opts.Seed,
		Fill:    opts.Fill,
		Trapped: errors.Is(runErr, walk.ErrWalkerTrapped),
	}
	if res != nil {
		r.Seed = res.Seed
	}
	return r
}
