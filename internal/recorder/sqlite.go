package recorder

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"ZombieFighters/internal/model"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists session history to a SQLite database.
type SQLiteRecorder struct {
	db     *sql.DB
	mu     sync.Mutex
	logger *zap.Logger
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, logger *zap.Logger) (*SQLiteRecorder, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, logger: logger}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logger.Info("sqlite recorder opened", zap.String("path", dbPath))
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS roster_events (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			action         TEXT NOT NULL,
			outcome        TEXT NOT NULL,
			candidate_id   TEXT,
			candidate_name TEXT,
			price          INTEGER,
			budget_before  INTEGER,
			budget_after   INTEGER,
			total_strength INTEGER,
			total_agility  INTEGER,
			team_size      INTEGER,
			pool_size      INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_ts ON roster_events(timestamp)`,

		`CREATE TABLE IF NOT EXISTS snapshots (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			budget         INTEGER,
			initial_budget INTEGER,
			total_strength INTEGER,
			total_agility  INTEGER,
			team_json      TEXT,
			pool_json      TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_ts ON snapshots(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordEvent(evt *Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	at := evt.At
	if at.IsZero() {
		at = time.Now()
	}
	_, err := r.db.Exec(`INSERT INTO roster_events
		(timestamp, action, outcome, candidate_id, candidate_name, price,
		 budget_before, budget_after, total_strength, total_agility, team_size, pool_size)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		at.UnixNano(), string(evt.Action), string(evt.Outcome), evt.CandidateID, evt.CandidateName, evt.Price,
		evt.BudgetBefore, evt.BudgetAfter, evt.TotalStrength, evt.TotalAgility, evt.TeamSize, evt.PoolSize,
	)
	return err
}

func (r *SQLiteRecorder) RecordSnapshot(snap *model.Snapshot) error {
	team, err := json.Marshal(snap.Team)
	if err != nil {
		return fmt.Errorf("marshal team: %w", err)
	}
	pool, err := json.Marshal(snap.Pool)
	if err != nil {
		return fmt.Errorf("marshal pool: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	at := snap.UpdatedAt
	if at.IsZero() {
		at = time.Now()
	}
	_, err = r.db.Exec(`INSERT INTO snapshots
		(timestamp, budget, initial_budget, total_strength, total_agility, team_json, pool_json)
		VALUES (?,?,?,?,?,?,?)`,
		at.UnixNano(), snap.Budget, snap.InitialBudget, snap.TotalStrength, snap.TotalAgility,
		string(team), string(pool),
	)
	return err
}

// RecentEvents returns up to limit events, newest first.
func (r *SQLiteRecorder) RecentEvents(limit int) ([]Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT timestamp, action, outcome, candidate_id, candidate_name, price,
		budget_before, budget_after, total_strength, total_agility, team_size, pool_size
		FROM roster_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			evt             Event
			ts              int64
			action, outcome string
		)
		if err := rows.Scan(&ts, &action, &outcome, &evt.CandidateID, &evt.CandidateName, &evt.Price,
			&evt.BudgetBefore, &evt.BudgetAfter, &evt.TotalStrength, &evt.TotalAgility,
			&evt.TeamSize, &evt.PoolSize); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		evt.At = time.Unix(0, ts)
		evt.Action = model.ActionKind(action)
		evt.Outcome = model.Outcome(outcome)
		events = append(events, evt)
	}
	return events, rows.Err()
}

// SnapshotCount returns the number of stored snapshots.
func (r *SQLiteRecorder) SnapshotCount() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM snapshots`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *SQLiteRecorder) Close() error {
	r.logger.Info("closing sqlite recorder")
	return r.db.Close()
}
