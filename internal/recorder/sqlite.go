package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"

	_ "modernc.org/sqlite"

	"KellyFolio/internal/model"
)

// SQLiteRecorder persists allocation runs to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external dashboards can read while the tool writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS allocation_runs (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			symbols       TEXT NOT NULL,
			observations  INTEGER,
			risk_free     REAL,
			diagonal_only INTEGER,
			sharpe        REAL,
			growth_rate   REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON allocation_runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS allocation_legs (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id        INTEGER NOT NULL REFERENCES allocation_runs(id),
			symbol        TEXT NOT NULL,
			leverage      REAL,
			half_leverage REAL,
			ann_excess    REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_legs_run ON allocation_legs(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordRun stores the run header and one leg per symbol in a transaction.
func (r *SQLiteRecorder) RecordRun(alloc *model.Allocation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	diagonal := 0
	if alloc.DiagonalOnly {
		diagonal = 1
	}
	res, err := tx.Exec(`INSERT INTO allocation_runs
		(timestamp, symbols, observations, risk_free, diagonal_only, sharpe, growth_rate)
		VALUES (?,?,?,?,?,?,?)`,
		alloc.GeneratedAt.Unix(), strings.Join(alloc.Symbols, ","),
		alloc.Observations, alloc.RiskFreeRate, diagonal,
		alloc.Sharpe, alloc.GrowthRate,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}

	for i, symbol := range alloc.Symbols {
		if _, err := tx.Exec(`INSERT INTO allocation_legs
			(run_id, symbol, leverage, half_leverage, ann_excess)
			VALUES (?,?,?,?,?)`,
			runID, symbol, alloc.Full[i], alloc.Half[i], alloc.AnnMean[i],
		); err != nil {
			return fmt.Errorf("insert leg %s: %w", symbol, err)
		}
	}

	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
