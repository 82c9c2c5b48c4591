package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"

	"FinSight/internal/model"
)

// SQLiteRecorder persists analysis history to a SQLite database.
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

	// WAL mode so history queries can run while an analysis writes.
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
		`CREATE TABLE IF NOT EXISTS analysis_runs (
			run_id     TEXT PRIMARY KEY,
			timestamp  INTEGER NOT NULL,
			symbol     TEXT NOT NULL,
			currency   TEXT,
			year_count INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_symbol ON analysis_runs(symbol, timestamp)`,

		`CREATE TABLE IF NOT EXISTS year_metrics (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id           TEXT NOT NULL,
			year             INTEGER NOT NULL,
			revenue          REAL,
			operating_income REAL,
			debt_ratio       REAL,
			eps              REAL,
			per_low          REAL,
			per_high         REAL,
			per_status       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_metrics_run ON year_metrics(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordRun writes the run header and one row per year inside a transaction.
func (r *SQLiteRecorder) RecordRun(rec *RunRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO analysis_runs
		(run_id, timestamp, symbol, currency, year_count)
		VALUES (?,?,?,?,?)`,
		rec.RunID, rec.GeneratedAt.Unix(), rec.Symbol, rec.Currency, len(rec.Years),
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, y := range rec.Years {
		var perLow, perHigh sql.NullFloat64
		if y.PERStatus == model.PEROK {
			perLow = sql.NullFloat64{Float64: y.PERLow, Valid: true}
			perHigh = sql.NullFloat64{Float64: y.PERHigh, Valid: true}
		}
		if _, err := tx.Exec(`INSERT INTO year_metrics
			(run_id, year, revenue, operating_income, debt_ratio, eps, per_low, per_high, per_status)
			VALUES (?,?,?,?,?,?,?,?,?)`,
			rec.RunID, y.Year, y.Revenue, y.OperatingIncome,
			nullMetric(y.DebtRatio), nullMetric(y.EPS),
			perLow, perHigh, string(y.PERStatus),
		); err != nil {
			return fmt.Errorf("insert year %d: %w", y.Year, err)
		}
	}

	return tx.Commit()
}

func nullMetric(m model.Metric) sql.NullFloat64 {
	return sql.NullFloat64{Float64: m.Value, Valid: m.Valid}
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
