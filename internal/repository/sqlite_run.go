package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/asapSAGNIK/Data-Alchemist/internal/domain"
)

// SQLiteRunRepo implements RunRepo using a SQLite database.
type SQLiteRunRepo struct {
	db *sql.DB
}

// NewSQLiteRunRepo creates a new SQLiteRunRepo.
func NewSQLiteRunRepo(db *sql.DB) *SQLiteRunRepo {
	return &SQLiteRunRepo{db: db}
}

func (r *SQLiteRunRepo) Save(ctx context.Context, run *Run) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO validation_runs (id, created_at, run_trigger, client_rows, worker_rows, task_rows, error_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.CreatedAt.UTC().Format(time.RFC3339Nano),
		string(run.Trigger),
		run.ClientRows,
		run.WorkerRows,
		run.TaskRows,
		run.Report.Total(),
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO run_findings (run_id, seq, dataset, row_index, row_key, category, message)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing findings insert: %w", err)
	}
	defer stmt.Close()

	for _, kind := range domain.AllDatasets {
		for seq, e := range run.Report[kind] {
			if _, err := stmt.ExecContext(ctx, run.ID, seq, string(kind),
				e.Row.Index, e.Row.Key, string(e.Category), e.Message); err != nil {
				return fmt.Errorf("inserting finding: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing run: %w", err)
	}
	committed = true
	return nil
}

func (r *SQLiteRunRepo) Get(ctx context.Context, id string) (*Run, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, created_at, run_trigger, client_rows, worker_rows, task_rows
		FROM validation_runs WHERE id = ?`, id)

	var run Run
	var createdAt, trigger string
	err := row.Scan(&run.ID, &createdAt, &trigger, &run.ClientRows, &run.WorkerRows, &run.TaskRows)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %q not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("loading run: %w", err)
	}
	run.Trigger = RunTrigger(trigger)
	if run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parsing run timestamp: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT dataset, row_index, row_key, category, message
		FROM run_findings WHERE run_id = ?
		ORDER BY dataset, seq`, id)
	if err != nil {
		return nil, fmt.Errorf("loading findings: %w", err)
	}
	defer rows.Close()

	run.Report = domain.NewReport()
	for rows.Next() {
		var dataset, category string
		var e domain.ValidationError
		if err := rows.Scan(&dataset, &e.Row.Index, &e.Row.Key, &category, &e.Message); err != nil {
			return nil, fmt.Errorf("scanning finding: %w", err)
		}
		e.Dataset = domain.DatasetKind(dataset)
		e.Category = domain.ErrorCategory(category)
		run.Report.Add(e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating findings: %w", err)
	}
	return &run, nil
}

func (r *SQLiteRunRepo) List(ctx context.Context, limit int) ([]RunSummary, error) {
	query := `SELECT id, created_at, run_trigger, client_rows, worker_rows, task_rows, error_count
		FROM validation_runs ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var s RunSummary
		var createdAt, trigger string
		if err := rows.Scan(&s.ID, &createdAt, &trigger, &s.ClientRows, &s.WorkerRows, &s.TaskRows, &s.ErrorCount); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		s.Trigger = RunTrigger(trigger)
		if s.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parsing run timestamp: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return out, nil
}
