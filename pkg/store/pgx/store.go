package pgx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"depdm/pkg/store"

	pgxv5 "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type pgxIConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, optionsAndArgs ...any) (pgxv5.Rows, error)
	QueryRow(ctx context.Context, sql string, optionsAndArgs ...any) pgxv5.Row
	Begin(ctx context.Context) (pgxv5.Tx, error)
	CopyFrom(ctx context.Context, tableName pgxv5.Identifier, columnNames []string, rowSrc pgxv5.CopyFromSource) (int64, error)
}

// RunDBStore implements store.RunStore on PostgreSQL. Cells are written
// once per run with COPY; everything else is plain row traffic.
type RunDBStore struct {
	conn pgxIConn
}

// NewRunDBStore creates a RunDBStore using an existing connection or
// pool.
func NewRunDBStore(conn pgxIConn) *RunDBStore {
	return &RunDBStore{conn: conn}
}

func (s *RunDBStore) CreateRun(ctx context.Context, run store.Run) error {
	_, err := s.conn.Exec(ctx, `
		INSERT INTO runs (id, shard_path, source, status)
		VALUES ($1, $2, $3, $4)`,
		run.ID, run.ShardPath, run.Source, store.RunPending,
	)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}
	return nil
}

func (s *RunDBStore) MarkRunning(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, store.RunRunning)
}

func (s *RunDBStore) setStatus(ctx context.Context, id string, status store.RunStatus) error {
	tag, err := s.conn.Exec(ctx, `
		UPDATE runs SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("failed to update run status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *RunDBStore) CompleteRun(ctx context.Context, id string, params store.CompleteRunParams) error {
	tag, err := s.conn.Exec(ctx, `
		UPDATE runs
		SET status = $2, lines = $3, skipped = $4, paths = $5,
		    words = $6, links = $7, duration_ms = $8, updated_at = now()
		WHERE id = $1`,
		id, store.RunCompleted,
		params.Lines, params.Skipped, params.Paths,
		params.Words, params.Links, params.DurationMs,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *RunDBStore) FailRun(ctx context.Context, id string, message string) error {
	tag, err := s.conn.Exec(ctx, `
		UPDATE runs SET status = $2, error = $3, updated_at = now() WHERE id = $1`,
		id, store.RunFailed, message,
	)
	if err != nil {
		return fmt.Errorf("failed to mark run as failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// SaveCells replaces the run's matrix in one transaction.
func (s *RunDBStore) SaveCells(ctx context.Context, runID string, cells []store.Cell) error {
	tx, err := s.conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM cooccurrences WHERE run_id = $1`, runID); err != nil {
		return fmt.Errorf("failed to clear previous cells: %w", err)
	}

	_, err = tx.CopyFrom(
		ctx,
		pgxv5.Identifier{"cooccurrences"},
		[]string{"run_id", "word", "feature", "count"},
		pgxv5.CopyFromSlice(len(cells), func(i int) ([]any, error) {
			return []any{runID, cells[i].Word, cells[i].Feature, cells[i].Count}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to copy cells: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit cells: %w", err)
	}
	return nil
}

func (s *RunDBStore) ListRuns(ctx context.Context) ([]store.Run, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT id, shard_path, source, status, lines, skipped, paths,
		       words, links, duration_ms, COALESCE(error, ''), created_at, updated_at
		FROM runs
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []store.Run
	for rows.Next() {
		var r store.Run
		if err := rows.Scan(
			&r.ID, &r.ShardPath, &r.Source, &r.Status,
			&r.Lines, &r.Skipped, &r.Paths,
			&r.Words, &r.Links, &r.DurationMs, &r.Error,
			&r.CreatedAt, &r.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func (s *RunDBStore) GetRun(ctx context.Context, id string) (store.Run, error) {
	var r store.Run
	err := s.conn.QueryRow(ctx, `
		SELECT id, shard_path, source, status, lines, skipped, paths,
		       words, links, duration_ms, COALESCE(error, ''), created_at, updated_at
		FROM runs WHERE id = $1`, id,
	).Scan(
		&r.ID, &r.ShardPath, &r.Source, &r.Status,
		&r.Lines, &r.Skipped, &r.Paths,
		&r.Words, &r.Links, &r.DurationMs, &r.Error,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if errors.Is(err, pgxv5.ErrNoRows) {
		return store.Run{}, store.ErrNotFound
	}
	if err != nil {
		return store.Run{}, fmt.Errorf("failed to get run: %w", err)
	}
	return r, nil
}

func (s *RunDBStore) GetRow(ctx context.Context, runID string, word string) ([]store.Cell, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT word, feature, count
		FROM cooccurrences
		WHERE run_id = $1 AND word = $2
		ORDER BY count DESC`,
		runID, word,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query row: %w", err)
	}
	defer rows.Close()

	var cells []store.Cell
	for rows.Next() {
		var c store.Cell
		if err := rows.Scan(&c.Word, &c.Feature, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan cell: %w", err)
		}
		cells = append(cells, c)
	}
	return cells, rows.Err()
}

func (s *RunDBStore) ListStaleRuns(ctx context.Context, olderThan time.Duration) ([]store.Run, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT id, shard_path, source, status, lines, skipped, paths,
		       words, links, duration_ms, COALESCE(error, ''), created_at, updated_at
		FROM runs
		WHERE status = $1 AND updated_at < now() - ($2::bigint * interval '1 millisecond')`,
		store.RunRunning, olderThan.Milliseconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale runs: %w", err)
	}
	defer rows.Close()

	var runs []store.Run
	for rows.Next() {
		var r store.Run
		if err := rows.Scan(
			&r.ID, &r.ShardPath, &r.Source, &r.Status,
			&r.Lines, &r.Skipped, &r.Paths,
			&r.Words, &r.Links, &r.DurationMs, &r.Error,
			&r.CreatedAt, &r.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan stale run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func (s *RunDBStore) ResetRun(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, store.RunPending)
}

func (s *RunDBStore) DeleteRun(ctx context.Context, id string) error {
	tag, err := s.conn.Exec(ctx, `DELETE FROM runs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
