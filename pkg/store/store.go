// Package store persists extraction runs and their flattened
// co-occurrence matrices so the API server can query them after the
// worker finished.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a run id does not exist.
var ErrNotFound = errors.New("run not found")

type RunStatus string

const (
	RunPending   RunStatus = "pending"
	RunRunning   RunStatus = "running"
	RunCompleted RunStatus = "completed"
	RunFailed    RunStatus = "failed"
)

// Run is one extraction job over a corpus shard.
type Run struct {
	ID         string
	ShardPath  string
	Source     string
	Status     RunStatus
	Lines      int64
	Skipped    int64
	Paths      int64
	Words      int
	Links      int
	DurationMs int64
	Error      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Cell is one non-zero entry of the flattened co-occurrence matrix:
// a row word paired with a "<relation>_<word2>" feature.
type Cell struct {
	Word    string
	Feature string
	Count   int64
}

// CompleteRunParams carries the final counters of a finished run.
type CompleteRunParams struct {
	Lines      int64
	Skipped    int64
	Paths      int64
	Words      int
	Links      int
	DurationMs int64
}

// RunStore is the persistence interface for extraction runs. Accept
// interfaces, return structs: callers program against RunStore, the pgx
// subpackage provides the implementation.
type RunStore interface {
	CreateRun(ctx context.Context, run Run) error
	MarkRunning(ctx context.Context, id string) error
	CompleteRun(ctx context.Context, id string, params CompleteRunParams) error
	FailRun(ctx context.Context, id string, message string) error
	SaveCells(ctx context.Context, runID string, cells []Cell) error
	ListRuns(ctx context.Context) ([]Run, error)
	GetRun(ctx context.Context, id string) (Run, error)
	GetRow(ctx context.Context, runID string, word string) ([]Cell, error)
	DeleteRun(ctx context.Context, id string) error

	// Stale-run recovery: runs stuck in running whose last update is
	// older than the threshold are reset to pending and re-queued.
	ListStaleRuns(ctx context.Context, olderThan time.Duration) ([]Run, error)
	ResetRun(ctx context.Context, id string) error
}
