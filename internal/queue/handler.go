package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"depdm/pkg/logger"
	runpgx "depdm/pkg/store/pgx"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rabbitmq/amqp091-go"
)

// staleAfter is how long a run may sit in running without an update
// before it is considered abandoned by a crashed worker.
const staleAfter = 30 * time.Minute

// RecoverStaleRuns resets runs a crashed worker left in running and
// re-queues them. Called once at worker startup.
func RecoverStaleRuns(
	ctx context.Context,
	ch *amqp091.Channel,
	conn *pgxpool.Pool,
) error {
	runStore := runpgx.NewRunDBStore(conn)

	staleRuns, err := runStore.ListStaleRuns(ctx, staleAfter)
	if err != nil {
		return fmt.Errorf("failed to get stale runs: %w", err)
	}

	if len(staleRuns) == 0 {
		logger.Debug("[Queue] No stale runs found")
		return nil
	}

	logger.Info("[Queue] Found stale runs", "count", len(staleRuns))

	for _, run := range staleRuns {
		if err := runStore.ResetRun(ctx, run.ID); err != nil {
			logger.Error("[Queue] Failed to reset run status", "run_id", run.ID, "err", err)
			continue
		}

		msgBytes, err := json.Marshal(ExtractRunMsg{
			RunID:     run.ID,
			ShardPath: run.ShardPath,
			Source:    run.Source,
		})
		if err != nil {
			logger.Error("[Queue] Failed to marshal queue message", "run_id", run.ID, "err", err)
			continue
		}

		if err := PublishFIFO(ch, ExtractQueue, msgBytes); err != nil {
			logger.Error("[Queue] Failed to re-queue stale run", "run_id", run.ID, "err", err)
			continue
		}

		logger.Info("[Queue] Re-queued stale run", "run_id", run.ID, "shard", run.ShardPath)
	}

	return nil
}
