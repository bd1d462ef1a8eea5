package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"depdm/internal/storage"
	"depdm/internal/timing"
	"depdm/internal/util"
	"depdm/pkg/corpus"
	"depdm/pkg/leaselock"
	"depdm/pkg/loader"
	ioloader "depdm/pkg/loader/io"
	s3loader "depdm/pkg/loader/s3"
	"depdm/pkg/logger"
	"depdm/pkg/store"
	runpgx "depdm/pkg/store/pgx"

	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rabbitmq/amqp091-go"
)

// ProcessExtractMessage runs one shard-extraction job: load the shard,
// build the co-occurrence tensor, persist the flattened matrix, and
// upload the DISSECT artifacts. A lease on the run id guarantees a
// single writer per run across worker replicas.
func ProcessExtractMessage(
	ctx context.Context,
	s3Client *awss3.Client,
	ch *amqp091.Channel,
	conn *pgxpool.Pool,
	msg string,
) (err error) {
	data := new(ExtractRunMsg)
	if err = json.Unmarshal([]byte(msg), data); err != nil {
		return err
	}
	if data.RunID == "" {
		return fmt.Errorf("extract message without run id")
	}

	runStore := runpgx.NewRunDBStore(conn)

	defer func() {
		if err == nil {
			return
		}
		updateCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if failErr := runStore.FailRun(updateCtx, data.RunID, err.Error()); failErr != nil {
			logger.Warn("[Queue] Failed to mark run as failed", "run_id", data.RunID, "err", failErr)
		}
		publishRunEvent(ch, RunEventMsg{RunID: data.RunID, Status: string(store.RunFailed), Error: err.Error()})
	}()

	locker := leaselock.New(conn)
	return locker.WithLease(ctx, "run:"+data.RunID, leaselock.Options{
		TTL:         10 * time.Minute,
		TokenPrefix: "worker-",
	}, func(ctx context.Context) error {
		return runExtraction(ctx, s3Client, ch, runStore, data)
	})
}

func runExtraction(
	ctx context.Context,
	s3Client *awss3.Client,
	ch *amqp091.Channel,
	runStore store.RunStore,
	data *ExtractRunMsg,
) error {
	if err := runStore.MarkRunning(ctx, data.RunID); err != nil {
		return err
	}

	var shardLoader loader.ShardLoader
	if data.Source == "s3" {
		bucket := util.GetEnvString("AWS_BUCKET", "depdm")
		shardLoader = s3loader.NewS3ShardLoaderWithClient(bucket, s3Client)
	} else {
		shardLoader = ioloader.NewIOShardLoader()
	}

	shard := loader.NewShard(loader.NewShardParams{
		ID:     data.RunID,
		Path:   data.ShardPath,
		Loader: shardLoader,
	})

	sw := timing.Start()

	r, err := shard.Open(ctx)
	if err != nil {
		return fmt.Errorf("failed to open shard: %w", err)
	}

	model, err := corpus.NewModel()
	if err != nil {
		return err
	}
	if err := model.ProcessReader(r); err != nil {
		return fmt.Errorf("failed to process shard: %w", err)
	}

	stats := model.Stats()
	logger.Info("[Queue] Shard processed",
		"run_id", data.RunID,
		"lines", stats.Lines,
		"skipped", stats.Skipped,
		"paths", stats.Paths,
	)

	cells := store.CellsFromMatrix(model.Tensor().Matricize(nil))
	if err := util.RetryErrWithContext(ctx, 3, func(ctx context.Context) error {
		return runStore.SaveCells(ctx, data.RunID, cells)
	}); err != nil {
		return fmt.Errorf("failed to save cells: %w", err)
	}

	if err := uploadArtifacts(ctx, s3Client, model, data.RunID); err != nil {
		return err
	}

	elapsed := sw.Elapsed()
	if err := runStore.CompleteRun(ctx, data.RunID, store.CompleteRunParams{
		Lines:      stats.Lines,
		Skipped:    stats.Skipped,
		Paths:      stats.Paths,
		Words:      model.Tensor().Words(),
		Links:      model.Tensor().Links(),
		DurationMs: elapsed.Milliseconds(),
	}); err != nil {
		return err
	}

	logger.Info("[Queue] Run completed", "run_id", data.RunID, "duration", timing.Format(elapsed))
	publishRunEvent(ch, RunEventMsg{RunID: data.RunID, Status: string(store.RunCompleted)})
	return nil
}

// uploadArtifacts exports the DISSECT files to a scratch directory and
// puts them under runs/<id>/ in the bucket.
func uploadArtifacts(ctx context.Context, s3Client *awss3.Client, model *corpus.Model, runID string) error {
	if s3Client == nil {
		return nil
	}

	exportDir, err := os.MkdirTemp("", "depdm-export-")
	if err != nil {
		return fmt.Errorf("failed to create export dir: %w", err)
	}
	defer os.RemoveAll(exportDir)

	files, err := model.Export(exportDir)
	if err != nil {
		return fmt.Errorf("failed to export tensor: %w", err)
	}

	for _, path := range []string{files.Rows, files.Cols, files.Matrix} {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open artifact: %w", err)
		}
		key := fmt.Sprintf("runs/%s/%s", runID, filepath.Base(path))
		err = storage.PutFile(ctx, s3Client, key, f)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func publishRunEvent(ch *amqp091.Channel, event RunEventMsg) {
	body, err := json.Marshal(event)
	if err != nil {
		logger.Warn("[Queue] Failed to marshal run event", "run_id", event.RunID, "err", err)
		return
	}
	if err := PublishTopic(ch, "runs."+event.Status, body); err != nil {
		logger.Warn("[Queue] Failed to publish run event", "run_id", event.RunID, "err", err)
	}
}
