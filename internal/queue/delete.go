package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"depdm/internal/storage"
	"depdm/pkg/logger"
	"depdm/pkg/store"
	runpgx "depdm/pkg/store/pgx"

	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rabbitmq/amqp091-go"
)

// ProcessDeleteMessage drops a run's database rows and removes its
// exported artifacts from the bucket. A run that is already gone is not
// an error; deletion is idempotent.
func ProcessDeleteMessage(
	ctx context.Context,
	s3Client *awss3.Client,
	ch *amqp091.Channel,
	conn *pgxpool.Pool,
	msg string,
) error {
	data := new(DeleteRunMsg)
	if err := json.Unmarshal([]byte(msg), data); err != nil {
		return err
	}
	if data.RunID == "" {
		return fmt.Errorf("delete message without run id")
	}

	runStore := runpgx.NewRunDBStore(conn)
	if err := runStore.DeleteRun(ctx, data.RunID); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}
		logger.Debug("[Queue] Run already deleted", "run_id", data.RunID)
	}

	if s3Client != nil {
		prefix := fmt.Sprintf("runs/%s/", data.RunID)
		if err := storage.DeleteFolder(ctx, s3Client, prefix); err != nil {
			return err
		}
	}

	logger.Info("[Queue] Run deleted", "run_id", data.RunID)
	return nil
}
