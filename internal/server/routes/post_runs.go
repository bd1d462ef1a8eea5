package routes

import (
	"encoding/json"
	"net/http"

	"depdm/internal/queue"
	"depdm/internal/server/middleware"
	"depdm/pkg/store"

	gonanoid "github.com/matoous/go-nanoid/v2"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// CreateRunHandler registers a new extraction run and enqueues the
// shard-extraction job for the worker.
func CreateRunHandler(c echo.Context) error {
	type createRunBody struct {
		ShardPath string `json:"shard_path" validate:"required"`
		Source    string `json:"source" validate:"required,oneof=file s3"`
	}

	type createRunResponse struct {
		Message string `json:"message"`
		RunID   string `json:"run_id,omitempty"`
	}

	data := new(createRunBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createRunResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createRunResponse{
			Message: "Invalid request body",
		})
	}

	runID, err := gonanoid.New()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, createRunResponse{
			Message: "Internal server error",
		})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	if err := app.Runs.CreateRun(ctx, store.Run{
		ID:        runID,
		ShardPath: data.ShardPath,
		Source:    data.Source,
	}); err != nil {
		return c.JSON(http.StatusInternalServerError, createRunResponse{
			Message: "Internal server error",
		})
	}

	msgBytes, err := json.Marshal(queue.ExtractRunMsg{
		RunID:     runID,
		ShardPath: data.ShardPath,
		Source:    data.Source,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, createRunResponse{
			Message: "Internal server error",
		})
	}
	if err := queue.PublishFIFO(app.Queue, queue.ExtractQueue, msgBytes); err != nil {
		return c.JSON(http.StatusInternalServerError, createRunResponse{
			Message: "Failed to enqueue extraction job",
		})
	}

	return c.JSON(http.StatusAccepted, createRunResponse{
		Message: "Run queued",
		RunID:   runID,
	})
}
