package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"depdm/internal/queue"
	"depdm/internal/server/middleware"
	"depdm/pkg/store"

	"github.com/labstack/echo/v4"
)

// DeleteRunHandler enqueues the deletion of a run: its database rows
// and its exported artifacts. The worker carries out the deletion so
// the API call returns immediately.
func DeleteRunHandler(c echo.Context) error {
	type deleteRunData struct {
		RunID string `param:"id" validate:"required"`
	}

	type deleteRunResponse struct {
		Message string `json:"message"`
	}

	data := new(deleteRunData)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, deleteRunResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, deleteRunResponse{
			Message: "Invalid request params",
		})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	if _, err := app.Runs.GetRun(ctx, data.RunID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, deleteRunResponse{
				Message: "Run not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, deleteRunResponse{
			Message: "Internal server error",
		})
	}

	msgBytes, err := json.Marshal(queue.DeleteRunMsg{RunID: data.RunID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, deleteRunResponse{
			Message: "Internal server error",
		})
	}
	if err := queue.PublishFIFO(app.Queue, queue.DeleteQueue, msgBytes); err != nil {
		return c.JSON(http.StatusInternalServerError, deleteRunResponse{
			Message: "Failed to enqueue deletion",
		})
	}

	return c.JSON(http.StatusAccepted, deleteRunResponse{
		Message: "Run deletion queued",
	})
}
