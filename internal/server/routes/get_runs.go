package routes

import (
	"errors"
	"net/http"

	"depdm/internal/server/middleware"
	"depdm/pkg/store"

	"github.com/labstack/echo/v4"
)

// GetRunsHandler lists every extraction run, newest first.
func GetRunsHandler(c echo.Context) error {
	type getRunsResponse struct {
		Message string      `json:"message"`
		Runs    []store.Run `json:"runs,omitempty"`
	}

	ctx := c.Request().Context()
	runs, err := c.(*middleware.AppContext).App.Runs.ListRuns(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, getRunsResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, getRunsResponse{
		Message: "OK",
		Runs:    runs,
	})
}

// GetRunHandler returns one run with its counters.
func GetRunHandler(c echo.Context) error {
	type getRunData struct {
		RunID string `param:"id" validate:"required"`
	}

	type getRunResponse struct {
		Message string     `json:"message"`
		Run     *store.Run `json:"run,omitempty"`
	}

	data := new(getRunData)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, getRunResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, getRunResponse{
			Message: "Invalid request params",
		})
	}

	ctx := c.Request().Context()
	run, err := c.(*middleware.AppContext).App.Runs.GetRun(ctx, data.RunID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, getRunResponse{
				Message: "Run not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, getRunResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, getRunResponse{
		Message: "OK",
		Run:     &run,
	})
}
