package routes

import (
	"errors"
	"net/http"

	"depdm/internal/server/middleware"
	"depdm/pkg/store"

	"github.com/labstack/echo/v4"
)

// GetRunRowHandler returns a word's co-occurrence row from a finished
// run: every "<relation>_<word2>" feature paired with its count.
func GetRunRowHandler(c echo.Context) error {
	type getRowData struct {
		RunID string `param:"id" validate:"required"`
		Word  string `param:"word" validate:"required"`
	}

	type getRowResponse struct {
		Message string       `json:"message"`
		Word    string       `json:"word,omitempty"`
		Cells   []store.Cell `json:"cells,omitempty"`
	}

	data := new(getRowData)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, getRowResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, getRowResponse{
			Message: "Invalid request params",
		})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	run, err := app.Runs.GetRun(ctx, data.RunID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, getRowResponse{
				Message: "Run not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, getRowResponse{
			Message: "Internal server error",
		})
	}
	if run.Status != store.RunCompleted {
		return c.JSON(http.StatusConflict, getRowResponse{
			Message: "Run is not completed yet",
		})
	}

	cells, err := app.Runs.GetRow(ctx, data.RunID, data.Word)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, getRowResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, getRowResponse{
		Message: "OK",
		Word:    data.Word,
		Cells:   cells,
	})
}
