package routes

import (
	"errors"
	"fmt"
	"net/http"
	"path"

	"depdm/internal/server/middleware"
	"depdm/internal/storage"
	"depdm/pkg/store"

	"github.com/labstack/echo/v4"
)

// GetRunArtifactsHandler returns presigned download links for a run's
// exported DISSECT files.
func GetRunArtifactsHandler(c echo.Context) error {
	type getArtifactsData struct {
		RunID string `param:"id" validate:"required"`
	}

	type artifactLink struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	}

	type getArtifactsResponse struct {
		Message   string         `json:"message"`
		Artifacts []artifactLink `json:"artifacts,omitempty"`
	}

	data := new(getArtifactsData)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, getArtifactsResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, getArtifactsResponse{
			Message: "Invalid request params",
		})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	run, err := app.Runs.GetRun(ctx, data.RunID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, getArtifactsResponse{
				Message: "Run not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, getArtifactsResponse{
			Message: "Internal server error",
		})
	}
	if run.Status != store.RunCompleted {
		return c.JSON(http.StatusConflict, getArtifactsResponse{
			Message: "Run is not completed yet",
		})
	}

	prefix := fmt.Sprintf("runs/%s/", data.RunID)
	keys, err := storage.ListFilesWithPrefix(ctx, app.S3, prefix)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, getArtifactsResponse{
			Message: "Internal server error",
		})
	}

	artifacts := make([]artifactLink, 0, len(keys))
	for _, key := range keys {
		url, err := storage.GenerateDownloadLink(ctx, app.S3, key)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, getArtifactsResponse{
				Message: "Internal server error",
			})
		}
		artifacts = append(artifacts, artifactLink{
			Name: path.Base(key),
			URL:  url,
		})
	}

	return c.JSON(http.StatusOK, getArtifactsResponse{
		Message:   "OK",
		Artifacts: artifacts,
	})
}
