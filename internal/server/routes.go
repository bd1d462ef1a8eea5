package server

import (
	"depdm/internal/server/middleware"
	"depdm/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api", middleware.AuthMiddleware)

	// Run routes
	apiRoutes.GET("/runs", routes.GetRunsHandler, middleware.RequireAnyPermission("run.view", "run.view:all"))
	apiRoutes.POST("/runs", routes.CreateRunHandler, middleware.RequirePermission("run.create"))
	apiRoutes.GET("/runs/:id", routes.GetRunHandler, middleware.RequireAnyPermission("run.view", "run.view:all"))
	apiRoutes.DELETE("/runs/:id", routes.DeleteRunHandler, middleware.RequirePermission("run.delete"))

	// Co-occurrence query routes
	apiRoutes.GET("/runs/:id/rows/:word", routes.GetRunRowHandler, middleware.RequireAnyPermission("run.view", "run.view:all"))

	// Export artifact routes
	apiRoutes.GET("/runs/:id/artifacts", routes.GetRunArtifactsHandler, middleware.RequireAnyPermission("run.view", "run.view:all"))
}
