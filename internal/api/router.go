package api

import (
	"net/http"

	"contact-directory/internal/api/middleware"
	"contact-directory/internal/modules/address"
	"contact-directory/internal/modules/contact"
	"contact-directory/internal/modules/user"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes sets up all the API endpoints for the application.
func SetupRoutes(
	e *echo.Echo,
	db *pgxpool.Pool,
	userHandler *user.Handler,
	contactHandler *contact.Handler,
	addressHandler *address.Handler,
	jwtSecret string,
) {
	// Initialize the JWT authentication middleware
	authMiddleware := middleware.JWTAuth(jwtSecret)

	// --- Operational Routes ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/healthz", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	apiGroup := e.Group("/api")

	// --- User Routes ---
	userGroup := apiGroup.Group("/users")
	{
		userGroup.POST("", userHandler.Register)
		userGroup.POST("/login", userHandler.Login)
		userGroup.GET("/current", userHandler.GetCurrent, authMiddleware)
		userGroup.PATCH("/current", userHandler.UpdateCurrent, authMiddleware)
	}

	// --- Contact Routes (addresses nested under a contact) ---
	contactGroup := apiGroup.Group("/contacts", authMiddleware)
	{
		contactGroup.POST("", contactHandler.Create)
		contactGroup.GET("", contactHandler.Search)
		contactGroup.GET("/:contactId", contactHandler.Get)
		contactGroup.PUT("/:contactId", contactHandler.Update)
		contactGroup.DELETE("/:contactId", contactHandler.Remove)

		contactGroup.POST("/:contactId/addresses", addressHandler.Create)
		contactGroup.GET("/:contactId/addresses", addressHandler.List)
		contactGroup.GET("/:contactId/addresses/:addressId", addressHandler.Get)
		contactGroup.PUT("/:contactId/addresses/:addressId", addressHandler.Update)
		contactGroup.DELETE("/:contactId/addresses/:addressId", addressHandler.Remove)
	}
}
