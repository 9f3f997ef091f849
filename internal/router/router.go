// Package router wires the HTTP surface: every /api route group, the
// health check and the Redis-backed middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/Leplia/Diller-shop/internal/config"
	"github.com/Leplia/Diller-shop/internal/handler"
	"github.com/Leplia/Diller-shop/internal/middleware"
)

// Handlers bundles every handler the router needs. main builds one of
// these after constructing the repositories.
type Handlers struct {
	Catalog    *handler.CatalogHandler
	CarAdmin   *handler.CarAdminHandler
	Orders     *handler.OrderHandler
	Payments   *handler.PaymentHandler
	TestDrives *handler.TestDriveHandler
	Reviews    *handler.ReviewHandler
	Users      *handler.UserHandler
	Dealers    *handler.DealerHandler
	Types      *handler.VehicleTypeHandler
	FAQ        *handler.FAQHandler
}

// Register mounts all routes on e. The rate limiter guards the whole
// /api group; the response cache covers only the read-heavy catalog
// and reference GETs. Both degrade to pass-through when rdb is nil.
func Register(e *echo.Echo, h Handlers, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	api := e.Group("/api")
	api.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))

	cached := middleware.ResponseCache(config.LoadCacheConfig(), rdb)

	cars := api.Group("/cars")
	cars.GET("", h.Catalog.List, cached)
	cars.GET("/popular", h.Catalog.Popular, cached)
	cars.GET("/new", h.Catalog.Newest, cached)
	cars.GET("/filters/options", h.Catalog.FilterOptions, cached)
	// The :id route comes after the literal paths so "popular" and
	// "new" are not parsed as ids.
	cars.GET("/:id", h.Catalog.GetByID, cached)
	cars.POST("", h.CarAdmin.Create)
	cars.PUT("/:id", h.CarAdmin.Update)
	cars.DELETE("/:id", h.CarAdmin.Delete)
	cars.POST("/:id/images", h.CarAdmin.AddImages)
	cars.DELETE("/:id/images", h.CarAdmin.DeleteImages)

	orders := api.Group("/orders")
	orders.GET("", h.Orders.List)
	orders.POST("", h.Orders.Create)
	orders.PATCH("/:id/status", h.Orders.UpdateStatus)

	api.POST("/payments", h.Payments.Create)

	drives := api.Group("/test-drives")
	drives.GET("", h.TestDrives.List)
	drives.POST("", h.TestDrives.Create)
	drives.PATCH("/:id/status", h.TestDrives.UpdateStatus)

	reviews := api.Group("/reviews")
	reviews.POST("", h.Reviews.Create)
	reviews.GET("/best", h.Reviews.Best, cached)

	users := api.Group("/users")
	users.POST("/register", h.Users.Register)
	users.POST("/login", h.Users.Login)
	users.POST("/check-email", h.Users.CheckEmail)
	users.GET("", h.Users.List)
	users.PATCH("/:id/block", h.Users.SetBlocked)
	users.PATCH("/:id/role", h.Users.SetRole)
	users.PATCH("/:id/name", h.Users.SetName)
	users.PATCH("/:id/password", h.Users.SetPassword)
	users.DELETE("/:id", h.Users.Delete)

	dealers := api.Group("/dealers")
	dealers.GET("", h.Dealers.List, cached)
	dealers.POST("", h.Dealers.Create)
	dealers.DELETE("/:id", h.Dealers.Delete)

	types := api.Group("/vehicle-types")
	types.GET("", h.Types.List, cached)
	types.POST("", h.Types.Create)
	types.DELETE("/:id", h.Types.Delete)

	faq := api.Group("/faq")
	faq.POST("", h.FAQ.Create)
	faq.GET("", h.FAQ.List)
	faq.GET("/user/:user_id", h.FAQ.ListByUser)
	faq.PATCH("/:id", h.FAQ.Answer)
}
