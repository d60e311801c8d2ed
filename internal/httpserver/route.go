package httpserver

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/marcelly-ramos/projeto-backend/internal/logging"
	"github.com/marcelly-ramos/projeto-backend/internal/middleware/auth"
	loggingmw "github.com/marcelly-ramos/projeto-backend/internal/middleware/logging"
)

const DefaultAuthRate = rate.Limit(5)

type Deps struct {
	UserHandler     *UserHTTP
	CategoryHandler *CategoryHTTP
	ProductHandler  *ProductHTTP

	Auth *auth.BearerAuth
	// Ready backs /health/ready. Nil means always ready.
	Ready func(ctx context.Context) error
	// AuthRate limits signup and token requests per client IP.
	AuthRate rate.Limit
}

// New builds the echo instance with the middleware stack every route shares.
func New(logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())
	return e
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if d.Ready == nil {
			return c.NoContent(http.StatusOK)
		}
		if err := d.Ready(c.Request().Context()); err != nil {
			logging.FromContext(c.Request().Context()).Error("ready_check_failed", "status", 503, "error", err)
			return c.NoContent(http.StatusServiceUnavailable)
		}
		return c.NoContent(http.StatusOK)
	})

	requireAuth := d.Auth.RequireAuth
	limitAuth := authLimiter(d.AuthRate)

	v1 := e.Group("/v1")

	users := v1.Group("/user")
	users.POST("", d.UserHandler.CreateUser, limitAuth)
	users.POST("/token", d.UserHandler.CreateToken, limitAuth)
	users.GET("/:id", d.UserHandler.GetUser)
	users.PUT("/:id", d.UserHandler.UpdateUser, requireAuth)
	users.DELETE("/:id", d.UserHandler.DeleteUser, requireAuth)

	categories := v1.Group("/category")
	categories.GET("/search", d.CategoryHandler.SearchCategories)
	categories.GET("/:id", d.CategoryHandler.GetCategory)
	categories.POST("", d.CategoryHandler.CreateCategory, requireAuth)
	categories.PUT("/:id", d.CategoryHandler.UpdateCategory, requireAuth)
	categories.DELETE("/:id", d.CategoryHandler.DeleteCategory, requireAuth)

	products := v1.Group("/product")
	products.GET("/search", d.ProductHandler.SearchProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.POST("", d.ProductHandler.CreateProduct, requireAuth)
	products.PUT("/:id", d.ProductHandler.UpdateProduct, requireAuth)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct, requireAuth)
}

func authLimiter(r rate.Limit) echo.MiddlewareFunc {
	if r <= 0 {
		r = DefaultAuthRate
	}
	store := echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      r,
		ExpiresIn: 3 * time.Minute,
	})
	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
	})
}
