package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"shoporders/internal/auth"
	"shoporders/internal/config"
	"shoporders/internal/errors"
	"shoporders/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	orderHandler *handler.OrderHandler,
	orderItemHandler *handler.OrderItemHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	requireAuth := RequireAuth(cfg.JWTSecret)

	// Auth routes
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/profile", authHandler.Profile, requireAuth)

	// User routes (open)
	e.POST("/users", userHandler.CreateUser)
	e.GET("/users", userHandler.ListUsers)
	e.GET("/users/:id", userHandler.GetUser)
	e.DELETE("/users/:id", userHandler.DeleteUser)

	// Order routes: reads open, mutations require a bearer token
	e.POST("/orders", orderHandler.CreateOrder, requireAuth)
	e.GET("/orders", orderHandler.ListOrders)
	e.GET("/orders/:id", orderHandler.GetOrder)
	e.DELETE("/orders/:id", orderHandler.DeleteOrder, requireAuth)

	// Order item routes: same policy as orders
	e.POST("/order_items", orderItemHandler.CreateItem, requireAuth)
	e.GET("/order_items", orderItemHandler.ListItems)
	e.GET("/order_items/:id", orderItemHandler.GetItem)
	e.DELETE("/order_items/:id", orderItemHandler.DeleteItem, requireAuth)
}

// RequireAuth is the bearer-token guard. A missing header, a malformed
// header, a bad signature, and an expired token all produce the same 401
// response; the underlying cause is only logged. Verified claims are
// attached to the request context under "user".
func RequireAuth(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			c.Logger().Warnf("rejected token on %s %s: %v", c.Request().Method, c.Path(), err)
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "invalid or expired token",
				Code:  "UNAUTHORIZED",
			})
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
