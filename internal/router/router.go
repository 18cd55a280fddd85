package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"vinolog/internal/auth"
	"vinolog/internal/config"
	"vinolog/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	wineHandler *handler.WineHandler,
	tastingHandler *handler.TastingHandler,
	uploadHandler *handler.UploadHandler,
	statsHandler *handler.StatsHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	secured.GET("/me", userHandler.Me)
	secured.GET("/admin/users", userHandler.ListUsers)

	// Wine catalog routes
	secured.GET("/wines", wineHandler.ListWines)
	secured.POST("/wines", wineHandler.CreateWine)
	secured.GET("/wines/:id", wineHandler.GetWine)
	secured.PUT("/wines/:id", wineHandler.UpdateWine)
	secured.DELETE("/wines/:id", wineHandler.DeleteWine)

	// Tasting diary routes
	secured.GET("/tastings", tastingHandler.ListTastings)
	secured.POST("/tastings", tastingHandler.CreateTasting)
	secured.GET("/tastings/:id", tastingHandler.GetTasting)
	secured.PUT("/tastings/:id", tastingHandler.UpdateTasting)
	secured.DELETE("/tastings/:id", tastingHandler.DeleteTasting)
	secured.PUT("/tastings/:id/visual", tastingHandler.SetVisualAnalysis)
	secured.PUT("/tastings/:id/olfactory", tastingHandler.SetOlfactoryAnalysis)
	secured.PUT("/tastings/:id/gustatory", tastingHandler.SetGustatoryAnalysis)

	// Gallery routes
	secured.GET("/uploads", uploadHandler.ListUploads)
	secured.POST("/uploads", uploadHandler.UploadImage)
	secured.GET("/uploads/:id/url", uploadHandler.GetUploadURL)
	secured.DELETE("/uploads/:id", uploadHandler.DeleteUpload)

	// Dashboard
	secured.GET("/dashboard", statsHandler.Dashboard)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
