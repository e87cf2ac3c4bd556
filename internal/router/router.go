package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"inkwell/internal/auth"
	"inkwell/internal/config"
	"inkwell/internal/handler"
)

// Register wires routes and middleware. The secured group applies the two auth
// gate stages in order: bearer token validation, then the session cross-check
// that attaches the identity.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	users auth.UserFinder,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	articleHandler *handler.ArticleHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
		ExposeHeaders:    []string{"Set-Cookie"},
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/users/register", authHandler.Register)
	api.POST("/users/login", authHandler.Login)
	api.POST("/users/logout", authHandler.Logout)
	api.GET("/articles/all", articleHandler.ListArticles)
	api.GET("/articles/user/:id", articleHandler.ListByUser)
	api.GET("/articles/article/:id", articleHandler.GetArticle)

	// Secured routes (bearer token + session cookie cross-check)
	secured := api.Group("", auth.TokenValidator(cfg.JWTSecret), auth.SessionGuard(users))

	secured.GET("/users/me", userHandler.Me)
	secured.PUT("/users/edit/:id", userHandler.Update)
	secured.DELETE("/users/delete/:id", userHandler.Delete)

	secured.POST("/articles/add", articleHandler.Create)
	secured.PUT("/articles/edit/:id", articleHandler.Update)
	secured.DELETE("/articles/delete/:id", articleHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
