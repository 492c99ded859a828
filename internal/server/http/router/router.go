package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/accounts/internal/config"
	"github.com/polkiloo/accounts/internal/server/http/handlers"
	"github.com/polkiloo/accounts/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.AccountFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	statuses := handlers.NewStatusMapper(cfg.LegacyStatusCodes)

	engine.Use(middleware.RequestID())
	engine.Use(middleware.Recovery(logger, statuses.InternalStatus()))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithDecompressFn(gzip.DefaultDecompressHandle)))

	accountHandler := handlers.NewAccountHandler(facade, statuses, logger)

	engine.GET("/", accountHandler.Home)
	engine.POST("/register", accountHandler.Register)
	engine.POST("/login", accountHandler.Login)
	engine.POST("/update", accountHandler.Update)
	engine.POST("/delete", accountHandler.Delete)

	authorized := engine.Group("")
	authorized.Use(middleware.AuthRequired(facade, statuses.InternalStatus()))
	authorized.GET("/me", accountHandler.Profile)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"status": "not_found", "message": "page not found"})
	})

	return engine
}
