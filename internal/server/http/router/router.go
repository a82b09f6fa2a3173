package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/polkiloo/encomendas/internal/config"
	"github.com/polkiloo/encomendas/internal/server/http/handlers"
	"github.com/polkiloo/encomendas/internal/server/http/middleware"
	"github.com/polkiloo/encomendas/internal/session"
)

var pages = []string{"/", "/" + session.PageIndex, "/" + session.PageHistory, "/" + session.PageLogin, "/" + session.PageRegister}

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.TrackerFacade, logger *slog.Logger, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	exportHandler := handlers.NewExportHandler(facade)
	pageHandler := handlers.NewPageHandler(cfg.WebDir)

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	guarded := engine.Group("")
	guarded.Use(middleware.OptionalAuth(facade))
	for _, page := range pages {
		guarded.GET(page, pageHandler.Serve)
	}

	api := engine.Group("/api")
	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)
	user.POST("/logout", middleware.OptionalAuth(facade), authHandler.Logout)

	userAuth := user.Group("")
	userAuth.Use(middleware.AuthRequired(facade))
	userAuth.GET("/me", authHandler.Me)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(facade))
	protected.GET("/orders", orderHandler.List)
	protected.POST("/orders", orderHandler.Create)
	protected.GET("/orders/export.csv", exportHandler.CSV)
	protected.GET("/orders/export.xlsx", exportHandler.XLSX)
	protected.GET("/orders/print", exportHandler.Print)
	protected.PATCH("/orders/:id", orderHandler.Update)
	protected.PATCH("/orders/:id/status", orderHandler.UpdateStatus)
	protected.DELETE("/orders/:id", orderHandler.Delete)
	protected.GET("/dashboard", orderHandler.Dashboard)
	protected.GET("/audit", orderHandler.Audit)

	return engine
}
