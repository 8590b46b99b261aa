package routes

import (
	"net/http"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kalejaiyeoluwadara/push-notification-setup/internal/config"
	"github.com/kalejaiyeoluwadara/push-notification-setup/internal/handlers"
	"github.com/kalejaiyeoluwadara/push-notification-setup/pkg/metrics"
)

// NewRouter wires the API, the metrics endpoint and the browser demo app.
func NewRouter(
	cfg *config.Config,
	notifications *handlers.NotificationHandler,
	webConfig *handlers.WebConfigHandler,
	metricsCollector *metrics.Metrics,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	api := router.Group("/api")
	{
		api.GET("/config", webConfig.Config)
		api.POST("/notifications/send", notifications.SendSingle)
		api.GET("/notifications/send", notifications.Health)
		api.POST("/notifications/send-multiple", notifications.SendMulticast)
	}

	router.GET("/metrics", gin.WrapH(metricsCollector.Handler()))

	// Browser demo app. The worker script must be served from the root scope
	// so its registration can control the whole origin.
	router.GET("/firebase-config.js", webConfig.ConfigScript)
	router.StaticFile("/", filepath.Join(cfg.WebDir, "index.html"))
	router.StaticFile("/app.js", filepath.Join(cfg.WebDir, "app.js"))
	router.StaticFile("/firebase-messaging-sw.js", filepath.Join(cfg.WebDir, "firebase-messaging-sw.js"))
	router.StaticFile("/firebase-logo.png", filepath.Join(cfg.WebDir, "firebase-logo.png"))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return router
}
