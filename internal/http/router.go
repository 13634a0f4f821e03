package http

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"personal-site/internal/metrics"
	"personal-site/internal/service"
)

// RouterOptions agrupa lo configurable del router.
type RouterOptions struct {
	AllowOrigins []string
	LogRequests  bool
	StaticDir    string
}

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	opts RouterOptions,
	m *metrics.Metrics,
	messageH *MessageHandler,
	aboutH *AboutHandler,
	healthH *HealthHandler,
) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	// metrics va antes que recovery para contar también las requests que entran en pánico.
	r.Use(requestIDMiddleware(), metricsMiddleware(m), recoveryMiddleware(logger))
	if opts.LogRequests {
		r.Use(zapLoggerMiddleware(logger))
	}
	r.Use(cors.New(corsConfig(opts.AllowOrigins)))

	messages := r.Group("/messages")
	messages.GET("", messageH.ListMessages)
	messages.POST("/save", messageH.SaveMessage)
	messages.GET("/:messageId", messageH.GetMessage)

	r.GET("/about", aboutH.GetAbout)
	r.GET("/healthz", healthH.Health)
	r.GET("/metrics", gin.WrapH(m.Handler()))

	if strings.TrimSpace(opts.StaticDir) != "" {
		r.Static("/static", opts.StaticDir)
	}

	r.NoRoute(notFound)
	r.NoMethod(notFound)

	return r
}

func notFound(c *gin.Context) {
	writeError(c, service.KindNotFound, statusNotFound)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	cfg.AllowHeaders = append(cfg.AllowHeaders, requestIDHeader)
	cfg.ExposeHeaders = []string{requestIDHeader}

	explicit := make([]string, 0, len(origins))
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
		if o != "" {
			explicit = append(explicit, o)
		}
	}
	if len(explicit) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = explicit
	return cfg
}
