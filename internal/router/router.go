package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yelizavetafitil/BookingBack/internal/handler"
	"github.com/yelizavetafitil/BookingBack/internal/handler/prometheus"
	"github.com/yelizavetafitil/BookingBack/internal/middleware"
)

// Handler registers a group of routes on the engine root group.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Router struct {
	engine  *gin.Engine
	h       *handler.Handler
	metrics *prometheus.Handler
}

type Config struct {
	CORSConfig middleware.CORSConfig
	Debug      bool
}

// NewRouter wires the middleware chain and all route groups. Handlers are
// passed as a slice so main stays a flat constructor list.
func NewRouter(h *handler.Handler, handlers []Handler, config Config) *Router {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	metrics := prometheus.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger())
	engine.Use(middleware.CORS(config.CORSConfig))
	engine.Use(metrics.Middleware())
	engine.Use(middleware.ErrorHandler())

	engine.GET("/health/live", h.LivenessCheck)
	engine.GET("/health/ready", h.ReadinessCheck)
	engine.GET("/metrics", metrics.Handler())

	api := engine.Group("/")
	for _, hd := range handlers {
		hd.RegisterRoutes(api)
	}

	return &Router{engine: engine, h: h, metrics: metrics}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
