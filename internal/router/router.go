package router

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dougladias/vida-plena-api/internal/handler"
	"github.com/dougladias/vida-plena-api/internal/middleware"
	"github.com/dougladias/vida-plena-api/pkg/metrics"
)

// Handler mounts a group of routes on the engine.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

// ProtectedHandler additionally exposes routes that require a valid token.
type ProtectedHandler interface {
	Handler
	RegisterProtectedRoutes(*gin.RouterGroup)
}

type Router struct {
	engine *gin.Engine
	auth   *middleware.AuthMiddleware

	userH          Handler
	sessionH       ProtectedHandler
	patientH       Handler
	doctorH        Handler
	consultationH  Handler
	prescriptionH  Handler
	medicalRecordH Handler

	h       *handler.Handler
	metrics *metrics.Metrics
}

type Config struct {
	RateLimitRPS   float64
	RateLimitBurst int
	CORS           middleware.CORSConfig
}

func NewRouter(
	auth *middleware.AuthMiddleware,
	userH Handler,
	sessionH ProtectedHandler,
	patientH Handler,
	doctorH Handler,
	consultationH Handler,
	prescriptionH Handler,
	medicalRecordH Handler,
	h *handler.Handler,
	m *metrics.Metrics,
	config Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	r := &Router{
		engine:         engine,
		auth:           auth,
		userH:          userH,
		sessionH:       sessionH,
		patientH:       patientH,
		doctorH:        doctorH,
		consultationH:  consultationH,
		prescriptionH:  prescriptionH,
		medicalRecordH: medicalRecordH,
		h:              h,
		metrics:        m,
	}

	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		r.metricsMiddleware(),
	)
	engine.Use(middleware.CORS(config.CORS))

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RPS:   config.RateLimitRPS,
		Burst: config.RateLimitBurst,
	})
	engine.Use(rateLimiter.RateLimit())

	return r
}

func (r *Router) Setup() {
	root := r.engine.Group("")

	// Operational endpoints
	root.GET("/health", r.h.HealthCheck)
	root.GET("/metrics", r.h.MetricsHandler)

	// Public routes
	r.userH.RegisterRoutes(root)
	r.sessionH.RegisterRoutes(root)

	// Everything else requires a valid session token.
	protected := root.Group("")
	protected.Use(r.auth.Authenticate())

	r.sessionH.RegisterProtectedRoutes(protected)
	r.patientH.RegisterRoutes(protected)
	r.doctorH.RegisterRoutes(protected)
	r.consultationH.RegisterRoutes(protected)
	r.prescriptionH.RegisterRoutes(protected)
	r.medicalRecordH.RegisterRoutes(protected)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.RequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.RequestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.ErrorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}
