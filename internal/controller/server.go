package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Haedeel-Basel/My-Tutor/internal/controller/handlers"
	"github.com/Haedeel-Basel/My-Tutor/internal/httpmiddleware"
	"github.com/Haedeel-Basel/My-Tutor/internal/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server это HTTP-вход приложения: роутер, middleware и жизненный цикл.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

func NewServer(
	port string,
	handler *handlers.Handler,
	limiter *httpmiddleware.RateLimiter,
	pool *pgxpool.Pool,
	redis *store.Redis,
	logger *zap.Logger,
) *Server {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(httpmiddleware.RequestLogger(logger))
	router.Use(httpmiddleware.Metrics())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:          24 * time.Hour,
	}))
	router.Use(securityHeaders())
	router.Use(limiter.GinMiddleware())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", healthz(pool, redis))

	handler.Register(router)

	return &Server{
		httpServer: &http.Server{
			Addr:         ":" + port,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

// Run запускает сервер и блокируется до отмены контекста,
// затем гасит его, давая запросам 10 секунд на завершение.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("🚀 HTTP server started", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	s.logger.Info("HTTP server stopped")
	return nil
}

func healthz(pool *pgxpool.Pool, redis *store.Redis) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbHealthy := pool.Ping(c.Request.Context()) == nil
		redisHealthy := redis.Healthy(c.Request.Context())

		status := http.StatusOK
		if !dbHealthy {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{"status": "ok", "db": dbHealthy, "redis": redisHealthy})
	}
}

func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		if gin.Mode() == gin.ReleaseMode {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}
