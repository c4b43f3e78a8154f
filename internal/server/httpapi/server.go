// Package httpapi exposes the authentication service over HTTP/JSON:
// the login and verify endpoints plus liveness and store health checks.
package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rbarroso/auth-backend/internal/logging"
	"github.com/rbarroso/auth-backend/internal/server/config"
	"github.com/rbarroso/auth-backend/internal/server/login"
	"github.com/rbarroso/auth-backend/internal/server/storage"
)

type Server struct {
	cfg    *config.Config
	logger logging.Logger
	login  *login.Service
	store  storage.RepositoryManager
	engine *gin.Engine
}

func NewServer(cfg *config.Config, logger logging.Logger, loginService *login.Service, store storage.RepositoryManager) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		cfg:    cfg,
		logger: logger,
		login:  loginService,
		store:  store,
	}

	engine := gin.New()
	engine.Use(s.requestLogger())
	// Last line of defense: any panic escaping a handler becomes a generic
	// 500 and the process keeps serving.
	engine.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		s.logger.Error(c.Request.Context(), "panic recovered", "path", c.Request.URL.Path, "panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse("Erro interno do servidor"))
	}))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.CORSAllowedOrigins, ",")
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	engine.Use(cors.New(corsConfig))

	engine.GET("/health", s.handleHealth)
	engine.GET("/health/db", s.handleHealthDB)

	api := engine.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/login", s.handleLogin)
			authRoutes.POST("/verify", s.handleVerify)
		}
	}

	s.engine = engine
	return s
}

// Handler returns the underlying HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.EndpointAddr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	s.logger.Info(ctx, "http server started", "addr", s.cfg.EndpointAddr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
