package mockapi

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cudeca/eventos-seed/internal/middleware"
	"github.com/cudeca/eventos-seed/internal/model"
	"github.com/cudeca/eventos-seed/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// Role names granted by the backend
const (
	RoleBuyer = "COMPRADOR"
	RoleAdmin = "ADMINISTRADOR"
)

// Config holds mock backend settings
type Config struct {
	JWTSecret string
	TokenTTL  time.Duration
	// TokenField names the login response field carrying the token, either
	// "token" or "access_token"
	TokenField string
	// AllowRoleRequest grants the role sent at registration. Otherwise every
	// account is a plain buyer.
	AllowRoleRequest bool
	// RequireAdmin restricts event creation and publishing to administrators
	RequireAdmin bool
	RateLimit    float64
	RateBurst    int
	// BcryptCost defaults to bcrypt.DefaultCost
	BcryptCost int
}

// Server is the mock events backend
type Server struct {
	cfg     Config
	store   *Store
	tokens  *jwt.Service
	limiter *middleware.RateLimiter
	logger  *slog.Logger
	handler http.Handler
}

// New creates a mock backend serving the REST API under /api
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	if cfg.TokenField == "" {
		cfg.TokenField = "token"
	}
	if cfg.TokenField != "token" && cfg.TokenField != "access_token" {
		return nil, fmt.Errorf("unsupported token field %q", cfg.TokenField)
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if logger == nil {
		logger = slog.Default()
	}

	tokens, err := jwt.NewService(jwt.Config{
		Secret:     cfg.JWTSecret,
		Issuer:     "eventos-mockapi",
		Expiration: cfg.TokenTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("token service: %w", err)
	}

	s := &Server{
		cfg:    cfg,
		store:  NewStore(),
		tokens: tokens,
		logger: logger,
	}

	router := gin.New()
	s.routes(router)

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
	}
	if cfg.RateLimit > 0 {
		s.limiter = middleware.NewRateLimiter(middleware.RateLimitConfig{
			RPS:   cfg.RateLimit,
			Burst: cfg.RateBurst,
		})
		mws = append(mws, middleware.RateLimit(s.limiter))
	}
	s.handler = middleware.Chain(router, mws...)

	return s, nil
}

func (s *Server) routes(router *gin.Engine) {
	router.NoRoute(func(c *gin.Context) {
		writeProblem(c, model.NewNotFoundError("route"))
	})

	api := router.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := api.Group("/auth")
	auth.POST("/register", s.register)
	auth.POST("/login", s.login)

	api.GET("/eventos", s.listEvents)

	protected := api.Group("/eventos")
	protected.Use(s.authenticate)
	if s.cfg.RequireAdmin {
		protected.Use(requireRole(RoleAdmin))
	}
	protected.POST("", s.createEvent)
	protected.PATCH("/:id/publicar", s.publishEvent)
}

// Handler returns the HTTP handler with the middleware chain applied
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Store exposes the backing store
func (s *Server) Store() *Store {
	return s.store
}

// Close releases background resources
func (s *Server) Close() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
}
