package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"taskboard-api/internal/middleware"
	"taskboard-api/internal/permission"
	"taskboard-api/internal/task/repository"
	"taskboard-api/internal/task/usecase"
	"taskboard-api/pkg/datemath"
	"taskboard-api/pkg/log"
	"taskboard-api/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Infrastructure
	postgresDB *pgxpool.Pool
	events     repository.EventRepository

	// Access
	jwtManager    scope.Manager
	middlewareCfg middleware.Config
	permissionCfg permission.CacheConfig
	policy        usecase.Policy

	// Task domain
	dates   *datemath.Parser
	baseURL string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	// Infrastructure
	PostgresDB *pgxpool.Pool
	// Events is optional; nil publishes nothing.
	Events repository.EventRepository

	// Access
	JWTManager    scope.Manager
	Middleware    middleware.Config
	PermissionCfg permission.CacheConfig
	Policy        usecase.Policy

	// Task domain
	Dates   *datemath.Parser
	BaseURL string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		postgresDB:      cfg.PostgresDB,
		events:          cfg.Events,
		jwtManager:      cfg.JWTManager,
		middlewareCfg:   cfg.Middleware,
		permissionCfg:   cfg.PermissionCfg,
		policy:          cfg.Policy,
		dates:           cfg.Dates,
		baseURL:         cfg.BaseURL,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres pool is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.dates == nil {
		return errors.New("date parser is required")
	}
	return nil
}
