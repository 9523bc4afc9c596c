package config

import (
	"context"
	"fmt"
	"time"

	"ProjectBlog/database/postgres"
	authHandler "ProjectBlog/internal/api/auth/handler"
	authRepository "ProjectBlog/internal/api/auth/repository"
	authService "ProjectBlog/internal/api/auth/service"
	blogsHandler "ProjectBlog/internal/api/blog/handler"
	blogsRepository "ProjectBlog/internal/api/blog/repository"
	blogService "ProjectBlog/internal/api/blog/service"
	"ProjectBlog/internal/middleware"
	"ProjectBlog/pkg/redis"
	"ProjectBlog/pkg/s3"
	"ProjectBlog/pkg/session"
	"ProjectBlog/pkg/upload"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	cfg         *Config
	middleware  middleware.Middleware
	validator   *validator.Validate
	sessions    session.ISession
	redisServer redis.IRedis
	images      upload.ItfUploader
	handlers    []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithConfig(cfg *Config) ServerOption {
	return func(s *Server) error {
		s.cfg = cfg
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		if s.cfg == nil {
			return fmt.Errorf("config must be set before database")
		}

		db, err := postgres.New(s.cfg.Postgres())
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}

		if err := postgres.Migrate(db, s.log); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}

		s.db = db
		return nil
	}
}

// WithSessionStore keeps sessions in redis when REDIS_ADDRESS is set and in
// process memory otherwise.
func WithSessionStore() ServerOption {
	return func(s *Server) error {
		if s.cfg == nil {
			return fmt.Errorf("config must be set before session store")
		}

		var storage fiber.Storage
		if s.cfg.RedisAddress != "" {
			s.redisServer = redis.New(s.cfg.RedisAddress, s.cfg.RedisPassword, s.cfg.RedisDB)
			storage = s.redisServer
		} else if s.log != nil {
			s.log.Warn("REDIS_ADDRESS not set, sessions are kept in memory")
		}

		s.sessions = session.New(storage, s.cfg.SessionExpiration)
		return nil
	}
}

func WithImageStore() ServerOption {
	return func(s *Server) error {
		if s.cfg == nil {
			return fmt.Errorf("config must be set before image store")
		}

		var (
			images upload.ItfUploader
			err    error
		)
		switch s.cfg.ImageStorage {
		case ImageStorageS3:
			images, err = s3.New(s.cfg.S3(), s.log)
		default:
			images, err = upload.NewDisk(s.cfg.ImageUploads, s.log)
		}
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize image store: %v", err)
			}
			return fmt.Errorf("failed to create image store: %w", err)
		}

		s.images = images
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		if s.sessions == nil {
			return fmt.Errorf("session store must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log, s.sessions)
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo)
	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware, s.sessions)

	// Blog Domain
	blogsRepo := blogsRepository.New(s.db, s.log)
	blogsServices := blogService.NewBlogsService(s.log, blogsRepo, s.images)
	blogsHandlers := blogsHandler.New(s.log, blogsServices, s.validator, s.middleware, s.sessions)

	s.handlers = append(s.handlers, authHandlers, blogsHandlers)
}

func (s *Server) Run() error {
	s.engine.Use(recover.New())
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())
	s.engine.Use(s.middleware.NewSessionMiddleware)

	s.engine.Static("/static", s.cfg.StaticDir)
	s.setupHealthCheck()

	for _, h := range s.handlers {
		h.Start(s.engine)
	}

	return s.engine.Listen(fmt.Sprintf(":%s", s.cfg.AppPort))
}

func (s *Server) Shutdown() error {
	if err := s.engine.ShutdownWithTimeout(10 * time.Second); err != nil {
		s.log.Errorf("Failed to shut down fiber: %v", err)
	}

	if s.redisServer != nil {
		if err := s.redisServer.Close(); err != nil {
			s.log.Errorf("Failed to close redis: %v", err)
		}
	}

	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/healthz", func(ctx *fiber.Ctx) error {
		c, cancel := context.WithTimeout(ctx.Context(), 2*time.Second)
		defer cancel()

		status := fiber.StatusOK
		checks := fiber.Map{"database": "ok"}

		if s.db != nil {
			if err := s.db.PingContext(c); err != nil {
				status = fiber.StatusServiceUnavailable
				checks["database"] = err.Error()
			}
		}

		if s.redisServer != nil {
			checks["sessions"] = "ok"
			if err := s.redisServer.Ping(c); err != nil {
				status = fiber.StatusServiceUnavailable
				checks["sessions"] = err.Error()
			}
		} else {
			checks["sessions"] = "memory"
		}

		return ctx.Status(status).JSON(fiber.Map{
			"message": "Server is Healthy!",
			"checks":  checks,
		})
	})
}
