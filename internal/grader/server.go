// Package grader is the HTTP grading service. It fronts an LLM provider
// with two endpoints: POST /evaluate grades a free-text answer to a
// question, POST /ask answers a question outright. Quiz clients talk to
// it through eval.Client and fall back to local heuristics when it is
// unreachable, so the service stays stateless and keeps no store of its
// own.
package grader

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/quizdeck/internal/llm"
)

// Server wires the gin router, the LLM provider and the logger.
type Server struct {
	cfg      Config
	provider llm.Provider
	logger   *zap.Logger
	engine   *gin.Engine
}

// New builds a Server with routes and middleware installed.
// logger may be nil to disable request logging.
func New(cfg Config, provider llm.Provider, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		cfg:      cfg,
		provider: provider,
		logger:   logger,
		engine:   engine,
	}

	engine.Use(requestID())
	engine.Use(requestLogger(logger))
	engine.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	engine.GET("/health", s.handleHealth)
	engine.POST("/evaluate", s.handleEvaluate)
	engine.POST("/ask", s.handleAsk)

	return s
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run starts the HTTP server on the configured port and blocks.
func (s *Server) Run() error {
	s.logger.Info("grading service starting",
		zap.String("port", s.cfg.Server.Port),
		zap.String("model", s.provider.ModelID()),
	)
	return s.engine.Run(":" + s.cfg.Server.Port)
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("request_id", c.GetString("request_id")),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// generate runs a single completion against the provider.
func (s *Server) generate(ctx context.Context, system, user string) (string, error) {
	resp, err := s.provider.Generate(ctx, llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: user},
		},
		MaxTokens:   s.cfg.Model.MaxTokens,
		Temperature: s.cfg.Model.Temperature,
	})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}
