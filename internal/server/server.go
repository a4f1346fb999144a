// Package server exposes the analysis pipeline over HTTP.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/insighthub/insighthub/internal/config"
	"github.com/insighthub/insighthub/internal/pipeline"
	"github.com/insighthub/insighthub/internal/report"
)

// Server wires the pipeline into a gin router.
type Server struct {
	pipe *pipeline.Pipeline
	cfg  config.Server
	max  int // competitor cap per request
}

// New builds a Server around an assembled pipeline.
func New(pipe *pipeline.Pipeline, cfg config.Server, maxCompetitors int) *Server {
	return &Server{pipe: pipe, cfg: cfg, max: maxCompetitors}
}

// Router builds the gin engine with middleware and routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(ErrorHandler())
	r.Use(CORS())

	limiter := NewRateLimiter(s.cfg.RateLimit, s.cfg.RateBurst)

	api := r.Group("/api")
	api.Use(limiter.RateLimit())
	{
		api.POST("/analyze", s.handleAnalyze)
		api.GET("/health", s.handleHealth)
	}

	return r
}

// Run starts the HTTP server on the configured address.
func (s *Server) Run() error {
	return s.Router().Run(s.cfg.Addr)
}

type analyzeRequest struct {
	URL         string   `json:"url" binding:"required"`
	Competitors []string `json:"competitors"`
	Keywords    []string `json:"keywords"`
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request. URL is required.",
		})
		return
	}

	if s.max > 0 && len(req.Competitors) > s.max {
		req.Competitors = req.Competitors[:s.max]
	}

	result, err := s.pipe.Run(c.Request.Context(), pipeline.Request{
		URL:         req.URL,
		Competitors: req.Competitors,
		Keywords:    req.Keywords,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Analysis failed",
		})
		return
	}

	c.JSON(http.StatusOK, report.Assemble(req.URL, result))
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
