package server

import (
	"sync"
	"time"

	"jobsift/internal/config"
	jobsiftErrors "jobsift/internal/errors"
	"jobsift/internal/requirements"
	"jobsift/internal/types"
)

// AnalyzeRequest represents the request body for the analyze endpoint
type AnalyzeRequest struct {
	Jobs   []types.JobRecord `json:"jobs"`
	Dedupe *bool             `json:"dedupe,omitempty"`
}

// ScoreRequest represents the request body for the score endpoint
type ScoreRequest struct {
	Jobs []types.JobRecord `json:"jobs"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server holds configuration for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limit
	MaxRequestSize int64

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	// Requirements analyzer, swapped atomically on pattern reload
	analyzerMu sync.RWMutex
	analyzer   *requirements.Analyzer

	// Pattern file watcher
	PatternWatcher *PatternWatcher

	// Logger
	Logger *jobsiftErrors.Logger
}

// ServerConfig holds configuration for creating a Server instance
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	APIKeys        []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      *config.RateLimitConfig
}

// NewServer creates a new Server instance from a ServerConfig struct
func NewServer(appCfg *config.Config, cfg ServerConfig, analyzer *requirements.Analyzer, logger *jobsiftErrors.Logger) *Server {
	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *RateLimiter
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.Window,
			cfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	return &Server{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Version:        cfg.Version,
		AppConfig:      appCfg,
		APIKeys:        apiKeyMap,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    rateLimiter,
		analyzer:       analyzer,
		Logger:         logger,
	}
}

// Analyzer returns the current requirements analyzer
func (s *Server) Analyzer() *requirements.Analyzer {
	s.analyzerMu.RLock()
	defer s.analyzerMu.RUnlock()
	return s.analyzer
}

// SwapAnalyzer replaces the requirements analyzer. Used by the pattern
// watcher after a successful reload.
func (s *Server) SwapAnalyzer(analyzer *requirements.Analyzer) {
	s.analyzerMu.Lock()
	defer s.analyzerMu.Unlock()
	s.analyzer = analyzer
}
