package cli

import (
	"jobsift/internal/server"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP server for corpus analysis and job scoring",
	Long: `Start an HTTP server that provides REST API endpoints for requirements
analysis and job scoring.

Available endpoints:
- POST /analyze: Analyze a job corpus and return the aggregated requirements
- POST /score: Score job listings for entry-level fit
- GET /health: Health check endpoint
- GET /stats: Server statistics and rate limiting info

When analysis.watchPatterns is enabled, the pattern override file is
watched and the compiled registry is swapped in place on change.`,
	RunE: runServe,
}

var (
	servePort        string
	serveHost        string
	servePatternFile string
)

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Port to listen on (default from config)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (default from config)")
	serveCmd.Flags().StringVar(&servePatternFile, "patterns", "", "YAML pattern override file (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	// Apply flag overrides
	if servePort != "" {
		cfg.Server.Port = servePort
	}
	if serveHost != "" {
		cfg.Server.Host = serveHost
	}
	if servePatternFile != "" {
		cfg.Analysis.PatternFile = servePatternFile
	}

	analyzer, err := newAnalyzer(cfg, "")
	if err != nil {
		return err
	}

	serverCfg := server.ServerConfig{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		Version:        Version,
		APIKeys:        cfg.Server.APIKeys,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxRequestSize: cfg.Server.MaxRequestBytes,
		RateLimit:      &cfg.Server.RateLimit,
	}
	return server.NewServer(cfg, serverCfg, analyzer, logger).Start()
}
