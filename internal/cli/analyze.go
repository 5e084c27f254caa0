package cli

import (
	"context"
	"fmt"

	"jobsift/internal/common"
	"jobsift/internal/config"
	"jobsift/internal/ingest"
	"jobsift/internal/requirements"
	"jobsift/internal/types"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [jobs-file]",
	Short: "Extract and aggregate requirement terms from a job corpus",
	Long: `Analyze a corpus of job listings and aggregate the requirement terms
found across them.

The input may be a compiled markdown export, a JSONL file (one job per
line), or a sqlite job store (.db). Each job description is matched against
the pattern library, every match is classified by its surrounding context
(required, preferred, bonus, bullet or plain mention), and the per-job
results are aggregated into presence counts and context-weighted scores
per category.

Duplicate listings (same posting scraped twice, reposts, cross-posts) are
removed before aggregation unless --dedupe=false.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if analyzeConfig.OutputFormat == "" {
			analyzeConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(analyzeConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runAnalyze,
}

var (
	analyzeConfig      common.CommandConfig
	analyzePatternFile string
	analyzeDedupe      bool
	analyzeStorePath   string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	analyzeCmd.Flags().StringVar(&analyzePatternFile, "patterns", "", "YAML pattern override file (default from config)")
	analyzeCmd.Flags().BoolVar(&analyzeDedupe, "dedupe", true, "Remove duplicate listings before aggregation")
	analyzeCmd.Flags().StringVar(&analyzeStorePath, "store", "", "Also import the loaded jobs into this sqlite store")

	// Add completion for format flag
	_ = analyzeCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

// newAnalyzer builds a requirements analyzer, applying the pattern override
// file from the flag or, when the flag is empty, from configuration.
func newAnalyzer(cfg *config.Config, patternFlag string) (*requirements.Analyzer, error) {
	patternFile := patternFlag
	if patternFile == "" {
		patternFile = cfg.Analysis.PatternFile
	}

	var registry *requirements.Registry
	var err error
	if patternFile != "" {
		registry, err = requirements.NewRegistryFromFile(patternFile)
	} else {
		registry, err = requirements.NewRegistry()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build pattern registry: %w", err)
	}

	return requirements.NewAnalyzer(registry), nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	analyzer, err := newAnalyzer(cfg, analyzePatternFile)
	if err != nil {
		return err
	}

	dedupe := analyzeDedupe
	if !cmd.Flags().Changed("dedupe") {
		dedupe = cfg.Analysis.Dedupe
	}

	analyzeOperation := func(ctx context.Context, jobs []types.JobRecord, meta types.SearchMetadata) (types.CorpusAnalysis, error) {
		if analyzeStorePath != "" {
			if err := importToStore(ctx, analyzeStorePath, jobs); err != nil {
				return types.CorpusAnalysis{}, err
			}
			logger.Info("Imported jobs into store", "store", analyzeStorePath, "count", len(jobs))
		}

		analysis := analyzer.AnalyzeAllJobs(jobs, dedupe)
		logger.Info("Corpus analysis completed",
			"jobs_loaded", len(jobs),
			"jobs_analyzed", analysis.TotalJobs,
			"duplicates_removed", len(jobs)-analysis.TotalJobs)
		return analysis, nil
	}

	err = common.RunPipelineCommand(
		cmd.Context(),
		logger,
		analyzeConfig,
		args[0],
		analyzeOperation,
	)
	if err != nil {
		return fmt.Errorf("failed to analyze jobs: %w", err)
	}
	return nil
}

// importToStore writes the loaded jobs into a sqlite store
func importToStore(ctx context.Context, path string, jobs []types.JobRecord) error {
	store, err := ingest.OpenJobStore(path)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	_, err = store.ImportJobs(ctx, jobs)
	return err
}
