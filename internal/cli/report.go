package cli

import (
	"context"
	"fmt"
	"time"

	"jobsift/internal/common"
	"jobsift/internal/report"
	"jobsift/internal/types"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report [jobs-file]",
	Short: "Analyze a job corpus and persist the report artifacts",
	Long: `Analyze a corpus of job listings and write the ranked requirements
report artifacts to disk:

  requirements_analysis.txt   human-readable ranked report
  requirements_analysis.json  full analysis for downstream tooling
  requirements_index.json     term-to-job drill-down index

Artifacts are written atomically (temp file then rename) so a concurrent
reader never sees a partial file. The text report is also printed to
stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

var (
	reportOutDir      string
	reportPatternFile string
	reportDedupe      bool
)

func init() {
	reportCmd.Flags().StringVarP(&reportOutDir, "out-dir", "d", "", "Directory for report artifacts (default from config)")
	reportCmd.Flags().StringVar(&reportPatternFile, "patterns", "", "YAML pattern override file (default from config)")
	reportCmd.Flags().BoolVar(&reportDedupe, "dedupe", true, "Remove duplicate listings before aggregation")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	analyzer, err := newAnalyzer(cfg, reportPatternFile)
	if err != nil {
		return err
	}

	outDir := reportOutDir
	if outDir == "" {
		outDir = cfg.Analysis.OutputDir
	}

	dedupe := reportDedupe
	if !cmd.Flags().Changed("dedupe") {
		dedupe = cfg.Analysis.Dedupe
	}

	reportOperation := func(ctx context.Context, jobs []types.JobRecord, meta types.SearchMetadata) (string, error) {
		analysis := analyzer.AnalyzeAllJobs(jobs, dedupe)

		generatedAt := time.Now()
		artifacts, err := report.WriteArtifacts(outDir, analysis, meta, generatedAt)
		if err != nil {
			return "", err
		}

		logger.Info("Report artifacts written",
			"jobs_analyzed", analysis.TotalJobs,
			"text", artifacts.TextPath,
			"json", artifacts.JSONPath,
			"index", artifacts.IndexPath)

		return report.GenerateReport(analysis, meta, generatedAt), nil
	}

	// The rendered text report goes to stdout via the text formatter.
	cmdConfig := common.CommandConfig{OutputFormat: "text"}
	err = common.RunPipelineCommand(
		cmd.Context(),
		logger,
		cmdConfig,
		args[0],
		reportOperation,
	)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}
	return nil
}
