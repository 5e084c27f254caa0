package cli

import (
	"context"
	"fmt"

	"jobsift/internal/common"
	"jobsift/internal/scoring"
	"jobsift/internal/types"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score [jobs-file]",
	Short: "Score job listings for entry-level fit",
	Long: `Score each job listing on a 0-10 scale for entry-level fit and
classify it as APPLY, STRETCH or IGNORE.

Listings with hard exclusion markers (senior titles, long experience
requirements) score 0 and are classified IGNORE regardless of other
signals. Remaining listings start at the baseline and accumulate positive
and negative signal adjustments from the title and description.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if scoreConfig.OutputFormat == "" {
			scoreConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(scoreConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runScore,
}

var scoreConfig common.CommandConfig

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	_ = scoreCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runScore(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	scoreOperation := func(ctx context.Context, jobs []types.JobRecord, meta types.SearchMetadata) ([]scoring.ScoredJob, error) {
		scored := scoring.ScoreJobs(jobs)
		summary := scoring.Summarize(scored)
		logger.Info("Job scoring completed",
			"total", summary.Total,
			"apply", summary.Apply,
			"stretch", summary.Stretch,
			"ignore", summary.Ignore)
		return scored, nil
	}

	err := common.RunPipelineCommand(
		cmd.Context(),
		logger,
		scoreConfig,
		args[0],
		scoreOperation,
	)
	if err != nil {
		return fmt.Errorf("failed to score jobs: %w", err)
	}
	return nil
}
