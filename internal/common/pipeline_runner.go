package common

import (
	"context"

	"jobsift/internal/errors"
	"jobsift/internal/ingest"
	"jobsift/internal/types"
)

// PipelineFunc is a generic signature for an operation over a loaded job
// corpus: analysis, scoring, or anything else that consumes jobs and
// produces a formattable output.
type PipelineFunc[Output any] func(ctx context.Context, jobs []types.JobRecord, meta types.SearchMetadata) (Output, error)

// RunPipelineCommand encapsulates the common logic of file-based CLI
// commands: validate the input file, load jobs, run the operation, and
// hand the result to the output handler.
func RunPipelineCommand[Output any](
	ctx context.Context,
	logger *errors.Logger,
	cmdConfig CommandConfig,
	inputPath string,
	operation PipelineFunc[Output],
) error {
	outputHandler := NewOutputHandler(logger)

	jobs, meta, err := loadCorpus(ctx, logger, inputPath)
	if err != nil {
		return err
	}
	if logger != nil {
		logger.Info("Loaded jobs", "input", inputPath, "count", len(jobs))
	}

	result, err := operation(ctx, jobs, meta)
	if err != nil {
		return err
	}

	return outputHandler.HandleOutput(result, cmdConfig)
}

// loadCorpus loads jobs from a compiled file or, for sqlite paths, straight
// from a job store.
func loadCorpus(ctx context.Context, logger *errors.Logger, inputPath string) ([]types.JobRecord, types.SearchMetadata, error) {
	if ingest.IsStorePath(inputPath) {
		store, err := ingest.OpenJobStore(inputPath)
		if err != nil {
			return nil, types.SearchMetadata{}, err
		}
		defer func() {
			if closeErr := store.Close(); closeErr != nil && logger != nil {
				logger.Warn("Failed to close job store", "path", inputPath, "error", closeErr)
			}
		}()

		jobs, err := store.FetchJobs(ctx, 0)
		if err != nil {
			return nil, types.SearchMetadata{}, err
		}
		return jobs, types.SearchMetadata{}, nil
	}

	fileProcessor := NewFileProcessor(logger)
	if err := fileProcessor.ValidateInputFile(inputPath); err != nil {
		return nil, types.SearchMetadata{}, err
	}
	return ingest.LoadJobs(inputPath)
}
