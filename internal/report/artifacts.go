package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"jobsift/internal/errors"
	"jobsift/internal/types"
)

// Artifact file names are a stable contract with UI collaborators.
const (
	TextReportFile = "requirements_analysis.txt"
	JSONReportFile = "requirements_analysis.json"
	IndexFile      = "requirements_index.json"
)

// Artifacts lists the files written by WriteArtifacts.
type Artifacts struct {
	TextPath  string
	JSONPath  string
	IndexPath string
}

// drilldownIndex is the compact per-job index optimized for UI lookups.
type drilldownIndex struct {
	Generated string                              `json:"generated"`
	TotalJobs int                                 `json:"total_jobs"`
	Jobs      map[string]indexedJob               `json:"jobs"`
	TermIndex map[types.Category]map[string][]int `json:"term_index"`
}

type indexedJob struct {
	ID           int               `json:"id"`
	Title        string            `json:"title"`
	Company      string            `json:"company"`
	Requirements types.JobAnalysis `json:"requirements"`
}

// WriteArtifacts renders the text report and persists all three artifacts
// under dir. Each file is written to a temp file and renamed into place so
// a crashed run never leaves a half-written artifact for readers to pick up.
func WriteArtifacts(dir string, analysis types.CorpusAnalysis, meta types.SearchMetadata, generatedAt time.Time) (Artifacts, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Artifacts{}, errors.NewIOError(errors.ErrCodeStoreFailure,
			fmt.Sprintf("Cannot create output directory: %s", dir), err)
	}

	artifacts := Artifacts{
		TextPath:  filepath.Join(dir, TextReportFile),
		JSONPath:  filepath.Join(dir, JSONReportFile),
		IndexPath: filepath.Join(dir, IndexFile),
	}

	text := GenerateReport(analysis, meta, generatedAt)
	if err := writeFileAtomic(artifacts.TextPath, []byte(text)); err != nil {
		return artifacts, err
	}

	full, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return artifacts, errors.NewInternalError(errors.ErrCodeStoreFailure,
			"Cannot marshal analysis", err)
	}
	if err := writeFileAtomic(artifacts.JSONPath, full); err != nil {
		return artifacts, err
	}

	index := drilldownIndex{
		Generated: generatedAt.Format("2006-01-02 15:04:05"),
		TotalJobs: analysis.TotalJobs,
		Jobs:      make(map[string]indexedJob, len(analysis.JobDetails)),
		TermIndex: analysis.TermIndex,
	}
	for _, detail := range analysis.JobDetails {
		index.Jobs[strconv.Itoa(detail.ID)] = indexedJob{
			ID:           detail.ID,
			Title:        detail.Title,
			Company:      detail.Company,
			Requirements: detail.Requirements,
		}
	}
	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return artifacts, errors.NewInternalError(errors.ErrCodeStoreFailure,
			"Cannot marshal drill-down index", err)
	}
	if err := writeFileAtomic(artifacts.IndexPath, data); err != nil {
		return artifacts, err
	}

	return artifacts, nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.NewIOError(errors.ErrCodeStoreFailure,
			fmt.Sprintf("Cannot create temp file for %s", path), err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.NewIOError(errors.ErrCodeStoreFailure,
			fmt.Sprintf("Cannot write %s", path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.NewIOError(errors.ErrCodeStoreFailure,
			fmt.Sprintf("Cannot close temp file for %s", path), err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.NewIOError(errors.ErrCodeStoreFailure,
			fmt.Sprintf("Cannot move %s into place", path), err)
	}
	return nil
}
