package ingest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"jobsift/internal/errors"
	"jobsift/internal/requirements"
	"jobsift/internal/types"
)

// jsonlRecord is the wire shape of one JSONL line. A line with _meta set
// carries file-level search metadata instead of a job.
type jsonlRecord struct {
	Meta *types.SearchMetadata `json:"_meta"`

	Title           string `json:"title"`
	Company         string `json:"company"`
	Description     string `json:"description"`
	FullDescription string `json:"full_description"`
	Text            string `json:"text"`
	URL             string `json:"url"`
	Source          string `json:"source"`
	SourceID        string `json:"source_id"`
}

// ParseJSONLFile loads jobs from a JSONL dump, one job object per line.
func ParseJSONLFile(path string) ([]types.JobRecord, types.SearchMetadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, types.SearchMetadata{}, errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("Cannot read input file: %s", path), err)
	}
	defer f.Close()
	return ParseJSONL(f)
}

// ParseJSONL reads job records from JSONL. Blank lines are skipped; an
// optional _meta line anywhere in the stream sets the search metadata. A
// malformed line fails the whole load: silently dropping jobs would skew
// every aggregate downstream.
func ParseJSONL(r io.Reader) ([]types.JobRecord, types.SearchMetadata, error) {
	var meta types.SearchMetadata
	jobs := make([]types.JobRecord, 0, 64)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var rec jsonlRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, meta, errors.NewValidationError(errors.ErrCodeInvalidFormat,
				fmt.Sprintf("Invalid JSON on line %d", lineNo), err)
		}
		if rec.Meta != nil {
			meta = *rec.Meta
			continue
		}

		id := len(jobs) + 1
		job := types.JobRecord{
			ID:          id,
			Title:       rec.Title,
			Company:     rec.Company,
			Description: rec.Description,
			URL:         rec.URL,
			Source:      rec.Source,
			SourceID:    rec.SourceID,
		}
		if job.Title == "" {
			job.Title = fmt.Sprintf("Job %d", id)
		}
		if job.Company == "" {
			job.Company = "Unknown"
		}
		if job.Description == "" {
			if rec.FullDescription != "" {
				job.Description = rec.FullDescription
			} else {
				job.Description = rec.Text
			}
		}
		if job.SourceID == "" {
			job.SourceID = requirements.ExtractSourceID(job.Source, job.URL)
		}
		jobs = append(jobs, job)
	}
	if err := scanner.Err(); err != nil {
		return nil, meta, errors.NewIOError(errors.ErrCodeFileNotReadable,
			"Failed reading JSONL input", err)
	}
	return jobs, meta, nil
}

// LoadJobs loads jobs from a file, dispatching on extension: .jsonl is
// parsed as JSONL, anything else as compiled markdown.
func LoadJobs(path string) ([]types.JobRecord, types.SearchMetadata, error) {
	if strings.EqualFold(filepath.Ext(path), ".jsonl") {
		return ParseJSONLFile(path)
	}
	return ParseMarkdownFile(path)
}
