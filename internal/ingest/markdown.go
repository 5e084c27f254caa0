// Package ingest loads job listings from the supported input formats:
// compiled markdown exports, JSONL dumps, and the sqlite job store.
package ingest

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"jobsift/internal/errors"
	"jobsift/internal/requirements"
	"jobsift/internal/types"
)

var (
	jobHeaderRe       = regexp.MustCompile(`---\s*\n\s*## Job #\d+:`)
	plaintextHeaderRe = regexp.MustCompile(`={10,}\s*\nJOB\s*#\d+\s*\n={10,}`)

	metaKeywordsRe  = regexp.MustCompile(`\*\*Search Keywords:\*\*\s*(.+)`)
	metaLocationRe  = regexp.MustCompile(`\*\*Search Location:\*\*\s*(.+)`)
	metaGeneratedRe = regexp.MustCompile(`\*\*Generated:\*\*\s*(.+)`)
	metaModeRe      = regexp.MustCompile(`\*\*Search Mode:\*\*\s*(.+)`)

	tableCompanyRe = regexp.MustCompile(`\*\*Company\*\*\s*\|\s*([^|]+)`)
	tableURLRe     = regexp.MustCompile(`\*\*URL\*\*\s*\|\s*\[[^\]]*\]\(([^)]+)\)`)
	tableSourceRe  = regexp.MustCompile(`\*\*Source\*\*\s*\|\s*([^|]+)`)

	plainTitleRe   = regexp.MustCompile(`(?i)TITLE:\s*(.+)`)
	plainCompanyRe = regexp.MustCompile(`(?i)COMPANY:\s*(.+)`)
	plainURLRe     = regexp.MustCompile(`(?i)URL:\s*(.+)`)
	plainSourceRe  = regexp.MustCompile(`(?i)SOURCE:\s*(.+)`)
)

// ParseMarkdownFile loads jobs and search metadata from a compiled
// markdown export.
func ParseMarkdownFile(path string) ([]types.JobRecord, types.SearchMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.SearchMetadata{}, errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("Cannot read input file: %s", path), err)
	}
	jobs, meta := ParseMarkdown(string(data))
	return jobs, meta, nil
}

// ParseMarkdown splits compiled markdown into job records. Primary format
// separates jobs with "--- ## Job #N:" headers; a plaintext export with
// "JOB #N" banner lines is the fallback. A file with no job headers yields
// zero jobs, which is a valid (empty) corpus.
func ParseMarkdown(content string) ([]types.JobRecord, types.SearchMetadata) {
	meta := parseHeaderMetadata(content)

	sections := jobHeaderRe.Split(content, -1)
	if len(sections) <= 1 {
		sections = plaintextHeaderRe.Split(content, -1)
	}
	if len(sections) <= 1 {
		return []types.JobRecord{}, meta
	}

	// First section is the file header, not a job.
	jobs := make([]types.JobRecord, 0, len(sections)-1)
	for i, section := range sections[1:] {
		id := i + 1
		jobs = append(jobs, parseJobSection(id, section))
	}
	return jobs, meta
}

func parseHeaderMetadata(content string) types.SearchMetadata {
	header := content
	if loc := jobHeaderRe.FindStringIndex(content); loc != nil {
		header = content[:loc[0]]
	}

	var meta types.SearchMetadata
	if m := metaKeywordsRe.FindStringSubmatch(header); m != nil {
		meta.Keywords = strings.TrimSpace(m[1])
	}
	if m := metaLocationRe.FindStringSubmatch(header); m != nil {
		meta.Location = strings.TrimSpace(m[1])
	}
	if m := metaGeneratedRe.FindStringSubmatch(header); m != nil {
		meta.Generated = strings.TrimSpace(m[1])
	}
	if m := metaModeRe.FindStringSubmatch(header); m != nil {
		meta.SearchMode = strings.TrimSpace(m[1])
	}
	return meta
}

func parseJobSection(id int, section string) types.JobRecord {
	job := types.JobRecord{
		ID:          id,
		Title:       fmt.Sprintf("Job %d", id),
		Company:     "Unknown",
		Description: section,
	}

	lines := strings.Split(strings.TrimSpace(section), "\n")
	if len(lines) > 0 && lines[0] != "" && !strings.HasPrefix(lines[0], "**") {
		job.Title = strings.TrimSpace(lines[0])
	}
	if m := plainTitleRe.FindStringSubmatch(section); m != nil {
		job.Title = strings.TrimSpace(m[1])
	}

	if m := tableCompanyRe.FindStringSubmatch(section); m != nil {
		job.Company = strings.TrimSpace(m[1])
	} else if m := plainCompanyRe.FindStringSubmatch(section); m != nil {
		job.Company = strings.TrimSpace(m[1])
	}

	if m := tableURLRe.FindStringSubmatch(section); m != nil {
		job.URL = strings.TrimSpace(m[1])
	} else if m := plainURLRe.FindStringSubmatch(section); m != nil {
		job.URL = strings.TrimSpace(m[1])
	}

	if m := tableSourceRe.FindStringSubmatch(section); m != nil {
		job.Source = strings.TrimSpace(m[1])
	} else if m := plainSourceRe.FindStringSubmatch(section); m != nil {
		job.Source = strings.TrimSpace(m[1])
	}

	job.SourceID = requirements.ExtractSourceID(job.Source, job.URL)
	return job
}
