package ingest

import (
	"testing"
)

const sampleMarkdown = `# Compiled Jobs

**Search Keywords:** IT Support
**Search Location:** Sydney NSW
**Generated:** 2025-11-02 09:30
**Search Mode:** standard

---
## Job #1: Service Desk Analyst
Service Desk Analyst

| Field | Value |
|-------|-------|
| **Company** | Acme Corp |
| **Source** | Seek |
| **URL** | [View](https://www.seek.com.au/job/81234567?ref=search) |

Provide Level 1 support to internal staff.

---
## Job #2: IT Support Officer
IT Support Officer

| Field | Value |
|-------|-------|
| **Company** | Globex |

General desktop support duties.
`

func TestParseMarkdown(t *testing.T) {
	jobs, meta := ParseMarkdown(sampleMarkdown)

	if meta.Keywords != "IT Support" {
		t.Errorf("Keywords = %q, want %q", meta.Keywords, "IT Support")
	}
	if meta.Location != "Sydney NSW" {
		t.Errorf("Location = %q, want %q", meta.Location, "Sydney NSW")
	}
	if meta.Generated != "2025-11-02 09:30" {
		t.Errorf("Generated = %q", meta.Generated)
	}
	if meta.SearchMode != "standard" {
		t.Errorf("SearchMode = %q", meta.SearchMode)
	}

	if len(jobs) != 2 {
		t.Fatalf("got %d jobs, want 2", len(jobs))
	}

	first := jobs[0]
	if first.ID != 1 {
		t.Errorf("ID = %d, want 1", first.ID)
	}
	if first.Title != "Service Desk Analyst" {
		t.Errorf("Title = %q", first.Title)
	}
	if first.Company != "Acme Corp" {
		t.Errorf("Company = %q", first.Company)
	}
	if first.Source != "Seek" {
		t.Errorf("Source = %q", first.Source)
	}
	if first.URL != "https://www.seek.com.au/job/81234567?ref=search" {
		t.Errorf("URL = %q", first.URL)
	}
	if first.SourceID != "81234567" {
		t.Errorf("SourceID = %q, want 81234567", first.SourceID)
	}

	second := jobs[1]
	if second.Title != "IT Support Officer" || second.Company != "Globex" {
		t.Errorf("second job = %+v", second)
	}
	if second.SourceID != "" {
		t.Errorf("second SourceID = %q, want empty", second.SourceID)
	}
}

const samplePlaintext = `Compiled export

==========
JOB #1
==========
TITLE: Help Desk Technician
COMPANY: Initech
SOURCE: Seek
URL: https://www.seek.com.au/job/900001

Answer phones and log tickets.
`

func TestParseMarkdownPlaintextFallback(t *testing.T) {
	jobs, _ := ParseMarkdown(samplePlaintext)

	if len(jobs) != 1 {
		t.Fatalf("got %d jobs, want 1", len(jobs))
	}
	job := jobs[0]
	if job.Title != "Help Desk Technician" {
		t.Errorf("Title = %q", job.Title)
	}
	if job.Company != "Initech" {
		t.Errorf("Company = %q", job.Company)
	}
	if job.SourceID != "900001" {
		t.Errorf("SourceID = %q, want 900001", job.SourceID)
	}
}

func TestParseMarkdownNoJobs(t *testing.T) {
	jobs, meta := ParseMarkdown("# Just a header\n\n**Search Keywords:** anything\n")
	if len(jobs) != 0 {
		t.Errorf("got %d jobs, want 0", len(jobs))
	}
	if meta.Keywords != "anything" {
		t.Errorf("Keywords = %q", meta.Keywords)
	}
}

func TestParseMarkdownDefaultsWhenFieldsMissing(t *testing.T) {
	content := "intro\n---\n## Job #1:\n**Bold first line**\nsome body text\n"
	jobs, _ := ParseMarkdown(content)
	if len(jobs) != 1 {
		t.Fatalf("got %d jobs, want 1", len(jobs))
	}
	if jobs[0].Title != "Job 1" {
		t.Errorf("Title = %q, want fallback Job 1", jobs[0].Title)
	}
	if jobs[0].Company != "Unknown" {
		t.Errorf("Company = %q, want Unknown", jobs[0].Company)
	}
}
