package ingest

import (
	"strings"
	"testing"

	"jobsift/internal/types"
)

func TestParseJSONL(t *testing.T) {
	input := `{"_meta": {"keywords": "IT Support", "location": "Sydney"}}
{"title": "Service Desk Analyst", "company": "Acme", "description": "Level 1 support.", "url": "https://www.seek.com.au/job/777?ref=x", "source": "seek"}

{"title": "IT Officer", "full_description": "Desktop duties."}
{"text": "Body only."}
`

	jobs, meta, err := ParseJSONL(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseJSONL() failed: %v", err)
	}

	if meta.Keywords != "IT Support" || meta.Location != "Sydney" {
		t.Errorf("meta = %+v", meta)
	}
	if len(jobs) != 3 {
		t.Fatalf("got %d jobs, want 3", len(jobs))
	}

	first := jobs[0]
	if first.ID != 1 || first.Title != "Service Desk Analyst" || first.Company != "Acme" {
		t.Errorf("first job = %+v", first)
	}
	if first.SourceID != "777" {
		t.Errorf("first SourceID = %q, want 777 (derived from url)", first.SourceID)
	}

	if jobs[1].Description != "Desktop duties." {
		t.Errorf("full_description fallback failed: %q", jobs[1].Description)
	}
	if jobs[1].Company != "Unknown" {
		t.Errorf("Company = %q, want Unknown", jobs[1].Company)
	}

	if jobs[2].Title != "Job 3" {
		t.Errorf("title fallback = %q, want Job 3", jobs[2].Title)
	}
	if jobs[2].Description != "Body only." {
		t.Errorf("text fallback failed: %q", jobs[2].Description)
	}
}

func TestParseJSONLExplicitSourceIDWins(t *testing.T) {
	input := `{"title": "X", "source": "seek", "source_id": "42", "url": "https://www.seek.com.au/job/999"}`

	jobs, _, err := ParseJSONL(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseJSONL() failed: %v", err)
	}
	if jobs[0].SourceID != "42" {
		t.Errorf("SourceID = %q, want explicit 42", jobs[0].SourceID)
	}
}

func TestParseJSONLMalformedLine(t *testing.T) {
	input := `{"title": "ok"}
{not json}
`
	if _, _, err := ParseJSONL(strings.NewReader(input)); err == nil {
		t.Error("expected error for malformed line, got nil")
	}
}

func TestParseJSONLEmpty(t *testing.T) {
	jobs, meta, err := ParseJSONL(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ParseJSONL() failed: %v", err)
	}
	if len(jobs) != 0 {
		t.Errorf("got %d jobs, want 0", len(jobs))
	}
	if meta != (types.SearchMetadata{}) {
		t.Errorf("meta = %+v, want zero value", meta)
	}
}
