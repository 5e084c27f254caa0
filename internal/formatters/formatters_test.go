package formatters

import (
	"strings"
	"testing"

	"jobsift/internal/scoring"
	"jobsift/internal/types"
)

func sampleAnalysis() types.CorpusAnalysis {
	return types.CorpusAnalysis{
		TotalJobs: 2,
		Presence: map[types.Category]map[string]int{
			types.CategoryTechnicalSkills: {
				"Active Directory": 2,
				"Office 365":       1,
			},
		},
		Weighted: map[types.Category]map[string]float64{
			types.CategoryTechnicalSkills: {
				"Active Directory": 2.0,
				"Office 365":       0.2,
			},
		},
	}
}

func TestRegistryFormatCorpusText(t *testing.T) {
	output, err := GlobalRegistry.Format(sampleAnalysis(), "text")
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	if !strings.Contains(output, "Total Jobs Analyzed: 2") {
		t.Errorf("expected job total in output, got:\n%s", output)
	}
	if !strings.Contains(output, "Active Directory: 2 jobs (score 2.0)") {
		t.Errorf("expected ranked term row, got:\n%s", output)
	}

	// Higher presence first
	adIdx := strings.Index(output, "Active Directory")
	o365Idx := strings.Index(output, "Office 365")
	if adIdx < 0 || o365Idx < 0 || adIdx > o365Idx {
		t.Errorf("expected Active Directory before Office 365, got:\n%s", output)
	}
}

func TestRegistryFormatCorpusMarkdown(t *testing.T) {
	output, err := GlobalRegistry.Format(sampleAnalysis(), "markdown")
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	if !strings.Contains(output, "## Technical Skills") {
		t.Errorf("expected category heading, got:\n%s", output)
	}
	if !strings.Contains(output, "| Active Directory | 2 | 2.0 |") {
		t.Errorf("expected table row, got:\n%s", output)
	}
}

func TestRegistryFormatJSONFallback(t *testing.T) {
	output, err := GlobalRegistry.Format(sampleAnalysis(), "json")
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(output, `"total_jobs": 2`) {
		t.Errorf("expected JSON output, got:\n%s", output)
	}
}

func TestRegistryFormatScoredJobs(t *testing.T) {
	scored := []scoring.ScoredJob{
		{
			Job:    types.JobRecord{ID: 1, Title: "IT Support Officer", Company: "Acme"},
			Result: scoring.Result{Score: 7, Classification: scoring.ClassApply},
		},
		{
			Job:    types.JobRecord{ID: 2, Title: "Senior Engineer", Company: "Acme"},
			Result: scoring.Result{Score: 0, Classification: scoring.ClassIgnore, ExcludeReason: "senior title"},
		},
	}

	output, err := GlobalRegistry.Format(scored, "text")
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	if !strings.Contains(output, "Total: 2 | APPLY: 1 | STRETCH: 0 | IGNORE: 1") {
		t.Errorf("expected summary line, got:\n%s", output)
	}
	if !strings.Contains(output, "excluded: senior title") {
		t.Errorf("expected exclusion reason, got:\n%s", output)
	}
}

func TestRegistryFormatRenderedPassthrough(t *testing.T) {
	report := "=== REPORT ===\nline one\n"
	output, err := GlobalRegistry.Format(report, "text")
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if output != report {
		t.Errorf("expected passthrough output, got:\n%s", output)
	}
}

func TestRegistryFormatUnknownFormat(t *testing.T) {
	if _, err := GlobalRegistry.Format(sampleAnalysis(), "xml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}
