package report

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"jobsift/internal/types"
)

func sampleAnalysis() types.CorpusAnalysis {
	analysis := types.CorpusAnalysis{
		Presence:  make(map[types.Category]map[string]int),
		Weighted:  make(map[types.Category]map[string]float64),
		TermIndex: make(map[types.Category]map[string][]int),
		TotalJobs: 10,
	}
	for _, cat := range types.Categories() {
		analysis.Presence[cat] = map[string]int{}
		analysis.Weighted[cat] = map[string]float64{}
		analysis.TermIndex[cat] = map[string][]int{}
	}

	tech := types.CategoryTechnicalSkills
	analysis.Presence[tech] = map[string]int{"Windows": 8, "Active Directory": 5, "PowerShell": 3}
	analysis.Weighted[tech] = map[string]float64{"Windows": 7.2, "Active Directory": 5.0, "PowerShell": 2.4}
	analysis.TermIndex[tech] = map[string][]int{
		"Windows":          {1, 2, 3, 4, 5, 6, 7, 8},
		"Active Directory": {1, 2, 3, 4, 5},
		"PowerShell":       {2, 4, 6},
	}

	certs := types.CategoryCertifications
	analysis.Presence[certs] = map[string]int{
		"Microsoft 365 Certification (MS-xxx)": 4,
		"MS-900 (Microsoft 365 Fundamentals)":  3,
		"CompTIA A+":                           2,
	}
	analysis.Weighted[certs] = map[string]float64{
		"Microsoft 365 Certification (MS-xxx)": 3.2,
		"MS-900 (Microsoft 365 Fundamentals)":  2.4,
		"CompTIA A+":                           1.0,
	}

	analysis.JobDetails = []types.JobDetail{
		{ID: 1, Title: "Service Desk Analyst", Company: "Acme"},
	}
	return analysis
}

func TestGenerateReportHeader(t *testing.T) {
	generated := time.Date(2025, 11, 2, 9, 30, 0, 0, time.UTC)
	meta := types.SearchMetadata{Keywords: "IT Support", Location: "Sydney NSW"}

	text := GenerateReport(sampleAnalysis(), meta, generated)

	for _, want := range []string{
		"JOB REQUIREMENTS ANALYSIS REPORT",
		"Generated: 2025-11-02 09:30:00",
		"Total Jobs Analyzed: 10",
		"Search Keywords: IT Support",
		"Search Location: Sydney NSW",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestGenerateReportDefaultsMetadata(t *testing.T) {
	text := GenerateReport(sampleAnalysis(), types.SearchMetadata{}, time.Now())
	if !strings.Contains(text, "Search Keywords: Not specified") {
		t.Error("missing keywords default")
	}
	if !strings.Contains(text, "Search Location: Not specified") {
		t.Error("missing location default")
	}
}

func TestGenerateReportSectionOrdering(t *testing.T) {
	text := GenerateReport(sampleAnalysis(), types.SearchMetadata{}, time.Now())

	sections := []string{
		"CERTIFICATIONS",
		"EDUCATION / QUALIFICATIONS",
		"TECHNICAL SKILLS (Top 25)",
		"SOFT SKILLS",
		"EXPERIENCE REQUIREMENTS",
		"SUPPORT LEVELS & ITSM",
		"WORK ARRANGEMENTS",
		"BENEFITS & PERKS",
		"OTHER REQUIREMENTS",
		"KEY INSIGHTS",
	}
	last := -1
	for _, section := range sections {
		idx := strings.Index(text, section)
		if idx < 0 {
			t.Fatalf("report missing section %q", section)
		}
		if idx < last {
			t.Errorf("section %q out of order", section)
		}
		last = idx
	}

	if !strings.Contains(text, "No items found") {
		t.Error("empty sections should render a No items found marker")
	}
}

func TestGenerateReportRowsSortedByWeightedScore(t *testing.T) {
	text := GenerateReport(sampleAnalysis(), types.SearchMetadata{}, time.Now())

	winIdx := strings.Index(text, "Windows")
	adIdx := strings.Index(text, "Active Directory")
	psIdx := strings.Index(text, "PowerShell")
	if !(winIdx < adIdx && adIdx < psIdx) {
		t.Errorf("technical skills not sorted by score: windows=%d ad=%d ps=%d", winIdx, adIdx, psIdx)
	}

	if !strings.Contains(text, "8 jobs ( 80.0%)") {
		t.Errorf("report missing presence percentage row:\n%s", text)
	}
}

func TestGenerateReportKeyInsightsSplitCertCodes(t *testing.T) {
	text := GenerateReport(sampleAnalysis(), types.SearchMetadata{}, time.Now())

	codesIdx := strings.Index(text, "Top 3 Certification Codes (presence):")
	if codesIdx < 0 {
		t.Fatal("missing certification codes insight")
	}
	bucketsIdx := strings.Index(text, "Top 3 Certification Buckets (presence):")
	if bucketsIdx < 0 {
		t.Fatal("missing certification buckets insight")
	}

	codesBlock := text[codesIdx:bucketsIdx]
	if !strings.Contains(codesBlock, "MS-900 (Microsoft 365 Fundamentals)") {
		t.Error("code insight missing MS-900")
	}
	if strings.Contains(codesBlock, "CompTIA A+") {
		t.Error("code insight should not include family terms")
	}

	bucketsBlock := text[bucketsIdx:]
	if !strings.Contains(bucketsBlock, "CompTIA A+") {
		t.Error("bucket insight missing CompTIA A+")
	}
	if strings.Contains(bucketsBlock, "MS-900") {
		t.Error("bucket insight should not include code terms")
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	generated := time.Date(2025, 11, 2, 9, 30, 0, 0, time.UTC)

	artifacts, err := WriteArtifacts(dir, sampleAnalysis(), types.SearchMetadata{Keywords: "IT"}, generated)
	if err != nil {
		t.Fatalf("WriteArtifacts() failed: %v", err)
	}

	text, err := os.ReadFile(artifacts.TextPath)
	if err != nil {
		t.Fatalf("reading text report: %v", err)
	}
	if !strings.Contains(string(text), "JOB REQUIREMENTS ANALYSIS REPORT") {
		t.Error("text report content wrong")
	}

	var full types.CorpusAnalysis
	data, err := os.ReadFile(artifacts.JSONPath)
	if err != nil {
		t.Fatalf("reading json report: %v", err)
	}
	if err := json.Unmarshal(data, &full); err != nil {
		t.Fatalf("json report not parseable: %v", err)
	}
	if full.TotalJobs != 10 {
		t.Errorf("json total_jobs = %d, want 10", full.TotalJobs)
	}

	var index struct {
		Generated string                     `json:"generated"`
		TotalJobs int                        `json:"total_jobs"`
		Jobs      map[string]json.RawMessage `json:"jobs"`
	}
	data, err = os.ReadFile(artifacts.IndexPath)
	if err != nil {
		t.Fatalf("reading index: %v", err)
	}
	if err := json.Unmarshal(data, &index); err != nil {
		t.Fatalf("index not parseable: %v", err)
	}
	if index.Generated != "2025-11-02 09:30:00" {
		t.Errorf("index generated = %q", index.Generated)
	}
	if _, ok := index.Jobs["1"]; !ok {
		t.Errorf("index jobs missing id 1: %v", index.Jobs)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if strings.Contains(entry.Name(), ".tmp-") {
			t.Errorf("leftover temp file: %s", entry.Name())
		}
	}
	if len(entries) != 3 {
		t.Errorf("output dir has %d entries, want 3", len(entries))
	}
}
