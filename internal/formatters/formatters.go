package formatters

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"jobsift/internal/scoring"
	"jobsift/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "CorpusAnalysis", &CorpusTextFormatter{})
	registry.RegisterFormatter("markdown", "CorpusAnalysis", &CorpusMarkdownFormatter{})
	registry.RegisterFormatter("text", "JobAnalysis", &JobAnalysisTextFormatter{})
	registry.RegisterFormatter("markdown", "JobAnalysis", &JobAnalysisMarkdownFormatter{})
	registry.RegisterFormatter("text", "ScoredJobs", &ScoreTextFormatter{})
	registry.RegisterFormatter("markdown", "ScoredJobs", &ScoreMarkdownFormatter{})
	registry.RegisterFormatter("text", "Rendered", &PassthroughFormatter{})
	registry.RegisterFormatter("markdown", "Rendered", &PassthroughFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.CorpusAnalysis:
		return "CorpusAnalysis"
	case types.JobAnalysis:
		return "JobAnalysis"
	case []scoring.ScoredJob:
		return "ScoredJobs"
	case string:
		return "Rendered"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// PassthroughFormatter emits pre-rendered text unchanged
type PassthroughFormatter struct{}

func (pf *PassthroughFormatter) Format(data any) (string, error) {
	text, ok := data.(string)
	if !ok {
		return "", fmt.Errorf("expected pre-rendered text, got %T", data)
	}
	return text, nil
}

func (pf *PassthroughFormatter) SupportedType() string {
	return "Rendered"
}

// Display names for categories in text/markdown output.
var categoryTitles = map[types.Category]string{
	types.CategoryCertifications:    "Certifications",
	types.CategoryEducation:         "Education / Qualifications",
	types.CategoryTechnicalSkills:   "Technical Skills",
	types.CategorySoftSkills:        "Soft Skills",
	types.CategoryExperience:        "Experience",
	types.CategorySupportLevels:     "Support Levels & ITSM",
	types.CategoryWorkArrangements:  "Work Arrangements",
	types.CategoryBenefits:          "Benefits & Perks",
	types.CategoryOtherRequirements: "Other Requirements",
}

// CorpusTextFormatter handles text formatting for aggregate analysis results
type CorpusTextFormatter struct{}

func (ctf *CorpusTextFormatter) Format(data any) (string, error) {
	analysis, ok := data.(types.CorpusAnalysis)
	if !ok {
		return "", fmt.Errorf("expected CorpusAnalysis, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== REQUIREMENTS ANALYSIS ===\n\n")
	output.WriteString(fmt.Sprintf("Total Jobs Analyzed: %d\n", analysis.TotalJobs))

	for _, cat := range types.Categories() {
		terms := rankedPresence(analysis.Presence[cat])
		if len(terms) == 0 {
			continue
		}
		output.WriteString(fmt.Sprintf("\n%s:\n", categoryTitles[cat]))
		for _, row := range terms {
			output.WriteString(fmt.Sprintf("  %s: %d jobs (score %.1f)\n",
				row.term, row.count, analysis.Weighted[cat][row.term]))
		}
	}

	return output.String(), nil
}

func (ctf *CorpusTextFormatter) SupportedType() string {
	return "CorpusAnalysis"
}

// CorpusMarkdownFormatter handles markdown formatting for aggregate analysis results
type CorpusMarkdownFormatter struct{}

func (cmf *CorpusMarkdownFormatter) Format(data any) (string, error) {
	analysis, ok := data.(types.CorpusAnalysis)
	if !ok {
		return "", fmt.Errorf("expected CorpusAnalysis, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Requirements Analysis\n\n")
	output.WriteString(fmt.Sprintf("**Total Jobs Analyzed:** %d\n", analysis.TotalJobs))

	for _, cat := range types.Categories() {
		terms := rankedPresence(analysis.Presence[cat])
		if len(terms) == 0 {
			continue
		}
		output.WriteString(fmt.Sprintf("\n## %s\n\n", categoryTitles[cat]))
		output.WriteString("| Term | Jobs | Score |\n|------|------|-------|\n")
		for _, row := range terms {
			output.WriteString(fmt.Sprintf("| %s | %d | %.1f |\n",
				row.term, row.count, analysis.Weighted[cat][row.term]))
		}
	}

	return output.String(), nil
}

func (cmf *CorpusMarkdownFormatter) SupportedType() string {
	return "CorpusAnalysis"
}

// JobAnalysisTextFormatter handles text formatting for single-job results
type JobAnalysisTextFormatter struct{}

func (jtf *JobAnalysisTextFormatter) Format(data any) (string, error) {
	analysis, ok := data.(types.JobAnalysis)
	if !ok {
		return "", fmt.Errorf("expected JobAnalysis, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== JOB ANALYSIS ===\n")
	for _, cat := range types.Categories() {
		hits := analysis.Weighted[cat]
		if len(hits) == 0 {
			continue
		}
		output.WriteString(fmt.Sprintf("\n%s:\n", categoryTitles[cat]))
		for _, hit := range hits {
			output.WriteString(fmt.Sprintf("  %s [%s, %.1f]\n", hit.Term, hit.Label, hit.Score))
		}
	}

	return output.String(), nil
}

func (jtf *JobAnalysisTextFormatter) SupportedType() string {
	return "JobAnalysis"
}

// JobAnalysisMarkdownFormatter handles markdown formatting for single-job results
type JobAnalysisMarkdownFormatter struct{}

func (jmf *JobAnalysisMarkdownFormatter) Format(data any) (string, error) {
	analysis, ok := data.(types.JobAnalysis)
	if !ok {
		return "", fmt.Errorf("expected JobAnalysis, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Job Analysis\n")
	for _, cat := range types.Categories() {
		hits := analysis.Weighted[cat]
		if len(hits) == 0 {
			continue
		}
		output.WriteString(fmt.Sprintf("\n## %s\n\n", categoryTitles[cat]))
		for _, hit := range hits {
			output.WriteString(fmt.Sprintf("- **%s** (%s, %.1f)\n", hit.Term, hit.Label, hit.Score))
		}
	}

	return output.String(), nil
}

func (jmf *JobAnalysisMarkdownFormatter) SupportedType() string {
	return "JobAnalysis"
}

// ScoreTextFormatter handles text formatting for scored listings
type ScoreTextFormatter struct{}

func (stf *ScoreTextFormatter) Format(data any) (string, error) {
	scored, ok := data.([]scoring.ScoredJob)
	if !ok {
		return "", fmt.Errorf("expected []scoring.ScoredJob, got %T", data)
	}

	summary := scoring.Summarize(scored)

	var output strings.Builder
	output.WriteString("=== JOB SCORING ===\n\n")
	output.WriteString(fmt.Sprintf("Total: %d | APPLY: %d | STRETCH: %d | IGNORE: %d\n\n",
		summary.Total, summary.Apply, summary.Stretch, summary.Ignore))

	for _, sj := range scored {
		output.WriteString(fmt.Sprintf("[%d/10] %-7s %s", sj.Result.Score, sj.Result.Classification, sj.Job.Title))
		if sj.Job.Company != "" {
			output.WriteString(fmt.Sprintf(" @ %s", sj.Job.Company))
		}
		output.WriteString("\n")
		if sj.Result.ExcludeReason != "" {
			output.WriteString(fmt.Sprintf("        excluded: %s\n", sj.Result.ExcludeReason))
		} else if len(sj.Result.MatchedSignals) > 0 {
			output.WriteString(fmt.Sprintf("        %s\n", strings.Join(sj.Result.MatchedSignals, ", ")))
		}
	}

	return output.String(), nil
}

func (stf *ScoreTextFormatter) SupportedType() string {
	return "ScoredJobs"
}

// ScoreMarkdownFormatter handles markdown formatting for scored listings
type ScoreMarkdownFormatter struct{}

func (smf *ScoreMarkdownFormatter) Format(data any) (string, error) {
	scored, ok := data.([]scoring.ScoredJob)
	if !ok {
		return "", fmt.Errorf("expected []scoring.ScoredJob, got %T", data)
	}

	summary := scoring.Summarize(scored)

	var output strings.Builder
	output.WriteString("# Job Scoring\n\n")
	output.WriteString(fmt.Sprintf("**Total:** %d · **APPLY:** %d · **STRETCH:** %d · **IGNORE:** %d\n\n",
		summary.Total, summary.Apply, summary.Stretch, summary.Ignore))
	output.WriteString("| Score | Classification | Title | Company | Signals |\n")
	output.WriteString("|-------|----------------|-------|---------|--------|\n")

	for _, sj := range scored {
		signals := strings.Join(sj.Result.MatchedSignals, ", ")
		if sj.Result.ExcludeReason != "" {
			signals = "excluded: " + sj.Result.ExcludeReason
		}
		output.WriteString(fmt.Sprintf("| %d/10 | %s | %s | %s | %s |\n",
			sj.Result.Score, sj.Result.Classification, sj.Job.Title, sj.Job.Company, signals))
	}

	return output.String(), nil
}

func (smf *ScoreMarkdownFormatter) SupportedType() string {
	return "ScoredJobs"
}

type presenceRow struct {
	term  string
	count int
}

func rankedPresence(presence map[string]int) []presenceRow {
	rows := make([]presenceRow, 0, len(presence))
	for term, count := range presence {
		rows = append(rows, presenceRow{term: term, count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].term < rows[j].term
	})
	return rows
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
