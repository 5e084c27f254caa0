// Package report renders the aggregate requirements analysis as a plain
// text report and persists the machine-readable artifacts consumed by UI
// collaborators.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"jobsift/internal/types"
)

// Per-category display caps keep the text report readable; the JSON
// artifacts always carry the full data.
var sectionLimits = []struct {
	category types.Category
	title    string
	maxItems int
	topOnly  int
}{
	{types.CategoryCertifications, "CERTIFICATIONS", 35, 0},
	{types.CategoryEducation, "EDUCATION / QUALIFICATIONS", 20, 0},
	{types.CategoryTechnicalSkills, "TECHNICAL SKILLS (Top 25)", 40, 25},
	{types.CategorySoftSkills, "SOFT SKILLS", 25, 0},
	{types.CategoryExperience, "EXPERIENCE REQUIREMENTS", 20, 0},
	{types.CategorySupportLevels, "SUPPORT LEVELS & ITSM", 15, 0},
	{types.CategoryWorkArrangements, "WORK ARRANGEMENTS", 12, 0},
	{types.CategoryBenefits, "BENEFITS & PERKS", 15, 0},
	{types.CategoryOtherRequirements, "OTHER REQUIREMENTS", 20, 0},
}

// GenerateReport renders the full text report for an aggregate analysis.
func GenerateReport(analysis types.CorpusAnalysis, meta types.SearchMetadata, generatedAt time.Time) string {
	var b strings.Builder

	keywords := meta.Keywords
	if keywords == "" {
		keywords = "Not specified"
	}
	location := meta.Location
	if location == "" {
		location = "Not specified"
	}

	rule70 := strings.Repeat("=", 70)
	fmt.Fprintf(&b, "%s\n", rule70)
	fmt.Fprintf(&b, "JOB REQUIREMENTS ANALYSIS REPORT\n")
	fmt.Fprintf(&b, "Generated: %s\n", generatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Total Jobs Analyzed: %d\n", analysis.TotalJobs)
	fmt.Fprintf(&b, "Search Keywords: %s\n", keywords)
	fmt.Fprintf(&b, "Search Location: %s\n", location)
	fmt.Fprintf(&b, "%s\n", rule70)

	for _, section := range sectionLimits {
		presence := analysis.Presence[section.category]
		weighted := analysis.Weighted[section.category]
		if section.topOnly > 0 {
			presence = topPresence(presence, section.topOnly)
			weighted = topWeighted(weighted, section.topOnly)
		}
		writeSection(&b, section.title, presence, weighted, analysis.TotalJobs, section.maxItems)
	}

	writeInsights(&b, analysis)

	return b.String()
}

// combinedRow merges the presence and weighted views of one term.
type combinedRow struct {
	term     string
	presence int
	weighted float64
}

// combineAndSort ranks terms by weighted score, then presence count, then
// term name so equal-scoring terms always render in the same order.
func combineAndSort(presence map[string]int, weighted map[string]float64) []combinedRow {
	terms := make(map[string]bool, len(presence)+len(weighted))
	for term := range presence {
		terms[term] = true
	}
	for term := range weighted {
		terms[term] = true
	}

	rows := make([]combinedRow, 0, len(terms))
	for term := range terms {
		rows = append(rows, combinedRow{
			term:     term,
			presence: presence[term],
			weighted: weighted[term],
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].weighted != rows[j].weighted {
			return rows[i].weighted > rows[j].weighted
		}
		if rows[i].presence != rows[j].presence {
			return rows[i].presence > rows[j].presence
		}
		return rows[i].term < rows[j].term
	})
	return rows
}

func writeSection(b *strings.Builder, title string, presence map[string]int, weighted map[string]float64, totalJobs, maxItems int) {
	rule50 := strings.Repeat("=", 50)
	fmt.Fprintf(b, "\n\n%s\n%s\n%s\n", rule50, title, rule50)

	if len(presence) == 0 && len(weighted) == 0 {
		fmt.Fprintf(b, "  No items found\n")
		return
	}

	rows := combineAndSort(presence, weighted)

	shown := 0
	eligible := 0
	for _, row := range rows {
		if row.presence < 1 {
			continue
		}
		eligible++
		if shown >= maxItems {
			continue
		}
		shown++

		pct := 0.0
		if totalJobs > 0 {
			pct = float64(row.presence) / float64(totalJobs) * 100
		}
		avg := 0.0
		if row.presence > 0 {
			avg = row.weighted / float64(row.presence)
		}

		bar := strings.Repeat("█", min(20, int(pct/5)))
		fmt.Fprintf(b, "  %-32s %3d jobs (%5.1f%%) | Score: %6.1f (avg: %.2f) %s\n",
			truncateTerm(row.term, 32), row.presence, pct, row.weighted, avg, bar)
	}

	if eligible > shown {
		fmt.Fprintf(b, "  … showing top %d of %d items\n", shown, eligible)
	}
}

func truncateTerm(term string, limit int) string {
	if utf8.RuneCountInString(term) <= limit {
		return term
	}
	runes := []rune(term)
	return string(runes[:limit-3]) + "…"
}

func writeInsights(b *strings.Builder, analysis types.CorpusAnalysis) {
	rule50 := strings.Repeat("=", 50)
	fmt.Fprintf(b, "\n\n%s\nKEY INSIGHTS\n%s\n", rule50, rule50)

	totalJobs := analysis.TotalJobs
	pct := func(count int) float64 {
		if totalJobs == 0 {
			return 0
		}
		return float64(count) / float64(totalJobs) * 100
	}

	tech := rankByCount(analysis.Presence[types.CategoryTechnicalSkills])
	if len(tech) > 0 {
		fmt.Fprintf(b, "\n  Top 3 Technical Skills (presence):\n")
		for _, row := range top(tech, 3) {
			fmt.Fprintf(b, "    - %s: %d jobs (%.1f%%)\n", row.term, row.presence, pct(row.presence))
		}
	}

	certs := rankByCount(analysis.Presence[types.CategoryCertifications])
	if len(certs) > 0 {
		var codes, families []combinedRow
		for _, row := range certs {
			if isCertCodeTerm(row.term) {
				codes = append(codes, row)
			} else {
				families = append(families, row)
			}
		}
		if len(codes) > 0 {
			fmt.Fprintf(b, "\n  Top 3 Certification Codes (presence):\n")
			for _, row := range top(codes, 3) {
				fmt.Fprintf(b, "    - %s: %d jobs (%.1f%%)\n", row.term, row.presence, pct(row.presence))
			}
		}
		if len(families) > 0 {
			fmt.Fprintf(b, "\n  Top 3 Certification Buckets (presence):\n")
			for _, row := range top(families, 3) {
				fmt.Fprintf(b, "    - %s: %d jobs (%.1f%%)\n", row.term, row.presence, pct(row.presence))
			}
		}
	}
}

func rankByCount(presence map[string]int) []combinedRow {
	rows := make([]combinedRow, 0, len(presence))
	for term, count := range presence {
		rows = append(rows, combinedRow{term: term, presence: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].presence != rows[j].presence {
			return rows[i].presence > rows[j].presence
		}
		return rows[i].term < rows[j].term
	})
	return rows
}

func top(rows []combinedRow, n int) []combinedRow {
	if len(rows) > n {
		return rows[:n]
	}
	return rows
}

func isCertCodeTerm(term string) bool {
	if len(term) < 6 {
		return false
	}
	prefixes := []string{"MS-", "AZ-", "SC-", "MD-", "PL-", "DP-", "MB-", "AI-", "AD-", "WS-"}
	upper := strings.ToUpper(term)
	for _, p := range prefixes {
		if strings.HasPrefix(upper, p) && isDigits(upper[3:6]) {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func topPresence(presence map[string]int, n int) map[string]int {
	rows := rankByCount(presence)
	rows = top(rows, n)
	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.term] = row.presence
	}
	return out
}

func topWeighted(weighted map[string]float64, n int) map[string]float64 {
	rows := make([]combinedRow, 0, len(weighted))
	for term, score := range weighted {
		rows = append(rows, combinedRow{term: term, weighted: score})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].weighted != rows[j].weighted {
			return rows[i].weighted > rows[j].weighted
		}
		return rows[i].term < rows[j].term
	})
	rows = top(rows, n)
	out := make(map[string]float64, len(rows))
	for _, row := range rows {
		out[row.term] = row.weighted
	}
	return out
}
