package requirements

import (
	"jobsift/internal/types"
)

// Analyzer scans job-description text against the pattern registry. It is
// stateless between calls: each AnalyzeJob is a pure function of its input
// text and the registry.
type Analyzer struct {
	registry *Registry
}

// NewAnalyzer creates an analyzer over a compiled registry.
func NewAnalyzer(registry *Registry) *Analyzer {
	return &Analyzer{registry: registry}
}

// Registry exposes the analyzer's pattern registry (for stats reporting).
func (a *Analyzer) Registry() *Registry {
	return a.registry
}

// AnalyzeJob analyzes a single job description for all requirement
// categories. Presence lists terms in order of first appearance; Weighted
// keeps the single best-scoring hit per term so multiple mentions within
// one job never inflate its contribution.
func (a *Analyzer) AnalyzeJob(jobText string) types.JobAnalysis {
	result := types.JobAnalysis{
		Presence: make(map[types.Category][]string),
		Weighted: make(map[types.Category][]types.WeightedTermHit),
	}
	for _, cat := range types.Categories() {
		result.Presence[cat] = []string{}
		result.Weighted[cat] = []types.WeightedTermHit{}
	}
	if jobText == "" {
		return result
	}

	for _, cat := range types.Categories() {
		best := make(map[string]types.WeightedTermHit)
		order := make([]string, 0)

		upsert := func(term, label string, weight float64) {
			score := 1.0 * weight
			prev, seen := best[term]
			// Strictly greater: on an exact tie the first-seen label wins.
			if !seen || score > prev.Score {
				if !seen {
					order = append(order, term)
				}
				best[term] = types.WeightedTermHit{
					Term:   term,
					Weight: weight,
					Label:  label,
					Score:  score,
				}
			}
		}

		addPresence := func(term string) {
			for _, existing := range result.Presence[cat] {
				if existing == term {
					return
				}
			}
			result.Presence[cat] = append(result.Presence[cat], term)
		}

		for _, pattern := range a.registry.Patterns(cat) {
			for _, loc := range pattern.Re.FindAllStringIndex(jobText, -1) {
				start, end := loc[0], loc[1]
				if pattern.ExcludedByFollowing(jobText[end:]) {
					continue
				}
				if !passesGate(pattern.Term, cat, start, end, jobText) {
					continue
				}

				label, weight := classifyContext(start, end, jobText)

				if cat == types.CategoryCertifications {
					addPresence(pattern.Term)
					upsert(pattern.Term, label, weight)

					// A recognized Microsoft code gets a second, more
					// specific entry derived from the same match.
					if specific := a.registry.SpecificCertTerm(jobText[start:end]); specific != "" {
						addPresence(specific)
						upsert(specific, label, weight)
					}
				} else {
					addPresence(pattern.Term)
					upsert(pattern.Term, label, weight)
				}
			}
		}

		hits := make([]types.WeightedTermHit, 0, len(order))
		for _, term := range order {
			hits = append(hits, best[term])
		}
		result.Weighted[cat] = hits
	}

	return result
}
