package requirements

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"

	"jobsift/internal/types"
)

// identityKey is the dedup fingerprint chosen per job. kind keeps keys from
// different priority tiers from colliding.
type identityKey struct {
	kind string
	a    string
	b    string
}

// descFingerprintLimit bounds hashing cost on very long descriptions while
// remaining a strong fingerprint. The limit counts runes, not bytes, so a
// multibyte character is never split mid-sequence.
const descFingerprintLimit = 3000

// jobIdentityKey assigns the strongest available identity key, in
// confidence order: platform-native (source, source_id), canonical URL,
// description content hash, then title+company as last resort.
func jobIdentityKey(job types.JobRecord) identityKey {
	src := Normalize(job.Source)
	sid := Normalize(job.SourceID)
	if src != "" && sid != "" {
		return identityKey{kind: "src_id", a: src, b: sid}
	}

	if url := CanonicalizeURL(job.URL); url != "" {
		return identityKey{kind: "url", a: Normalize(url)}
	}

	if job.Description != "" {
		normalized := Normalize(job.Description)
		if runes := []rune(normalized); len(runes) > descFingerprintLimit {
			normalized = string(runes[:descFingerprintLimit])
		}
		sum := sha1.Sum([]byte(normalized))
		return identityKey{kind: "desc_fp", a: hex.EncodeToString(sum[:])}
	}

	return identityKey{kind: "title_company", a: Normalize(job.Title), b: Normalize(job.Company)}
}

// DedupeJobs removes duplicate jobs by strongest available identity key,
// keeping the first occurrence in input order.
func DedupeJobs(jobs []types.JobRecord) []types.JobRecord {
	seen := make(map[identityKey]bool, len(jobs))
	unique := make([]types.JobRecord, 0, len(jobs))
	for _, job := range jobs {
		key := jobIdentityKey(job)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, job)
	}
	return unique
}

// AnalyzeAllJobs analyzes every job and aggregates results: presence
// counts (jobs mentioning a term, not raw match occurrences), weighted
// sums (each job contributes only its single best score per term), an
// inverted term -> job-id index, and per-job detail records.
//
// Missing descriptions analyze as empty text; zero jobs and zero matches
// are valid states, not errors.
func (a *Analyzer) AnalyzeAllJobs(jobs []types.JobRecord, dedupe bool) types.CorpusAnalysis {
	if dedupe {
		jobs = DedupeJobs(jobs)
	}

	analysis := types.CorpusAnalysis{
		Presence:   make(map[types.Category]map[string]int),
		Weighted:   make(map[types.Category]map[string]float64),
		JobDetails: make([]types.JobDetail, 0, len(jobs)),
		TermIndex:  make(map[types.Category]map[string][]int),
		TotalJobs:  len(jobs),
	}
	for _, cat := range types.Categories() {
		analysis.Presence[cat] = make(map[string]int)
		analysis.Weighted[cat] = make(map[string]float64)
		analysis.TermIndex[cat] = make(map[string][]int)
	}

	for _, job := range jobs {
		jobAnalysis := a.AnalyzeJob(job.Description)
		analysis.JobDetails = append(analysis.JobDetails, types.JobDetail{
			ID:           job.ID,
			Title:        job.Title,
			Company:      job.Company,
			Requirements: jobAnalysis,
		})

		for cat, terms := range jobAnalysis.Presence {
			for _, term := range terms {
				analysis.TermIndex[cat][term] = append(analysis.TermIndex[cat][term], job.ID)
				analysis.Presence[cat][term]++
			}
		}

		for cat, hits := range jobAnalysis.Weighted {
			for _, hit := range hits {
				analysis.Weighted[cat][hit.Term] += hit.Score
			}
		}
	}

	return analysis
}

// TermCount is one row of a ranked term listing.
type TermCount struct {
	Term  string
	Count int
}

// TermScore is one row of a ranked weighted-score listing.
type TermScore struct {
	Term  string
	Score float64
}

// SortedPresence ranks a presence map descending by count. Ties break
// alphabetically by term, an explicit choice so output is deterministic.
func SortedPresence(m map[string]int) []TermCount {
	out := make([]TermCount, 0, len(m))
	for term, count := range m {
		out = append(out, TermCount{Term: term, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Term < out[j].Term
	})
	return out
}

// SortedWeighted ranks a weighted map descending by score, ties broken
// alphabetically by term.
func SortedWeighted(m map[string]float64) []TermScore {
	out := make([]TermScore, 0, len(m))
	for term, score := range m {
		out = append(out, TermScore{Term: term, Score: score})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Term < out[j].Term
	})
	return out
}
