package types

// Category is the closed set of requirement categories. Using a named type
// instead of bare strings keeps a typo from silently creating a phantom
// category in aggregate maps.
type Category string

const (
	CategoryCertifications    Category = "certifications"
	CategoryEducation         Category = "education"
	CategoryTechnicalSkills   Category = "technical_skills"
	CategorySoftSkills        Category = "soft_skills"
	CategoryExperience        Category = "experience"
	CategorySupportLevels     Category = "support_levels"
	CategoryWorkArrangements  Category = "work_arrangements"
	CategoryBenefits          Category = "benefits"
	CategoryOtherRequirements Category = "other_requirements"
)

// Categories returns all categories in the fixed scan order used by the
// analyzer and the report renderer.
func Categories() []Category {
	return []Category{
		CategoryCertifications,
		CategoryEducation,
		CategoryTechnicalSkills,
		CategorySoftSkills,
		CategoryExperience,
		CategorySupportLevels,
		CategoryWorkArrangements,
		CategoryBenefits,
		CategoryOtherRequirements,
	}
}

// Context labels describe how strongly a match indicates a true requirement.
const (
	LabelRequired  = "required"
	LabelPreferred = "preferred"
	LabelBonus     = "bonus"
	LabelContext   = "context"
)

// JobRecord is one job listing as supplied by an external collaborator
// (markdown/JSONL parser or the sqlite job store). Immutable once passed
// to the analyzer.
type JobRecord struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
	Source      string `json:"source,omitempty"`
	SourceID    string `json:"source_id,omitempty"`
}

// WeightedTermHit is the strongest surviving evidence for one term within
// one job. Score is 1.0 * Weight.
type WeightedTermHit struct {
	Term   string  `json:"term"`
	Weight float64 `json:"weight"`
	Label  string  `json:"label"`
	Score  float64 `json:"score"`
}

// JobAnalysis is the per-job extraction result. Presence lists terms in
// order of first appearance; Weighted holds the best hit per term.
type JobAnalysis struct {
	Presence map[Category][]string          `json:"presence"`
	Weighted map[Category][]WeightedTermHit `json:"weighted"`
}

// JobDetail pairs a job's identity with its analysis for drill-down.
type JobDetail struct {
	ID           int         `json:"id"`
	Title        string      `json:"title"`
	Company      string      `json:"company"`
	Requirements JobAnalysis `json:"requirements"`
}

// CorpusAnalysis is the aggregate over a deduplicated job corpus. The JSON
// key names are a stable contract: UI collaborators read the persisted
// files directly by these names.
type CorpusAnalysis struct {
	Presence   map[Category]map[string]int     `json:"presence"`
	Weighted   map[Category]map[string]float64 `json:"weighted"`
	JobDetails []JobDetail                     `json:"job_details"`
	TermIndex  map[Category]map[string][]int   `json:"term_index"`
	TotalJobs  int                             `json:"total_jobs"`
}

// SearchMetadata carries the search parameters a compiled input file was
// produced with. All fields are optional.
type SearchMetadata struct {
	Keywords   string `json:"keywords,omitempty"`
	Location   string `json:"location,omitempty"`
	Generated  string `json:"generated,omitempty"`
	SearchMode string `json:"search_mode,omitempty"`
}
