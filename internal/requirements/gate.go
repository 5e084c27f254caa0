package requirements

import (
	"strings"

	"jobsift/internal/types"
)

// Vendor/brand terms whose bare mention is often company boilerplate
// rather than a candidate skill.
var vendorGateTerms = map[string]bool{
	"cisco":    true,
	"fortinet": true,
	"meraki":   true,
	"unifi":    true,
	"vmware":   true,
	"citrix":   true,
	"hp/hpe":   true,
	"dell":     true,
	"lenovo":   true,
}

var companyContextPhrases = []string{
	"we are", "our company", "about us", "we use", "our partner", "partner with",
}

var requirementSignals = []string{
	"experience", "knowledge", "skills", "required", "preferred", "familiar", "understanding", "proficien",
}

var mspCompanyPhrases = []string{
	"our msp",
	"we are an msp",
	"msp company",
	"msp firm",
	"msp provider",
	"managed service provider",
	"managed services provider",
	"we are a managed service provider",
	"join our managed services",
}

var mspRequirementWords = []string{
	"experience",
	"background",
	"required",
	"preferred",
	"looking for",
	"candidate",
}

var supportLevelWords = []string{
	"support", "tier", "line", "help desk", "service desk",
}

var educationContextWords = []string{
	"education", "qualification", "study", "degree",
}

var drivingWords = []string{
	"driver", "license", "driving",
}

// passesGate applies term-specific suppression to filter false positives,
// using a ±200-char lowercased window around the match. Rules are
// conservative: the default is to allow the match.
func passesGate(term string, category types.Category, matchStart, matchEnd int, jobText string) bool {
	windowStart := max(0, matchStart-200)
	windowEnd := min(len(jobText), matchEnd+200)
	window := strings.ToLower(jobText[windowStart:windowEnd])
	termLower := strings.ToLower(term)

	switch category {
	case types.CategoryEducation:
		if (termLower == "diploma" || strings.HasPrefix(termLower, "certificate")) && containsAny(window, drivingWords) {
			return false
		}
		if termLower == "tafe" && strings.Contains(window, "tafe") && !containsAny(window, educationContextWords) {
			return false
		}

	case types.CategoryTechnicalSkills:
		// Vendor names count unless the window is clearly company
		// boilerplate with no requirement signal at all.
		if vendorGateTerms[termLower] && containsAny(window, companyContextPhrases) {
			if !containsAny(window, requirementSignals) {
				return false
			}
		}

	case types.CategoryExperience:
		// MSP mentioned as who the employer is, not what the candidate needs.
		if term == "MSP" || term == "MSP Experience" {
			if containsAny(window, mspCompanyPhrases) && !containsAny(window, mspRequirementWords) {
				return false
			}
		}

	case types.CategorySupportLevels:
		// Bare level mentions need a support word nearby; "level" shows up
		// in plenty of non-support contexts (education levels, seniority).
		if strings.HasPrefix(termLower, "level ") && !containsAny(window, supportLevelWords) {
			return false
		}
	}

	return true
}
