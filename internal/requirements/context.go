package requirements

import (
	"regexp"
	"strings"

	"jobsift/internal/types"
)

// Context keyword lists. These drive the weighting of every match, so the
// order of checks in classifyContext is part of the output contract.
var requiredWords = []string{
	"required",
	"must have",
	"must",
	"need",
	"need to",
	"minimum requirements",
	"mandatory",
	"essential",
	"key criteria",
	"selection criteria",
	"you will have",
	"you'll have",
	"to succeed in this role",
}

var preferredWords = []string{
	"preferred",
	"desirable",
	"nice to have",
	"advantage",
	"beneficial",
	"highly regarded",
	"highly desirable",
	"an advantage",
	"would be advantageous",
}

var bonusWords = []string{
	"bonus",
	"plus",
	"a plus",
	"would be great",
	"great if",
	"helpful if",
}

var sectionRequired = []string{
	"requirements",
	"minimum requirements",
	"essential",
	"mandatory",
	"key requirements",
	"skills required",
	"skills and experience",
	"what you will bring",
	"what you'll bring",
	"to succeed in this role",
	"selection criteria",
}

var sectionPreferred = []string{
	"desirable",
	"nice to have",
	"preferred",
	"highly regarded",
	"highly desirable",
	"advantageous",
}

var bulletRe = regexp.MustCompile(`^\s*([-•*·]|\d+[.)])\s+`)

func containsAny(window string, words []string) bool {
	for _, w := range words {
		if strings.Contains(window, w) {
			return true
		}
	}
	return false
}

// classifyContext returns the (label, weight) pair for a match based on a
// ±100-char window and the match's line position.
//
// Precedence is deliberate and must not be reordered: section-level framing
// outranks local keyword proximity, which outranks the bullet heuristic,
// which outranks the ambient-context default.
func classifyContext(matchStart, matchEnd int, jobText string) (string, float64) {
	windowStart := max(0, matchStart-100)
	windowEnd := min(len(jobText), matchEnd+100)
	// Lowercase the window rather than indexing into a pre-lowered copy:
	// ToLower can change byte length for some runes (U+0130, U+212A), so
	// offsets into jobText do not line up with offsets into its lowered form.
	window := strings.ToLower(jobText[windowStart:windowEnd])

	// Look back to the start of the current line for bullet detection.
	lineStart := strings.LastIndexByte(jobText[:matchStart], '\n') + 1
	line := jobText[lineStart:matchStart]
	hasBullet := bulletRe.MatchString(line)

	// A nearby section header signals intent even without explicit
	// required/preferred keywords.
	if containsAny(window, sectionRequired) {
		// If the same window strongly signals "preferred", respect that.
		if containsAny(window, preferredWords) && !containsAny(window, requiredWords) {
			return types.LabelPreferred, 0.8
		}
		return types.LabelRequired, 1.0
	}
	if containsAny(window, sectionPreferred) {
		return types.LabelPreferred, 0.8
	}

	// Keyword-only fallback (more conservative).
	if containsAny(window, requiredWords) {
		return types.LabelRequired, 1.0
	}
	if containsAny(window, preferredWords) {
		return types.LabelPreferred, 0.8
	}
	if containsAny(window, bonusWords) {
		return types.LabelBonus, 0.5
	}

	// Bulleted items imply itemized requirements absent contrary signal.
	if hasBullet {
		return types.LabelRequired, 1.0
	}

	return types.LabelContext, 0.2
}
