package requirements

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"jobsift/internal/errors"
	"jobsift/internal/types"
)

// CompiledPattern is one (term, regex) entry of a category's pattern set.
// Patterns are compiled once at registry construction and reused across all
// job analyses.
type CompiledPattern struct {
	Term string
	Re   *regexp.Regexp

	// notAfter suppresses a match when the text immediately following it
	// matches. Stands in for negative lookahead.
	notAfter *regexp.Regexp
}

// ExcludedByFollowing reports whether the text after a match disqualifies it.
func (p CompiledPattern) ExcludedByFollowing(following string) bool {
	return p.notAfter != nil && p.notAfter.MatchString(following)
}

// Registry is the immutable, pre-compiled pattern library. It is built once
// at process start and passed by reference into the analyzer. A broken
// expression fails construction: silent partial analysis would be worse
// than failing fast.
type Registry struct {
	patterns  map[types.Category][]CompiledPattern
	certNames map[string]string
}

// certCodeRe recognizes Microsoft role-based certification codes in matched
// text, restricted to the known prefix set.
var certCodeRe = regexp.MustCompile(`^(MS|AZ|SC|AI|DP|PL|MD|MB|AD|WS)-\d{3}$`)

func builtinDefs() map[types.Category][]patternDef {
	return map[types.Category][]patternDef{
		types.CategoryCertifications:    certificationPatterns,
		types.CategoryEducation:         educationPatterns,
		types.CategoryTechnicalSkills:   technicalSkillPatterns,
		types.CategorySoftSkills:        softSkillPatterns,
		types.CategoryExperience:        experiencePatterns,
		types.CategorySupportLevels:     supportLevelPatterns,
		types.CategoryWorkArrangements:  workArrangementPatterns,
		types.CategoryBenefits:          benefitPatterns,
		types.CategoryOtherRequirements: otherRequirementPatterns,
	}
}

// NewRegistry builds a registry from the built-in pattern library.
func NewRegistry() (*Registry, error) {
	return build(builtinDefs())
}

// NewRegistryFromFile builds a registry from the built-in library plus a
// YAML override file (category -> term -> expression). Overrides replace
// the expression of an existing term in place; new terms are appended in
// alphabetical order so output stays deterministic.
func NewRegistryFromFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("Cannot read pattern override file: %s", path), err)
	}

	var overrides map[string]map[string]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, errors.NewPatternError(errors.ErrCodeInvalidPattern,
			fmt.Sprintf("Pattern override file is not valid YAML: %s", path), err)
	}

	defs := builtinDefs()
	for rawCat, terms := range overrides {
		cat := types.Category(rawCat)
		if _, known := defs[cat]; !known {
			return nil, errors.NewPatternError(errors.ErrCodeInvalidPattern,
				fmt.Sprintf("Unknown category in pattern override file: %s", rawCat), nil)
		}

		existing := defs[cat]
		added := make([]patternDef, 0, len(terms))
		for term, expr := range terms {
			replaced := false
			for i := range existing {
				if existing[i].term == term {
					existing[i] = patternDef{term: term, expr: expr}
					replaced = true
					break
				}
			}
			if !replaced {
				added = append(added, patternDef{term: term, expr: expr})
			}
		}
		sort.Slice(added, func(i, j int) bool { return added[i].term < added[j].term })
		defs[cat] = append(existing, added...)
	}

	return build(defs)
}

func build(defs map[types.Category][]patternDef) (*Registry, error) {
	r := &Registry{
		patterns:  make(map[types.Category][]CompiledPattern, len(defs)),
		certNames: microsoftCertCodes,
	}

	for cat, list := range defs {
		compiled := make([]CompiledPattern, 0, len(list))
		for _, def := range list {
			re, err := regexp.Compile("(?i)" + def.expr)
			if err != nil {
				return nil, errors.NewPatternError(errors.ErrCodeInvalidPattern,
					fmt.Sprintf("Invalid pattern for term %q in category %q", def.term, cat), err)
			}
			cp := CompiledPattern{Term: def.term, Re: re}
			if def.notAfter != "" {
				na, err := regexp.Compile("(?i)" + def.notAfter)
				if err != nil {
					return nil, errors.NewPatternError(errors.ErrCodeInvalidPattern,
						fmt.Sprintf("Invalid follow exclusion for term %q in category %q", def.term, cat), err)
				}
				cp.notAfter = na
			}
			compiled = append(compiled, cp)
		}
		r.patterns[cat] = compiled
	}

	return r, nil
}

// Patterns returns the compiled pattern set for a category. Callers must
// not mutate the returned slice.
func (r *Registry) Patterns(cat types.Category) []CompiledPattern {
	return r.patterns[cat]
}

// CertFriendlyName resolves a Microsoft certification code (e.g. "AZ-900")
// to its friendly name.
func (r *Registry) CertFriendlyName(code string) (string, bool) {
	name, ok := r.certNames[strings.ToUpper(code)]
	return name, ok
}

// SpecificCertTerm returns the drill-down term for matched certification
// text when it is a recognized Microsoft code: "AZ-900 (Azure Fundamentals)",
// or the bare code when no friendly name is mapped. Returns "" for
// non-code matches.
func (r *Registry) SpecificCertTerm(matched string) string {
	code := strings.ToUpper(strings.TrimSpace(matched))
	if !certCodeRe.MatchString(code) {
		return ""
	}
	if name, ok := r.certNames[code]; ok {
		return fmt.Sprintf("%s (%s)", code, name)
	}
	return code
}

// TermCounts returns the number of terms per category, for stats reporting.
func (r *Registry) TermCounts() map[types.Category]int {
	counts := make(map[types.Category]int, len(r.patterns))
	for cat, list := range r.patterns {
		counts[cat] = len(list)
	}
	return counts
}
