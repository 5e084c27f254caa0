package requirements

import (
	"testing"

	"jobsift/internal/types"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() failed: %v", err)
	}
	return NewAnalyzer(registry)
}

func hasTerm(terms []string, want string) bool {
	for _, term := range terms {
		if term == want {
			return true
		}
	}
	return false
}

func findHit(hits []types.WeightedTermHit, term string) (types.WeightedTermHit, bool) {
	for _, hit := range hits {
		if hit.Term == term {
			return hit, true
		}
	}
	return types.WeightedTermHit{}, false
}

func TestAnalyzeJobEmptyDescription(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	result := analyzer.AnalyzeJob("")

	for _, cat := range types.Categories() {
		presence, ok := result.Presence[cat]
		if !ok {
			t.Errorf("Presence missing category %q", cat)
		}
		if len(presence) != 0 {
			t.Errorf("Presence[%q] = %v, want empty", cat, presence)
		}
		weighted, ok := result.Weighted[cat]
		if !ok {
			t.Errorf("Weighted missing category %q", cat)
		}
		if len(weighted) != 0 {
			t.Errorf("Weighted[%q] = %v, want empty", cat, weighted)
		}
	}
}

func TestAnalyzeJobContextClassification(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	tests := []struct {
		name       string
		text       string
		category   types.Category
		term       string
		wantLabel  string
		wantWeight float64
	}{
		{
			name:       "requirements section gives required",
			text:       "Requirements:\n- Active Directory administration\n- Windows Server 2019",
			category:   types.CategoryTechnicalSkills,
			term:       "Active Directory",
			wantLabel:  types.LabelRequired,
			wantWeight: 1.0,
		},
		{
			name:       "required keyword gives required",
			text:       "PowerShell knowledge is required for this role.",
			category:   types.CategoryTechnicalSkills,
			term:       "PowerShell",
			wantLabel:  types.LabelRequired,
			wantWeight: 1.0,
		},
		{
			name:       "highly regarded gives preferred",
			text:       "Exposure to Intune would be highly regarded.",
			category:   types.CategoryTechnicalSkills,
			term:       "Intune",
			wantLabel:  types.LabelPreferred,
			wantWeight: 0.8,
		},
		{
			name:       "bonus keyword gives bonus",
			text:       "Familiarity with JAMF would be a plus.",
			category:   types.CategoryTechnicalSkills,
			term:       "JAMF",
			wantLabel:  types.LabelBonus,
			wantWeight: 0.5,
		},
		{
			name:       "bullet without keywords gives required",
			text:       "What the day looks like across our offices and client locations in the metro area during a standard rotation:\n- Intune device enrolment",
			category:   types.CategoryTechnicalSkills,
			term:       "Intune",
			wantLabel:  types.LabelRequired,
			wantWeight: 1.0,
		},
		{
			name:       "plain mention gives context",
			text:       "Our team uses SharePoint across the organisation.",
			category:   types.CategoryTechnicalSkills,
			term:       "SharePoint",
			wantLabel:  types.LabelContext,
			wantWeight: 0.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := analyzer.AnalyzeJob(tt.text)

			if !hasTerm(result.Presence[tt.category], tt.term) {
				t.Fatalf("Presence[%q] = %v, want to contain %q",
					tt.category, result.Presence[tt.category], tt.term)
			}
			hit, ok := findHit(result.Weighted[tt.category], tt.term)
			if !ok {
				t.Fatalf("Weighted[%q] has no hit for %q", tt.category, tt.term)
			}
			if hit.Label != tt.wantLabel {
				t.Errorf("label = %q, want %q", hit.Label, tt.wantLabel)
			}
			if hit.Weight != tt.wantWeight {
				t.Errorf("weight = %v, want %v", hit.Weight, tt.wantWeight)
			}
			if hit.Score != tt.wantWeight {
				t.Errorf("score = %v, want %v", hit.Score, tt.wantWeight)
			}
		})
	}
}

func TestAnalyzeJobBestHitUpgrade(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	// First mention is plain context; the later mention sits in a
	// requirements section far enough away that the first match's window
	// cannot see the section header. The single recorded hit must carry
	// the best score, and presence must list the term once.
	text := "SharePoint is part of the daily toolset across the organisation and the wider group of companies in the region, with many internal sites maintained every single day of operation by rotating staff.\n\n" +
		"Key requirements:\n- SharePoint administration"

	result := analyzer.AnalyzeJob(text)

	count := 0
	for _, term := range result.Presence[types.CategoryTechnicalSkills] {
		if term == "SharePoint" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("SharePoint listed %d times in presence, want exactly 1", count)
	}

	hit, ok := findHit(result.Weighted[types.CategoryTechnicalSkills], "SharePoint")
	if !ok {
		t.Fatal("no weighted hit for SharePoint")
	}
	if hit.Label != types.LabelRequired || hit.Score != 1.0 {
		t.Errorf("hit = {label: %q, score: %v}, want {required, 1.0}", hit.Label, hit.Score)
	}
}

func TestAnalyzeJobScoreCeilingPerTerm(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	// Three required-context mentions in one job must still yield a single
	// hit at weight 1.0, never a sum.
	text := "Requirements: PowerShell scripting required. PowerShell automation required. PowerShell modules required."

	result := analyzer.AnalyzeJob(text)

	hits := 0
	for _, hit := range result.Weighted[types.CategoryTechnicalSkills] {
		if hit.Term == "PowerShell" {
			hits++
			if hit.Score != 1.0 {
				t.Errorf("score = %v, want 1.0", hit.Score)
			}
		}
	}
	if hits != 1 {
		t.Errorf("got %d weighted hits for PowerShell, want 1", hits)
	}
}

func TestAnalyzeJobCertificationCodeExpansion(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	result := analyzer.AnalyzeJob("Certifications such as MS-900 are highly regarded.")

	presence := result.Presence[types.CategoryCertifications]
	if !hasTerm(presence, "Microsoft 365 Certification (MS-xxx)") {
		t.Errorf("presence %v missing family term", presence)
	}
	if !hasTerm(presence, "MS-900 (Microsoft 365 Fundamentals)") {
		t.Errorf("presence %v missing specific code term", presence)
	}

	for _, term := range []string{"Microsoft 365 Certification (MS-xxx)", "MS-900 (Microsoft 365 Fundamentals)"} {
		hit, ok := findHit(result.Weighted[types.CategoryCertifications], term)
		if !ok {
			t.Fatalf("no weighted hit for %q", term)
		}
		if hit.Label != types.LabelPreferred {
			t.Errorf("%q label = %q, want %q", term, hit.Label, types.LabelPreferred)
		}
	}
}

func TestAnalyzeJobAzureFollowedByAD(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	result := analyzer.AnalyzeJob("Experience with Azure AD and user provisioning is required.")

	presence := result.Presence[types.CategoryTechnicalSkills]
	if !hasTerm(presence, "Azure AD/Entra") {
		t.Errorf("presence %v missing Azure AD/Entra", presence)
	}
	if hasTerm(presence, "Azure") {
		t.Errorf("presence %v should not contain bare Azure when followed by AD", presence)
	}
}

func TestAnalyzeJobMultibyteLowercasing(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	// "İ" (U+0130) lowercases to a shorter byte sequence, so offsets into
	// the original text stop lining up with a pre-lowered copy past that
	// rune. Matches after it must still resolve their windows correctly.

	result := analyzer.AnalyzeJob("Our İstanbul office is hiring. PowerShell")
	if !hasTerm(result.Presence[types.CategoryTechnicalSkills], "PowerShell") {
		t.Errorf("presence %v missing PowerShell after multibyte rune",
			result.Presence[types.CategoryTechnicalSkills])
	}

	result = analyzer.AnalyzeJob("Our İstanbul office is growing fast. PowerShell scripting is required.")
	hit, ok := findHit(result.Weighted[types.CategoryTechnicalSkills], "PowerShell")
	if !ok {
		t.Fatal("no weighted hit for PowerShell")
	}
	if hit.Label != types.LabelRequired {
		t.Errorf("label = %q, want %q", hit.Label, types.LabelRequired)
	}

	result = analyzer.AnalyzeJob("Our İstanbul office: we are an MSP company expanding in the region.")
	if hasTerm(result.Presence[types.CategoryExperience], "MSP") {
		t.Errorf("presence %v should not contain MSP for employer self-description",
			result.Presence[types.CategoryExperience])
	}
}

func TestAnalyzeJobStandaloneAPlus(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "followed by space", text: "A+ certification preferred.", want: true},
		{name: "followed by comma", text: "A+, Network+ and Security+ desirable.", want: true},
		{name: "closing bracket", text: "Entry-level certifications (A+) welcome.", want: true},
		{name: "end of text", text: "Ideally you hold an A+", want: true},
		{name: "followed by slash", text: "Pay grade A+/B under the award.", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := analyzer.AnalyzeJob(tt.text)
			got := hasTerm(result.Presence[types.CategoryCertifications], "CompTIA A+")
			if got != tt.want {
				t.Errorf("CompTIA A+ in presence = %v, want %v for %q", got, tt.want, tt.text)
			}
		})
	}
}

func TestAnalyzeJobGateRules(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	tests := []struct {
		name     string
		text     string
		category types.Category
		term     string
		want     bool
	}{
		{
			name:     "msp as employer identity suppressed",
			text:     "We are an MSP company with offices across Sydney and Melbourne.",
			category: types.CategoryExperience,
			term:     "MSP",
			want:     false,
		},
		{
			name:     "msp as candidate requirement allowed",
			text:     "Previous MSP experience is required for this role.",
			category: types.CategoryExperience,
			term:     "MSP",
			want:     true,
		},
		{
			name:     "support level without support context suppressed",
			text:     "You will join the business as a Level 2 engineer.",
			category: types.CategorySupportLevels,
			term:     "Level 2/Tier 2 Support",
			want:     false,
		},
		{
			name:     "support level with support context allowed",
			text:     "Provide Level 2 support to end users.",
			category: types.CategorySupportLevels,
			term:     "Level 2/Tier 2 Support",
			want:     true,
		},
		{
			name:     "diploma near driving words suppressed",
			text:     "Driver licence and a Diploma of Driving Operations required.",
			category: types.CategoryEducation,
			term:     "Diploma",
			want:     false,
		},
		{
			name:     "diploma in study context allowed",
			text:     "Diploma of IT or similar qualification required.",
			category: types.CategoryEducation,
			term:     "Diploma",
			want:     true,
		},
		{
			name:     "tafe without education context suppressed",
			text:     "Located near the TAFE campus in the city centre.",
			category: types.CategoryEducation,
			term:     "TAFE",
			want:     false,
		},
		{
			name:     "tafe qualification allowed",
			text:     "TAFE qualification in IT is desirable.",
			category: types.CategoryEducation,
			term:     "TAFE",
			want:     true,
		},
		{
			name:     "vendor as company boilerplate suppressed",
			text:     "We are a Cisco partner serving clients nationwide.",
			category: types.CategoryTechnicalSkills,
			term:     "Cisco",
			want:     false,
		},
		{
			name:     "vendor as candidate skill allowed",
			text:     "Cisco networking experience required.",
			category: types.CategoryTechnicalSkills,
			term:     "Cisco",
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := analyzer.AnalyzeJob(tt.text)
			got := hasTerm(result.Presence[tt.category], tt.term)
			if got != tt.want {
				t.Errorf("presence of %q = %v, want %v (presence: %v)",
					tt.term, got, tt.want, result.Presence[tt.category])
			}
		})
	}
}

func TestAnalyzeJobPresenceWeightedConsistency(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	text := "Requirements:\n- Windows 10/11 support experience\n- Active Directory and Group Policy\n- ITIL Foundation desirable\nCustomer service focus. Free parking on-site."

	result := analyzer.AnalyzeJob(text)

	for _, cat := range types.Categories() {
		if len(result.Presence[cat]) != len(result.Weighted[cat]) {
			t.Errorf("category %q: presence has %d terms, weighted has %d",
				cat, len(result.Presence[cat]), len(result.Weighted[cat]))
		}
		for _, hit := range result.Weighted[cat] {
			if !hasTerm(result.Presence[cat], hit.Term) {
				t.Errorf("category %q: weighted term %q missing from presence", cat, hit.Term)
			}
			if hit.Score <= 0 || hit.Score > 1.0 {
				t.Errorf("category %q term %q: score %v out of range", cat, hit.Term, hit.Score)
			}
		}
	}
}
