// Package scoring implements deterministic, rule-based suitability scoring
// for entry-level IT support listings. No ML: every point a job gains or
// loses traces back to a named signal, so a score is always explainable.
package scoring

import (
	"fmt"
	"regexp"
	"strings"
)

// Classification buckets.
const (
	ClassApply   = "APPLY"
	ClassStretch = "STRETCH"
	ClassIgnore  = "IGNORE"
)

// Result is the scoring outcome for one listing.
type Result struct {
	Score          int      `json:"score"`
	Classification string   `json:"classification"`
	MatchedSignals []string `json:"matched_signals"`
	ExcludeReason  string   `json:"exclude_reason,omitempty"`
}

type excludeRule struct {
	re     *regexp.Regexp
	reason string
}

type signalRule struct {
	re     *regexp.Regexp
	points int
	label  string
}

func mustExclude(expr, reason string) excludeRule {
	return excludeRule{re: regexp.MustCompile(`(?i)` + expr), reason: reason}
}

func mustSignal(expr string, points int, label string) signalRule {
	return signalRule{re: regexp.MustCompile(`(?i)` + expr), points: points, label: label}
}

// Hard excludes force IGNORE with score 0 regardless of anything else.
var hardExcludes = []excludeRule{
	mustExclude(`\bsenior\b`, "Senior role"),
	mustExclude(`\blead\b`, "Lead role"),
	mustExclude(`\bmanager\b`, "Manager role"),
	mustExclude(`\bdirector\b`, "Director role"),
	mustExclude(`\bprincipal\b`, "Principal role"),
	mustExclude(`\barchitect\b`, "Architect role"),
	mustExclude(`\bhead of\b`, "Head of role"),
	mustExclude(`\b5\+?\s*years?\b`, "5+ years experience"),
	mustExclude(`\b6\+?\s*years?\b`, "6+ years experience"),
	mustExclude(`\b7\+?\s*years?\b`, "7+ years experience"),
	mustExclude(`\b8\+?\s*years?\b`, "8+ years experience"),
	mustExclude(`\b10\+?\s*years?\b`, "10+ years experience"),
}

var positiveSignals = []signalRule{
	// Entry-level indicators
	mustSignal(`\bentry[- ]?level\b`, 2, "Entry level"),
	mustSignal(`\bjunior\b`, 2, "Junior"),
	mustSignal(`\bgraduate\b`, 2, "Graduate"),
	mustSignal(`\btrainee\b`, 2, "Trainee"),
	mustSignal(`\btraineeship\b`, 2, "Traineeship"),
	mustSignal(`\bl1\b`, 2, "L1"),
	mustSignal(`\blevel\s*1\b`, 2, "Level 1"),
	mustSignal(`\btier\s*1\b`, 2, "Tier 1"),

	// Support role titles
	mustSignal(`\bhelp\s*desk\b`, 1, "Help desk"),
	mustSignal(`\bservice\s*desk\b`, 1, "Service desk"),
	mustSignal(`\bit support\b`, 1, "IT support"),
	mustSignal(`\bdesktop support\b`, 1, "Desktop support"),
	mustSignal(`\btechnical support\b`, 1, "Technical support"),
	mustSignal(`\bsupport technician\b`, 1, "Support technician"),
	mustSignal(`\bsupport analyst\b`, 1, "Support analyst"),
	mustSignal(`\bict support\b`, 1, "ICT support"),
	mustSignal(`\bend user support\b`, 1, "End user support"),

	// Beginner-friendly skills
	mustSignal(`\bwindows\s*(10|11)?\b`, 1, "Windows"),
	mustSignal(`\bmicrosoft\s*365\b`, 1, "Microsoft 365"),
	mustSignal(`\boffice\s*365\b`, 1, "Office 365"),
	mustSignal(`\bactive\s*directory\b`, 1, "Active Directory"),
	mustSignal(`\bticketing\b`, 1, "Ticketing"),
	mustSignal(`\bservicenow\b`, 1, "ServiceNow"),
	mustSignal(`\bjira\b`, 1, "Jira"),
	mustSignal(`\bfreshdesk\b`, 1, "Freshdesk"),
	mustSignal(`\bzendesk\b`, 1, "Zendesk"),

	// Training and growth signals
	mustSignal(`\btraining provided\b`, 1, "Training provided"),
	mustSignal(`\bwill train\b`, 1, "Will train"),
	mustSignal(`\bno experience\s*(required|necessary|needed)?\b`, 2, "No experience required"),
	mustSignal(`\bcareer\s*start\b`, 1, "Career start"),
	mustSignal(`\bkick\s*start\b`, 1, "Kick start"),
}

var negativeSignals = []signalRule{
	// Seniority indicators
	mustSignal(`\b3\+?\s*years?\b`, -1, "3+ years experience"),
	mustSignal(`\b4\+?\s*years?\b`, -2, "4+ years experience"),
	mustSignal(`\blevel\s*2\b`, -1, "Level 2"),
	mustSignal(`\bl2\b`, -1, "L2"),
	mustSignal(`\btier\s*2\b`, -1, "Tier 2"),
	mustSignal(`\blevel\s*3\b`, -2, "Level 3"),
	mustSignal(`\bl3\b`, -2, "L3"),

	// Complex and specialist roles
	mustSignal(`\bsysadmin\b`, -1, "Sysadmin"),
	mustSignal(`\bsystem\s*admin`, -1, "System admin"),
	mustSignal(`\bnetwork\s*engineer\b`, -1, "Network engineer"),
	mustSignal(`\bdevops\b`, -2, "DevOps"),
	mustSignal(`\bcloud\s*engineer\b`, -1, "Cloud engineer"),
	mustSignal(`\bsecurity\s*engineer\b`, -1, "Security engineer"),
	mustSignal(`\bcybersecurity\b`, -1, "Cybersecurity"),

	// MSP and contractor churn signals
	mustSignal(`\bmanaged\s*service\s*provider\b`, -1, "MSP"),
	mustSignal(`\bmsp\b`, -1, "MSP"),
}

// ScoreJob scores a listing from its title and description. Description is
// optional but improves accuracy. The score starts at a neutral 5, moves by
// matched signals, and is clamped to 0-10:
// APPLY >= 6, STRETCH 4-5, IGNORE <= 3.
func ScoreJob(title, description string) Result {
	text := strings.ToLower(title + " " + description)

	for _, rule := range hardExcludes {
		if rule.re.MatchString(text) {
			return Result{
				Score:          0,
				Classification: ClassIgnore,
				MatchedSignals: []string{"excluded: " + rule.reason},
				ExcludeReason:  rule.reason,
			}
		}
	}

	score := 5
	signals := make([]string, 0, 8)

	for _, rule := range positiveSignals {
		if rule.re.MatchString(text) {
			score += rule.points
			signals = append(signals, fmt.Sprintf("+%d %s", rule.points, rule.label))
		}
	}
	for _, rule := range negativeSignals {
		if rule.re.MatchString(text) {
			score += rule.points
			signals = append(signals, fmt.Sprintf("%d %s", rule.points, rule.label))
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}

	return Result{
		Score:          score,
		Classification: classify(score),
		MatchedSignals: signals,
	}
}

func classify(score int) string {
	switch {
	case score >= 6:
		return ClassApply
	case score >= 4:
		return ClassStretch
	default:
		return ClassIgnore
	}
}
