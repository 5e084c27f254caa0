package scoring

import (
	"strings"
	"testing"

	"jobsift/internal/types"
)

func TestScoreJobHardExcludes(t *testing.T) {
	tests := []struct {
		name       string
		title      string
		wantReason string
	}{
		{
			name:       "senior in title",
			title:      "Senior IT Support Engineer",
			wantReason: "Senior role",
		},
		{
			name:       "lead role",
			title:      "Service Desk Lead",
			wantReason: "Lead role",
		},
		{
			name:       "manager role",
			title:      "IT Manager",
			wantReason: "Manager role",
		},
		{
			name:       "five years experience",
			title:      "IT Support, 5+ years required",
			wantReason: "5+ years experience",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScoreJob(tt.title, "")
			if result.Score != 0 {
				t.Errorf("score = %d, want 0", result.Score)
			}
			if result.Classification != ClassIgnore {
				t.Errorf("classification = %q, want %q", result.Classification, ClassIgnore)
			}
			if result.ExcludeReason != tt.wantReason {
				t.Errorf("exclude reason = %q, want %q", result.ExcludeReason, tt.wantReason)
			}
		})
	}
}

func TestScoreJobExcludeAppliesEvenWithPositives(t *testing.T) {
	// Hard excludes win no matter how strong the positive signals are.
	result := ScoreJob("Senior Help Desk", "entry level junior graduate trainee no experience required")
	if result.Score != 0 || result.Classification != ClassIgnore {
		t.Errorf("got score %d classification %q, want 0 IGNORE", result.Score, result.Classification)
	}
}

func TestScoreJobClassification(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		desc      string
		wantClass string
	}{
		{
			name:      "entry level help desk scores apply",
			title:     "Entry Level Help Desk Analyst",
			desc:      "Level 1 support. Training provided. Windows 10 environment.",
			wantClass: ClassApply,
		},
		{
			name:      "neutral description scores stretch",
			title:     "IT Officer",
			desc:      "General duties supporting the business.",
			wantClass: ClassStretch,
		},
		{
			name:      "specialist role scores ignore",
			title:     "DevOps Engineer",
			desc:      "Cloud engineer duties, cybersecurity exposure, L3 escalation point.",
			wantClass: ClassIgnore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScoreJob(tt.title, tt.desc)
			if result.Classification != tt.wantClass {
				t.Errorf("classification = %q (score %d, signals %v), want %q",
					result.Classification, result.Score, result.MatchedSignals, tt.wantClass)
			}
		})
	}
}

func TestScoreJobNeutralBaseline(t *testing.T) {
	result := ScoreJob("Administrative role", "")
	if result.Score != 5 {
		t.Errorf("score = %d, want neutral 5 with no matched signals", result.Score)
	}
	if len(result.MatchedSignals) != 0 {
		t.Errorf("signals = %v, want none", result.MatchedSignals)
	}
}

func TestScoreJobClampedToRange(t *testing.T) {
	strong := ScoreJob("Entry Level Junior Graduate Trainee Help Desk",
		"Level 1 Tier 1 service desk, IT support, desktop support, technical support, "+
			"Windows 10, Microsoft 365, Office 365, Active Directory, ticketing with ServiceNow, "+
			"training provided, no experience necessary")
	if strong.Score != 10 {
		t.Errorf("score = %d, want clamp at 10", strong.Score)
	}

	weak := ScoreJob("Sysadmin role",
		"System admin duties. Network engineer work, DevOps, cloud engineer, security engineer, "+
			"cybersecurity, L2 and Level 3 escalations at a managed service provider MSP. 3+ years and 4+ years preferred.")
	if weak.Score != 0 {
		t.Errorf("score = %d, want clamp at 0 (signals %v)", weak.Score, weak.MatchedSignals)
	}
}

func TestScoreJobSignalLabels(t *testing.T) {
	result := ScoreJob("Junior IT Support", "Level 2 escalations exist.")

	var hasPositive, hasNegative bool
	for _, sig := range result.MatchedSignals {
		if strings.HasPrefix(sig, "+2 Junior") {
			hasPositive = true
		}
		if strings.HasPrefix(sig, "-1 Level 2") {
			hasNegative = true
		}
	}
	if !hasPositive {
		t.Errorf("signals %v missing +2 Junior", result.MatchedSignals)
	}
	if !hasNegative {
		t.Errorf("signals %v missing -1 Level 2", result.MatchedSignals)
	}
}

func TestScoreJobs(t *testing.T) {
	jobs := []types.JobRecord{
		{ID: 1, Title: "Entry Level Help Desk", Description: "Level 1 support, training provided."},
		{ID: 2, Title: "Senior Systems Engineer", Description: ""},
		{ID: 3, Title: "IT Officer", Description: "General support duties."},
	}

	scored := ScoreJobs(jobs)
	if len(scored) != 3 {
		t.Fatalf("got %d results, want 3", len(scored))
	}
	if scored[0].Result.Classification != ClassApply {
		t.Errorf("job 1 classification = %q, want APPLY", scored[0].Result.Classification)
	}
	if scored[1].Result.ExcludeReason != "Senior role" {
		t.Errorf("job 2 exclude reason = %q, want Senior role", scored[1].Result.ExcludeReason)
	}

	summary := Summarize(scored)
	if summary.Total != 3 {
		t.Errorf("summary total = %d, want 3", summary.Total)
	}
	if summary.Apply != 1 || summary.Ignore != 1 || summary.Stretch != 1 {
		t.Errorf("summary = %+v, want 1 apply / 1 stretch / 1 ignore", summary)
	}
}
