package requirements

import (
	"os"
	"path/filepath"
	"testing"

	"jobsift/internal/types"
)

func TestNewRegistryCompilesAllCategories(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() failed: %v", err)
	}

	counts := registry.TermCounts()
	for _, cat := range types.Categories() {
		if counts[cat] == 0 {
			t.Errorf("category %q has no compiled patterns", cat)
		}
	}
}

func TestSpecificCertTerm(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() failed: %v", err)
	}

	tests := []struct {
		name    string
		matched string
		want    string
	}{
		{
			name:    "mapped code",
			matched: "MS-900",
			want:    "MS-900 (Microsoft 365 Fundamentals)",
		},
		{
			name:    "mapped code lowercase input",
			matched: "az-900",
			want:    "AZ-900 (Azure Fundamentals)",
		},
		{
			name:    "recognized prefix without friendly name",
			matched: "MS-999",
			want:    "MS-999",
		},
		{
			name:    "unrecognized prefix",
			matched: "XX-123",
			want:    "",
		},
		{
			name:    "non-code match",
			matched: "ITIL",
			want:    "",
		},
		{
			name:    "surrounding whitespace",
			matched: " SC-300 ",
			want:    "SC-300 (Identity and Access Administrator)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := registry.SpecificCertTerm(tt.matched); got != tt.want {
				t.Errorf("SpecificCertTerm(%q) = %q, want %q", tt.matched, got, tt.want)
			}
		})
	}
}

func TestNewRegistryFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patterns.yaml")
	content := `technical_skills:
  Kubernetes: '\bKubernetes\b|\bK8s\b'
  Windows: '\bWindows\s*Desktop\b'
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing override file: %v", err)
	}

	registry, err := NewRegistryFromFile(path)
	if err != nil {
		t.Fatalf("NewRegistryFromFile() failed: %v", err)
	}

	analyzer := NewAnalyzer(registry)

	t.Run("new term is matched", func(t *testing.T) {
		result := analyzer.AnalyzeJob("Kubernetes experience required.")
		if !hasTerm(result.Presence[types.CategoryTechnicalSkills], "Kubernetes") {
			t.Errorf("presence %v missing Kubernetes", result.Presence[types.CategoryTechnicalSkills])
		}
	})

	t.Run("replaced expression takes effect", func(t *testing.T) {
		result := analyzer.AnalyzeJob("Windows administration required.")
		if hasTerm(result.Presence[types.CategoryTechnicalSkills], "Windows") {
			t.Errorf("bare Windows should no longer match after override")
		}

		result = analyzer.AnalyzeJob("Windows Desktop administration required.")
		if !hasTerm(result.Presence[types.CategoryTechnicalSkills], "Windows") {
			t.Errorf("overridden expression should match Windows Desktop")
		}
	})
}

func TestNewRegistryFromFileErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "invalid yaml",
			content: "technical_skills: [unclosed",
		},
		{
			name:    "unknown category",
			content: "no_such_category:\n  Foo: '\\bFoo\\b'\n",
		},
		{
			name:    "invalid expression",
			content: "technical_skills:\n  Broken: '[unterminated'\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("writing file: %v", err)
			}
			if _, err := NewRegistryFromFile(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		if _, err := NewRegistryFromFile(filepath.Join(dir, "nope.yaml")); err == nil {
			t.Error("expected error, got nil")
		}
	})
}
