package requirements

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercase and trim",
			input: "  IT Support Officer  ",
			want:  "it support officer",
		},
		{
			name:  "collapse internal whitespace",
			input: "Level 1\t\nHelp   Desk",
			want:  "level 1 help desk",
		},
		{
			name:  "fullwidth compatibility forms",
			input: "ＭＳＰ　Ｅｎｇｉｎｅｅｒ",
			want:  "msp engineer",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: " \n\t ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCanonicalizeURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips query string",
			input: "https://example.com/job/123?utm_source=feed&ref=home",
			want:  "https://example.com/job/123",
		},
		{
			name:  "strips fragment",
			input: "https://example.com/job/123#apply",
			want:  "https://example.com/job/123",
		},
		{
			name:  "strips fragment containing query",
			input: "https://example.com/job/123#section?x=1",
			want:  "https://example.com/job/123",
		},
		{
			name:  "plain url unchanged",
			input: "https://example.com/job/123",
			want:  "https://example.com/job/123",
		},
		{
			name:  "empty",
			input: "   ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanonicalizeURL(tt.input); got != tt.want {
				t.Errorf("CanonicalizeURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractSourceID(t *testing.T) {
	tests := []struct {
		name   string
		source string
		url    string
		want   string
	}{
		{
			name:   "seek query parameter",
			source: "seek",
			url:    "https://www.seek.com.au/apply?jobId=81234567&ref=search",
			want:   "81234567",
		},
		{
			name:   "seek path segment",
			source: "Seek",
			url:    "https://www.seek.com.au/job/81234567?type=standard",
			want:   "81234567",
		},
		{
			name:   "query parameter wins over path",
			source: "seek",
			url:    "https://www.seek.com.au/job/111?jobId=222",
			want:   "222",
		},
		{
			name:   "unknown source",
			source: "indeed",
			url:    "https://indeed.example/job/81234567",
			want:   "",
		},
		{
			name:   "seek url without id",
			source: "seek",
			url:    "https://www.seek.com.au/it-support-jobs",
			want:   "",
		},
		{
			name:   "empty url",
			source: "seek",
			url:    "",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractSourceID(tt.source, tt.url); got != tt.want {
				t.Errorf("ExtractSourceID(%q, %q) = %q, want %q", tt.source, tt.url, got, tt.want)
			}
		})
	}
}
