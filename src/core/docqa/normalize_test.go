package docqa_test

import (
	"testing"

	"docqa/src/core/docqa"
)

func TestNormalizeNotFoundPhrases(t *testing.T) {
	n := docqa.NewNormalizer(nil)

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty", raw: "", want: ""},
		{name: "whitespace only", raw: "  \n\t ", want: ""},
		{name: "not found", raw: "Not found", want: ""},
		{name: "n/a", raw: "N/A", want: ""},
		{name: "none", raw: "none", want: ""},
		{name: "not available", raw: "Not Available", want: ""},
		{name: "not found in document", raw: "Not found in document.", want: ""},
		{name: "padded sentinel", raw: "  not found  ", want: ""},
		{name: "real answer passes through", raw: "Thirty days.", want: "Thirty days."},
		{name: "real answer trimmed", raw: "  The grace period is 30 days.  ", want: "The grace period is 30 days."},
		{name: "answer prefix stripped", raw: "Answer: 30 days", want: "30 days"},
		{name: "answer prefix with sentinel", raw: "Answer: not found", want: ""},
		{name: "contains but not equals sentinel", raw: "The clause was not found in section 2.", want: "The clause was not found in section 2."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Normalize(tt.raw); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeCustomPhrases(t *testing.T) {
	n := docqa.NewNormalizer([]string{"unknown"})

	if got := n.Normalize("Unknown"); got != "" {
		t.Errorf("Normalize(%q) = %q, want sentinel", "Unknown", got)
	}
	// Default phrases no longer apply with a custom allow-list.
	if got := n.Normalize("not found"); got != "not found" {
		t.Errorf("Normalize(%q) = %q, want pass-through", "not found", got)
	}
}
