package pdfctrl_test

import (
	"testing"

	"docqa/src/infrastructure/pdfctrl"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "collapses whitespace", in: "a  b\n\nc\td", want: "a b c d"},
		{name: "drops nul bytes", in: "a\x00b", want: "a b"},
		{name: "drops replacement chars", in: "a�b", want: "a b"},
		{name: "trims edges", in: "  hello world  ", want: "hello world"},
		{name: "empty", in: "", want: ""},
		{name: "only noise", in: " \x00 � ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pdfctrl.CleanText(tt.in); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractTextRejectsCorruptPDF(t *testing.T) {
	extractor := pdfctrl.NewExtractor()

	for _, data := range [][]byte{
		nil,
		[]byte("this is not a pdf"),
		[]byte("%PDF-1.7 truncated"),
	} {
		if _, err := extractor.ExtractText(data); err == nil {
			t.Errorf("ExtractText(%q) expected error", data)
		}
	}
}
