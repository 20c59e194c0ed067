package docqa_test

import (
	"strings"
	"testing"

	"docqa/src/core/docqa"
)

func TestBuildPrompt(t *testing.T) {
	chunks := []docqa.ScoredChunk{
		{Chunk: docqa.Chunk{Index: 0, Content: "first passage"}, Score: 0.9},
		{Chunk: docqa.Chunk{Index: 3, Content: "second passage"}, Score: 0.5},
	}

	prompt := docqa.BuildPrompt("What is covered?", chunks)

	for _, want := range []string{
		"using only the provided context",
		"first passage",
		"second passage",
		"What is covered?",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if !strings.HasSuffix(prompt, "Answer:") {
		t.Errorf("prompt should end with the answer cue, got %q", prompt[len(prompt)-20:])
	}
	if strings.Index(prompt, "first passage") > strings.Index(prompt, "second passage") {
		t.Error("context passages out of retrieval order")
	}
}

func TestBuildPromptWithoutContext(t *testing.T) {
	prompt := docqa.BuildPrompt("Anything?", nil)
	if !strings.Contains(prompt, "No relevant context found in the document.") {
		t.Errorf("empty retrieval should produce the no-context placeholder, got %q", prompt)
	}
}
