package docqa

import "strings"

const answerInstruction = `Answer the question using only the provided context.
If the answer is not in the context, reply "Not found in document".
Do not add any explanations, citations, or additional information.
Provide only the direct answer.`

const emptyContext = "No relevant context found in the document."

// BuildPrompt composes the single generation prompt for one question: the
// fixed instruction preamble, the retrieved chunks as context, then the
// question itself.
func BuildPrompt(question string, chunks []ScoredChunk) string {
	contexts := make([]string, 0, len(chunks))
	for _, sc := range chunks {
		if sc.Chunk.Content == "" {
			continue
		}
		contexts = append(contexts, sc.Chunk.Content)
	}

	contextText := emptyContext
	if len(contexts) > 0 {
		contextText = strings.Join(contexts, "\n\n")
	}

	var b strings.Builder
	b.WriteString(answerInstruction)
	b.WriteString("\n\nContext:\n")
	b.WriteString(contextText)
	b.WriteString("\n\nQuestion:\n")
	b.WriteString(question)
	b.WriteString("\n\nAnswer:")
	return b.String()
}
