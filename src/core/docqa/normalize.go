package docqa

import "strings"

// DefaultNotFoundPhrases are the model phrasings mapped to the canonical
// empty-string sentinel. The list is an allow-list and can be overridden
// through Config.NotFoundPhrases.
var DefaultNotFoundPhrases = []string{
	"not found",
	"n/a",
	"none",
	"not available",
	"not found in document",
	"no answer found",
}

// Normalizer maps raw generator output to a stable answer string.
type Normalizer struct {
	notFound map[string]struct{}
}

// NewNormalizer builds a normalizer for the given not-found phrasings. A nil
// or empty list selects DefaultNotFoundPhrases.
func NewNormalizer(phrases []string) *Normalizer {
	if len(phrases) == 0 {
		phrases = DefaultNotFoundPhrases
	}
	notFound := make(map[string]struct{}, len(phrases))
	for _, p := range phrases {
		notFound[strings.ToLower(strings.TrimSpace(p))] = struct{}{}
	}
	return &Normalizer{notFound: notFound}
}

// Normalize trims the raw output, strips a leading "Answer:" echo, and
// replaces any known not-found phrasing with the empty-string sentinel.
func (n *Normalizer) Normalize(raw string) string {
	answer := strings.TrimSpace(raw)
	if strings.HasPrefix(strings.ToLower(answer), "answer:") {
		answer = strings.TrimSpace(answer[len("answer:"):])
	}
	if answer == "" {
		return ""
	}
	lowered := strings.TrimRight(strings.ToLower(answer), ".")
	if _, ok := n.notFound[lowered]; ok {
		return ""
	}
	return answer
}
