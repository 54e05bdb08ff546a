package quiz

import (
	"strings"

	"github.com/suhedayldrm/pond/internal/models"
)

// IsCorrect grades a typed translation against the entry's canonical English
// answer. Matching is case-insensitive and ignores leading/trailing
// whitespace, but is otherwise exact: no partial credit, no accent folding,
// no alternate answers. Known limitation: valid synonyms and near-misses are
// rejected.
func IsCorrect(userText string, entry models.VocabularyEntry) bool {
	return normalizeAnswer(userText) == normalizeAnswer(entry.English)
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
