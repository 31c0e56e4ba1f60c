package summarizer

import (
	"fmt"
	"strings"

	"github.com/xaenox/email-triage/internal/models"
)

const maxSentenceLength = 100

// Summarize builds the one-line synopsis shown in alerts and reports:
// "Customer {sender} needs help with {category}: {first sentence}...".
// The first sentence is whatever precedes the first "." (the whole text
// if there is none), cut at 100 characters. The cut is a plain character
// cut, not word-boundary aware.
func Summarize(text, sender string, category models.Category) string {
	firstSentence, _, _ := strings.Cut(text, ".")
	if runes := []rune(firstSentence); len(runes) > maxSentenceLength {
		firstSentence = string(runes[:maxSentenceLength])
	}
	return fmt.Sprintf("Customer %s needs help with %s: %s...",
		sender, strings.ToLower(string(category)), firstSentence)
}
