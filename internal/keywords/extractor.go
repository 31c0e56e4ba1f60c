package keywords

import (
	"regexp"
	"strings"
)

// stopWords is a closed set of common English function words and pronouns
// that never count as keywords.
var stopWords = map[string]struct{}{}

func init() {
	list := []string{
		"the", "a", "an", "and", "or", "but", "in", "on", "at", "to",
		"for", "of", "with", "by", "is", "are", "was", "were", "be",
		"been", "have", "has", "had", "will", "would", "could", "should",
		"may", "might", "can", "i", "you", "he", "she", "it", "we",
		"they", "my", "your", "his", "her", "our", "their",
	}
	for _, w := range list {
		stopWords[w] = struct{}{}
	}
}

var wordPattern = regexp.MustCompile(`[a-zA-Z]+`)

// Extract returns the significant words of text in order of appearance.
// Tokens are maximal alphabetic runs, lowercased; anything of length <= 3
// or in the stop-word set is dropped. Duplicates are kept because the
// aggregator counts frequency downstream.
func Extract(text string) []string {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	keywords := make([]string, 0, len(words))
	for _, word := range words {
		if len(word) <= 3 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		keywords = append(keywords, word)
	}
	return keywords
}

// IsStopWord reports whether word is in the stop-word set, case-insensitive.
func IsStopWord(word string) bool {
	_, ok := stopWords[strings.ToLower(word)]
	return ok
}
