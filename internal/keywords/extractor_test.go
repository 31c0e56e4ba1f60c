package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_FiltersShortAndStopWords(t *testing.T) {
	keywords := Extract("Login not working I can't log in. Error: invalid credentials.")

	assert.Contains(t, keywords, "login")
	assert.Contains(t, keywords, "credentials")
	// "can" is a stop word, "log" is only three letters
	assert.NotContains(t, keywords, "can")
	assert.NotContains(t, keywords, "log")
	assert.NotContains(t, keywords, "not")
}

func TestExtract_NoShortTokensOrStopWordsEver(t *testing.T) {
	keywords := Extract("The quick brown fox jumps over the lazy dog and it was not at all slow")

	for _, kw := range keywords {
		assert.Greater(t, len(kw), 3, "keyword %q too short", kw)
		assert.False(t, IsStopWord(kw), "keyword %q is a stop word", kw)
	}
}

func TestExtract_LowercasesAndSplitsOnNonLetters(t *testing.T) {
	keywords := Extract("Charged $99 for PREMIUM-plan2024 upgrade")

	assert.Equal(t, []string{"charged", "premium", "plan", "upgrade"}, keywords)
}

func TestExtract_PreservesOrderAndDuplicates(t *testing.T) {
	keywords := Extract("refund please refund my payment refund")

	assert.Equal(t, []string{"refund", "please", "refund", "payment", "refund"}, keywords)
}

func TestExtract_NumericTokensDiscarded(t *testing.T) {
	keywords := Extract("1234 5678 9999")

	assert.Empty(t, keywords)
}

func TestExtract_EmptyInput(t *testing.T) {
	keywords := Extract("")

	assert.NotNil(t, keywords)
	assert.Empty(t, keywords)
}
