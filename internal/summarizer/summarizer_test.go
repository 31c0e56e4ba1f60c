package summarizer

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/xaenox/email-triage/internal/models"
)

func TestSummarize_FirstSentence(t *testing.T) {
	summary := Summarize("My payment failed. I tried twice.", "sarah@company.com", models.CategoryBilling)

	assert.Equal(t, "Customer sarah@company.com needs help with billing: My payment failed...", summary)
}

func TestSummarize_NoPeriodUsesWholeText(t *testing.T) {
	summary := Summarize("Where is my invoice", "bob@x.com", models.CategoryBilling)

	assert.Equal(t, "Customer bob@x.com needs help with billing: Where is my invoice...", summary)
}

func TestSummarize_TruncatesAt100Chars(t *testing.T) {
	long := strings.Repeat("abcde ", 40) // 240 chars, no period

	summary := Summarize(long, "a@x.com", models.CategoryGeneralInquiry)

	prefix := "Customer a@x.com needs help with general inquiry: "
	assert.True(t, strings.HasPrefix(summary, prefix))
	assert.True(t, strings.HasSuffix(summary, "..."))

	sentence := strings.TrimSuffix(strings.TrimPrefix(summary, prefix), "...")
	assert.Len(t, sentence, 100)
	assert.Equal(t, long[:100], sentence)
}

func TestSummarize_TruncatesOnRuneBoundary(t *testing.T) {
	// The 100th character is multi-byte; a byte cut would split it and
	// leave invalid UTF-8
	long := strings.Repeat("a", 99) + "éclair soufflé commander"

	summary := Summarize(long, "chef@x.com", models.CategoryGeneralInquiry)

	assert.True(t, utf8.ValidString(summary))

	prefix := "Customer chef@x.com needs help with general inquiry: "
	sentence := strings.TrimSuffix(strings.TrimPrefix(summary, prefix), "...")
	assert.Equal(t, strings.Repeat("a", 99)+"é", sentence)
	assert.Equal(t, 100, utf8.RuneCountInString(sentence))
}

func TestSummarize_CategoryLowercased(t *testing.T) {
	summary := Summarize("App crashes on startup.", "dev@x.com", models.CategoryProductSupport)

	assert.Contains(t, summary, "needs help with product support:")
	assert.NotContains(t, summary, "Product Support:")
}
