package models

import "strings"

// Category is one of the fixed triage buckets every email lands in.
type Category string

const (
	CategoryProductSupport Category = "Product Support"
	CategoryBilling        Category = "Billing"
	CategoryGeneralInquiry Category = "General Inquiry"
)

// Categories lists all triage buckets in their fixed evaluation order.
var Categories = []Category{
	CategoryProductSupport,
	CategoryBilling,
	CategoryGeneralInquiry,
}

// Channel returns the notification channel derived from the category,
// e.g. "Product Support" -> "#product-support".
func (c Category) Channel() string {
	return "#" + strings.ReplaceAll(strings.ToLower(string(c)), " ", "-")
}

// Valid reports whether c is one of the fixed triage buckets.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// RawEmail is an incoming email as submitted to the pipeline.
type RawEmail struct {
	Sender  string `json:"sender"`
	Subject string `json:"subject"`
	Content string `json:"content"`
}

// ProcessedEmail is the triage result for a single email. Records are
// created once by the pipeline and never mutated afterwards.
type ProcessedEmail struct {
	Timestamp string   `json:"timestamp"`
	Sender    string   `json:"sender"`
	Subject   string   `json:"subject"`
	Category  Category `json:"category"`
	Summary   string   `json:"summary"`
	Keywords  []string `json:"keywords"`
	Channel   string   `json:"channel"`
}

// KeywordAnalytics maps each category to its top keywords, ranked by
// descending frequency. Every fixed category is present as a key even
// when no emails matched it.
type KeywordAnalytics map[Category][]string
