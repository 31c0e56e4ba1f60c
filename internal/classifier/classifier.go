package classifier

import (
	"strings"

	"github.com/xaenox/email-triage/internal/models"
)

type Classifier interface {
	Classify(text string) models.Category
}

// rule pairs a category with the terms that route an email into it.
type rule struct {
	category models.Category
	terms    []string
}

type RuleClassifier struct {
	rules []rule
}

func NewRuleClassifier() *RuleClassifier {
	return &RuleClassifier{
		rules: []rule{
			{
				category: models.CategoryProductSupport,
				terms: []string{
					"bug", "error", "not working", "broken", "crash",
					"issue", "problem", "feature", "how to",
				},
			},
			{
				category: models.CategoryBilling,
				terms: []string{
					"bill", "payment", "charge", "invoice", "refund",
					"subscription", "pricing", "cost",
				},
			},
		},
	}
}

// Classify returns the category of the first rule whose term set hits the
// lowercased text, falling back to General Inquiry. Rules are evaluated in
// fixed priority order and a later rule is never consulted once an earlier
// one matches. Matching is substring containment, not whole-word: "tissue"
// hits the "issue" term. That overmatch is kept on purpose for
// compatibility with the results downstream consumers already rely on.
func (c *RuleClassifier) Classify(text string) models.Category {
	lower := strings.ToLower(text)
	for _, r := range c.rules {
		for _, term := range r.terms {
			if strings.Contains(lower, term) {
				return r.category
			}
		}
	}
	return models.CategoryGeneralInquiry
}
