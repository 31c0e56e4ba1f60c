package sink

import "github.com/xaenox/email-triage/internal/models"

// Sink serializes a triage log to some destination. Writers overwrite
// whatever is already at their target path.
type Sink interface {
	Write(log []models.ProcessedEmail) error
}
