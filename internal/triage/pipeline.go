package triage

import (
	"fmt"
	"time"

	"github.com/xaenox/email-triage/internal/classifier"
	"github.com/xaenox/email-triage/internal/keywords"
	"github.com/xaenox/email-triage/internal/models"
	"github.com/xaenox/email-triage/internal/notifier"
	"github.com/xaenox/email-triage/internal/summarizer"
	"go.uber.org/zap"
)

// Pipeline processes emails one at a time and owns the append-only log of
// results for the run. It is not safe for concurrent use; a future
// parallel version must serialize appends to keep log order equal to
// submission order, which analytics and both sinks depend on.
type Pipeline struct {
	classifier classifier.Classifier
	notifier   notifier.Notifier
	logger     *zap.Logger
	now        func() time.Time
	log        []models.ProcessedEmail
}

func New(c classifier.Classifier, n notifier.Notifier, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		classifier: c,
		notifier:   n,
		logger:     logger,
		now:        time.Now,
	}
}

// Process triages one email: classify, summarize, extract keywords, stamp
// a timestamp, derive the alert channel, append the record to the log and
// forward it to the notifier. Notifier failures are logged but do not fail
// the email; a malformed input fails before anything is recorded.
func (p *Pipeline) Process(email models.RawEmail) (models.ProcessedEmail, error) {
	if err := validate(email); err != nil {
		return models.ProcessedEmail{}, err
	}

	// Subject and body together are the unit of analysis.
	fullContent := email.Subject + " " + email.Content

	category := p.classifier.Classify(fullContent)

	processed := models.ProcessedEmail{
		Timestamp: p.now().Format(time.RFC3339Nano),
		Sender:    email.Sender,
		Subject:   email.Subject,
		Category:  category,
		Summary:   summarizer.Summarize(fullContent, email.Sender, category),
		Keywords:  keywords.Extract(fullContent),
		Channel:   category.Channel(),
	}

	p.log = append(p.log, processed)

	if err := p.notifier.Notify(processed); err != nil {
		p.logger.Error("Failed to send notification",
			zap.Error(err),
			zap.String("sender", processed.Sender),
			zap.String("channel", processed.Channel))
	}

	return processed, nil
}

// Log returns a snapshot copy of the triage log in processing order.
// Keyword slices are copied too, so mutating the snapshot cannot reach
// the owned log.
func (p *Pipeline) Log() []models.ProcessedEmail {
	snapshot := make([]models.ProcessedEmail, len(p.log))
	for i, email := range p.log {
		email.Keywords = append([]string(nil), email.Keywords...)
		snapshot[i] = email
	}
	return snapshot
}

func validate(email models.RawEmail) error {
	if email.Sender == "" {
		return fmt.Errorf("malformed email: missing sender")
	}
	if email.Subject == "" {
		return fmt.Errorf("malformed email: missing subject")
	}
	if email.Content == "" {
		return fmt.Errorf("malformed email: missing content")
	}
	return nil
}
