package notifier

import (
	"fmt"
	"io"
	"os"

	"github.com/xaenox/email-triage/internal/models"
)

// Notifier delivers an alert for one processed email. Delivery is
// fire-and-forget: the pipeline logs failures but never retries.
type Notifier interface {
	Notify(email models.ProcessedEmail) error
}

// ConsoleNotifier prints alerts to a writer, simulating a chat-alert API.
type ConsoleNotifier struct {
	out io.Writer
}

func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{out: os.Stdout}
}

func NewConsoleNotifierTo(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out}
}

func (n *ConsoleNotifier) Notify(email models.ProcessedEmail) error {
	_, err := fmt.Fprintf(n.out, "\n📤 ALERT SENT TO %s:\n   %s\n   From: %s\n",
		email.Channel, email.Summary, email.Sender)
	return err
}

// FormatAlert renders the alert body shared by all notifier variants.
func FormatAlert(email models.ProcessedEmail) string {
	return fmt.Sprintf("🚨 New %s Email\nFrom: %s\nSummary: %s\nChannel: %s",
		email.Category, email.Sender, email.Summary, email.Channel)
}
