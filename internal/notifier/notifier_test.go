package notifier

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xaenox/email-triage/internal/models"
)

func TestConsoleNotifier_RendersAlert(t *testing.T) {
	var buf bytes.Buffer
	n := NewConsoleNotifierTo(&buf)

	err := n.Notify(models.ProcessedEmail{
		Sender:   "a@x.com",
		Category: models.CategoryProductSupport,
		Summary:  "Customer a@x.com needs help with product support: Login not working...",
		Channel:  "#product-support",
	})

	assert.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "#product-support")
	assert.Contains(t, out, "From: a@x.com")
	assert.Contains(t, out, "needs help with product support")
}

func TestFormatAlert_IncludesAllFields(t *testing.T) {
	alert := FormatAlert(models.ProcessedEmail{
		Sender:   "b@x.com",
		Category: models.CategoryBilling,
		Summary:  "Customer b@x.com needs help with billing: Refund request...",
		Channel:  "#billing",
	})

	assert.Contains(t, alert, "New Billing Email")
	assert.Contains(t, alert, "From: b@x.com")
	assert.Contains(t, alert, "Summary: Customer b@x.com")
	assert.Contains(t, alert, "Channel: #billing")
}
