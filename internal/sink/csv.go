package sink

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/xaenox/email-triage/internal/models"
)

var csvHeader = []string{"timestamp", "sender", "subject", "category", "summary", "keywords", "channel"}

// CSVSink writes the log as a header row plus one row per email in
// processing order. The keywords column joins the ordered keyword list
// with ", ", duplicates included.
type CSVSink struct {
	path string
}

func NewCSVSink(path string) *CSVSink {
	return &CSVSink{path: path}
}

func (s *CSVSink) Write(log []models.ProcessedEmail) (err error) {
	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("error creating csv file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing csv file: %w", cerr)
		}
	}()

	w := csv.NewWriter(file)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("error writing csv header: %w", err)
	}

	for _, email := range log {
		row := []string{
			email.Timestamp,
			email.Sender,
			email.Subject,
			string(email.Category),
			email.Summary,
			strings.Join(email.Keywords, ", "),
			email.Channel,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("error writing csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("error flushing csv: %w", err)
	}
	return nil
}
