package sink

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xaenox/email-triage/internal/models"
)

// JSONSink writes the log as a JSON array of records, 2-space indented.
// HTML escaping is disabled so non-ASCII and special characters survive
// literally.
type JSONSink struct {
	path string
}

func NewJSONSink(path string) *JSONSink {
	return &JSONSink{path: path}
}

func (s *JSONSink) Write(log []models.ProcessedEmail) (err error) {
	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("error creating json file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing json file: %w", cerr)
		}
	}()

	if log == nil {
		log = []models.ProcessedEmail{}
	}

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(log); err != nil {
		return fmt.Errorf("error encoding json: %w", err)
	}
	return nil
}
