package calllog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"
)

// WriteCSV exports records as CSV for spreadsheet review. Attributes
// and message bodies are flattened; use the JSONL journal itself for
// replay.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	header := []string{"id", "time", "method", "sender", "messages", "error"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, rec := range records {
		kinds := make([]string, len(rec.Messages))
		for i, m := range rec.Messages {
			kinds[i] = m.Kind
		}
		row := []string{
			rec.ID,
			rec.Time.Format(time.RFC3339),
			rec.Method,
			rec.Sender,
			strings.Join(kinds, ";"),
			rec.Error,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write record %s: %w", rec.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
