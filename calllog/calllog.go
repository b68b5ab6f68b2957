// Package calllog provides an append-only journal of contract calls.
// Each executed call becomes one JSONL record carrying the call's
// attributes and its emitted instructions, so a run can be audited or
// replayed later.
package calllog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mintgate-xyz/go-mintgate/wire"
)

// Message is one emitted instruction: its kind name and its encoded
// body, kept decodable for replay.
type Message struct {
	Kind string          `json:"kind"`
	Body json.RawMessage `json:"body,omitempty"`
}

// Record is one journaled call.
type Record struct {
	ID         string            `json:"id"`
	Time       time.Time         `json:"time"`
	Method     string            `json:"method"`
	Sender     string            `json:"sender"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Messages   []Message         `json:"messages,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// NewRecord builds a record for one call. Failed calls carry the error
// and no messages; successful calls carry the instruction batch in
// emission order.
func NewRecord(method, sender string, attrs map[string]string, msgs []wire.Msg, callErr error) (Record, error) {
	rec := Record{
		ID:         uuid.New().String(),
		Time:       time.Now().UTC(),
		Method:     method,
		Sender:     sender,
		Attributes: attrs,
	}
	if callErr != nil {
		rec.Error = callErr.Error()
		return rec, nil
	}
	for _, msg := range msgs {
		body, err := json.Marshal(msg)
		if err != nil {
			return Record{}, fmt.Errorf("encode %s: %w", msg.MsgKind(), err)
		}
		rec.Messages = append(rec.Messages, Message{Kind: msg.MsgKind(), Body: body})
	}
	return rec, nil
}

// Journal appends records to a writer, one JSON object per line.
type Journal struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer
}

// NewJournal creates a journal over an existing writer.
func NewJournal(w io.Writer) *Journal {
	return &Journal{w: w}
}

// Open opens (creating if needed) an append-mode journal file.
func Open(path string) (*Journal, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return &Journal{w: f, closer: f}, nil
}

// Append writes one record.
func (j *Journal) Append(rec Record) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if _, err := j.w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}

// Close closes the underlying file, if the journal owns one.
func (j *Journal) Close() error {
	if j.closer == nil {
		return nil
	}
	return j.closer.Close()
}

// ReadAll parses every record from a JSONL reader, in file order.
func ReadAll(r io.Reader) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Bytes()
		if len(text) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(text, &rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	return records, nil
}

// ReadFile parses a journal file.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	defer f.Close()
	return ReadAll(f)
}
