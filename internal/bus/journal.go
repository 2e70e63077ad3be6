package bus

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Journal appends bus events to a JSONL file, one record per line. Best
// effort: journaling failures never block or fail the mutation that produced
// the event.
type Journal struct {
	path string
	mu   sync.Mutex
	seq  uint64
}

type journalRecord struct {
	Timestamp string `json:"timestamp"`
	Seq       uint64 `json:"seq"`
	Type      string `json:"type"`
	Payload   any    `json:"payload"`
}

// NewJournal writes to events.jsonl under dir.
func NewJournal(dir string) *Journal {
	return &Journal{path: filepath.Join(dir, "events.jsonl")}
}

// Append records one event. Safe on a nil Journal.
func (j *Journal) Append(eventType string, payload any) {
	if j == nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()

	// The file outlives the process; pick up where the last session stopped
	// so seq stays monotonic across the whole journal.
	if j.seq == 0 {
		j.seq = lastSeq(j.path)
	}
	j.seq++
	rec := journalRecord{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Seq:       j.seq,
		Type:      eventType,
		Payload:   payload,
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return
	}
	_ = os.MkdirAll(filepath.Dir(j.path), 0o755)
	f, err := os.OpenFile(j.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	_, _ = f.Write(append(b, '\n'))
	_ = f.Close()
}

// lastSeq reads the highest sequence number already in the journal file.
// A missing file or garbage lines yield 0.
func lastSeq(path string) uint64 {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		var rec journalRecord
		if json.Unmarshal([]byte(lines[i]), &rec) == nil && rec.Seq > 0 {
			return rec.Seq
		}
	}
	return 0
}
