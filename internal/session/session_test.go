package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestNewSessionHasUniqueID(t *testing.T) {
	t.Parallel()

	a := New()
	b := New()

	if a.ID == "" || b.ID == "" {
		t.Fatal("expected non-empty session identifiers")
	}
	if a.ID == b.ID {
		t.Fatal("expected unique session identifiers")
	}
}

func TestSummarizeEarlyExitPairsByPosition(t *testing.T) {
	t.Parallel()

	s := New()
	SubmitField(s.Record, "John Smith")
	BeginInterview(s, []string{"q0", "q1", "q2"})
	SubmitAnswer(s, "a0")
	SubmitAnswer(s, "exit")

	summary := s.Summarize()
	if len(summary.QA) != 1 {
		t.Fatalf("expected 1 pair after early exit, got %d", len(summary.QA))
	}
	if summary.QA[0].Question != "q0" || summary.QA[0].Answer != "a0" {
		t.Fatalf("unexpected pair: %+v", summary.QA[0])
	}
	if len(summary.Fields) != 1 || summary.Fields[0].Name != FieldFullName {
		t.Fatalf("expected only collected fields in summary, got %+v", summary.Fields)
	}
}

func TestDumpTranscript(t *testing.T) {
	t.Parallel()

	s := New()
	s.Append(RoleAssistant, "hello")
	s.Append(RoleUser, "hi")

	path := filepath.Join(t.TempDir(), "transcript.json")
	if err := s.DumpTranscript(path); err != nil {
		t.Fatalf("dump failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading dump: %v", err)
	}

	var dump struct {
		SessionID string  `json:"session_id"`
		Entries   []Entry `json:"entries"`
	}
	if err := json.Unmarshal(data, &dump); err != nil {
		t.Fatalf("parsing dump: %v", err)
	}

	if dump.SessionID != s.ID {
		t.Fatalf("expected session id %q, got %q", s.ID, dump.SessionID)
	}
	if len(dump.Entries) != 2 || dump.Entries[1].Text != "hi" {
		t.Fatalf("unexpected entries: %+v", dump.Entries)
	}
}

func TestDumpTranscriptToTmpFile(t *testing.T) {
	t.Parallel()

	s := New()
	s.Append(RoleAssistant, "hello")

	name, err := s.DumpTranscriptToTmpFile()
	if err != nil {
		t.Fatalf("dump failed: %v", err)
	}
	defer os.Remove(name)

	if _, err := os.Stat(name); err != nil {
		t.Fatalf("expected dump file to exist: %v", err)
	}
}
