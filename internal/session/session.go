package session

import (
	"encoding/json"
	"os"

	"github.com/google/uuid"
)

// Phase is the single session lifecycle state. Done is terminal: no field or
// answer collection happens past it.
type Phase int

const (
	// Collecting means candidate fields are still being gathered.
	Collecting Phase = iota
	// Interviewing means technical questions were issued and answers are
	// being recorded.
	Interviewing
	// Done means the conversation ended, either normally or by an exit
	// command.
	Done
)

func (p Phase) String() string {
	switch p {
	case Collecting:
		return "collecting"
	case Interviewing:
		return "interviewing"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Roles for transcript entries.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Entry is a single transcript message. Insertion order is the canonical
// chat order.
type Entry struct {
	Role string `json:"role"`
	Text string `json:"content"`
}

// Session is the explicit per-candidate context object. All conversation
// state lives here; there is no ambient process-wide state. Access is
// strictly sequential within a session, so no locking is needed.
type Session struct {
	ID     string
	Record *Record
	Phase  Phase

	transcript []Entry
	questions  []string
	answers    []string
}

// New creates a fresh session with the default field registry.
func New() *Session {
	return &Session{
		ID:     uuid.NewString(),
		Record: NewRecord(),
		Phase:  Collecting,
	}
}

// Reset discards all session state atomically and assigns a new identifier.
func (s *Session) Reset() {
	*s = *New()
}

// Append adds an entry to the transcript.
func (s *Session) Append(role, text string) {
	s.transcript = append(s.transcript, Entry{Role: role, Text: text})
}

// Transcript returns the ordered chat history.
func (s *Session) Transcript() []Entry {
	return s.transcript
}

// Questions returns the question set issued during the interview, nil before
// the interview started.
func (s *Session) Questions() []string {
	return s.questions
}

// Answers returns the answers recorded so far, in the order received.
func (s *Session) Answers() []string {
	return s.answers
}

// FieldValue pairs a collected field with its value for summary rendering.
type FieldValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// QA pairs a question with the answer given for it.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Summary is the end-of-interview view: collected fields in registry order
// and question/answer pairs zipped by position.
type Summary struct {
	SessionID string       `json:"session_id"`
	Fields    []FieldValue `json:"fields"`
	QA        []QA         `json:"questions_and_answers"`
}

// Summarize builds the summary view. Unanswered questions are omitted from
// the pairing; unset fields are omitted from the field listing.
func (s *Session) Summarize() Summary {
	summary := Summary{SessionID: s.ID}

	for _, field := range s.Record.Fields() {
		if value, ok := s.Record.Get(field); ok {
			summary.Fields = append(summary.Fields, FieldValue{Name: field, Value: value})
		}
	}

	pairs := len(s.answers)
	if len(s.questions) < pairs {
		pairs = len(s.questions)
	}
	for i := 0; i < pairs; i++ {
		summary.QA = append(summary.QA, QA{Question: s.questions[i], Answer: s.answers[i]})
	}

	return summary
}

type transcriptDump struct {
	SessionID string  `json:"session_id"`
	Entries   []Entry `json:"entries"`
}

// DumpTranscript writes the transcript to the given file as indented JSON.
func (s *Session) DumpTranscript(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(transcriptDump{SessionID: s.ID, Entries: s.transcript})
}

// DumpTranscriptToTmpFile writes the transcript to a temporary file and
// returns its name.
func (s *Session) DumpTranscriptToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "transcript_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(transcriptDump{SessionID: s.ID, Entries: s.transcript}); err != nil {
		return "", err
	}
	return file.Name(), nil
}
