package session

import "strings"

// Candidate fields collected during intake, in collection order.
const (
	FieldFullName   = "Full Name"
	FieldEmail      = "Email"
	FieldPhone      = "Phone"
	FieldExperience = "Years of Experience"
	FieldPosition   = "Desired Position"
	FieldLocation   = "Location"
	FieldTechStack  = "Tech Stack"
)

// DefaultFields is the fixed ordered field registry for candidate intake.
var DefaultFields = []string{
	FieldFullName,
	FieldEmail,
	FieldPhone,
	FieldExperience,
	FieldPosition,
	FieldLocation,
	FieldTechStack,
}

// exitCommands end the conversation at any point, compared case-insensitively.
var exitCommands = []string{"exit", "quit", "stop"}

// Record maps candidate fields to collected values. Fields are filled one at
// a time in registry order and never overwritten once set.
type Record struct {
	fields []string
	values map[string]string
}

// NewRecord creates an empty record over the given registry, defaulting to
// DefaultFields when none is given.
func NewRecord(fields ...string) *Record {
	if len(fields) == 0 {
		fields = DefaultFields
	}
	return &Record{
		fields: append([]string(nil), fields...),
		values: make(map[string]string, len(fields)),
	}
}

// NextField returns the first field without a non-empty trimmed value, or ""
// when every field is collected.
func (r *Record) NextField() string {
	for _, field := range r.fields {
		if strings.TrimSpace(r.values[field]) == "" {
			return field
		}
	}
	return ""
}

// Get returns the collected value for a field.
func (r *Record) Get(field string) (string, bool) {
	value, ok := r.values[field]
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}

// Fields returns the registry in collection order.
func (r *Record) Fields() []string {
	return append([]string(nil), r.fields...)
}

// Complete reports whether every field is collected.
func (r *Record) Complete() bool {
	return r.NextField() == ""
}

// IntakeKind discriminates the outcomes of a field submission.
type IntakeKind int

const (
	// IntakeEmpty means the input was blank; the same field must be asked
	// again.
	IntakeEmpty IntakeKind = iota
	// IntakeExit means the candidate asked to leave.
	IntakeExit
	// IntakeNextPrompt means the field was stored and another remains.
	IntakeNextPrompt
	// IntakeComplete means the last field was just filled.
	IntakeComplete
)

// IntakeResponse is the outcome of submitting one intake input.
type IntakeResponse struct {
	Kind IntakeKind
	// Field is the collection target: the field just stored for
	// IntakeNextPrompt/IntakeComplete, or the field still owed for
	// IntakeEmpty.
	Field string
}

// SubmitField feeds one raw user input into the intake walk over the record.
// Non-empty, non-exit input is stored trimmed into the first unset field with
// no format validation. That is deliberate: the original flow accepts any
// non-blank value for any field.
func SubmitField(record *Record, raw string) IntakeResponse {
	input := strings.TrimSpace(raw)

	if isExitCommand(input) {
		return IntakeResponse{Kind: IntakeExit}
	}

	target := record.NextField()
	if target == "" {
		// The walk already finished; there is no field left to store into.
		return IntakeResponse{Kind: IntakeComplete}
	}

	if input == "" {
		return IntakeResponse{Kind: IntakeEmpty, Field: target}
	}

	record.values[target] = input

	if next := record.NextField(); next != "" {
		return IntakeResponse{Kind: IntakeNextPrompt, Field: next}
	}

	return IntakeResponse{Kind: IntakeComplete, Field: target}
}

func isExitCommand(input string) bool {
	input = strings.ToLower(strings.TrimSpace(input))
	for _, cmd := range exitCommands {
		if input == cmd {
			return true
		}
	}
	return false
}
