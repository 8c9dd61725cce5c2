package session

import (
	"regexp"
	"strings"
)

// listMarkerRe strips a single leading list marker: digits followed by '.'
// or ')', or a bare '-' or '*', plus any following whitespace.
var listMarkerRe = regexp.MustCompile(`^(\d+[.)]|-|\*)\s*`)

// ParseQuestions converts a model's raw multi-line response into an ordered
// list of question strings. The parser is deliberately permissive: it trusts
// the generator's approximate numbered-list structure and neither deduplicates
// nor validates lines. Callers must substitute a fallback when the result is
// empty.
func ParseQuestions(raw string) []string {
	var questions []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = listMarkerRe.ReplaceAllString(line, "")
		if line != "" {
			questions = append(questions, line)
		}
	}
	return questions
}
