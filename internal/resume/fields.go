package resume

import (
	"regexp"
	"strings"
	"unicode"
)

// nameLinePrefix is how many leading non-blank lines are inspected when
// looking for the candidate's name. Names live at the top of a resume.
const nameLinePrefix = 10

var (
	// The label part matches case-insensitively, the captured name itself
	// must be capitalized words.
	nameLabelRe = regexp.MustCompile(`(?i:name\s*[:\-]?\s*)([A-Z][a-z]+(?: [A-Z][a-z]+)+)`)
	emailRe     = regexp.MustCompile(`[\w.-]+@[\w.-]+`)
	phoneRe     = regexp.MustCompile(`\+?\d[\d\s\-()]{8,15}`)
)

// Contact holds the best-effort fields pulled out of resume text. Empty
// fields mean the heuristic found nothing.
type Contact struct {
	Name  string
	Email string
	Phone string
}

// ExtractContact scans the extracted resume text for the candidate's name,
// email and phone number. The scans are independent: email and phone cover
// the whole document, the name search is restricted to the top of it.
func ExtractContact(text string) Contact {
	return Contact{
		Name:  extractName(text),
		Email: emailRe.FindString(text),
		Phone: phoneRe.FindString(text),
	}
}

// extractName inspects only the first few non-blank lines. A line carrying a
// "name" label wins; otherwise any short line of capitalized alphabetic words
// is taken as-is. The second pass is known to false-positive on section
// headers such as "Work Experience".
func extractName(text string) string {
	lines := make([]string, 0, nameLinePrefix)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == nameLinePrefix {
			break
		}
	}

	for _, line := range lines {
		if !strings.Contains(strings.ToLower(line), "name") {
			continue
		}
		if m := nameLabelRe.FindStringSubmatch(line); m != nil {
			return m[1]
		}
	}

	for _, line := range lines {
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		if !isAlphabetic(strings.ReplaceAll(line, " ", "")) {
			continue
		}
		if allWordsCapitalized(words) {
			return line
		}
	}

	return ""
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func allWordsCapitalized(words []string) bool {
	for _, word := range words {
		first := []rune(word)[0]
		if !unicode.IsUpper(first) {
			return false
		}
	}
	return true
}
