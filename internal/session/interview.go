package session

import (
	"context"
	"strings"
	"time"

	_ "embed"

	"talentscout/internal/ai"
	"talentscout/internal/utils"

	"go.uber.org/zap"
)

//go:embed question_prompt.md
var questionPromptTemplate string

// FallbackQuestion replaces an empty question set so the interview never
// proceeds with zero questions.
const FallbackQuestion = "Sorry, I couldn't generate questions at this time."

const previewLogLength = 200

func buildQuestionPrompt(techStack string) string {
	template := questionPromptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Generate 3 interview questions for each technology in: {{TECH_STACK}}. Return a numbered list."
	}
	return strings.TrimSpace(strings.ReplaceAll(template, "{{TECH_STACK}}", techStack))
}

// GenerateQuestions asks the generator for technical questions seeded by the
// candidate's tech stack and parses the response. The query runs under a
// bounded timeout. Any failure degrades to the single fallback question; a
// generator error is never surfaced as question text.
func GenerateQuestions(ctx context.Context, generator ai.Generator, timeout time.Duration, logger *zap.Logger, techStack string) []string {
	if logger == nil {
		logger = zap.NewNop()
	}

	var raw string
	if generator == nil {
		logger.Warn("no question generator configured")
	} else {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		var err error
		raw, err = generator.GenerateContent(ctx, buildQuestionPrompt(techStack))
		if err != nil {
			logger.Warn("question generation failed", zap.Error(err))
			raw = ""
		} else {
			logger.Debug("question generation response",
				zap.Int("response_length", len(raw)),
				zap.String("response_preview", utils.TruncateForLog(raw, previewLogLength)),
			)
		}
	}

	questions := ParseQuestions(raw)
	if len(questions) == 0 {
		questions = []string{FallbackQuestion}
	}

	return questions
}

// BeginInterview stores the question set on the session and moves it into
// the interviewing phase. The set is immutable afterwards.
func BeginInterview(s *Session, questions []string) {
	s.questions = append([]string(nil), questions...)
	s.Phase = Interviewing
}

// AnswerKind discriminates the outcomes of an answer submission.
type AnswerKind int

const (
	// AnswerExit means the candidate asked to finish early.
	AnswerExit AnswerKind = iota
	// AnswerNext means another question follows.
	AnswerNext
	// AnswerComplete means every question has been answered.
	AnswerComplete
)

// AnswerResponse is the outcome of submitting one interview answer.
type AnswerResponse struct {
	Kind AnswerKind
	// Question carries the next question for AnswerNext.
	Question string
}

// SubmitAnswer records one answer. The answer log's length is the cursor
// into the question set, so the question surfaced after the n-th answer is
// the one at index n.
func SubmitAnswer(s *Session, raw string) AnswerResponse {
	if isExitCommand(raw) {
		s.Phase = Done
		return AnswerResponse{Kind: AnswerExit}
	}

	s.answers = append(s.answers, raw)

	if idx := len(s.answers); idx < len(s.questions) {
		return AnswerResponse{Kind: AnswerNext, Question: s.questions[idx]}
	}

	s.Phase = Done
	return AnswerResponse{Kind: AnswerComplete}
}
