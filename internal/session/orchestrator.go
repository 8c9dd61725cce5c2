package session

import (
	"context"
	"fmt"
	"time"

	"talentscout/internal/ai"
	"talentscout/internal/logger"

	"go.uber.org/zap"
)

// Assistant-side messages. Wording is part of the conversational contract:
// tests and the summary flow key off these.
const (
	msgGreeting          = "Hi there! I'm your Hiring Assistant. Let's get started.\nPlease provide your %s:"
	msgEmptyInput        = "Input cannot be empty. Please provide your %s:"
	msgNextField         = "Please provide your %s:"
	msgIntakeGoodbye     = "Thank you! We'll contact you with the next steps. Goodbye!"
	msgGenerating        = "Thanks! Generating technical questions based on your Tech Stack..."
	msgQuestionsIntro    = "Here are your technical questions:"
	msgAnswerHint        = "You can now answer these questions one by one, or type 'exit' to finish."
	msgNextQuestion      = "Next question:\n%s"
	msgInterviewGoodbye  = "Thank you for your time! We'll contact you with the next steps."
	msgInterviewComplete = "Great! You have answered all the questions. Thank you!"
	msgIdle              = "Let me know if you want to restart or exit."
)

// Orchestrator routes user inputs to the intake walk or the interview flow
// depending on the session phase, and records every exchanged message in the
// transcript.
type Orchestrator struct {
	session      *Session
	generator    ai.Generator
	queryTimeout time.Duration
	logger       *zap.Logger
}

// NewOrchestrator creates an orchestrator over a fresh session.
func NewOrchestrator(generator ai.Generator, queryTimeout time.Duration, log *zap.Logger) *Orchestrator {
	if log == nil {
		log = zap.NewNop()
	}

	s := New()
	return &Orchestrator{
		session:      s,
		generator:    generator,
		queryTimeout: queryTimeout,
		logger:       log.With(zap.String(logger.FieldSession, s.ID)),
	}
}

// Session exposes the underlying session context.
func (o *Orchestrator) Session() *Session {
	return o.session
}

// Greeting emits the opening assistant message and records it.
func (o *Orchestrator) Greeting() string {
	greeting := fmt.Sprintf(msgGreeting, o.session.Record.NextField())
	o.session.Append(RoleAssistant, greeting)
	return greeting
}

// Reset discards all session state and restarts the conversation with a new
// greeting.
func (o *Orchestrator) Reset() string {
	o.session.Reset()
	o.logger.Info("session reset", zap.String(logger.FieldSession, o.session.ID))
	return o.Greeting()
}

// Handle processes one user input to completion and returns the assistant
// replies in order. Both the input and the replies are appended to the
// transcript.
func (o *Orchestrator) Handle(ctx context.Context, input string) []string {
	o.session.Append(RoleUser, input)

	var replies []string
	switch o.session.Phase {
	case Collecting:
		replies = o.handleIntake(ctx, input)
	case Interviewing:
		replies = o.handleAnswer(input)
	default:
		replies = []string{msgIdle}
	}

	for _, reply := range replies {
		o.session.Append(RoleAssistant, reply)
	}

	return replies
}

func (o *Orchestrator) handleIntake(ctx context.Context, input string) []string {
	resp := SubmitField(o.session.Record, input)

	switch resp.Kind {
	case IntakeEmpty:
		return []string{fmt.Sprintf(msgEmptyInput, resp.Field)}
	case IntakeExit:
		o.session.Phase = Done
		o.logger.Info("candidate exited during intake")
		return []string{msgIntakeGoodbye}
	case IntakeNextPrompt:
		return []string{fmt.Sprintf(msgNextField, resp.Field)}
	default:
		return o.startInterview(ctx)
	}
}

// startInterview bridges intake completion to the question flow. The whole
// question list is pre-announced before the first answer is accepted.
func (o *Orchestrator) startInterview(ctx context.Context) []string {
	techStack, _ := o.session.Record.Get(FieldTechStack)

	o.logger.Info("intake complete, generating questions",
		zap.String("tech_stack", techStack),
	)

	questions := GenerateQuestions(ctx, o.generator, o.queryTimeout, o.logger, techStack)
	BeginInterview(o.session, questions)

	o.logger.Info("interview started", zap.Int("question_count", len(questions)))

	replies := make([]string, 0, len(questions)+3)
	replies = append(replies, msgGenerating, msgQuestionsIntro)
	replies = append(replies, questions...)
	replies = append(replies, msgAnswerHint)
	return replies
}

func (o *Orchestrator) handleAnswer(input string) []string {
	resp := SubmitAnswer(o.session, input)

	switch resp.Kind {
	case AnswerExit:
		o.logger.Info("candidate exited during interview",
			zap.Int("answers_recorded", len(o.session.Answers())),
		)
		return []string{msgInterviewGoodbye}
	case AnswerNext:
		return []string{fmt.Sprintf(msgNextQuestion, resp.Question)}
	default:
		o.logger.Info("interview complete",
			zap.Int("question_count", len(o.session.Questions())),
		)
		return []string{msgInterviewComplete}
	}
}
