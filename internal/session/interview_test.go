package session

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type fakeGenerator struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeGenerator) Provider() string { return "fake" }

func (f *fakeGenerator) Model() string { return "fake-model" }

func TestGenerateQuestionsParsesNumberedList(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{response: "1. What is a goroutine?\n2. Explain channels\n3. What is select?"}

	questions := GenerateQuestions(context.Background(), gen, time.Second, nil, "Go")

	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d: %v", len(questions), questions)
	}
	if questions[0] != "What is a goroutine?" {
		t.Fatalf("unexpected first question: %q", questions[0])
	}

	if len(gen.prompts) != 1 {
		t.Fatalf("expected 1 generator call, got %d", len(gen.prompts))
	}
	if !strings.Contains(gen.prompts[0], "Go") {
		t.Fatalf("expected tech stack in prompt, got %q", gen.prompts[0])
	}
	if !strings.Contains(gen.prompts[0], "numbered list") {
		t.Fatalf("expected list instruction in prompt, got %q", gen.prompts[0])
	}
}

func TestGenerateQuestionsFallsBackOnError(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{err: errors.New("model unavailable")}

	questions := GenerateQuestions(context.Background(), gen, time.Second, nil, "Go")

	if len(questions) != 1 || questions[0] != FallbackQuestion {
		t.Fatalf("expected the fallback question, got %v", questions)
	}
}

func TestGenerateQuestionsFallsBackOnEmptyResponse(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{response: "\n\n"}

	questions := GenerateQuestions(context.Background(), gen, time.Second, nil, "Go")

	if len(questions) != 1 || questions[0] != FallbackQuestion {
		t.Fatalf("expected the fallback question, got %v", questions)
	}
}

func TestGenerateQuestionsNilGenerator(t *testing.T) {
	t.Parallel()

	questions := GenerateQuestions(context.Background(), nil, time.Second, nil, "Go")

	if len(questions) != 1 || questions[0] != FallbackQuestion {
		t.Fatalf("expected the fallback question, got %v", questions)
	}
}

func TestSubmitAnswerPairing(t *testing.T) {
	t.Parallel()

	s := New()
	BeginInterview(s, []string{"q0", "q1", "q2"})

	if s.Phase != Interviewing {
		t.Fatalf("expected interviewing phase, got %s", s.Phase)
	}

	// After the first answer the controller surfaces the question at
	// index 1, the second question.
	resp := SubmitAnswer(s, "a0")
	if resp.Kind != AnswerNext || resp.Question != "q1" {
		t.Fatalf("expected next question q1, got %+v", resp)
	}

	resp = SubmitAnswer(s, "a1")
	if resp.Kind != AnswerNext || resp.Question != "q2" {
		t.Fatalf("expected next question q2, got %+v", resp)
	}

	resp = SubmitAnswer(s, "a2")
	if resp.Kind != AnswerComplete {
		t.Fatalf("expected completion after third answer, got %+v", resp)
	}
	if s.Phase != Done {
		t.Fatalf("expected done phase, got %s", s.Phase)
	}

	answers := s.Answers()
	if len(answers) != 3 || answers[2] != "a2" {
		t.Fatalf("unexpected answer log: %v", answers)
	}
}

func TestSubmitAnswerExit(t *testing.T) {
	t.Parallel()

	for _, cmd := range []string{"exit", "Quit", "STOP", " exit "} {
		s := New()
		BeginInterview(s, []string{"q0", "q1"})
		SubmitAnswer(s, "a0")

		resp := SubmitAnswer(s, cmd)
		if resp.Kind != AnswerExit {
			t.Fatalf("command %q: expected exit, got %+v", cmd, resp)
		}
		if s.Phase != Done {
			t.Fatalf("command %q: expected done phase, got %s", cmd, s.Phase)
		}
		if len(s.Answers()) != 1 {
			t.Fatalf("command %q: exit must not be recorded as an answer, got %v", cmd, s.Answers())
		}
	}
}

func TestBeginInterviewCopiesQuestions(t *testing.T) {
	t.Parallel()

	source := []string{"q0"}
	s := New()
	BeginInterview(s, source)

	source[0] = "mutated"
	if s.Questions()[0] != "q0" {
		t.Fatal("expected question set to be immutable after creation")
	}
}
