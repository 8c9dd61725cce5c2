package ai

import "context"

// Generator produces free-form text from a single prompt. Failures are
// reported as errors, never folded into the returned text, so callers can
// degrade without mistaking an error message for model output.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Provider() string
	Model() string
}
