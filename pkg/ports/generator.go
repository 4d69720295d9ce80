package ports

import "context"

// TextGenerator is the opaque model-call collaborator. The engine issues at
// most one Generate call per pipeline stage, sequentially; implementations
// must be safe for concurrent invocation across requests. Failures propagate
// to the caller unmodified; the core performs no retry or backoff.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a plain function to the TextGenerator interface.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
