package lychee

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/litchilabs/lychee/internal/pipeline"
	"github.com/litchilabs/lychee/internal/runtime"
	"github.com/litchilabs/lychee/pkg/domain"
	"github.com/litchilabs/lychee/pkg/ports"
	"github.com/litchilabs/lychee/pkg/template"
)

// Version is the published engine version.
const Version = "1.0.0"

// Engine is the high-level entry point for the Lychee library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime   *runtime.Engine
	renderer  ports.Renderer
	generator ports.TextGenerator
	logger    *slog.Logger
	hooks     domain.LifecycleHooks
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithGenerator injects the language-model collaborator. Required.
func WithGenerator(g ports.TextGenerator) Option {
	return func(e *Engine) {
		e.generator = g
	}
}

// WithTemplates injects a custom template renderer, bypassing the embedded
// default prompt set.
func WithTemplates(r ports.Renderer) Option {
	return func(e *Engine) {
		e.renderer = r
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks around pipeline stages.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// New initializes a new Lychee Engine. A text generator must be provided;
// the template set defaults to the embedded prompts.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.generator == nil {
		return nil, fmt.Errorf("a text generator is required (use WithGenerator)")
	}
	if eng.renderer == nil {
		eng.renderer = template.Default()
	}
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	stages := pipeline.New(eng.renderer, eng.generator)
	eng.runtime = runtime.NewEngine(stages,
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(eng.hooks),
	)
	return eng, nil
}

// ProcessInitial runs a raw user prompt through normalization and the
// clarification decision, returning either clarifying questions or the
// synthesized answer along with the state the client must echo back.
func (e *Engine) ProcessInitial(ctx context.Context, userPrompt string) (*domain.Exchange, error) {
	return e.runtime.ProcessInitial(ctx, userPrompt)
}

// ProcessClarification resumes a conversation waiting on clarifying answers.
// The supplied state is validated before any model call is made.
func (e *Engine) ProcessClarification(ctx context.Context, state *domain.ConversationState, answers []string) (*domain.Exchange, error) {
	return e.runtime.ProcessClarification(ctx, state, answers)
}
