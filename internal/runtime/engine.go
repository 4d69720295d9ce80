// Package runtime is the authoritative conversation state machine. It owns
// the legal transitions between stages and validates every client-supplied
// state before letting a pipeline stage run.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/litchilabs/lychee/internal/logging"
	"github.com/litchilabs/lychee/internal/pipeline"
	"github.com/litchilabs/lychee/pkg/domain"
)

// Client-visible status lines, mirrored by the HTTP envelope.
const (
	msgAwaitingAnswers = "Your prompt has been improved. Please answer the clarifying questions to proceed."
	msgInitialComplete = "Your prompt has been processed and the structured answer is ready."
	msgClarifyComplete = "Your answers have been processed. Here is your structured answer."
)

// Engine executes the conversation flow. It holds no session state of its
// own: both Process methods are pure functions from (incoming state, input)
// to (outgoing state, typed result), so one Engine serves arbitrarily many
// concurrent requests as long as the generator collaborator allows it.
type Engine struct {
	stages *pipeline.Stages
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// EngineOption configures the engine.
type EngineOption func(*Engine)

// WithLogger sets a structured logger for transition events.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability callbacks around each stage.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// NewEngine creates an engine around the given stage set.
func NewEngine(stages *pipeline.Stages, opts ...EngineOption) *Engine {
	e := &Engine{
		stages: stages,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ProcessInitial handles the first edge of the state machine: a raw prompt
// with no prior state. It normalizes the prompt, decides on clarification,
// and either returns questions (awaiting_clarification) or synthesizes the
// answer immediately (complete).
func (e *Engine) ProcessInitial(ctx context.Context, userPrompt string) (*domain.Exchange, error) {
	var norm domain.NormalizationResult
	err := e.observe(ctx, domain.StageNormalize, func() error {
		var err error
		norm, err = e.stages.Normalize(ctx, userPrompt)
		return err
	})
	if err != nil {
		return nil, err
	}

	var decision domain.ClarificationDecision
	err = e.observe(ctx, domain.StageDecideClarification, func() error {
		var err error
		decision, err = e.stages.DecideClarification(ctx, norm.NormalizedText)
		return err
	})
	if err != nil {
		return nil, err
	}

	// A yes verdict with no parseable questions completes instead: an
	// awaiting state with nothing to answer could never be resumed.
	if decision.Required && len(decision.Questions) > 0 {
		e.logger.Info("clarification requested", "questions", len(decision.Questions))
		return &domain.Exchange{
			State:         domain.AwaitingClarification(norm.NormalizedText, decision.Questions),
			Normalization: &norm,
			Clarification: &decision,
			Message:       msgAwaitingAnswers,
		}, nil
	}

	answer, err := e.synthesize(ctx, norm.NormalizedText)
	if err != nil {
		return nil, err
	}
	e.logger.Info("conversation complete", "clarified", false)
	return &domain.Exchange{
		State:         domain.Completed(norm.NormalizedText, nil, nil),
		Normalization: &norm,
		Answer:        answer,
		Message:       msgInitialComplete,
	}, nil
}

// ProcessClarification handles the second edge: answers for a state in
// awaiting_clarification. The state is untrusted client input and is fully
// validated before any model call is issued.
func (e *Engine) ProcessClarification(ctx context.Context, state *domain.ConversationState, answers []string) (*domain.Exchange, error) {
	if state == nil || state.Stage != domain.StageAwaitingClarification {
		stage := domain.Stage("none")
		if state != nil {
			stage = state.Stage
		}
		return nil, fmt.Errorf("%w: stage %q cannot accept clarification answers", domain.ErrInvalidState, stage)
	}
	if state.CorePrompt == "" {
		return nil, domain.ErrMissingCorePrompt
	}
	if len(answers) != len(state.ClarifyingQuestions) {
		return nil, &domain.AnswerCountMismatchError{Want: len(state.ClarifyingQuestions), Got: len(answers)}
	}

	var merged string
	err := e.observe(ctx, domain.StageMergeClarification, func() error {
		var err error
		merged, err = e.stages.MergeClarification(ctx, state.CorePrompt, state.ClarifyingQuestions, answers)
		return err
	})
	if err != nil {
		return nil, err
	}

	answer, err := e.synthesize(ctx, merged)
	if err != nil {
		return nil, err
	}
	e.logger.Info("conversation complete", "clarified", true)
	return &domain.Exchange{
		State:   domain.Completed(merged, state.ClarifyingQuestions, answers),
		Answer:  answer,
		Message: msgClarifyComplete,
	}, nil
}

func (e *Engine) synthesize(ctx context.Context, finalPrompt string) (*domain.StructuredAnswer, error) {
	var answer domain.StructuredAnswer
	err := e.observe(ctx, domain.StageSynthesize, func() error {
		var err error
		answer, err = e.stages.Synthesize(ctx, finalPrompt)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

// observe wraps a stage call with lifecycle hooks, timing and logging.
func (e *Engine) observe(ctx context.Context, stage domain.StageName, fn func() error) error {
	start := time.Now()
	if e.hooks.OnStageStart != nil {
		e.hooks.OnStageStart(ctx, &domain.StageEvent{Timestamp: start, Stage: stage})
	}

	err := fn()

	elapsed := time.Since(start)
	if e.hooks.OnStageEnd != nil {
		e.hooks.OnStageEnd(ctx, &domain.StageEvent{
			Timestamp: time.Now(),
			Stage:     stage,
			Duration:  elapsed,
			Err:       err,
		})
	}
	if err != nil {
		e.logger.Error("stage failed", "stage", string(stage), "duration", elapsed, "error", err)
	} else {
		e.logger.Debug("stage done", "stage", string(stage), "duration", elapsed)
	}
	return err
}
