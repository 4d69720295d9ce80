// Package pipeline implements the three model-backed stages of the Lychee
// flow plus the clarification merge. Each stage renders a template, issues
// one generator call, and parses the response with that stage's marker set.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/litchilabs/lychee/pkg/domain"
	"github.com/litchilabs/lychee/pkg/extract"
	"github.com/litchilabs/lychee/pkg/ports"
)

// Template names, matching the keys of the template store.
const (
	TemplateMiddleLayer        = "middle_layer"
	TemplateClarificationCheck = "clarification_check"
	TemplateClarification      = "clarification_prompt"
	TemplateFinalAnswer        = "final_answer"
)

// Marker tokens the stages look for in model output.
const (
	markerImproved    = "IMPROVED_PROMPT:"
	markerCorrections = "CORRECTIONS:"
	markerQuestions   = "QUESTIONS:"
	markerUpdated     = "UPDATED_PROMPT:"
	markerGoal        = "CLEAR_GOAL:"
	markerSteps       = "THINKING_STEPS:"
	markerStarters    = "SENTENCE_STARTERS:"
)

// Decision tokens for the clarification check. Matching is case-insensitive
// on the whole marker+value token.
const (
	tokenNeedsClarification = "NEEDS_CLARIFICATION: yes"
	tokenNoClarification    = "NEEDS_CLARIFICATION: no"
)

// fallbackCorrectionsNote is used when a normalization response carries no
// IMPROVED_PROMPT marker at all. Degrading to the whole response plus this
// note is deliberate policy, not an error.
const fallbackCorrectionsNote = "No specific corrections identified, but the prompt was reviewed for clarity."

// Stages bundles the renderer and generator collaborators. A Stages value is
// immutable after construction and safe for concurrent use if the generator is.
type Stages struct {
	renderer  ports.Renderer
	generator ports.TextGenerator
}

// New creates the stage set from its two collaborators.
func New(renderer ports.Renderer, generator ports.TextGenerator) *Stages {
	return &Stages{renderer: renderer, generator: generator}
}

// Normalize rewrites the raw user prompt into clear English.
//
// When the IMPROVED_PROMPT marker is absent entirely, the whole raw response
// becomes the normalized text and the corrections note is a fixed fallback
// sentence.
func (s *Stages) Normalize(ctx context.Context, userPrompt string) (domain.NormalizationResult, error) {
	resp, err := s.call(ctx, TemplateMiddleLayer, map[string]string{"user_prompt": userPrompt})
	if err != nil {
		return domain.NormalizationResult{}, fmt.Errorf("normalize: %w", err)
	}

	known := []string{markerImproved, markerCorrections}
	improved, found := extract.Section(resp, markerImproved, known...)
	if !found {
		return domain.NormalizationResult{
			NormalizedText:  strings.TrimSpace(resp),
			CorrectionsNote: fallbackCorrectionsNote,
		}, nil
	}
	return domain.NormalizationResult{
		NormalizedText:  strings.TrimSpace(improved),
		CorrectionsNote: extract.Prose(resp, markerCorrections, known...),
	}, nil
}

// DecideClarification asks whether the normalized prompt needs clarifying
// questions. When neither decision token is present the stage fails safe
// toward completing: required defaults to false.
func (s *Stages) DecideClarification(ctx context.Context, normalized string) (domain.ClarificationDecision, error) {
	resp, err := s.call(ctx, TemplateClarificationCheck, map[string]string{"improved_prompt": normalized})
	if err != nil {
		return domain.ClarificationDecision{}, fmt.Errorf("decide clarification: %w", err)
	}

	if !extract.HasToken(resp, tokenNeedsClarification) {
		return domain.ClarificationDecision{Required: false}, nil
	}
	return domain.ClarificationDecision{
		Required:  true,
		Questions: extract.Items(resp, markerQuestions, "NEEDS_CLARIFICATION:", markerQuestions),
	}, nil
}

// MergeClarification folds the user's answers back into the core prompt.
// When the model ignores the UPDATED_PROMPT format, the merge degrades to a
// deterministic concatenation so this stage never fails on parse.
func (s *Stages) MergeClarification(ctx context.Context, corePrompt string, questions, answers []string) (string, error) {
	numberedAnswers := extract.NumberedList(answers)
	resp, err := s.call(ctx, TemplateClarification, map[string]string{
		"core_prompt":     corePrompt,
		"questions_asked": extract.NumberedList(questions),
		"user_answers":    numberedAnswers,
	})
	if err != nil {
		return "", fmt.Errorf("merge clarification: %w", err)
	}

	if updated := extract.Prose(resp, markerUpdated, markerUpdated); updated != "" {
		return updated, nil
	}
	return corePrompt + "\n\nAdditional context:\n" + numberedAnswers, nil
}

// Synthesize produces the structured thinking plan for the final prompt.
// Each section extracts independently; a missing marker leaves that field at
// its default without touching the others.
func (s *Stages) Synthesize(ctx context.Context, finalPrompt string) (domain.StructuredAnswer, error) {
	resp, err := s.call(ctx, TemplateFinalAnswer, map[string]string{"final_prompt": finalPrompt})
	if err != nil {
		return domain.StructuredAnswer{}, fmt.Errorf("synthesize: %w", err)
	}

	known := []string{markerGoal, markerSteps, markerStarters}
	return domain.StructuredAnswer{
		Goal:             extract.Prose(resp, markerGoal, known...),
		ThinkingSteps:    extract.Items(resp, markerSteps, known...),
		SentenceStarters: extract.Items(resp, markerStarters, known...),
	}, nil
}

func (s *Stages) call(ctx context.Context, templateName string, fields map[string]string) (string, error) {
	prompt, err := s.renderer.Render(templateName, fields)
	if err != nil {
		return "", err
	}
	return s.generator.Generate(ctx, prompt)
}
