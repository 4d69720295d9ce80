package lychee_test

import (
	"context"
	"testing"

	"github.com/litchilabs/lychee"
	"github.com/litchilabs/lychee/pkg/domain"
	"github.com/litchilabs/lychee/pkg/ports"
)

func TestFacade_Integration(t *testing.T) {
	gen := scripted(
		"IMPROVED_PROMPT:\nI want to build a web scraper.\nCORRECTIONS:\nClarified intent.",
		"NEEDS_CLARIFICATION: yes\nQUESTIONS:\n1. Which sites?\n2. How often?",
		"UPDATED_PROMPT:\nI want to build a daily scraper for news sites.",
		"CLEAR_GOAL:\nBuild a daily news scraper.\nTHINKING_STEPS:\n1. Pick an HTTP client\n2. Schedule the job\nSENTENCE_STARTERS:\n- I will start with",
	)

	engine, err := lychee.New(lychee.WithGenerator(gen))
	if err != nil {
		t.Fatalf("Failed to initialize engine: %v", err)
	}

	ctx := context.Background()
	first, err := engine.ProcessInitial(ctx, "i want make scraper")
	if err != nil {
		t.Fatalf("ProcessInitial failed: %v", err)
	}
	if first.State.Stage != domain.StageAwaitingClarification {
		t.Errorf("Expected stage %q, got %q", domain.StageAwaitingClarification, first.State.Stage)
	}
	if len(first.State.ClarifyingQuestions) != 2 {
		t.Fatalf("Expected 2 questions, got %d", len(first.State.ClarifyingQuestions))
	}

	second, err := engine.ProcessClarification(ctx, first.State, []string{"news sites", "daily"})
	if err != nil {
		t.Fatalf("ProcessClarification failed: %v", err)
	}
	if second.State.Stage != domain.StageComplete {
		t.Errorf("Expected stage %q, got %q", domain.StageComplete, second.State.Stage)
	}
	if second.Answer == nil || second.Answer.Goal != "Build a daily news scraper." {
		t.Errorf("Unexpected answer: %+v", second.Answer)
	}
}

func TestFacade_RequiresGenerator(t *testing.T) {
	if _, err := lychee.New(); err == nil {
		t.Fatal("Expected an error when no generator is configured")
	}
}

func TestFacade_CustomTemplates(t *testing.T) {
	// A renderer that ignores the template set entirely still drives the
	// pipeline; the engine only cares about the rendered string.
	renderer := rendererFunc(func(name string, fields map[string]string) (string, error) {
		return "custom:" + name, nil
	})

	var prompts []string
	gen := ports.GeneratorFunc(func(_ context.Context, prompt string) (string, error) {
		prompts = append(prompts, prompt)
		switch len(prompts) {
		case 1:
			return "IMPROVED_PROMPT:\nok", nil
		case 2:
			return "NEEDS_CLARIFICATION: no", nil
		default:
			return "CLEAR_GOAL:\ndone", nil
		}
	})

	engine, err := lychee.New(lychee.WithGenerator(gen), lychee.WithTemplates(renderer))
	if err != nil {
		t.Fatalf("Failed to initialize engine: %v", err)
	}
	if _, err := engine.ProcessInitial(context.Background(), "x"); err != nil {
		t.Fatalf("ProcessInitial failed: %v", err)
	}
	if len(prompts) != 3 || prompts[0] != "custom:middle_layer" {
		t.Errorf("Unexpected rendered prompts: %v", prompts)
	}
}

type rendererFunc func(name string, fields map[string]string) (string, error)

func (f rendererFunc) Render(name string, fields map[string]string) (string, error) {
	return f(name, fields)
}
