package pipeline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litchilabs/lychee/internal/pipeline"
	"github.com/litchilabs/lychee/pkg/ports"
	"github.com/litchilabs/lychee/pkg/template"
)

// stub replays canned responses and records the prompts it was sent.
type stub struct {
	responses []string
	prompts   []string
}

func (s *stub) Generate(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.responses) == 0 {
		return "", nil
	}
	resp := s.responses[0]
	s.responses = s.responses[1:]
	return resp, nil
}

var _ ports.TextGenerator = (*stub)(nil)

func newStages(t *testing.T, responses ...string) (*pipeline.Stages, *stub) {
	t.Helper()
	gen := &stub{responses: responses}
	return pipeline.New(template.Default(), gen), gen
}

func TestNormalize(t *testing.T) {
	t.Run("Both Markers Present", func(t *testing.T) {
		stages, gen := newStages(t,
			"IMPROVED_PROMPT:\nI want to learn coding.\nCORRECTIONS:\nFixed spelling of learn.")

		res, err := stages.Normalize(context.Background(), "i want lern coding")
		require.NoError(t, err)
		assert.Equal(t, "I want to learn coding.", res.NormalizedText)
		assert.Equal(t, "Fixed spelling of learn.", res.CorrectionsNote)

		require.Len(t, gen.prompts, 1)
		assert.Contains(t, gen.prompts[0], "i want lern coding")
	})

	t.Run("Marker Absent Falls Back To Whole Response", func(t *testing.T) {
		stages, _ := newStages(t, "  Just a rewritten prompt with no markers.  ")

		res, err := stages.Normalize(context.Background(), "x")
		require.NoError(t, err)
		assert.Equal(t, "Just a rewritten prompt with no markers.", res.NormalizedText)
		assert.Equal(t,
			"No specific corrections identified, but the prompt was reviewed for clarity.",
			res.CorrectionsNote)
	})

	t.Run("Corrections Optional", func(t *testing.T) {
		stages, _ := newStages(t, "IMPROVED_PROMPT:\nBetter prompt.")

		res, err := stages.Normalize(context.Background(), "x")
		require.NoError(t, err)
		assert.Equal(t, "Better prompt.", res.NormalizedText)
		assert.Empty(t, res.CorrectionsNote)
	})
}

func TestDecideClarification(t *testing.T) {
	t.Run("Yes With Questions", func(t *testing.T) {
		stages, _ := newStages(t,
			"NEEDS_CLARIFICATION: yes\nQUESTIONS:\n1. What language?\n2. What deadline?")

		dec, err := stages.DecideClarification(context.Background(), "p")
		require.NoError(t, err)
		assert.True(t, dec.Required)
		assert.Equal(t, []string{"What language?", "What deadline?"}, dec.Questions)
	})

	t.Run("No", func(t *testing.T) {
		stages, _ := newStages(t, "NEEDS_CLARIFICATION: no")

		dec, err := stages.DecideClarification(context.Background(), "p")
		require.NoError(t, err)
		assert.False(t, dec.Required)
		assert.Empty(t, dec.Questions)
	})

	t.Run("Marker Absent Defaults To No", func(t *testing.T) {
		stages, _ := newStages(t, "The prompt looks fine to me.")

		dec, err := stages.DecideClarification(context.Background(), "p")
		require.NoError(t, err)
		assert.False(t, dec.Required)
	})

	t.Run("Case Insensitive Decision Token", func(t *testing.T) {
		stages, _ := newStages(t, "Needs_Clarification: YES\nQUESTIONS:\n1. Why?")

		dec, err := stages.DecideClarification(context.Background(), "p")
		require.NoError(t, err)
		assert.True(t, dec.Required)
		assert.Equal(t, []string{"Why?"}, dec.Questions)
	})
}

func TestMergeClarification(t *testing.T) {
	questions := []string{"What language?", "What deadline?"}
	answers := []string{"Python", "two weeks"}

	t.Run("Updated Prompt Marker", func(t *testing.T) {
		stages, gen := newStages(t, "UPDATED_PROMPT:\nLearn Python in two weeks.")

		merged, err := stages.MergeClarification(context.Background(), "Learn coding.", questions, answers)
		require.NoError(t, err)
		assert.Equal(t, "Learn Python in two weeks.", merged)

		// The template gets questions and answers as numbered lists.
		require.Len(t, gen.prompts, 1)
		assert.Contains(t, gen.prompts[0], "1. What language?")
		assert.Contains(t, gen.prompts[0], "2. two weeks")
	})

	t.Run("Marker Absent Falls Back To Concatenation", func(t *testing.T) {
		stages, _ := newStages(t, "I refuse to follow the format.")

		merged, err := stages.MergeClarification(context.Background(), "Learn coding.", questions, answers)
		require.NoError(t, err)
		assert.Equal(t, "Learn coding.\n\nAdditional context:\n1. Python\n2. two weeks", merged)
	})
}

func TestSynthesize(t *testing.T) {
	t.Run("All Sections", func(t *testing.T) {
		stages, _ := newStages(t,
			"CLEAR_GOAL:\nLearn Python basics.\nTHINKING_STEPS:\n1. Install Python\n2. Write a script\nSENTENCE_STARTERS:\n- I will start by\n- My first milestone is")

		ans, err := stages.Synthesize(context.Background(), "p")
		require.NoError(t, err)
		assert.Equal(t, "Learn Python basics.", ans.Goal)
		assert.Equal(t, []string{"Install Python", "Write a script"}, ans.ThinkingSteps)
		assert.Equal(t, []string{"I will start by", "My first milestone is"}, ans.SentenceStarters)
	})

	t.Run("Only Thinking Steps", func(t *testing.T) {
		stages, _ := newStages(t, "THINKING_STEPS:\n1. a\n2. b")

		ans, err := stages.Synthesize(context.Background(), "p")
		require.NoError(t, err)
		assert.Empty(t, ans.Goal)
		assert.Equal(t, []string{"a", "b"}, ans.ThinkingSteps)
		assert.Empty(t, ans.SentenceStarters)
	})

	t.Run("Sections Out Of Order", func(t *testing.T) {
		stages, _ := newStages(t,
			"SENTENCE_STARTERS:\n- s\nCLEAR_GOAL:\nThe goal.\nTHINKING_STEPS:\n1. a")

		ans, err := stages.Synthesize(context.Background(), "p")
		require.NoError(t, err)
		assert.Equal(t, "The goal.", ans.Goal)
		assert.Equal(t, []string{"a"}, ans.ThinkingSteps)
		assert.Equal(t, []string{"s"}, ans.SentenceStarters)
	})
}
