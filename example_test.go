package lychee_test

import (
	"context"
	"fmt"

	"github.com/litchilabs/lychee"
	"github.com/litchilabs/lychee/pkg/ports"
)

// scripted is a generator that replays canned model responses in order.
func scripted(responses ...string) ports.TextGenerator {
	i := 0
	return ports.GeneratorFunc(func(context.Context, string) (string, error) {
		resp := responses[i]
		i++
		return resp, nil
	})
}

// Example shows the full round trip for a prompt that needs no clarification.
func Example() {
	engine, err := lychee.New(lychee.WithGenerator(scripted(
		"IMPROVED_PROMPT:\nI want to learn programming.\nCORRECTIONS:\nFixed grammar.",
		"NEEDS_CLARIFICATION: no",
		"CLEAR_GOAL:\nLearn programming fundamentals.\nTHINKING_STEPS:\n1. Pick a language\n2. Build a small project\nSENTENCE_STARTERS:\n- I will begin by",
	)))
	if err != nil {
		panic(err)
	}

	res, err := engine.ProcessInitial(context.Background(), "i want lern programing")
	if err != nil {
		panic(err)
	}

	fmt.Println(res.State.Stage)
	fmt.Println(res.Answer.Goal)
	// Output:
	// complete
	// Learn programming fundamentals.
}

// Example_clarification shows the two-call flow when the engine asks
// questions before synthesizing.
func Example_clarification() {
	engine, err := lychee.New(lychee.WithGenerator(scripted(
		"IMPROVED_PROMPT:\nI want to learn programming.",
		"NEEDS_CLARIFICATION: yes\nQUESTIONS:\n1. Which language?",
		"UPDATED_PROMPT:\nI want to learn Go.",
		"CLEAR_GOAL:\nLearn Go.\nTHINKING_STEPS:\n1. Install the toolchain\nSENTENCE_STARTERS:\n- First I will",
	)))
	if err != nil {
		panic(err)
	}

	first, err := engine.ProcessInitial(context.Background(), "i want lern programing")
	if err != nil {
		panic(err)
	}
	fmt.Println(first.State.Stage)
	fmt.Println(first.State.ClarifyingQuestions[0])

	second, err := engine.ProcessClarification(context.Background(), first.State, []string{"Go"})
	if err != nil {
		panic(err)
	}
	fmt.Println(second.State.Stage)
	fmt.Println(second.State.CorePrompt)
	// Output:
	// awaiting_clarification
	// Which language?
	// complete
	// I want to learn Go.
}
