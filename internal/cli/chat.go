// Package cli implements the interactive chat front end: a terminal loop
// that refines a prompt, collects clarifying answers, and renders the
// structured plan as markdown.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"github.com/litchilabs/lychee"
	"github.com/litchilabs/lychee/pkg/domain"
)

// Chat drives one conversation from the terminal.
type Chat struct {
	Engine *lychee.Engine
	Input  io.Reader
	Output io.Writer
}

// Run reads a prompt, runs the pipeline, asks clarifying questions one at a
// time if needed, and prints the structured answer.
func (c *Chat) Run(ctx context.Context) error {
	in := bufio.NewScanner(c.Input)

	fmt.Fprint(c.Output, "Enter your prompt: ")
	if !in.Scan() {
		return in.Err()
	}
	prompt := strings.TrimSpace(in.Text())
	if prompt == "" {
		return fmt.Errorf("empty prompt")
	}

	fmt.Fprintln(c.Output, "Improving your prompt...")
	res, err := c.Engine.ProcessInitial(ctx, prompt)
	if err != nil {
		return err
	}

	if res.Normalization != nil {
		fmt.Fprintf(c.Output, "\nImproved prompt:\n%s\n", res.Normalization.NormalizedText)
		if res.Normalization.CorrectionsNote != "" {
			fmt.Fprintf(c.Output, "\nCorrections: %s\n", res.Normalization.CorrectionsNote)
		}
	}

	if res.Clarification != nil && res.Clarification.Required {
		answers := make([]string, 0, len(res.Clarification.Questions))
		fmt.Fprintln(c.Output, "\nA few questions before we continue:")
		for i, q := range res.Clarification.Questions {
			fmt.Fprintf(c.Output, "%d. %s\n> ", i+1, q)
			if !in.Scan() {
				return in.Err()
			}
			answers = append(answers, strings.TrimSpace(in.Text()))
		}

		fmt.Fprintln(c.Output, "Generating your structured answer...")
		res, err = c.Engine.ProcessClarification(ctx, res.State, answers)
		if err != nil {
			return err
		}
	}

	if res.Answer == nil {
		return fmt.Errorf("conversation ended without an answer")
	}
	return c.renderAnswer(res.Answer)
}

// renderAnswer prints the structured answer, as styled markdown when stdout
// is a terminal and as plain markdown otherwise.
func (c *Chat) renderAnswer(answer *domain.StructuredAnswer) error {
	md := answerMarkdown(answer)

	if f, ok := c.Output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
		if err == nil {
			if styled, err := r.Render(md); err == nil {
				fmt.Fprint(c.Output, styled)
				return nil
			}
		}
	}
	fmt.Fprintln(c.Output, md)
	return nil
}

func answerMarkdown(answer *domain.StructuredAnswer) string {
	var b strings.Builder
	b.WriteString("# Your thinking plan\n\n")
	if answer.Goal != "" {
		b.WriteString("## Goal\n\n")
		b.WriteString(answer.Goal)
		b.WriteString("\n\n")
	}
	if len(answer.ThinkingSteps) > 0 {
		b.WriteString("## Thinking steps\n\n")
		for i, step := range answer.ThinkingSteps {
			fmt.Fprintf(&b, "%d. %s\n", i+1, step)
		}
		b.WriteString("\n")
	}
	if len(answer.SentenceStarters) > 0 {
		b.WriteString("## Sentence starters\n\n")
		for _, starter := range answer.SentenceStarters {
			fmt.Fprintf(&b, "- %s\n", starter)
		}
	}
	return b.String()
}
