package ports

import (
	"context"

	"github.com/litchilabs/lychee/pkg/domain"
)

// StatelessEngine is the contract adapters (HTTP, MCP, CLI) consume. The
// engine holds no session table: state travels with every call and the
// returned state must be echoed back by the client on the next one.
type StatelessEngine interface {
	// ProcessInitial runs normalization and the clarification decision on a
	// raw prompt, then either synthesizes an answer or returns questions.
	ProcessInitial(ctx context.Context, userPrompt string) (*domain.Exchange, error)

	// ProcessClarification merges the client's answers into the core prompt
	// and synthesizes the final answer. Only a state in
	// domain.StageAwaitingClarification is accepted.
	ProcessClarification(ctx context.Context, state *domain.ConversationState, answers []string) (*domain.Exchange, error)
}
