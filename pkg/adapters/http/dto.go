package http

import "github.com/litchilabs/lychee/pkg/domain"

// ChatRequest is the body of POST /api/v1/chat.
type ChatRequest struct {
	// UserPrompt is the user's original prompt, possibly ungrammatical.
	UserPrompt string `json:"user_prompt"`
}

// ClarifyRequest is the body of POST /api/v1/chat/clarify. The state must be
// the one returned by the previous /chat call, echoed back unchanged.
type ClarifyRequest struct {
	Answers []string                  `json:"answers"`
	State   *domain.ConversationState `json:"state"`
}

// ErrorResponse distinguishes rejected input ("client") from backend faults
// ("server") so callers know whether to re-prompt the user or retry later.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}
