// Package mcp exposes the Lychee engine as an MCP server, so agent hosts
// can refine prompts as a tool call. State crosses the tool boundary as a
// JSON blob the host must echo back, keeping the server stateless.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/litchilabs/lychee"
	"github.com/litchilabs/lychee/pkg/domain"
	"github.com/litchilabs/lychee/pkg/ports"
)

// ExchangeResult aligns with the HTTP envelope so both adapters speak the
// same shape.
type ExchangeResult struct {
	State         *domain.ConversationState     `json:"state"`
	Normalization *domain.NormalizationResult   `json:"improved_prompt,omitempty"`
	Clarification *domain.ClarificationDecision `json:"clarification,omitempty"`
	Answer        *domain.StructuredAnswer      `json:"final_answer,omitempty"`
	Message       string                        `json:"message"`
}

// Server wraps the Lychee engine and exposes it over MCP.
type Server struct {
	engine    ports.StatelessEngine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance.
func NewServer(engine ports.StatelessEngine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("lychee-mcp", lychee.Version),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	refineTool := mcp.NewTool("refine_prompt",
		mcp.WithDescription("Normalize a raw prompt and either return clarifying questions or a structured thinking plan."),
		mcp.WithString("prompt", mcp.Required(), mcp.Description("The raw user prompt, possibly ungrammatical")),
		mcp.WithOutputSchema[ExchangeResult](),
	)
	s.mcpServer.AddTool(refineTool, mcp.NewStructuredToolHandler(s.handleRefine))

	answerTool := mcp.NewTool("answer_questions",
		mcp.WithDescription("Resume a conversation that is awaiting clarification by supplying the answers."),
		mcp.WithString("state", mcp.Required(), mcp.Description("JSON conversation state returned by refine_prompt")),
		mcp.WithString("answers", mcp.Required(), mcp.Description("JSON array of answers, one per question, in order")),
		mcp.WithOutputSchema[ExchangeResult](),
	)
	s.mcpServer.AddTool(answerTool, mcp.NewStructuredToolHandler(s.handleAnswers))
}

func (s *Server) handleRefine(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (ExchangeResult, error) {
	prompt, _ := args["prompt"].(string)
	if prompt == "" {
		return ExchangeResult{}, fmt.Errorf("prompt is required")
	}

	res, err := s.engine.ProcessInitial(ctx, prompt)
	if err != nil {
		return ExchangeResult{}, err
	}
	return fromExchange(res), nil
}

func (s *Server) handleAnswers(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (ExchangeResult, error) {
	stateJSON, _ := args["state"].(string)
	answersJSON, _ := args["answers"].(string)

	var state domain.ConversationState
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return ExchangeResult{}, fmt.Errorf("state is not valid JSON: %w", err)
	}
	var answers []string
	if err := json.Unmarshal([]byte(answersJSON), &answers); err != nil {
		return ExchangeResult{}, fmt.Errorf("answers is not a JSON string array: %w", err)
	}

	res, err := s.engine.ProcessClarification(ctx, &state, answers)
	if err != nil {
		return ExchangeResult{}, err
	}
	return fromExchange(res), nil
}

func fromExchange(res *domain.Exchange) ExchangeResult {
	return ExchangeResult{
		State:         res.State,
		Normalization: res.Normalization,
		Clarification: res.Clarification,
		Answer:        res.Answer,
		Message:       res.Message,
	}
}
