package domain

// Stage identifies where a conversation is in the refinement flow.
type Stage string

const (
	// StageInitial is a conversation that has not been processed yet.
	StageInitial Stage = "initial"

	// StageAwaitingClarification means the engine asked clarifying questions
	// and is waiting for the client to send the answers back.
	StageAwaitingClarification Stage = "awaiting_clarification"

	// StageComplete is a sink state; a new conversation starts fresh.
	StageComplete Stage = "complete"
)

// ConversationState is the only data whose lifetime spans requests.
// The server holds no session table: the client stores the state and echoes
// it back on every call, so the server must treat it as untrusted input and
// re-validate it before each transition.
//
// Field presence is keyed by Stage:
//   - CorePrompt is required for every stage except a never-processed initial.
//   - ClarifyingQuestions is set while awaiting clarification, and kept after
//     the transition to complete via that path.
//   - UserAnswers is set only after completing via the clarification path and
//     always has the same length as ClarifyingQuestions.
type ConversationState struct {
	Stage               Stage    `json:"stage"`
	CorePrompt          string   `json:"core_prompt,omitempty"`
	ClarifyingQuestions []string `json:"clarifying_questions,omitempty"`
	UserAnswers         []string `json:"user_answers,omitempty"`
}

// NewState creates a fresh, never-processed conversation.
func NewState() *ConversationState {
	return &ConversationState{Stage: StageInitial}
}

// AwaitingClarification builds the state handed to the client together with
// the clarifying questions.
func AwaitingClarification(corePrompt string, questions []string) *ConversationState {
	return &ConversationState{
		Stage:               StageAwaitingClarification,
		CorePrompt:          corePrompt,
		ClarifyingQuestions: questions,
	}
}

// Completed builds the sink state reached after synthesis. Questions and
// answers are nil when the conversation completed without clarification.
func Completed(corePrompt string, questions, answers []string) *ConversationState {
	return &ConversationState{
		Stage:               StageComplete,
		CorePrompt:          corePrompt,
		ClarifyingQuestions: questions,
		UserAnswers:         answers,
	}
}

// Validate checks the per-stage field invariants on a client-supplied state.
// It returns a caller-fault error (see IsClientFault) on violation.
func (s *ConversationState) Validate() error {
	if s == nil {
		return ErrInvalidState
	}
	switch s.Stage {
	case StageInitial:
		return nil
	case StageAwaitingClarification:
		if s.CorePrompt == "" {
			return ErrMissingCorePrompt
		}
		if len(s.ClarifyingQuestions) == 0 {
			return ErrInvalidState
		}
		return nil
	case StageComplete:
		if s.CorePrompt == "" {
			return ErrMissingCorePrompt
		}
		if s.UserAnswers != nil && len(s.UserAnswers) != len(s.ClarifyingQuestions) {
			return &AnswerCountMismatchError{Want: len(s.ClarifyingQuestions), Got: len(s.UserAnswers)}
		}
		return nil
	default:
		return ErrInvalidState
	}
}
