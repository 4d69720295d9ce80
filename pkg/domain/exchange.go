package domain

// Exchange is the unified result of one pipeline turn. The populated fields
// depend on the outgoing state's stage: Clarification is present while
// awaiting answers, Answer once the conversation is complete, Normalization
// on the first turn only.
type Exchange struct {
	State         *ConversationState     `json:"state"`
	Normalization *NormalizationResult   `json:"improved_prompt,omitempty"`
	Clarification *ClarificationDecision `json:"clarification,omitempty"`
	Answer        *StructuredAnswer      `json:"final_answer,omitempty"`

	// Message is a human-readable status line for clients that show one.
	Message string `json:"message"`
}
