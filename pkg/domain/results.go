package domain

// NormalizationResult is the ephemeral output of the normalization stage.
// It is created and consumed within a single request.
type NormalizationResult struct {
	// NormalizedText is the cleaned-up rendition of the user's raw prompt.
	NormalizedText string `json:"improved_prompt"`

	// CorrectionsNote is a human-readable explanation of what changed.
	// It may be empty.
	CorrectionsNote string `json:"corrections"`
}

// ClarificationDecision says whether the normalized prompt needs clarifying
// questions before an answer can be synthesized. Questions is non-empty only
// when Required is true; the engine passes through whatever count the parser
// extracted without enforcing a range.
type ClarificationDecision struct {
	Required  bool     `json:"required"`
	Questions []string `json:"questions,omitempty"`
}

// StructuredAnswer is the final deliverable of a conversation. Every field
// may be empty: extraction degrades to defaults instead of failing.
type StructuredAnswer struct {
	Goal             string   `json:"goal"`
	ThinkingSteps    []string `json:"thinking_steps"`
	SentenceStarters []string `json:"sentence_starters"`
}
