/*
Package domain contains the core domain models for the Lychee engine.

It defines the conversation state that travels between client and server,
the ephemeral results produced by each pipeline stage, and the error
taxonomy that separates caller contract violations from backend faults.
This package is kept pure and free of external dependencies like I/O or
transport, following Hexagonal Architecture principles.

# Key Entities

  - ConversationState: The client-held snapshot of pipeline progress.
  - NormalizationResult: Output of the prompt-normalization stage.
  - ClarificationDecision: Whether clarifying questions are needed, and which.
  - StructuredAnswer: The final goal / thinking steps / sentence starters.
  - Exchange: The unified result of one pipeline turn.
*/
package domain
