/*
Package ports defines the driven ports (interfaces) for the Lychee engine.

These interfaces decouple the core pipeline from external implementations,
allowing the engine to work with different language-model backends and
template sources. Tests substitute deterministic stubs for both.

# Key Interfaces

  - TextGenerator: The opaque language-model collaborator.
  - Renderer: Resolves a named template and substitutes fields.
  - StatelessEngine: The contract adapters (HTTP, MCP, CLI) consume.
*/
package ports
