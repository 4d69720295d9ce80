package ports

// Renderer resolves a named template and substitutes named fields into its
// placeholders, producing the exact text sent to the language model.
// The template set is loaded once and treated as read-only.
type Renderer interface {
	// Render fails with domain.ErrTemplateNotFound when name is unknown and
	// with a domain.MissingFieldError when the template references a
	// placeholder absent from fields.
	Render(name string, fields map[string]string) (string, error)
}
