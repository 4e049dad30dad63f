package docfmt

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyInput     = errors.New("input text cannot be empty")
	ErrInvalidFormat  = errors.New("invalid input format")
	ErrInvalidOptions = errors.New("invalid compile options")
	ErrUnknownSpec    = errors.New("unknown style specification")

	// Parse stage errors.
	ErrMarkdownParse  = errors.New("markdown parsing failed")
	ErrPlaintextParse = errors.New("plaintext parsing failed")

	// Collaborator stage errors.
	ErrTemplateParse  = errors.New("reference template parsing failed")
	ErrTemplateRender = errors.New("template generation failed")
	ErrRenderFailed   = errors.New("document rendering failed")
	ErrPackageParse   = errors.New("document package parsing failed")
	ErrValidateFailed = errors.New("document validation failed")
	ErrFixFailed      = errors.New("document fixing failed")

	// AI classification errors.
	ErrAIUnavailable = errors.New("AI service unavailable")
	ErrAIResponse    = errors.New("malformed AI response")
)
