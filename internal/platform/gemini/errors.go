package gemini

import "errors"

// Error definitions for the gemini package.
var (
	// ErrSchemaMissingCards is returned when the schema file does not declare
	// a "flashCards" array property.
	ErrSchemaMissingCards = errors.New("schema must declare a flashCards array")

	// ErrEmptyReply is returned when the model answered without any text.
	ErrEmptyReply = errors.New("model reply contained no text")
)
