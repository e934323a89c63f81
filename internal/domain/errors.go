package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity or request fails validation.
	// It is usually wrapped by a *ValidationError listing the offending fields.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidLanguage is returned when a string is not a well-formed language tag.
	ErrInvalidLanguage = errors.New("invalid language tag")

	// ErrInvalidLevel is returned when a string is not one of the proficiency levels.
	ErrInvalidLevel = errors.New("invalid language level")

	// ErrEmptyID is returned when a deck or flashcard has no identifier.
	ErrEmptyID = errors.New("id cannot be empty")

	// ErrEmptyCardText is returned when a card face carries no text.
	ErrEmptyCardText = errors.New("card text cannot be empty")
)
