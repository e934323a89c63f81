package generation

import "errors"

// Common errors returned by Generator implementations
var (
	// ErrGenerationFailed is returned when card generation fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate flashcards")

	// ErrInvalidResponse is returned when the model reply cannot be parsed or
	// does not match the expected card schema
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the model refuses the request due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrProviderUnavailable is returned when the model endpoint could not be reached
	// or failed at the transport level. The underlying error is wrapped.
	ErrProviderUnavailable = errors.New("language model provider unavailable")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// IsProviderError reports whether err means the provider itself failed,
// as opposed to the provider answering with something unusable.
func IsProviderError(err error) bool {
	return errors.Is(err, ErrProviderUnavailable)
}
