package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/deckgen-api/internal/domain"
)

// MaxBodyBytes caps the size of a decoded request body.
const MaxBodyBytes = 1 << 20

// Global validator instance for reuse
var validate = validator.New()

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("request body is empty")
	}
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// ValidateRequest validates the given struct using the validator package.
// Field failures are returned as a *domain.ValidationError so the API can
// report every offending field by its JSON path.
func ValidateRequest(v interface{}) error {
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}

	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verr := &domain.ValidationError{Err: domain.ErrValidation}
	for _, fe := range fieldErrs {
		verr.Add(jsonPath(fe.Namespace()), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
	}
	return verr
}
