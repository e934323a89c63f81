package domain

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxCardsPerRequest caps how many cards a single generation may ask for.
const MaxCardsPerRequest = 50

// GenerationRequest describes a deck to generate, with every field parsed.
// It lives only for the duration of one generation call.
type GenerationRequest struct {
	Level            LanguageLevel `json:"level"`
	OriginalLanguage Language      `json:"originalLanguage"`
	TargetLanguage   Language      `json:"targetLanguage"`
	Region           string        `json:"region,omitempty"`
	Count            int           `json:"count"`
}

// GenerationRequestDTO is the raw body of a create-deck call. Its string
// fields must go through Parse before they can be used.
type GenerationRequestDTO struct {
	DeckName         string `json:"deckName"`
	UserID           string `json:"userId,omitempty"`
	Level            string `json:"level"            validate:"required"`
	TargetLanguage   string `json:"targetLanguage"   validate:"required"`
	OriginalLanguage string `json:"originalLanguage" validate:"required"`
	Region           string `json:"region,omitempty"`
	Count            int    `json:"count"            validate:"gte=1,lte=50"`
}

var dtoValidator = validator.New()

// Parse validates the DTO and converts it into a GenerationRequest.
// On failure the error is a *ValidationError naming every invalid field;
// the returned request is then the zero value.
func (dto GenerationRequestDTO) Parse() (GenerationRequest, error) {
	verr := &ValidationError{}

	if err := dtoValidator.Struct(dto); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				verr.Add(jsonFieldName(fe.Field()), tagMessage(fe.Tag()))
			}
		} else {
			verr.Add("request", err.Error())
		}
	}

	req := GenerationRequest{
		Region: strings.TrimSpace(dto.Region),
		Count:  dto.Count,
	}

	if dto.Level != "" {
		level, err := ParseLanguageLevel(dto.Level)
		if err != nil {
			verr.Add("level", "must be one of A1, A2, B1, B2, C1, C2")
			verr.Err = ErrInvalidLevel
		}
		req.Level = level
	}

	if dto.OriginalLanguage != "" {
		lang, err := ParseLanguage(dto.OriginalLanguage)
		if err != nil {
			verr.Add("originalLanguage", "must be a valid language tag")
			verr.Err = ErrInvalidLanguage
		}
		req.OriginalLanguage = lang
	}

	if dto.TargetLanguage != "" {
		lang, err := ParseLanguage(dto.TargetLanguage)
		if err != nil {
			verr.Add("targetLanguage", "must be a valid language tag")
			verr.Err = ErrInvalidLanguage
		}
		req.TargetLanguage = lang
	}

	if verr.HasErrors() {
		return GenerationRequest{}, verr
	}
	return req, nil
}

// jsonFieldName turns a Go field name into its camelCase JSON name.
func jsonFieldName(structField string) string {
	if structField == "" {
		return structField
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}

func tagMessage(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "gte":
		return "must be at least 1"
	case "lte":
		return "must be at most 50"
	default:
		return "is invalid"
	}
}
