package domain

import (
	"strings"

	"github.com/google/uuid"
)

// CardFace is one side of a flashcard. The front and back of a card share
// this shape; only the FlashCard field holding them tells them apart.
type CardFace struct {
	Text     string   `json:"text"             validate:"required"`
	Language Language `json:"language"`
	Region   string   `json:"region,omitempty"`
}

// FlashCard pairs a phrase in the learner's original language (front) with
// its rendering in the target language (back).
type FlashCard struct {
	ID               string        `json:"id"`
	FrontView        CardFace      `json:"frontView"`
	BackView         CardFace      `json:"backView"`
	Level            LanguageLevel `json:"level"`
	Region           string        `json:"region,omitempty"`
	PronunciationURI string        `json:"pronunciationUri,omitempty" validate:"omitempty,uri"`
}

// NewFlashCard builds a card for a generated phrase pair, assigning a fresh id.
// The region, when set, is recorded on the card and on both faces.
func NewFlashCard(
	originalText string,
	targetText string,
	original Language,
	target Language,
	level LanguageLevel,
	region string,
) (FlashCard, error) {
	card := FlashCard{
		ID: uuid.NewString(),
		FrontView: CardFace{
			Text:     strings.TrimSpace(originalText),
			Language: original,
			Region:   region,
		},
		BackView: CardFace{
			Text:     strings.TrimSpace(targetText),
			Language: target,
			Region:   region,
		},
		Level:  level,
		Region: region,
	}

	if err := card.Validate(); err != nil {
		return FlashCard{}, err
	}
	return card, nil
}

// Validate checks the invariants every stored card must hold.
func (c FlashCard) Validate() error {
	verr := &ValidationError{}
	if strings.TrimSpace(c.ID) == "" {
		verr.Add("id", ErrEmptyID.Error())
	}
	if strings.TrimSpace(c.FrontView.Text) == "" {
		verr.Add("frontView.text", ErrEmptyCardText.Error())
	}
	if strings.TrimSpace(c.BackView.Text) == "" {
		verr.Add("backView.text", ErrEmptyCardText.Error())
	}
	if !c.Level.IsValid() {
		verr.Add("level", ErrInvalidLevel.Error())
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}
