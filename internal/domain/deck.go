package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Deck is a named, ordered collection of flashcards for one language pair and level.
// Card order is the display order.
type Deck struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	UserID           string        `json:"userId"`
	OriginalLanguage Language      `json:"originalLanguage"`
	TargetLanguage   Language      `json:"targetLanguage"`
	Level            LanguageLevel `json:"level"`
	FlashCards       []FlashCard   `json:"flashCards"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// NewDeck creates a deck with a fresh id for a successfully generated set of cards.
func NewDeck(name, userID string, req GenerationRequest, cards []FlashCard) (*Deck, error) {
	now := time.Now().UTC()
	if cards == nil {
		cards = []FlashCard{}
	}

	deck := &Deck{
		ID:               uuid.NewString(),
		Name:             strings.TrimSpace(name),
		UserID:           strings.TrimSpace(userID),
		OriginalLanguage: req.OriginalLanguage,
		TargetLanguage:   req.TargetLanguage,
		Level:            req.Level,
		FlashCards:       cards,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := deck.Validate(); err != nil {
		return nil, err
	}
	return deck, nil
}

// Validate checks the deck's own fields and every card it holds.
func (d *Deck) Validate() error {
	verr := &ValidationError{}
	if strings.TrimSpace(d.ID) == "" {
		verr.Add("id", ErrEmptyID.Error())
	}
	if d.OriginalLanguage.IsZero() {
		verr.Add("originalLanguage", ErrInvalidLanguage.Error())
	}
	if d.TargetLanguage.IsZero() {
		verr.Add("targetLanguage", ErrInvalidLanguage.Error())
	}
	if !d.Level.IsValid() {
		verr.Add("level", ErrInvalidLevel.Error())
	}
	for _, card := range d.FlashCards {
		if err := card.Validate(); err != nil {
			verr.Add("flashCards", err.Error())
			break
		}
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}

// ReplaceContent replaces the name and card list, leaving languages and level untouched.
func (d *Deck) ReplaceContent(name string, cards []FlashCard) {
	if cards == nil {
		cards = []FlashCard{}
	}
	d.Name = strings.TrimSpace(name)
	d.FlashCards = cards
	d.UpdatedAt = time.Now().UTC()
}

// Clone returns a deep copy so callers never share the card slice.
func (d *Deck) Clone() *Deck {
	if d == nil {
		return nil
	}
	cp := *d
	cp.FlashCards = make([]FlashCard, len(d.FlashCards))
	copy(cp.FlashCards, d.FlashCards)
	return &cp
}
