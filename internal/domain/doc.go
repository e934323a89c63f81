// Package domain contains the core business entities and value objects of the
// deck service: proficiency levels, language tags, flashcards, decks and the
// generation request that describes a deck to be generated. It is independent
// of any storage, transport or LLM provider.
package domain
