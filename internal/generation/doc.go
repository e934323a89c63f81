// Package generation defines the boundary between the deck service and the
// language model that writes flashcards. The service depends only on the
// Generator interface; the Gemini adapter lives in platform/gemini.
package generation
