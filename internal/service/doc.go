// Package service contains the deck use cases. DeckService orchestrates the
// generation.Generator and the store.DeckStore; it depends only on those
// interfaces, never on the Gemini client or the in-memory map behind them.
package service
