package gemini

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/phrazzld/deckgen-api/internal/generation"
	"google.golang.org/genai"
)

// cardsProperty is the key the schema and every reply must carry.
const cardsProperty = "flashCards"

// loadSchema reads a Gemini schema file and checks that it describes a
// flashCards array. The raw text is returned alongside the parsed schema for
// use in loose mode.
func loadSchema(path string) (*genai.Schema, string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: failed to read response schema from %s: %v",
			generation.ErrInvalidConfig, path, err)
	}

	schema, err := parseSchema(raw)
	if err != nil {
		return nil, "", err
	}
	return schema, strings.TrimSpace(string(raw)), nil
}

func parseSchema(raw []byte) (*genai.Schema, error) {
	var schema genai.Schema
	if err := json.Unmarshal(raw, &schema); err != nil {
		return nil, fmt.Errorf("%w: failed to parse response schema: %v",
			generation.ErrInvalidConfig, err)
	}

	cards, ok := schema.Properties[cardsProperty]
	if !ok || cards == nil || cards.Type != genai.TypeArray {
		return nil, fmt.Errorf("%w: %w", generation.ErrInvalidConfig, ErrSchemaMissingCards)
	}
	return &schema, nil
}
