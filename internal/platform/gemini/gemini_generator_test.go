package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phrazzld/deckgen-api/internal/config"
	"github.com/phrazzld/deckgen-api/internal/domain"
	"github.com/phrazzld/deckgen-api/internal/generation"
	"github.com/phrazzld/deckgen-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

const testSchema = `{
  "type": "OBJECT",
  "properties": {
    "flashCards": {
      "type": "ARRAY",
      "items": {
        "type": "OBJECT",
        "properties": {
          "originalLanguage": {"type": "OBJECT", "properties": {"text": {"type": "STRING"}}},
          "targetLanguage": {"type": "OBJECT", "properties": {"text": {"type": "STRING"}}}
        }
      }
    }
  }
}`

func testConfig(t *testing.T, strict bool) config.LLMConfig {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, os.WriteFile(path, []byte(testSchema), 0o600))
	return config.LLMConfig{
		APIKey:       "test-key",
		ModelName:    "gemini-test",
		SchemaPath:   path,
		StrictSchema: strict,
	}
}

func newTestGenerator(t *testing.T, strict bool, client *fakeModels) *GeminiGenerator {
	t.Helper()
	_, log := logger.NewTestLogger(t)
	g, err := newGeminiGenerator(log, testConfig(t, strict), client)
	require.NoError(t, err)
	return g
}

func testRequest() domain.GenerationRequest {
	return domain.GenerationRequest{
		Level:            domain.LevelB1,
		OriginalLanguage: domain.MustParseLanguage("en"),
		TargetLanguage:   domain.MustParseLanguage("pt-BR"),
		Region:           "Bahia",
		Count:            3,
	}
}

const threeCards = `{"flashCards":[
  {"originalLanguage":{"text":"Good morning"},"targetLanguage":{"text":"Bom dia"}},
  {"originalLanguage":{"text":"Thank you"},"targetLanguage":{"text":"Obrigado"}},
  {"originalLanguage":{"text":"See you later"},"targetLanguage":{"text":"Até mais"}}
]}`

func TestNewGeminiGenerator_ConfigErrors(t *testing.T) {
	t.Parallel()
	_, log := logger.NewTestLogger(t)

	_, err := NewGeminiGenerator(context.Background(), log, config.LLMConfig{ModelName: "m", SchemaPath: "p"})
	assert.ErrorIs(t, err, generation.ErrInvalidConfig, "empty API key")

	_, err = NewGeminiGenerator(context.Background(), nil, testConfig(t, true))
	assert.Error(t, err, "nil logger")

	tests := []struct {
		name   string
		mutate func(*config.LLMConfig)
	}{
		{"empty model", func(c *config.LLMConfig) { c.ModelName = "" }},
		{"empty schema path", func(c *config.LLMConfig) { c.SchemaPath = "" }},
		{"unreadable schema", func(c *config.LLMConfig) { c.SchemaPath = filepath.Join(t.TempDir(), "none.json") }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig(t, true)
			tc.mutate(&cfg)
			_, err := newGeminiGenerator(log, cfg, &fakeModels{})
			assert.ErrorIs(t, err, generation.ErrInvalidConfig)
		})
	}

	_, err = newGeminiGenerator(log, testConfig(t, true), nil)
	assert.ErrorIs(t, err, generation.ErrInvalidConfig, "nil client")
}

func TestGenerateFlashCards_MapsEveryElement(t *testing.T) {
	t.Parallel()
	client := &fakeModels{response: textResponse(threeCards)}
	g := newTestGenerator(t, true, client)
	req := testRequest()

	cards, err := g.GenerateFlashCards(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, cards, 3)

	seen := map[string]bool{}
	for _, card := range cards {
		assert.NotEmpty(t, card.ID)
		assert.False(t, seen[card.ID], "card ids must be unique")
		seen[card.ID] = true

		assert.Equal(t, domain.LevelB1, card.Level)
		assert.Equal(t, "Bahia", card.Region)
		assert.Equal(t, req.OriginalLanguage, card.FrontView.Language)
		assert.Equal(t, req.TargetLanguage, card.BackView.Language)
	}

	assert.Equal(t, "Good morning", cards[0].FrontView.Text)
	assert.Equal(t, "Bom dia", cards[0].BackView.Text)
	assert.Equal(t, "Até mais", cards[2].BackView.Text, "order preserved")
}

func TestGenerateFlashCards_RequestShape(t *testing.T) {
	t.Parallel()

	t.Run("strict schema", func(t *testing.T) {
		client := &fakeModels{response: textResponse(threeCards)}
		g := newTestGenerator(t, true, client)

		_, err := g.GenerateFlashCards(context.Background(), testRequest())
		require.NoError(t, err)

		calls := client.Calls()
		require.Len(t, calls, 1)
		call := calls[0]
		assert.Equal(t, "gemini-test", call.model)
		assert.Equal(t, "application/json", call.config.ResponseMIMEType)
		require.NotNil(t, call.config.ResponseSchema)
		assert.Equal(t, genai.TypeArray, call.config.ResponseSchema.Properties["flashCards"].Type)
		require.NotNil(t, call.config.SystemInstruction)
		assert.NotContains(t, call.config.SystemInstruction.Parts[0].Text, `"flashCards"`)

		require.Len(t, call.contents, 1)
		assert.Equal(t, "user", call.contents[0].Role)
		var sent map[string]any
		require.NoError(t, json.Unmarshal([]byte(call.contents[0].Parts[0].Text), &sent))
		assert.Equal(t, "en", sent["originalLanguage"])
		assert.Equal(t, "pt-BR", sent["targetLanguage"])
		assert.Equal(t, "B1", sent["level"])
		assert.Equal(t, "Bahia", sent["region"])
		assert.EqualValues(t, 3, sent["count"])
	})

	t.Run("loose schema", func(t *testing.T) {
		client := &fakeModels{response: textResponse(threeCards)}
		g := newTestGenerator(t, false, client)

		_, err := g.GenerateFlashCards(context.Background(), testRequest())
		require.NoError(t, err)

		call := client.Calls()[0]
		assert.Equal(t, "application/json", call.config.ResponseMIMEType)
		assert.Nil(t, call.config.ResponseSchema)
		assert.Contains(t, call.config.SystemInstruction.Parts[0].Text, `"flashCards"`)
	})
}

func TestGenerateFlashCards_FreshConversationPerCall(t *testing.T) {
	t.Parallel()
	client := &fakeModels{response: textResponse(threeCards)}
	g := newTestGenerator(t, true, client)

	first := testRequest()
	second := testRequest()
	second.TargetLanguage = domain.MustParseLanguage("fr")

	_, err := g.GenerateFlashCards(context.Background(), first)
	require.NoError(t, err)
	_, err = g.GenerateFlashCards(context.Background(), second)
	require.NoError(t, err)

	calls := client.Calls()
	require.Len(t, calls, 2)
	require.Len(t, calls[1].contents, 1, "second call carries no history")
	assert.Contains(t, calls[1].contents[0].Parts[0].Text, `"fr"`)
	assert.NotContains(t, calls[1].contents[0].Parts[0].Text, "pt-BR")
	assert.NotSame(t, calls[0].config, calls[1].config)
}

func TestGenerateFlashCards_ReplyErrors(t *testing.T) {
	t.Parallel()

	blockedCandidate := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}},
	}
	blockedPrompt := &genai.GenerateContentResponse{
		PromptFeedback: &genai.GenerateContentResponsePromptFeedback{
			BlockReason: genai.BlockedReasonSafety,
		},
	}

	tests := []struct {
		name    string
		resp    *genai.GenerateContentResponse
		wantErr error
	}{
		{"nil response", nil, generation.ErrInvalidResponse},
		{"no candidates", &genai.GenerateContentResponse{}, generation.ErrInvalidResponse},
		{"empty text", textResponse(""), generation.ErrInvalidResponse},
		{"malformed JSON", textResponse("{flashCards:"), generation.ErrInvalidResponse},
		{"missing flashCards", textResponse(`{"cards":[]}`), generation.ErrGenerationFailed},
		{
			"missing target text",
			textResponse(`{"flashCards":[{"originalLanguage":{"text":"Hi"},"targetLanguage":{"text":" "}}]}`),
			generation.ErrInvalidResponse,
		},
		{
			"missing original side",
			textResponse(`{"flashCards":[{"targetLanguage":{"text":"Hola"}}]}`),
			generation.ErrInvalidResponse,
		},
		{"blocked candidate", blockedCandidate, generation.ErrContentBlocked},
		{"blocked prompt", blockedPrompt, generation.ErrContentBlocked},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGenerator(t, true, &fakeModels{response: tc.resp})

			cards, err := g.GenerateFlashCards(context.Background(), testRequest())
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.False(t, generation.IsProviderError(err))
			assert.Nil(t, cards)
		})
	}
}

func TestGenerateFlashCards_MissingCardsIsGenerationFailure(t *testing.T) {
	t.Parallel()
	g := newTestGenerator(t, true, &fakeModels{response: textResponse(`{"other":1}`)})

	_, err := g.GenerateFlashCards(context.Background(), testRequest())
	assert.ErrorIs(t, err, generation.ErrGenerationFailed)
	assert.ErrorIs(t, err, generation.ErrInvalidResponse)
}

func TestGenerateFlashCards_EmptyArray(t *testing.T) {
	t.Parallel()
	g := newTestGenerator(t, true, &fakeModels{response: textResponse(`{"flashCards":[]}`)})

	cards, err := g.GenerateFlashCards(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestGenerateFlashCards_SkipsThoughtParts(t *testing.T) {
	t.Parallel()
	resp := textResponse(threeCards)
	resp.Candidates[0].Content.Parts = append(
		[]*genai.Part{{Text: "thinking...", Thought: true}},
		resp.Candidates[0].Content.Parts...,
	)
	g := newTestGenerator(t, true, &fakeModels{response: resp})

	cards, err := g.GenerateFlashCards(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Len(t, cards, 3)
}

func TestGenerateFlashCards_TransportError(t *testing.T) {
	t.Parallel()
	transport := errors.New("dial tcp: connection refused")
	buf, log := logger.NewTestLogger(t)
	g, err := newGeminiGenerator(log, testConfig(t, true), &fakeModels{err: transport})
	require.NoError(t, err)

	_, err = g.GenerateFlashCards(context.Background(), testRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrProviderUnavailable)
	assert.ErrorIs(t, err, transport, "transport error stays in the chain")
	assert.True(t, generation.IsProviderError(err))
	assert.True(t, strings.Contains(buf.String(), "Gemini API call failed"))
}

func TestGenerateFlashCards_Cancellation(t *testing.T) {
	t.Parallel()
	client := &fakeModels{
		fn: func(ctx context.Context) (*genai.GenerateContentResponse, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	g := newTestGenerator(t, true, client)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.GenerateFlashCards(ctx, testRequest())
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, generation.ErrProviderUnavailable)
}
