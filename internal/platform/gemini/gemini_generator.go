package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/deckgen-api/internal/config"
	"github.com/phrazzld/deckgen-api/internal/domain"
	"github.com/phrazzld/deckgen-api/internal/generation"
	"github.com/samber/lo"
	"google.golang.org/genai"
)

// systemInstruction describes the flashcard task to the model.
const systemInstruction = "You are a language learning flash card deck generator. " +
	"You will receive JSON describing the deck to build: the original language, " +
	"a target language, a language fluency level, the number of cards and possibly a region. " +
	"Output that many flashcard objects holding the most important words and phrases of the " +
	"target language for that fluency level, as spoken in that region. " +
	"Prioritize the target language when choosing phrases. " +
	"Respect the dialect and natural usage of the region, and mix casual and formal register. " +
	"Each flashcard pairs the phrase in the original language with its rendering in the target language."

const roleUser = "user"

// contentGenerator is the part of the genai client the generator uses.
// *genai.Models satisfies it.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API.
type GeminiGenerator struct {
	logger *slog.Logger
	client contentGenerator
	model  string

	// schema and schemaText are read once at construction and never modified.
	schema     *genai.Schema
	schemaText string
	strict     bool
}

var _ generation.Generator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a GeminiGenerator from the LLM configuration.
// It reads the response schema and builds the genai client; any failure wraps
// generation.ErrInvalidConfig.
func NewGeminiGenerator(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: API key cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return newGeminiGenerator(logger, cfg, client.Models)
}

// newGeminiGenerator wires a generator around any contentGenerator.
func newGeminiGenerator(
	logger *slog.Logger,
	cfg config.LLMConfig,
	client contentGenerator,
) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if client == nil {
		return nil, fmt.Errorf("%w: client cannot be nil", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.SchemaPath == "" {
		return nil, fmt.Errorf("%w: schema path cannot be empty", generation.ErrInvalidConfig)
	}

	schema, schemaText, err := loadSchema(cfg.SchemaPath)
	if err != nil {
		return nil, err
	}

	logger = logger.With(slog.String("component", "gemini_generator"))
	logger.Info("Gemini generator ready",
		slog.String("model", cfg.ModelName),
		slog.Bool("strict_schema", cfg.StrictSchema))

	return &GeminiGenerator{
		logger:     logger,
		client:     client,
		model:      cfg.ModelName,
		schema:     schema,
		schemaText: schemaText,
		strict:     cfg.StrictSchema,
	}, nil
}

// GenerateFlashCards implements generation.Generator.
func (g *GeminiGenerator) GenerateFlashCards(
	ctx context.Context,
	req domain.GenerationRequest,
) ([]domain.FlashCard, error) {
	contents, err := buildContents(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	g.logger.InfoContext(ctx, "Requesting flashcards from Gemini",
		slog.String("model", g.model),
		slog.String("level", req.Level.String()),
		slog.String("original_language", req.OriginalLanguage.String()),
		slog.String("target_language", req.TargetLanguage.String()),
		slog.Int("count", req.Count))

	resp, err := g.client.GenerateContent(ctx, g.model, contents, g.buildConfig())
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini API call failed", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", generation.ErrProviderUnavailable, err)
	}

	text, err := extractText(resp)
	if err != nil {
		g.logger.WarnContext(ctx, "Unusable Gemini reply", slog.Any("error", err))
		return nil, err
	}

	cards, err := parseResponse(text, req)
	if err != nil {
		g.logger.WarnContext(ctx, "Failed to parse Gemini reply",
			slog.Any("error", err),
			slog.Int("reply_length", len(text)))
		return nil, err
	}

	g.logger.InfoContext(ctx, "Generated flashcards",
		slog.Int("requested", req.Count),
		slog.Int("generated", len(cards)))
	return cards, nil
}

// buildContents returns the single user turn of a new conversation.
func buildContents(req domain.GenerationRequest) ([]*genai.Content, error) {
	payload, err := json.Marshal(promptData{
		OriginalLanguage: req.OriginalLanguage.String(),
		TargetLanguage:   req.TargetLanguage.String(),
		Level:            req.Level.String(),
		Region:           req.Region,
		Count:            req.Count,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	return []*genai.Content{
		{Role: roleUser, Parts: []*genai.Part{{Text: string(payload)}}},
	}, nil
}

// buildConfig returns a new config for every call; nothing in it is shared
// with other calls except the read-only schema.
func (g *GeminiGenerator) buildConfig() *genai.GenerateContentConfig {
	instruction := systemInstruction
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	if g.strict {
		cfg.ResponseSchema = g.schema
	} else {
		instruction += "\n\nThe reply must be JSON matching this schema:\n" + g.schemaText
	}

	cfg.SystemInstruction = &genai.Content{
		Parts: []*genai.Part{{Text: instruction}},
	}
	return cfg
}

// extractText pulls the reply text out of the first candidate.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", invalidResponse("nil response")
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked: %s",
			generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", invalidResponse("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: reply blocked by safety filters", generation.ErrContentBlocked)
	}
	if candidate.Content == nil {
		return "", invalidResponse("empty content in response")
	}

	texts := lo.FilterMap(candidate.Content.Parts, func(part *genai.Part, _ int) (string, bool) {
		if part == nil || part.Thought {
			return "", false
		}
		return part.Text, part.Text != ""
	})
	if len(texts) == 0 {
		return "", invalidResponse(ErrEmptyReply.Error())
	}
	return strings.Join(texts, ""), nil
}

// parseResponse decodes the reply and maps every element to a FlashCard.
// A single malformed element fails the whole batch.
func parseResponse(text string, req domain.GenerationRequest) ([]domain.FlashCard, error) {
	var reply ResponseSchema
	if err := json.Unmarshal([]byte(text), &reply); err != nil {
		return nil, invalidResponse("failed to parse JSON reply: %v", err)
	}
	if reply.FlashCards == nil {
		return nil, invalidResponse("reply has no %s property", cardsProperty)
	}

	elements := *reply.FlashCards
	cards := make([]domain.FlashCard, 0, len(elements))
	for i, element := range elements {
		if element.OriginalLanguage == nil || strings.TrimSpace(element.OriginalLanguage.Text) == "" {
			return nil, invalidResponse("card %d missing original language text", i)
		}
		if element.TargetLanguage == nil || strings.TrimSpace(element.TargetLanguage.Text) == "" {
			return nil, invalidResponse("card %d missing target language text", i)
		}

		card, err := domain.NewFlashCard(
			element.OriginalLanguage.Text,
			element.TargetLanguage.Text,
			req.OriginalLanguage,
			req.TargetLanguage,
			req.Level,
			req.Region,
		)
		if err != nil {
			return nil, invalidResponse("card %d: %v", i, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func invalidResponse(format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s",
		generation.ErrGenerationFailed, generation.ErrInvalidResponse, fmt.Sprintf(format, args...))
}
