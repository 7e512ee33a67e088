package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/auriter/config"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

var errGeneratorUnavailable = errors.New("text generator not configured")

type geminiTextGenerator struct {
	model *genai.GenerativeModel
}

// NewGeminiTextGenerator returns a generator that always fails when no API
// key is configured, so every caller falls back to static content.
func NewGeminiTextGenerator(cfg *config.Config) (TextGenerator, error) {
	if cfg.LLM.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Question generation and analysis will use fallbacks.")
		return &geminiTextGenerator{}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.LLM.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel(cfg.LLM.GeminiModel)
	model.SetTemperature(0.7)
	return &geminiTextGenerator{model: model}, nil
}

func (g *geminiTextGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	if g.model == nil {
		return "", errGeneratorUnavailable
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error")
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response.")
		return "", errors.New("gemini returned no content")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("gemini returned no text content")
	}
	return sb.String(), nil
}
