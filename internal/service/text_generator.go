package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lshigami/auriter/config"
	"github.com/rs/zerolog/log"
)

// TextGenerator sends one prompt to a language model and returns its raw text.
// Output has no guaranteed structure; callers run it through the repair package.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// NewTextGenerator picks the provider named by LLM_PROVIDER.
func NewTextGenerator(cfg *config.Config) (TextGenerator, error) {
	switch strings.ToLower(cfg.LLM.Provider) {
	case "openai":
		return NewChatCompletionGenerator(cfg), nil
	case "", "gemini":
		return NewGeminiTextGenerator(cfg)
	default:
		log.Error().Str("provider", cfg.LLM.Provider).Msg("Unknown LLM_PROVIDER")
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLM.Provider)
	}
}
