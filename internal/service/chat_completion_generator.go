package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lshigami/auriter/config"
	"github.com/rs/zerolog/log"
)

const systemPrompt = "You are an AI interview assistant. Provide responses in the exact format requested."

// chatCompletionGenerator talks to any OpenAI-compatible /chat/completions endpoint.
type chatCompletionGenerator struct {
	apiKey string
	base   string
	model  string
	http   *http.Client
}

func NewChatCompletionGenerator(cfg *config.Config) TextGenerator {
	if cfg.LLM.OpenAIApiKey == "" {
		log.Warn().Msg("OPENAI_API_KEY is not set. Question generation and analysis will use fallbacks.")
	}
	return &chatCompletionGenerator{
		apiKey: cfg.LLM.OpenAIApiKey,
		base:   strings.TrimRight(cfg.LLM.OpenAIBaseURL, "/"),
		model:  cfg.LLM.OpenAIModel,
		http:   &http.Client{Timeout: 90 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float32       `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *chatCompletionGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", errGeneratorUnavailable
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   4096,
		Temperature: 0.6,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", fmt.Errorf("read chat completion: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Error().Int("status", resp.StatusCode).Str("model", c.model).Msg("Chat completion failed")
		return "", fmt.Errorf("chat completion returned status %d", resp.StatusCode)
	}

	var ch chatResponse
	if err := json.Unmarshal(raw, &ch); err != nil {
		return "", fmt.Errorf("decode chat completion: %w", err)
	}
	if ch.Error != nil {
		return "", fmt.Errorf("chat completion error: %s", ch.Error.Message)
	}
	if len(ch.Choices) == 0 {
		return "", errors.New("no choices")
	}
	return ch.Choices[0].Message.Content, nil
}
