package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lshigami/auriter/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTextGenerator(t *testing.T) {
	gen, err := NewTextGenerator(&config.Config{})
	require.NoError(t, err)
	_, err = gen.GenerateText(context.Background(), "hi")
	assert.ErrorIs(t, err, errGeneratorUnavailable)

	_, err = NewTextGenerator(&config.Config{LLM: config.LLM{Provider: "llama-local"}})
	assert.Error(t, err)
}

func TestChatCompletionGenerator(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"[\"Q1\"]"}}]}`))
	}))
	defer srv.Close()

	gen := NewChatCompletionGenerator(&config.Config{LLM: config.LLM{
		OpenAIBaseURL: srv.URL + "/v1/",
		OpenAIApiKey:  "sk-test",
		OpenAIModel:   "meta/llama-3.1-70b-instruct",
	}})

	out, err := gen.GenerateText(context.Background(), "list questions")

	require.NoError(t, err)
	assert.Equal(t, `["Q1"]`, out)
	assert.Equal(t, "meta/llama-3.1-70b-instruct", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "list questions", got.Messages[1].Content)
}

func TestChatCompletionGeneratorHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	gen := NewChatCompletionGenerator(&config.Config{LLM: config.LLM{OpenAIBaseURL: srv.URL, OpenAIApiKey: "k"}})

	_, err := gen.GenerateText(context.Background(), "p")
	assert.Error(t, err)
}
