package llm

import (
	"context"
	"errors"

	"github.com/agentscope-ai/agentscope/config"
)

// Client represents the supported LLM backends
type Client string

const (
	OpenAI Client = "openai"
	Groq   Client = "groq"
	Gemini Client = "gemini"
)

// Provider is the interface all LLM backends satisfy. system carries the
// persona instructions, prompt the task itself.
type Provider interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// NewProvider creates an LLM client for the named backend from its
// configuration section.
func NewProvider(client Client, cfg config.Provider) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("api key not set for provider " + string(client))
	}
	switch client {
	case OpenAI:
		return newChatClient(cfg, "https://api.openai.com/v1"), nil
	case Groq:
		return newChatClient(cfg, "https://api.groq.com/openai/v1"), nil
	case Gemini:
		return newGeminiClient(cfg), nil
	default:
		return nil, errors.New("unsupported LLM provider")
	}
}
