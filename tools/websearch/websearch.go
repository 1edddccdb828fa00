package websearch

import (
	"context"
	"errors"

	"github.com/agentscope-ai/agentscope/config"
)

// Result is one web search hit.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// Searcher discovers up to k results for a query.
type Searcher interface {
	Discover(ctx context.Context, q string, k int) ([]Result, error)
}

// NewSearcher picks a search backend from configuration; serper wins
// when both keys are present.
func NewSearcher(cfg config.ToolsConfig) (Searcher, error) {
	if cfg.SerperAPIKey != "" {
		return &SerperSearch{ApiKey: cfg.SerperAPIKey}, nil
	}
	if cfg.BraveAPIKey != "" {
		return &BraveSearch{ApiKey: cfg.BraveAPIKey}, nil
	}
	return nil, errors.New("no web search api key configured")
}
