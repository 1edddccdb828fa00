package agents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agentscope-ai/agentscope/internal/dispatch"
	"github.com/agentscope-ai/agentscope/internal/llm"
	"github.com/agentscope-ai/agentscope/tools/captions"
	"github.com/agentscope-ai/agentscope/tools/websearch"
)

// Researcher produces research notes for an input. The notes feed the
// generate stage and never reach the client directly.
type Researcher interface {
	Research(ctx context.Context, input string) (string, error)
}

// twoStage is the research-then-generate pipeline every variant is an
// instance of. Elapsed covers both stages.
type twoStage struct {
	field      string
	researcher Researcher
	provider   llm.Provider
	system     string
	promptFmt  string // expects (input, notes)
}

func (p *twoStage) Run(ctx context.Context, input string) (dispatch.Result, error) {
	if p.provider == nil {
		return dispatch.Result{}, fmt.Errorf("llm provider not configured")
	}
	started := time.Now()

	notes, err := p.researcher.Research(ctx, input)
	if err != nil {
		return dispatch.Result{}, fmt.Errorf("research stage: %w", err)
	}

	text, err := p.provider.Complete(ctx, p.system, fmt.Sprintf(p.promptFmt, input, notes))
	if err != nil {
		return dispatch.Result{}, fmt.Errorf("generate stage: %w", err)
	}

	elapsed := time.Since(started).Seconds()
	return dispatch.Result{
		Fields:  map[string]string{p.field: text},
		Elapsed: &elapsed,
	}, nil
}

// searchResearcher turns web search hits into numbered reference notes.
type searchResearcher struct {
	searcher   websearch.Searcher
	maxResults int
	queryFmt   string // expects (input)
}

func (r *searchResearcher) Research(ctx context.Context, input string) (string, error) {
	if r.searcher == nil {
		return "", fmt.Errorf("web search not configured")
	}
	k := r.maxResults
	if k <= 0 {
		k = 10
	}
	query := input
	if r.queryFmt != "" {
		query = fmt.Sprintf(r.queryFmt, input)
	}
	hits, err := r.searcher.Discover(ctx, query, k)
	if err != nil {
		return "", err
	}
	if len(hits) == 0 {
		return "", fmt.Errorf("no search results for %q", query)
	}
	var b strings.Builder
	for i, hit := range hits {
		fmt.Fprintf(&b, "%d. %s (%s)\n   %s\n", i+1, hit.Title, hit.URL, hit.Snippet)
	}
	return b.String(), nil
}

// captionResearcher fetches a video's caption track as the notes.
type captionResearcher struct {
	fetcher captions.Fetcher
}

func (r *captionResearcher) Research(ctx context.Context, input string) (string, error) {
	if r.fetcher == nil {
		return "", fmt.Errorf("caption fetch not configured")
	}
	videoID, err := captions.VideoID(input)
	if err != nil {
		return "", err
	}
	return r.fetcher.Fetch(ctx, videoID)
}
