package agents

import (
	"github.com/agentscope-ai/agentscope/internal/dispatch"
	"github.com/agentscope-ai/agentscope/internal/llm"
	"github.com/agentscope-ai/agentscope/tools/captions"
	"github.com/agentscope-ai/agentscope/tools/websearch"
)

// Deps carries the external capabilities pipelines are built from.
// Nil entries are allowed; pipelines depending on a missing capability
// fail at run time with a configuration error, not at registration.
type Deps struct {
	OpenAI           llm.Provider
	Groq             llm.Provider
	Gemini           llm.Provider
	Searcher         websearch.Searcher
	Captions         captions.Fetcher
	MaxSearchResults int
}

// backend maps a variant id to its LLM provider: 1 and 4 run on
// OpenAI (different personas), 2 on Groq, 3 on Gemini.
func (d Deps) backend(id string) llm.Provider {
	switch id {
	case "2":
		return d.Groq
	case "3":
		return d.Gemini
	default:
		return d.OpenAI
	}
}

// BuildRegistry registers all sixteen pipeline variants: four
// categories, four persona/backend combinations each.
func BuildRegistry(deps Deps) *dispatch.Registry {
	registry := dispatch.NewRegistry()
	registerBlog(registry, deps)
	registerLinkedIn(registry, deps)
	registerTravel(registry, deps)
	registerYouTube(registry, deps)
	return registry
}
