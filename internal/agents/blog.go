package agents

import "github.com/agentscope-ai/agentscope/internal/dispatch"

const blogPromptFmt = "Write a blog post on '%s' using the research notes below.\n\nResearch notes:\n%s"

var blogPersonas = map[string]string{
	"1": `You are a professional blog writer. Use the research data to draft a blog that is engaging and structured.
Ensure the blog has an introduction, a structured body with ### section headings, and a conclusion.
Include a call to action and naturally integrate relevant keywords for SEO. Respond in Markdown.`,
	"2": `You are a technical blog writer who explains complex topics clearly.
Draft a well-structured blog with ### section headings, concrete examples and practical takeaways.
Keep the tone precise and accessible. Respond in Markdown.`,
	"3": `You are a storytelling blog writer. Open with a hook, weave the research insights into a narrative,
and close with a memorable conclusion. Use ### headings to break up the story. Respond in Markdown.`,
	"4": `You are an opinionated industry commentator. Take a clear position on the topic, back it with
the research insights, and anticipate counterarguments. Structure the piece with ### headings
and finish with a provocative question for the reader. Respond in Markdown.`,
}

func registerBlog(registry *dispatch.Registry, deps Deps) {
	for id, persona := range blogPersonas {
		registry.Register("blog", id, dispatch.Registration{
			ContentField: "blog",
			Pipeline: &twoStage{
				field: "blog",
				researcher: &searchResearcher{
					searcher:   deps.Searcher,
					maxResults: deps.MaxSearchResults,
				},
				provider:  deps.backend(id),
				system:    persona,
				promptFmt: blogPromptFmt,
			},
		})
	}
}
