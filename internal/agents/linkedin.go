package agents

import "github.com/agentscope-ai/agentscope/internal/dispatch"

const linkedinPromptFmt = "Write a LinkedIn post about '%s' using the research notes below.\n\nResearch notes:\n%s"

var linkedinPersonas = map[string]string{
	"1": `You are a professional LinkedIn content writer. Use the research data to draft a post that is
engaging and credible. Open with a strong first line, keep paragraphs short, and end with a
question that invites discussion. Include a few relevant hashtags.`,
	"2": `You are a LinkedIn thought-leadership writer. Share one clear insight from the research,
support it with a concrete example, and close with a practical takeaway. Short paragraphs,
no jargon, a few relevant hashtags.`,
	"3": `You are a personal-branding LinkedIn writer. Frame the topic as a first-person lesson learned,
keep the tone warm and direct, and end with an invitation to share experiences. Include hashtags.`,
	"4": `You are a data-driven LinkedIn writer. Lead with the most striking number or fact from the
research, explain what it means for the reader's work, and end with a call to action. Include hashtags.`,
}

func registerLinkedIn(registry *dispatch.Registry, deps Deps) {
	for id, persona := range linkedinPersonas {
		registry.Register("linkedin", id, dispatch.Registration{
			ContentField: "post",
			Pipeline: &twoStage{
				field: "post",
				researcher: &searchResearcher{
					searcher:   deps.Searcher,
					maxResults: deps.MaxSearchResults,
				},
				provider:  deps.backend(id),
				system:    persona,
				promptFmt: linkedinPromptFmt,
			},
		})
	}
}
