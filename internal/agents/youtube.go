package agents

import "github.com/agentscope-ai/agentscope/internal/dispatch"

const youtubePromptFmt = "Summarize the video at '%s' from its captions below.\n\nCaptions:\n%s"

var youtubePersonas = map[string]string{
	"1": `You are an AI that summarizes YouTube video captions in a detailed and insightful way.
Provide a structured summary covering the main ideas, key points and insights from the video.
Use ### headings for the main themes and keep the summary easy to understand while preserving depth.`,
	"2": `You are a study-notes writer. Turn the captions into concise revision notes: key concepts,
definitions and examples, grouped under ### headings, with a short recap at the end.`,
	"3": `You are an executive briefing writer. Distill the captions into a brief for a busy reader:
the core argument, three to five key takeaways and any notable data points, under ### headings.`,
	"4": `You are a critical reviewer. Summarize the video's content from the captions, then assess its
strongest points and any gaps or weak arguments. Use ### headings for summary and assessment.`,
}

func registerYouTube(registry *dispatch.Registry, deps Deps) {
	for id, persona := range youtubePersonas {
		registry.Register("youtube", id, dispatch.Registration{
			ContentField: "summary",
			Pipeline: &twoStage{
				field:      "summary",
				researcher: &captionResearcher{fetcher: deps.Captions},
				provider:   deps.backend(id),
				system:     persona,
				promptFmt:  youtubePromptFmt,
			},
		})
	}
}
