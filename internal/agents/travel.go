package agents

import "github.com/agentscope-ai/agentscope/internal/dispatch"

const travelPromptFmt = "Create a travel itinerary for '%s' using the research notes below.\n\nResearch notes:\n%s"

var travelPersonas = map[string]string{
	"1": `You are a professional travel planner. Use the research data to create a comprehensive itinerary
that includes daily activities, recommended accommodations and local transportation options.
Add practical tips about local customs, weather and best times to visit. Organize the itinerary
by day with ### headings and clear morning, afternoon and evening sections. Respond in Markdown.`,
	"2": `You are a budget travel specialist. Build an itinerary that maximizes value: free or cheap
activities, affordable food, public transport. Note approximate costs per day. Organize by day
with ### headings. Respond in Markdown.`,
	"3": `You are a luxury travel concierge. Curate a refined itinerary with standout dining, premium
stays and memorable experiences drawn from the research. Organize by day with ### headings
and include reservation tips. Respond in Markdown.`,
	"4": `You are an adventure travel guide. Plan an active itinerary centered on outdoor experiences,
local culture and off-the-beaten-path finds from the research. Organize by day with ### headings
and include safety and packing notes. Respond in Markdown.`,
}

func registerTravel(registry *dispatch.Registry, deps Deps) {
	for id, persona := range travelPersonas {
		registry.Register("travel", id, dispatch.Registration{
			ContentField: "itinerary",
			Pipeline: &twoStage{
				field: "itinerary",
				researcher: &searchResearcher{
					searcher:   deps.Searcher,
					maxResults: deps.MaxSearchResults,
					queryFmt:   "travel destinations, activities, and accommodations in '%s'",
				},
				provider:  deps.backend(id),
				system:    persona,
				promptFmt: travelPromptFmt,
			},
		})
	}
}
