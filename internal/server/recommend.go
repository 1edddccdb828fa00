package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/agentscope-ai/agentscope/internal/llm"
)

// Recommendation is the routing verdict for a user prompt: which agent
// family should handle it and with what confidence.
type Recommendation struct {
	ContentType      string   `json:"content_type"`
	RecommendedAgent string   `json:"recommended_agent"`
	AvailableAgents  []string `json:"available_agents"`
	ConfidenceScore  float64  `json:"confidence_score"`
	IsRelevant       bool     `json:"is_relevant"`
}

// RecommendHandler routes free-form prompts to an agent family via the
// Gemini provider.
type RecommendHandler struct {
	Gemini llm.Provider
	Logger *log.Logger
}

func (h *RecommendHandler) Register(e *echo.Echo) {
	e.POST("/recommend", h.Recommend)
}

const routingPrompt = `You are a routing assistant for a content generation platform.
Given a user prompt, decide which agent family should handle it.
Agent families: blogging, content_writing, technical_writing, data_analysis, general.
Respond ONLY with valid JSON in the following format:
{
  "content_type": "the kind of content the user wants",
  "recommended_agent": "one agent family name, or 'unrelated'",
  "available_agents": ["blogging", "content_writing", "technical_writing", "data_analysis", "general"],
  "confidence_score": 0.0,
  "is_relevant": false
}
Do not include any other text or explanation.

User prompt: `

// Recommend asks the Gemini backend to classify the prompt. Provider
// and parse failures degrade to the "unrelated" verdict rather than an
// HTTP error.
func (h *RecommendHandler) Recommend(c echo.Context) error {
	if !isJSONRequest(c) {
		return c.JSON(http.StatusUnsupportedMediaType, map[string]interface{}{
			"error": "Content-Type must be application/json",
		})
	}

	var body struct {
		Prompt string `json:"prompt"`
	}
	if err := c.Bind(&body); err != nil || strings.TrimSpace(body.Prompt) == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "Missing or empty 'prompt' in request body",
		})
	}

	if h.Gemini == nil {
		h.Logger.Printf("recommend: gemini provider not configured")
		return c.JSON(http.StatusOK, fallbackRecommendation())
	}

	reply, err := h.Gemini.Complete(c.Request().Context(), "", routingPrompt+body.Prompt)
	if err != nil {
		h.Logger.Printf("recommend: provider error: %v", err)
		return c.JSON(http.StatusOK, fallbackRecommendation())
	}

	cleaned := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(reply, "```json", ""), "```", ""))
	var rec Recommendation
	if err := json.Unmarshal([]byte(cleaned), &rec); err != nil {
		h.Logger.Printf("recommend: parse error: %v", err)
		return c.JSON(http.StatusOK, fallbackRecommendation())
	}
	if rec.ContentType == "" {
		rec.ContentType = "unrelated"
	}
	if rec.RecommendedAgent == "" {
		rec.RecommendedAgent = "unrelated"
	}
	return c.JSON(http.StatusOK, rec)
}

func fallbackRecommendation() Recommendation {
	return Recommendation{
		ContentType:      "unrelated",
		RecommendedAgent: "unrelated",
		AvailableAgents:  []string{"blogging", "content_writing", "technical_writing", "data_analysis", "general"},
		ConfidenceScore:  0,
		IsRelevant:       false,
	}
}
