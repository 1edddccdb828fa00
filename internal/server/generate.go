package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/agentscope-ai/agentscope/internal/dispatch"
	"github.com/agentscope-ai/agentscope/internal/eval"
	"github.com/agentscope-ai/agentscope/internal/telemetry"
)

// GenerateHandler serves the batch content generation endpoint.
type GenerateHandler struct {
	Engine    *dispatch.Engine
	Telemetry *telemetry.Telemetry
	Logger    *log.Logger
}

func (h *GenerateHandler) Register(e *echo.Echo) {
	e.POST("/generate_content", h.GenerateContent)
}

type generateResponse struct {
	Status      string              `json:"status"`
	Results     []dispatch.Envelope `json:"results"`
	Evaluations []eval.Evaluation   `json:"evaluations"`
}

// GenerateContent validates a batch payload, dispatches every request
// and scores the successful results. Per-item failures come back inside
// the results array; only payload-level problems are HTTP errors.
func (h *GenerateHandler) GenerateContent(c echo.Context) error {
	if !isJSONRequest(c) {
		return c.JSON(http.StatusUnsupportedMediaType, map[string]interface{}{
			"status": "error",
			"error":  "Content-Type must be application/json",
		})
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status": "error",
			"error":  fmt.Sprintf("Invalid JSON format: %v", err),
		})
	}

	var payload interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status": "error",
			"error":  fmt.Sprintf("Invalid JSON format: %v", err),
		})
	}

	entries, ok := payload.([]interface{})
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":   "error",
			"error":    "Input must be a list of requests",
			"received": payload,
		})
	}

	requests := make([]dispatch.Request, len(entries))
	for idx, raw := range entries {
		entry, ok := raw.(map[string]interface{})
		if !ok {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"status":   "error",
				"error":    fmt.Sprintf("Request %d is missing required fields: [category id input]", idx),
				"received": raw,
			})
		}
		var missing []string
		for _, field := range []string{"category", "id", "input"} {
			if _, ok := entry[field]; !ok {
				missing = append(missing, field)
			}
		}
		if len(missing) > 0 {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"status":   "error",
				"error":    fmt.Sprintf("Request %d is missing required fields: %v", idx, missing),
				"received": entry,
			})
		}
		requests[idx] = dispatch.Request{
			Category: stringField(entry, "category"),
			ID:       stringField(entry, "id"),
			Input:    stringField(entry, "input"),
		}
	}

	results := h.Engine.DispatchBatch(c.Request().Context(), requests)
	report := eval.Evaluate(results)
	if report.Status != "success" {
		h.Logger.Printf("evaluation failed: %s", report.Message)
	}
	h.Telemetry.RecordEvaluations(len(report.Evaluations))

	return c.JSON(http.StatusOK, generateResponse{
		Status:      "success",
		Results:     results,
		Evaluations: report.Evaluations,
	})
}

func isJSONRequest(c echo.Context) bool {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	return strings.HasPrefix(contentType, echo.MIMEApplicationJSON)
}

// stringField tolerates non-string JSON values by formatting them;
// ids in particular arrive as numbers from some clients.
func stringField(entry map[string]interface{}, key string) string {
	switch v := entry[key].(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
