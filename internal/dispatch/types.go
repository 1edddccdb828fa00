package dispatch

import "context"

// Request identifies which pipeline to run and with what input.
// One Request is consumed by exactly one dispatch call; nothing is persisted.
type Request struct {
	Category string `json:"category"`
	ID       string `json:"id"`
	Input    string `json:"input"`
}

// Result is the raw return value of one pipeline run. Pipelines either
// return a bare text (Text set, no timing) or a field map keyed by the
// pipeline's domain field ("blog", "post", "itinerary", "summary", ...)
// together with the elapsed wall-clock seconds spanning both stages.
type Result struct {
	Text    string
	Fields  map[string]string
	Elapsed *float64
}

// Envelope is the normalized per-request output the engine guarantees to
// all downstream consumers regardless of which pipeline produced it.
// Content is non-nil exactly when Error is nil.
type Envelope struct {
	ID           string   `json:"id"`
	Content      *string  `json:"content"`
	ResponseTime *float64 `json:"response_time"`
	Error        *string  `json:"error"`
}

// Pipeline runs one research-then-generate agent pair over a single input.
// Implementations must not panic past Run; internal stage failures come
// back as an error and are turned into error envelopes by the engine.
type Pipeline interface {
	Run(ctx context.Context, input string) (Result, error)
}
