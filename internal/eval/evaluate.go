package eval

import (
	"fmt"

	"github.com/agentscope-ai/agentscope/internal/dispatch"
)

// Evaluation is the scored view of one successful envelope.
type Evaluation struct {
	ID           string  `json:"id"`
	Scores       Scores  `json:"scores"`
	AverageScore float64 `json:"average_score"`
}

// Report is the batch-level evaluation outcome. Status is "success"
// with Evaluations populated, or "error" with Message set and no
// evaluations at all.
type Report struct {
	Status      string       `json:"status"`
	Evaluations []Evaluation `json:"evaluations,omitempty"`
	Message     string       `json:"message,omitempty"`
}

// Evaluate scores every envelope that produced content. Errored or
// empty envelopes are skipped, not reported. Any internal fault yields
// an error report instead of partial output.
func Evaluate(envelopes []dispatch.Envelope) (report Report) {
	defer func() {
		if r := recover(); r != nil {
			report = Report{Status: "error", Message: fmt.Sprintf("%v", r)}
		}
	}()

	evaluations := make([]Evaluation, 0, len(envelopes))
	for _, env := range envelopes {
		if env.Error != nil {
			continue
		}
		if env.Content == nil || *env.Content == "" {
			continue
		}
		scores := Score(*env.Content)
		evaluations = append(evaluations, Evaluation{
			ID:           env.ID,
			Scores:       scores,
			AverageScore: scores.Average(),
		})
	}
	return Report{Status: "success", Evaluations: evaluations}
}
