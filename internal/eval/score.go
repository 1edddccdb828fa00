package eval

import (
	"math"
	"regexp"
	"strings"
)

var (
	sentenceBreakRe  = regexp.MustCompile(`[.!?]+`)
	digitRunRe       = regexp.MustCompile(`\d+`)
	paragraphBreakRe = regexp.MustCompile(`\n\s*\n`)
)

// The checks below overlap on purpose (heading and blank-line probes
// recur across scorers); keeping the overlap keeps score parity with
// the heuristic these were calibrated against.

var engagementTokens = []string{
	"?", "!", "imagine", "consider", "you", "we", "discover",
	"explore", "learn", "understand", "revolutionize",
}

// Scores holds the five heuristic sub-scores for one piece of content.
type Scores struct {
	Clarity    int `json:"clarity"`
	Structure  int `json:"structure"`
	Engagement int `json:"engagement"`
	Depth      int `json:"depth"`
	Formatting int `json:"formatting"`
}

// Score computes all five sub-scores for a text body. Deterministic,
// no external calls.
func Score(content string) Scores {
	return Scores{
		Clarity:    Clarity(content),
		Structure:  Structure(content),
		Engagement: Engagement(content),
		Depth:      Depth(content),
		Formatting: Formatting(content),
	}
}

// Average is the arithmetic mean of the five sub-scores, rounded to one
// decimal place.
func (s Scores) Average() float64 {
	sum := s.Clarity + s.Structure + s.Engagement + s.Depth + s.Formatting
	return math.Round(float64(sum)/5*10) / 10
}

// Clarity penalizes long sentences, missing headings and thin word counts.
func Clarity(content string) int {
	words := len(strings.Fields(content))
	breaks := len(sentenceBreakRe.FindAllString(content, -1))
	avgSentenceLength := float64(words) / float64(breaks+1)
	score := 5
	if avgSentenceLength > 25 {
		score--
	}
	if avgSentenceLength > 35 {
		score--
	}
	if !strings.Contains(content, "###") {
		score--
	}
	if words < 100 {
		score--
	}
	return clampMin(score, 1)
}

// Structure penalizes missing title markers, sections and paragraphs.
func Structure(content string) int {
	score := 5
	if !strings.HasPrefix(content, "*") {
		score--
	}
	if !strings.Contains(content, "###") {
		score -= 2
	}
	if !strings.Contains(content, "\n\n") {
		score--
	}
	if len(strings.Split(content, "\n\n")) < 3 {
		score--
	}
	return clampMin(score, 1)
}

// Engagement rewards rhetorical markers and direct-address words. Each
// of the eleven tokens adds half a point; the sum is rounded half to
// even before clamping.
func Engagement(content string) int {
	lower := strings.ToLower(content)
	score := 1.0
	for _, token := range engagementTokens {
		if strings.Contains(lower, token) {
			score += 0.5
		}
	}
	return clampMax(int(math.RoundToEven(score)), 5)
}

// Depth rewards length and the presence of numeric data.
func Depth(content string) int {
	words := len(strings.Fields(content))
	score := 1
	if words > 300 {
		score++
	}
	if words > 600 {
		score++
	}
	if words > 1000 {
		score++
	}
	if len(digitRunRe.FindAllString(content, -1)) > 5 {
		score++
	}
	return clampMax(score, 5)
}

// Formatting penalizes missing emphasis, headings, spacing and short
// line counts.
func Formatting(content string) int {
	score := 5
	if !strings.Contains(content, "*") {
		score--
	}
	if !strings.Contains(content, "###") {
		score--
	}
	if !strings.Contains(content, "\n\n") {
		score--
	}
	if len(strings.Split(content, "\n")) < 10 {
		score--
	}
	if !paragraphBreakRe.MatchString(content) {
		score--
	}
	return clampMin(score, 1)
}

func clampMin(v, floor int) int {
	if v < floor {
		return floor
	}
	return v
}

func clampMax(v, ceil int) int {
	if v > ceil {
		return ceil
	}
	return v
}
