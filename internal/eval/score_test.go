package eval

import (
	"strings"
	"testing"
)

func TestScoreMinimalText(t *testing.T) {
	content := "Hello world."

	got := Score(content)
	want := Scores{Clarity: 3, Structure: 1, Engagement: 1, Depth: 1, Formatting: 1}
	if got != want {
		t.Fatalf("Score(%q) = %+v, want %+v", content, got, want)
	}
	if avg := got.Average(); avg != 1.4 {
		t.Fatalf("Average() = %v, want 1.4", avg)
	}
}

func TestScoreRichDocument(t *testing.T) {
	para := strings.TrimSpace(strings.Repeat("The quick brown fox jumps over the lazy dog today. ", 30))
	content := "* A Title Line\n\n" +
		"### Section One\n\n" + para + "\n\n" +
		"### Section Two\n\n" + para + "\n\n" +
		"### Section Three\n\n" + para + "\n\n" +
		"### Section Four\n\n" + para + "\n\n" +
		"Imagine you and we discover more. Explore, learn, understand and revolutionize everything? Consider this!\n\n" +
		"Key numbers: 10 20 30 40 50 60 70.\n"

	got := Score(content)
	want := Scores{Clarity: 5, Structure: 5, Engagement: 5, Depth: 5, Formatting: 5}
	if got != want {
		t.Fatalf("Score(rich) = %+v, want %+v", got, want)
	}
	if avg := got.Average(); avg != 5.0 {
		t.Fatalf("Average() = %v, want 5.0", avg)
	}
}

func TestEngagementRoundsHalfToEven(t *testing.T) {
	// three tokens: 1 + 1.5 = 2.5 rounds down to 2
	if got := Engagement("you ? !"); got != 2 {
		t.Fatalf("Engagement(3 tokens) = %d, want 2", got)
	}
	// five tokens: 1 + 2.5 = 3.5 rounds up to 4
	if got := Engagement("you we imagine ? !"); got != 4 {
		t.Fatalf("Engagement(5 tokens) = %d, want 4", got)
	}
}

func TestDepthCountsDigitRuns(t *testing.T) {
	// six digit runs push depth from 1 to 2 on an otherwise short text
	if got := Depth("a 1 b 2 c 3 d 4 e 5 f 6"); got != 2 {
		t.Fatalf("Depth = %d, want 2", got)
	}
	if got := Depth("a 1 b 2 c 3 d 4 e 5"); got != 1 {
		t.Fatalf("Depth(5 runs) = %d, want 1", got)
	}
}

func TestScoreDeterministic(t *testing.T) {
	content := "### Title\n\nSome body text with numbers 1 2 3.\n\nAnother paragraph, you see!"
	first := Score(content)
	for i := 0; i < 10; i++ {
		if again := Score(content); again != first {
			t.Fatalf("Score not deterministic: %+v vs %+v", first, again)
		}
	}
}

func TestScoresAreClamped(t *testing.T) {
	for _, content := range []string{"", "word", "!!!???", strings.Repeat("discover explore learn ", 100)} {
		s := Score(content)
		for name, v := range map[string]int{
			"clarity": s.Clarity, "structure": s.Structure, "engagement": s.Engagement,
			"depth": s.Depth, "formatting": s.Formatting,
		} {
			if v < 1 || v > 5 {
				t.Fatalf("%s score %d out of [1,5] for %q", name, v, content)
			}
		}
	}
}
