package analyzer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScorePromptEmptyTemplate(t *testing.T) {
	result := ScorePrompt("")

	if result.Score != 50 {
		t.Errorf("empty template score = %d, want 50", result.Score)
	}
	if len(result.Strengths) != 0 {
		t.Errorf("empty template strengths = %v, want none", result.Strengths)
	}
	// All four checks miss, plus the brevity suggestion
	if len(result.Improvements) != 5 {
		t.Errorf("empty template improvements = %d entries, want 5", len(result.Improvements))
	}
	if result.Strengths == nil || result.Improvements == nil {
		t.Error("feedback slices must be non-nil for JSON encoding")
	}
}

func TestScorePromptFullMarks(t *testing.T) {
	// Hits all four keyword checks, has a placeholder, and is over 100 chars
	template := `System: You are a careful reviewer.
---
Review {code} and respond with JSON.
Rules: you must never invent APIs.`

	result := ScorePrompt(template)

	if result.Score != 100 {
		t.Errorf("score = %d, want 100 (50 + 4*10 + 5 + 5 clamps)", result.Score)
	}
	if len(result.Strengths) != 6 {
		t.Errorf("strengths = %d entries, want 6:\n%s", len(result.Strengths), strings.Join(result.Strengths, "\n"))
	}
	if len(result.Improvements) != 0 {
		t.Errorf("improvements = %v, want none", result.Improvements)
	}
}

func TestScorePromptRange(t *testing.T) {
	templates := []string{
		"",
		"short",
		"Hello {name}",
		"system: role: format: output: json never must always --- ### === ``` {a} " + strings.Repeat("x", 200),
		strings.Repeat("word ", 100),
	}

	for _, template := range templates {
		result := ScorePrompt(template)
		if result.Score < 50 || result.Score > 100 {
			t.Errorf("ScorePrompt(%.30q).Score = %d, outside [50,100]", template, result.Score)
		}
	}
}

func TestScorePromptChecks(t *testing.T) {
	tests := []struct {
		name      string
		template  string
		wantScore int
		strength  string
	}{
		{
			name:      "role framing",
			template:  "System: you are a helpful assistant for tax law questions",
			wantScore: 60,
			strength:  "Separates system instructions from user input",
		},
		{
			name:      "delimiters via markdown headers",
			template:  "### Context\nsome background details about the task go here",
			wantScore: 60,
			strength:  "Uses structural delimiters to organize sections",
		},
		{
			name:      "delimiters via xml tags",
			template:  "<context>some background details about the task</context>",
			wantScore: 60,
			strength:  "Uses structural delimiters to organize sections",
		},
		{
			name:      "output format",
			template:  "Respond with a short summary of the given article text",
			wantScore: 60,
			strength:  "Specifies the expected output format",
		},
		{
			name:      "constraints",
			template:  "You must keep the answer under three sentences total",
			wantScore: 60,
			strength:  "States explicit constraints or rules",
		},
		{
			name:      "placeholder bonus",
			template:  "Summarize the article about {topic} for a general reader",
			wantScore: 55,
			strength:  "Uses {variable} placeholders for reusability",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScorePrompt(tt.template)
			if result.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", result.Score, tt.wantScore)
			}
			if !contains(result.Strengths, tt.strength) {
				t.Errorf("strengths %v missing %q", result.Strengths, tt.strength)
			}
		})
	}
}

func TestScorePromptCaseInsensitive(t *testing.T) {
	lower := ScorePrompt("system: do the thing with the data provided below")
	upper := ScorePrompt("SYSTEM: DO THE THING WITH THE DATA PROVIDED BELOW")

	if diff := cmp.Diff(lower, upper); diff != "" {
		t.Errorf("case changed the result (-lower +upper):\n%s", diff)
	}
}

func TestScorePromptLength(t *testing.T) {
	brief := ScorePrompt("tiny prompt")
	if !contains(brief.Improvements, "Prompt is very brief; add more context and detail") {
		t.Errorf("brief template missing brevity suggestion: %v", brief.Improvements)
	}

	// 30..100 chars: neither bonus nor suggestion
	medium := ScorePrompt(strings.Repeat("a", 50))
	if medium.Score != 50 {
		t.Errorf("medium-length score = %d, want 50", medium.Score)
	}
	if contains(medium.Improvements, "Prompt is very brief; add more context and detail") {
		t.Error("medium-length template should not get the brevity suggestion")
	}

	long := ScorePrompt(strings.Repeat("a", 150))
	if long.Score != 55 {
		t.Errorf("long template score = %d, want 55", long.Score)
	}
	if !contains(long.Strengths, "Detailed prompt with sufficient context") {
		t.Errorf("long template missing length strength: %v", long.Strengths)
	}
}

// Missing placeholders cost the bonus but produce no improvement entry
func TestScorePromptPlaceholderAbsenceIsSilent(t *testing.T) {
	result := ScorePrompt(strings.Repeat("plain words ", 10))
	for _, s := range result.Improvements {
		if strings.Contains(strings.ToLower(s), "placeholder") {
			t.Errorf("placeholder absence should not be called out, got %q", s)
		}
	}
}

func TestScorePromptFeedbackOrder(t *testing.T) {
	// Misses every check: improvements must appear in check order
	result := ScorePrompt(strings.Repeat("neutral words here ", 5))

	want := []string{
		"Consider adding a system/role section to set behavior up front",
		"Add delimiters (---, ###, or XML-style tags) to separate sections",
		"Describe the output format you expect (e.g. JSON, a list, a table)",
		"Add explicit constraints (must/never/only) to bound the response",
	}
	if diff := cmp.Diff(want, result.Improvements); diff != "" {
		t.Errorf("improvement order mismatch (-want +got):\n%s", diff)
	}
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
