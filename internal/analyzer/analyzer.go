// Package analyzer scores prompt templates against a fixed set of
// prompt-engineering heuristics.
//
// The score starts at a base of 50 and only ever goes up: each check that
// matches adds its weight and records a strength, each check that misses
// records an improvement suggestion instead. The result is clamped to 100.
// Scoring is a pure single pass over the text and is cheap enough to run on
// every keystroke in the playground.
package analyzer

import (
	"regexp"
	"strings"

	"github.com/promptdeck/promptdeck/internal/models"
)

const (
	baseScore = 50
	maxScore  = 100

	keywordWeight     = 10
	placeholderWeight = 5
	lengthWeight      = 5

	longPromptThreshold  = 100
	briefPromptThreshold = 30
)

var (
	delimiterPattern   = regexp.MustCompile("---|###|===|<[^>]+>|```")
	placeholderPattern = regexp.MustCompile(`\{\w+\}`)
)

// check is a single boolean heuristic with its feedback messages
type check struct {
	match       func(template, lower string) bool
	strength    string
	improvement string
}

// containsAny reports whether any keyword occurs in the lowercased template
func containsAny(lower string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// The four weighted checks, in the order their feedback is reported
var checks = []check{
	{
		match: func(_, lower string) bool {
			return containsAny(lower, "system:", "role:")
		},
		strength:    "Separates system instructions from user input",
		improvement: "Consider adding a system/role section to set behavior up front",
	},
	{
		match: func(template, _ string) bool {
			return delimiterPattern.MatchString(template)
		},
		strength:    "Uses structural delimiters to organize sections",
		improvement: "Add delimiters (---, ###, or XML-style tags) to separate sections",
	},
	{
		match: func(_, lower string) bool {
			return containsAny(lower, "format:", "output:", "respond with", "json", "structure")
		},
		strength:    "Specifies the expected output format",
		improvement: "Describe the output format you expect (e.g. JSON, a list, a table)",
	},
	{
		match: func(_, lower string) bool {
			return containsAny(lower, "never", "don't", "only", "must", "always", "rules:", "important:")
		},
		strength:    "States explicit constraints or rules",
		improvement: "Add explicit constraints (must/never/only) to bound the response",
	},
}

// ScorePrompt evaluates a prompt template and returns a bounded quality score
// with human-readable feedback. It is a total function: every input,
// including the empty string, produces a result. The score is always within
// [50,100] since no check subtracts.
func ScorePrompt(template string) models.ScoreResult {
	result := models.ScoreResult{
		Score:        baseScore,
		Strengths:    []string{},
		Improvements: []string{},
	}

	lower := strings.ToLower(template)

	for _, c := range checks {
		if c.match(template, lower) {
			result.Score += keywordWeight
			result.Strengths = append(result.Strengths, c.strength)
		} else {
			result.Improvements = append(result.Improvements, c.improvement)
		}
	}

	// Placeholder usage is rewarded but its absence is not called out
	if placeholderPattern.MatchString(template) {
		result.Score += placeholderWeight
		result.Strengths = append(result.Strengths, "Uses {variable} placeholders for reusability")
	}

	if len(template) > longPromptThreshold {
		result.Score += lengthWeight
		result.Strengths = append(result.Strengths, "Detailed prompt with sufficient context")
	} else if len(template) < briefPromptThreshold {
		result.Improvements = append(result.Improvements, "Prompt is very brief; add more context and detail")
	}

	if result.Score > maxScore {
		result.Score = maxScore
	}

	return result
}
