package models

import (
	"strings"
	"time"
)

// Difficulty levels an example can be tagged with
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Difficulties lists the known difficulty levels in display order
var Difficulties = []string{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}

// Example represents a worked prompt-engineering example with YAML frontmatter
// and a markdown body explaining the technique
type Example struct {
	// Frontmatter fields. JSON names follow the API wire shape so CLI
	// output and server responses agree.
	Slug       string    `yaml:"slug" json:"slug"`
	Name       string    `yaml:"title" json:"title"`
	Summary    string    `yaml:"description" json:"description"`
	Category   string    `yaml:"category" json:"category"`
	Difficulty string    `yaml:"difficulty" json:"difficulty"`
	Template   string    `yaml:"template" json:"template"`
	Pitfalls   []string  `yaml:"pitfalls,omitempty" json:"pitfalls,omitempty"`
	Checklist  []string  `yaml:"checklist,omitempty" json:"checklist,omitempty"`
	CreatedAt  time.Time `yaml:"created_at" json:"created_at"`
	UpdatedAt  time.Time `yaml:"updated_at" json:"updated_at"`

	// Content fields
	Body        string `yaml:"-" json:"body,omitempty"` // The markdown content after frontmatter
	FilePath    string `yaml:"-" json:"-"`              // Path to the file
	ContentHash string `yaml:"-" json:"-"`              // SHA256 hash of the file content
}

// Implement list.Item interface for bubbles list component

// FilterValue returns the value used for filtering in lists
func (e Example) FilterValue() string {
	return cleanString(e.Name)
}

// Title satisfies the list.Item interface
func (e Example) Title() string {
	if e.Name != "" {
		return cleanString(e.Name)
	}
	return cleanString(e.Slug)
}

// Description satisfies the list.Item interface
func (e Example) Description() string {
	var parts []string

	// Add summary if available (truncate long summaries)
	if e.Summary != "" {
		summary := cleanString(e.Summary)
		maxSummaryLength := 60
		if len(summary) > maxSummaryLength {
			summary = summary[:maxSummaryLength-3] + "..."
		}
		if summary != "" {
			parts = append(parts, summary)
		}
	}

	if e.Category != "" {
		parts = append(parts, "Category: "+cleanString(e.Category))
	}

	if e.Difficulty != "" {
		parts = append(parts, cleanString(e.Difficulty))
	}

	// Join all parts with a bullet separator
	result := ""
	for i, part := range parts {
		cleanPart := cleanString(part)
		if cleanPart != "" {
			if i > 0 {
				result += " • "
			}
			result += cleanPart
		}
	}

	// Final truncation so the line fits a terminal row with margins
	maxTotalLength := 100
	if len(result) > maxTotalLength {
		result = result[:maxTotalLength-3] + "..."
	}

	return cleanString(result)
}

// cleanString removes problematic characters that might cause rendering issues
func cleanString(s string) string {
	if s == "" {
		return ""
	}

	// Remove any control characters, newlines, tabs that could break rendering
	cleaned := ""
	for _, r := range s {
		if r == '\n' || r == '\r' || r == '\t' {
			cleaned += " "
		} else if r >= 32 && r != 127 { // Keep printable ASCII + unicode
			cleaned += string(r)
		}
	}

	// Collapse multiple spaces
	for cleaned != strings.ReplaceAll(cleaned, "  ", " ") {
		cleaned = strings.ReplaceAll(cleaned, "  ", " ")
	}

	return strings.TrimSpace(cleaned)
}
