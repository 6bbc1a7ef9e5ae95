package renderer

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/promptdeck/promptdeck/internal/models"
)

// placeholderPattern matches {name}-style substitution points. Only word
// characters are allowed between the braces, so `{}` and `{a b}` are plain
// text, not variables.
var placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)

// ExtractVariables returns the unique placeholder names in template, in
// first-seen order. A template with no placeholders yields an empty slice.
func ExtractVariables(template string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(template, -1)

	var names []string
	seen := make(map[string]bool)
	for _, match := range matches {
		name := match[1]
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	return names
}

// RenderTemplate substitutes bound variable values into template. Each bound
// name gets a single non-recursive pass over the whole document, applied in
// binding insertion order; substituted values are never re-scanned for
// placeholders. Unbound placeholders are left as-is.
func RenderTemplate(template string, bindings *models.Bindings) string {
	result := template
	for _, name := range bindings.Names() {
		result = strings.ReplaceAll(result, "{"+name+"}", bindings.Get(name))
	}
	return result
}

// Renderer renders a catalog example's template
type Renderer struct {
	example *models.Example
}

// NewRenderer creates a new renderer instance
func NewRenderer(example *models.Example) *Renderer {
	return &Renderer{example: example}
}

// RenderText renders the example's template as plain text with the given
// variable bindings applied
func (r *Renderer) RenderText(bindings *models.Bindings) string {
	return RenderTemplate(r.example.Template, bindings)
}

// RenderJSON renders the example's template as a JSON message array for LLM APIs
func (r *Renderer) RenderJSON(bindings *models.Bindings) (string, error) {
	text := r.RenderText(bindings)

	messages := []Message{
		{
			Role:    "user",
			Content: text,
		},
	}

	jsonBytes, err := json.MarshalIndent(messages, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal to JSON: %w", err)
	}

	return string(jsonBytes), nil
}

// Message represents a chat message for LLM APIs
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
