package renderer

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/promptdeck/promptdeck/internal/models"
)

func TestExtractVariables(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     []string
	}{
		{
			name:     "single variable",
			template: "Hello {name}",
			want:     []string{"name"},
		},
		{
			name:     "duplicates keep first-seen order",
			template: "{a} {b} {a}",
			want:     []string{"a", "b"},
		},
		{
			name:     "order follows appearance",
			template: "{second} comes after {first}? No: {second} is first here",
			want:     []string{"second", "first"},
		},
		{
			name:     "no placeholders",
			template: "plain text without variables",
			want:     nil,
		},
		{
			name:     "empty braces are literal",
			template: "a {} b",
			want:     nil,
		},
		{
			name:     "spaces inside braces are literal",
			template: "a {not a var} b {ok}",
			want:     []string{"ok"},
		},
		{
			name:     "unclosed brace is literal",
			template: "a {open and {closed}",
			want:     []string{"closed"},
		},
		{
			name:     "underscores and digits allowed",
			template: "{user_name} {step2}",
			want:     []string{"user_name", "step2"},
		},
		{
			name:     "empty template",
			template: "",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractVariables(tt.template)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ExtractVariables(%q) mismatch (-want +got):\n%s", tt.template, diff)
			}
		})
	}
}

func TestRenderTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		bindings *models.Bindings
		want     string
	}{
		{
			name:     "simple substitution",
			template: "Hello {name}!",
			bindings: models.NewBindings().Set("name", "Ada"),
			want:     "Hello Ada!",
		},
		{
			name:     "unbound placeholders untouched",
			template: "Hello {name}, welcome to {place}",
			bindings: models.NewBindings().Set("name", "Ada"),
			want:     "Hello Ada, welcome to {place}",
		},
		{
			name:     "all occurrences replaced",
			template: "{x} and {x} and {x}",
			bindings: models.NewBindings().Set("x", "y"),
			want:     "y and y and y",
		},
		{
			name:     "empty bindings are identity",
			template: "Hello {name}",
			bindings: models.NewBindings(),
			want:     "Hello {name}",
		},
		{
			name:     "binding a name the template lacks is a no-op",
			template: "Hello {name}",
			bindings: models.NewBindings().Set("other", "value"),
			want:     "Hello {name}",
		},
		{
			name:     "empty value erases the placeholder",
			template: "a{gap}b",
			bindings: models.NewBindings().Set("gap", ""),
			want:     "ab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderTemplate(tt.template, tt.bindings)
			if got != tt.want {
				t.Errorf("RenderTemplate(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

// Substituted values are not re-scanned: a value containing placeholder
// syntax survives only if its variable was already substituted earlier in
// insertion order.
func TestRenderTemplateInsertionOrder(t *testing.T) {
	template := "{a}"

	first := models.NewBindings()
	first.Set("a", "{b}")
	first.Set("b", "deep")
	if got := RenderTemplate(template, first); got != "deep" {
		t.Errorf("a-then-b: got %q, want %q", got, "deep")
	}

	second := models.NewBindings()
	second.Set("b", "deep")
	second.Set("a", "{b}")
	if got := RenderTemplate(template, second); got != "{b}" {
		t.Errorf("b-then-a: got %q, want %q", got, "{b}")
	}
}

func TestRenderTemplateIdempotentWithoutPlaceholderValues(t *testing.T) {
	bindings := models.NewBindings().Set("name", "Ada").Set("task", "review")
	template := "Hi {name}, please {task}."

	once := RenderTemplate(template, bindings)
	twice := RenderTemplate(once, bindings)
	if once != twice {
		t.Errorf("render not idempotent: %q vs %q", once, twice)
	}
}

func TestRenderJSON(t *testing.T) {
	example := &models.Example{
		Slug:     "greeting",
		Template: "Hello {name}",
	}

	out, err := NewRenderer(example).RenderJSON(models.NewBindings().Set("name", "Ada"))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var messages []Message
	if err := json.Unmarshal([]byte(out), &messages); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(messages))
	}
	if messages[0].Role != "user" {
		t.Errorf("role = %q, want %q", messages[0].Role, "user")
	}
	if messages[0].Content != "Hello Ada" {
		t.Errorf("content = %q, want %q", messages[0].Content, "Hello Ada")
	}
}
