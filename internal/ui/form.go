package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/promptdeck/promptdeck/internal/analyzer"
	"github.com/promptdeck/promptdeck/internal/clipboard"
	"github.com/promptdeck/promptdeck/internal/models"
	"github.com/promptdeck/promptdeck/internal/renderer"
)

// Playground is the interactive template editor: one text input per
// placeholder, with the rendered output and heuristic score updated on
// every keystroke.
type Playground struct {
	example   *models.Example
	variables []string
	inputs    []textinput.Model
	focused   int
	rendered  string
	score     models.ScoreResult
	status    string
	width     int
	height    int
}

// NewPlayground builds a playground for an example's template
func NewPlayground(example *models.Example, width, height int) *Playground {
	variables := renderer.ExtractVariables(example.Template)

	inputs := make([]textinput.Model, len(variables))
	for i, name := range variables {
		input := textinput.New()
		input.Placeholder = name
		input.Prompt = ""
		input.CharLimit = 0
		if i == 0 {
			input.Focus()
		}
		inputs[i] = input
	}

	p := &Playground{
		example:   example,
		variables: variables,
		inputs:    inputs,
		width:     width,
		height:    height,
	}
	p.refresh()
	return p
}

// SetSize updates the playground layout bounds
func (p *Playground) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Update handles a keystroke and recomputes the preview
func (p *Playground) Update(msg tea.KeyMsg) tea.Cmd {
	p.status = ""

	switch msg.String() {
	case "tab", "down":
		p.focusInput(p.focused + 1)
		return nil

	case "shift+tab", "up":
		p.focusInput(p.focused - 1)
		return nil

	case "ctrl+y":
		message, err := clipboard.CopyWithFallback(p.rendered)
		if err != nil {
			p.status = StyleError.Render("Copy failed: " + errorHandler.FormatError(err))
		} else {
			p.status = CreateStatus(message, "success")
		}
		return nil
	}

	var cmd tea.Cmd
	if len(p.inputs) > 0 {
		p.inputs[p.focused], cmd = p.inputs[p.focused].Update(msg)
	}
	p.refresh()
	return cmd
}

// focusInput moves focus to the input at index, wrapping around
func (p *Playground) focusInput(index int) {
	if len(p.inputs) == 0 {
		return
	}
	p.inputs[p.focused].Blur()
	p.focused = (index + len(p.inputs)) % len(p.inputs)
	p.inputs[p.focused].Focus()
}

// refresh recomputes the rendered output and score from current inputs.
// Bindings keep field order, so substitution order follows the form.
func (p *Playground) refresh() {
	bindings := models.NewBindings()
	for i, name := range p.variables {
		if value := p.inputs[i].Value(); value != "" {
			bindings.Set(name, value)
		}
	}
	p.rendered = renderer.RenderTemplate(p.example.Template, bindings)
	p.score = analyzer.ScorePrompt(p.rendered)
}

// View renders the playground
func (p *Playground) View() string {
	var b strings.Builder

	title := StyleTitle.Render("Playground: " + p.example.Name)
	badge := StyleScoreBadge.Render(fmt.Sprintf("score %d/100", p.score.Score))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Left, title, badge))
	b.WriteString("\n\n")

	if len(p.variables) == 0 {
		b.WriteString(StyleTextMuted.Render("  This template has no placeholders."))
		b.WriteString("\n")
	}
	for i, name := range p.variables {
		label := StyleFormLabel.Render(fmt.Sprintf("  {%s}", name))
		b.WriteString(label)
		b.WriteString("  ")
		b.WriteString(p.inputs[i].View())
		b.WriteString("\n")
	}

	contentWidth := p.width - 6
	if contentWidth < 20 {
		contentWidth = 20
	}

	b.WriteString("\n")
	b.WriteString(StylePane.Width(contentWidth).Render(wordwrap.String(p.rendered, contentWidth-2)))
	b.WriteString("\n")
	b.WriteString(p.feedbackView(contentWidth))

	footer := CreateHelp("tab: next field • ctrl+y: copy result • esc: back", p.width)
	if p.status != "" {
		footer = p.status
	}
	b.WriteString("\n")
	b.WriteString(footer)

	return b.String()
}

// feedbackView lists score strengths and improvements
func (p *Playground) feedbackView(width int) string {
	var b strings.Builder
	for _, s := range p.score.Strengths {
		b.WriteString(StyleSuccess.Render("✓"))
		b.WriteString(" " + wordwrap.String(s, width-4) + "\n")
	}
	for _, s := range p.score.Improvements {
		b.WriteString(StyleWarning.Render("→"))
		b.WriteString(" " + wordwrap.String(s, width-4) + "\n")
	}
	return b.String()
}
