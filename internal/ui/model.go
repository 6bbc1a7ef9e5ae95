// Package ui implements the interactive catalog browser: a filterable list
// of examples, a detail view with the rendered markdown body, and a template
// playground with live substitution and scoring.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/promptdeck/promptdeck/internal/analyzer"
	"github.com/promptdeck/promptdeck/internal/clipboard"
	"github.com/promptdeck/promptdeck/internal/errors"
	"github.com/promptdeck/promptdeck/internal/models"
	"github.com/promptdeck/promptdeck/internal/service"
)

// errorHandler formats errors for the one-line status footer
var errorHandler = errors.NewTUIErrorHandler(false)

type viewState int

const (
	viewBrowse viewState = iota
	viewDetail
	viewPlayground
)

// Model is the top-level bubbletea model for the catalog browser
type Model struct {
	service    *service.Service
	state      viewState
	list       list.Model
	viewport   viewport.Model
	playground *Playground
	current    *models.Example
	markdown   *glamour.TermRenderer
	status     string
	width      int
	height     int
}

// NewModel creates the browser model with the catalog loaded
func NewModel(svc *service.Service) (*Model, error) {
	initializeColors()

	examples, err := svc.ListExamples()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	items := make([]list.Item, len(examples))
	for i, e := range examples {
		items[i] = e
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(ColorPrimary).
		BorderForeground(ColorPrimary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(ColorTextMuted).
		BorderForeground(ColorPrimary)

	l := list.New(items, delegate, 0, 0)
	l.Title = "promptdeck"
	l.Styles.Title = StyleTitle
	l.SetShowHelp(false)

	markdown, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	return &Model{
		service:  svc,
		state:    viewBrowse,
		list:     l,
		viewport: viewport.New(0, 0),
		markdown: markdown,
	}, nil
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-2)
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 4
		if m.playground != nil {
			m.playground.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case viewBrowse:
			return m.updateBrowse(msg)
		case viewDetail:
			return m.updateDetail(msg)
		case viewPlayground:
			return m.updatePlayground(msg)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the filter input is active, all keys belong to the list
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	m.status = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "enter":
		if example := m.selectedExample(); example != nil {
			if err := m.openDetail(example.Slug); err != nil {
				m.status = StyleError.Render(errorHandler.FormatError(err))
			}
		}
		return m, nil

	case "p":
		if example := m.selectedExample(); example != nil {
			if err := m.openPlayground(example.Slug); err != nil {
				m.status = StyleError.Render(errorHandler.FormatError(err))
			}
		}
		return m, nil

	case "c":
		if example := m.selectedExample(); example != nil {
			m.copyTemplate(example.Slug)
		}
		return m, nil

	case "R":
		if err := m.service.ReloadExamples(); err != nil {
			m.status = StyleError.Render(errorHandler.FormatError(err))
			return m, nil
		}
		examples, err := m.service.ListExamples()
		if err != nil {
			m.status = StyleError.Render(errorHandler.FormatError(err))
			return m, nil
		}
		items := make([]list.Item, len(examples))
		for i, e := range examples {
			items[i] = e
		}
		m.status = CreateStatus("Catalog reloaded", "success")
		return m, m.list.SetItems(items)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc", "backspace":
		m.state = viewBrowse
		return m, nil

	case "p":
		if err := m.openPlayground(m.current.Slug); err != nil {
			m.status = StyleError.Render(errorHandler.FormatError(err))
		}
		return m, nil

	case "c":
		m.copyTemplate(m.current.Slug)
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) updatePlayground(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.playground = nil
		if m.current != nil {
			m.state = viewDetail
		} else {
			m.state = viewBrowse
		}
		return m, nil
	}

	cmd := m.playground.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m *Model) View() string {
	switch m.state {
	case viewDetail:
		return m.detailView()
	case viewPlayground:
		return m.playground.View()
	default:
		return m.browseView()
	}
}

func (m *Model) browseView() string {
	footer := CreateHelp("enter: view • p: playground • c: copy • /: filter • R: reload • q: quit", m.width)
	if m.status != "" {
		footer = m.status
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.list.View(), footer)
}

func (m *Model) detailView() string {
	header := StyleTitle.Render(m.current.Name)
	score := analyzer.ScorePrompt(m.current.Template)
	badge := StyleScoreBadge.Render(fmt.Sprintf("score %d/100", score.Score))
	meta := StyleTextMuted.Render(fmt.Sprintf(" %s · %s ", m.current.Category, m.current.Difficulty))

	footer := CreateHelp("esc: back • p: playground • c: copy template • q: quit", m.width)
	if m.status != "" {
		footer = m.status
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Left, header, badge, meta),
		m.viewport.View(),
		footer,
	)
}

// selectedExample returns the highlighted list entry
func (m *Model) selectedExample() *models.Example {
	item := m.list.SelectedItem()
	if item == nil {
		return nil
	}
	example, ok := item.(*models.Example)
	if !ok {
		return nil
	}
	return example
}

// openDetail loads an example's full content and renders it for the viewport
func (m *Model) openDetail(slug string) error {
	example, err := m.service.GetExample(slug)
	if err != nil {
		return err
	}

	var doc strings.Builder
	doc.WriteString(example.Summary)
	doc.WriteString("\n\n## Template\n\n```\n")
	doc.WriteString(example.Template)
	doc.WriteString("\n```\n\n")
	doc.WriteString(example.Body)
	if len(example.Pitfalls) > 0 {
		doc.WriteString("\n\n## Pitfalls\n\n")
		for _, p := range example.Pitfalls {
			doc.WriteString("- " + p + "\n")
		}
	}
	if len(example.Checklist) > 0 {
		doc.WriteString("\n\n## Checklist\n\n")
		for _, c := range example.Checklist {
			doc.WriteString("- " + c + "\n")
		}
	}

	rendered, err := m.markdown.Render(doc.String())
	if err != nil {
		rendered = doc.String()
	}

	m.current = example
	m.viewport.SetContent(rendered)
	m.viewport.GotoTop()
	m.state = viewDetail
	return nil
}

// openPlayground starts the variable playground for an example
func (m *Model) openPlayground(slug string) error {
	example, err := m.service.GetExample(slug)
	if err != nil {
		return err
	}

	m.current = example
	m.playground = NewPlayground(example, m.width, m.height)
	m.state = viewPlayground
	return nil
}

// copyTemplate puts an example's raw template on the clipboard
func (m *Model) copyTemplate(slug string) {
	example, err := m.service.GetExample(slug)
	if err != nil {
		m.status = StyleError.Render(errorHandler.FormatError(err))
		return
	}
	message, err := clipboard.CopyWithFallback(example.Template)
	if err != nil {
		m.status = StyleError.Render("Copy failed: " + errorHandler.FormatError(err))
		return
	}
	m.status = CreateStatus(message, "success")
}
