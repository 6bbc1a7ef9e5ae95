// Package site renders the example catalog to a static HTML site: an index
// page grouped by category plus one page per example, with each example's
// markdown body converted to sanitized HTML and its heuristic score shown
// alongside the template.
package site

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/promptdeck/promptdeck/internal/analyzer"
	"github.com/promptdeck/promptdeck/internal/models"
	"github.com/promptdeck/promptdeck/internal/renderer"
)

// Exporter writes a static HTML rendering of the catalog
type Exporter struct {
	markdown  goldmark.Markdown
	sanitizer *bluemonday.Policy
	index     *template.Template
	page      *template.Template
}

// NewExporter creates a new static site exporter
func NewExporter() (*Exporter, error) {
	index, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse index template: %w", err)
	}
	page, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}

	return &Exporter{
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(goldmarkhtml.WithHardWraps()),
		),
		sanitizer: bluemonday.UGCPolicy(),
		index:     index,
		page:      page,
	}, nil
}

// examplePage is the template data for a single example page
type examplePage struct {
	Example   *models.Example
	BodyHTML  template.HTML
	Variables []string
	Score     models.ScoreResult
}

// categoryGroup is one category section on the index page
type categoryGroup struct {
	Name     string
	Examples []*models.Example
}

// Export writes the site for the given examples into outDir
func (e *Exporter) Export(examples []*models.Example, outDir string) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := e.writeIndex(examples, outDir); err != nil {
		return err
	}

	for _, example := range examples {
		if err := e.writePage(example, outDir); err != nil {
			return err
		}
	}

	return nil
}

// writeIndex renders the catalog index grouped by category
func (e *Exporter) writeIndex(examples []*models.Example, outDir string) error {
	groups := make(map[string][]*models.Example)
	for _, example := range examples {
		category := example.Category
		if category == "" {
			category = "uncategorized"
		}
		groups[category] = append(groups[category], example)
	}

	var names []string
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	var ordered []categoryGroup
	for _, name := range names {
		sort.Slice(groups[name], func(i, j int) bool {
			return groups[name][i].Slug < groups[name][j].Slug
		})
		ordered = append(ordered, categoryGroup{Name: name, Examples: groups[name]})
	}

	var buf bytes.Buffer
	if err := e.index.Execute(&buf, ordered); err != nil {
		return fmt.Errorf("failed to render index: %w", err)
	}

	return os.WriteFile(filepath.Join(outDir, "index.html"), buf.Bytes(), 0644)
}

// writePage renders one example page
func (e *Exporter) writePage(example *models.Example, outDir string) error {
	bodyHTML, err := e.renderMarkdown(example.Body)
	if err != nil {
		return fmt.Errorf("failed to render body of %s: %w", example.Slug, err)
	}

	data := examplePage{
		Example:   example,
		BodyHTML:  bodyHTML,
		Variables: renderer.ExtractVariables(example.Template),
		Score:     analyzer.ScorePrompt(example.Template),
	}

	var buf bytes.Buffer
	if err := e.page.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render page for %s: %w", example.Slug, err)
	}

	name := fmt.Sprintf("%s.html", example.Slug)
	return os.WriteFile(filepath.Join(outDir, name), buf.Bytes(), 0644)
}

// renderMarkdown converts markdown to sanitized HTML
func (e *Exporter) renderMarkdown(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := e.markdown.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	clean := e.sanitizer.SanitizeBytes(buf.Bytes())
	return template.HTML(clean), nil
}
