// Package importer brings loose markdown prompt files into the catalog.
//
// Source files may already carry promptdeck frontmatter, in which case it is
// honored; plain markdown files get a slug from the filename, a title from
// the first H1, and their whole body as the template.
package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/promptdeck/promptdeck/internal/models"
	"github.com/promptdeck/promptdeck/internal/storage"
)

// MarkdownImporter imports a directory of markdown files as catalog examples
type MarkdownImporter struct {
	store *storage.Storage
}

// NewMarkdownImporter creates a new markdown importer
func NewMarkdownImporter(store *storage.Storage) *MarkdownImporter {
	return &MarkdownImporter{store: store}
}

// ImportOptions configures the import process
type ImportOptions struct {
	Category          string // Category assigned to imported examples without one
	Difficulty        string // Difficulty assigned to imported examples without one
	DryRun            bool   // Preview what would be imported without writing
	OverwriteExisting bool   // Overwrite examples with the same slug
}

// ImportResult contains the results of an import operation
type ImportResult struct {
	Imported []*models.Example // Examples written (or previewed in dry-run)
	Skipped  []string          // Paths skipped because their slug already exists
	Errors   []error           // Any errors encountered during import
}

var h1Pattern = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// Import scans dir recursively for .md files and imports each as an example
func (i *MarkdownImporter) Import(dir string, options ImportOptions) (*ImportResult, error) {
	result := &ImportResult{
		Imported: []*models.Example{},
		Skipped:  []string{},
		Errors:   []error{},
	}

	existing, err := i.existingSlugs()
	if err != nil {
		return nil, fmt.Errorf("failed to list existing examples: %w", err)
	}

	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}

		example, err := i.importFile(path, options)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("failed to import %s: %w", path, err))
			return nil // Continue walking
		}

		if existing[example.Slug] && !options.OverwriteExisting {
			result.Skipped = append(result.Skipped, path)
			return nil
		}

		if !options.DryRun {
			if err := i.store.SaveExample(example); err != nil {
				result.Errors = append(result.Errors, fmt.Errorf("failed to save %s: %w", example.Slug, err))
				return nil
			}
		}

		existing[example.Slug] = true
		result.Imported = append(result.Imported, example)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// importFile converts a single markdown file into an example
func (i *MarkdownImporter) importFile(path string, options ImportOptions) (*models.Example, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Files with promptdeck frontmatter are taken as-is
	if example, err := storage.ParseExampleFile(content); err == nil && example.Slug != "" {
		i.applyDefaults(example, options)
		example.FilePath = storage.ExamplePath(example.Category, example.Slug)
		return example, nil
	}

	// Plain markdown: derive metadata from the file itself
	body := strings.TrimSpace(string(content))
	slug := slugify(strings.TrimSuffix(filepath.Base(path), ".md"))

	title := slug
	if match := h1Pattern.FindStringSubmatch(body); match != nil {
		title = strings.TrimSpace(match[1])
	}

	now := time.Now()
	example := &models.Example{
		Slug:      slug,
		Name:      title,
		Template:  body,
		CreatedAt: now,
		UpdatedAt: now,
	}
	i.applyDefaults(example, options)
	example.FilePath = storage.ExamplePath(example.Category, example.Slug)

	return example, nil
}

// applyDefaults fills in category and difficulty from import options
func (i *MarkdownImporter) applyDefaults(example *models.Example, options ImportOptions) {
	if example.Category == "" {
		example.Category = options.Category
	}
	if example.Difficulty == "" {
		example.Difficulty = options.Difficulty
	}
	if example.CreatedAt.IsZero() {
		example.CreatedAt = time.Now()
	}
	if example.UpdatedAt.IsZero() {
		example.UpdatedAt = example.CreatedAt
	}
}

// existingSlugs returns the set of slugs already in the catalog
func (i *MarkdownImporter) existingSlugs() (map[string]bool, error) {
	examples, err := i.store.ListExamples()
	if err != nil {
		return nil, err
	}

	slugs := make(map[string]bool, len(examples))
	for _, e := range examples {
		slugs[e.Slug] = true
	}
	return slugs, nil
}

// slugify converts a filename into a catalog slug
func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // Suppress leading hyphens
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
