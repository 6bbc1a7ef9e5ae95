package service

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/promptdeck/promptdeck/internal/analyzer"
	"github.com/promptdeck/promptdeck/internal/content"
	"github.com/promptdeck/promptdeck/internal/errors"
	"github.com/promptdeck/promptdeck/internal/models"
	"github.com/promptdeck/promptdeck/internal/renderer"
	"github.com/promptdeck/promptdeck/internal/storage"
	"github.com/promptdeck/promptdeck/internal/validation"
	"github.com/sahilm/fuzzy"
)

// Service provides business logic for the example catalog
type Service struct {
	storage  *storage.Storage
	examples []*models.Example // Cached examples for fast access
}

// NewService creates a new service instance
func NewService() (*Service, error) {
	// Check for custom directory from environment
	rootPath := os.Getenv("PROMPTDECK_DIR")
	store, err := storage.NewStorage(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	return &Service{
		storage: store,
	}, nil
}

// NewServiceWithStorage creates a service over an existing storage, used by tests
func NewServiceWithStorage(store *storage.Storage) *Service {
	return &Service{storage: store}
}

// InitLibrary initializes a new example library and installs the embedded
// starter examples
func (s *Service) InitLibrary() error {
	if err := s.storage.InitLibrary(); err != nil {
		return err
	}
	installed, err := content.Install(s.storage.GetBaseDir())
	if err != nil {
		return fmt.Errorf("failed to install starter examples: %w", err)
	}
	if installed > 0 {
		fmt.Printf("Installed %d starter examples\n", installed)
	}
	return s.loadExamples()
}

// Storage exposes the underlying storage, used by the importer
func (s *Service) Storage() *storage.Storage {
	return s.storage
}

// loadExamples loads all examples into memory for fast access
func (s *Service) loadExamples() error {
	examples, err := s.storage.ListExamples()
	if err != nil {
		return err
	}
	sort.Slice(examples, func(i, j int) bool {
		if examples[i].Category != examples[j].Category {
			return examples[i].Category < examples[j].Category
		}
		return examples[i].Slug < examples[j].Slug
	})
	s.examples = examples
	return nil
}

// ListExamples returns all examples in the catalog, ordered by category then slug
func (s *Service) ListExamples() ([]*models.Example, error) {
	if len(s.examples) == 0 {
		if err := s.loadExamples(); err != nil {
			return nil, err
		}
	}
	return s.examples, nil
}

// SearchExamples searches examples by query string
func (s *Service) SearchExamples(query string) ([]*models.Example, error) {
	examples, err := s.ListExamples()
	if err != nil {
		return nil, err
	}

	if query == "" {
		return examples, nil
	}

	// Create searchable strings for each example
	var searchStrings []string
	for _, e := range examples {
		searchStr := fmt.Sprintf("%s %s %s %s",
			e.Name,
			e.Summary,
			e.Slug,
			e.Category)
		searchStrings = append(searchStrings, searchStr)
	}

	// Perform fuzzy search
	matches := fuzzy.Find(query, searchStrings)

	var results []*models.Example
	for _, match := range matches {
		results = append(results, examples[match.Index])
	}

	return results, nil
}

// GetExample returns an example by slug with full content loaded
func (s *Service) GetExample(slug string) (*models.Example, error) {
	examples, err := s.ListExamples()
	if err != nil {
		return nil, err
	}

	for _, e := range examples {
		if e.Slug == slug {
			// Cache-thin records carry no body or template; load from storage
			if e.Body == "" && e.Template == "" && e.FilePath != "" {
				fullExample, err := s.storage.LoadExample(e.FilePath)
				if err != nil {
					return nil, fmt.Errorf("failed to load example content: %w", err)
				}
				return fullExample, nil
			}
			return e, nil
		}
	}

	return nil, errors.NotFoundError(fmt.Sprintf("example %q", slug))
}

// ListCategories returns the distinct categories in the catalog, sorted
func (s *Service) ListCategories() ([]string, error) {
	examples, err := s.ListExamples()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var categories []string
	for _, e := range examples {
		if e.Category != "" && !seen[e.Category] {
			seen[e.Category] = true
			categories = append(categories, e.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

// FilterByCategory returns examples in the given category (case-insensitive)
func (s *Service) FilterByCategory(category string) ([]*models.Example, error) {
	examples, err := s.ListExamples()
	if err != nil {
		return nil, err
	}

	var results []*models.Example
	for _, e := range examples {
		if strings.EqualFold(e.Category, category) {
			results = append(results, e)
		}
	}
	return results, nil
}

// FilterByDifficulty returns examples with the given difficulty (case-insensitive)
func (s *Service) FilterByDifficulty(difficulty string) ([]*models.Example, error) {
	examples, err := s.ListExamples()
	if err != nil {
		return nil, err
	}

	var results []*models.Example
	for _, e := range examples {
		if strings.EqualFold(e.Difficulty, difficulty) {
			results = append(results, e)
		}
	}
	return results, nil
}

// CreateExample creates a new example in the catalog
func (s *Service) CreateExample(example *models.Example) error {
	if result := validation.ValidateExample(example); !result.Valid {
		return result.ToAppError()
	}

	if existing, _ := s.GetExample(example.Slug); existing != nil {
		return errors.AlreadyExistsError(fmt.Sprintf("example %q", example.Slug))
	}

	now := time.Now()
	example.CreatedAt = now
	example.UpdatedAt = now

	if example.FilePath == "" {
		example.FilePath = storage.ExamplePath(example.Category, example.Slug)
	}

	if err := s.storage.SaveExample(example); err != nil {
		return errors.StorageError("create example", err)
	}

	// Reload examples cache
	return s.loadExamples()
}

// UpdateExample updates an existing example
func (s *Service) UpdateExample(example *models.Example) error {
	existing, err := s.GetExample(example.Slug)
	if err != nil {
		return fmt.Errorf("cannot update non-existent example: %w", err)
	}

	if result := validation.ValidateExample(example); !result.Valid {
		return result.ToAppError()
	}

	// Keep original creation time and file path
	example.CreatedAt = existing.CreatedAt
	example.UpdatedAt = time.Now()
	if example.FilePath == "" {
		example.FilePath = existing.FilePath
	}

	if err := s.storage.SaveExample(example); err != nil {
		return errors.StorageError("update example", err)
	}

	return s.loadExamples()
}

// DeleteExample removes an example from the catalog
func (s *Service) DeleteExample(slug string) error {
	example, err := s.GetExample(slug)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteExample(example); err != nil {
		return errors.StorageError("delete example", err)
	}

	return s.loadExamples()
}

// Variables returns the placeholder names used by an example's template
func (s *Service) Variables(slug string) ([]string, error) {
	example, err := s.GetExample(slug)
	if err != nil {
		return nil, err
	}
	return renderer.ExtractVariables(example.Template), nil
}

// RenderExample renders an example's template with the given bindings
func (s *Service) RenderExample(slug string, bindings *models.Bindings) (string, error) {
	example, err := s.GetExample(slug)
	if err != nil {
		return "", err
	}
	return renderer.NewRenderer(example).RenderText(bindings), nil
}

// RenderExampleJSON renders an example as a JSON message array
func (s *Service) RenderExampleJSON(slug string, bindings *models.Bindings) (string, error) {
	example, err := s.GetExample(slug)
	if err != nil {
		return "", err
	}
	return renderer.NewRenderer(example).RenderJSON(bindings)
}

// ScoreExample scores an example's template against the quality heuristics
func (s *Service) ScoreExample(slug string) (models.ScoreResult, error) {
	example, err := s.GetExample(slug)
	if err != nil {
		return models.ScoreResult{}, err
	}
	return analyzer.ScorePrompt(example.Template), nil
}

// LintExample validates an example record and reports issues
func (s *Service) LintExample(slug string) (*validation.ValidationResult, error) {
	example, err := s.GetExample(slug)
	if err != nil {
		return nil, err
	}
	return validation.ValidateExample(example), nil
}

// ReloadExamples discards the in-memory cache and reloads from disk
func (s *Service) ReloadExamples() error {
	return s.loadExamples()
}
