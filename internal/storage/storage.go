package storage

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/promptdeck/promptdeck/internal/models"
	"gopkg.in/yaml.v3"
)

// Storage handles all file system operations for catalog examples
type Storage struct {
	rootPath string
	cache    *MetadataCache
}

// NewStorage creates a new storage instance
func NewStorage(rootPath string) (*Storage, error) {
	if rootPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		rootPath = filepath.Join(homeDir, ".promptdeck")
	}

	cache := NewMetadataCache(rootPath)
	if err := cache.Load(); err != nil {
		// Log error but don't fail - cache is optional
		fmt.Fprintf(os.Stderr, "Warning: failed to load metadata cache: %v\n", err)
	}

	return &Storage{
		rootPath: rootPath,
		cache:    cache,
	}, nil
}

// InitLibrary creates the directory structure for an example library
func (s *Storage) InitLibrary() error {
	dirs := []string{
		s.rootPath,
		filepath.Join(s.rootPath, "examples"),
		filepath.Join(s.rootPath, ".promptdeck"),
		filepath.Join(s.rootPath, ".promptdeck", "cache"),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// GetBaseDir returns the root path of the storage
func (s *Storage) GetBaseDir() string {
	return s.rootPath
}

// ExamplePath returns the library-relative path for an example
func ExamplePath(category, slug string) string {
	if category == "" {
		return filepath.Join("examples", fmt.Sprintf("%s.md", slug))
	}
	return filepath.Join("examples", category, fmt.Sprintf("%s.md", slug))
}

// LoadExample loads an example from a markdown file with YAML frontmatter
func (s *Storage) LoadExample(path string) (*models.Example, error) {
	fullPath := filepath.Join(s.rootPath, path)

	file, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open example file: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read example file: %w", err)
	}

	example, err := ParseExampleFile(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse example: %w", err)
	}

	example.FilePath = path
	example.ContentHash = calculateHash(content)

	return example, nil
}

// SaveExample saves an example to a markdown file with YAML frontmatter
func (s *Storage) SaveExample(example *models.Example) error {
	fullPath := filepath.Join(s.rootPath, example.FilePath)

	// Ensure directory exists
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	content, err := SerializeExample(example)
	if err != nil {
		return fmt.Errorf("failed to serialize example: %w", err)
	}

	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write example file: %w", err)
	}

	return nil
}

// DeleteExample deletes an example file from the file system
func (s *Storage) DeleteExample(example *models.Example) error {
	fullPath := filepath.Join(s.rootPath, example.FilePath)

	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return fmt.Errorf("example file does not exist: %s", fullPath)
	}

	if err := os.Remove(fullPath); err != nil {
		return fmt.Errorf("failed to delete example file: %w", err)
	}

	return nil
}

// ListExamples returns all examples in the library
func (s *Storage) ListExamples() ([]*models.Example, error) {
	examplesDir := filepath.Join(s.rootPath, "examples")

	var examples []*models.Example
	existingFiles := make(map[string]bool)
	cacheModified := false

	err := filepath.Walk(examplesDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() && strings.HasSuffix(path, ".md") {
			relPath, _ := filepath.Rel(s.rootPath, path)
			existingFiles[relPath] = true

			// Try to get from cache first
			if cached, valid := s.cache.Get(relPath, info); valid {
				examples = append(examples, cached.ToExample())
				return nil
			}

			// Cache miss - load and parse the example
			example, err := s.LoadExample(relPath)
			if err != nil {
				// Log error but continue walking
				fmt.Fprintf(os.Stderr, "Warning: failed to load example %s: %v\n", relPath, err)
				return nil
			}

			s.cache.Set(relPath, filepath.Join(s.rootPath, relPath), info, example)
			cacheModified = true

			examples = append(examples, example)
		}

		return nil
	})

	// Cleanup cache entries for deleted files
	s.cache.Cleanup(existingFiles)

	if cacheModified {
		if err := s.cache.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to save metadata cache: %v\n", err)
		}
	}

	return examples, err
}

// Helper functions

// ParseExampleFile parses a markdown file with YAML frontmatter into an Example
func ParseExampleFile(content []byte) (*models.Example, error) {
	scanner := bufio.NewScanner(bytes.NewReader(content))

	// Check for frontmatter delimiter
	if !scanner.Scan() || scanner.Text() != "---" {
		return nil, fmt.Errorf("missing frontmatter delimiter")
	}

	// Read frontmatter
	var frontmatterLines []string
	for scanner.Scan() {
		line := scanner.Text()
		if line == "---" {
			break
		}
		frontmatterLines = append(frontmatterLines, line)
	}

	// Parse YAML frontmatter
	frontmatter := strings.Join(frontmatterLines, "\n")
	var example models.Example
	if err := yaml.Unmarshal([]byte(frontmatter), &example); err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	// Read remaining content
	var bodyLines []string
	for scanner.Scan() {
		bodyLines = append(bodyLines, scanner.Text())
	}
	// Join content preserving original formatting
	example.Body = strings.Join(bodyLines, "\n")
	// Trim only leading whitespace/newlines
	example.Body = strings.TrimLeft(example.Body, " \t\n")

	return &example, nil
}

// SerializeExample converts an example to YAML frontmatter + markdown content
func SerializeExample(example *models.Example) ([]byte, error) {
	var buf bytes.Buffer

	// Write frontmatter delimiter
	buf.WriteString("---\n")

	// Serialize example metadata to YAML
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(example); err != nil {
		return nil, fmt.Errorf("failed to encode frontmatter: %w", err)
	}

	// Write closing delimiter
	buf.WriteString("---\n")

	// Write content with proper spacing
	if example.Body != "" {
		buf.WriteString("\n")
		buf.WriteString(example.Body)
		// Ensure file ends with newline
		if !strings.HasSuffix(example.Body, "\n") {
			buf.WriteString("\n")
		}
	}

	return buf.Bytes(), nil
}

func calculateHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}
