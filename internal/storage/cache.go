package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/promptdeck/promptdeck/internal/models"
)

// ExampleMetadata represents cached metadata for an example
type ExampleMetadata struct {
	Slug       string    `json:"slug"`
	Name       string    `json:"name"`
	Summary    string    `json:"summary"`
	Category   string    `json:"category"`
	Difficulty string    `json:"difficulty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	FilePath   string    `json:"file_path"`
	ModTime    time.Time `json:"mod_time"`
	FileHash   string    `json:"file_hash"`
}

// MetadataCache handles caching of example metadata
type MetadataCache struct {
	cacheDir  string
	cacheFile string
	metadata  map[string]*ExampleMetadata
	mu        sync.RWMutex // Protects metadata map from concurrent access
}

// NewMetadataCache creates a new metadata cache
func NewMetadataCache(baseDir string) *MetadataCache {
	cacheDir := filepath.Join(baseDir, ".promptdeck", "cache")
	return &MetadataCache{
		cacheDir:  cacheDir,
		cacheFile: filepath.Join(cacheDir, "metadata.json"),
		metadata:  make(map[string]*ExampleMetadata),
	}
}

// Load loads the metadata cache from disk
func (c *MetadataCache) Load() error {
	// Ensure cache directory exists
	if err := os.MkdirAll(c.cacheDir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	// Load existing cache if it exists
	if _, err := os.Stat(c.cacheFile); os.IsNotExist(err) {
		return nil // No cache file exists yet
	}

	data, err := os.ReadFile(c.cacheFile)
	if err != nil {
		return fmt.Errorf("failed to read cache file: %w", err)
	}

	c.mu.Lock()
	if err := json.Unmarshal(data, &c.metadata); err != nil {
		// If cache is corrupted, start fresh
		c.metadata = make(map[string]*ExampleMetadata)
	}
	c.mu.Unlock()

	return nil
}

// Save saves the metadata cache to disk
func (c *MetadataCache) Save() error {
	c.mu.RLock()
	data, err := json.MarshalIndent(c.metadata, "", "  ")
	c.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}

	if err := os.WriteFile(c.cacheFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	return nil
}

// Get retrieves metadata for a file, checking if cache is valid
func (c *MetadataCache) Get(filePath string, fileInfo os.FileInfo) (*ExampleMetadata, bool) {
	c.mu.RLock()
	cached, exists := c.metadata[filePath]
	c.mu.RUnlock()
	if !exists {
		return nil, false
	}

	// Check if file has been modified
	if !fileInfo.ModTime().Equal(cached.ModTime) {
		return nil, false
	}

	return cached, true
}

// Set stores metadata in the cache
func (c *MetadataCache) Set(relPath string, fullPath string, fileInfo os.FileInfo, example *models.Example) {
	// Calculate file hash for additional validation
	fileHash := ""
	if data, err := os.ReadFile(fullPath); err == nil {
		hash := sha256.Sum256(data)
		fileHash = hex.EncodeToString(hash[:])
	}

	c.mu.Lock()
	c.metadata[relPath] = &ExampleMetadata{
		Slug:       example.Slug,
		Name:       example.Name,
		Summary:    example.Summary,
		Category:   example.Category,
		Difficulty: example.Difficulty,
		CreatedAt:  example.CreatedAt,
		UpdatedAt:  example.UpdatedAt,
		FilePath:   example.FilePath,
		ModTime:    fileInfo.ModTime(),
		FileHash:   fileHash,
	}
	c.mu.Unlock()
}

// ToExample converts cached metadata back to an Example (without content)
func (m *ExampleMetadata) ToExample() *models.Example {
	return &models.Example{
		Slug:       m.Slug,
		Name:       m.Name,
		Summary:    m.Summary,
		Category:   m.Category,
		Difficulty: m.Difficulty,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		FilePath:   m.FilePath,
		Body:       "", // Body and template loaded on demand
	}
}

// Cleanup removes cache entries for files that no longer exist
func (c *MetadataCache) Cleanup(existingFiles map[string]bool) {
	c.mu.Lock()
	for filePath := range c.metadata {
		if !existingFiles[filePath] {
			delete(c.metadata, filePath)
		}
	}
	c.mu.Unlock()
}
