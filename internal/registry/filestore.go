package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultStorePath is the category file written next to the working directory.
const DefaultStorePath = "art_categories.json"

// categoriesFile is the on-disk shape: {"categories": ["landscape", ...]}.
type categoriesFile struct {
	Categories []string `json:"categories"`
}

// FileStore persists the category set as an indented JSON document. Each Save
// rewrites the whole file.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed store at the given path.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultStorePath
	}
	return &FileStore{path: path}
}

// Load reads the category list from disk.
func (fs *FileStore) Load() ([]string, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read category store: %w", err)
	}

	var doc categoriesFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse category store: %w", err)
	}
	return doc.Categories, nil
}

// Save rewrites the category file with 2-space indentation.
func (fs *FileStore) Save(categories []string) error {
	dir := filepath.Dir(fs.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(categoriesFile{Categories: categories}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal categories: %w", err)
	}

	if err := os.WriteFile(fs.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write category store: %w", err)
	}
	return nil
}
