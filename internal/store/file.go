package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/ukydev/garage-service/internal/models"
)

// FileStore persists the document as one pretty-printed JSON file. Writes go
// through a temp file and rename so a crashed write never truncates the
// document.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a file-backed document store at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the full document from disk. A missing file yields an empty
// initialized document.
func (s *FileStore) Load(ctx context.Context) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Save overwrites the full document on disk.
func (s *FileStore) Save(ctx context.Context, doc *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(doc)
}

// Update serializes mutations behind the store mutex: read, mutate in
// memory, write back in full. The mutate error aborts without saving.
func (s *FileStore) Update(ctx context.Context, mutate func(doc *models.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := mutate(doc); err != nil {
		return err
	}
	return s.save(doc)
}

func (s *FileStore) load() (*models.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.NewDocument(), nil
		}
		return nil, storeErr("read "+s.path, err)
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, storeErr("decode "+s.path, err)
	}
	return &doc, nil
}

func (s *FileStore) save(doc *models.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return storeErr("encode document", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return storeErr("create "+dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".garage-*.json")
	if err != nil {
		return storeErr("create temp file", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return storeErr("write "+tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return storeErr("close "+tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return storeErr("rename "+tmpName, err)
	}
	return nil
}
