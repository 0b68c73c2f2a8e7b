package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps a JSON document of key -> blob on disk, the trade list
// being the blob under its key. Other keys in the document are preserved.
type FileStore struct {
	mu   sync.Mutex
	path string
	key  string
}

func NewFileStore(path, key string) *FileStore {
	if key == "" {
		key = StorageKey
	}
	return &FileStore{path: path, key: key}
}

func (s *FileStore) readDoc() (map[string]json.RawMessage, error) {
	doc := map[string]json.RawMessage{}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return doc, nil
}

func (s *FileStore) Load(ctx context.Context) ([]Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDoc()
	if err != nil {
		return nil, err
	}
	raw, ok := doc[s.key]
	if !ok {
		return nil, nil
	}

	var trades []Trade
	if err := json.Unmarshal(raw, &trades); err != nil {
		return nil, fmt.Errorf("decode %q: %w", s.key, err)
	}
	return trades, nil
}

// Save writes to a temp file in the same directory and renames it over the
// old document, so a failed write leaves the previous list intact.
func (s *FileStore) Save(ctx context.Context, trades []Trade) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDoc()
	if err != nil {
		return err
	}
	if trades == nil {
		trades = []Trade{}
	}
	blob, err := json.Marshal(trades)
	if err != nil {
		return fmt.Errorf("encode trades: %w", err)
	}
	doc[s.key] = blob

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".fxjournal-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}
