package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joeldevian/myday-rutinas/internal/logger"
)

const jsonStoreVersion = 1

type jsonDocument struct {
	Version int                        `json:"version"`
	Values  map[string]json.RawMessage `json:"values"`
}

// JSONStore keeps the whole key-value map in a single JSON file, rewritten on
// every Put. Suits the data volume here (a handful of small collections).
type JSONStore struct {
	path string
	doc  *jsonDocument
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &jsonDocument{
		Version: jsonStoreVersion,
		Values:  make(map[string]json.RawMessage),
	}
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'myday init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &jsonDocument{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		// A corrupt store file degrades to an empty store rather than
		// blocking the app. The broken file is only overwritten on the
		// next write.
		logger.Error("corrupt store file, starting empty", "path", s.path, "error", err)
		s.doc = &jsonDocument{Version: jsonStoreVersion}
	}
	if s.doc.Values == nil {
		s.doc.Values = make(map[string]json.RawMessage)
	}
	return nil
}

func (s *JSONStore) Close() error { return nil }

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) Get(key string, v any) (bool, error) {
	if s.doc == nil {
		return false, fmt.Errorf("storage not loaded")
	}
	raw, ok := s.doc.Values[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		logger.Error("corrupt value, treating as absent", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

func (s *JSONStore) Put(key string, v any) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize value for %s: %w", key, err)
	}
	s.doc.Values[key] = raw
	return s.save()
}

func (s *JSONStore) Delete(key string) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	if _, ok := s.doc.Values[key]; !ok {
		return nil
	}
	delete(s.doc.Values, key)
	return s.save()
}

func (s *JSONStore) Keys(prefix string) ([]string, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	var keys []string
	for k := range s.doc.Values {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *JSONStore) Path() string { return s.path }
