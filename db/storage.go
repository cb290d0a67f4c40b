// Package db implements the flat-file player-state store. Each store is a
// single JSON file of documents keyed by id, rewritten whole on every update
// (last-write-wins).
package db

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Store struct {
	path string
	mu   sync.Mutex
}

func OpenStore(path string) *Store {
	return &Store{path: path}
}

// Get returns the document for an id, or nil when absent.
func (s *Store) Get(id string) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.read()

	if err != nil {
		return nil, err
	}

	return docs[id], nil
}

// Put replaces the document for an id.
func (s *Store) Put(id string, doc map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.read()

	if err != nil {
		return err
	}

	docs[id] = doc

	return s.write(docs)
}

// Find returns the id and document of the first match, or "" and nil.
func (s *Store) Find(match func(id string, doc map[string]any) bool) (string, map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.read()

	if err != nil {
		return "", nil, err
	}

	for id, doc := range docs {
		if match(id, doc) {
			return id, doc, nil
		}
	}

	return "", nil, nil
}

func (s *Store) read() (map[string]map[string]any, error) {
	data, err := os.ReadFile(s.path)

	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]map[string]any), nil
	}

	if err != nil {
		return nil, err
	}

	docs := make(map[string]map[string]any)

	if len(data) == 0 {
		return docs, nil
	}

	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}

func (s *Store) write(docs map[string]map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	data, err := json.Marshal(docs)

	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}
