package prefs

import (
	"encoding/json"
	"os"
	"sync"
)

// FileStore persists preferences as a flat JSON object. Every I/O or decode
// failure is treated as "no data" — a corrupt file reads as empty and a
// failed write is dropped silently.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.load()[key]
	return v, ok
}

func (s *FileStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.load()
	m[key] = value
	data, err := json.Marshal(m)
	if err != nil {
		return
	}
	_ = os.WriteFile(s.path, data, 0o600)
}

func (s *FileStore) load() map[string]string {
	m := make(map[string]string)
	data, err := os.ReadFile(s.path)
	if err != nil {
		return m
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return make(map[string]string)
	}
	return m
}
