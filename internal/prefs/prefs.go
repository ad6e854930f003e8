// Package prefs is the best-effort preference store behind donor prefill.
// Reads and writes may fail for any reason; by contract those failures are
// swallowed and a missing value is returned instead.
package prefs

import "sync"

// Keys live under a fixed namespace so unrelated state never collides.
const (
	KeyLang  = "holi.lang"
	KeyFund  = "holi.fund"
	KeyName  = "holi.name"
	KeyEmail = "holi.email"
)

// Store is the persistence capability. Get reports ok=false for missing or
// unreadable values; Set is fire-and-forget.
type Store interface {
	Get(key string) (value string, ok bool)
	Set(key, value string)
}

// Memory is the in-process Store used as the default and in tests.
type Memory struct {
	mu sync.Mutex
	m  map[string]string
}

func NewMemory() *Memory {
	return &Memory{m: make(map[string]string)}
}

func (s *Memory) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok
}

func (s *Memory) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
}
