package memory

import (
	"sync"

	"github.com/verslag-digest/digest/internal/adapters/driven/config"
	"github.com/verslag-digest/digest/internal/core/ports/driven"
)

var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore keeps settings in a map. Save and Load do nothing, so it
// backs tests and runs where no home directory is available.
type ConfigStore struct {
	config.Typed

	mu     sync.RWMutex
	values map[string]any
}

func NewConfigStore() *ConfigStore {
	s := &ConfigStore{values: make(map[string]any)}
	s.Typed = config.Typed{Lookup: s.Get}
	return s
}

func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
	return nil
}

func (s *ConfigStore) Save() error { return nil }
func (s *ConfigStore) Load() error { return nil }
func (s *ConfigStore) Path() string { return ":memory:" }
