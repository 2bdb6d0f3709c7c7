package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"mediazone/pkg/logger"
)

// FileStore is a localStorage-shaped key/value file: one JSON object per
// store, string keys, opaque JSON values, full overwrite on every Set. The
// cart and wishlist containers persist through it. Write failures are logged
// and swallowed; the containers treat persistence as fire-and-forget.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		logger.Warn("localstore: failed to load %s: %v", s.path, err)
		return nil, false
	}

	value, ok := values[key]
	return value, ok
}

func (s *FileStore) Set(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		logger.Warn("localstore: failed to load %s: %v", s.path, err)
		values = map[string]json.RawMessage{}
	}

	values[key] = value
	if err := s.save(values); err != nil {
		logger.Warn("localstore: failed to save %s: %v", s.path, err)
	}
}

func (s *FileStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		logger.Warn("localstore: failed to load %s: %v", s.path, err)
		return
	}

	delete(values, key)
	if err := s.save(values); err != nil {
		logger.Warn("localstore: failed to save %s: %v", s.path, err)
	}
}

func (s *FileStore) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, err
	}

	values := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, err
	}

	return values, nil
}

func (s *FileStore) save(values map[string]json.RawMessage) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0o644)
}

// Memory is the in-process variant used by tests and short-lived sessions.
type Memory struct {
	mu     sync.Mutex
	values map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{values: map[string][]byte{}}
}

func (m *Memory) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.values[key]
	return value, ok
}

func (m *Memory) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = append([]byte(nil), value...)
}

func (m *Memory) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
}
