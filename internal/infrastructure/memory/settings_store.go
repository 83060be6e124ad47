package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/chipaflow-api/internal/domain/repository"
)

var _ repository.SettingsStore = (*SettingsStore)(nil)

// SettingsStore preferencias en memoria; se pierden al reiniciar el proceso.
type SettingsStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewSettingsStore() *SettingsStore {
	return &SettingsStore{data: make(map[string]string)}
}

func (s *SettingsStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *SettingsStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	s.data[key] = value
	s.mu.Unlock()
	return nil
}

func (s *SettingsStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}
