package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jmulder/weekend-planner/backend/internal/domain"
)

// Memory is an in-process store for environments without Redis configured.
// Nothing persists across a restart — acceptable for local development only.
//
// The document is held as its marshalled bytes, mirroring the blob semantics
// of the Redis backend: Load always hands out an independent copy, so a
// caller mutating the returned document cannot alias the stored state.
// The mutex makes Load and Save individually safe; the Load-modify-Save
// triple around them is still not atomic.
type Memory struct {
	mu  sync.Mutex
	raw []byte // nil until the first Save
}

// NewMemory constructs an empty in-process store.
func NewMemory() *Memory {
	return &Memory{}
}

// Load decodes the stored document, or returns the empty document when
// nothing has been saved yet.
func (s *Memory) Load(ctx context.Context) (domain.WeekendData, error) {
	s.mu.Lock()
	raw := s.raw
	s.mu.Unlock()

	if raw == nil {
		return domain.NewWeekendData(), nil
	}

	var data domain.WeekendData
	if err := json.Unmarshal(raw, &data); err != nil {
		return domain.WeekendData{}, fmt.Errorf("store.Memory.Load: decode document: %w", err)
	}
	normalize(&data)
	return data, nil
}

// Save encodes and replaces the stored document.
func (s *Memory) Save(ctx context.Context, data domain.WeekendData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("store.Memory.Save: encode document: %w", err)
	}

	s.mu.Lock()
	s.raw = raw
	s.mu.Unlock()
	return nil
}

// Close is a no-op; the memory store holds no external resources.
func (s *Memory) Close() error {
	return nil
}
