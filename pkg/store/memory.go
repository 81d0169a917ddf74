// Package store keeps a process-lifetime log of generation requests.
package store

import (
	"errors"
	"sort"
	"sync"
	"time"
)

var ErrEmptyDescription = errors.New("product description is required")

// Generation is one logged generation request.
type Generation struct {
	ID                 int64     `json:"id"`
	ProductDescription string    `json:"productDescription"`
	GeneratedDomains   string    `json:"generatedDomains"` // JSON-serialized suggestions
	Provider           string    `json:"provider,omitempty"`
	Demo               bool      `json:"demo"`
	CreatedAt          time.Time `json:"createdAt"`
}

type GenerationStore interface {
	Append(g Generation) (int64, error)
	List() []Generation
	Get(id int64) (Generation, bool)
}

// MemoryStore is an append-only GenerationStore with no eviction.
type MemoryStore struct {
	mu      sync.RWMutex
	nextID  int64
	records map[int64]Generation
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID:  1,
		records: map[int64]Generation{},
		now:     time.Now,
	}
}

// Append stores g under a new id. ID and CreatedAt are assigned here.
func (s *MemoryStore) Append(g Generation) (int64, error) {
	if g.ProductDescription == "" {
		return 0, ErrEmptyDescription
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g.ID = s.nextID
	g.CreatedAt = s.now()
	s.records[g.ID] = g
	s.nextID++
	return g.ID, nil
}

// List returns all records ordered by id.
func (s *MemoryStore) List() []Generation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Generation, 0, len(s.records))
	for _, g := range s.records {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *MemoryStore) Get(id int64) (Generation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.records[id]
	return g, ok
}
