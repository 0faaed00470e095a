package storage

import (
	"fmt"

	"donburi-house/internal/domain"
)

// CatalogStore owns the menu items. IDs are assigned at add time; lookups
// are expected to miss during normal use, so absence is an ErrNotFound
// result, never a panic.
type CatalogStore struct {
	seq   *Sequence
	items map[string]*domain.Food
	ids   []string
}

func NewCatalogStore() *CatalogStore {
	return &CatalogStore{
		seq:   NewSequence("F"),
		items: make(map[string]*domain.Food),
	}
}

func (s *CatalogStore) Add(f *domain.Food) (string, error) {
	if f == nil {
		return "", fmt.Errorf("catalog add: %w", domain.ErrInvalidReference)
	}
	f.ID = s.seq.Next()
	s.items[f.ID] = f
	s.ids = append(s.ids, f.ID)
	return f.ID, nil
}

func (s *CatalogStore) Remove(id string) error {
	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("food %s: %w", id, domain.ErrNotFound)
	}
	delete(s.items, id)
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	return nil
}

func (s *CatalogStore) Find(id string) (*domain.Food, error) {
	f, ok := s.items[id]
	if !ok {
		return nil, fmt.Errorf("food %s: %w", id, domain.ErrNotFound)
	}
	return f, nil
}

// ListAll returns items ordered by ID; IDs are monotonic, so insertion order
// and ID order coincide.
func (s *CatalogStore) ListAll() []*domain.Food {
	out := make([]*domain.Food, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, s.items[id])
	}
	return out
}
