package storage

import (
	"fmt"

	"donburi-house/internal/domain"
)

// ComboStore mirrors the catalog store for combo bundles, keyed by
// C-prefixed IDs.
type ComboStore struct {
	seq    *Sequence
	combos map[string]*domain.Combo
	ids    []string
}

func NewComboStore() *ComboStore {
	return &ComboStore{
		seq:    NewSequence("C"),
		combos: make(map[string]*domain.Combo),
	}
}

func (s *ComboStore) Add(c *domain.Combo) (string, error) {
	if c == nil {
		return "", fmt.Errorf("combo add: %w", domain.ErrInvalidReference)
	}
	c.ID = s.seq.Next()
	s.combos[c.ID] = c
	s.ids = append(s.ids, c.ID)
	return c.ID, nil
}

func (s *ComboStore) Remove(id string) error {
	if _, ok := s.combos[id]; !ok {
		return fmt.Errorf("combo %s: %w", id, domain.ErrNotFound)
	}
	delete(s.combos, id)
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	return nil
}

func (s *ComboStore) Find(id string) (*domain.Combo, error) {
	c, ok := s.combos[id]
	if !ok {
		return nil, fmt.Errorf("combo %s: %w", id, domain.ErrNotFound)
	}
	return c, nil
}

func (s *ComboStore) ListAll() []*domain.Combo {
	out := make([]*domain.Combo, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, s.combos[id])
	}
	return out
}
