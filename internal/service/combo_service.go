package service

import (
	"errors"
	"fmt"

	"donburi-house/internal/domain"
)

type ComboService struct {
	repo     ComboRepository
	catalog  CatalogRepository
	notifier Notifier
}

func NewComboService(repo ComboRepository, catalog CatalogRepository, notifier Notifier) *ComboService {
	return &ComboService{repo: repo, catalog: catalog, notifier: notifier}
}

// Create registers a new combo and announces it. The announcement is part of
// the contract, not an optional extra.
func (s *ComboService) Create(name string, discount float64) (*domain.Combo, error) {
	if name == "" {
		return nil, errors.New("combo name is required")
	}
	c, err := domain.NewCombo(name, discount)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.Add(c); err != nil {
		return nil, err
	}
	s.notifier.SendNewCombo(c.Name, c.Discount)
	return c, nil
}

func (s *ComboService) AddItem(comboID, foodID string) error {
	c, err := s.repo.Find(comboID)
	if err != nil {
		return err
	}
	f, err := s.catalog.Find(foodID)
	if err != nil {
		return fmt.Errorf("food %s: %w", foodID, domain.ErrInvalidReference)
	}
	return c.AddItem(f)
}

func (s *ComboService) RemoveItem(comboID, foodID string) error {
	c, err := s.repo.Find(comboID)
	if err != nil {
		return err
	}
	return c.RemoveItem(foodID)
}

func (s *ComboService) Remove(id string) error {
	return s.repo.Remove(id)
}

func (s *ComboService) Get(id string) (*domain.Combo, error) {
	return s.repo.Find(id)
}

func (s *ComboService) List() []*domain.Combo {
	return s.repo.ListAll()
}
