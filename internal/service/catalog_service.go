package service

import (
	"errors"

	"github.com/shopspring/decimal"

	"donburi-house/internal/domain"
)

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) Add(name string, price decimal.Decimal, details domain.FoodDetails) (*domain.Food, error) {
	if name == "" {
		return nil, errors.New("food name is required")
	}
	if price.IsNegative() {
		return nil, errors.New("food price must not be negative")
	}
	if details == nil {
		return nil, errors.New("food details are required")
	}
	f := domain.NewFood(name, price, details)
	if _, err := s.repo.Add(f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *CatalogService) Remove(id string) error {
	return s.repo.Remove(id)
}

func (s *CatalogService) Get(id string) (*domain.Food, error) {
	return s.repo.Find(id)
}

func (s *CatalogService) List() []*domain.Food {
	return s.repo.ListAll()
}
