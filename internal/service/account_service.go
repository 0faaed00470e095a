package service

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"donburi-house/internal/domain"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AccountService is the thin collaborator layer above the core: it only
// registers identities and checks credentials so the menu can tell guests
// from staff.
type AccountService struct {
	repo AccountRepository
	log  *slog.Logger
}

func NewAccountService(repo AccountRepository, log *slog.Logger) *AccountService {
	if log == nil {
		log = slog.Default()
	}
	return &AccountService{repo: repo, log: log}
}

func (s *AccountService) RegisterGuest(username, password string) (*domain.Account, error) {
	return s.register(username, password, domain.RoleGuest)
}

func (s *AccountService) RegisterStaff(username, password string) (*domain.Account, error) {
	return s.register(username, password, domain.RoleStaff)
}

func (s *AccountService) register(username, password string, role domain.Role) (*domain.Account, error) {
	if username == "" || password == "" {
		return nil, errors.New("username and password are required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	a := &domain.Account{Username: username, Role: role, PasswordHash: hash}
	if _, err := s.repo.Add(a); err != nil {
		return nil, err
	}
	s.log.Info("account registered", "account_id", a.ID, "role", string(role))
	return a, nil
}

func (s *AccountService) Authenticate(username, password string) (*domain.Account, error) {
	a, err := s.repo.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return a, nil
}

func (s *AccountService) List() []*domain.Account {
	return s.repo.List()
}
