package storage

import (
	"fmt"

	"donburi-house/internal/domain"
)

// AccountRegistry keeps guest and staff accounts, keyed by username. Each
// role draws from its own ID sequence (G###, S###).
type AccountRegistry struct {
	guestSeq   *Sequence
	staffSeq   *Sequence
	byUsername map[string]*domain.Account
	usernames  []string
}

func NewAccountRegistry() *AccountRegistry {
	return &AccountRegistry{
		guestSeq:   NewSequence("G"),
		staffSeq:   NewSequence("S"),
		byUsername: make(map[string]*domain.Account),
	}
}

func (r *AccountRegistry) Add(a *domain.Account) (string, error) {
	if a == nil {
		return "", fmt.Errorf("account add: %w", domain.ErrInvalidReference)
	}
	if _, ok := r.byUsername[a.Username]; ok {
		return "", fmt.Errorf("account %q: %w", a.Username, domain.ErrDuplicateRegistration)
	}
	switch a.Role {
	case domain.RoleStaff:
		a.ID = r.staffSeq.Next()
	default:
		a.ID = r.guestSeq.Next()
	}
	r.byUsername[a.Username] = a
	r.usernames = append(r.usernames, a.Username)
	return a.ID, nil
}

func (r *AccountRegistry) FindByUsername(username string) (*domain.Account, error) {
	a, ok := r.byUsername[username]
	if !ok {
		return nil, fmt.Errorf("account %q: %w", username, domain.ErrNotFound)
	}
	return a, nil
}

func (r *AccountRegistry) List() []*domain.Account {
	out := make([]*domain.Account, 0, len(r.usernames))
	for _, u := range r.usernames {
		out = append(out, r.byUsername[u])
	}
	return out
}
