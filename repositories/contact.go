//go:generate go run go.uber.org/mock/mockgen -source=contact.go -destination=../mocks/mock_contact_repository.go -package=mocks
package repositories

import (
	"contact-lab/domain"
	"contact-lab/errors"
	"fmt"
	"slices"
	"sync"
)

// IContactRepository stores contacts in insertion order.
// Duplicates are kept as separate entries; incomplete contacts are refused
// with errors.ErrInvalidArgument.
type IContactRepository interface {
	StoreContact(contact domain.Contact) error
	GetContacts() ([]domain.Contact, error)
	CountContacts() (int, error)
}

// MemoryContactRepository keeps contacts in a slice guarded by a RWMutex.
type MemoryContactRepository struct {
	mu       sync.RWMutex
	contacts []domain.Contact
}

func NewMemoryContactRepository() *MemoryContactRepository {
	return &MemoryContactRepository{}
}

func (m *MemoryContactRepository) StoreContact(contact domain.Contact) error {
	if err := checkComplete(contact); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contacts = append(m.contacts, contact)
	return nil
}

// GetContacts returns a copy, so callers can't reach the internal slice.
// An empty repository yields an empty, non-nil slice.
func (m *MemoryContactRepository) GetContacts() ([]domain.Contact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.contacts) == 0 {
		return []domain.Contact{}, nil
	}
	return slices.Clone(m.contacts), nil
}

func (m *MemoryContactRepository) CountContacts() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.contacts), nil
}

func checkComplete(contact domain.Contact) error {
	if !contact.Complete() {
		return fmt.Errorf("%w: incomplete contact %+v", errors.ErrInvalidArgument, contact)
	}
	return nil
}
