package services

import (
	"contact-lab/contact"
	"contact-lab/domain"
	"contact-lab/errors"
	"contact-lab/repositories"
	"fmt"
	"log/slog"
)

type IContactManager interface {
	AddContact(firstName, lastName, phoneNumber string) error
	GetAllContacts() ([]domain.Contact, error)
	Count() (int, error)
}

type ContactManager struct {
	contactRepository repositories.IContactRepository
	log               *slog.Logger
	strictPhone       bool
}

// NewContactManager wires the manager on top of a repository.
// With strictPhone set, phone numbers must be exactly ten digits.
func NewContactManager(repo repositories.IContactRepository, log *slog.Logger, strictPhone bool) IContactManager {
	return &ContactManager{contactRepository: repo, log: log, strictPhone: strictPhone}
}

// AddContact validates the three fields then appends a new contact.
// On validation failure the repository is never reached.
func (m *ContactManager) AddContact(firstName, lastName, phoneNumber string) error {
	valReq := contact.AddContactRequest{
		FirstName:   firstName,
		LastName:    lastName,
		PhoneNumber: phoneNumber,
	}
	if err := contact.ValidateAddContact(valReq, m.strictPhone); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidArgument, err)
	}

	c := domain.NewContact(firstName, lastName, phoneNumber)
	if err := m.contactRepository.StoreContact(c); err != nil {
		return fmt.Errorf("store contact: %w", err)
	}

	m.log.Debug("Contact added", "name", c.FullName())
	return nil
}

func (m *ContactManager) GetAllContacts() ([]domain.Contact, error) {
	return m.contactRepository.GetContacts()
}

func (m *ContactManager) Count() (int, error) {
	return m.contactRepository.CountContacts()
}
