// Package domain contains core concepts of the contact manager.
// This file defines Contact records and related invariants.
// Contacts are plain values: they are copied in and out of storage
// and never mutated once created.
package domain

import "strings"

// Contact represents an immutable address book entry.
// It carries no identity: two contacts with the same fields are equal.
type Contact struct {
	FirstName   string
	LastName    string
	PhoneNumber string
}

// NewContact keeps the fields exactly as given.
func NewContact(firstName, lastName, phoneNumber string) Contact {
	return Contact{
		FirstName:   firstName,
		LastName:    lastName,
		PhoneNumber: phoneNumber,
	}
}

// FullName returns "First Last".
func (c Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Complete reports whether every field holds something other than whitespace.
// Repositories refuse incomplete contacts.
func (c Contact) Complete() bool {
	return !isBlank(c.FirstName) && !isBlank(c.LastName) && !isBlank(c.PhoneNumber)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
