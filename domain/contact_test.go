package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewContact_KeepsFieldsAsGiven(t *testing.T) {
	req := require.New(t)
	c := NewContact(" John", "Locke\t", "0123456789 ")

	req.Equal(Contact{FirstName: " John", LastName: "Locke\t", PhoneNumber: "0123456789 "}, c)
	req.Equal(" John Locke\t", c.FullName())
	req.True(c.Complete())
}

func TestContact_Complete(t *testing.T) {
	tests := []struct {
		name    string
		contact Contact
		want    bool
	}{
		{"all fields", NewContact("John", "Doe", "0123456789"), true},
		{"missing first name", NewContact("", "Doe", "0123456789"), false},
		{"missing last name", NewContact("John", "  ", "0123456789"), false},
		{"missing phone number", NewContact("John", "Doe", ""), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.contact.Complete())
		})
	}
}

func TestContact_EqualityIsFieldBased(t *testing.T) {
	a := NewContact("John", "Doe", "0123456789")
	b := NewContact("John", "Doe", "0123456789")
	require.Equal(t, a, b)
	require.True(t, a == b)
}
