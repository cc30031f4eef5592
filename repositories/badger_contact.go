package repositories

import (
	"contact-lab/domain"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	contactPrefix = "contact:"
	sequenceKey   = "seq:contact"
	// Number of sequence values leased from Badger at once.
	sequenceBandwidth = 100
)

const (
	fieldFirstName   = "first_name"
	fieldLastName    = "last_name"
	fieldPhoneNumber = "phone_number"
)

type BadgerContactRepository struct {
	db  *badger.DB
	seq *badger.Sequence
	log *slog.Logger
}

func NewBadgerContactRepository(db *badger.DB, log *slog.Logger) (*BadgerContactRepository, error) {
	seq, err := db.GetSequence([]byte(sequenceKey), sequenceBandwidth)
	if err != nil {
		return nil, fmt.Errorf("sequence lease failed: %w", err)
	}
	return &BadgerContactRepository{db: db, seq: seq, log: log}, nil
}

// StoreContact persists a contact in BadgerDB.
// The key is formatted as "contact:{seq_padded}:{uuid}" so that:
//  1. a prefix scan returns contacts in insertion order (19-digit zero padding);
//  2. identical contacts never overwrite each other.
func (b *BadgerContactRepository) StoreContact(contact domain.Contact) error {
	if err := checkComplete(contact); err != nil {
		return err
	}
	next, err := b.seq.Next()
	if err != nil {
		return fmt.Errorf("sequence failed: %w", err)
	}
	key := fmt.Sprintf("%s%019d:%s", contactPrefix, next, uuid.New())

	data, err := marshalContact(contact)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	err = b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("store failed: %w", err)
	}
	b.log.Debug("Contact stored", "key", key)
	return nil
}

// GetContacts scans every contact key in insertion order.
func (b *BadgerContactRepository) GetContacts() ([]domain.Contact, error) {
	contacts := []domain.Contact{}
	prefix := []byte(contactPrefix)

	err := b.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(v []byte) error {
				contact, err := unmarshalContact(v)
				if err != nil {
					return fmt.Errorf("failed to unmarshal contact: %w", err)
				}
				contacts = append(contacts, contact)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

// CountContacts walks the keys only.
func (b *BadgerContactRepository) CountContacts() (int, error) {
	count := 0
	prefix := []byte(contactPrefix)

	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// Close returns the unused part of the leased sequence.
func (b *BadgerContactRepository) Close() error {
	return b.seq.Release()
}

func marshalContact(contact domain.Contact) ([]byte, error) {
	s, err := structpb.NewStruct(map[string]any{
		fieldFirstName:   contact.FirstName,
		fieldLastName:    contact.LastName,
		fieldPhoneNumber: contact.PhoneNumber,
	})
	if err != nil {
		return nil, err
	}
	return proto.Marshal(s)
}

func unmarshalContact(data []byte) (domain.Contact, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return domain.Contact{}, err
	}
	fields := s.GetFields()
	return domain.Contact{
		FirstName:   fields[fieldFirstName].GetStringValue(),
		LastName:    fields[fieldLastName].GetStringValue(),
		PhoneNumber: fields[fieldPhoneNumber].GetStringValue(),
	}, nil
}
