// Package store holds the in-memory contact list backing the table.
// The list is populated once at startup from the remote fixture and is
// mutated only locally after a remote call succeeds; it is never
// wholesale re-synced.
package store

import "github.com/smileynet/rolodex/internal/contact"

// Store is an ordered contact list. Display order is insertion order
// except newly created contacts, which are prepended.
type Store struct {
	contacts []contact.Contact
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Replace swaps the full list for the given contacts. Called once with
// the startup load result; the caller is responsible for truncating to
// its display limit.
func (s *Store) Replace(contacts []contact.Contact) {
	s.contacts = append([]contact.Contact(nil), contacts...)
}

// Add prepends a contact. The fixture does not durably persist created
// records; the store adopts the server-assigned ID and trusts the
// submitted payload (local echo).
func (s *Store) Add(c contact.Contact) {
	s.contacts = append([]contact.Contact{c}, s.contacts...)
}

// Update swaps the entry matching c.ID in place, preserving its position.
// Reports whether a matching entry was found.
func (s *Store) Update(c contact.Contact) bool {
	for i := range s.contacts {
		if s.contacts[i].ID == c.ID {
			s.contacts[i] = c
			return true
		}
	}
	return false
}

// Remove filters out the entry matching id, leaving all others in their
// original relative order. Reports whether an entry was removed.
func (s *Store) Remove(id int) bool {
	for i := range s.contacts {
		if s.contacts[i].ID == id {
			s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the contact matching id.
func (s *Store) Get(id int) (contact.Contact, bool) {
	for _, c := range s.contacts {
		if c.ID == id {
			return c, true
		}
	}
	return contact.Contact{}, false
}

// All returns a copy of the current list in display order.
func (s *Store) All() []contact.Contact {
	return append([]contact.Contact(nil), s.contacts...)
}

// Len returns the number of contacts in the store.
func (s *Store) Len() int {
	return len(s.contacts)
}
