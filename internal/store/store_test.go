package store

import (
	"testing"

	"github.com/smileynet/rolodex/internal/contact"
)

func seeded(ids ...int) *Store {
	s := New()
	contacts := make([]contact.Contact, len(ids))
	for i, id := range ids {
		contacts[i] = contact.Contact{ID: id, Name: "c", Email: "c@x.com", Phone: "1", Company: "Co"}
	}
	s.Replace(contacts)
	return s
}

func ids(s *Store) []int {
	all := s.All()
	out := make([]int, len(all))
	for i, c := range all {
		out[i] = c.ID
	}
	return out
}

func TestStore_ReplaceCopiesInput(t *testing.T) {
	input := []contact.Contact{{ID: 1}, {ID: 2}}
	s := New()
	s.Replace(input)

	input[0].ID = 99
	if got := ids(s); got[0] != 1 {
		t.Errorf("store aliased its input slice: ids = %v", got)
	}
}

func TestStore_AddPrepends(t *testing.T) {
	s := seeded(1)
	s.Add(contact.Contact{ID: 11, Name: "new"})

	got := ids(s)
	want := []int{11, 1}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("ids = %v, want %v", got, want)
	}
}

func TestStore_UpdatePreservesPosition(t *testing.T) {
	s := seeded(1, 2, 3)
	if !s.Update(contact.Contact{ID: 2, Name: "edited", Email: "e@x.com", Phone: "2", Company: "Co"}) {
		t.Fatal("Update returned false for existing id")
	}

	got := ids(s)
	want := []int{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ids = %v, want %v", got, want)
		}
	}
	c, ok := s.Get(2)
	if !ok || c.Name != "edited" {
		t.Errorf("Get(2) = %+v, %v; want edited contact", c, ok)
	}
}

func TestStore_UpdateUnknownID(t *testing.T) {
	s := seeded(1)
	if s.Update(contact.Contact{ID: 99}) {
		t.Error("Update returned true for unknown id")
	}
}

func TestStore_RemoveExactlyOne(t *testing.T) {
	s := seeded(1, 2, 3, 4)
	if !s.Remove(2) {
		t.Fatal("Remove returned false for existing id")
	}

	got := ids(s)
	want := []int{1, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ids = %v, want %v (relative order must be preserved)", got, want)
		}
	}
}

func TestStore_RemoveUnknownID(t *testing.T) {
	s := seeded(1, 2)
	if s.Remove(99) {
		t.Error("Remove returned true for unknown id")
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d after failed remove, want 2", s.Len())
	}
}

func TestStore_AllReturnsCopy(t *testing.T) {
	s := seeded(1)
	all := s.All()
	all[0].Name = "mutated"

	c, _ := s.Get(1)
	if c.Name == "mutated" {
		t.Error("All() exposed the store's backing slice")
	}
}
