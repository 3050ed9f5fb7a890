// Package ui implements the contact manager TUI: a contact table with a
// create/edit form modal, a read-only details modal, and a delete
// confirmation prompt, all backed by a remote fixture API. Remote work
// runs as tea.Cmd closures; results come back as the typed messages below.
package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/rolodex/internal/contact"
)

// Mode represents the current view mode. Modal exclusivity: exactly one
// of form/details/confirm can be open, which serializes per-contact writes.
type Mode int

const (
	ModeBrowse        Mode = iota // Contact table with row cursor.
	ModeForm                      // Create/edit modal.
	ModeDetails                   // Read-only details modal.
	ModeConfirmDelete             // Delete confirmation prompt.
)

// Service is the consumer-side view of the remote client.
type Service interface {
	List(ctx context.Context) ([]contact.Contact, error)
	Create(ctx context.Context, d contact.Draft) (int, error)
	Update(ctx context.Context, d contact.Draft) error
	Delete(ctx context.Context, id int) error
	Get(ctx context.Context, id int) (contact.Detail, error)
}

// --- tea.Msg types ---

// ContactListMsg carries the result of the startup List call.
type ContactListMsg struct {
	Contacts []contact.Contact
	Err      error
}

// ContactSavedMsg carries the result of a Create or Update call.
// On create, ID is the server-assigned ID; on update it echoes the draft's.
type ContactSavedMsg struct {
	ID      int
	Draft   contact.Draft
	Created bool
	Err     error
}

// ContactDeletedMsg carries the result of a Delete call.
type ContactDeletedMsg struct {
	ID  int
	Err error
}

// ContactDetailMsg carries the result of a fetch-one call for the details
// modal. Gen tags the fetch generation; a message whose Gen no longer
// matches the model's counter is stale and must be discarded.
type ContactDetailMsg struct {
	Gen    int
	ID     int
	Detail contact.Detail
	Err    error
}

// --- commands ---

// loadContacts calls svc.List asynchronously and wraps the result.
func loadContacts(svc Service) tea.Cmd {
	return func() tea.Msg {
		contacts, err := svc.List(context.Background())
		return ContactListMsg{Contacts: contacts, Err: err}
	}
}

// saveDraft issues a create for drafts without an ID and an update for
// drafts that carry one.
func saveDraft(svc Service, d contact.Draft) tea.Cmd {
	return func() tea.Msg {
		if d.ID == 0 {
			id, err := svc.Create(context.Background(), d)
			return ContactSavedMsg{ID: id, Draft: d, Created: true, Err: err}
		}
		err := svc.Update(context.Background(), d)
		return ContactSavedMsg{ID: d.ID, Draft: d, Err: err}
	}
}

// deleteContact calls svc.Delete asynchronously and wraps the result.
func deleteContact(svc Service, id int) tea.Cmd {
	return func() tea.Msg {
		err := svc.Delete(context.Background(), id)
		return ContactDeletedMsg{ID: id, Err: err}
	}
}

// fetchDetail calls svc.Get asynchronously, tagging the result with the
// fetch generation current at dispatch time.
func fetchDetail(svc Service, id, gen int) tea.Cmd {
	return func() tea.Msg {
		detail, err := svc.Get(context.Background(), id)
		return ContactDetailMsg{Gen: gen, ID: id, Detail: detail, Err: err}
	}
}
