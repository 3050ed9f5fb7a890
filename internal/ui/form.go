package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/rolodex/internal/contact"
)

// Field indices in the form modal.
const (
	fieldName = iota
	fieldEmail
	fieldPhone
	fieldCompany
	fieldCount
)

// fieldKeys maps field index to the validation error key.
var fieldKeys = [fieldCount]string{"name", "email", "phone", "company"}

// fieldLabels maps field index to the rendered label.
var fieldLabels = [fieldCount]string{"Name", "Email", "Phone", "Company"}

// formState manages the create/edit modal: one draft at a time, its
// validation errors, and the in-flight flag for the save call.
type formState struct {
	open    bool
	editing bool // Edit mode: draft carries the contact's ID.
	id      int
	inputs  [fieldCount]textinput.Model
	focus   int
	errs    map[string]string
	saving  bool
}

// newFormState returns a closed form with configured inputs.
func newFormState() formState {
	fs := formState{errs: map[string]string{}}
	for i := range fs.inputs {
		ti := textinput.New()
		ti.Placeholder = fieldLabels[i]
		ti.CharLimit = 120
		ti.Width = 32
		ti.Prompt = ""
		fs.inputs[i] = ti
	}
	return fs
}

// openCreate resets the draft to empty and opens the form in create mode.
func (fs formState) openCreate() formState {
	fs.open = true
	fs.editing = false
	fs.id = 0
	fs.errs = map[string]string{}
	fs.saving = false
	fs.focus = fieldName
	for i := range fs.inputs {
		fs.inputs[i].Reset()
		fs.inputs[i].Blur()
	}
	fs.inputs[fieldName].Focus()
	return fs
}

// openEdit seeds the draft from an existing contact, ID included.
func (fs formState) openEdit(c contact.Contact) formState {
	fs = fs.openCreate()
	fs.editing = true
	d := contact.DraftOf(c)
	fs.id = d.ID
	fs.inputs[fieldName].SetValue(d.Name)
	fs.inputs[fieldEmail].SetValue(d.Email)
	fs.inputs[fieldPhone].SetValue(d.Phone)
	fs.inputs[fieldCompany].SetValue(d.Company)
	return fs
}

// close discards the draft and errors unconditionally.
func (fs formState) close() formState {
	fs.open = false
	fs.saving = false
	fs.errs = map[string]string{}
	for i := range fs.inputs {
		fs.inputs[i].Reset()
		fs.inputs[i].Blur()
	}
	return fs
}

// draft assembles the current draft from the inputs.
func (fs formState) draft() contact.Draft {
	return contact.Draft{
		ID:      fs.id,
		Name:    fs.inputs[fieldName].Value(),
		Email:   fs.inputs[fieldEmail].Value(),
		Phone:   fs.inputs[fieldPhone].Value(),
		Company: fs.inputs[fieldCompany].Value(),
	}
}

// handleKey processes key messages while the form is open.
// While a save is in flight all input is ignored.
func (fs formState) handleKey(msg tea.KeyMsg, svc Service) (formState, tea.Cmd) {
	if fs.saving {
		return fs, nil
	}

	switch msg.String() {
	case "esc":
		return fs.close(), nil

	case "enter":
		return fs.submit(svc)

	case "tab", "down":
		return fs.moveFocus(1), textinput.Blink

	case "shift+tab", "up":
		return fs.moveFocus(-1), textinput.Blink
	}

	// Route the key into the focused input. Editing a field clears that
	// field's error optimistically; it is not re-validated until submit.
	var cmd tea.Cmd
	fs.inputs[fs.focus], cmd = fs.inputs[fs.focus].Update(msg)
	delete(fs.errs, fieldKeys[fs.focus])
	return fs, cmd
}

// submit validates the whole draft; errors are recomputed wholesale.
// A clean draft dispatches the save call and sets the loading flag.
func (fs formState) submit(svc Service) (formState, tea.Cmd) {
	d := fs.draft()
	errs := contact.Validate(d)
	if len(errs) > 0 {
		fs.errs = errs
		return fs, nil
	}
	fs.errs = map[string]string{}
	fs.saving = true
	return fs, saveDraft(svc, d)
}

// moveFocus shifts input focus by delta, wrapping around.
func (fs formState) moveFocus(delta int) formState {
	fs.inputs[fs.focus].Blur()
	fs.focus = (fs.focus + delta + fieldCount) % fieldCount
	fs.inputs[fs.focus].Focus()
	return fs
}

// View renders the form modal box.
// spinnerView is the current spinner frame, shown while saving.
func (fs formState) View(spinnerView string) string {
	var b strings.Builder

	title := "New Contact"
	if fs.editing {
		title = "Edit Contact"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	for i := range fs.inputs {
		label := fmt.Sprintf("%-9s", fieldLabels[i]+":")
		b.WriteString(labelStyle.Render(label))
		b.WriteString(fs.inputs[i].View())
		b.WriteByte('\n')
		if msg, ok := fs.errs[fieldKeys[i]]; ok {
			b.WriteString(strings.Repeat(" ", 9))
			b.WriteString(errorText.Render(msg))
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	if fs.saving {
		b.WriteString(fmt.Sprintf("%s Saving...", spinnerView))
	} else {
		b.WriteString(mutedText.Render("enter save • esc cancel"))
	}

	return modalBorder().Render(b.String())
}
