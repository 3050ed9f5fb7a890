// Package contact defines the contact record, the transient form draft,
// and field-level validation for the form modal.
package contact

import (
	"regexp"
	"strings"
)

// NotAvailable is the fallback marker shown when the fixture has no value
// for a supplementary field.
const NotAvailable = "N/A"

// Contact is a single entry in the contact table. Website and Address are
// populated only by a detail fetch; they are empty otherwise.
type Contact struct {
	ID      int
	Name    string
	Email   string
	Phone   string
	Company string
	Website string
	Address string
}

// Detail carries the supplementary fields returned by a fetch-one call.
type Detail struct {
	Website string
	Address string
}

// Draft mirrors a contact's editable fields while the form modal is open.
// ID is zero in create mode and carries the contact's ID in edit mode.
type Draft struct {
	ID      int
	Name    string
	Email   string
	Phone   string
	Company string
}

// DraftOf seeds a draft from an existing contact for edit mode.
func DraftOf(c Contact) Draft {
	return Draft{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Company: c.Company,
	}
}

// Contact converts the draft into a contact record with trimmed fields.
// The caller supplies the ID (server-assigned on create, preserved on edit).
func (d Draft) Contact(id int) Contact {
	return Contact{
		ID:      id,
		Name:    strings.TrimSpace(d.Name),
		Email:   strings.TrimSpace(d.Email),
		Phone:   strings.TrimSpace(d.Phone),
		Company: strings.TrimSpace(d.Company),
	}
}

// emailPattern accepts local@domain.tld shapes: no whitespace, an '@',
// and a '.' somewhere after it.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks the whole draft and returns a field→message map.
// All fields are checked; errors are collected, not short-circuited.
// An empty map means the draft is submittable.
func Validate(d Draft) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(d.Name) == "" {
		errs["name"] = "Name is required"
	}
	email := strings.TrimSpace(d.Email)
	switch {
	case email == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(email):
		errs["email"] = "Invalid email format"
	}
	if strings.TrimSpace(d.Phone) == "" {
		errs["phone"] = "Phone is required"
	}
	if strings.TrimSpace(d.Company) == "" {
		errs["company"] = "Company is required"
	}
	return errs
}
