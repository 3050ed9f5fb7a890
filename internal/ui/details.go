package ui

import (
	"fmt"
	"strings"

	"github.com/smileynet/rolodex/internal/contact"
)

// detailsState manages the read-only details modal. It opens immediately
// with the already-known summary fields; the supplementary section loads
// behind a spinner. Closing discards everything; reopening re-fetches.
type detailsState struct {
	open    bool
	contact contact.Contact
	loading bool
}

// openDetails seeds the modal with the known summary fields and marks
// the supplementary section as loading.
func openDetails(c contact.Contact) detailsState {
	c.Website = ""
	c.Address = ""
	return detailsState{open: true, contact: c, loading: true}
}

// apply merges a resolved detail fetch. On failure the spinner clears
// and the supplementary fields stay absent; no error is surfaced.
func (ds detailsState) apply(msg ContactDetailMsg) detailsState {
	ds.loading = false
	if msg.Err != nil {
		return ds
	}
	ds.contact.Website = msg.Detail.Website
	ds.contact.Address = msg.Detail.Address
	return ds
}

// View renders the details modal box.
// spinnerView is the current spinner frame for the supplementary section.
func (ds detailsState) View(spinnerView string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Contact Details"))
	b.WriteString("\n\n")

	c := ds.contact
	writeField(&b, "Name", c.Name)
	writeField(&b, "Email", c.Email)
	writeField(&b, "Phone", c.Phone)
	writeField(&b, "Company", c.Company)

	b.WriteByte('\n')
	switch {
	case ds.loading:
		b.WriteString(fmt.Sprintf("%s Loading details...", spinnerView))
		b.WriteByte('\n')
	default:
		if c.Website != "" {
			writeField(&b, "Website", c.Website)
		}
		if c.Address != "" {
			writeField(&b, "Address", c.Address)
		}
	}

	b.WriteByte('\n')
	b.WriteString(mutedText.Render("esc close"))

	return modalBorder().Render(b.String())
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%s%s\n", labelStyle.Render(fmt.Sprintf("%-9s", label+":")), value)
}
