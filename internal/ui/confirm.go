package ui

import (
	"fmt"
	"strings"
)

// confirmState holds the delete confirmation prompt for one contact.
type confirmState struct {
	open     bool
	id       int
	name     string
	deleting bool
}

// openConfirm builds the prompt for the given contact.
func openConfirm(id int, name string) confirmState {
	return confirmState{open: true, id: id, name: name}
}

// View renders the confirmation prompt box.
// spinnerView is the current spinner frame, shown while the delete runs.
func (cs confirmState) View(spinnerView string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Delete contact %q?\n\n", cs.name)
	b.WriteString("This removes the entry from the list.\n\n")

	if cs.deleting {
		fmt.Fprintf(&b, "%s Deleting...", spinnerView)
	} else {
		b.WriteString(mutedText.Render("y delete • any other key cancel"))
	}

	return dangerBorder().Render(b.String())
}
