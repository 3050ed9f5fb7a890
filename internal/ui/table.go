package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/rolodex/internal/contact"
)

// tableChrome is the horizontal space consumed by cell padding across
// the four columns.
const tableChrome = 8

// newTable builds the contact table with placeholder column widths;
// the first WindowSizeMsg sets real ones.
func newTable() table.Model {
	t := table.New(
		table.WithColumns(tableColumns(80)),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"})
	styles.Selected = styles.Selected.
		Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"}).
		Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "230"}).
		Bold(false)
	t.SetStyles(styles)

	return t
}

// tableColumns sizes the four columns proportionally to the total width.
func tableColumns(totalWidth int) []table.Column {
	usable := totalWidth - tableChrome
	if usable < 40 {
		usable = 40
	}
	name := usable * 25 / 100
	email := usable * 30 / 100
	phone := usable * 22 / 100
	company := usable - name - email - phone
	return []table.Column{
		{Title: "Name", Width: name},
		{Title: "Email", Width: email},
		{Title: "Phone", Width: phone},
		{Title: "Company", Width: company},
	}
}

// rowsFrom maps store contacts to table rows, preserving order so the
// table cursor index addresses the store list directly.
func rowsFrom(contacts []contact.Contact) []table.Row {
	rows := make([]table.Row, len(contacts))
	for i, c := range contacts {
		rows[i] = table.Row{c.Name, c.Email, c.Phone, c.Company}
	}
	return rows
}
