package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/smileynet/rolodex/internal/contact"
	"github.com/smileynet/rolodex/internal/store"
)

// helpBarHeight is the number of lines reserved for the help bar.
const helpBarHeight = 1

// titleBarHeight is the number of lines consumed by the title line.
const titleBarHeight = 2

// Model is the root Bubble Tea model: contact table, form modal,
// details modal, and delete confirmation, routed by mode.
type Model struct {
	svc   Service
	store *store.Store
	log   *zap.Logger
	limit int

	mode    Mode
	width   int
	height  int
	table   table.Model
	help    help.Model
	spinner spinner.Model
	loading bool // Startup list fetch in flight.

	form      formState
	details   detailsState
	confirm   confirmState
	detailGen int // Invalidates in-flight detail fetches on close/reopen.
}

// NewModel creates a browse-mode model backed by the given service.
// The store is populated by the List call dispatched from Init; limit
// bounds how many fixture records are taken. A nil logger is replaced
// with a no-op.
func NewModel(svc Service, limit int, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		svc:     svc,
		store:   store.New(),
		log:     log,
		limit:   limit,
		mode:    ModeBrowse,
		table:   newTable(),
		help:    help.New(),
		spinner: sp,
		loading: true,
		form:    newFormState(),
	}
}

// Init dispatches the one-time startup load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadContacts(m.svc))
}

// Update handles incoming messages with mode-based routing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetColumns(tableColumns(msg.Width))
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(m.contentHeight())
		return m, nil

	case spinner.TickMsg:
		if !m.spinning() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ContactListMsg:
		return m.applyList(msg), nil

	case ContactSavedMsg:
		return m.applySaved(msg), nil

	case ContactDeletedMsg:
		return m.applyDeleted(msg), nil

	case ContactDetailMsg:
		// Discard stale resumes: the modal was closed or reopened since
		// this fetch was dispatched.
		if m.mode != ModeDetails || msg.Gen != m.detailGen {
			return m, nil
		}
		if msg.Err != nil {
			m.log.Warn("detail fetch failed", zap.Int("id", msg.ID), zap.Error(msg.Err))
		}
		m.details = m.details.apply(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// spinning reports whether any loading flag needs the spinner ticking.
func (m Model) spinning() bool {
	return m.loading || m.details.loading || m.form.saving || m.confirm.deleting
}

// applyList applies the startup load result. On failure the store stays
// empty; the error is logged and nothing is surfaced to the user.
func (m Model) applyList(msg ContactListMsg) Model {
	m.loading = false
	if msg.Err != nil {
		m.log.Warn("contact list load failed", zap.Error(msg.Err))
		return m
	}
	contacts := msg.Contacts
	if m.limit > 0 && len(contacts) > m.limit {
		contacts = contacts[:m.limit]
	}
	m.store.Replace(contacts)
	m.refreshRows()
	return m
}

// applySaved applies a create/update result. On failure the form stays
// open with draft and errors untouched; on success the store is updated
// from the submitted payload and the form closes.
func (m Model) applySaved(msg ContactSavedMsg) Model {
	m.form.saving = false
	if msg.Err != nil {
		m.log.Warn("contact save failed", zap.Bool("created", msg.Created), zap.Error(msg.Err))
		return m
	}

	c := msg.Draft.Contact(msg.ID)
	if msg.Created {
		m.store.Add(c)
	} else if !m.store.Update(c) {
		m.log.Warn("updated contact missing from store", zap.Int("id", c.ID))
	}

	m.form = m.form.close()
	m.mode = ModeBrowse
	m.refreshRows()
	return m
}

// applyDeleted applies a delete result. The prompt closes either way;
// on success exactly the matching entry is removed.
func (m Model) applyDeleted(msg ContactDeletedMsg) Model {
	m.confirm = confirmState{}
	m.mode = ModeBrowse
	if msg.Err != nil {
		m.log.Warn("contact delete failed", zap.Int("id", msg.ID), zap.Error(msg.Err))
		return m
	}
	m.store.Remove(msg.ID)
	m.refreshRows()
	return m
}

// refreshRows rebuilds the table rows from the store, clamping the
// cursor after removals.
func (m *Model) refreshRows() {
	m.table.SetRows(rowsFrom(m.store.All()))
	if n := m.store.Len(); n > 0 && m.table.Cursor() >= n {
		m.table.SetCursor(n - 1)
	}
}

// selected returns the contact under the table cursor.
func (m Model) selected() (contact.Contact, bool) {
	all := m.store.All()
	i := m.table.Cursor()
	if i < 0 || i >= len(all) {
		return contact.Contact{}, false
	}
	return all[i], true
}

// handleKey processes key messages with mode-based routing.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeForm:
		var cmd tea.Cmd
		m.form, cmd = m.form.handleKey(msg, m.svc)
		if !m.form.open {
			m.mode = ModeBrowse
		}
		if m.form.saving {
			cmd = tea.Batch(cmd, m.spinner.Tick)
		}
		return m, cmd

	case ModeDetails:
		switch msg.String() {
		case "esc", "q":
			// Invalidate any in-flight fetch before discarding the modal.
			m.detailGen++
			m.details = detailsState{}
			m.mode = ModeBrowse
		}
		return m, nil

	case ModeConfirmDelete:
		if m.confirm.deleting {
			return m, nil
		}
		switch msg.String() {
		case "y", "Y":
			m.confirm.deleting = true
			return m, tea.Batch(m.spinner.Tick, deleteContact(m.svc, m.confirm.id))
		default:
			m.confirm = confirmState{}
			m.mode = ModeBrowse
			return m, nil
		}
	}

	return m.handleBrowseKey(msg)
}

// handleBrowseKey processes key messages in browse mode.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "a":
		m.mode = ModeForm
		m.form = m.form.openCreate()
		return m, textinput.Blink

	case "e":
		if c, ok := m.selected(); ok {
			m.mode = ModeForm
			m.form = m.form.openEdit(c)
			return m, textinput.Blink
		}
		return m, nil

	case "enter", "v":
		if c, ok := m.selected(); ok {
			m.mode = ModeDetails
			m.detailGen++
			m.details = openDetails(c)
			return m, tea.Batch(m.spinner.Tick, fetchDetail(m.svc, c.ID, m.detailGen))
		}
		return m, nil

	case "d":
		if c, ok := m.selected(); ok {
			m.mode = ModeConfirmDelete
			m.confirm = openConfirm(c.ID, c.Name)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// contentHeight returns the usable height for the table,
// accounting for the title line and the help bar.
func (m Model) contentHeight() int {
	h := m.height - titleBarHeight - helpBarHeight
	if h < 1 {
		return 1
	}
	return h
}

// View renders the browse screen, overlaying the active modal.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	switch m.mode {
	case ModeForm:
		return centered(m.width, m.height, m.form.View(m.spinner.View()))
	case ModeDetails:
		return centered(m.width, m.height, m.details.View(m.spinner.View()))
	case ModeConfirmDelete:
		return centered(m.width, m.height, m.confirm.View(m.spinner.View()))
	}

	return m.viewBrowse()
}

// viewBrowse renders the title line, the table (or its loading/empty
// placeholder), and the help bar.
func (m Model) viewBrowse() string {
	title := titleStyle.Render(fmt.Sprintf("Contacts (%d)", m.store.Len()))

	var body string
	switch {
	case m.loading:
		body = fmt.Sprintf("%s Loading contacts...", m.spinner.View())
	case m.store.Len() == 0:
		body = mutedText.Render("No contacts. Press a to add one.")
	default:
		body = m.table.View()
	}

	helpView := m.help.View(HelpBindings(m.mode))

	return lipgloss.JoinVertical(lipgloss.Left, title, "", body, helpView)
}
