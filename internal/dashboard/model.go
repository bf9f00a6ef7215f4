package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/phonebook/internal/contact"
	"github.com/smileynet/phonebook/internal/display"
)

// helpBarHeight is the number of lines reserved for the help bar at the bottom.
const helpBarHeight = 1

// statusBarHeight is the number of lines reserved for the status line.
const statusBarHeight = 1

// borderChrome is the number of lines consumed by top + bottom borders.
const borderChrome = 2

// Model is the root Bubble Tea model for the dashboard TUI.
// It owns the address book for the lifetime of the program; all mutation
// happens inside Update.
type Model struct {
	book     *contact.AddressBook
	names    []string
	cursor   int
	mode     Mode
	focus    Focus
	confirm  confirmState
	status   string
	width    int
	height   int
	viewport viewport.Model
	help     help.Model
	browse   browseKeys
	confirmK confirmKeys
}

// NewModel creates a dashboard Model in browse mode with left-pane focus.
func NewModel(book *contact.AddressBook) Model {
	m := Model{
		book:     book,
		names:    book.Names(),
		mode:     ModeBrowse,
		focus:    PaneLeft,
		viewport: viewport.New(0, 0),
		help:     help.New(),
		browse:   BrowseKeyMap(),
		confirmK: ConfirmKeyMap(),
	}
	m.refreshDetail()
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages with mode-based routing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		_, rightWidth := PaneWidths(msg.Width)
		vpWidth := rightWidth - borderChrome
		if vpWidth < 0 {
			vpWidth = 0
		}
		m.viewport.Width = vpWidth
		m.viewport.Height = m.contentHeight()
		return m, nil

	case tea.KeyMsg:
		if m.mode == ModeConfirm {
			return m.handleConfirmKey(msg)
		}
		return m.handleBrowseKey(msg)
	}

	return m, nil
}

// handleBrowseKey processes key messages in browse mode.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.browse.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.browse.Tab):
		if m.focus == PaneLeft {
			m.focus = PaneRight
		} else {
			m.focus = PaneLeft
		}
		return m, nil

	case key.Matches(msg, m.browse.Delete):
		if r, ok := m.selected(); ok {
			m.confirm = newConfirmState(r)
			m.mode = ModeConfirm
			m.status = ""
		}
		return m, nil
	}

	if m.focus == PaneRight {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.browse.Up):
		if len(m.names) > 0 {
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(m.names) - 1
			}
			m.refreshDetail()
		}
	case key.Matches(msg, m.browse.Down):
		if len(m.names) > 0 {
			m.cursor++
			if m.cursor >= len(m.names) {
				m.cursor = 0
			}
			m.refreshDetail()
		}
	}
	return m, nil
}

// handleConfirmKey processes key messages on the delete confirmation.
// Any key other than yes or no is ignored.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.confirmK.Yes):
		res := m.book.Delete(m.confirm.name)
		m.status = res.Message
		m.names = m.book.Names()
		if m.cursor >= len(m.names) {
			m.cursor = len(m.names) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.mode = ModeBrowse
		m.confirm = confirmState{}
		m.refreshDetail()
	case key.Matches(msg, m.confirmK.No):
		m.mode = ModeBrowse
		m.confirm = confirmState{}
	}
	return m, nil
}

// selected returns the record under the cursor.
func (m Model) selected() (*contact.Record, bool) {
	if len(m.names) == 0 || m.cursor < 0 || m.cursor >= len(m.names) {
		return nil, false
	}
	return m.book.Find(m.names[m.cursor])
}

// SelectedName returns the contact name at the cursor, or "" when empty.
func (m Model) SelectedName() string {
	if r, ok := m.selected(); ok {
		return r.Name().String()
	}
	return ""
}

// refreshDetail loads the selected record into the right pane viewport.
func (m *Model) refreshDetail() {
	r, ok := m.selected()
	if !ok {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(display.RenderRecord(r))
	m.viewport.GotoTop()
}

// contentHeight returns the usable height for pane content,
// accounting for border chrome, the status line and the help bar.
func (m Model) contentHeight() int {
	h := m.height - borderChrome - statusBarHeight - helpBarHeight
	if h < 1 {
		return 1
	}
	return h
}

// View renders the two-pane layout with status line and help bar.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	leftWidth, rightWidth := PaneWidths(m.width)
	contentHeight := m.contentHeight()

	var leftStyle, rightStyle lipgloss.Style
	if m.focus == PaneLeft {
		leftStyle = FocusedBorder()
		rightStyle = UnfocusedBorder()
	} else {
		leftStyle = UnfocusedBorder()
		rightStyle = FocusedBorder()
	}

	leftStyle = leftStyle.
		Width(leftWidth - borderChrome).
		Height(contentHeight)
	rightStyle = rightStyle.
		Width(rightWidth - borderChrome).
		Height(contentHeight)

	leftPane := leftStyle.Render(m.viewLeft())
	rightPane := rightStyle.Render(m.viewRight())
	panes := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)
	statusLine := statusStyle.Render(m.status)
	helpView := m.help.View(HelpBindings(m.mode))

	return lipgloss.JoinVertical(lipgloss.Left, panes, statusLine, helpView)
}

// listHeaderHeight is the count line plus the blank line under it.
const listHeaderHeight = 2

// visibleRange returns the [start, end) slice of names that fits the left
// pane with the cursor row in view.
func (m Model) visibleRange() (int, int) {
	rows := m.contentHeight() - listHeaderHeight
	if rows < 1 {
		rows = 1
	}
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := min(start+rows, len(m.names))
	return start, end
}

// viewLeft renders the window of the contact list around the cursor.
func (m Model) viewLeft() string {
	if len(m.names) == 0 {
		return dimStyle.Render("No contacts")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Contacts (%d)\n", len(m.names))
	start, end := m.visibleRange()
	for i := start; i < end; i++ {
		b.WriteByte('\n')
		if i == m.cursor {
			b.WriteString(CursorMarker + m.names[i])
			continue
		}
		b.WriteString("  " + m.names[i])
	}
	return b.String()
}

// viewRight renders the selected record or the delete confirmation.
func (m Model) viewRight() string {
	if m.mode == ModeConfirm {
		return m.confirm.View()
	}
	if len(m.names) == 0 {
		return ""
	}
	return m.viewport.View()
}
