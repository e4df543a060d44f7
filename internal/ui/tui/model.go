// Package tui is the terminal shell of the vault: a menu bar over a stack of
// list windows, with modal forms and an about dialog, built on Bubble Tea.
package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"vault/internal/logger"
	"vault/internal/ui/views"
)

// Options tunes the shell.
type Options struct {
	// SQLiteVersion is shown in the about dialog.
	SQLiteVersion string
}

type window struct {
	list    *views.ListView
	offset  int
	confirm bool
}

// Model is the Bubble Tea model of the whole application.
type Model struct {
	svc  *views.Services
	opts Options

	menu []MenuItem
	path []int // open menu path; nil when the menu is closed

	windows []*window
	form    *views.ChangeView
	about   *About

	status    string
	statusErr bool

	width  int
	height int
}

// New creates the shell over svc.
func New(svc *views.Services, opts Options) *Model {
	m := &Model{svc: svc, opts: opts, width: 100, height: 30}
	m.menu = m.menuBar()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.about != nil {
			m.about.Width, m.about.Height = msg.Width, msg.Height
		}
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		m.closeAll()
		return tea.Quit
	}

	switch {
	case m.about != nil:
		switch key {
		case "esc", "enter", "q":
			m.about = nil
		}
		return nil
	case m.form != nil:
		m.formKey(msg)
		return nil
	case m.path != nil:
		return m.menuKey(key)
	}

	if key == "f10" || key == "m" {
		m.openMenu()
		return nil
	}
	if w := m.top(); w != nil {
		m.listKey(w, key)
		return nil
	}
	if key == "q" {
		return tea.Quit
	}
	return nil
}

func (m *Model) top() *window {
	if len(m.windows) == 0 {
		return nil
	}
	return m.windows[len(m.windows)-1]
}

// openTable opens a list window over the others.
func (m *Model) openTable(strategy views.ListStrategy) {
	lv, err := views.NewListView(strategy)
	if err != nil {
		m.setError(err)
		return
	}
	lv.Open()
	logger.Get().Debugf("Opened %s", lv.Title())
	m.windows = append(m.windows, &window{list: lv})
}

func (m *Model) closeTop() {
	w := m.top()
	if w == nil {
		return
	}
	w.list.Close()
	m.windows = m.windows[:len(m.windows)-1]
}

func (m *Model) closeAll() {
	for len(m.windows) > 0 {
		m.closeTop()
	}
	m.form = nil
}

func (m *Model) openAbout() {
	a := CollectAbout(m.opts.SQLiteVersion)
	a.Width, a.Height = m.width, m.height
	m.about = &a
}

func (m *Model) openForm(cv *views.ChangeView, err error) {
	if err != nil {
		m.setError(err)
		return
	}
	if cv != nil {
		m.form = cv
	}
}

func (m *Model) setStatus(s string) {
	m.status, m.statusErr = s, false
}

func (m *Model) setError(err error) {
	m.status, m.statusErr = err.Error(), true
}

func (m *Model) pageSize() int {
	if n := m.height - 6; n > 1 {
		return n
	}
	return 1
}

func (m *Model) listKey(w *window, key string) {
	lv := w.list
	t := lv.Table()

	if w.confirm {
		switch key {
		case "y", "enter":
			w.confirm = false
			if err := lv.ConfirmDelete(); err != nil {
				m.setError(err)
				return
			}
			m.setStatus(lv.Status())
		case "n", "esc":
			w.confirm = false
			lv.CancelDelete()
		}
		return
	}
	lv.DismissErr()

	switch key {
	case "up", "k":
		t.MoveCursor(-1)
	case "down", "j":
		t.MoveCursor(1)
	case "pgup":
		t.MoveCursor(-m.pageSize())
	case "pgdown":
		t.MoveCursor(m.pageSize())
	case "home":
		t.SetCursor(0)
	case "end":
		t.SetCursor(t.Len() - 1)
	case " ":
		t.ToggleSelect()
	case "left", "right", "t":
		t.ToggleExpand()
	case "a":
		m.openForm(lv.AddWith(0))
	case "A":
		m.openForm(lv.AddWith(1))
	case "e", "f2", "enter":
		m.openForm(lv.Edit())
	case "d", "delete":
		w.confirm = lv.RequestDelete()
	case "r":
		lv.Refresh()
	case "esc", "q":
		m.closeTop()
	default:
		cols := t.Columns()
		if i, ok := sortColumn(key, len(cols)); ok {
			if err := t.Sort(cols[i].Key); err != nil {
				m.setError(err)
			}
		}
	}
}

func (m *Model) formKey(msg tea.KeyMsg) {
	cv := m.form
	key := msg.String()
	if key != "enter" {
		cv.DismissErr()
	}

	switch key {
	case "esc":
		cv.Cancel()
	case "enter":
		if err := cv.Accept(); err == nil {
			m.setStatus("Saved")
		}
	case "tab", "down":
		cv.FocusNext()
	case "shift+tab", "up":
		cv.FocusPrev()
	case "left":
		cv.Cycle(-1)
	case "right":
		cv.Cycle(1)
	case "backspace":
		cv.Backspace()
	default:
		switch msg.Type {
		case tea.KeySpace:
			cv.Type(' ')
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				cv.Type(r)
			}
		}
	}
	if cv.Closed() {
		m.form = nil
	}
}

// sortColumn maps the digit keys 1-9 to the first nine columns and 0 to the
// tenth.
func sortColumn(key string, count int) (int, bool) {
	n, err := strconv.Atoi(key)
	if err != nil || len(key) != 1 {
		return 0, false
	}
	if n == 0 {
		n = 10
	}
	if n > count {
		return 0, false
	}
	return n - 1, true
}
