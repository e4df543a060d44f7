package views

import (
	"errors"

	"vault/internal/logger"
	"vault/internal/ui/events"
	"vault/internal/ui/widgets"
)

// ErrNoSelection is returned when an action needs a row and none is selected.
var ErrNoSelection = errors.New("no row selected")

// ListStrategy supplies the rows of a list view and the forms and deletion
// behind its buttons.
type ListStrategy interface {
	Title() string
	Columns() []widgets.Column
	Rows() ([]widgets.Row, error)
	NewForm() (FormStrategy, error)
	EditForm(id uint) (FormStrategy, error)
	Delete(ids []uint) (int64, error)
}

// Action is one "new" button of a list view.
type Action struct {
	Label string
	Form  func() (FormStrategy, error)
}

// MultiListStrategy is a list holding several kinds of rows, such as the
// chart of accounts. Edit and delete dispatch on the whole record.
type MultiListStrategy interface {
	ListStrategy
	Actions() []Action
	EditRecord(r widgets.Record) (FormStrategy, error)
	DeleteRecords(rs []widgets.Record) (string, error)
}

// ListView shows a table of records with add, edit and delete actions. It
// refreshes whenever its DataChanged notifier fires.
type ListView struct {
	strategy    ListStrategy
	table       *widgets.Table
	changed     events.Notifier
	unsubscribe func()
	pending     []widgets.Record
	open        bool
	err         error
	status      string
}

// NewListView builds the table of a list view. Call Open to load it.
func NewListView(strategy ListStrategy) (*ListView, error) {
	table, err := widgets.NewTable(strategy.Rows, strategy.Columns()...)
	if err != nil {
		return nil, err
	}
	return &ListView{strategy: strategy, table: table}, nil
}

// Open subscribes to data changes and loads the rows.
func (l *ListView) Open() {
	if l.open {
		return
	}
	l.open = true
	l.unsubscribe = l.changed.Subscribe(l.Refresh)
	l.Refresh()
}

// Refresh reloads the table. A failure is kept in Err.
func (l *ListView) Refresh() {
	if err := l.table.Refresh(); err != nil {
		l.err = err
		logger.Get().Errorw("Failed to load rows", "view", l.strategy.Title(), "error", err)
		return
	}
	logger.Get().Debugf("%s updated", l.strategy.Title())
}

// Title is the window title.
func (l *ListView) Title() string { return l.strategy.Title() }

// Table is the view's table widget.
func (l *ListView) Table() *widgets.Table { return l.table }

// DataChanged is the notifier child dialogs fire after persisting.
func (l *ListView) DataChanged() *events.Notifier { return &l.changed }

// Actions lists the "new" buttons.
func (l *ListView) Actions() []Action {
	if m, ok := l.strategy.(MultiListStrategy); ok {
		return m.Actions()
	}
	return []Action{{Label: "New", Form: l.strategy.NewForm}}
}

// Add opens the form of the first "new" action.
func (l *ListView) Add() (*ChangeView, error) {
	return l.AddWith(0)
}

// AddWith opens the form of the i-th "new" action.
func (l *ListView) AddWith(i int) (*ChangeView, error) {
	actions := l.Actions()
	if i < 0 || i >= len(actions) {
		return nil, nil
	}
	return l.openForm(actions[i].Form)
}

// Edit opens the edit form of the first selected row, or of the row under
// the cursor when nothing is selected.
func (l *ListView) Edit() (*ChangeView, error) {
	rows := l.table.SelectedOrCursor()
	if len(rows) == 0 {
		return nil, ErrNoSelection
	}
	first := rows[0]
	if m, ok := l.strategy.(MultiListStrategy); ok {
		return l.openForm(func() (FormStrategy, error) { return m.EditRecord(first) })
	}
	id, ok := recordID(first)
	if !ok {
		return nil, ErrNoSelection
	}
	return l.openForm(func() (FormStrategy, error) { return l.strategy.EditForm(id) })
}

func (l *ListView) openForm(build func() (FormStrategy, error)) (*ChangeView, error) {
	form, err := build()
	if err != nil {
		l.err = err
		return nil, err
	}
	return NewChangeView(form, &l.changed), nil
}

// RequestDelete stages the selected rows, or the row under the cursor, for
// deletion and reports whether confirmation is needed.
func (l *ListView) RequestDelete() bool {
	l.pending = l.table.SelectedOrCursor()
	return len(l.pending) > 0
}

// PendingDelete is the number of rows awaiting confirmation.
func (l *ListView) PendingDelete() int { return len(l.pending) }

// CancelDelete discards the staged rows.
func (l *ListView) CancelDelete() { l.pending = nil }

// ConfirmDelete deletes the staged rows in one batch and notifies
// DataChanged on success.
func (l *ListView) ConfirmDelete() error {
	rows := l.pending
	l.pending = nil
	if len(rows) == 0 {
		return nil
	}

	var status string
	if m, ok := l.strategy.(MultiListStrategy); ok {
		var err error
		if status, err = m.DeleteRecords(rows); err != nil {
			l.err = err
			return err
		}
	} else {
		ids := make([]uint, 0, len(rows))
		for _, r := range rows {
			if id, ok := recordID(r); ok {
				ids = append(ids, id)
			}
		}
		n, err := l.strategy.Delete(ids)
		if err != nil {
			l.err = err
			return err
		}
		status = deletedStatus(n)
	}

	l.status = status
	logger.Get().Infow("Deleted rows", "view", l.strategy.Title(), "result", status)
	l.changed.Notify()
	return nil
}

func deletedStatus(n int64) string {
	if n == 1 {
		return "1 row deleted"
	}
	return formatInt(n) + " rows deleted"
}

// Close unsubscribes from data changes.
func (l *ListView) Close() {
	if l.unsubscribe != nil {
		l.unsubscribe()
		l.unsubscribe = nil
	}
	l.open = false
}

// IsOpen reports whether the view is open.
func (l *ListView) IsOpen() bool { return l.open }

// Err is the last refresh, load or delete error.
func (l *ListView) Err() error { return l.err }

// DismissErr clears the error message.
func (l *ListView) DismissErr() { l.err = nil }

// Status is the outcome message of the last delete.
func (l *ListView) Status() string { return l.status }
