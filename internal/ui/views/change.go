package views

import (
	"vault/internal/logger"
	"vault/internal/ui/events"
)

// FormStrategy supplies the fields of a new/edit dialog and persists them.
type FormStrategy interface {
	Title() string
	Fields() []Field
	// Accept validates values and applies them. A returned error leaves the
	// dialog open.
	Accept(values Values) error
}

// FieldWatcher is implemented by forms that react to edits, such as the
// transaction form keeping both amounts equal.
type FieldWatcher interface {
	FieldChanged(key string, values Values)
}

// ChangeView is a modal form with accept and cancel.
type ChangeView struct {
	form    FormStrategy
	fields  []Field
	focus   int
	changed *events.Notifier
	closed  bool
	err     error
}

// NewChangeView opens a form. changed is notified after a successful accept.
func NewChangeView(form FormStrategy, changed *events.Notifier) *ChangeView {
	c := &ChangeView{form: form, fields: form.Fields(), changed: changed, focus: -1}
	c.FocusNext()
	return c
}

// Title is the dialog title.
func (c *ChangeView) Title() string { return c.form.Title() }

// Fields are the dialog's inputs in display order.
func (c *ChangeView) Fields() []Field { return c.fields }

// Focus is the index of the focused field, or -1 when none is editable.
func (c *ChangeView) Focus() int { return c.focus }

// Focused returns the focused field.
func (c *ChangeView) Focused() (Field, bool) {
	if c.focus < 0 || c.focus >= len(c.fields) {
		return Field{}, false
	}
	return c.fields[c.focus], true
}

// FocusNext moves focus to the next editable field, wrapping around.
func (c *ChangeView) FocusNext() { c.moveFocus(1) }

// FocusPrev moves focus to the previous editable field, wrapping around.
func (c *ChangeView) FocusPrev() { c.moveFocus(-1) }

func (c *ChangeView) moveFocus(delta int) {
	if f, ok := c.Focused(); ok && f.Entry != nil {
		f.Entry.Blur()
	}
	n := len(c.fields)
	i := c.focus
	for step := 0; step < n; step++ {
		i = ((i+delta)%n + n) % n
		if c.fields[i].Editable() {
			c.focus = i
			return
		}
	}
}

// Type sends a key to the focused entry. On a selector, space moves to the
// next option.
func (c *ChangeView) Type(r rune) {
	f, ok := c.Focused()
	if !ok {
		return
	}
	switch {
	case f.Entry != nil:
		f.Entry.Type(r)
	case f.Select != nil && r == ' ':
		f.Select.Next()
	default:
		return
	}
	c.edited(f)
}

// Backspace deletes the last character of the focused entry.
func (c *ChangeView) Backspace() {
	if f, ok := c.Focused(); ok && f.Entry != nil {
		f.Entry.Backspace()
		c.edited(f)
	}
}

// Cycle moves the focused selector by delta options, reloading them first
// when the selector refreshes on open.
func (c *ChangeView) Cycle(delta int) {
	f, ok := c.Focused()
	if !ok || f.Select == nil {
		return
	}
	if err := f.Select.Open(); err != nil {
		c.err = err
		return
	}
	if delta < 0 {
		f.Select.Prev()
	} else {
		f.Select.Next()
	}
	c.edited(f)
}

func (c *ChangeView) edited(f Field) {
	if w, ok := c.form.(FieldWatcher); ok {
		w.FieldChanged(f.Key, newValues(c.fields))
	}
}

// Accept validates and applies the form. On success the parent is notified
// and the dialog closes; on failure the error is kept and the dialog stays open.
func (c *ChangeView) Accept() error {
	if c.closed {
		return nil
	}
	for _, f := range c.fields {
		if f.Entry != nil {
			f.Entry.Blur()
		}
	}
	if err := c.form.Accept(newValues(c.fields)); err != nil {
		c.err = err
		logger.Get().Debugw("Form rejected", "form", c.form.Title(), "error", err)
		return err
	}
	c.err = nil
	c.changed.Notify()
	c.closed = true
	return nil
}

// Cancel closes the dialog without persisting.
func (c *ChangeView) Cancel() { c.closed = true }

// Closed reports whether the dialog has been dismissed.
func (c *ChangeView) Closed() bool { return c.closed }

// Err is the error of the last rejected accept.
func (c *ChangeView) Err() error { return c.err }

// DismissErr clears the error message.
func (c *ChangeView) DismissErr() { c.err = nil }
