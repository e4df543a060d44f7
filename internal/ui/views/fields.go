// Package views implements the vault's dialogs as terminal-independent
// models: a generic list view and a generic change view, each driven by a
// per-entity strategy.
package views

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	apperrors "vault/internal/errors"
	"vault/internal/ui/widgets"
)

// Field is one labeled input of a form. Exactly one of Entry, Select or
// Static is set; Static fields are read-only.
type Field struct {
	Key    string
	Label  string
	Entry  widgets.Entry
	Select *widgets.Selector
	Static string
	// Hint is extra read-only text shown next to the input.
	Hint func() string
}

// selectedHint returns a Hint showing lookup of the selected key. lookup runs
// once per key; an error shows no hint and is retried on the next selection.
func selectedHint(sel *widgets.Selector, lookup func(id uint) (string, error)) func() string {
	cache := map[uint]string{}
	return func() string {
		id, _, ok := sel.Get()
		if !ok {
			return ""
		}
		if hint, ok := cache[id]; ok {
			return hint
		}
		hint, err := lookup(id)
		if err != nil {
			return ""
		}
		cache[id] = hint
		return hint
	}
}

// Editable reports whether the field takes focus.
func (f Field) Editable() bool {
	return f.Entry != nil || f.Select != nil
}

// Display is the text shown for the field's current value.
func (f Field) Display() string {
	switch {
	case f.Entry != nil:
		return f.Entry.Text()
	case f.Select != nil:
		_, label, _ := f.Select.Get()
		return label
	}
	return f.Static
}

// Values reads typed values out of a form's fields by key.
type Values map[string]Field

func newValues(fields []Field) Values {
	v := make(Values, len(fields))
	for _, f := range fields {
		v[f.Key] = f
	}
	return v
}

// Text returns the trimmed text of a text entry.
func (v Values) Text(key string) string {
	if e, ok := v[key].Entry.(*widgets.TextEntry); ok {
		return e.String()
	}
	return ""
}

// Decimal returns the value of a decimal entry.
func (v Values) Decimal(key string) (decimal.Decimal, bool) {
	if e, ok := v[key].Entry.(*widgets.DecimalEntry); ok {
		return e.Decimal()
	}
	return decimal.Zero, false
}

// Int returns the value of an integer entry.
func (v Values) Int(key string) (int, bool) {
	if e, ok := v[key].Entry.(*widgets.IntEntry); ok {
		return e.Int()
	}
	return 0, false
}

// Time returns the value of a datetime entry, in UTC.
func (v Values) Time(key string) (time.Time, bool) {
	if e, ok := v[key].Entry.(*widgets.DatetimeEntry); ok {
		return e.UTC()
	}
	return time.Time{}, false
}

// Bool returns the state of a check entry.
func (v Values) Bool(key string) bool {
	if e, ok := v[key].Entry.(*widgets.CheckEntry); ok {
		return e.Checked()
	}
	return false
}

// Key returns the selected key of a selector; ok is false for the empty option.
func (v Values) Key(key string) (uint, bool) {
	if s := v[key].Select; s != nil {
		k, _, ok := s.Get()
		return k, ok
	}
	return 0, false
}

// Label returns the selected label of a selector.
func (v Values) Label(key string) string {
	if s := v[key].Select; s != nil {
		_, label, _ := s.Get()
		return label
	}
	return ""
}

// Filled reports whether an entry holds any text.
func (v Values) Filled(key string) bool {
	e := v[key].Entry
	return e != nil && e.Text() != ""
}

// invalid builds the validation error shown when a field cannot be read.
func invalid(label string) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("%s is invalid", label))
}

// required builds the validation error shown when a field is empty.
func required(label string) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("%s cannot be empty", label))
}

// requiredTime reads a mandatory datetime field.
func requiredTime(v Values, key, label string) (time.Time, error) {
	if !v.Filled(key) {
		return time.Time{}, required(label)
	}
	t, ok := v.Time(key)
	if !ok {
		return time.Time{}, invalid(label)
	}
	return t, nil
}

// optionalTime reads a datetime field that may be left empty.
func optionalTime(v Values, key, label string) (*time.Time, error) {
	if !v.Filled(key) {
		return nil, nil
	}
	t, ok := v.Time(key)
	if !ok {
		return nil, invalid(label)
	}
	return &t, nil
}

// requiredDecimal reads a mandatory amount.
func requiredDecimal(v Values, key, label string) (decimal.Decimal, error) {
	if !v.Filled(key) {
		return decimal.Zero, required(label)
	}
	d, ok := v.Decimal(key)
	if !ok {
		return decimal.Zero, invalid(label)
	}
	return d, nil
}

// requiredKey reads a mandatory selector.
func requiredKey(v Values, key, label string) (uint, error) {
	k, ok := v.Key(key)
	if !ok {
		return 0, required(label)
	}
	return k, nil
}

func idField(id uint) Field {
	return Field{Key: "id", Label: "Id", Static: strconv.FormatUint(uint64(id), 10)}
}

func textField(key, label, initial string) Field {
	return Field{Key: key, Label: label, Entry: widgets.NewTextEntry(initial)}
}

func datetimeField(key, label string, loc *time.Location, value *time.Time) Field {
	e := widgets.NewDatetimeEntry(loc)
	if value != nil {
		e.SetUTC(*value)
	}
	return Field{Key: key, Label: label, Entry: e}
}
