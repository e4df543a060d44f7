package views

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vault/internal/ui/events"
	"vault/internal/ui/widgets"
)

type stubForm struct {
	fields   []Field
	accepted []Values
	fail     error
	changed  []string
}

func (f *stubForm) Title() string   { return "Stub" }
func (f *stubForm) Fields() []Field { return f.fields }

func (f *stubForm) Accept(v Values) error {
	if f.fail != nil {
		return f.fail
	}
	f.accepted = append(f.accepted, v)
	return nil
}

func (f *stubForm) FieldChanged(key string, _ Values) {
	f.changed = append(f.changed, key)
}

func newStubForm() *stubForm {
	return &stubForm{fields: []Field{
		idField(7),
		textField("name", "Name", ""),
		{Key: "amount", Label: "Amount", Entry: widgets.NewDecimalEntry("")},
	}}
}

func TestChangeViewFocus(t *testing.T) {
	var n events.Notifier
	cv := NewChangeView(newStubForm(), &n)

	f, ok := cv.Focused()
	require.True(t, ok)
	assert.Equal(t, "name", f.Key, "static fields never take focus")

	cv.FocusNext()
	assert.Equal(t, 2, cv.Focus())
	cv.FocusNext()
	assert.Equal(t, 1, cv.Focus())
	cv.FocusPrev()
	assert.Equal(t, 2, cv.Focus())
}

func TestChangeViewBlurOnLeave(t *testing.T) {
	var n events.Notifier
	cv := NewChangeView(newStubForm(), &n)
	cv.FocusNext()

	for _, r := range "12.345" {
		cv.Type(r)
	}
	cv.FocusNext()
	assert.Equal(t, "12.34", cv.Fields()[2].Display())
}

func TestChangeViewAccept(t *testing.T) {
	t.Run("success_notifies_and_closes", func(t *testing.T) {
		var n events.Notifier
		calls := 0
		n.Subscribe(func() { calls++ })

		form := newStubForm()
		cv := NewChangeView(form, &n)
		cv.Type('x')
		require.NoError(t, cv.Accept())

		assert.True(t, cv.Closed())
		assert.Equal(t, 1, calls)
		require.Len(t, form.accepted, 1)
		assert.Equal(t, "x", form.accepted[0].Text("name"))
		assert.Equal(t, []string{"name"}, form.changed)

		require.NoError(t, cv.Accept())
		assert.Equal(t, 1, calls, "a closed dialog accepts nothing")
	})

	t.Run("failure_keeps_dialog_open", func(t *testing.T) {
		var n events.Notifier
		calls := 0
		n.Subscribe(func() { calls++ })

		form := newStubForm()
		form.fail = errors.New("rejected")
		cv := NewChangeView(form, &n)

		assert.EqualError(t, cv.Accept(), "rejected")
		assert.False(t, cv.Closed())
		assert.Equal(t, 0, calls)
		assert.EqualError(t, cv.Err(), "rejected")

		cv.DismissErr()
		assert.NoError(t, cv.Err())
	})

	t.Run("cancel_persists_nothing", func(t *testing.T) {
		var n events.Notifier
		form := newStubForm()
		cv := NewChangeView(form, &n)
		cv.Cancel()

		assert.True(t, cv.Closed())
		assert.Empty(t, form.accepted)
	})
}

func TestValuesReaders(t *testing.T) {
	form := newStubForm()
	v := newValues(form.Fields())

	_, err := requiredDecimal(v, "amount", "Amount")
	assert.EqualError(t, err, "Amount cannot be empty")

	form.fields[2].Entry.SetText("abc")
	_, err = requiredDecimal(v, "amount", "Amount")
	assert.EqualError(t, err, "Amount is invalid")

	form.fields[2].Entry.SetText("3.5")
	d, err := requiredDecimal(v, "amount", "Amount")
	require.NoError(t, err)
	assert.Equal(t, "3.5", d.String())

	at, err := optionalTime(v, "missing", "Missing")
	assert.NoError(t, err)
	assert.Nil(t, at)
}
