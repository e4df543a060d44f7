package widgets

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeString(e Entry, s string) {
	for _, r := range s {
		e.Type(r)
	}
}

func TestDecimalEntryRoundsHalfToEven(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"12.345", "12.34"},
		{"12.355", "12.36"},
		{"12.3", "12.30"},
		{"-0.005", "0.00"},
		{"7", "7.00"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			e := NewDecimalEntry("")
			typeString(e, tc.in)
			require.True(t, e.Valid())
			e.Blur()
			assert.Equal(t, tc.want, e.Text())
		})
	}
}

func TestDecimalEntryInvalidInput(t *testing.T) {
	e := NewDecimalEntry("")
	typeString(e, "12.3a")

	assert.False(t, e.Valid())
	_, ok := e.Decimal()
	assert.False(t, ok)

	e.Blur()
	assert.Equal(t, "12.3a", e.Text(), "invalid text is left as typed")

	e.Backspace()
	assert.True(t, e.Valid())
	d, ok := e.Decimal()
	require.True(t, ok)
	assert.True(t, d.Equal(decimal.RequireFromString("12.3")))
}

func TestDecimalEntryEmptyIsAbsent(t *testing.T) {
	e := NewDecimalEntry("")
	assert.True(t, e.Valid())
	_, ok := e.Decimal()
	assert.False(t, ok)
}

func TestDecimalEntryBoundsAndPadding(t *testing.T) {
	min := decimal.Zero
	e := NewDecimalEntry("")
	e.Min = &min
	e.PadTo = 3

	e.SetText("-1")
	assert.False(t, e.Valid())

	e.SetText("5.5")
	e.Blur()
	assert.Equal(t, "005.50", e.Text())
}

func TestDecimalEntrySetDecimal(t *testing.T) {
	e := NewDecimalEntry("")
	e.SetDecimal(decimal.RequireFromString("1500.5"))
	assert.Equal(t, "1500.50", e.Text())
}

func TestIntEntry(t *testing.T) {
	one, ninetyNine := 1, 99
	e := NewIntEntry("", &one, &ninetyNine, 2)

	typeString(e, "3")
	e.Blur()
	assert.Equal(t, "03", e.Text())
	v, ok := e.Int()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	e.SetText("0")
	assert.False(t, e.Valid())
	e.SetText("x")
	assert.False(t, e.Valid())
	_, ok = e.Int()
	assert.False(t, ok)
}

func TestTextEntry(t *testing.T) {
	e := NewTextEntry("  US Dollar ")
	assert.Equal(t, "US Dollar", e.String())
	e.Backspace()
	assert.Equal(t, "  US Dollar", e.Text())
}

func TestDatetimeEntryRoundTrip(t *testing.T) {
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	require.NoError(t, err)

	e := NewDatetimeEntry(loc)
	typeString(e, "2024-05-10 12:30:00")
	require.True(t, e.Valid())

	utc, ok := e.UTC()
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC), utc)

	shown := NewDatetimeEntry(loc)
	shown.SetUTC(utc)
	assert.Equal(t, "2024-05-10 12:30:00", shown.Text())
}

func TestDatetimeEntryNormalisesOnBlur(t *testing.T) {
	e := NewDatetimeEntry(time.UTC)
	e.SetText("2024-01-02T03:04:05Z")
	require.True(t, e.Valid())
	e.Blur()
	assert.Equal(t, "2024-01-02 03:04:05", e.Text())
}

func TestDatetimeEntryInvalid(t *testing.T) {
	e := NewDatetimeEntry(time.UTC)
	e.SetText("not a date")
	assert.False(t, e.Valid())
	_, ok := e.UTC()
	assert.False(t, ok)
}

func TestCheckEntry(t *testing.T) {
	e := NewCheckEntry(false)
	assert.Equal(t, "[ ]", e.Text())
	e.Type(' ')
	assert.True(t, e.Checked())
	assert.Equal(t, "[x]", e.Text())
	e.Type('q')
	assert.True(t, e.Checked())
	e.SetText("false")
	assert.False(t, e.Checked())
}
