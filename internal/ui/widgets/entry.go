package widgets

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"
)

// DatetimeLayout is the canonical display format of timestamps.
const DatetimeLayout = "2006-01-02 15:04:05"

// Entry is an editable single-line field. Typing re-parses the text and
// updates Valid; Blur rewrites valid text in canonical form.
type Entry interface {
	Type(r rune)
	Backspace()
	SetText(s string)
	Text() string
	Blur()
	Valid() bool
}

// field is the shared editing state. parse returns the canonical text of a
// valid input; empty text is valid and absent.
type field struct {
	text   string
	valid  bool
	filled bool
	parse  func(string) (string, bool)
	canon  string
}

func (f *field) Type(r rune) {
	f.text += string(r)
	f.reparse()
}

func (f *field) Backspace() {
	if f.text == "" {
		return
	}
	runes := []rune(f.text)
	f.text = string(runes[:len(runes)-1])
	f.reparse()
}

func (f *field) SetText(s string) {
	f.text = s
	f.reparse()
}

func (f *field) Text() string { return f.text }

func (f *field) Valid() bool { return f.valid }

// Blur normalises the text when it parses; invalid text is left untouched.
func (f *field) Blur() {
	if f.valid && f.filled {
		f.text = f.canon
	}
}

func (f *field) reparse() {
	trimmed := strings.TrimSpace(f.text)
	f.canon, f.filled = "", trimmed != ""
	if !f.filled {
		f.valid = true
		return
	}
	f.canon, f.valid = f.parse(trimmed)
}

// ok reports whether the field holds a present, valid value.
func (f *field) ok() bool { return f.valid && f.filled }

// TextEntry holds free text.
type TextEntry struct {
	field
}

// NewTextEntry creates a text entry with an initial value.
func NewTextEntry(initial string) *TextEntry {
	e := &TextEntry{}
	e.parse = func(s string) (string, bool) { return s, true }
	e.SetText(initial)
	return e
}

// String returns the trimmed text.
func (e *TextEntry) String() string { return strings.TrimSpace(e.text) }

// DecimalEntry holds a fixed-point amount. Values are rounded half to even
// to Places digits.
type DecimalEntry struct {
	field
	Places int32
	Min    *decimal.Decimal
	Max    *decimal.Decimal
	// PadTo zero-pads the integer part to at least this many digits.
	PadTo int
}

// NewDecimalEntry creates an entry with two decimal places.
func NewDecimalEntry(initial string) *DecimalEntry {
	e := &DecimalEntry{Places: 2}
	e.parse = e.parseDecimal
	e.SetText(initial)
	return e
}

func (e *DecimalEntry) parseDecimal(s string) (string, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return "", false
	}
	d = d.RoundBank(e.Places)
	if (e.Min != nil && d.LessThan(*e.Min)) || (e.Max != nil && d.GreaterThan(*e.Max)) {
		return "", false
	}
	return padInteger(d.StringFixedBank(e.Places), e.PadTo), true
}

// Decimal returns the rounded value; ok is false for empty or invalid text.
func (e *DecimalEntry) Decimal() (decimal.Decimal, bool) {
	if !e.ok() {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(e.canon)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// SetDecimal displays d in canonical form.
func (e *DecimalEntry) SetDecimal(d decimal.Decimal) {
	e.SetText(d.String())
	e.Blur()
}

func padInteger(s string, width int) string {
	if width <= 0 {
		return s
	}
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")
	if n := width - len(intPart); n > 0 {
		intPart = strings.Repeat("0", n) + intPart
	}
	if hasFrac {
		return sign + intPart + "." + frac
	}
	return sign + intPart
}

// IntEntry holds an integer within optional bounds.
type IntEntry struct {
	field
	Min   *int
	Max   *int
	PadTo int
}

// NewIntEntry creates an integer entry.
func NewIntEntry(initial string, min, max *int, padTo int) *IntEntry {
	e := &IntEntry{Min: min, Max: max, PadTo: padTo}
	e.parse = e.parseInt
	e.SetText(initial)
	return e
}

func (e *IntEntry) parseInt(s string) (string, bool) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return "", false
	}
	if (e.Min != nil && v < *e.Min) || (e.Max != nil && v > *e.Max) {
		return "", false
	}
	return fmt.Sprintf("%0*d", e.PadTo, v), true
}

// Int returns the value; ok is false for empty or invalid text.
func (e *IntEntry) Int() (int, bool) {
	if !e.ok() {
		return 0, false
	}
	v, err := strconv.Atoi(e.canon)
	return v, err == nil
}

// DatetimeEntry holds a timestamp typed in a local time zone.
type DatetimeEntry struct {
	field
	loc   *time.Location
	value time.Time
}

// NewDatetimeEntry creates an entry that reads input in loc.
func NewDatetimeEntry(loc *time.Location) *DatetimeEntry {
	if loc == nil {
		loc = time.Local
	}
	e := &DatetimeEntry{loc: loc}
	e.parse = e.parseTime
	e.SetText("")
	return e
}

func (e *DatetimeEntry) parseTime(s string) (string, bool) {
	t, err := dateparse.ParseIn(s, e.loc)
	if err != nil {
		return "", false
	}
	e.value = t.In(e.loc).Truncate(time.Second)
	return e.value.Format(DatetimeLayout), true
}

// Local returns the value in the entry's time zone.
func (e *DatetimeEntry) Local() (time.Time, bool) {
	if !e.ok() {
		return time.Time{}, false
	}
	return e.value, true
}

// UTC returns the value converted to UTC for storage.
func (e *DatetimeEntry) UTC() (time.Time, bool) {
	t, ok := e.Local()
	return t.UTC(), ok
}

// SetUTC displays a stored UTC value in local time.
func (e *DatetimeEntry) SetUTC(t time.Time) {
	e.SetText(t.In(e.loc).Format(DatetimeLayout))
}

// SetNow displays the current time.
func (e *DatetimeEntry) SetNow() {
	e.SetUTC(time.Now().UTC())
}

// Location is the zone input is read in.
func (e *DatetimeEntry) Location() *time.Location { return e.loc }

// CheckEntry is a boolean toggle. Space or x flips it.
type CheckEntry struct {
	checked bool
}

// NewCheckEntry creates a toggle.
func NewCheckEntry(checked bool) *CheckEntry {
	return &CheckEntry{checked: checked}
}

func (e *CheckEntry) Type(r rune) {
	if r == ' ' || r == 'x' || r == 'X' {
		e.checked = !e.checked
	}
}

func (e *CheckEntry) Backspace() { e.checked = false }

// SetText accepts the strconv boolean spellings; anything else unchecks.
func (e *CheckEntry) SetText(s string) {
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	e.checked = err == nil && v
}

func (e *CheckEntry) Text() string {
	if e.checked {
		return "[x]"
	}
	return "[ ]"
}

func (e *CheckEntry) Blur() {}

func (e *CheckEntry) Valid() bool { return true }

// Checked reports the state of the toggle.
func (e *CheckEntry) Checked() bool { return e.checked }
