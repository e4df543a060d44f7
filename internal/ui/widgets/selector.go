package widgets

import (
	"errors"
	"fmt"
)

// EmptyLabel is the label of the sentinel option meaning "no choice".
const EmptyLabel = "<Empty>"

// ErrDuplicateLabel is returned when a supplier yields the same label twice.
var ErrDuplicateLabel = errors.New("duplicate option label")

// Option maps a visible label to an opaque key.
type Option struct {
	Key   uint
	Label string
}

// OptionSupplier produces the options of a selector.
type OptionSupplier func() ([]Option, error)

// Selector is a dropdown whose labels map to keys the user never sees.
type Selector struct {
	supplier OptionSupplier
	// emptyOption prepends the <Empty> sentinel, whose key is absent.
	emptyOption bool
	// RefreshOnOpen reloads the options every time the dropdown opens.
	RefreshOnOpen bool

	options []Option
	empty   []bool
	current int
}

// NewSelector creates a selector and loads its options.
func NewSelector(supplier OptionSupplier, emptyOption bool) (*Selector, error) {
	s := &Selector{supplier: supplier, emptyOption: emptyOption}
	if err := s.Refresh(); err != nil {
		return nil, err
	}
	return s, nil
}

// Refresh reloads the options. The previous label stays selected when it is
// still offered; otherwise the first option is selected, which is the empty
// sentinel when enabled. On error the previous options are kept.
func (s *Selector) Refresh() error {
	var opts []Option
	if s.supplier != nil {
		var err error
		if opts, err = s.supplier(); err != nil {
			return err
		}
	}

	seen := make(map[string]bool, len(opts))
	options := make([]Option, 0, len(opts)+1)
	empty := make([]bool, 0, len(opts)+1)
	if s.emptyOption {
		options = append(options, Option{Label: EmptyLabel})
		empty = append(empty, true)
		seen[EmptyLabel] = true
	}
	for _, o := range opts {
		if seen[o.Label] {
			return fmt.Errorf("%w: %s", ErrDuplicateLabel, o.Label)
		}
		seen[o.Label] = true
		options = append(options, o)
		empty = append(empty, false)
	}

	_, previous, hadPrevious := s.label()
	s.options, s.empty, s.current = options, empty, 0
	if hadPrevious {
		s.SetLabel(previous)
	}
	return nil
}

func (s *Selector) label() (int, string, bool) {
	if s.current < 0 || s.current >= len(s.options) {
		return 0, "", false
	}
	return s.current, s.options[s.current].Label, true
}

// Open is called when the dropdown opens.
func (s *Selector) Open() error {
	if s.RefreshOnOpen {
		return s.Refresh()
	}
	return nil
}

// Get returns the selected key and label. ok is false when nothing is
// selected or the empty sentinel is.
func (s *Selector) Get() (key uint, label string, ok bool) {
	i, label, has := s.label()
	if !has {
		return 0, "", false
	}
	if s.empty[i] {
		return 0, label, false
	}
	return s.options[i].Key, label, true
}

// Options returns the current options, sentinel included.
func (s *Selector) Options() []Option {
	return append([]Option(nil), s.options...)
}

// Index is the position of the selected option.
func (s *Selector) Index() int { return s.current }

// SetLabel selects the option with the given label and reports whether it exists.
func (s *Selector) SetLabel(label string) bool {
	for i, o := range s.options {
		if o.Label == label {
			s.current = i
			return true
		}
	}
	return false
}

// SetKey selects the first non-sentinel option with the given key.
func (s *Selector) SetKey(key uint) bool {
	for i, o := range s.options {
		if !s.empty[i] && o.Key == key {
			s.current = i
			return true
		}
	}
	return false
}

// Clear selects the empty sentinel, or the first option without one.
func (s *Selector) Clear() { s.current = 0 }

// Next moves to the following option, wrapping around.
func (s *Selector) Next() { s.step(1) }

// Prev moves to the previous option, wrapping around.
func (s *Selector) Prev() { s.step(-1) }

func (s *Selector) step(delta int) {
	n := len(s.options)
	if n == 0 {
		return
	}
	s.current = ((s.current+delta)%n + n) % n
}
