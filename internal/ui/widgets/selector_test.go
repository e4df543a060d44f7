package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOptions struct {
	options []Option
	calls   int
}

func (f *fakeOptions) supply() ([]Option, error) {
	f.calls++
	return f.options, nil
}

func TestSelectorGet(t *testing.T) {
	src := &fakeOptions{options: []Option{{Key: 7, Label: "USD"}, {Key: 9, Label: "ARS"}}}
	sel, err := NewSelector(src.supply, false)
	require.NoError(t, err)

	key, label, ok := sel.Get()
	assert.True(t, ok)
	assert.Equal(t, uint(7), key)
	assert.Equal(t, "USD", label)

	sel.Next()
	key, label, _ = sel.Get()
	assert.Equal(t, uint(9), key)
	assert.Equal(t, "ARS", label)

	sel.Next()
	_, label, _ = sel.Get()
	assert.Equal(t, "USD", label)
}

func TestSelectorEmptySentinel(t *testing.T) {
	src := &fakeOptions{options: []Option{{Key: 1, Label: "Assets"}}}
	sel, err := NewSelector(src.supply, true)
	require.NoError(t, err)

	key, label, ok := sel.Get()
	assert.False(t, ok)
	assert.Equal(t, uint(0), key)
	assert.Equal(t, EmptyLabel, label)
	assert.Len(t, sel.Options(), 2)
}

func TestSelectorRefreshKeepsLabel(t *testing.T) {
	src := &fakeOptions{options: []Option{{Key: 1, Label: "A"}, {Key: 2, Label: "B"}}}
	sel, err := NewSelector(src.supply, true)
	require.NoError(t, err)
	require.True(t, sel.SetLabel("B"))

	src.options = []Option{{Key: 5, Label: "C"}, {Key: 2, Label: "B"}}
	require.NoError(t, sel.Refresh())
	_, label, _ := sel.Get()
	assert.Equal(t, "B", label)

	src.options = []Option{{Key: 5, Label: "C"}}
	require.NoError(t, sel.Refresh())
	_, label, ok := sel.Get()
	assert.False(t, ok)
	assert.Equal(t, EmptyLabel, label)
}

func TestSelectorRefreshDefaultsToFirstWithoutSentinel(t *testing.T) {
	src := &fakeOptions{options: []Option{{Key: 1, Label: "A"}, {Key: 2, Label: "B"}}}
	sel, err := NewSelector(src.supply, false)
	require.NoError(t, err)
	sel.SetKey(2)

	src.options = []Option{{Key: 3, Label: "Z"}, {Key: 4, Label: "Y"}}
	require.NoError(t, sel.Refresh())
	_, label, _ := sel.Get()
	assert.Equal(t, "Z", label)
}

func TestSelectorRefreshOnOpen(t *testing.T) {
	src := &fakeOptions{options: []Option{{Key: 1, Label: "A"}}}
	sel, err := NewSelector(src.supply, false)
	require.NoError(t, err)

	require.NoError(t, sel.Open())
	assert.Equal(t, 1, src.calls)

	sel.RefreshOnOpen = true
	require.NoError(t, sel.Open())
	assert.Equal(t, 2, src.calls)
}

func TestSelectorRejectsDuplicateLabels(t *testing.T) {
	src := &fakeOptions{options: []Option{{Key: 1, Label: "A"}, {Key: 2, Label: "A"}}}
	_, err := NewSelector(src.supply, false)
	assert.ErrorIs(t, err, ErrDuplicateLabel)
}

func TestSelectorEmptySupplier(t *testing.T) {
	sel, err := NewSelector(func() ([]Option, error) { return nil, nil }, false)
	require.NoError(t, err)

	_, _, ok := sel.Get()
	assert.False(t, ok)
	sel.Next()
	sel.Prev()
}
