package widgets

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func people() ([]Row, error) {
	return []Row{
		{Values: map[string]string{"id": "10", "name": "bob", "age": "40"}},
		{Values: map[string]string{"id": "2", "name": "Alice", "age": "25"}},
		{Values: map[string]string{"id": "3", "name": "carol", "age": "40"}},
		{Values: map[string]string{"id": "1", "name": "Dave", "age": "25"}},
	}, nil
}

func newPeopleTable(t *testing.T) *Table {
	t.Helper()
	table, err := NewTable(people,
		Column{Key: "id", Type: Int, Align: AlignRight},
		Column{Key: "name"},
		Column{Key: "age", Type: Int},
	)
	require.NoError(t, err)
	require.NoError(t, table.Refresh())
	return table
}

func column(records []Record, key string) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r[key])
	}
	return out
}

func TestTitleDefaultsToKey(t *testing.T) {
	table, err := NewTable(nil, Column{Key: "account_number"}, Column{Key: "id", Title: "ID"})
	require.NoError(t, err)

	cols := table.Columns()
	assert.Equal(t, "Account Number", cols[0].Title)
	assert.Equal(t, "ID", cols[1].Title)
}

func TestColumnsFreezeAfterRefresh(t *testing.T) {
	table, err := NewTable(people, Column{Key: "id"})
	require.NoError(t, err)
	require.NoError(t, table.AddColumn(Column{Key: "name"}))
	assert.ErrorIs(t, table.AddColumn(Column{Key: "name"}), ErrDuplicateColumn)

	require.NoError(t, table.Refresh())
	assert.ErrorIs(t, table.AddColumn(Column{Key: "age"}), ErrColumnsFrozen)
}

func TestRefreshKeepsSupplierOrderAndIsIdempotent(t *testing.T) {
	table := newPeopleTable(t)
	require.NoError(t, table.Refresh())
	require.NoError(t, table.Refresh())

	assert.Equal(t, []string{"10", "2", "3", "1"}, column(table.Items(false), "id"))
}

func TestSortNumericAndToggle(t *testing.T) {
	table := newPeopleTable(t)

	require.NoError(t, table.Sort("id"))
	assert.Equal(t, []string{"1", "2", "3", "10"}, column(table.Items(false), "id"))
	assert.Equal(t, "▲", table.Indicator("id"))

	require.NoError(t, table.Sort("id"))
	assert.Equal(t, []string{"10", "3", "2", "1"}, column(table.Items(false), "id"))
	assert.Equal(t, "▼", table.Indicator("id"))
}

func TestSortStringIgnoresCase(t *testing.T) {
	table := newPeopleTable(t)

	require.NoError(t, table.Sort("name"))
	assert.Equal(t, []string{"Alice", "bob", "carol", "Dave"}, column(table.Items(false), "name"))
	assert.Equal(t, "", table.Indicator("id"))
}

func TestSortIsStableInBothDirections(t *testing.T) {
	table := newPeopleTable(t)

	require.NoError(t, table.Sort("age"))
	assert.Equal(t, []string{"2", "1", "10", "3"}, column(table.Items(false), "id"))

	require.NoError(t, table.Sort("age"))
	assert.Equal(t, []string{"10", "3", "2", "1"}, column(table.Items(false), "id"))

	require.NoError(t, table.Sort("age"))
	assert.Equal(t, []string{"2", "1", "10", "3"}, column(table.Items(false), "id"))
}

func TestSortResetsOtherIndicators(t *testing.T) {
	table := newPeopleTable(t)

	require.NoError(t, table.Sort("id"))
	require.NoError(t, table.Sort("name"))
	assert.Equal(t, "", table.Indicator("id"))
	assert.Equal(t, "▲", table.Indicator("name"))

	// Coming back to a reset column starts ascending again.
	require.NoError(t, table.Sort("id"))
	assert.Equal(t, "▲", table.Indicator("id"))
}

func TestDeclaredAscendingColumnFirstSortsDescending(t *testing.T) {
	table, err := NewTable(people, Column{Key: "id", Type: Int, SortAsc: Asc})
	require.NoError(t, err)
	require.NoError(t, table.Refresh())
	assert.Equal(t, "▲", table.Indicator("id"))

	require.NoError(t, table.Sort("id"))
	assert.Equal(t, "▼", table.Indicator("id"))
	assert.Equal(t, []string{"10", "3", "2", "1"}, column(table.Items(false), "id"))
}

func TestSortUnknownColumn(t *testing.T) {
	table := newPeopleTable(t)
	assert.ErrorIs(t, table.Sort("missing"), ErrUnknownColumn)
}

func TestSortDecimalColumn(t *testing.T) {
	table, err := NewTable(func() ([]Row, error) {
		return []Row{
			{Values: map[string]string{"limit": "$ 100.00"}},
			{Values: map[string]string{"limit": "$ 9.50"}},
			{Values: map[string]string{"limit": "n/a"}},
			{Values: map[string]string{"limit": "$ 25.10"}},
		}, nil
	}, Column{Key: "limit", Type: Decimal})
	require.NoError(t, err)
	require.NoError(t, table.Refresh())

	require.NoError(t, table.Sort("limit"))
	assert.Equal(t, []string{"$ 9.50", "$ 25.10", "$ 100.00", "n/a"}, column(table.Items(false), "limit"))
}

func TestItemsToleratesMissingTrailingCells(t *testing.T) {
	table, err := NewTable(func() ([]Row, error) {
		return []Row{{Values: map[string]string{"id": "1", "extra": "ignored"}}}, nil
	}, Column{Key: "id"}, Column{Key: "name"})
	require.NoError(t, err)
	require.NoError(t, table.Refresh())

	items := table.Items(false)
	require.Len(t, items, 1)
	assert.Equal(t, Record{"id": "1"}, items[0])
}

func TestSelection(t *testing.T) {
	table := newPeopleTable(t)

	table.Select(1, 3)
	assert.Equal(t, []string{"2", "1"}, column(table.Items(true), "id"))

	table.SetCursor(0)
	table.ToggleSelect()
	assert.Equal(t, []string{"10", "2", "1"}, column(table.Items(true), "id"))

	table.ClearSelection()
	assert.Empty(t, table.Items(true))
	assert.Equal(t, []string{"10"}, column(table.SelectedOrCursor(), "id"))

	require.NoError(t, table.Refresh())
	assert.Empty(t, table.Items(true))
}

func TestCursorClamps(t *testing.T) {
	table := newPeopleTable(t)

	table.MoveCursor(-5)
	assert.Equal(t, 0, table.Cursor())
	table.MoveCursor(100)
	assert.Equal(t, 3, table.Cursor())
}

func TestTreeRows(t *testing.T) {
	table, err := NewTable(func() ([]Row, error) {
		return []Row{
			{Values: map[string]string{"name": "Assets"}, Children: []Row{
				{Values: map[string]string{"name": "Wallet"}},
				{Values: map[string]string{"name": "Bank"}},
			}},
			{Values: map[string]string{"name": "Liabilities"}},
		}, nil
	}, Column{Key: "name"})
	require.NoError(t, err)
	require.NoError(t, table.Refresh())

	visible := table.Visible()
	require.Len(t, visible, 4)
	assert.True(t, visible[0].HasChildren)
	assert.Equal(t, 1, visible[1].Depth)

	require.NoError(t, table.Sort("name"))
	assert.Equal(t, []string{"Assets", "Bank", "Wallet", "Liabilities"}, column(table.Items(false), "name"))

	table.SetCursor(0)
	table.ToggleExpand()
	assert.Equal(t, 2, table.Len())
}

func TestRefreshError(t *testing.T) {
	boom := errors.New("boom")
	table, err := NewTable(func() ([]Row, error) { return nil, boom }, Column{Key: "id"})
	require.NoError(t, err)

	assert.ErrorIs(t, table.Refresh(), boom)
	assert.Equal(t, 0, table.Len())
}
