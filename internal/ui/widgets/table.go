// Package widgets holds the terminal-independent state of the vault's input
// widgets: the sortable table, the key-value selector and the validated
// entries. Rendering lives in the tui package.
package widgets

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ErrColumnsFrozen is returned by AddColumn once the table has been refreshed.
	ErrColumnsFrozen = errors.New("columns cannot change after the first refresh")
	// ErrDuplicateColumn is returned when a column key is declared twice.
	ErrDuplicateColumn = errors.New("column already declared")
	// ErrUnknownColumn is returned when sorting by a key that is not a column.
	ErrUnknownColumn = errors.New("unknown column")
)

// ColumnType selects how a column compares when sorted.
type ColumnType int

const (
	String ColumnType = iota
	Int
	Decimal
)

// Align is the horizontal alignment of a column's cells.
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

// Column declares one table column.
type Column struct {
	Key      string
	Title    string // defaults to the title-cased key
	Type     ColumnType
	Align    Align
	Width    int
	MinWidth int
	Stretch  bool
	// SortAsc is the declared initial order of the data: true ascending,
	// false descending, nil unsorted.
	SortAsc *bool
}

// Asc and Desc are convenience values for Column.SortAsc.
var (
	Asc  = boolPtr(true)
	Desc = boolPtr(false)
)

func boolPtr(b bool) *bool { return &b }

// Row is one record produced by a table supplier. Values maps column keys to
// display text; Children nests rows under it.
type Row struct {
	Values   map[string]string
	Children []Row
}

// Record is a row read back from the table, keyed by column.
type Record map[string]string

// Supplier produces the rows of a table.
type Supplier func() ([]Row, error)

type sortDir int

const (
	unsorted sortDir = iota
	ascending
	descending
)

type item struct {
	values   []string
	children []*item
	expanded bool
	selected bool
	depth    int
}

// Table is a sortable, selectable grid of rows, optionally nested as a tree.
type Table struct {
	columns  []Column
	index    map[string]int
	dirs     []sortDir
	frozen   bool
	supplier Supplier

	roots  []*item
	cursor int
}

var titler = cases.Title(language.Und)

// NewTable creates a table bound to supplier with the given columns.
func NewTable(supplier Supplier, columns ...Column) (*Table, error) {
	t := &Table{supplier: supplier, index: make(map[string]int)}
	for _, c := range columns {
		if err := t.AddColumn(c); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// AddColumn declares a new column. Columns are fixed after the first refresh.
func (t *Table) AddColumn(c Column) error {
	if t.frozen {
		return ErrColumnsFrozen
	}
	if _, ok := t.index[c.Key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateColumn, c.Key)
	}
	if c.Title == "" {
		c.Title = titler.String(strings.ReplaceAll(c.Key, "_", " "))
	}
	if c.Width == 0 {
		c.Width = 20
	}
	if c.MinWidth == 0 {
		c.MinWidth = 2
	}
	t.index[c.Key] = len(t.columns)
	t.columns = append(t.columns, c)
	t.dirs = append(t.dirs, dirOf(c.SortAsc))
	return nil
}

func dirOf(asc *bool) sortDir {
	switch {
	case asc == nil:
		return unsorted
	case *asc:
		return ascending
	}
	return descending
}

// Columns returns the declared columns.
func (t *Table) Columns() []Column {
	return append([]Column(nil), t.columns...)
}

// Indicator returns the sort arrow shown in a column heading, if any.
func (t *Table) Indicator(key string) string {
	i, ok := t.index[key]
	if !ok {
		return ""
	}
	switch t.dirs[i] {
	case ascending:
		return "▲"
	case descending:
		return "▼"
	}
	return ""
}

// Refresh discards every row and reloads them from the supplier in supplier
// order, so the headings go back to their declared sort indicators. Selection
// is cleared. On error the table is left empty.
func (t *Table) Refresh() error {
	t.frozen = true
	t.roots = nil
	cursor := t.cursor
	t.cursor = 0
	for i, c := range t.columns {
		t.dirs[i] = dirOf(c.SortAsc)
	}
	if t.supplier == nil {
		return nil
	}
	rows, err := t.supplier()
	if err != nil {
		return err
	}
	t.roots = t.build(rows, 0)
	t.SetCursor(cursor)
	return nil
}

func (t *Table) build(rows []Row, depth int) []*item {
	items := make([]*item, 0, len(rows))
	for _, r := range rows {
		it := &item{expanded: true, depth: depth}
		// Trailing cells may be missing; they are never padded.
		for _, c := range t.columns {
			v, ok := r.Values[c.Key]
			if !ok {
				break
			}
			it.values = append(it.values, v)
		}
		it.children = t.build(r.Children, depth+1)
		items = append(items, it)
	}
	return items
}

// Sort re-orders the displayed rows by the given column without reloading
// them. Siblings are sorted at every level of the tree. Repeated calls toggle
// the direction; a column declared ascending first sorts descending. Every
// other column loses its indicator.
func (t *Table) Sort(key string) error {
	col, ok := t.index[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownColumn, key)
	}
	desc := t.dirs[col] == ascending
	for i := range t.dirs {
		t.dirs[i] = unsorted
	}
	if desc {
		t.dirs[col] = descending
	} else {
		t.dirs[col] = ascending
	}

	less := t.lessFunc(col)
	var sortLevel func(items []*item)
	sortLevel = func(items []*item) {
		sort.SliceStable(items, func(i, j int) bool {
			if desc {
				return less(items[j], items[i])
			}
			return less(items[i], items[j])
		})
		for _, it := range items {
			sortLevel(it.children)
		}
	}
	sortLevel(t.roots)
	return nil
}

func (t *Table) lessFunc(col int) func(a, b *item) bool {
	cell := func(it *item) string {
		if col < len(it.values) {
			return it.values[col]
		}
		return ""
	}
	fold := func(a, b *item) bool {
		return strings.ToLower(cell(a)) < strings.ToLower(cell(b))
	}
	switch t.columns[col].Type {
	case Int:
		return func(a, b *item) bool {
			x, errX := strconv.ParseInt(strings.TrimSpace(cell(a)), 10, 64)
			y, errY := strconv.ParseInt(strings.TrimSpace(cell(b)), 10, 64)
			if errX != nil || errY != nil {
				return numericFallback(errX, errY, fold(a, b))
			}
			return x < y
		}
	case Decimal:
		return func(a, b *item) bool {
			x, errX := parseAmount(cell(a))
			y, errY := parseAmount(cell(b))
			if errX != nil || errY != nil {
				return numericFallback(errX, errY, fold(a, b))
			}
			return x.LessThan(y)
		}
	}
	return fold
}

// numericFallback places unparsable cells after numbers.
func numericFallback(errA, errB error, folded bool) bool {
	switch {
	case errA == nil:
		return true
	case errB == nil:
		return false
	}
	return folded
}

func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	return decimal.NewFromString(s)
}

// VisibleRow is a row as displayed: expanded subtrees are flattened in order.
type VisibleRow struct {
	Record      Record
	Depth       int
	HasChildren bool
	Expanded    bool
	Selected    bool
}

func (t *Table) visible() []*item {
	var out []*item
	var walk func(items []*item)
	walk = func(items []*item) {
		for _, it := range items {
			out = append(out, it)
			if it.expanded {
				walk(it.children)
			}
		}
	}
	walk(t.roots)
	return out
}

func (t *Table) record(it *item) Record {
	r := make(Record, len(it.values))
	for i, v := range it.values {
		r[t.columns[i].Key] = v
	}
	return r
}

// Visible returns the displayed rows.
func (t *Table) Visible() []VisibleRow {
	items := t.visible()
	out := make([]VisibleRow, 0, len(items))
	for _, it := range items {
		out = append(out, VisibleRow{
			Record:      t.record(it),
			Depth:       it.depth,
			HasChildren: len(it.children) > 0,
			Expanded:    it.expanded,
			Selected:    it.selected,
		})
	}
	return out
}

// Len is the number of displayed rows.
func (t *Table) Len() int { return len(t.visible()) }

// Items returns every row, depth first in display order, or only the
// selected ones.
func (t *Table) Items(selectedOnly bool) []Record {
	var out []Record
	var walk func(items []*item)
	walk = func(items []*item) {
		for _, it := range items {
			if !selectedOnly || it.selected {
				out = append(out, t.record(it))
			}
			walk(it.children)
		}
	}
	walk(t.roots)
	return out
}

// Cursor is the index of the highlighted displayed row.
func (t *Table) Cursor() int { return t.cursor }

// MoveCursor moves the highlight by delta, clamped to the displayed rows.
func (t *Table) MoveCursor(delta int) {
	t.SetCursor(t.cursor + delta)
}

// SetCursor moves the highlight to i, clamped to the displayed rows.
func (t *Table) SetCursor(i int) {
	n := t.Len()
	switch {
	case n == 0 || i < 0:
		t.cursor = 0
	case i >= n:
		t.cursor = n - 1
	default:
		t.cursor = i
	}
}

// Select replaces the selection with the displayed rows at the given indexes.
func (t *Table) Select(indexes ...int) {
	items := t.visible()
	t.clearSelection()
	for _, i := range indexes {
		if i >= 0 && i < len(items) {
			items[i].selected = true
		}
	}
}

// ToggleSelect flips the selection of the row under the cursor.
func (t *Table) ToggleSelect() {
	items := t.visible()
	if t.cursor < len(items) {
		items[t.cursor].selected = !items[t.cursor].selected
	}
}

// ClearSelection deselects every row.
func (t *Table) ClearSelection() { t.clearSelection() }

func (t *Table) clearSelection() {
	var walk func(items []*item)
	walk = func(items []*item) {
		for _, it := range items {
			it.selected = false
			walk(it.children)
		}
	}
	walk(t.roots)
}

// SelectedOrCursor returns the selected rows, or the row under the cursor
// when nothing is selected.
func (t *Table) SelectedOrCursor() []Record {
	if sel := t.Items(true); len(sel) > 0 {
		return sel
	}
	items := t.visible()
	if t.cursor < len(items) {
		return []Record{t.record(items[t.cursor])}
	}
	return nil
}

// ToggleExpand opens or closes the subtree under the cursor.
func (t *Table) ToggleExpand() {
	items := t.visible()
	if t.cursor < len(items) && len(items[t.cursor].children) > 0 {
		items[t.cursor].expanded = !items[t.cursor].expanded
	}
}
