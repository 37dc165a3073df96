package tui

import (
	"slices"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Column is one table header.
type Column struct {
	Title string
	Align lipgloss.Position
}

// TableDefinition describes the header of a table and whether its rows can be selected.
type TableDefinition struct {
	Columns    []Column
	Selectable bool
}

// Row is one rendered table line. Muted rows are drawn dimmed.
type Row struct {
	Cells []string
	Muted bool
}

// Width is a column sizing hint. A Fill column takes the remaining space; the others are
// at least Min cells wide.
type Width struct {
	Fill bool
	Min  int
}

// TableData is the content of a table.
type TableData struct {
	Rows   []Row
	Widths []Width
}

// Table is the view model behind every list view: a definition, the current rows, a cursor
// and a set of selected row indices.
type Table struct {
	definition TableDefinition
	data       TableData
	cursor     int
	selected   map[int]struct{}
}

// NewTable creates an empty table without a cursor.
func NewTable() *Table {
	return &Table{cursor: -1, selected: map[int]struct{}{}}
}

// Definition returns the current table definition.
func (t *Table) Definition() TableDefinition { return t.definition }

// SetDefinition replaces the header and selectability.
func (t *Table) SetDefinition(def TableDefinition) {
	t.definition = def
	if !def.Selectable {
		t.selected = map[int]struct{}{}
	}
}

// Data returns the current rows and widths.
func (t *Table) Data() TableData { return t.data }

// SetData replaces the rows. The selection is cleared and the cursor moves to the first row,
// or to none when there are no rows.
func (t *Table) SetData(data TableData) {
	t.data = data
	t.selected = map[int]struct{}{}
	if len(data.Rows) == 0 {
		t.cursor = -1
		return
	}
	t.cursor = 0
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int { return len(t.data.Rows) }

// Cursor returns the current row index and whether there is one.
func (t *Table) Cursor() (int, bool) {
	if t.cursor < 0 || t.cursor >= len(t.data.Rows) {
		return 0, false
	}
	return t.cursor, true
}

// SelectNext moves the cursor down, stopping at the last row.
func (t *Table) SelectNext() {
	if len(t.data.Rows) == 0 {
		return
	}
	if t.cursor < len(t.data.Rows)-1 {
		t.cursor++
	}
}

// SelectPrevious moves the cursor up, stopping at the first row.
func (t *Table) SelectPrevious() {
	if len(t.data.Rows) == 0 {
		return
	}
	if t.cursor > 0 {
		t.cursor--
	}
}

// ToggleSelected adds the cursor row to the selection, or removes it when already selected.
// It does nothing on tables that are not selectable.
func (t *Table) ToggleSelected() {
	if !t.definition.Selectable {
		return
	}
	i, ok := t.Cursor()
	if !ok {
		return
	}
	if _, ok := t.selected[i]; ok {
		delete(t.selected, i)
		return
	}
	t.selected[i] = struct{}{}
}

// IsSelected reports whether row i is selected.
func (t *Table) IsSelected(i int) bool {
	_, ok := t.selected[i]
	return ok
}

// Selected returns the selected row indices in ascending order.
func (t *Table) Selected() []int {
	out := make([]int, 0, len(t.selected))
	for i := range t.selected {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// widthHints computes one hint per column: fill for the columns listed in fill, otherwise
// the widest cell plus padding. The last column gets no padding.
func widthHints(rows []Row, columns int, fill ...int) []Width {
	longest := make([]int, columns)
	for _, r := range rows {
		for i := 0; i < columns && i < len(r.Cells); i++ {
			longest[i] = max(longest[i], lipgloss.Width(r.Cells[i]))
		}
	}

	out := make([]Width, columns)
	for i := range out {
		switch {
		case slices.Contains(fill, i):
			out[i] = Width{Fill: true}
		case i == columns-1:
			out[i] = Width{Min: longest[i]}
		default:
			out[i] = Width{Min: longest[i] + 1}
		}
	}
	return out
}
