package datatable

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Row is a coordinate, not a snapshot: it pairs an owning table with an
// index into that table's canonical row order. Reading a cell resolves
// through the table's current columns.
type Row struct {
	table *DataTable
	index int
}

// NewRow builds a row coordinate for the given table.
func NewRow(table *DataTable, index int) (Row, error) {
	if index < 0 || index >= table.RowCount() {
		return Row{}, fmt.Errorf("%w: row %d of table %q (%d rows)",
			ErrIndexOutOfBounds, index, table.name, table.RowCount())
	}
	return Row{table: table, index: index}, nil
}

// Table returns the owning table.
func (r Row) Table() *DataTable { return r.table }

// Index returns the row's position in the owning table's canonical order.
func (r Row) Index() int { return r.index }

// Value reads the cell in the column addressed by sel.
func (r Row) Value(sel ColumnSelector) (any, error) {
	col, err := r.table.Columns().Get(sel)
	if err != nil {
		return nil, err
	}
	return col.Value(r.index)
}

// Values reads the whole row in column order.
func (r Row) Values() ([]any, error) {
	cols := r.table.Columns()
	out := make([]any, cols.Count())
	for i, col := range cols.columns {
		v, err := col.Value(r.index)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// RowValueAs reads a cell with its concrete type.
func RowValueAs[T any](r Row, sel ColumnSelector) (T, error) {
	var zero T
	col, err := GetAs[T](r.table.Columns(), sel)
	if err != nil {
		return zero, err
	}
	return col.At(r.index)
}

// RowCollection is an ordered sequence of rows tagged with one owning
// table. The canonical collection enumerates a table's rows in order,
// derived collections (the ones views wrap) may select and reorder freely.
type RowCollection struct {
	table *DataTable
	rows  []Row
}

func newRowCollection(table *DataTable, rows []Row) RowCollection {
	return RowCollection{table: table, rows: rows}
}

func canonicalRows(table *DataTable) RowCollection {
	rows := make([]Row, table.RowCount())
	for i := range rows {
		rows[i] = Row{table: table, index: i}
	}
	return RowCollection{table: table, rows: rows}
}

// Table returns the owning table.
func (rc RowCollection) Table() *DataTable { return rc.table }

// Count returns the number of rows in the collection.
func (rc RowCollection) Count() int { return len(rc.rows) }

// Row returns the i-th row of the collection's own order.
func (rc RowCollection) Row(i int) (Row, error) {
	if i < 0 || i >= len(rc.rows) {
		return Row{}, fmt.Errorf("%w: row %d of collection (%d rows)",
			ErrIndexOutOfBounds, i, len(rc.rows))
	}
	return rc.rows[i], nil
}

// All returns the rows in the collection's order.
func (rc RowCollection) All() []Row {
	return slices.Clone(rc.rows)
}
