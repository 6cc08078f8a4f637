package datatable

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DataView is a reordered or filtered row sequence permanently tied to one
// source table. It shares the table's columns, no data is copied until the
// view is materialized back into a table.
type DataView struct {
	table *DataTable
	rows  RowCollection
}

// NewDataView wraps rows over table. Every row must belong to that exact
// table instance: the check compares table identities, a structurally equal
// clone is a different table.
func NewDataView(table *DataTable, rows []Row) (*DataView, error) {
	for i, r := range rows {
		if r.table == nil {
			return nil, fmt.Errorf("%w: row #%d has no owning table", ErrCrossTableRows, i)
		}
		if r.table.id != table.id {
			return nil, fmt.Errorf("%w: row #%d belongs to table %q (%s), view is over %q (%s)",
				ErrCrossTableRows, i, r.table.name, r.table.id, table.name, table.id)
		}
	}
	return &DataView{table: table, rows: newRowCollection(table, rows)}, nil
}

// Table returns the source table.
func (v *DataView) Table() *DataTable { return v.table }

// Name returns the source table's name.
func (v *DataView) Name() string { return v.table.name }

// Columns returns the source table's columns, shared, not copied.
func (v *DataView) Columns() *ColumnCollection { return v.table.columns }

// RowCount returns the number of rows in the view.
func (v *DataView) RowCount() int { return v.rows.Count() }

// Row returns the i-th row of the view's own order.
func (v *DataView) Row(index int) (Row, error) {
	return v.rows.Row(index)
}

// Rows returns the view's row collection.
func (v *DataView) Rows() RowCollection { return v.rows }

// Clone returns a new view over the same rows.
func (v *DataView) Clone() *DataView {
	return &DataView{table: v.table, rows: newRowCollection(v.table, v.rows.All())}
}

// Filter keeps the rows pred accepts, preserving the view's current order.
func (v *DataView) Filter(pred func(Row) bool) *DataView {
	kept := make([]Row, 0, v.rows.Count())
	for _, r := range v.rows.rows {
		if pred(r) {
			kept = append(kept, r)
		}
	}
	return &DataView{table: v.table, rows: newRowCollection(v.table, kept)}
}

// Sort produces a new view with the receiver's current row order sorted by
// the given keys. Repeated sorts compose.
func (v *DataView) Sort(items ...SortItem) (*DataView, error) {
	return sortRows(v.table, v.rows.rows, items)
}

// ToDataTable copies the view out into a standalone table: each column is
// rebuilt restricted to the view's row positions, in the view's order.
// Columns rebuild concurrently, each writes its own result slot.
func (v *DataView) ToDataTable() (*DataTable, error) {
	positions := make([]int, v.rows.Count())
	for i, r := range v.rows.rows {
		positions[i] = r.index
	}

	source := v.table.columns.columns
	rebuilt := make([]AnyColumn, len(source))

	var g errgroup.Group
	for i, col := range source {
		i, col := i, col
		g.Go(func() error {
			nc, err := col.subset(positions)
			if err != nil {
				return err
			}
			rebuilt[i] = nc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewDataTable(v.table.name, rebuilt...)
}

func (v *DataView) String() string {
	return fmt.Sprintf("DataView(%q, %d columns, %d rows)",
		v.table.name, v.table.columns.Count(), v.rows.Count())
}
