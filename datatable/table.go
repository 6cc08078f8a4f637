package datatable

import (
	"fmt"

	"github.com/google/uuid"
)

// DataTable is the validated aggregate: a name plus equal-length, uniquely
// named columns. Tables never change after construction, every structural
// operation builds a sibling instance with its own identity.
type DataTable struct {
	id      uuid.UUID
	name    string
	columns *ColumnCollection
}

// NewDataTable validates cols and builds a table. It fails with
// ErrStructure when columns differ in length or share a name.
func NewDataTable(name string, cols ...AnyColumn) (*DataTable, error) {
	cc, err := newColumnCollection(cols)
	if err != nil {
		return nil, err
	}
	t := &DataTable{id: uuid.New(), name: name, columns: cc}
	cc.table = t
	return t, nil
}

// ID is the table's instance identity. Structurally identical tables carry
// different ids; views use the id to reject rows from foreign tables.
func (t *DataTable) ID() uuid.UUID { return t.id }

// Name returns the table name.
func (t *DataTable) Name() string { return t.name }

// Columns returns the table's column collection.
func (t *DataTable) Columns() *ColumnCollection { return t.columns }

// RowCount returns the number of rows, zero for a table with no columns.
func (t *DataTable) RowCount() int {
	if len(t.columns.columns) == 0 {
		return 0
	}
	return t.columns.columns[0].Len()
}

// Row returns the row coordinate at index.
func (t *DataTable) Row(index int) (Row, error) {
	return NewRow(t, index)
}

// Rows returns the canonical row collection, row i at position i.
func (t *DataTable) Rows() RowCollection {
	return canonicalRows(t)
}

// ToDataView wraps the table's canonical row order as a view.
func (t *DataTable) ToDataView() *DataView {
	return &DataView{table: t, rows: canonicalRows(t)}
}

// Filter scans all rows and returns a view over those pred accepts, in
// canonical order.
func (t *DataTable) Filter(pred func(Row) bool) *DataView {
	return t.ToDataView().Filter(pred)
}

// Sort produces a view of the table's rows ordered by the given keys.
func (t *DataTable) Sort(items ...SortItem) (*DataView, error) {
	return sortRows(t, canonicalRows(t).rows, items)
}

func (t *DataTable) String() string {
	return fmt.Sprintf("DataTable(%q, %d columns, %d rows)",
		t.name, t.columns.Count(), t.RowCount())
}
