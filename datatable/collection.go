package datatable

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// ColumnCollection is the ordered set of erased columns owned by one table.
// It is immutable: the name index is built once at construction, and every
// structural change validates a candidate column sequence and builds a new
// owning table, leaving the original untouched.
type ColumnCollection struct {
	table   *DataTable
	columns []AnyColumn
	byName  map[string]int
}

func newColumnCollection(columns []AnyColumn) (*ColumnCollection, error) {
	byName := make(map[string]int, len(columns))
	for i, col := range columns {
		if col == nil {
			return nil, fmt.Errorf("%w: column #%d is nil", ErrStructure, i)
		}
		if prev, dup := byName[col.Name()]; dup {
			return nil, fmt.Errorf("%w: duplicate column name %q at #%d and #%d",
				ErrStructure, col.Name(), prev, i)
		}
		byName[col.Name()] = i
	}
	if len(columns) > 0 {
		for _, col := range columns[1:] {
			if col.Len() != columns[0].Len() {
				return nil, fmt.Errorf("%w: columns must all be the same length, %q has %d rows while %q has %d",
					ErrStructure, col.Name(), col.Len(), columns[0].Name(), columns[0].Len())
			}
		}
	}
	return &ColumnCollection{columns: slices.Clone(columns), byName: byName}, nil
}

// Count returns the number of columns.
func (cc *ColumnCollection) Count() int { return len(cc.columns) }

// All returns the columns in order.
func (cc *ColumnCollection) All() []AnyColumn {
	return slices.Clone(cc.columns)
}

// Names returns the column names in order.
func (cc *ColumnCollection) Names() []string {
	names := make([]string, len(cc.columns))
	for i, col := range cc.columns {
		names[i] = col.Name()
	}
	return names
}

// Get resolves a selector to a column.
func (cc *ColumnCollection) Get(sel ColumnSelector) (AnyColumn, error) {
	idx, err := cc.indexOf(sel)
	if err != nil {
		return nil, err
	}
	return cc.columns[idx], nil
}

// GetAs resolves a selector and recovers the concretely typed column.
func GetAs[T any](cc *ColumnCollection, sel ColumnSelector) (*Column[T], error) {
	col, err := cc.Get(sel)
	if err != nil {
		return nil, err
	}
	return ColumnAs[T](col)
}

func (cc *ColumnCollection) indexOf(sel ColumnSelector) (int, error) {
	if sel.byName {
		idx, ok := cc.byName[sel.name]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrNotFound, sel)
		}
		return idx, nil
	}
	if sel.index < 0 || sel.index >= len(cc.columns) {
		return 0, fmt.Errorf("%w: %s (table has %d columns)", ErrNotFound, sel, len(cc.columns))
	}
	return sel.index, nil
}

// indexOfColumn resolves a column by instance identity.
func (cc *ColumnCollection) indexOfColumn(col AnyColumn) (int, error) {
	for i, c := range cc.columns {
		if c == col {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: column %q is not part of this table", ErrNotFound, col.Name())
}

// Add appends a column and returns the new owning table.
func (cc *ColumnCollection) Add(col AnyColumn) (*DataTable, error) {
	return cc.Insert(len(cc.columns), col)
}

// Insert places a column before index and returns the new owning table. The
// valid index range is [0, Count].
func (cc *ColumnCollection) Insert(index int, col AnyColumn) (*DataTable, error) {
	if index < 0 || index > len(cc.columns) {
		return nil, fmt.Errorf("%w: column index %d for insert (table has %d columns)",
			ErrIndexOutOfBounds, index, len(cc.columns))
	}
	candidate := make([]AnyColumn, 0, len(cc.columns)+1)
	candidate = append(candidate, cc.columns[:index]...)
	candidate = append(candidate, col)
	candidate = append(candidate, cc.columns[index:]...)
	return cc.commit(candidate)
}

// Replace swaps the column at index for col and returns the new owning table.
func (cc *ColumnCollection) Replace(index int, col AnyColumn) (*DataTable, error) {
	if index < 0 || index >= len(cc.columns) {
		return nil, fmt.Errorf("%w: column index %d for replace (table has %d columns)",
			ErrIndexOutOfBounds, index, len(cc.columns))
	}
	candidate := slices.Clone(cc.columns)
	candidate[index] = col
	return cc.commit(candidate)
}

// Remove deletes the column at index and returns the new owning table.
func (cc *ColumnCollection) Remove(index int) (*DataTable, error) {
	if index < 0 || index >= len(cc.columns) {
		return nil, fmt.Errorf("%w: column index %d for remove (table has %d columns)",
			ErrIndexOutOfBounds, index, len(cc.columns))
	}
	candidate := make([]AnyColumn, 0, len(cc.columns)-1)
	candidate = append(candidate, cc.columns[:index]...)
	candidate = append(candidate, cc.columns[index+1:]...)
	return cc.commit(candidate)
}

// InsertAt resolves sel and inserts col before the resolved position.
func (cc *ColumnCollection) InsertAt(sel ColumnSelector, col AnyColumn) (*DataTable, error) {
	idx, err := cc.indexOf(sel)
	if err != nil {
		return nil, err
	}
	return cc.Insert(idx, col)
}

// ReplaceAt resolves sel and replaces the resolved column with col.
func (cc *ColumnCollection) ReplaceAt(sel ColumnSelector, col AnyColumn) (*DataTable, error) {
	idx, err := cc.indexOf(sel)
	if err != nil {
		return nil, err
	}
	return cc.Replace(idx, col)
}

// RemoveAt resolves sel and removes the resolved column.
func (cc *ColumnCollection) RemoveAt(sel ColumnSelector) (*DataTable, error) {
	idx, err := cc.indexOf(sel)
	if err != nil {
		return nil, err
	}
	return cc.Remove(idx)
}

// ReplaceColumn swaps the exact column instance old for col.
func (cc *ColumnCollection) ReplaceColumn(old, col AnyColumn) (*DataTable, error) {
	idx, err := cc.indexOfColumn(old)
	if err != nil {
		return nil, err
	}
	return cc.Replace(idx, col)
}

// RemoveColumn removes the exact column instance col.
func (cc *ColumnCollection) RemoveColumn(col AnyColumn) (*DataTable, error) {
	idx, err := cc.indexOfColumn(col)
	if err != nil {
		return nil, err
	}
	return cc.Remove(idx)
}

// commit validates the candidate column sequence and builds the new owning
// table. On failure nothing is changed, the receiver and its table stay as
// they were.
func (cc *ColumnCollection) commit(candidate []AnyColumn) (*DataTable, error) {
	name := ""
	if cc.table != nil {
		name = cc.table.name
	}
	return NewDataTable(name, candidate...)
}
