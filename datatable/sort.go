package datatable

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// SortDirection is the direction of one sort key.
type SortDirection uint8

const (
	Ascending SortDirection = iota
	Descending
)

func (d SortDirection) String() string {
	switch d {
	case Ascending:
		return "Ascending"
	case Descending:
		return "Descending"
	default:
		return ""
	}
}

// SortItem pairs a column selector with a direction. A sort request is an
// ordered, non-empty list of items, evaluated left to right as primary,
// secondary, ... keys.
type SortItem struct {
	Column    ColumnSelector
	Direction SortDirection
}

// Asc is shorthand for an ascending sort key.
func Asc(sel ColumnSelector) SortItem {
	return SortItem{Column: sel}
}

// Desc is shorthand for a descending sort key.
func Desc(sel ColumnSelector) SortItem {
	return SortItem{Column: sel, Direction: Descending}
}

type sortKey struct {
	col  AnyColumn
	desc bool
}

// sortRows reorders current by the given keys and wraps the result together
// with table as a new view. The sort is stable: rows comparing equal on all
// keys keep their relative order, so repeated sorts over data with ties are
// reproducible. Column data is never touched, only row coordinates move.
func sortRows(table *DataTable, current []Row, items []SortItem) (*DataView, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("sort requires at least one sort item")
	}

	keys := make([]sortKey, len(items))
	for i, item := range items {
		col, err := table.columns.Get(item.Column)
		if err != nil {
			return nil, err
		}
		if !col.ordered() {
			return nil, fmt.Errorf("%w: column %q (%s) has no natural order and cannot be a sort key",
				ErrTypeMismatch, col.Name(), col.ValueType())
		}
		keys[i] = sortKey{col: col, desc: item.Direction == Descending}
	}

	order := slices.Clone(current)
	slices.SortStableFunc(order, func(a, b Row) int {
		for _, k := range keys {
			c := k.col.compareRows(a.index, b.index)
			if k.desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})

	return &DataView{table: table, rows: newRowCollection(table, order)}, nil
}
