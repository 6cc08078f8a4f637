package datatable

import "fmt"

// ColumnSelector addresses a column either by name or by position. The zero
// value selects column index 0.
type ColumnSelector struct {
	name   string
	index  int
	byName bool
}

// ByName selects a column by its name.
func ByName(name string) ColumnSelector {
	return ColumnSelector{name: name, byName: true}
}

// ByIndex selects a column by its position.
func ByIndex(index int) ColumnSelector {
	return ColumnSelector{index: index}
}

func (s ColumnSelector) String() string {
	if s.byName {
		return fmt.Sprintf("column %q", s.name)
	}
	return fmt.Sprintf("column #%d", s.index)
}
