package datatable

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// AnyColumn is the type-erased face of a typed column, letting columns of
// heterogeneous element types live in one collection. The interface is
// sealed: the only implementation is *Column[T]. Use ColumnAs to recover
// the concrete column.
type AnyColumn interface {
	Name() string
	Len() int
	ValueType() ValueType

	// Value returns the element at index as an untyped value.
	Value(index int) (any, error)

	// AddAny, InsertAny and ReplaceAny are the runtime-checked counterparts
	// of the typed mutation methods. They fail with ErrInvalidType when the
	// value's runtime type differs from the column's element type, and
	// otherwise return a new column, leaving the receiver untouched.
	AddAny(value any) (AnyColumn, error)
	InsertAny(index int, value any) (AnyColumn, error)
	ReplaceAny(index int, value any) (AnyColumn, error)
	RemoveAt(index int) (AnyColumn, error)

	// subset rebuilds the column restricted to the given ordered source row
	// positions. Used when materializing a view into a table.
	subset(positions []int) (AnyColumn, error)

	// ordered reports whether the element type has a natural total order.
	ordered() bool

	// compareRows compares the elements at rows i and j. Only valid when
	// ordered() is true and both indices are in range.
	compareRows(i, j int) int

	sealed()
}

// Column is a named, fixed-length, immutable sequence of values of one
// element type. Every mutation returns a new column; the receiver is never
// changed.
type Column[T any] struct {
	name string
	data []T
	vt   ValueType
	cmp  func(a, b T) int
}

// NewColumn builds a column from a copy of values.
func NewColumn[T any](name string, values []T) *Column[T] {
	return &Column[T]{
		name: name,
		data: slices.Clone(values),
		vt:   valueTypeFor[T](),
		cmp:  orderingFor[T](),
	}
}

func (c *Column[T]) Name() string         { return c.name }
func (c *Column[T]) Len() int             { return len(c.data) }
func (c *Column[T]) ValueType() ValueType { return c.vt }

// Data returns a copy of the column's values.
func (c *Column[T]) Data() []T {
	return slices.Clone(c.data)
}

// At returns the element at index.
func (c *Column[T]) At(index int) (T, error) {
	if index < 0 || index >= len(c.data) {
		var zero T
		return zero, fmt.Errorf("%w: row %d of column %q (length %d)",
			ErrIndexOutOfBounds, index, c.name, len(c.data))
	}
	return c.data[index], nil
}

func (c *Column[T]) Value(index int) (any, error) {
	v, err := c.At(index)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Rename returns a column with the same data under a new name.
func (c *Column[T]) Rename(name string) *Column[T] {
	out := c.withData(c.data)
	out.name = name
	return out
}

// Add returns a new column with value appended.
func (c *Column[T]) Add(value T) *Column[T] {
	data := make([]T, 0, len(c.data)+1)
	data = append(data, c.data...)
	data = append(data, value)
	return c.withData(data)
}

// Insert returns a new column with value inserted before index. The valid
// index range is [0, length].
func (c *Column[T]) Insert(index int, value T) (*Column[T], error) {
	if index < 0 || index > len(c.data) {
		return nil, fmt.Errorf("%w: item index out of bounds for insert: %d (length %d)",
			ErrIndexOutOfBounds, index, len(c.data))
	}
	data := make([]T, 0, len(c.data)+1)
	data = append(data, c.data[:index]...)
	data = append(data, value)
	data = append(data, c.data[index:]...)
	return c.withData(data), nil
}

// Replace returns a new column with the element at index swapped for value.
func (c *Column[T]) Replace(index int, value T) (*Column[T], error) {
	if index < 0 || index >= len(c.data) {
		return nil, fmt.Errorf("%w: item index out of bounds for replace: %d (length %d)",
			ErrIndexOutOfBounds, index, len(c.data))
	}
	data := slices.Clone(c.data)
	data[index] = value
	return c.withData(data), nil
}

// Remove returns a new column with the element at index deleted.
func (c *Column[T]) Remove(index int) (*Column[T], error) {
	if index < 0 || index >= len(c.data) {
		return nil, fmt.Errorf("%w: item index out of bounds for remove: %d (length %d)",
			ErrIndexOutOfBounds, index, len(c.data))
	}
	data := make([]T, 0, len(c.data)-1)
	data = append(data, c.data[:index]...)
	data = append(data, c.data[index+1:]...)
	return c.withData(data), nil
}

func (c *Column[T]) AddAny(value any) (AnyColumn, error) {
	v, ok := value.(T)
	if !ok {
		return nil, fmt.Errorf("%w: invalid value type on add: %T for column %q (%s)",
			ErrInvalidType, value, c.name, c.vt)
	}
	return c.Add(v), nil
}

func (c *Column[T]) InsertAny(index int, value any) (AnyColumn, error) {
	v, ok := value.(T)
	if !ok {
		return nil, fmt.Errorf("%w: invalid value type on insert: %T for column %q (%s)",
			ErrInvalidType, value, c.name, c.vt)
	}
	return c.Insert(index, v)
}

func (c *Column[T]) ReplaceAny(index int, value any) (AnyColumn, error) {
	v, ok := value.(T)
	if !ok {
		return nil, fmt.Errorf("%w: invalid value type on replace: %T for column %q (%s)",
			ErrInvalidType, value, c.name, c.vt)
	}
	return c.Replace(index, v)
}

func (c *Column[T]) RemoveAt(index int) (AnyColumn, error) {
	return c.Remove(index)
}

func (c *Column[T]) subset(positions []int) (AnyColumn, error) {
	data := make([]T, 0, len(positions))
	for _, pos := range positions {
		if pos < 0 || pos >= len(c.data) {
			return nil, fmt.Errorf("%w: row %d of column %q (length %d)",
				ErrIndexOutOfBounds, pos, c.name, len(c.data))
		}
		data = append(data, c.data[pos])
	}
	return c.withData(data), nil
}

func (c *Column[T]) ordered() bool { return c.cmp != nil }

func (c *Column[T]) compareRows(i, j int) int {
	return c.cmp(c.data[i], c.data[j])
}

func (c *Column[T]) sealed() {}

// withData keeps name and type metadata while swapping the backing slice.
// The slice must not be aliased by the receiver afterwards, callers hand in
// freshly built slices only.
func (c *Column[T]) withData(data []T) *Column[T] {
	return &Column[T]{name: c.name, data: data, vt: c.vt, cmp: c.cmp}
}

// ColumnAs recovers the concretely typed column behind an erased one. It
// fails with ErrTypeMismatch when the element type differs.
func ColumnAs[T any](col AnyColumn) (*Column[T], error) {
	typed, ok := col.(*Column[T])
	if !ok {
		var zero T
		return nil, fmt.Errorf("%w: column %q holds %s, not %T",
			ErrTypeMismatch, col.Name(), col.ValueType(), zero)
	}
	return typed, nil
}
