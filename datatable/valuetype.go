package datatable

import (
	"time"

	"golang.org/x/exp/constraints"
)

// ValueType tags the element type of a column once it has been erased into
// an AnyColumn. The set is closed: columns built over other element types
// carry the AnyValueType tag and cannot take part in sorting or codecs.
type ValueType uint8

const (
	AnyValueType ValueType = iota

	BoolValueType
	IntValueType
	Int32ValueType
	Int64ValueType
	Uint64ValueType
	Float32ValueType
	Float64ValueType
	StringValueType
	TimeValueType
)

func (v ValueType) String() string {
	switch v {
	case BoolValueType:
		return "Bool"
	case IntValueType:
		return "Int"
	case Int32ValueType:
		return "Int32"
	case Int64ValueType:
		return "Int64"
	case Uint64ValueType:
		return "Uint64"
	case Float32ValueType:
		return "Float32"
	case Float64ValueType:
		return "Float64"
	case StringValueType:
		return "String"
	case TimeValueType:
		return "Time"
	case AnyValueType:
		return "Any"
	default:
		return ""
	}
}

// Comparable reports whether values of this type carry a natural total
// order usable as a sort key.
func (v ValueType) Comparable() bool {
	return v != AnyValueType
}

func valueTypeFor[T any]() ValueType {
	var zero T
	switch any(zero).(type) {
	case bool:
		return BoolValueType
	case int:
		return IntValueType
	case int32:
		return Int32ValueType
	case int64:
		return Int64ValueType
	case uint64:
		return Uint64ValueType
	case float32:
		return Float32ValueType
	case float64:
		return Float64ValueType
	case string:
		return StringValueType
	case time.Time:
		return TimeValueType
	default:
		return AnyValueType
	}
}

// orderingFor returns the natural total order for supported element types,
// or nil for types that cannot serve as sort keys.
func orderingFor[T any]() func(a, b T) int {
	var zero T
	switch any(zero).(type) {
	case bool:
		return func(a, b T) int {
			return compareBool(any(a).(bool), any(b).(bool))
		}
	case int:
		return func(a, b T) int {
			return compareOrdered(any(a).(int), any(b).(int))
		}
	case int32:
		return func(a, b T) int {
			return compareOrdered(any(a).(int32), any(b).(int32))
		}
	case int64:
		return func(a, b T) int {
			return compareOrdered(any(a).(int64), any(b).(int64))
		}
	case uint64:
		return func(a, b T) int {
			return compareOrdered(any(a).(uint64), any(b).(uint64))
		}
	case float32:
		return func(a, b T) int {
			return compareOrdered(any(a).(float32), any(b).(float32))
		}
	case float64:
		return func(a, b T) int {
			return compareOrdered(any(a).(float64), any(b).(float64))
		}
	case string:
		return func(a, b T) int {
			return compareOrdered(any(a).(string), any(b).(string))
		}
	case time.Time:
		return func(a, b T) int {
			return any(a).(time.Time).Compare(any(b).(time.Time))
		}
	default:
		return nil
	}
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// false sorts before true
func compareBool(a, b bool) int {
	if a == b {
		return 0
	}
	if b {
		return -1
	}
	return 1
}
