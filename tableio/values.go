package tableio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/stephennancekivell/go-datatable/datatable"
)

// encodeValues serializes a column's values into a flat byte payload. The
// layout per element type is fixed-width little endian for numerics, one
// byte for bools, uvarint-length-prefixed bytes for strings and unix
// nanoseconds for times.
func encodeValues(col datatable.AnyColumn) ([]byte, error) {
	switch col.ValueType() {
	case datatable.BoolValueType:
		return appendValues(col, func(out []byte, v bool) []byte {
			if v {
				return append(out, 1)
			}
			return append(out, 0)
		})
	case datatable.IntValueType:
		return appendValues(col, func(out []byte, v int) []byte {
			return binary.LittleEndian.AppendUint64(out, uint64(int64(v)))
		})
	case datatable.Int32ValueType:
		return appendValues(col, func(out []byte, v int32) []byte {
			return binary.LittleEndian.AppendUint32(out, uint32(v))
		})
	case datatable.Int64ValueType:
		return appendValues(col, func(out []byte, v int64) []byte {
			return binary.LittleEndian.AppendUint64(out, uint64(v))
		})
	case datatable.Uint64ValueType:
		return appendValues(col, func(out []byte, v uint64) []byte {
			return binary.LittleEndian.AppendUint64(out, v)
		})
	case datatable.Float32ValueType:
		return appendValues(col, func(out []byte, v float32) []byte {
			return binary.LittleEndian.AppendUint32(out, math.Float32bits(v))
		})
	case datatable.Float64ValueType:
		return appendValues(col, func(out []byte, v float64) []byte {
			return binary.LittleEndian.AppendUint64(out, math.Float64bits(v))
		})
	case datatable.StringValueType:
		return appendValues(col, func(out []byte, v string) []byte {
			out = binary.AppendUvarint(out, uint64(len(v)))
			return append(out, v...)
		})
	case datatable.TimeValueType:
		return appendValues(col, func(out []byte, v time.Time) []byte {
			return binary.LittleEndian.AppendUint64(out, uint64(v.UnixNano()))
		})
	default:
		return nil, fmt.Errorf("%w: cannot encode column %q of type %s",
			datatable.ErrInvalidType, col.Name(), col.ValueType())
	}
}

func appendValues[T any](col datatable.AnyColumn, put func([]byte, T) []byte) ([]byte, error) {
	typed, err := datatable.ColumnAs[T](col)
	if err != nil {
		return nil, err
	}
	var out []byte
	for _, v := range typed.Data() {
		out = put(out, v)
	}
	return out, nil
}

// decodeValues rebuilds a column from a payload written by encodeValues.
func decodeValues(name string, vt datatable.ValueType, rows int, payload []byte) (datatable.AnyColumn, error) {
	r := bytes.NewReader(payload)

	switch vt {
	case datatable.BoolValueType:
		return readValues(name, rows, func() (bool, error) {
			b, err := r.ReadByte()
			return b != 0, err
		})
	case datatable.IntValueType:
		return readValues(name, rows, func() (int, error) {
			v, err := readUint64(r)
			return int(int64(v)), err
		})
	case datatable.Int32ValueType:
		return readValues(name, rows, func() (int32, error) {
			v, err := readUint32(r)
			return int32(v), err
		})
	case datatable.Int64ValueType:
		return readValues(name, rows, func() (int64, error) {
			v, err := readUint64(r)
			return int64(v), err
		})
	case datatable.Uint64ValueType:
		return readValues(name, rows, readerFor(r, readUint64))
	case datatable.Float32ValueType:
		return readValues(name, rows, func() (float32, error) {
			v, err := readUint32(r)
			return math.Float32frombits(v), err
		})
	case datatable.Float64ValueType:
		return readValues(name, rows, func() (float64, error) {
			v, err := readUint64(r)
			return math.Float64frombits(v), err
		})
	case datatable.StringValueType:
		return readValues(name, rows, func() (string, error) {
			n, err := binary.ReadUvarint(r)
			if err != nil {
				return "", err
			}
			raw := make([]byte, n)
			if _, err := io.ReadFull(r, raw); err != nil {
				return "", err
			}
			return string(raw), nil
		})
	case datatable.TimeValueType:
		return readValues(name, rows, func() (time.Time, error) {
			v, err := readUint64(r)
			return time.Unix(0, int64(v)).UTC(), err
		})
	default:
		return nil, fmt.Errorf("%w: cannot decode column %q of type %d",
			datatable.ErrInvalidType, name, vt)
	}
}

func readValues[T any](name string, rows int, read func() (T, error)) (datatable.AnyColumn, error) {
	vals := make([]T, rows)
	for i := range vals {
		v, err := read()
		if err != nil {
			return nil, fmt.Errorf("column %q, row %d: %w", name, i, err)
		}
		vals[i] = v
	}
	return datatable.NewColumn(name, vals), nil
}

func readerFor[T any](r *bytes.Reader, read func(*bytes.Reader) (T, error)) func() (T, error) {
	return func() (T, error) {
		return read(r)
	}
}

func readUint64(r *bytes.Reader) (uint64, error) {
	var raw [8]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(raw[:]), nil
}

func readUint32(r *bytes.Reader) (uint32, error) {
	var raw [4]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(raw[:]), nil
}
