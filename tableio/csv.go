package tableio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/stephennancekivell/go-datatable/datatable"
)

// Source is the row-readable surface shared by *datatable.DataTable and
// *datatable.DataView.
type Source interface {
	Name() string
	RowCount() int
	Columns() *datatable.ColumnCollection
	Row(index int) (datatable.Row, error)
}

// ColumnSpec declares one CSV column for ReadCSV.
type ColumnSpec struct {
	Name string
	Type datatable.ValueType
}

// WriteCSV writes src with a header line of column names. Times are
// formatted as RFC 3339 with nanoseconds.
func WriteCSV(w io.Writer, src Source) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(src.Columns().Names()); err != nil {
		return err
	}

	record := make([]string, src.Columns().Count())
	for i := 0; i < src.RowCount(); i++ {
		row, err := src.Row(i)
		if err != nil {
			return err
		}
		values, err := row.Values()
		if err != nil {
			return err
		}
		for j, v := range values {
			record[j] = formatCell(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV parses r into a table called name. The first record must be the
// header; specs declare the expected column names and element types.
func ReadCSV(name string, r io.Reader, specs []ColumnSpec) (*datatable.DataTable, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, err
	}
	if len(header) != len(specs) {
		return nil, fmt.Errorf("%w: csv has %d columns, %d specs given",
			datatable.ErrStructure, len(header), len(specs))
	}

	builders := make([]columnBuilder, len(specs))
	for i, spec := range specs {
		if header[i] != spec.Name {
			return nil, fmt.Errorf("%w: csv column #%d is %q, spec says %q",
				datatable.ErrStructure, i, header[i], spec.Name)
		}
		b, err := newBuilder(spec.Type)
		if err != nil {
			return nil, err
		}
		builders[i] = b
	}

	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		for i, cell := range record {
			if err := builders[i].append(cell); err != nil {
				return nil, fmt.Errorf("line %d, column %q: %w", line, specs[i].Name, err)
			}
		}
	}

	cols := make([]datatable.AnyColumn, len(builders))
	for i, b := range builders {
		cols[i] = b.column(specs[i].Name)
	}
	return datatable.NewDataTable(name, cols...)
}

func formatCell(v any) string {
	switch c := v.(type) {
	case string:
		return c
	case bool:
		return strconv.FormatBool(c)
	case float64:
		return strconv.FormatFloat(c, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(c), 'g', -1, 32)
	case time.Time:
		return c.Format(time.RFC3339Nano)
	default:
		return fmt.Sprintf("%v", c)
	}
}

type columnBuilder interface {
	append(cell string) error
	column(name string) datatable.AnyColumn
}

type builder[T any] struct {
	parse func(string) (T, error)
	vals  []T
}

func (b *builder[T]) append(cell string) error {
	v, err := b.parse(cell)
	if err != nil {
		return err
	}
	b.vals = append(b.vals, v)
	return nil
}

func (b *builder[T]) column(name string) datatable.AnyColumn {
	return datatable.NewColumn(name, b.vals)
}

func newBuilder(vt datatable.ValueType) (columnBuilder, error) {
	switch vt {
	case datatable.BoolValueType:
		return &builder[bool]{parse: strconv.ParseBool}, nil
	case datatable.IntValueType:
		return &builder[int]{parse: strconv.Atoi}, nil
	case datatable.Int32ValueType:
		return &builder[int32]{parse: func(s string) (int32, error) {
			v, err := strconv.ParseInt(s, 10, 32)
			return int32(v), err
		}}, nil
	case datatable.Int64ValueType:
		return &builder[int64]{parse: func(s string) (int64, error) {
			return strconv.ParseInt(s, 10, 64)
		}}, nil
	case datatable.Uint64ValueType:
		return &builder[uint64]{parse: func(s string) (uint64, error) {
			return strconv.ParseUint(s, 10, 64)
		}}, nil
	case datatable.Float32ValueType:
		return &builder[float32]{parse: func(s string) (float32, error) {
			v, err := strconv.ParseFloat(s, 32)
			return float32(v), err
		}}, nil
	case datatable.Float64ValueType:
		return &builder[float64]{parse: func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		}}, nil
	case datatable.StringValueType:
		return &builder[string]{parse: func(s string) (string, error) {
			return s, nil
		}}, nil
	case datatable.TimeValueType:
		return &builder[time.Time]{parse: func(s string) (time.Time, error) {
			return time.Parse(time.RFC3339Nano, s)
		}}, nil
	default:
		return nil, fmt.Errorf("%w: no csv parser for column type %s",
			datatable.ErrInvalidType, vt)
	}
}
