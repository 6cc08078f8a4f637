// Package dump renders debug descriptions of tables and views.
package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"

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

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	typeColor   = color.New(color.FgYellow)
	countColor  = color.New(color.FgGreen)
)

// Fprint writes src as an aligned text table with a colored header.
func Fprint(w io.Writer, src Source) error {
	cols := src.Columns().All()

	headers := make([]string, len(cols))
	widths := make([]int, len(cols))
	for i, col := range cols {
		headers[i] = fmt.Sprintf("%s (%s)", col.Name(), col.ValueType())
		widths[i] = len(headers[i])
	}

	cells := make([][]string, src.RowCount())
	for i := 0; i < src.RowCount(); i++ {
		row, err := src.Row(i)
		if err != nil {
			return err
		}
		values, err := row.Values()
		if err != nil {
			return err
		}
		line := make([]string, len(values))
		for j, v := range values {
			line[j] = fmt.Sprintf("%v", v)
			if len(line[j]) > widths[j] {
				widths[j] = len(line[j])
			}
		}
		cells[i] = line
	}

	if _, err := fmt.Fprintf(w, "%s %s\n",
		headerColor.Sprint(src.Name()),
		countColor.Sprintf("(%d rows)", src.RowCount())); err != nil {
		return err
	}

	for i, h := range headers {
		pad := strings.Repeat(" ", widths[i]-len(h))
		if _, err := fmt.Fprintf(w, "| %s%s ", typeColor.Sprint(h), pad); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "|"); err != nil {
		return err
	}

	for _, line := range cells {
		for j, cell := range line {
			if _, err := fmt.Fprintf(w, "| %-*s ", widths[j], cell); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "|"); err != nil {
			return err
		}
	}
	return nil
}

// Describe returns a structural dump of any value, useful when a rendered
// table hides the shape of the problem.
func Describe(v any) string {
	return spew.Sdump(v)
}
