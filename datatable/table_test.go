package datatable

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDataTableValidation(t *testing.T) {
	_, err := NewDataTable("t",
		NewColumn("a", []int{1, 2}),
		NewColumn("b", []int{1, 2, 3}),
	)
	require.ErrorIs(t, err, ErrStructure)
	assert.ErrorContains(t, err, "same length")

	_, err = NewDataTable("t",
		NewColumn("a", []int{1, 2}),
		NewColumn("a", []string{"x", "y"}),
	)
	require.ErrorIs(t, err, ErrStructure)
	assert.ErrorContains(t, err, "duplicate column name")
}

func TestEmptyDataTable(t *testing.T) {
	table, err := NewDataTable("empty")
	require.NoError(t, err)

	assert.Equal(t, 0, table.RowCount())
	assert.Equal(t, 0, table.Columns().Count())
	assert.Equal(t, 0, table.Rows().Count())
}

func TestDataTableRowCount(t *testing.T) {
	table := twoColumnTable(t)
	assert.Equal(t, 2, table.RowCount())
}

func TestDataTableIdentity(t *testing.T) {
	a := twoColumnTable(t)
	b := twoColumnTable(t)

	assert.NotEqual(t, a.ID(), b.ID())
}

func TestRowBounds(t *testing.T) {
	table := twoColumnTable(t)

	row, err := table.Row(1)
	require.NoError(t, err)
	assert.Equal(t, 1, row.Index())
	assert.Same(t, table, row.Table())

	_, err = table.Row(2)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	_, err = table.Row(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestRowValues(t *testing.T) {
	table := twoColumnTable(t)

	row, err := table.Row(0)
	require.NoError(t, err)

	name, err := row.Value(ByName("name"))
	require.NoError(t, err)
	assert.Equal(t, "ann", name)

	age, err := RowValueAs[int](row, ByName("age"))
	require.NoError(t, err)
	assert.Equal(t, 34, age)

	_, err = RowValueAs[string](row, ByName("age"))
	assert.ErrorIs(t, err, ErrTypeMismatch)

	all, err := row.Values()
	require.NoError(t, err)
	assert.Equal(t, []any{"ann", 34}, all)
}

// a row is a coordinate, not a snapshot: reads resolve through the owning
// table's current columns
func TestRowReadsThroughTable(t *testing.T) {
	table := twoColumnTable(t)
	row, err := table.Row(0)
	require.NoError(t, err)

	v, err := row.Value(ByIndex(1))
	require.NoError(t, err)
	assert.Equal(t, 34, v)
}

func buildTestTable(t *testing.T) *DataTable {
	t.Helper()

	ints := make([]int, 100)
	strs := make([]string, 100)
	bools := make([]bool, 100)
	for i := range ints {
		ints[i] = i
		strs[i] = fmt.Sprintf("item-%d", i)
		bools[i] = i%2 == 0
	}

	table, err := NewDataTable("TestTable",
		NewColumn("ColOne", ints),
		NewColumn("ColTwo", strs),
		NewColumn("ColThree", bools),
	)
	require.NoError(t, err)
	return table
}

func TestViewTableRoundTrip(t *testing.T) {
	table := buildTestTable(t)

	back, err := table.ToDataView().ToDataTable()
	require.NoError(t, err)

	assert.Equal(t, "TestTable", back.Name())
	assert.Equal(t, 100, back.RowCount())
	assert.Equal(t, 3, back.Columns().Count())
	assert.Equal(t, table.Columns().Names(), back.Columns().Names())

	original, err := GetAs[int](table.Columns(), ByName("ColOne"))
	require.NoError(t, err)
	copied, err := GetAs[int](back.Columns(), ByName("ColOne"))
	require.NoError(t, err)
	assert.Equal(t, original.Data(), copied.Data())
}

func TestTableString(t *testing.T) {
	table := twoColumnTable(t)
	assert.Equal(t, `DataTable("people", 2 columns, 2 rows)`, table.String())
}
