package datatable

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func colOneValues(t *testing.T, src interface {
	RowCount() int
	Row(int) (Row, error)
}) []int {
	t.Helper()
	out := make([]int, src.RowCount())
	for i := range out {
		row, err := src.Row(i)
		require.NoError(t, err)
		v, err := RowValueAs[int](row, ByName("ColOne"))
		require.NoError(t, err)
		out[i] = v
	}
	return out
}

func TestSortAscending(t *testing.T) {
	table, err := NewDataTable("t",
		NewColumn("ColOne", []int{3, 1, 2}),
		NewColumn("ColTwo", []string{"c", "a", "b"}),
	)
	require.NoError(t, err)

	view, err := table.Sort(Asc(ByName("ColOne")))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, colOneValues(t, view))
	// source order untouched
	assert.Equal(t, []int{3, 1, 2}, colOneValues(t, table.ToDataView()))
}

func TestSortDescending(t *testing.T) {
	table, err := NewDataTable("t",
		NewColumn("ColOne", []int{3, 1, 2}),
	)
	require.NoError(t, err)

	view, err := table.Sort(Desc(ByIndex(0)))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, colOneValues(t, view))
}

func TestSortMultiKey(t *testing.T) {
	table, err := NewDataTable("t",
		NewColumn("group", []string{"b", "a", "b", "a"}),
		NewColumn("ColOne", []int{1, 2, 3, 4}),
	)
	require.NoError(t, err)

	view, err := table.Sort(Asc(ByName("group")), Desc(ByName("ColOne")))
	require.NoError(t, err)

	assert.Equal(t, []int{4, 2, 3, 1}, colOneValues(t, view))
}

func TestSortIsStable(t *testing.T) {
	table, err := NewDataTable("t",
		NewColumn("key", []int{7, 7, 7, 7}),
		NewColumn("ColOne", []int{0, 1, 2, 3}),
	)
	require.NoError(t, err)

	view, err := table.Sort(Asc(ByName("key")))
	require.NoError(t, err)

	// an all-equal key leaves the original row order intact
	assert.Equal(t, []int{0, 1, 2, 3}, colOneValues(t, view))
}

func TestSortSecondaryKeyAgreesOnPrimary(t *testing.T) {
	table, err := NewDataTable("t",
		NewColumn("ColOne", []int{2, 1, 2, 1, 3}),
		NewColumn("ColTwo", []string{"x", "y", "a", "b", "m"}),
	)
	require.NoError(t, err)

	both, err := table.Sort(Asc(ByName("ColOne")), Desc(ByName("ColTwo")))
	require.NoError(t, err)
	alone, err := table.Sort(Asc(ByName("ColOne")))
	require.NoError(t, err)

	// the primary key sequence is identical whether or not a tie-breaker runs
	assert.Equal(t, colOneValues(t, alone), colOneValues(t, both))
}

func TestSortViewComposes(t *testing.T) {
	table, err := NewDataTable("t",
		NewColumn("ColOne", []int{5, 2, 4, 1, 3}),
	)
	require.NoError(t, err)

	// drop rows with odd values, then sort what the view kept
	view := table.Filter(func(r Row) bool {
		v, err := RowValueAs[int](r, ByName("ColOne"))
		require.NoError(t, err)
		return v%2 == 0
	})

	sorted, err := view.Sort(Desc(ByName("ColOne")))
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2}, colOneValues(t, sorted))
	assert.Same(t, table, sorted.Table())

	// sorting a sorted view reorders the view's own order
	back, err := sorted.Sort(Asc(ByName("ColOne")))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, colOneValues(t, back))
}

func TestSortUnknownColumn(t *testing.T) {
	table := buildTestTable(t)

	_, err := table.Sort(Asc(ByName("missing")))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSortOrderlessColumn(t *testing.T) {
	type payload struct{ x int }

	table, err := NewDataTable("t",
		NewColumn("meta", []payload{{1}, {2}}),
	)
	require.NoError(t, err)

	_, err = table.Sort(Asc(ByName("meta")))
	require.ErrorIs(t, err, ErrTypeMismatch)
	assert.ErrorContains(t, err, "no natural order")
}

func TestSortNoItems(t *testing.T) {
	table := buildTestTable(t)

	_, err := table.Sort()
	assert.Error(t, err)
}

func TestSortBoolColumn(t *testing.T) {
	table := buildTestTable(t)

	sorted, err := table.Sort(Desc(ByName("ColThree")), Asc(ByName("ColOne")))
	require.NoError(t, err)

	values := colOneValues(t, sorted)
	// trues (even values) first, each half ascending
	assert.Equal(t, 0, values[0])
	assert.Equal(t, 98, values[49])
	assert.Equal(t, 1, values[50])
	assert.Equal(t, 99, values[99])
}

func BenchmarkSort(b *testing.B) {
	size := 40000

	input := make([]int, size)
	for i := 0; i < size; i++ {
		input[i] = int(rand.Int63n(50000))
	}

	table, err := NewDataTable("bench", NewColumn("v", input))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := table.Sort(Asc(ByName("v"))); err != nil {
			b.Fatal(err)
		}
	}
}
