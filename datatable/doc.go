// Package datatable is an in-memory, immutable, columnar table engine:
// typed columns of equal length aggregated into validated tables, cheap
// filtered/sorted row views over them, and structural modifications that
// never mutate existing data but return new instances. Everything is safe
// for concurrent readers because nothing changes after construction.
package datatable
