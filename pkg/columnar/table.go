// Package columnar converts delimited text streams into typed Arrow tables
// and serializes them as Parquet.
package columnar

import (
	"github.com/apache/arrow-go/v18/arrow"
)

// Table is an in-memory columnar table: an ordered sequence of named,
// homogeneously typed columns of equal length, in source header order.
type Table struct {
	record arrow.Record
}

// NewTable wraps an Arrow record. The table takes over the record's
// reference; call Release when done.
func NewTable(record arrow.Record) *Table {
	return &Table{record: record}
}

// Record returns the underlying Arrow record.
func (t *Table) Record() arrow.Record {
	return t.record
}

// Schema returns the table schema.
func (t *Table) Schema() *arrow.Schema {
	return t.record.Schema()
}

// NumRows returns the row count.
func (t *Table) NumRows() int64 {
	return t.record.NumRows()
}

// NumCols returns the column count.
func (t *Table) NumCols() int64 {
	return t.record.NumCols()
}

// Column returns the i-th column.
func (t *Table) Column(i int) arrow.Array {
	return t.record.Column(i)
}

// Release releases the underlying Arrow buffers.
func (t *Table) Release() {
	t.record.Release()
}
