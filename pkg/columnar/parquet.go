package columnar

import (
	"bytes"
	"context"
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/opendatacoop/epc2parquet/pkg/errors"
)

// WriteParquet serializes a table to Parquet. Dictionary encoding is
// enabled so low-cardinality string columns stay compact; the logical
// column values and types are unchanged on read-back.
func WriteParquet(table *Table, w io.Writer) error {
	props := parquet.NewWriterProperties(
		parquet.WithCompression(compress.Codecs.Snappy),
		parquet.WithDictionaryDefault(true),
	)
	arrowProps := pqarrow.NewArrowWriterProperties(
		pqarrow.WithAllocator(memory.NewGoAllocator()),
	)

	fw, err := pqarrow.NewFileWriter(table.Schema(), w, props, arrowProps)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to create parquet writer")
	}

	if err := fw.Write(table.Record()); err != nil {
		_ = fw.Close()
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to write parquet data")
	}

	if err := fw.Close(); err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to close parquet writer")
	}
	return nil
}

// ReadParquet reads a whole Parquet stream back into a table.
func ReadParquet(ctx context.Context, r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to read parquet data")
	}

	pf, err := file.NewParquetReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to open parquet reader")
	}
	defer func() { _ = pf.Close() }()

	mem := memory.NewGoAllocator()
	fr, err := pqarrow.NewFileReader(pf, pqarrow.ArrowReadProperties{}, mem)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to open arrow reader")
	}

	rr, err := fr.GetRecordReader(ctx, nil, nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to read record batches")
	}
	defer rr.Release()

	var recs []arrow.Record
	defer func() {
		for _, rec := range recs {
			rec.Release()
		}
	}()

	for rr.Next() {
		rec := rr.Record()
		rec.Retain()
		recs = append(recs, rec)
	}
	if err := rr.Err(); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to read record batch")
	}

	switch len(recs) {
	case 0:
		rb := array.NewRecordBuilder(mem, rr.Schema())
		defer rb.Release()
		return NewTable(rb.NewRecord()), nil
	case 1:
		rec := recs[0]
		rec.Retain()
		return NewTable(rec), nil
	default:
		return concatRecords(mem, rr.Schema(), recs)
	}
}

// concatRecords merges multiple row-group batches into one record.
func concatRecords(mem memory.Allocator, sc *arrow.Schema, recs []arrow.Record) (*Table, error) {
	var rows int64
	for _, rec := range recs {
		rows += rec.NumRows()
	}

	cols := make([]arrow.Array, sc.NumFields())
	defer func() {
		for _, col := range cols {
			if col != nil {
				col.Release()
			}
		}
	}()

	chunks := make([]arrow.Array, len(recs))
	for i := 0; i < sc.NumFields(); i++ {
		for j, rec := range recs {
			chunks[j] = rec.Column(i)
		}
		col, err := array.Concatenate(chunks, mem)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeInternal, "failed to concatenate column chunks")
		}
		cols[i] = col
	}

	return NewTable(array.NewRecord(sc, cols, rows)), nil
}
