package columnar

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"go.uber.org/zap"

	"github.com/opendatacoop/epc2parquet/pkg/errors"
	"github.com/opendatacoop/epc2parquet/pkg/schema"
)

// Converter parses CSV streams into typed tables.
type Converter struct {
	logger *zap.Logger
	mem    memory.Allocator
}

// NewConverter creates a converter.
func NewConverter(logger *zap.Logger) *Converter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Converter{
		logger: logger,
		mem:    memory.NewGoAllocator(),
	}
}

// Convert parses a CSV stream into a typed table. The first row is the
// header; column order and row count are preserved exactly.
//
// Columns named in overrides are coerced to their declared type, and a
// value that fails to coerce is a hard error naming the column and line.
// Columns not named in overrides get their type inferred from the observed
// values, degrading to string when no single type fits. Override keys that
// match no header column are inert.
func (c *Converter) Convert(r io.Reader, overrides schema.Overrides) (*Table, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New(errors.ErrorTypeData, "input has no header row")
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeData, "failed to read header row")
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeData, "failed to read rows")
	}

	types := c.columnTypes(header, rows, overrides)

	fields := make([]arrow.Field, len(header))
	for i, name := range header {
		fields[i] = arrow.Field{
			Name:     name,
			Type:     types[i].ArrowType(),
			Nullable: true,
		}
	}

	rb := array.NewRecordBuilder(c.mem, arrow.NewSchema(fields, nil))
	defer rb.Release()

	for rowIdx, row := range rows {
		for colIdx, raw := range row {
			if err := appendValue(rb.Field(colIdx), types[colIdx], raw); err != nil {
				return nil, errors.Wrap(err, errors.ErrorTypeSchema, "value does not match declared type").
					WithDetail("column", header[colIdx]).
					WithDetail("declared", types[colIdx].String()).
					WithDetail("line", rowIdx+2) // header is line 1
			}
		}
	}

	return NewTable(rb.NewRecord()), nil
}

// columnTypes resolves the type of every column: declared when overridden,
// inferred otherwise. Inert override keys are reported at debug level only.
func (c *Converter) columnTypes(header []string, rows [][]string, overrides schema.Overrides) []schema.FieldType {
	inHeader := make(map[string]bool, len(header))
	for _, name := range header {
		inHeader[name] = true
	}
	for name := range overrides {
		if !inHeader[name] {
			c.logger.Debug("override matches no column", zap.String("column", name))
		}
	}

	types := make([]schema.FieldType, len(header))
	var values []string
	for i, name := range header {
		if t, ok := overrides[name]; ok {
			types[i] = t
			continue
		}
		values = values[:0]
		for _, row := range rows {
			values = append(values, row[i])
		}
		types[i] = schema.InferColumn(values)
	}
	return types
}

// appendValue coerces one cell to the column type. An empty cell is null,
// except in string columns where it stays an empty string.
func appendValue(b array.Builder, t schema.FieldType, raw string) error {
	if raw == "" && t != schema.TypeString {
		b.AppendNull()
		return nil
	}

	switch fb := b.(type) {
	case *array.StringBuilder:
		fb.Append(raw)

	case *array.Int64Builder:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("%q is not an int64", raw)
		}
		fb.Append(v)

	case *array.Float64Builder:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%q is not a float64", raw)
		}
		fb.Append(v)

	case *array.BooleanBuilder:
		v, ok := schema.BoolValue(raw)
		if !ok {
			return fmt.Errorf("%q is not a bool", raw)
		}
		fb.Append(v)

	case *array.Date32Builder:
		d, err := time.Parse(schema.DateFormat, raw)
		if err != nil {
			return fmt.Errorf("%q is not a %s date", raw, schema.DateFormat)
		}
		fb.Append(arrow.Date32FromTime(d))

	case *array.TimestampBuilder:
		ts, err := time.ParseInLocation(schema.TimestampFormat, raw, time.UTC)
		if err != nil {
			return fmt.Errorf("%q is not a %q timestamp", raw, schema.TimestampFormat)
		}
		fb.Append(arrow.Timestamp(ts.Unix()))

	default:
		return fmt.Errorf("unsupported builder type: %T", b)
	}

	return nil
}
