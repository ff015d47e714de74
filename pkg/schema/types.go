// Package schema provides the column type model, the hand-maintained
// per-dataset type override catalog, and column type inference.
package schema

import (
	"github.com/apache/arrow-go/v18/arrow"
)

// FieldType is the closed set of declared column types. Keeping this a
// dedicated enum means an illegal declared type cannot be written into the
// catalog in the first place.
type FieldType int

const (
	// TypeString is UTF-8 text
	TypeString FieldType = iota
	// TypeInt64 is a 64-bit signed integer
	TypeInt64
	// TypeFloat64 is a 64-bit float
	TypeFloat64
	// TypeBool is a boolean
	TypeBool
	// TypeDate is a calendar date with day resolution
	TypeDate
	// TypeTimestamp is a timestamp with one-second resolution
	TypeTimestamp
)

// Text formats for temporal columns. These are the encodings the EPC
// extracts actually use; anything else is a parse failure.
const (
	DateFormat      = "2006-01-02"
	TimestampFormat = "2006-01-02 15:04:05"
)

// String returns the type name
func (t FieldType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt64:
		return "int64"
	case TypeFloat64:
		return "float64"
	case TypeBool:
		return "bool"
	case TypeDate:
		return "date"
	case TypeTimestamp:
		return "timestamp"
	default:
		return "unknown"
	}
}

// ArrowType maps the field type to its Arrow data type
func (t FieldType) ArrowType() arrow.DataType {
	switch t {
	case TypeInt64:
		return arrow.PrimitiveTypes.Int64
	case TypeFloat64:
		return arrow.PrimitiveTypes.Float64
	case TypeBool:
		return arrow.FixedWidthTypes.Boolean
	case TypeDate:
		return arrow.FixedWidthTypes.Date32
	case TypeTimestamp:
		return arrow.FixedWidthTypes.Timestamp_s
	default:
		return arrow.BinaryTypes.String
	}
}

// Overrides maps column names to declared types. Column names are
// case-sensitive and must match the source header exactly; keys that match
// no header column are inert.
type Overrides map[string]FieldType
