package schema

import (
	"strconv"
	"strings"
	"time"
)

// inferenceOrder is the candidate order for column inference. The first
// candidate that every non-empty observed value parses as governs the
// whole column.
var inferenceOrder = []FieldType{
	TypeInt64,
	TypeFloat64,
	TypeBool,
	TypeDate,
	TypeTimestamp,
}

// InferColumn infers the type of a column from its observed values.
// Mixed or unparseable columns degrade to TypeString rather than failing;
// the string type is the universal fallback.
func InferColumn(values []string) FieldType {
	for _, candidate := range inferenceOrder {
		if columnParsesAs(values, candidate) {
			return candidate
		}
	}
	return TypeString
}

// columnParsesAs reports whether every non-empty value parses as the
// candidate type. Empty cells are nulls and carry no type evidence. A
// column with no non-empty values carries no evidence at all and falls
// through to string.
func columnParsesAs(values []string, t FieldType) bool {
	seen := false
	for _, v := range values {
		if v == "" {
			continue
		}
		seen = true
		if !parsesAs(v, t) {
			return false
		}
	}
	return seen
}

func parsesAs(v string, t FieldType) bool {
	switch t {
	case TypeInt64:
		_, err := strconv.ParseInt(v, 10, 64)
		return err == nil
	case TypeFloat64:
		_, err := strconv.ParseFloat(v, 64)
		return err == nil
	case TypeBool:
		return IsBool(v)
	case TypeDate:
		_, err := time.Parse(DateFormat, v)
		return err == nil
	case TypeTimestamp:
		_, err := time.Parse(TimestampFormat, v)
		return err == nil
	default:
		return true
	}
}

// IsBool reports whether the value is boolean text.
func IsBool(v string) bool {
	switch strings.ToLower(v) {
	case "true", "false", "yes", "no":
		return true
	}
	return false
}

// BoolValue parses boolean text accepted by IsBool.
func BoolValue(v string) (bool, bool) {
	switch strings.ToLower(v) {
	case "true", "yes":
		return true, true
	case "false", "no":
		return false, true
	}
	return false, false
}
