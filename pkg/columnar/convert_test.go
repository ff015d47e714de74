package columnar

import (
	"strings"
	"testing"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/opendatacoop/epc2parquet/pkg/errors"
	"github.com/opendatacoop/epc2parquet/pkg/schema"
)

func convert(t *testing.T, csvText string, overrides schema.Overrides) *Table {
	t.Helper()

	c := NewConverter(zaptest.NewLogger(t))
	table, err := c.Convert(strings.NewReader(csvText), overrides)
	require.NoError(t, err)
	t.Cleanup(table.Release)
	return table
}

func TestConvertFloatOverrideAcceptsFractionalText(t *testing.T) {
	// Documented as int, stored as "1.0"-style floating text: the
	// declared type wins.
	table := convert(t, "EXTENSION_COUNT\n1.0\n2.0\n", schema.Overrides{
		"EXTENSION_COUNT": schema.TypeFloat64,
	})

	require.EqualValues(t, 2, table.NumRows())
	col, ok := table.Column(0).(*array.Float64)
	require.True(t, ok)
	assert.Equal(t, 1.0, col.Value(0))
	assert.Equal(t, 2.0, col.Value(1))
}

func TestConvertStringOverridePreservesLeadingZeros(t *testing.T) {
	table := convert(t, "LMK_KEY\n000123\n000456\n", schema.Overrides{
		"LMK_KEY": schema.TypeString,
	})

	col, ok := table.Column(0).(*array.String)
	require.True(t, ok, "identifier column must stay string-typed")
	assert.Equal(t, "000123", col.Value(0))
	assert.Equal(t, "000456", col.Value(1))
}

func TestConvertOverrideMismatchFailsFast(t *testing.T) {
	c := NewConverter(zaptest.NewLogger(t))
	_, err := c.Convert(strings.NewReader("UPRN\n123\nnot-a-number\n"), schema.Overrides{
		"UPRN": schema.TypeInt64,
	})

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeSchema))
	assert.Contains(t, err.Error(), "UPRN")
	assert.Contains(t, err.Error(), "line=3")
}

func TestConvertInferenceWithoutOverrides(t *testing.T) {
	table := convert(t, "ID,SCORE,NAME\n1,2.5,alpha\n2,3.5,beta\n", nil)

	require.EqualValues(t, 3, table.NumCols())
	sc := table.Schema()
	assert.Equal(t, "ID", sc.Field(0).Name)
	assert.Equal(t, "SCORE", sc.Field(1).Name)
	assert.Equal(t, "NAME", sc.Field(2).Name)

	assert.Equal(t, arrow.PrimitiveTypes.Int64, sc.Field(0).Type)
	assert.Equal(t, arrow.PrimitiveTypes.Float64, sc.Field(1).Type)
	assert.Equal(t, arrow.BinaryTypes.String, sc.Field(2).Type)
}

func TestConvertInferenceAmbiguityFallsBackToString(t *testing.T) {
	table := convert(t, "MIXED\n1\nabc\n", nil)

	col, ok := table.Column(0).(*array.String)
	require.True(t, ok)
	assert.Equal(t, "1", col.Value(0))
	assert.Equal(t, "abc", col.Value(1))
}

func TestConvertTemporalColumns(t *testing.T) {
	table := convert(t, "INSPECTION_DATE,LODGEMENT_DATETIME\n2021-03-25,2021-03-25 11:47:33\n", schema.Overrides{
		"INSPECTION_DATE":    schema.TypeDate,
		"LODGEMENT_DATETIME": schema.TypeTimestamp,
	})

	dates, ok := table.Column(0).(*array.Date32)
	require.True(t, ok)
	assert.Equal(t, "2021-03-25", dates.Value(0).ToTime().Format("2006-01-02"))

	stamps, ok := table.Column(1).(*array.Timestamp)
	require.True(t, ok)
	want := time.Date(2021, 3, 25, 11, 47, 33, 0, time.UTC)
	assert.Equal(t, want, stamps.Value(0).ToTime(arrow.Second))
}

func TestConvertBadDateFailsFast(t *testing.T) {
	c := NewConverter(zaptest.NewLogger(t))
	_, err := c.Convert(strings.NewReader("INSPECTION_DATE\n25/03/2021\n"), schema.Overrides{
		"INSPECTION_DATE": schema.TypeDate,
	})

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeSchema))
}

func TestConvertEmptyCellsAreNull(t *testing.T) {
	table := convert(t, "UPRN,NOTES\n123,\n,note\n", schema.Overrides{
		"UPRN": schema.TypeInt64,
	})

	uprn := table.Column(0).(*array.Int64)
	assert.False(t, uprn.IsNull(0))
	assert.True(t, uprn.IsNull(1))

	// String columns keep empty cells as empty strings
	notes := table.Column(1).(*array.String)
	assert.Equal(t, "", notes.Value(0))
	assert.Equal(t, "note", notes.Value(1))
}

func TestConvertInertOverrideKeys(t *testing.T) {
	// An override naming a column the header does not have is silently
	// inert; the table still converts.
	table := convert(t, "A\n1\n", schema.Overrides{
		"NOT_PRESENT": schema.TypeFloat64,
	})

	require.EqualValues(t, 1, table.NumCols())
	assert.Equal(t, "A", table.Schema().Field(0).Name)
}

func TestConvertPreservesRowOrderAndCount(t *testing.T) {
	table := convert(t, "N\n3\n1\n2\n1\n", nil)

	require.EqualValues(t, 4, table.NumRows())
	col := table.Column(0).(*array.Int64)
	assert.Equal(t, []int64{3, 1, 2, 1}, col.Int64Values())
}

func TestConvertRaggedRowsFail(t *testing.T) {
	c := NewConverter(zaptest.NewLogger(t))
	_, err := c.Convert(strings.NewReader("A,B\n1,2\n3\n"), nil)

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeData))
}

func TestConvertEmptyInput(t *testing.T) {
	c := NewConverter(zaptest.NewLogger(t))
	_, err := c.Convert(strings.NewReader(""), nil)

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeData))
}

func TestConvertQuotedFields(t *testing.T) {
	table := convert(t, "ADDRESS\n\"1, The Lane\"\n", schema.Overrides{
		"ADDRESS": schema.TypeString,
	})

	col := table.Column(0).(*array.String)
	assert.Equal(t, "1, The Lane", col.Value(0))
}
