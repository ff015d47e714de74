package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessageIncludesDetails(t *testing.T) {
	err := New(ErrorTypeSchema, "value does not match declared type").
		WithDetail("column", "UPRN").
		WithDetail("line", 3)

	msg := err.Error()
	assert.Contains(t, msg, "schema:")
	assert.Contains(t, msg, "column=UPRN")
	assert.Contains(t, msg, "line=3")
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(cause, ErrorTypeFile, "failed to write")

	require.NotNil(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "boom")
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrorTypeFile, "ignored"))
}

func TestIsType(t *testing.T) {
	err := New(ErrorTypeArchive, "corrupt container")

	assert.True(t, IsType(err, ErrorTypeArchive))
	assert.False(t, IsType(err, ErrorTypeSchema))
	assert.False(t, IsType(stderrors.New("plain"), ErrorTypeArchive))

	wrapped := Wrap(err, ErrorTypeData, "conversion failed")
	assert.True(t, IsType(wrapped, ErrorTypeData))
}
