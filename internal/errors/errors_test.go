package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPipelineErrorMessage(t *testing.T) {
	err := NoInput("no records ingested", nil)
	assert.Equal(t, "NO_INPUT: no records ingested", err.Error())

	wrapped := Storage("load failed", fmt.Errorf("connection refused"))
	assert.Equal(t, "STORAGE: load failed: connection refused", wrapped.Error())
	assert.EqualError(t, wrapped.Unwrap(), "connection refused")
}

func TestIsType(t *testing.T) {
	err := InvalidInput("bad csv row", nil)

	assert.True(t, IsType(err, ErrTypeInvalidInput))
	assert.False(t, IsType(err, ErrTypeStorage))
	assert.False(t, IsType(fmt.Errorf("plain"), ErrTypeInternal))
	assert.False(t, IsType(nil, ErrTypeInternal))

	// Type survives wrapping.
	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, IsType(wrapped, ErrTypeInvalidInput))
}

func TestStackCaptured(t *testing.T) {
	err := Internal("boom", nil)
	assert.NotEmpty(t, err.StackTrace())
}
