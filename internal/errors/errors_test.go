package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("validation failed",
		ValidationDetail{Field: "userId", Message: "userId is required"},
	)

	assert.Equal(t, "validation failed", err.Error())
	require.Len(t, err.Details, 1)
	assert.Equal(t, "userId", err.Details[0].Field)

	ve, ok := IsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, err, ve)

	_, ok = IsValidationError(stderrors.New("other"))
	assert.False(t, ok)
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("order with id 42 not found")

	assert.Equal(t, "order with id 42 not found", err.Error())

	nfe, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.Equal(t, err, nfe)

	_, ok = IsNotFoundError(stderrors.New("other"))
	assert.False(t, ok)
}

func TestConflictError(t *testing.T) {
	err := NewConflictError("cannot transition from delivered to pending")

	ce, ok := IsConflictError(err)
	assert.True(t, ok)
	assert.Equal(t, "cannot transition from delivered to pending", ce.Error())

	_, ok = IsConflictError(NewNotFoundError("nope"))
	assert.False(t, ok)
}

func TestDuplicateError(t *testing.T) {
	cause := stderrors.New("Error 1062: Duplicate entry")
	err := NewDuplicateError("order number ORD-1-001 already exists", cause)

	assert.Contains(t, err.Error(), "ORD-1-001")
	assert.Contains(t, err.Error(), "1062")
	assert.Equal(t, cause, stderrors.Unwrap(err))

	de, ok := IsDuplicateError(err)
	assert.True(t, ok)
	assert.Equal(t, err, de)
}

func TestDuplicateError_NoCause(t *testing.T) {
	err := NewDuplicateError("order number already exists", nil)

	assert.Equal(t, "order number already exists", err.Error())
	assert.Nil(t, stderrors.Unwrap(err))
}

func TestInternalError(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewInternalError("querying order", cause)

	assert.Equal(t, "querying order: connection reset", err.Error())
	assert.Equal(t, cause, stderrors.Unwrap(err))
}
