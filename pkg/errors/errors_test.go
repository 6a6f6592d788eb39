package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	err := New(CodeInvalidFormula, "empty formula")
	assert.Equal(t, "[VAL_002] empty formula", err.Error())

	withDetail := err.WithDetail("input=\"\"")
	assert.Equal(t, "[VAL_002] empty formula: input=\"\"", withDetail.Error())
	// Original is not mutated.
	assert.Empty(t, err.Detail)
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, CodeBalancing, "should be nil"))

	cause := fmt.Errorf("svd did not converge")
	err := Wrap(cause, CodeDegenerateSystem, "null-space extraction failed")
	require.NotNil(t, err)
	assert.Equal(t, CodeDegenerateSystem, err.Code)
	assert.ErrorIs(t, err, cause)
}

func TestWrap_PreservesCodeOnUnknown(t *testing.T) {
	inner := New(CodeElementSetMismatch, "products introduce new elements")
	outer := Wrap(inner, CodeUnknown, "balance failed")
	assert.Equal(t, CodeElementSetMismatch, outer.Code)
}

func TestIsCode(t *testing.T) {
	inner := New(CodeVerificationFailed, "residual exceeds tolerance")
	outer := fmt.Errorf("analyze: %w", inner)

	assert.True(t, IsCode(outer, CodeVerificationFailed))
	assert.False(t, IsCode(outer, CodeInvalidFormula))
	assert.False(t, IsCode(nil, CodeVerificationFailed))
}

func TestFamilyHelpers(t *testing.T) {
	val := New(CodeUnknownElement, "no such element Xx")
	bal := Balancing("cannot conserve atoms")

	assert.True(t, IsValidationError(val))
	assert.False(t, IsBalancingError(val))
	assert.True(t, IsBalancingError(bal))
	assert.False(t, IsValidationError(bal))

	wrapped := fmt.Errorf("outer: %w", bal)
	assert.True(t, IsBalancingError(wrapped))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, CodeOK, GetCode(nil))
	assert.Equal(t, CodeUnknown, GetCode(errors.New("plain")))
	assert.Equal(t, CodeBalancing, GetCode(Balancing("boom")))
}

func TestNilReceiverSafety(t *testing.T) {
	var e *AppError
	assert.Nil(t, e.WithDetail("x"))
	assert.Nil(t, e.WithCause(errors.New("y")))
}
