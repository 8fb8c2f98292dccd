package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/expense_ledger_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestTypedErrors_MatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"not found", apperrors.NewNotFoundError("company", "c-1"), apperrors.ErrNotFound},
		{"invalid state", apperrors.NewInvalidStateError("paid", "approve"), apperrors.ErrInvalidState},
		{"missing field", apperrors.NewMissingFieldError("bankId", "required for settled expenses"), apperrors.ErrMissingField},
		{"batch state", apperrors.NewBatchStateError("pending", []string{"a", "b"}), apperrors.ErrInvalidBatchState},
		{"validation", apperrors.ValidationErrors{{Field: "amount", Rule: "required", Message: "amount is required"}}, apperrors.ErrValidation},
		{"storage", apperrors.NewStorageError("insert failed", errors.New("boom")), apperrors.ErrStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("service layer: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)
		})
	}
}

func TestAppError_ClientCodeIsNotStorage(t *testing.T) {
	err := apperrors.NewAppError(400, "bad input", nil)
	assert.False(t, errors.Is(err, apperrors.ErrStorage))
	assert.Equal(t, "bad input", err.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperrors.NewStorageError("query failed", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestNotFoundError_AsExposesDetails(t *testing.T) {
	err := fmt.Errorf("wrap: %w", apperrors.NewNotFoundError("bank account", "b-9"))
	var nf *apperrors.NotFoundError
	if assert.ErrorAs(t, err, &nf) {
		assert.Equal(t, "bank account", nf.Entity)
		assert.Equal(t, "b-9", nf.ID)
	}
}

func TestBatchStateError_Message(t *testing.T) {
	err := apperrors.NewBatchStateError("approved", []string{"x", "y"})
	assert.Equal(t, "all records must be approved; offending ids: x, y", err.Error())
}
