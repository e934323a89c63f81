package store

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "generic error",
			err:      errors.New("some error"),
			expected: false,
		},
		{
			name:     "ErrNotFound",
			err:      ErrNotFound,
			expected: true,
		},
		{
			name:     "ErrDeckNotFound",
			err:      ErrDeckNotFound,
			expected: true,
		},
		{
			name:     "wrapped ErrDeckNotFound",
			err:      fmt.Errorf("failed to find deck: %w", ErrDeckNotFound),
			expected: true,
		},
		{
			name:     "store error wrapping ErrDeckNotFound",
			err:      NewStoreError("deck", "get", "missing", ErrDeckNotFound),
			expected: true,
		},
		{
			name:     "duplicate is not not-found",
			err:      ErrDeckExists,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFoundError(tt.err); got != tt.expected {
				t.Errorf("IsNotFoundError(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	if !IsDuplicateError(ErrDeckExists) {
		t.Error("ErrDeckExists should be a duplicate error")
	}
	if !IsDuplicateError(fmt.Errorf("create: %w", ErrDuplicate)) {
		t.Error("wrapped ErrDuplicate should be a duplicate error")
	}
	if IsDuplicateError(ErrDeckNotFound) {
		t.Error("ErrDeckNotFound should not be a duplicate error")
	}
}

func TestStoreError(t *testing.T) {
	err := NewStoreError("deck", "update", "write failed", ErrDeckNotFound)

	want := "update operation on deck failed: write failed: entity not found: deck"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("StoreError should unwrap to ErrNotFound")
	}

	bare := NewStoreError("deck", "list", "empty", nil)
	if bare.Error() != "list operation on deck failed: empty" {
		t.Errorf("unexpected message %q", bare.Error())
	}
}
