package errors

import (
	"errors"
	"testing"
)

func TestDomainError(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		err := New(CodeNotFound, "resource not found")
		if err.Error() != "[NOT_FOUND] resource not found" {
			t.Errorf("expected [NOT_FOUND] resource not found, got %s", err.Error())
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		original := errors.New("original error")
		err := Wrap(original, CodeInternal, "internal failure")
		expected := "[INTERNAL_ERROR] internal failure: original error"
		if err.Error() != expected {
			t.Errorf("expected %s, got %s", expected, err.Error())
		}
	})

	t.Run("IsCode", func(t *testing.T) {
		err := New(CodeValidationError, "invalid input")
		if !IsCode(err, CodeValidationError) {
			t.Error("expected IsCode to return true for CodeValidationError")
		}
		if IsCode(err, CodeNotFound) {
			t.Error("expected IsCode to return false for CodeNotFound")
		}
	})

	t.Run("WithContext", func(t *testing.T) {
		err := New(CodeParseError, "bad syntax").
			WithContext(CtxPath, "a.cs").
			WithContext(CtxLanguage, "csharp")
		if err.Context[CtxPath] != "a.cs" {
			t.Errorf("expected path context, got %v", err.Context)
		}
		if err.Context[CtxLanguage] != "csharp" {
			t.Errorf("expected language context, got %v", err.Context)
		}
	})

	t.Run("Unwrap", func(t *testing.T) {
		original := errors.New("original error")
		err := Wrap(original, CodeInternal, "internal failure")
		if !errors.Is(err, original) {
			t.Error("expected errors.Is to find the wrapped error")
		}
	})
}
