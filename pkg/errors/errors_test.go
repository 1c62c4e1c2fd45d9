package errors

import (
	"errors"
	"fmt"
	"testing"
)

// Test codes for testing
var (
	testCode  = MustNewCode("test.code")
	testCode2 = MustNewCode("test.code2")
)

func TestNew(t *testing.T) {
	err := New(CommonInternal, "test error")

	if err.Message != "test error" {
		t.Errorf("Expected message 'test error', got '%s'", err.Message)
	}

	if err.Code.String() != "common.internal" {
		t.Errorf("Expected code 'common.internal', got '%s'", err.Code.String())
	}

	if err.Timestamp.IsZero() {
		t.Error("Expected timestamp to be set")
	}

	if len(err.Stack) == 0 {
		t.Error("Expected stack trace to be captured")
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CommonInternal, "test error with %s", "formatting")

	expected := "test error with formatting"
	if err.Message != expected {
		t.Errorf("Expected message '%s', got '%s'", expected, err.Message)
	}
}

func TestWrap(t *testing.T) {
	originalErr := errors.New("original error")
	err := Wrap(testCode, originalErr, "wrapped error")

	if err.Message != "wrapped error" {
		t.Errorf("Expected message 'wrapped error', got '%s'", err.Message)
	}

	if err.Code.String() != "test.code" {
		t.Errorf("Expected code 'test.code', got '%s'", err.Code.String())
	}

	if !errors.Is(err, originalErr) {
		t.Error("Expected wrapped error to unwrap to the original")
	}

	expectedMsg := "wrapped error: original error"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error string '%s', got '%s'", expectedMsg, err.Error())
	}
}

func TestAddContext(t *testing.T) {
	err := New(testCode, "test error").
		AddContext("field", "location").
		AddContext("version", "2")

	if err.Context["field"] != "location" {
		t.Errorf("Expected context field 'location', got '%s'", err.Context["field"])
	}

	if err.Context["version"] != "2" {
		t.Errorf("Expected context version '2', got '%s'", err.Context["version"])
	}
}

func TestGetCode(t *testing.T) {
	err := New(testCode, "test error")

	if GetCode(err) != "test.code" {
		t.Errorf("Expected code 'test.code', got '%s'", GetCode(err))
	}

	if GetCode(errors.New("plain")) != "" {
		t.Error("Expected empty code for plain error")
	}

	// Code should be found through wrapping layers
	wrapped := fmt.Errorf("outer: %w", err)
	if GetCode(wrapped) != "test.code" {
		t.Errorf("Expected code 'test.code' through wrapping, got '%s'", GetCode(wrapped))
	}
}

func TestHasCode(t *testing.T) {
	err := New(testCode, "test error")

	if !HasCode(err, testCode) {
		t.Error("Expected HasCode to match the error's own code")
	}

	if HasCode(err, testCode2) {
		t.Error("Expected HasCode to reject a different code")
	}

	wrapped := Wrap(testCode2, err, "outer")
	if !HasCode(wrapped, testCode) {
		t.Error("Expected HasCode to find the inner code through the chain")
	}
	if !HasCode(wrapped, testCode2) {
		t.Error("Expected HasCode to find the outer code")
	}

	if HasCode(nil, testCode) {
		t.Error("Expected HasCode to be false for nil error")
	}
}

func TestFormatError(t *testing.T) {
	err := New(testCode, "test error").AddContext("field", "schemas")

	formatted := FormatError(err)
	if formatted == "" {
		t.Error("Expected non-empty formatted error")
	}

	plain := errors.New("plain error")
	if FormatError(plain) != "plain error" {
		t.Errorf("Expected plain error formatting, got '%s'", FormatError(plain))
	}
}
