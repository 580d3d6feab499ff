package types

import (
	"errors"
	"fmt"
	"testing"
)

func TestReportError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ReportError
		expected string
	}{
		{
			name:     "simple error",
			err:      NewReportError(ErrCodeConfiguration, "missing key pdf_title"),
			expected: "[CONFIGURATION] missing key pdf_title",
		},
		{
			name:     "error with cause",
			err:      WrapError(ErrCodeIOFailure, "cannot write", fmt.Errorf("permission denied")),
			expected: "[IO_FAILURE] cannot write: permission denied",
		},
		{
			name:     "formatted error",
			err:      NewReportErrorf(ErrCodeInvalidInput, "unknown tag %q", "category_9"),
			expected: `[INVALID_INPUT] unknown tag "category_9"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestReportError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying error")
	err := WrapError(ErrCodeWriteError, "rename failed", cause)

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("errors.Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestReportError_Is(t *testing.T) {
	err := NewReportError(ErrCodeIOFailure, "logo missing")

	if !errors.Is(err, ErrIOFailure) {
		t.Error("errors.Is should match ErrIOFailure sentinel")
	}
	if errors.Is(err, ErrConfiguration) {
		t.Error("errors.Is should not match ErrConfiguration sentinel")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	if !errors.Is(wrapped, ErrIOFailure) {
		t.Error("wrapped error should match ErrIOFailure sentinel")
	}
}

func TestPathError(t *testing.T) {
	err := PathError(ErrCodeIOFailure, "/tmp/logo.png", fmt.Errorf("no such file"))

	if err.Path() != "/tmp/logo.png" {
		t.Errorf("Path() = %q, want /tmp/logo.png", err.Path())
	}
	if got := err.Error(); got != "[IO_FAILURE] cannot open /tmp/logo.png: no such file" {
		t.Errorf("Error() = %q", got)
	}
	if NewReportError(ErrCodeIOFailure, "x").Path() != "" {
		t.Error("Path() should be empty without context")
	}
}

func TestGetErrorCode(t *testing.T) {
	code, ok := GetErrorCode(NewReportError(ErrCodeAttachmentDecode, "bad"))
	if !ok || code != ErrCodeAttachmentDecode {
		t.Errorf("GetErrorCode() = %v, %v; want %v, true", code, ok, ErrCodeAttachmentDecode)
	}

	if _, ok := GetErrorCode(fmt.Errorf("standard error")); ok {
		t.Error("GetErrorCode should return false for standard error")
	}
	if _, ok := AsReportError(fmt.Errorf("standard error")); ok {
		t.Error("AsReportError should return false for standard error")
	}
}

func TestErrorClassifiers(t *testing.T) {
	tests := []struct {
		err    error
		config bool
		io     bool
	}{
		{NewReportError(ErrCodeConfiguration, ""), true, false},
		{NewReportError(ErrCodeIOFailure, ""), false, true},
		{NewReportError(ErrCodeWriteError, ""), false, true},
		{NewReportError(ErrCodeAttachmentDecode, ""), false, false},
		{fmt.Errorf("standard error"), false, false},
	}

	for _, tt := range tests {
		if got := IsConfigurationError(tt.err); got != tt.config {
			t.Errorf("IsConfigurationError(%v) = %v, want %v", tt.err, got, tt.config)
		}
		if got := IsIOFailure(tt.err); got != tt.io {
			t.Errorf("IsIOFailure(%v) = %v, want %v", tt.err, got, tt.io)
		}
	}
}
