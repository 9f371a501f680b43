package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad batch size: %d", 7)

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %s, want %s", err.Code, ErrCodeInvalidInput)
	}
	if err.Message != "bad batch size: 7" {
		t.Errorf("Message = %q", err.Message)
	}
	want := "INVALID_INPUT: bad batch size: 7"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(ErrCodeAssetUnavailable, cause, "fetch font archive")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
	want := "ASSET_UNAVAILABLE: fetch font archive: connection refused"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeIOFailure, "write plot")

	if !Is(err, ErrCodeIOFailure) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeNetwork) {
		t.Error("Is should not match a different code")
	}

	// Codes survive wrapping with fmt.Errorf.
	wrapped := fmt.Errorf("render: %w", err)
	if !Is(wrapped, ErrCodeIOFailure) {
		t.Error("Is should unwrap fmt-wrapped errors")
	}

	if Is(stderrors.New("plain"), ErrCodeIOFailure) {
		t.Error("Is should be false for non-structured errors")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeTimeout, "slow")); got != ErrCodeTimeout {
		t.Errorf("GetCode = %s, want %s", got, ErrCodeTimeout)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode for plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidColor, "bad hex value")
	if got := UserMessage(err); got != "bad hex value" {
		t.Errorf("UserMessage = %q", got)
	}

	plain := stderrors.New("something broke")
	if got := UserMessage(plain); got != "something broke" {
		t.Errorf("UserMessage for plain error = %q", got)
	}
}
