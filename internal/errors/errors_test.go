package errors

import (
	stderrors "errors"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func TestAppErrorWrapPreservesCause(t *testing.T) {
	cause := os.ErrNotExist
	appErr := Wrap(cause, ErrCodeStorageFailure, "storage broke")

	if !stderrors.Is(appErr, os.ErrNotExist) {
		t.Error("wrapped cause not reachable through errors.Is")
	}
	if appErr.Code != ErrCodeStorageFailure {
		t.Errorf("code = %s", appErr.Code)
	}
}

func TestGetAppErrorPassthrough(t *testing.T) {
	original := NotFoundError("example \"x\"")
	if got := GetAppError(original); got != original {
		t.Error("GetAppError should return an existing AppError unchanged")
	}

	plain := stderrors.New("boom")
	converted := GetAppError(plain)
	if converted == nil {
		t.Fatal("GetAppError(plain error) = nil")
	}
	if converted.Code != ErrCodeInternalError {
		t.Errorf("plain error code = %s, want INTERNAL_ERROR", converted.Code)
	}
}

func TestIsAppError(t *testing.T) {
	if !IsAppError(ValidationError("bad")) {
		t.Error("IsAppError(AppError) = false")
	}
	if IsAppError(stderrors.New("plain")) {
		t.Error("IsAppError(plain) = true")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		err  *AppError
		code ErrorCode
		want string
	}{
		{NotFoundError("example \"x\""), ErrCodeNotFound, "not found"},
		{AlreadyExistsError("example \"x\""), ErrCodeAlreadyExists, "already exists"},
		{ValidationError("bad input"), ErrCodeValidation, "bad input"},
	}

	for _, tt := range tests {
		if tt.err.Code != tt.code {
			t.Errorf("code = %s, want %s", tt.err.Code, tt.code)
		}
		if !strings.Contains(tt.err.Message, tt.want) {
			t.Errorf("message = %q, want substring %q", tt.err.Message, tt.want)
		}
	}
}

func TestWriteHTTPErrorStatusMapping(t *testing.T) {
	handler := NewHTTPErrorHandler(false)

	tests := []struct {
		err    *AppError
		status int
	}{
		{NotFoundError("thing"), 404},
		{AlreadyExistsError("thing"), 409},
		{ValidationError("bad"), 400},
		{NewAppError(ErrCodeInvalidInput, "bad"), 400},
		{InternalError("boom"), 500},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		handler.WriteHTTPError(rec, tt.err)

		if rec.Code != tt.status {
			t.Errorf("%s: status = %d, want %d", tt.err.Code, rec.Code, tt.status)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("%s: content type = %q", tt.err.Code, ct)
		}
		if !strings.Contains(rec.Body.String(), string(tt.err.Code)) {
			t.Errorf("%s: body missing code: %s", tt.err.Code, rec.Body.String())
		}
	}
}

func TestHTTPErrorHandlerDetailToggle(t *testing.T) {
	appErr := ValidationError("failed").WithDetails("slug: required")

	withDetails := NewHTTPErrorHandler(true).FormatError(appErr)
	if !strings.Contains(withDetails, "slug: required") {
		t.Errorf("details missing when enabled: %s", withDetails)
	}

	withoutDetails := NewHTTPErrorHandler(false).FormatError(appErr)
	if strings.Contains(withoutDetails, "slug: required") {
		t.Errorf("details leaked when disabled: %s", withoutDetails)
	}
}

func TestCLIErrorHandlerFormat(t *testing.T) {
	handler := NewCLIErrorHandler(false)
	formatted := handler.FormatError(NotFoundError("example \"x\""))
	if !strings.Contains(formatted, "not found") {
		t.Errorf("formatted = %q", formatted)
	}
}

func TestCLIErrorHandlerHandleError(t *testing.T) {
	handler := NewCLIErrorHandler(false)

	handled := handler.HandleError(NotFoundError("example \"x\""))
	if handled == nil || !strings.Contains(handled.Error(), "not found") {
		t.Errorf("handled = %v", handled)
	}

	// Plain errors must keep their own text, not the generic wrap message
	plain := stderrors.New("unknown flag: --bogus")
	if got := handler.HandleError(plain); !strings.Contains(got.Error(), "unknown flag: --bogus") {
		t.Errorf("plain error text lost: %v", got)
	}
}

func TestTUIErrorHandlerFormat(t *testing.T) {
	appErr := ValidationError("title is required").WithDetails("title: empty")

	terse := NewTUIErrorHandler(false).FormatError(appErr)
	if terse != "title is required" {
		t.Errorf("terse = %q", terse)
	}

	detailed := NewTUIErrorHandler(true).FormatError(appErr)
	if !strings.Contains(detailed, "title: empty") {
		t.Errorf("details missing: %q", detailed)
	}

	if got := NewTUIErrorHandler(false).FormatError(stderrors.New("boom")); got != "boom" {
		t.Errorf("plain error = %q", got)
	}
}

func TestTUIErrorHandlerHandleError(t *testing.T) {
	handled := NewTUIErrorHandler(false).HandleError(stderrors.New("boom"))
	if !IsAppError(handled) {
		t.Errorf("HandleError should return an AppError, got %T", handled)
	}
}
