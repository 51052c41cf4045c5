package pkg

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

// TestRouterErrorFormatting tests the error display with and without a cause
func TestRouterErrorFormatting(t *testing.T) {
	plain := NewReusedSubRouterError()
	if !strings.HasPrefix(plain.Error(), ErrCodeReusedSubRouter+": ") {
		t.Errorf("expected the code prefix, got %q", plain.Error())
	}

	caused := NewBadRoutePatternError("/bad", fmt.Errorf("missing closing ("))
	if !strings.Contains(caused.Error(), "caused by:") {
		t.Errorf("expected the cause in the display, got %q", caused.Error())
	}
}

// TestRouterErrorUnwrap tests errors.Is / errors.As through the wrapper
func TestRouterErrorUnwrap(t *testing.T) {
	sentinel := errors.New("user failure")
	wrapped := NewHandlerError("one of the routes couldn't process the request", sentinel)

	if !errors.Is(wrapped, sentinel) {
		t.Error("expected errors.Is to reach the cause")
	}

	var re *RouterError
	if !errors.As(wrapped, &re) || re.Code != ErrCodeHandlerError {
		t.Error("expected errors.As to find the RouterError")
	}
}

// TestWrapError tests wrapping and pass-through semantics
func TestWrapError(t *testing.T) {
	if WrapError(nil, ErrCodeHandlerError, 500) != nil {
		t.Error("expected nil in, nil out")
	}

	original := NewNoRouteMatchedError("/x/")
	if WrapError(original, ErrCodeHandlerError, 500) != original {
		t.Error("expected an existing RouterError to pass through unchanged")
	}

	wrapped := WrapError(errors.New("boom"), ErrCodeHandlerError, http.StatusInternalServerError)
	if wrapped.Code != ErrCodeHandlerError || wrapped.StatusCode != http.StatusInternalServerError {
		t.Errorf("unexpected wrap result: %+v", wrapped)
	}
}

// TestRouterErrorDetails tests detail merging
func TestRouterErrorDetails(t *testing.T) {
	e := NewConfigurationError("log.level", "unknown value")
	e.WithDetails(map[string]interface{}{"provided": "loud"})

	if e.Details["key"] != "log.level" || e.Details["provided"] != "loud" {
		t.Errorf("unexpected details: %v", e.Details)
	}
}

// TestGetRouterError tests extraction from a plain error
func TestGetRouterError(t *testing.T) {
	if _, ok := GetRouterError(errors.New("plain")); ok {
		t.Error("expected a plain error not to be a RouterError")
	}
	if !IsRouterError(NewReusedSubRouterError()) {
		t.Error("expected a RouterError to be recognized")
	}
}
