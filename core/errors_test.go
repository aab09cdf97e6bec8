package core

import (
	"net/http"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func TestClassifyStatus(t *testing.T) {
	cases := []struct {
		status   int
		category goerrors.Category
		textCode string
	}{
		{http.StatusUnauthorized, goerrors.CategoryAuth, AuthErrorInvalidAccessToken},
		{http.StatusBadRequest, goerrors.CategoryBadInput, AuthErrorBadRequest},
		{http.StatusTooManyRequests, goerrors.CategoryRateLimit, AuthErrorRateLimited},
		{http.StatusNotFound, goerrors.CategoryNotFound, AuthErrorNotFound},
		{http.StatusForbidden, goerrors.CategoryAuthz, AuthErrorUnauthorized},
		{http.StatusInternalServerError, goerrors.CategoryExternal, AuthErrorProviderFailure},
		{http.StatusTeapot, goerrors.CategoryExternal, AuthErrorUnclassified},
		{http.StatusBadGateway, goerrors.CategoryExternal, AuthErrorUnclassified},
	}
	for _, tc := range cases {
		category, textCode := ClassifyStatus(tc.status)
		if category != tc.category {
			t.Fatalf("ClassifyStatus(%d) category = %q, want %q", tc.status, category, tc.category)
		}
		if textCode != tc.textCode {
			t.Fatalf("ClassifyStatus(%d) text code = %q, want %q", tc.status, textCode, tc.textCode)
		}
	}
}

func TestStatusMessage(t *testing.T) {
	if got := StatusMessage(http.StatusUnauthorized); got != "Access token must be valid." {
		t.Fatalf("unexpected 401 message %q", got)
	}
	if got := StatusMessage(http.StatusTeapot); got != "Status 418 is not handled" {
		t.Fatalf("unexpected fallback message %q", got)
	}
}

func TestProviderCodeMessage(t *testing.T) {
	message, ok := ProviderCodeMessage(10004)
	if !ok || message != "Unknown guild" {
		t.Fatalf("ProviderCodeMessage(10004) = %q, %v", message, ok)
	}
	if _, ok := ProviderCodeMessage(0); ok {
		t.Fatalf("expected zero code to miss")
	}
	if _, ok := ProviderCodeMessage(99999); ok {
		t.Fatalf("expected unknown code to miss")
	}
}

func TestNewTypeMismatchError(t *testing.T) {
	err := NewTypeMismatchError("guild_id", TagSnowflake, TagString)

	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		t.Fatalf("expected go-errors envelope, got %T", err)
	}
	if rich.Category != goerrors.CategoryValidation {
		t.Fatalf("expected validation category, got %q", rich.Category)
	}
	if rich.Code != http.StatusBadRequest {
		t.Fatalf("expected %d code, got %d", http.StatusBadRequest, rich.Code)
	}
	if rich.TextCode != AuthErrorTypeMismatch {
		t.Fatalf("expected %q text code, got %q", AuthErrorTypeMismatch, rich.TextCode)
	}
	if rich.Metadata["field"] != "guild_id" {
		t.Fatalf("expected field metadata, got %#v", rich.Metadata["field"])
	}
	if rich.Metadata["expected"] != "snowflake" || rich.Metadata["received"] != "string" {
		t.Fatalf("expected tag metadata, got %#v", rich.Metadata)
	}
}

func TestNewMissingCredentialsError(t *testing.T) {
	err := NewMissingCredentialsError("core: both tokens are required")

	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		t.Fatalf("expected go-errors envelope, got %T", err)
	}
	if rich.Category != goerrors.CategoryBadInput {
		t.Fatalf("expected bad input category, got %q", rich.Category)
	}
	if rich.TextCode != AuthErrorMissingCredentials {
		t.Fatalf("expected %q text code, got %q", AuthErrorMissingCredentials, rich.TextCode)
	}
}
