package core

import (
	"fmt"
	"net/http"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes carried by every error the library raises. Transport failures
// map from the HTTP status alone; the two precondition codes are raised
// synchronously before any network call.
const (
	AuthErrorTypeMismatch       = "AUTH_TYPE_MISMATCH"
	AuthErrorInvalidAccessToken = "AUTH_INVALID_ACCESS_TOKEN"
	AuthErrorBadRequest         = "AUTH_BAD_REQUEST"
	AuthErrorRateLimited        = "AUTH_RATE_LIMITED"
	AuthErrorNotFound           = "AUTH_NOT_FOUND"
	AuthErrorUnauthorized       = "AUTH_UNAUTHORIZED"
	AuthErrorProviderFailure    = "AUTH_PROVIDER_ERROR"
	AuthErrorUnclassified       = "AUTH_UNCLASSIFIED"
	AuthErrorMissingCredentials = "AUTH_MISSING_CREDENTIALS"
	AuthErrorInternal           = "AUTH_INTERNAL_ERROR"
)

// statusMessages is the human explanation attached per transport status.
var statusMessages = map[int]string{
	http.StatusBadRequest:          "Bad request",
	http.StatusUnauthorized:        "Access token must be valid.",
	http.StatusForbidden:           "You are not authorized to perform this action.",
	http.StatusNotFound:            "Not found.",
	http.StatusTooManyRequests:     "Request limit reached. Try again later.",
	http.StatusInternalServerError: "Provider API server error",
}

// providerCodeMessages refine known non-zero provider error codes into
// richer messages. Statuses without a finer-grained code fall back to
// statusMessages.
var providerCodeMessages = map[int]string{
	10003: "Unknown channel",
	10004: "Unknown guild",
	10011: "Unknown role",
	10013: "Unknown user",
	30001: "Maximum number of guilds reached",
	40007: "The user is banned from this guild",
	50001: "Missing access",
	50013: "You lack permissions to perform that action",
	50025: "Invalid OAuth2 access token provided",
	50027: "Invalid webhook token provided",
}

// StatusMessage returns the explanation for a transport status, or a
// placeholder for statuses outside the table.
func StatusMessage(status int) string {
	if message, ok := statusMessages[status]; ok {
		return message
	}
	return fmt.Sprintf("Status %d is not handled", status)
}

// ProviderCodeMessage looks up the refined message for a provider error
// code. Zero and unknown codes report false.
func ProviderCodeMessage(code int) (string, bool) {
	if code == 0 {
		return "", false
	}
	message, ok := providerCodeMessages[code]
	return message, ok
}

// ClassifyStatus maps a transport status to its error category and text
// code. The mapping depends only on the status, never on the operation that
// triggered the call, so one table serves every call site.
func ClassifyStatus(status int) (goerrors.Category, string) {
	switch status {
	case http.StatusUnauthorized:
		return goerrors.CategoryAuth, AuthErrorInvalidAccessToken
	case http.StatusBadRequest:
		return goerrors.CategoryBadInput, AuthErrorBadRequest
	case http.StatusTooManyRequests:
		return goerrors.CategoryRateLimit, AuthErrorRateLimited
	case http.StatusNotFound:
		return goerrors.CategoryNotFound, AuthErrorNotFound
	case http.StatusForbidden:
		return goerrors.CategoryAuthz, AuthErrorUnauthorized
	case http.StatusInternalServerError:
		return goerrors.CategoryExternal, AuthErrorProviderFailure
	default:
		return goerrors.CategoryExternal, AuthErrorUnclassified
	}
}

// NewTypeMismatchError reports a precondition failure on an externally
// supplied value, raised before any I/O.
func NewTypeMismatchError(field string, expected, got Tag) error {
	return goerrors.New(
		fmt.Sprintf("core: expected type of %s to be %q but got %q", field, expected, got),
		goerrors.CategoryValidation,
	).
		WithCode(http.StatusBadRequest).
		WithTextCode(AuthErrorTypeMismatch).
		WithMetadata(map[string]any{
			"field":    field,
			"expected": string(expected),
			"received": string(got),
		})
}

// NewMissingCredentialsError reports an operation attempted without the
// credentials it requires, raised before any I/O.
func NewMissingCredentialsError(message string) error {
	return goerrors.New(message, goerrors.CategoryBadInput).
		WithCode(http.StatusBadRequest).
		WithTextCode(AuthErrorMissingCredentials)
}

// NewInternalError wraps a dependency or invariant failure.
func NewInternalError(message string) error {
	return goerrors.New(message, goerrors.CategoryInternal).
		WithCode(http.StatusInternalServerError).
		WithTextCode(AuthErrorInternal)
}
