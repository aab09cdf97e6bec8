package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-discord-oauth/core"
)

// providerPayload is the structured error body the provider attaches to
// failed calls. Code zero means no finer-grained provider code was given.
type providerPayload struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// classifyFailure converts a non-2xx response into a typed error. The
// mapping is a pure function of the status code and payload presence; the
// raw payload rides along as metadata for diagnostics.
func classifyFailure(status int, body []byte) error {
	category, textCode := core.ClassifyStatus(status)
	message := core.StatusMessage(status)

	payload := providerPayload{}
	structured := false
	if len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err == nil && strings.TrimSpace(payload.Message) != "" {
			structured = true
		}
	}

	err := goerrors.New(message, category).
		WithCode(status).
		WithTextCode(textCode)
	if structured {
		if refined, ok := core.ProviderCodeMessage(payload.Code); ok {
			err.Message = refined
		}
		err.WithMetadata(map[string]any{
			"provider_message": payload.Message,
			"provider_code":    payload.Code,
			"raw_body":         string(body),
		})
	}
	return err
}

func invalidAccessTokenError(token string, got core.Tag) error {
	censored := token
	if len(censored) > 5 {
		censored = censored[:5] + "..."
	}
	return goerrors.New(
		"transport: the access token "+censored+" is invalid",
		goerrors.CategoryValidation,
	).
		WithCode(http.StatusBadRequest).
		WithTextCode(core.AuthErrorInvalidAccessToken).
		WithMetadata(map[string]any{
			"expected": string(core.TagString),
			"received": string(got),
		})
}

func throttleError(err error) error {
	if err == nil {
		return nil
	}
	var rich *goerrors.Error
	if goerrors.As(err, &rich) {
		return rich
	}
	type serviceErrorer interface {
		ToServiceError() *goerrors.Error
	}
	var svc serviceErrorer
	if errors.As(err, &svc) {
		return svc.ToServiceError()
	}
	return goerrors.Wrap(err, goerrors.CategoryRateLimit, "transport: call throttled").
		WithCode(http.StatusTooManyRequests).
		WithTextCode(core.AuthErrorRateLimited)
}

func transportError(
	message string,
	category goerrors.Category,
	code int,
	metadata map[string]any,
) error {
	err := goerrors.New(message, category).
		WithCode(code).
		WithTextCode(textCodeFor(category))
	if len(metadata) > 0 {
		err.WithMetadata(metadata)
	}
	return err
}

func transportWrapError(
	source error,
	category goerrors.Category,
	message string,
	code int,
	metadata map[string]any,
) error {
	if source == nil {
		return transportError(message, category, code, metadata)
	}
	err := goerrors.Wrap(source, category, message).
		WithCode(code).
		WithTextCode(textCodeFor(category))
	if len(metadata) > 0 {
		err.WithMetadata(metadata)
	}
	return err
}

func textCodeFor(category goerrors.Category) string {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return core.AuthErrorBadRequest
	case goerrors.CategoryAuth:
		return core.AuthErrorInvalidAccessToken
	case goerrors.CategoryAuthz:
		return core.AuthErrorUnauthorized
	case goerrors.CategoryNotFound:
		return core.AuthErrorNotFound
	case goerrors.CategoryRateLimit:
		return core.AuthErrorRateLimited
	case goerrors.CategoryExternal:
		return core.AuthErrorProviderFailure
	default:
		return core.AuthErrorInternal
	}
}
