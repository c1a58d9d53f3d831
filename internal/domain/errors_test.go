package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	t.Run("unsupported uri", func(t *testing.T) {
		err := &UnsupportedURIError{URI: "unsupported#X"}
		assert.Equal(t, "Unsupported URI 'unsupported#X'.", err.Error())
	})

	t.Run("unsupported uri with usage", func(t *testing.T) {
		err := &UnsupportedURIError{URI: "unsupported#X", Usage: "context generation"}
		assert.Equal(t, "Unsupported URI 'unsupported#X' for context generation.", err.Error())
	})

	t.Run("unsupported scalar type", func(t *testing.T) {
		err := &UnsupportedScalarTypeError{Type: "decimal"}
		assert.Equal(t, "Unsupported scalar type 'decimal'.", err.Error())
	})

	t.Run("scalar parse", func(t *testing.T) {
		err := &ScalarParseError{Value: "abc", URI: "value:int#abc"}
		assert.Equal(t, "Failed to parse 'abc' from 'value:int#abc'.", err.Error())
	})

	t.Run("value scheme", func(t *testing.T) {
		err := &ValueSchemeError{}
		assert.Equal(t, "Unexpected API URI 'value' scheme. Expected only 'api'.", err.Error())
	})

	t.Run("missing field", func(t *testing.T) {
		err := &MissingFieldError{URI: "api:person#1", Property: "email"}
		assert.Equal(t, "Missing property 'email' in model 'api:person#1'.", err.Error())
	})
}

func TestErrorUnwrapping(t *testing.T) {
	cause := fmt.Errorf("connection refused")

	t.Run("lock error", func(t *testing.T) {
		err := &LockError{ID: uuid.New(), Err: cause}
		assert.ErrorIs(t, err, cause)
	})

	t.Run("attachment fetch error", func(t *testing.T) {
		err := &AttachmentFetchError{Key: "k", Err: cause}
		assert.ErrorIs(t, err, cause)
	})

	t.Run("template error", func(t *testing.T) {
		err := &TemplateError{Err: cause}
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, cause.Error(), err.Error())
	})

	t.Run("http status error as target", func(t *testing.T) {
		wrapped := fmt.Errorf("request failed: %w", &HTTPStatusError{StatusCode: 404, URL: "http://x"})
		var statusErr *HTTPStatusError
		assert.True(t, errors.As(wrapped, &statusErr))
		assert.Equal(t, 404, statusErr.StatusCode)
	})
}
