package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// The resolver and pipeline error messages below are operator-visible:
// they end up verbatim in the upstream `details` field of failed emails.

// HTTPStatusError is returned when the upstream API answers with a
// non-success status code.
type HTTPStatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

// UnsupportedURIError is raised for URIs outside the value/api schemes.
// Usage, when set, names the operation that rejected the URI.
type UnsupportedURIError struct {
	URI   string
	Usage string
}

func (e *UnsupportedURIError) Error() string {
	if e.Usage != "" {
		return fmt.Sprintf("Unsupported URI '%s' for %s.", e.URI, e.Usage)
	}
	return fmt.Sprintf("Unsupported URI '%s'.", e.URI)
}

// UnsupportedScalarTypeError is raised for value: URIs whose path is not
// one of str, int, float, bool, none.
type UnsupportedScalarTypeError struct {
	Type string
}

func (e *UnsupportedScalarTypeError) Error() string {
	return fmt.Sprintf("Unsupported scalar type '%s'.", e.Type)
}

// ScalarParseError is raised when a numeric fragment fails to parse.
type ScalarParseError struct {
	Value string
	URI   string
}

func (e *ScalarParseError) Error() string {
	return fmt.Sprintf("Failed to parse '%s' from '%s'.", e.Value, e.URI)
}

// ValueSchemeError is raised when a value: URI shows up where only an
// api: model reference is allowed.
type ValueSchemeError struct{}

func (e *ValueSchemeError) Error() string {
	return "Unexpected API URI 'value' scheme. Expected only 'api'."
}

// MissingFieldError is raised when a fetched model lacks the named
// property.
type MissingFieldError struct {
	URI      string
	Property string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Missing property '%s' in model '%s'.", e.Property, e.URI)
}

// SchemaError is raised when the embedded context or recipient JSON does
// not match the expected shape.
type SchemaError struct {
	Message string
}

func (e *SchemaError) Error() string {
	return e.Message
}

// TemplateError wraps a template engine parse or render failure.
type TemplateError struct {
	Err error
}

func (e *TemplateError) Error() string {
	return e.Err.Error()
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}

// AttachmentFetchError is raised when a blob store download fails.
type AttachmentFetchError struct {
	Key string
	Err error
}

func (e *AttachmentFetchError) Error() string {
	return fmt.Sprintf("failed to fetch attachment '%s': %v", e.Key, e.Err)
}

func (e *AttachmentFetchError) Unwrap() error {
	return e.Err
}

// MailTransferError is raised when the mail API answers with a non-2xx
// status. The response body is kept for the upstream failure details.
type MailTransferError struct {
	StatusCode int
	Body       string
}

func (e *MailTransferError) Error() string {
	return fmt.Sprintf("mail API returned status code %d: %s", e.StatusCode, e.Body)
}

// LockError is raised when the lock state transition fails. The pipeline
// aborts without recording a local failure; the driver owns the batch
// entry in that case.
type LockError struct {
	ID  uuid.UUID
	Err error
}

func (e *LockError) Error() string {
	return fmt.Sprintf("failed to lock email %s: %v", e.ID, e.Err)
}

func (e *LockError) Unwrap() error {
	return e.Err
}
