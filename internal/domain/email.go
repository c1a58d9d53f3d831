package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScheduledEmailStatus is the closed set of states an email moves
// through upstream. The worker only ever requests the
// scheduled|failed -> locked -> succeeded|failed transitions.
type ScheduledEmailStatus string

const (
	ScheduledEmailStatusScheduled ScheduledEmailStatus = "scheduled"
	ScheduledEmailStatusLocked    ScheduledEmailStatus = "locked"
	ScheduledEmailStatusRunning   ScheduledEmailStatus = "running"
	ScheduledEmailStatusSucceeded ScheduledEmailStatus = "succeeded"
	ScheduledEmailStatusFailed    ScheduledEmailStatus = "failed"
	ScheduledEmailStatusCancelled ScheduledEmailStatus = "cancelled"
)

// IsTerminal reports whether the status ends the email's lifecycle.
// A failed email stays eligible for the next run unless cancelled.
func (s ScheduledEmailStatus) IsTerminal() bool {
	switch s {
	case ScheduledEmailStatusSucceeded, ScheduledEmailStatusFailed, ScheduledEmailStatusCancelled:
		return true
	}
	return false
}

// EmailAttachment references a file stored in the blob store.
// The presigned URL is produced upstream for other consumers and is
// ignored here; downloads go through the blob key.
type EmailAttachment struct {
	Filename     string `json:"filename"`
	BlobKey      string `json:"blob_key"`
	PresignedURL string `json:"presigned_url,omitempty"`
}

// AttachmentContent is a downloaded attachment ready for the mail API.
type AttachmentContent struct {
	Filename string
	Content  []byte
}

// ScheduledEmail is the upstream-owned record of one outbound message.
// Each fetch returns an immutable snapshot; the worker never mutates
// state locally.
type ScheduledEmail struct {
	ID              uuid.UUID            `json:"id"`
	CreatedAt       time.Time            `json:"created_at"`
	LastUpdatedAt   *time.Time           `json:"last_updated_at"`
	State           ScheduledEmailStatus `json:"state"`
	ScheduledAt     time.Time            `json:"scheduled_at"`
	ToHeader        []string             `json:"to_header"`
	CcHeader        []string             `json:"cc_header"`
	BccHeader       []string             `json:"bcc_header"`
	FromHeader      string               `json:"from_header"`
	ReplyToHeader   string               `json:"reply_to_header"`
	Subject         string               `json:"subject"`
	Body            string               `json:"body"`
	ToHeaderContext json.RawMessage      `json:"to_header_context"`
	Context         json.RawMessage      `json:"context"`
	Attachments     []EmailAttachment    `json:"attachments"`
	TemplateID      uuid.UUID            `json:"template"`
}

// RenderedEmail is a ScheduledEmail with rendered subject, body and
// recipients plus downloaded attachment bytes. It exists only inside a
// pipeline run.
type RenderedEmail struct {
	ScheduledEmail
	SubjectRendered        string              `json:"subject_rendered"`
	BodyRendered           string              `json:"body_rendered"`
	ToHeaderRendered       []string            `json:"to_header_rendered"`
	AttachmentsWithContent []AttachmentContent `json:"-"`
}

// SinglePropertyLink resolves a recipient through an api: model fetch
// followed by a property read, e.g. {"api_uri": "api:person#1",
// "property": "email"}.
type SinglePropertyLink struct {
	APIURI   string `json:"api_uri"`
	Property string `json:"property"`
}

// SingleValueLink carries the recipient inline as a value: URI.
type SingleValueLink struct {
	ValueURI string `json:"value_uri"`
}

// RecipientLink is the sum of the two recipient link shapes. Exactly one
// of Property and Value is non-nil after a successful unmarshal.
type RecipientLink struct {
	Property *SinglePropertyLink
	Value    *SingleValueLink
}

func (l *RecipientLink) UnmarshalJSON(data []byte) error {
	var raw struct {
		APIURI   *string `json:"api_uri"`
		Property *string `json:"property"`
		ValueURI *string `json:"value_uri"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return &SchemaError{Message: fmt.Sprintf("invalid recipient link: %v", err)}
	}

	switch {
	case raw.APIURI != nil && raw.Property != nil:
		l.Property = &SinglePropertyLink{APIURI: *raw.APIURI, Property: *raw.Property}
		l.Value = nil
	case raw.ValueURI != nil:
		l.Value = &SingleValueLink{ValueURI: *raw.ValueURI}
		l.Property = nil
	default:
		return &SchemaError{
			Message: "recipient link must carry either api_uri+property or value_uri",
		}
	}
	return nil
}

func (l RecipientLink) MarshalJSON() ([]byte, error) {
	if l.Property != nil {
		return json.Marshal(l.Property)
	}
	if l.Value != nil {
		return json.Marshal(l.Value)
	}
	return nil, &SchemaError{Message: "empty recipient link"}
}

// ContextRef is one context entry: either a single URI or an ordered
// list of api: URIs resolved concurrently.
type ContextRef struct {
	URI  string
	URIs []string
}

// IsList reports whether the entry came in as a JSON array.
func (r ContextRef) IsList() bool {
	return r.URIs != nil
}

func (r *ContextRef) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		r.URI = single
		r.URIs = nil
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		r.URI = ""
		r.URIs = list
		return nil
	}

	return &SchemaError{Message: "context entry must be a string or a list of strings"}
}

func (r ContextRef) MarshalJSON() ([]byte, error) {
	if r.IsList() {
		return json.Marshal(r.URIs)
	}
	return json.Marshal(r.URI)
}

// ParseContext validates and decodes the embedded template context.
func (e *ScheduledEmail) ParseContext() (map[string]ContextRef, error) {
	if len(e.Context) == 0 {
		return map[string]ContextRef{}, nil
	}
	var ctx map[string]ContextRef
	if err := json.Unmarshal(e.Context, &ctx); err != nil {
		var schemaErr *SchemaError
		if errors.As(err, &schemaErr) {
			return nil, schemaErr
		}
		return nil, &SchemaError{Message: fmt.Sprintf("invalid context: %v", err)}
	}
	if ctx == nil {
		ctx = map[string]ContextRef{}
	}
	return ctx, nil
}

// ParseToHeaderContext validates and decodes the embedded recipient
// links.
func (e *ScheduledEmail) ParseToHeaderContext() ([]RecipientLink, error) {
	if len(e.ToHeaderContext) == 0 {
		return []RecipientLink{}, nil
	}
	var links []RecipientLink
	if err := json.Unmarshal(e.ToHeaderContext, &links); err != nil {
		var schemaErr *SchemaError
		if errors.As(err, &schemaErr) {
			return nil, schemaErr
		}
		return nil, &SchemaError{Message: fmt.Sprintf("invalid recipients: %v", err)}
	}
	if links == nil {
		links = []RecipientLink{}
	}
	return links, nil
}

// WorkerOutputEmail is one batch summary entry.
type WorkerOutputEmail struct {
	Email  ScheduledEmail `json:"email"`
	Status string         `json:"status"`
}

// WorkerOutput is the run summary returned by the batch driver, one
// entry per eligible email in list order.
type WorkerOutput struct {
	Emails []WorkerOutputEmail `json:"emails"`
}
