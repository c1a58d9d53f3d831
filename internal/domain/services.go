package domain

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -destination mocks/mock_services.go -package mocks github.com/schedmail/email-worker/internal/domain ScheduledEmailAPI,TokenProvider,SecretStore,ContextResolver,EmailRenderer,AttachmentFetcher,EmailDispatcher,EmailPipeline

// ScheduledEmailAPI exposes the typed operations of the upstream
// scheduled-email API. Lock, Fail and Succeed are remote state
// transitions; the worker never holds a local write lock.
type ScheduledEmailAPI interface {
	ListScheduledToRun(ctx context.Context) ([]ScheduledEmail, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ScheduledEmail, error)
	Lock(ctx context.Context, id uuid.UUID) (*ScheduledEmail, error)
	Fail(ctx context.Context, id uuid.UUID, details string) (*ScheduledEmail, error)
	Succeed(ctx context.Context, id uuid.UUID, details string) (*ScheduledEmail, error)
}

// TokenProvider yields a valid bearer token, refreshing the cached one
// when stale. Concurrent callers coalesce into a single refresh.
type TokenProvider interface {
	GetToken(ctx context.Context) (AuthToken, error)
}

// SecretStore reads named string parameters. Lookups are independent,
// never mutate, and report absence without an error.
type SecretStore interface {
	GetParameter(ctx context.Context, name string) (value string, found bool, err error)
}

// ContextResolver evaluates the URI sublanguage against the upstream
// API.
type ContextResolver interface {
	Scalar(uri string) (interface{}, error)
	Model(ctx context.Context, uri string) (map[string]interface{}, error)
	ModelField(ctx context.Context, uri string, property string) (string, error)
	ContextEntry(ctx context.Context, ref ContextRef) (interface{}, error)
}

// EmailRenderer renders subject and body templates against a resolved
// context and post-processes the body from markdown to HTML.
type EmailRenderer interface {
	RenderEmail(email *ScheduledEmail, context map[string]interface{}, recipients []string) (*RenderedEmail, error)
}

// AttachmentFetcher downloads attachment bytes from the blob store,
// preserving attachment order.
type AttachmentFetcher interface {
	FetchAll(ctx context.Context, attachments []EmailAttachment) ([]AttachmentContent, error)
}

// EmailDispatcher delivers a fully-rendered message and returns the mail
// API response body for traceability.
type EmailDispatcher interface {
	Send(ctx context.Context, email *RenderedEmail) (responseBody string, err error)
}

// EmailPipeline processes one eligible email end to end. The returned
// error is non-nil only when no local terminal transition was recorded
// (a lock failure or a failing succeed call); the driver then owns the
// batch entry.
type EmailPipeline interface {
	Process(ctx context.Context, email ScheduledEmail) (WorkerOutputEmail, error)
}
