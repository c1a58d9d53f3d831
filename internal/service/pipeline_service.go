package service

import (
	"context"
	"fmt"

	"github.com/schedmail/email-worker/internal/domain"
	"github.com/schedmail/email-worker/pkg/logger"
)

// PipelineService runs the per-email sequence lock -> parse -> resolve ->
// render -> fetch -> send -> succeed/fail. Every failure after a
// successful lock converts into exactly one upstream Fail call; the
// pipeline only returns an error when the terminal transition is not its
// to record (lock failures, or a succeed call that itself failed).
type PipelineService struct {
	api         domain.ScheduledEmailAPI
	tokens      domain.TokenProvider
	resolver    domain.ContextResolver
	renderer    domain.EmailRenderer
	attachments domain.AttachmentFetcher
	dispatcher  domain.EmailDispatcher
	logger      logger.Logger
}

func NewPipelineService(
	api domain.ScheduledEmailAPI,
	tokens domain.TokenProvider,
	resolver domain.ContextResolver,
	renderer domain.EmailRenderer,
	attachments domain.AttachmentFetcher,
	dispatcher domain.EmailDispatcher,
	logger logger.Logger,
) *PipelineService {
	return &PipelineService{
		api:         api,
		tokens:      tokens,
		resolver:    resolver,
		renderer:    renderer,
		attachments: attachments,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

// Process handles one eligible email from lock to terminal state.
func (p *PipelineService) Process(ctx context.Context, email domain.ScheduledEmail) (domain.WorkerOutputEmail, error) {
	id := email.ID
	log := p.logger.WithField("email_id", id.String())
	log.Info(fmt.Sprintf("Working on email %s.", id))

	locked, err := p.api.Lock(ctx, id)
	if err != nil {
		// The upstream owns the lock transition semantics; no local
		// failure record when claiming fails.
		return domain.WorkerOutputEmail{}, &domain.LockError{ID: id, Err: err}
	}
	log.Info(fmt.Sprintf("Locked email %s.", id))

	contextRefs, err := locked.ParseContext()
	if err != nil {
		return p.failEmail(ctx, locked, fmt.Sprintf("Failed to read email context. Error: %v", err))
	}

	recipientLinks, err := locked.ParseToHeaderContext()
	if err != nil {
		return p.failEmail(ctx, locked, fmt.Sprintf("Failed to read email recipients. Error: %v", err))
	}

	if _, err := p.tokens.GetToken(ctx); err != nil {
		return p.failEmail(ctx, locked, fmt.Sprintf("Failed to obtain auth token. Error: %v", err))
	}

	templateContext := make(map[string]interface{}, len(contextRefs))
	for key, ref := range contextRefs {
		value, err := p.resolver.ContextEntry(ctx, ref)
		if err != nil {
			return p.failEmail(ctx, locked, fmt.Sprintf("Issue when generating context: %v", err))
		}
		templateContext[key] = value
	}

	recipients := make([]string, 0, len(recipientLinks))
	for _, link := range recipientLinks {
		address, err := p.resolveRecipient(ctx, link)
		if err != nil {
			return p.failEmail(ctx, locked, fmt.Sprintf("Issue when generating email %s recipients: %v", id, err))
		}
		recipients = append(recipients, address)
	}

	log.Info(fmt.Sprintf("Rendering email %s.", id))
	rendered, err := p.renderer.RenderEmail(locked, templateContext, recipients)
	if err != nil {
		return p.failEmail(ctx, locked, fmt.Sprintf("Failed to render email %s. Error: %v", id, err))
	}

	rendered.AttachmentsWithContent, err = p.attachments.FetchAll(ctx, locked.Attachments)
	if err != nil {
		return p.failEmail(ctx, locked, fmt.Sprintf("Failed to fetch attachments for email %s. Error: %v", id, err))
	}

	log.Info(fmt.Sprintf("Attempting to send email %s.", id))
	responseBody, err := p.dispatcher.Send(ctx, rendered)
	if err != nil {
		return p.failEmail(ctx, locked, fmt.Sprintf("Failed to send email %s. Error: %v", id, err))
	}
	log.Info(fmt.Sprintf("Sent email %s.", id))
	log.Debug(fmt.Sprintf("Mailgun response: %s", responseBody))

	details := fmt.Sprintf("Email sent successfully. Mailgun response: %s", responseBody)
	succeeded, err := p.api.Succeed(ctx, id, details)
	if err != nil {
		// The message went out but the terminal transition did not
		// record; surface it so the driver logs the discrepancy. No
		// Fail call here: succeed XOR fail.
		return domain.WorkerOutputEmail{}, fmt.Errorf("failed to record success for email %s: %w", id, err)
	}

	return domain.WorkerOutputEmail{
		Email:  *succeeded,
		Status: string(succeeded.State),
	}, nil
}

// resolveRecipient dispatches on the recipient link variant: inline
// value URIs become their stringified scalar, property links go through
// a model fetch.
func (p *PipelineService) resolveRecipient(ctx context.Context, link domain.RecipientLink) (string, error) {
	switch {
	case link.Value != nil:
		value, err := p.resolver.Scalar(link.Value.ValueURI)
		if err != nil {
			return "", err
		}
		return stringifyScalar(value), nil
	case link.Property != nil:
		return p.resolver.ModelField(ctx, link.Property.APIURI, link.Property.Property)
	default:
		return "", &domain.SchemaError{Message: "empty recipient link"}
	}
}

// stringifyScalar turns a resolved scalar into a recipient string. A
// none value becomes the empty string, which the renderer drops.
func stringifyScalar(value interface{}) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}

// failEmail records the terminal failure upstream and returns the failed
// batch entry. A failing Fail call is logged; the entry still reports
// failed with the last observed snapshot.
func (p *PipelineService) failEmail(ctx context.Context, email *domain.ScheduledEmail, details string) (domain.WorkerOutputEmail, error) {
	p.logger.WithField("email_id", email.ID.String()).Info(details)

	failed, err := p.api.Fail(ctx, email.ID, details)
	if err != nil {
		p.logger.WithField("email_id", email.ID.String()).
			Error(fmt.Sprintf("Failed to record failure upstream: %v", err))
		snapshot := *email
		snapshot.State = domain.ScheduledEmailStatusFailed
		return domain.WorkerOutputEmail{
			Email:  snapshot,
			Status: string(domain.ScheduledEmailStatusFailed),
		}, nil
	}

	return domain.WorkerOutputEmail{
		Email:  *failed,
		Status: string(failed.State),
	}, nil
}
